package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"dvd2mp4/internal/config"
	"dvd2mp4/internal/convert"
	"dvd2mp4/internal/logging"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var opts convert.Options

	rootCmd := &cobra.Command{
		Use:   "dvd2mp4",
		Short: "Convert DVD VOB files to MP4 using ffmpeg",
		Long: `dvd2mp4 concatenates the VTS_??_*.VOB fragments of a DVD directory and
transcodes them into MP4 output via ffprobe and ffmpeg. By default every
fragment joins one output file; split mode writes one file per title set.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := config.Load(configFlag)
			if err != nil {
				return err
			}
			logger, err := logging.NewFromConfig(cfg, opts.Verbose)
			if err != nil {
				return err
			}

			converter, err := convert.New(cfg, logger, opts)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return converter.Run(ctx)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Configuration file path")
	rootCmd.Flags().StringVarP(&opts.InputDir, "input", "i", "", "Path to DVD structure directory containing VTS_??_*.VOB files")
	rootCmd.Flags().StringVarP(&opts.Output, "output", "o", "", "Output MP4 filename (default: <input-dirname>.mp4; ignored with --split)")
	rootCmd.Flags().BoolVarP(&opts.Split, "split", "s", false, "Produce one MP4 per title set instead of one combined file")
	rootCmd.Flags().StringVarP(&opts.Aspect, "aspect", "a", "", "Override auto-detected aspect ratio (e.g. 16:9 or 4:3)")
	rootCmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Stream subprocess output and progress messages")
	_ = rootCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(newScanCommand())
	rootCmd.AddCommand(newDepsCommand(&configFlag))
	rootCmd.AddCommand(newConfigCommand(&configFlag))

	return rootCmd
}
