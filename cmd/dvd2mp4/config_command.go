package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"dvd2mp4/internal/config"
)

func newConfigCommand(configFlag *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the dvd2mp4 configuration file",
	}

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a commented sample configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := strings.TrimSpace(*configFlag)
			if path == "" {
				defaultPath, err := config.DefaultConfigPath()
				if err != nil {
					return err
				}
				path = defaultPath
			}
			if err := config.WriteSample(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, fromFile, err := config.Load(*configFlag)
			if err != nil {
				return err
			}
			source := "defaults"
			if fromFile {
				source = "file"
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "source: %s\n", source)
			fmt.Fprintln(out, renderTable(
				[]string{"Setting", "Value"},
				[][]string{
					{"tools.ffmpeg", cfg.Tools.FFmpeg},
					{"tools.ffprobe", cfg.Tools.FFprobe},
					{"encode.video_codec", cfg.Encode.VideoCodec},
					{"encode.audio_codec", cfg.Encode.AudioCodec},
					{"encode.audio_bitrate", cfg.Encode.AudioBitrate},
					{"encode.faststart", fmt.Sprintf("%t", cfg.Encode.FastStart)},
					{"paths.temp_dir", cfg.Paths.TempDir},
					{"logging.format", cfg.Logging.Format},
					{"logging.level", cfg.Logging.Level},
				},
				nil,
			))
			return nil
		},
	}

	cmd.AddCommand(initCmd)
	cmd.AddCommand(showCmd)
	return cmd
}
