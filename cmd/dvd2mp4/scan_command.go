package main

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"dvd2mp4/internal/vob"
)

func newScanCommand() *cobra.Command {
	var inputFlag string

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "List the title sets found in a DVD directory without converting",
		RunE: func(cmd *cobra.Command, args []string) error {
			inputDir, err := filepath.Abs(inputFlag)
			if err != nil {
				return err
			}
			files, err := vob.Scan(inputDir)
			if err != nil {
				return err
			}

			groups := vob.GroupByTitleSet(files)
			rows := make([][]string, 0, len(groups))
			var total int64
			for _, group := range groups {
				rows = append(rows, []string{
					group.TitleSet,
					strconv.Itoa(len(group.Files)),
					formatSize(group.Size()),
				})
				total += group.Size()
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(
				[]string{"Title set", "Files", "Size"},
				rows,
				[]columnAlignment{alignLeft, alignRight, alignRight},
			))
			fmt.Fprintf(out, "%d file(s), %s total\n", len(files), formatSize(total))
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputFlag, "input", "i", "", "Path to DVD structure directory")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}

func formatSize(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	value := float64(bytes)
	suffixes := []string{"KiB", "MiB", "GiB", "TiB"}
	for i := 0; i < len(suffixes); i++ {
		value /= unit
		if value < unit || i == len(suffixes)-1 {
			return fmt.Sprintf("%.1f %s", value, suffixes[i])
		}
	}
	return fmt.Sprintf("%d B", bytes)
}
