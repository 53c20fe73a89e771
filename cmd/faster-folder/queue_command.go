package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/JamesMcGahn/faster-folder/internal/fileutil"
	"github.com/JamesMcGahn/faster-folder/internal/queue"
)

func newQueueCommand(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "queue",
		Short: "List the files a run would process, in order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, flags)
			if err != nil {
				return err
			}
			files, err := queue.Discover(cfg.Paths.Directory, "")
			if err != nil {
				return err
			}
			if len(files) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No media files found in %s\n", cfg.Paths.Directory)
				return nil
			}

			skip := queue.NewSkipList(cfg.Output.SkipFiles)
			rows := make([][]string, 0, len(files))
			for i, path := range files {
				rows = append(rows, []string{
					strconv.Itoa(i + 1),
					filepath.Base(path),
					fileSize(path),
					queueStatus(path, skip),
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"#", "File", "Size", "Status"}, rows, 1, 3))
			return nil
		},
	}
}

func fileSize(path string) string {
	info, err := os.Stat(path)
	if err != nil {
		return "-"
	}
	size := info.Size()
	switch {
	case size >= 1<<30:
		return fmt.Sprintf("%.1f GiB", float64(size)/(1<<30))
	case size >= 1<<20:
		return fmt.Sprintf("%.1f MiB", float64(size)/(1<<20))
	case size >= 1<<10:
		return fmt.Sprintf("%.1f KiB", float64(size)/(1<<10))
	default:
		return fmt.Sprintf("%d B", size)
	}
}

func queueStatus(path string, skip queue.SkipList) string {
	if skip.Contains(path) {
		return "skip-listed"
	}
	srtExists := fileutil.IsRegularFile(fileutil.WithExt(path, ".srt"))
	txtExists := fileutil.IsRegularFile(fileutil.WithExt(path, ".txt"))
	switch {
	case srtExists && txtExists:
		return "transcribed"
	case srtExists || txtExists:
		return "partial outputs"
	default:
		return "pending"
	}
}
