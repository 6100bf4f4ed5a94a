package cmd

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/dendrascience/dendra-image-compress/util"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
)

// NewCountCmd creates and returns the count subcommand for the imgcompress CLI.
// It reports how many files a compress run would encode or skip.
func NewCountCmd() *cobra.Command {
	var (
		path         string
		showProgress bool
	)

	cmd := &cobra.Command{
		Use:   "count [PATH]",
		Short: "Count images and skipped files in a directory tree",
		Long: `Count the files in a directory tree that a compress run would see.

This recursively walks the directory and groups every file by extension,
split into images that would be encoded and files that would be skipped.
Nothing is written.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				path = args[0]
			}
			return runCount(cmd, path, showProgress)
		},
	}

	cmd.Flags().StringVarP(&path, "path", "p", "./", "Path to count files in")
	cmd.Flags().BoolVar(&showProgress, "progress", false, "Show progress every 10,000 files")

	return cmd
}

func runCount(cmd *cobra.Command, path string, showProgress bool) error {
	out := cmd.OutOrStdout()

	var progress func(int)
	if showProgress {
		progress = func(total int) {
			if total%10000 == 0 {
				fmt.Fprintf(out, "Progress: %d files counted\n", total)
			}
		}
	}

	counts, err := util.CountImages(path, progress)
	if err != nil {
		return fmt.Errorf("error counting files: %w", err)
	}

	fmt.Fprintln(out, renderCounts(counts))
	fmt.Fprintf(out, "Total files: %d\n", counts.Total)
	fmt.Fprintf(out, "Images: %d\n", counts.ImageTotal())
	return nil
}

func renderCounts(counts util.ImageCounts) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.Style().Format.Header = text.FormatDefault
	tw.AppendHeader(table.Row{"Extension", "Action", "Files"})

	appendRows := func(m map[string]int, action string) {
		exts := make([]string, 0, len(m))
		for ext := range m {
			exts = append(exts, ext)
		}
		sort.Strings(exts)
		for _, ext := range exts {
			label := ext
			if label == "" {
				label = "(none)"
			}
			tw.AppendRow(table.Row{label, action, strconv.Itoa(m[ext])})
		}
	}
	appendRows(counts.Images, "encode")
	appendRows(counts.Skipped, "skip")

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}
