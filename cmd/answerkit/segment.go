package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/leofalp/answerkit/core/blocks"
)

func newSegmentCmd(a *app) *cobra.Command {
	var (
		formatFlag string
		query      string
		files      []string
	)

	cmd := &cobra.Command{
		Use:   "segment [file]",
		Short: "Split an answer into text and fenced code blocks",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			resp := a.normalizer().Respond(cmd.Context(), query, raw, files...)
			return writeBlocks(cmd.OutOrStdout(), resp, formatFlag)
		},
	}

	cmd.Flags().StringVarP(&formatFlag, "format", "f", "table", "output format: table, json or source")
	cmd.Flags().StringVar(&query, "query", "", "query the answer responds to (json output)")
	cmd.Flags().StringSliceVar(&files, "file", nil, "file identifiers referenced by the query (json output)")
	cmd.Flags().Bool("html", false, "convert HTML answers to markdown first")
	_ = a.v.BindPFlag(keyHTML, cmd.Flags().Lookup("html"))
	return cmd
}

// writeBlocks writes the response's blocks to w in the requested format.
func writeBlocks(w io.Writer, resp *blocks.Response, format string) error {
	switch strings.ToLower(format) {
	case "", "table":
		return writeBlocksTable(w, resp.Blocks())
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(resp)
	case "source":
		_, err := fmt.Fprintln(w, resp.Source())
		return err
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

func writeBlocksTable(w io.Writer, items []blocks.Block) error {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleRounded)
	tw.Style().Options.SeparateRows = true
	if isTerminal(w) {
		tw.Style().Color.Header = text.Colors{text.Bold}
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignCenter},
		{Number: 2, Align: text.AlignLeft, AlignHeader: text.AlignCenter},
		{Number: 3, Align: text.AlignLeft, AlignHeader: text.AlignCenter},
		{Number: 4, Align: text.AlignLeft, AlignHeader: text.AlignCenter, WidthMax: 80},
	})
	tw.AppendHeader(table.Row{"#", "Kind", "Language", "Content"})

	for i, b := range items {
		tw.AppendRow(table.Row{i + 1, b.Kind, b.Language, strings.TrimRight(b.Content, "\n")})
	}
	if len(items) == 0 {
		tw.AppendRow(table.Row{"-", "(no blocks)", "-", "-"})
	}

	tw.Render()
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
