package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newStripCmd(a *app) *cobra.Command {
	var docComment bool

	cmd := &cobra.Command{
		Use:   "strip [file]",
		Short: "Remove the fence wrapping a whole answer",
		Long: "Remove one pair of fence markers wrapping the whole answer and print the\n" +
			"trimmed remainder. Answers that are not fully wrapped are printed trimmed.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			n := a.normalizer()
			var result string
			if docComment {
				result = n.StripDocComment(cmd.Context(), raw)
			} else {
				result = n.Strip(cmd.Context(), raw)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), result)
			return err
		},
	}

	cmd.Flags().BoolVar(&docComment, "doc-comment", false, "also remove a surrounding /** ... */ comment")
	cmd.Flags().StringSlice("lang", nil, "fence language tags to accept (default java)")
	_ = a.v.BindPFlag(keyLanguages, cmd.Flags().Lookup("lang"))
	return cmd
}
