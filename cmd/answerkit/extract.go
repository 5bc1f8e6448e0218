package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/leofalp/answerkit/core/envelope"
)

func newExtractCmd(a *app) *cobra.Command {
	var field string

	cmd := &cobra.Command{
		Use:   "extract [file]",
		Short: "Decode the JSON snippet envelope held by an answer",
		Long: "Decode the JSON envelope held by an answer and print the snippets as JSON.\n" +
			"A malformed envelope is reported as an error and a non-zero exit status.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			snippets, err := a.normalizer().Extract(cmd.Context(), &raw, envelope.CustomField(field))
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(snippets)
		},
	}

	cmd.Flags().StringVar(&field, "field", envelope.FieldSnippet.Name(),
		"element field holding the payload (snippet, methodContent, content, variableContent, ...)")
	cmd.Flags().Bool("repair", false, "repair malformed JSON before decoding")
	_ = a.v.BindPFlag(keyRepair, cmd.Flags().Lookup("repair"))
	return cmd
}
