// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/coref-engine/internal/mention"
	"github.com/pdiddy/coref-engine/internal/resolve"
)

var mentionsCmd = &cobra.Command{
	Use:   "mentions [file]",
	Short: "List the noun-phrase mentions of a document",
	Long: `Mentions parses a document and prints the noun phrases the resolver
would consider, numbered by sentence and by position within the sentence.
Embedded head phrases such as "the man" in "the man from France" are not
listed separately.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runMentions,
}

func init() {
	mentionsCmd.Flags().String("format", formatTable, "output format: table, yaml or json")
	rootCmd.AddCommand(mentionsCmd)
}

func runMentions(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	text, err := readInput(args, cmd.InOrStdin())
	if err != nil {
		return err
	}

	p, err := newPipeline(cmd.Context())
	if err != nil {
		return err
	}
	defer p.Close()

	sents, trees, err := p.provider.ParseDocument(cmd.Context(), text)
	if err != nil {
		return err
	}
	doc := &resolve.Document{
		Text:      text,
		Sentences: sents,
		Trees:     trees,
		Mentions:  mention.ExtractAll(trees),
	}

	res := resolve.Export(doc, nil)
	if format == formatTable {
		writeMentionTable(cmd.OutOrStdout(), res)
		return nil
	}
	return writeRecords(cmd.OutOrStdout(), format, res)
}
