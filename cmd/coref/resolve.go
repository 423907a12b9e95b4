// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/coref-engine/internal/resolve"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve [file]",
	Short: "Link anaphors in a document to their antecedents",
	Long: `Resolve reads a document from a file (or stdin when no file or "-" is
given), parses every sentence with the configured backend, and prints each
coreference pair with the strategies that matched it.

A parse failure on any sentence aborts the document.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runResolve,
}

func init() {
	resolveCmd.Flags().String("format", formatTable, "output format: table, yaml or json")
	rootCmd.AddCommand(resolveCmd)
}

func runResolve(cmd *cobra.Command, args []string) error {
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

	doc, pairs, err := p.resolver.Resolve(cmd.Context(), text)
	if err != nil {
		return err
	}

	res := resolve.Export(doc, pairs)
	if format == formatTable {
		writePairTable(cmd.OutOrStdout(), res)
		return nil
	}
	return writeRecords(cmd.OutOrStdout(), format, res)
}
