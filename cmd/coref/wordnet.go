// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/coref-engine/internal/wordnet"
)

var wordnetCmd = &cobra.Command{
	Use:   "wordnet",
	Short: "Manage the hypernym database used for animacy checks",
	Long: `WordNet manages the SQLite database of synsets, word senses and
hypernym links. The resolver asks it whether the first sense of a noun
descends from person.n.01. A built-in seed taxonomy is imported the first
time the database is opened.`,
}

// --- import subcommand ---

var wordnetImportCmd = &cobra.Command{
	Use:   "import <taxonomy.yaml>",
	Short: "Import synsets, senses and hypernym links from a YAML taxonomy",
	Long: `Import reads a taxonomy file with two maps: synsets (synset id to its
hypernym ids) and words (word to synset ids, most frequent first). Existing
senses of an imported word are replaced.`,
	Args: cobra.ExactArgs(1),
	RunE: runWordnetImport,
}

func runWordnetImport(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("opening taxonomy: %w", err)
	}
	defer f.Close()

	tx, err := wordnet.DecodeTaxonomy(f)
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, err := openWordNet(cmd.Context(), cfg.WordNet)
	if err != nil {
		return err
	}
	defer store.Close()

	summary, err := store.Import(cmd.Context(), tx)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d synsets, %d hypernym links, %d words into %s\n",
		summary.Synsets, summary.Links, summary.Words, cfg.WordNet.Path)
	return nil
}

// --- paths subcommand ---

var wordnetPathsCmd = &cobra.Command{
	Use:   "paths <word>",
	Short: "Print the hypernym paths of a word's first sense",
	Args:  cobra.ExactArgs(1),
	RunE:  runWordnetPaths,
}

func runWordnetPaths(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, err := openWordNet(cmd.Context(), cfg.WordNet)
	if err != nil {
		return err
	}
	defer store.Close()

	word := args[0]
	paths, err := store.HypernymPathsContext(cmd.Context(), word)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if len(paths) == 0 {
		fmt.Fprintf(w, "%s: no senses\n", word)
		return nil
	}
	for _, p := range paths {
		fmt.Fprintln(w, strings.Join(p, " > "))
	}
	fmt.Fprintf(w, "\nperson: %t\n", wordnet.OnAnyPath(paths, wordnet.PersonSynset))
	return nil
}

func init() {
	wordnetCmd.AddCommand(wordnetImportCmd)
	wordnetCmd.AddCommand(wordnetPathsCmd)

	rootCmd.AddCommand(wordnetCmd)
}
