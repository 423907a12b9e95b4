// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the coref CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/coref-engine/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	// logger is built in PersistentPreRunE from --verbose.
	logger = zap.NewNop()

	// loadedSecrets holds credentials loaded from the secrets directory.
	loadedSecrets = secrets.Secrets{}
)

// rootCmd is the base command for the coref CLI.
var rootCmd = &cobra.Command{
	Use:   "coref",
	Short: "Rule-based pronoun and noun-phrase coreference resolution",
	Long: `coref links anaphoric mentions to their antecedents. Text is split into
sentences, each sentence is parsed into a constituency tree, and every noun
phrase is compared with the noun phrases of the preceding sentences using
reflexive binding, pronoun agreement, referential determiners and
one-substitution.

Parses come from a treebank file, a CoreNLP server, or a parser container
image. Gender and animacy checks use built-in word lists and a WordNet-style
hypernym database.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := newLogger(viper.GetBool("verbose"))
		if err != nil {
			return err
		}
		logger = l

		s, err := secrets.Load(viper.GetString("secrets_dir"), logger)
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			logger.Info("loaded secrets", zap.Strings("keys", s.Keys()))
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

// newLogger writes JSON at warn level to stderr, or human-readable debug
// output when verbose.
func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		cfg := zap.NewDevelopmentConfig()
		cfg.OutputPaths = []string{"stderr"}
		return cfg.Build()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return cfg.Build()
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default: ./coref.yaml or ~/.config/coref/coref.yaml)")
	pf.BoolP("verbose", "v", false, "debug logging to stderr")
	pf.String("secrets-dir", ".secrets", "directory of credential files (corenlp-username, corenlp-password)")
	pf.Int("search-range", 0, "sentences to search back for antecedents (default 2)")
	pf.String("parser", "", "parser backend: treebank, corenlp or container (default treebank)")
	pf.String("treebank", "", "treebank file of pre-parsed sentences (YAML map or sentence<TAB>tree lines)")
	pf.String("corenlp-url", "", "CoreNLP server base URL (default http://localhost:9000)")
	pf.String("image", "", "parser container image for the container backend")
	pf.Duration("parse-timeout", 0, "timeout for a single sentence parse (default 30s)")
	pf.String("lexicon", "", "YAML word lists replacing the built-in lexicon")
	pf.String("male-names", "", "file of male first names, one per line")
	pf.String("female-names", "", "file of female first names, one per line")
	pf.String("wordnet", "", "WordNet database path (default wordnet/wordnet.db)")

	for key, flag := range map[string]string{
		"verbose":              "verbose",
		"secrets_dir":          "secrets-dir",
		"search_range":         "search-range",
		"parser.backend":       "parser",
		"parser.treebank_path": "treebank",
		"parser.corenlp_url":   "corenlp-url",
		"parser.image":         "image",
		"parser.timeout":       "parse-timeout",
		"lexicon.path":         "lexicon",
		"lexicon.male_names":   "male-names",
		"lexicon.female_names": "female-names",
		"wordnet.path":         "wordnet",
	} {
		_ = viper.BindPFlag(key, pf.Lookup(flag))
	}
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("coref")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "coref"))
		}
	}

	// Variables already set in the environment win over .env.
	if err := godotenv.Load(); err == nil {
		fmt.Fprintln(os.Stderr, "Loaded environment from .env")
	}

	viper.SetEnvPrefix("COREF")
	viper.SetEnvKeyReplacer(envKeyReplacer)
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
