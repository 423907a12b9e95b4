// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/coref-engine/internal/container"
	"github.com/pdiddy/coref-engine/internal/lexicon"
	"github.com/pdiddy/coref-engine/internal/match"
	"github.com/pdiddy/coref-engine/internal/resolve"
	"github.com/pdiddy/coref-engine/internal/secrets"
	"github.com/pdiddy/coref-engine/internal/syntax"
	"github.com/pdiddy/coref-engine/internal/wordnet"
	"github.com/pdiddy/coref-engine/pkg/types"
)

// envKeyReplacer maps nested keys to env names: parser.backend -> COREF_PARSER_BACKEND.
var envKeyReplacer = strings.NewReplacer(".", "_")

func loadConfig() (types.CorefConfig, error) {
	var cfg types.CorefConfig
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("reading configuration: %w", err)
	}
	cfg.Defaults()
	return cfg, nil
}

// pipeline holds the resources one command invocation needs.
type pipeline struct {
	provider *syntax.Provider
	resolver *resolve.Resolver
	store    *wordnet.Store
}

func newPipeline(ctx context.Context) (*pipeline, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	lex, err := buildLexicon(cfg.Lexicon)
	if err != nil {
		return nil, err
	}
	parser, err := buildParser(cfg.Parser)
	if err != nil {
		return nil, err
	}
	store, err := openWordNet(ctx, cfg.WordNet)
	if err != nil {
		return nil, err
	}

	prose := syntax.NewProse()
	provider := &syntax.Provider{
		Segmenter: prose,
		Parser:    parser,
		Tagger:    prose,
		Chunker:   prose,
		Timeout:   cfg.Parser.Timeout,
	}
	chain := match.Default(match.Deps{
		Lexicon:  lex,
		Tagger:   prose,
		Chunker:  prose,
		Semantic: store,
	})

	logger.Debug("pipeline ready",
		zap.String("parser", string(cfg.Parser.Backend)),
		zap.Int("search_range", cfg.SearchRange),
		zap.String("wordnet", cfg.WordNet.Path))

	return &pipeline{
		provider: provider,
		resolver: resolve.New(cfg, provider, chain, logger),
		store:    store,
	}, nil
}

func (p *pipeline) Close() error {
	return p.store.Close()
}

func buildLexicon(cfg types.LexiconConfig) (*lexicon.Lexicon, error) {
	var (
		lex *lexicon.Lexicon
		err error
	)
	if cfg.Path != "" {
		lex, err = lexicon.Load(cfg.Path)
	} else {
		lex, err = lexicon.Default()
	}
	if err != nil {
		return nil, err
	}
	if cfg.MaleNames == "" && cfg.FemaleNames == "" {
		return lex, nil
	}
	return lex.WithNames(cfg.MaleNames, cfg.FemaleNames)
}

func buildParser(cfg types.ParserConfig) (syntax.Parser, error) {
	switch cfg.Backend {
	case types.ParserTreebank:
		if cfg.TreebankPath == "" {
			return nil, fmt.Errorf("treebank backend requires --treebank or parser.treebank_path")
		}
		tb, err := syntax.LoadTreebank(cfg.TreebankPath)
		if err != nil {
			return nil, err
		}
		logger.Debug("treebank loaded", zap.String("path", cfg.TreebankPath), zap.Int("sentences", tb.Len()))
		return tb, nil

	case types.ParserCoreNLP:
		client := &http.Client{Timeout: cfg.Timeout}
		p := syntax.NewCoreNLP(cfg.CoreNLPURL, client, cfg.MaxRetries)
		return p.WithBasicAuth(
			loadedSecrets.Get(secrets.KeyCoreNLPUsername, ""),
			loadedSecrets.Get(secrets.KeyCoreNLPPassword, ""),
		), nil

	case types.ParserContainer:
		rt, err := container.DetectRuntime()
		if err != nil {
			return nil, err
		}
		logger.Debug("container runtime", zap.String("runtime", rt.Name()), zap.String("image", cfg.Image))
		return syntax.NewContainerParser(rt, cfg.Image)

	default:
		return nil, fmt.Errorf("unknown parser backend %q: use treebank, corenlp or container", cfg.Backend)
	}
}

// openWordNet opens the database and imports the built-in taxonomy when it
// holds no words yet.
func openWordNet(ctx context.Context, cfg types.WordNetConfig) (*wordnet.Store, error) {
	store, err := wordnet.Open(cfg.Path)
	if err != nil {
		return nil, err
	}
	n, err := store.CountWords(ctx)
	if err != nil {
		store.Close()
		return nil, err
	}
	if n > 0 {
		return store, nil
	}

	tx, err := wordnet.DefaultTaxonomy()
	if err != nil {
		store.Close()
		return nil, err
	}
	summary, err := store.Import(ctx, tx)
	if err != nil {
		store.Close()
		return nil, err
	}
	logger.Info("seeded wordnet",
		zap.String("path", cfg.Path),
		zap.Int("synsets", summary.Synsets),
		zap.Int("words", summary.Words))
	return store, nil
}

// readInput returns the contents of the file named by args[0], or stdin.
func readInput(args []string, stdin io.Reader) (string, error) {
	if len(args) > 0 && args[0] != "-" {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", args[0], err)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}
