// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package resolve drives coreference resolution over a document: it parses
// the text, extracts mentions, and pairs every mention with earlier mentions
// inside the search window using the configured matching strategies.
package resolve

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/pdiddy/coref-engine/internal/match"
	"github.com/pdiddy/coref-engine/internal/mention"
	"github.com/pdiddy/coref-engine/internal/syntax"
	"github.com/pdiddy/coref-engine/internal/tree"
	"github.com/pdiddy/coref-engine/pkg/types"
)

// Document is a parsed text. Sentences and Trees have the same length and
// order. Mentions is filled by ResolveTrees.
type Document struct {
	Text      string
	Sentences []string
	Trees     []*tree.Tree
	Mentions  []*mention.Mention
}

// Pair links an anaphoric mention to an earlier antecedent.
type Pair struct {
	Mention    *mention.Mention
	Antecedent *mention.Mention

	// Local is true when both mentions are in the same sentence.
	Local bool

	// Strategies names every strategy that matched, in priority order.
	Strategies []string
}

// Resolver holds the injected resources for resolving documents. It is
// safe to reuse across documents but not for concurrent use.
type Resolver struct {
	searchRange int
	provider    *syntax.Provider
	chain       []match.Strategy
	log         *zap.Logger
}

// New creates a Resolver. provider may be nil when only ResolveTrees is
// used. A nil logger discards all output.
func New(cfg types.CorefConfig, provider *syntax.Provider, chain []match.Strategy, log *zap.Logger) *Resolver {
	cfg.Defaults()
	if log == nil {
		log = zap.NewNop()
	}
	return &Resolver{
		searchRange: cfg.SearchRange,
		provider:    provider,
		chain:       chain,
		log:         log,
	}
}

// Resolve segments and parses text, then resolves its mentions. A parse
// failure on any sentence aborts the document.
func (r *Resolver) Resolve(ctx context.Context, text string) (*Document, []Pair, error) {
	if r.provider == nil {
		return nil, nil, errors.New("resolving document: no syntax provider configured")
	}
	sents, trees, err := r.provider.ParseDocument(ctx, text)
	if err != nil {
		return nil, nil, fmt.Errorf("resolving document: %w", err)
	}
	doc := &Document{Text: text, Sentences: sents, Trees: trees}
	return doc, r.ResolveTrees(doc), nil
}

// ResolveTrees extracts mentions from doc.Trees and returns the matched
// pairs ordered by mention, then by antecedent, in document order.
func (r *Resolver) ResolveTrees(doc *Document) []Pair {
	doc.Mentions = mention.ExtractAll(doc.Trees)
	r.log.Info("mentions extracted",
		zap.Int("sentences", len(doc.Trees)),
		zap.Int("mentions", len(doc.Mentions)))

	var pairs []Pair
	for j, m := range doc.Mentions {
		for _, c := range doc.Mentions[:j] {
			if c.TreeI < m.TreeI-r.searchRange {
				continue
			}
			local := c.TreeI == m.TreeI

			var fired []string
			for _, s := range r.chain {
				if s.Match(m, c, doc.Trees, local) {
					fired = append(fired, s.Name())
				}
			}
			if len(fired) == 0 {
				continue
			}

			r.log.Info("coreference",
				zap.String("mention", m.Raw()),
				zap.String("antecedent", c.Raw()),
				zap.Int("sentence", m.TreeI),
				zap.Bool("local", local),
				zap.Strings("strategies", fired))
			pairs = append(pairs, Pair{Mention: m, Antecedent: c, Local: local, Strategies: fired})
		}
	}
	return pairs
}
