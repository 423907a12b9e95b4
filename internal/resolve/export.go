// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package resolve

import (
	"github.com/pdiddy/coref-engine/internal/mention"
	"github.com/pdiddy/coref-engine/pkg/types"
)

// Export flattens a resolved document into serialisable records.
func Export(doc *Document, pairs []Pair) types.Result {
	res := types.Result{
		Sentences: doc.Sentences,
		Mentions:  make([]types.MentionRecord, 0, len(doc.Mentions)),
		Pairs:     make([]types.PairRecord, 0, len(pairs)),
	}
	for _, m := range doc.Mentions {
		res.Mentions = append(res.Mentions, record(m))
	}
	for _, p := range pairs {
		res.Pairs = append(res.Pairs, types.PairRecord{
			Mention:    record(p.Mention),
			Antecedent: record(p.Antecedent),
			Local:      p.Local,
			Strategies: p.Strategies,
		})
	}
	return res
}

func record(m *mention.Mention) types.MentionRecord {
	return types.MentionRecord{
		Sentence: m.TreeI,
		Index:    m.I,
		Text:     m.Raw(),
		Nouns:    m.Nouns,
	}
}
