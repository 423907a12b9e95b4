// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds configuration and the serialisable records written by
// the coref CLI.
package types

// MentionRecord is a flattened mention for export.
type MentionRecord struct {
	// Sentence is the 1-based sentence index.
	Sentence int `json:"sentence" yaml:"sentence"`

	// Index is the 1-based ordinal of the mention within its sentence.
	Index int `json:"index" yaml:"index"`

	// Text is the mention's tokens joined by spaces.
	Text string `json:"text" yaml:"text"`

	// Nouns lists the common nouns inside the mention, in order.
	Nouns []string `json:"nouns,omitempty" yaml:"nouns,omitempty"`
}

// PairRecord is one resolved anaphor/antecedent link.
type PairRecord struct {
	Mention    MentionRecord `json:"mention" yaml:"mention"`
	Antecedent MentionRecord `json:"antecedent" yaml:"antecedent"`

	// Local is true when both mentions are in the same sentence.
	Local bool `json:"local" yaml:"local"`

	// Strategies names every strategy that linked the pair, in priority order.
	Strategies []string `json:"strategies" yaml:"strategies"`
}

// Result is the export form of a resolved document.
type Result struct {
	Sentences []string        `json:"sentences" yaml:"sentences"`
	Mentions  []MentionRecord `json:"mentions" yaml:"mentions"`
	Pairs     []PairRecord    `json:"pairs" yaml:"pairs"`
}
