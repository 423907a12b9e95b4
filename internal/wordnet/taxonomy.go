// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package wordnet

import (
	_ "embed"
	"fmt"
	"io"

	"go.yaml.in/yaml/v3"
)

//go:embed data/taxonomy.yaml
var defaultTaxonomy []byte

// Taxonomy is the import format of the semantic network.
type Taxonomy struct {
	// Synsets maps a synset ID to the IDs of its direct hypernyms.
	Synsets map[string][]string `yaml:"synsets"`

	// Words maps a lemma to its synset IDs, most frequent sense first.
	Words map[string][]string `yaml:"words"`
}

// DecodeTaxonomy reads a YAML taxonomy. It rejects words whose senses name
// unknown synsets and hypernym links to undeclared synsets.
func DecodeTaxonomy(r io.Reader) (*Taxonomy, error) {
	var tx Taxonomy
	if err := yaml.NewDecoder(r).Decode(&tx); err != nil {
		return nil, fmt.Errorf("decoding taxonomy: %w", err)
	}
	if err := tx.validate(); err != nil {
		return nil, err
	}
	return &tx, nil
}

// DefaultTaxonomy returns the embedded seed taxonomy.
func DefaultTaxonomy() (*Taxonomy, error) {
	var tx Taxonomy
	if err := yaml.Unmarshal(defaultTaxonomy, &tx); err != nil {
		return nil, fmt.Errorf("decoding embedded taxonomy: %w", err)
	}
	if err := tx.validate(); err != nil {
		return nil, err
	}
	return &tx, nil
}

func (tx *Taxonomy) validate() error {
	for id, parents := range tx.Synsets {
		for _, p := range parents {
			if _, ok := tx.Synsets[p]; !ok {
				return fmt.Errorf("synset %s: unknown hypernym %s", id, p)
			}
		}
	}
	for word, senses := range tx.Words {
		if len(senses) == 0 {
			return fmt.Errorf("word %q has no senses", word)
		}
		for _, s := range senses {
			if _, ok := tx.Synsets[s]; !ok {
				return fmt.Errorf("word %q: unknown synset %s", word, s)
			}
		}
	}
	return nil
}
