// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package lexicon provides the static word lists consulted by the matching
// strategies: pronoun classes, reflexives, pronouns that never antecede
// "it", gendered first names and gendered common nouns.
//
// A Lexicon is built once and never modified, so a single value can be
// shared by the resolver and every strategy.
package lexicon

import (
	"bufio"
	_ "embed"
	"fmt"
	"os"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

//go:embed data/lexicon.yaml
var defaultData []byte

// Lists is the serialised form of a lexicon.
type Lists struct {
	MalePronouns        []string `yaml:"male_pronouns"`
	FemalePronouns      []string `yaml:"female_pronouns"`
	PluralPronouns      []string `yaml:"plural_pronouns"`
	Reflexives          []string `yaml:"reflexives"`
	NonItPronouns       []string `yaml:"non_it_pronouns"`
	MaleNouns           []string `yaml:"male_nouns"`
	ProbableMaleNouns   []string `yaml:"probable_male_nouns"`
	FemaleNouns         []string `yaml:"female_nouns"`
	ProbableFemaleNouns []string `yaml:"probable_female_nouns"`
	MaleNames           []string `yaml:"male_names"`
	FemaleNames         []string `yaml:"female_names"`
}

type set map[string]struct{}

func newSet(groups ...[]string) set {
	s := make(set)
	for _, g := range groups {
		for _, w := range g {
			s[w] = struct{}{}
		}
	}
	return s
}

func newFoldedSet(groups ...[]string) set {
	s := make(set)
	for _, g := range groups {
		for _, w := range g {
			s[Fold(w)] = struct{}{}
		}
	}
	return s
}

func (s set) has(w string) bool {
	_, ok := s[w]
	return ok
}

// Lexicon answers membership queries over the word lists.
type Lexicon struct {
	malePronouns   set
	femalePronouns set
	pluralPronouns set
	reflexives     set
	nonIt          set
	maleNouns      set
	femaleNouns    set
	maleNames      set
	femaleNames    set
}

// Default returns the lexicon compiled from the embedded word lists.
func Default() (*Lexicon, error) {
	var l Lists
	if err := yaml.Unmarshal(defaultData, &l); err != nil {
		return nil, fmt.Errorf("parsing embedded lexicon: %w", err)
	}
	return New(l), nil
}

// Load reads a lexicon YAML file with the same shape as the embedded one.
func Load(path string) (*Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading lexicon %s: %w", path, err)
	}
	var l Lists
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("parsing lexicon %s: %w", path, err)
	}
	return New(l), nil
}

// New compiles word lists into a Lexicon.
func New(l Lists) *Lexicon {
	return &Lexicon{
		malePronouns:   newFoldedSet(l.MalePronouns),
		femalePronouns: newFoldedSet(l.FemalePronouns),
		pluralPronouns: newFoldedSet(l.PluralPronouns),
		reflexives:     newFoldedSet(l.Reflexives),
		nonIt:          newFoldedSet(l.NonItPronouns),
		maleNouns:      newSet(l.MaleNouns, l.ProbableMaleNouns),
		femaleNouns:    newSet(l.FemaleNouns, l.ProbableFemaleNouns),
		maleNames:      newSet(l.MaleNames),
		femaleNames:    newSet(l.FemaleNames),
	}
}

// WithNames returns a copy of the lexicon with the names from the given
// files added. Either path may be empty.
func (x *Lexicon) WithNames(maleFile, femaleFile string) (*Lexicon, error) {
	out := *x
	if maleFile != "" {
		names, err := readNames(maleFile)
		if err != nil {
			return nil, err
		}
		out.maleNames = merge(x.maleNames, names)
	}
	if femaleFile != "" {
		names, err := readNames(femaleFile)
		if err != nil {
			return nil, err
		}
		out.femaleNames = merge(x.femaleNames, names)
	}
	return &out, nil
}

func merge(base set, extra []string) set {
	out := make(set, len(base)+len(extra))
	for w := range base {
		out[w] = struct{}{}
	}
	for _, w := range extra {
		out[w] = struct{}{}
	}
	return out
}

// readNames reads one name per line, skipping blanks and # comments
// (the layout of the NLTK names corpus).
func readNames(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening names file: %w", err)
	}
	defer f.Close()

	var names []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		names = append(names, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return names, nil
}

// lowerers pools English lower-casers; a cases.Caser keeps transform state
// and must not be shared between goroutines.
var lowerers = sync.Pool{
	New: func() any {
		c := cases.Lower(language.English)
		return &c
	},
}

// Fold lower-cases a token for case-insensitive comparison.
func Fold(w string) string {
	c := lowerers.Get().(*cases.Caser)
	defer lowerers.Put(c)
	return c.String(w)
}

func (x *Lexicon) IsMalePronoun(w string) bool   { return x.malePronouns.has(Fold(w)) }
func (x *Lexicon) IsFemalePronoun(w string) bool { return x.femalePronouns.has(Fold(w)) }
func (x *Lexicon) IsPluralPronoun(w string) bool { return x.pluralPronouns.has(Fold(w)) }
func (x *Lexicon) IsReflexive(w string) bool     { return x.reflexives.has(Fold(w)) }

// IsNonItPronoun reports whether w is a personal pronoun that can never be
// the antecedent of "it".
func (x *Lexicon) IsNonItPronoun(w string) bool { return x.nonIt.has(Fold(w)) }

func (x *Lexicon) IsMaleNoun(w string) bool   { return x.maleNouns.has(w) }
func (x *Lexicon) IsFemaleNoun(w string) bool { return x.femaleNouns.has(w) }

// IsMaleName and IsFemaleName match names exactly as written.
func (x *Lexicon) IsMaleName(w string) bool   { return x.maleNames.has(w) }
func (x *Lexicon) IsFemaleName(w string) bool { return x.femaleNames.has(w) }

// IsPersonName reports whether w is a known first name of either gender.
func (x *Lexicon) IsPersonName(w string) bool {
	return x.IsMaleName(w) || x.IsFemaleName(w)
}
