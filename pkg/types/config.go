// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// DefaultSearchRange is the number of preceding sentences whose mentions are
// eligible antecedents.
const DefaultSearchRange = 2

// ParserBackend identifies the constituency parser used by the syntax provider.
type ParserBackend string

const (
	ParserTreebank  ParserBackend = "treebank"
	ParserCoreNLP   ParserBackend = "corenlp"
	ParserContainer ParserBackend = "container"
)

// ParserConfig selects and configures the parser backend.
type ParserConfig struct {
	// Backend is one of treebank, corenlp or container (default treebank).
	Backend ParserBackend `json:"backend" yaml:"backend" mapstructure:"backend"`

	// TreebankPath is a file of pre-parsed sentences for the treebank backend.
	TreebankPath string `json:"treebank_path,omitempty" yaml:"treebank_path,omitempty" mapstructure:"treebank_path"`

	// CoreNLPURL is the base URL of a CoreNLP server (default http://localhost:9000).
	CoreNLPURL string `json:"corenlp_url,omitempty" yaml:"corenlp_url,omitempty" mapstructure:"corenlp_url"`

	// Image is the parser image for the container backend.
	Image string `json:"image,omitempty" yaml:"image,omitempty" mapstructure:"image"`

	// Timeout bounds a single sentence parse (default 30s).
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	// MaxRetries is the retry budget for busy CoreNLP servers (default 4).
	MaxRetries int `json:"max_retries" yaml:"max_retries" mapstructure:"max_retries"`
}

// LexiconConfig points at optional word-list overrides.
type LexiconConfig struct {
	// Path replaces the embedded gazetteer with a YAML file of the same shape.
	Path string `json:"path,omitempty" yaml:"path,omitempty" mapstructure:"path"`

	// MaleNames and FemaleNames are one-name-per-line files merged into the
	// seed name lists (e.g. the NLTK names corpus male.txt/female.txt).
	MaleNames   string `json:"male_names,omitempty" yaml:"male_names,omitempty" mapstructure:"male_names"`
	FemaleNames string `json:"female_names,omitempty" yaml:"female_names,omitempty" mapstructure:"female_names"`
}

// WordNetConfig locates the semantic network database.
type WordNetConfig struct {
	// Path is the SQLite database file (default wordnet/wordnet.db). When the
	// database has no senses the embedded seed taxonomy is imported.
	Path string `json:"path" yaml:"path" mapstructure:"path"`
}

// CorefConfig groups the resolver settings.
type CorefConfig struct {
	// SearchRange is how many sentences back antecedents are searched (default 2).
	SearchRange int `json:"search_range" yaml:"search_range" mapstructure:"search_range"`

	Parser  ParserConfig  `json:"parser" yaml:"parser" mapstructure:"parser"`
	Lexicon LexiconConfig `json:"lexicon" yaml:"lexicon" mapstructure:"lexicon"`
	WordNet WordNetConfig `json:"wordnet" yaml:"wordnet" mapstructure:"wordnet"`
}

// Defaults fills zero values with the documented defaults.
func (c *CorefConfig) Defaults() {
	if c.SearchRange <= 0 {
		c.SearchRange = DefaultSearchRange
	}
	if c.Parser.Backend == "" {
		c.Parser.Backend = ParserTreebank
	}
	if c.Parser.CoreNLPURL == "" {
		c.Parser.CoreNLPURL = "http://localhost:9000"
	}
	if c.Parser.Timeout <= 0 {
		c.Parser.Timeout = 30 * time.Second
	}
	if c.Parser.MaxRetries <= 0 {
		c.Parser.MaxRetries = 4
	}
	if c.WordNet.Path == "" {
		c.WordNet.Path = "wordnet/wordnet.db"
	}
}
