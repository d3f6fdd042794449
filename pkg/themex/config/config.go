package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/themex/pkg/themex/internalerr"
)

// Language bundles the fixed alphabet extension and stopword list the
// extractor works with. Supporting another language means loading a
// different file, not touching the pipeline.
type Language struct {
	Name         string   `yaml:"name"`
	ExtraLetters string   `yaml:"extra_letters"`
	Stopwords    []string `yaml:"stopwords"`
}

// IsZero reports whether the language carries no configuration at all.
func (l Language) IsZero() bool {
	return l.Name == "" && l.ExtraLetters == "" && len(l.Stopwords) == 0
}

// DefaultLanguage returns the built-in configuration: an English
// function-word stoplist plus the accented letters of the source corpus.
func DefaultLanguage() Language {
	return Language{
		Name:         "default",
		ExtraLetters: "áäčďéíľňóôŕšťúýž",
		Stopwords: []string{
			"the", "a", "an", "and", "or", "but", "in", "on", "at", "to", "for",
			"of", "with", "by", "from", "as", "is", "was", "are", "were", "been",
			"be", "have", "has", "had", "do", "does", "did", "will", "would",
			"should", "could", "may", "might", "must", "can", "this", "that",
			"these", "those", "i", "you", "he", "she", "it", "we", "they",
			"what", "which", "who", "when", "where", "why", "how",
		},
	}
}

// LoadLanguage loads a language definition from a YAML file.
func LoadLanguage(path string) (Language, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Language{}, err
	}

	var lang Language
	if err := yaml.Unmarshal(data, &lang); err != nil {
		return Language{}, err
	}
	if lang.IsZero() {
		return Language{}, fmt.Errorf("%w: %s defines no language", internalerr.ErrInvalidConfig, path)
	}

	return lang, nil
}
