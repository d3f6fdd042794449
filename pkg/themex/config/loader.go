package config

import (
	"fmt"

	"github.com/cognicore/themex/pkg/themex/extract"
)

// Loader resolves configuration files into ready components.
type Loader struct {
	LanguagePath string
}

// Components holds the loaded configuration components.
type Components struct {
	Language  Language
	Extractor *extract.Extractor
}

// Load reads the language file when one is given, falling back to the
// built-in defaults otherwise.
func (l *Loader) Load() (*Components, error) {
	lang := DefaultLanguage()
	if l.LanguagePath != "" {
		loaded, err := LoadLanguage(l.LanguagePath)
		if err != nil {
			return nil, fmt.Errorf("load language: %w", err)
		}
		lang = loaded
	}

	return &Components{
		Language:  lang,
		Extractor: extract.New(lang.ExtraLetters, lang.Stopwords),
	}, nil
}
