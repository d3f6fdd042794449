package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/cognicore/themex/pkg/themex/internalerr"
)

func TestDefaultLanguage(t *testing.T) {
	lang := DefaultLanguage()
	if lang.IsZero() {
		t.Fatal("default language must not be zero")
	}
	if lang.ExtraLetters == "" {
		t.Error("default language should carry accented letters")
	}
	found := false
	for _, w := range lang.Stopwords {
		if w == "the" {
			found = true
			break
		}
	}
	if !found {
		t.Error("default stoplist should contain 'the'")
	}
}

func TestLoadLanguage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lang.yaml")
	content := `name: slovak
extra_letters: "áäčďéíľňóôŕšťúýž"
stopwords:
  - aby
  - ale
  - ako
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	lang, err := LoadLanguage(path)
	if err != nil {
		t.Fatalf("LoadLanguage: %v", err)
	}
	if lang.Name != "slovak" {
		t.Errorf("name = %s, want slovak", lang.Name)
	}
	if len(lang.Stopwords) != 3 {
		t.Errorf("stopwords = %v, want 3 entries", lang.Stopwords)
	}
}

func TestLoadLanguageEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.yaml")
	if err := os.WriteFile(path, []byte(""), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadLanguage(path); !errors.Is(err, internalerr.ErrInvalidConfig) {
		t.Errorf("err = %v, want ErrInvalidConfig", err)
	}
}

func TestLoadLanguageMissingFile(t *testing.T) {
	if _, err := LoadLanguage(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestLoaderDefaults(t *testing.T) {
	loader := Loader{}
	components, err := loader.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if components.Extractor == nil {
		t.Fatal("loader must construct an extractor")
	}
	if !components.Extractor.IsStopword("the") {
		t.Error("default extractor should filter 'the'")
	}
}

func TestLoaderWithLanguageFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lang.yaml")
	content := "name: test\nstopwords: [foo]\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	loader := Loader{LanguagePath: path}
	components, err := loader.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !components.Extractor.IsStopword("foo") {
		t.Error("loaded stoplist should filter 'foo'")
	}
	if components.Extractor.IsStopword("the") {
		t.Error("loaded language replaces the default stoplist")
	}
}
