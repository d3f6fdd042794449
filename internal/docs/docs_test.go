package docs

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/cognicore/themex/pkg/themex/internalerr"
)

func TestReadMissingFile(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "nope.md"))
	if !errors.Is(err, internalerr.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestReadPlainText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.txt")
	if err := os.WriteFile(path, []byte("plain content"), 0o644); err != nil {
		t.Fatal(err)
	}

	text, err := Read(path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if text != "plain content" {
		t.Errorf("text = %q", text)
	}
}

func TestReadHTMLStripsMarkup(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.html")
	content := "<html><body><h1>Title</h1><p>Hello world</p><script>var x = 1;</script></body></html>"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	text, err := Read(path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if !strings.Contains(text, "Hello world") {
		t.Errorf("text should keep content: %q", text)
	}
	if strings.Contains(text, "var x") {
		t.Errorf("text should drop scripts: %q", text)
	}
	if strings.Contains(text, "<p>") {
		t.Errorf("text should drop tags: %q", text)
	}
}

func TestStripMetadata(t *testing.T) {
	text := "Title: Paper\nAuthors: Someone\n\n## Extracted Text\n\nactual body"
	if got := StripMetadata(text); strings.TrimSpace(got) != "actual body" {
		t.Errorf("StripMetadata = %q", got)
	}
}

func TestStripMetadataWithoutMarker(t *testing.T) {
	text := "no marker anywhere"
	if got := StripMetadata(text); got != text {
		t.Errorf("StripMetadata = %q, want unchanged input", got)
	}
}

func TestListSortedAndFiltered(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.md", "a.txt", "c.html", "skip.pdf"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "nested"), 0o755); err != nil {
		t.Fatal(err)
	}

	paths, err := List(dir)
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	var names []string
	for _, p := range paths {
		names = append(names, filepath.Base(p))
	}
	want := []string{"a.txt", "b.md", "c.html"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("List = %v, want %v", names, want)
	}
}

func TestListMissingDir(t *testing.T) {
	_, err := List(filepath.Join(t.TempDir(), "nope"))
	if !errors.Is(err, internalerr.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}
