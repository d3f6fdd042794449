package docs

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/net/html"

	"github.com/cognicore/themex/pkg/themex/internalerr"
)

// MetadataMarker terminates the metadata preamble that PDF extraction
// prepends to a document. Everything before and including the marker is
// skipped; a document without the marker is analyzed whole.
const MetadataMarker = "## Extracted Text"

var analyzable = map[string]struct{}{
	".md":       {},
	".markdown": {},
	".txt":      {},
	".html":     {},
	".htm":      {},
}

// Read loads a document and returns its analyzable plain text. HTML files
// are reduced to their text content first.
func Read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", internalerr.ErrNotFound, path)
		}
		return "", err
	}

	text := string(data)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		text = stripHTML(text)
	}
	return text, nil
}

// StripMetadata drops everything up to and including the metadata marker.
func StripMetadata(text string) string {
	if idx := strings.Index(text, MetadataMarker); idx >= 0 {
		return text[idx+len(MetadataMarker):]
	}
	return text
}

// List returns the analyzable files directly inside dir, sorted by name.
// Directory enumeration order is not trustworthy across filesystems, and
// batch aggregation output should not depend on it.
func List(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", internalerr.ErrNotFound, dir)
		}
		return nil, err
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if _, ok := analyzable[strings.ToLower(filepath.Ext(entry.Name()))]; !ok {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}

// stripHTML extracts the visible text content of an HTML document.
// Unparseable input falls back to the raw string.
func stripHTML(s string) string {
	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		return s
	}

	var buf strings.Builder
	var extractText func(*html.Node)
	extractText = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return
		}
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
			buf.WriteString(" ")
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extractText(c)
		}
	}
	extractText(doc)

	return strings.TrimSpace(buf.String())
}
