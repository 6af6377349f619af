// Package corpus holds the immutable document corpus built at bootstrap.
package corpus

import (
	"path/filepath"
	"strings"
)

// Document is the immutable indexed unit derived from one source file.
type Document struct {
	// ID is the source filename, unique within the corpus.
	ID string

	// Title is the filename without its extension.
	Title string

	// Body is the raw extracted text.
	Body string

	// Lines holds the non-blank lines of Body, in original order.
	Lines []string
}

// NewDocument builds a Document from a source filename and its extracted
// text. Blank and whitespace-only lines are dropped; order is preserved.
func NewDocument(filename, body string) *Document {
	return &Document{
		ID:    filename,
		Title: strings.TrimSuffix(filename, filepath.Ext(filename)),
		Body:  body,
		Lines: splitLines(body),
	}
}

// splitLines splits text on line breaks and discards blank entries.
func splitLines(text string) []string {
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		if strings.TrimSpace(strings.TrimSuffix(line, "\r")) == "" {
			continue
		}
		lines = append(lines, strings.TrimSuffix(line, "\r"))
	}
	return lines
}
