package ui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lineseek/lineseek/internal/search"
)

func TestRenderer_NoResults(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, PlainStyles())

	r.Render("missing", nil)

	assert.Contains(t, buf.String(), `no results for "missing"`)
}

func TestRenderer_PlainOutput(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, PlainStyles())

	r.Render("quick", []search.Result{
		{Ref: "a.txt", Score: 1.5, MatchingLines: []string{"The quick fox"}},
		{Ref: "b.txt", Score: 0.5, MatchingLines: []string{"quick one", "very quick"}},
	})

	out := buf.String()
	assert.Contains(t, out, "a.txt")
	assert.Contains(t, out, "(score 1.500)")
	assert.Contains(t, out, "  The quick fox")
	assert.Contains(t, out, "  quick one")
	assert.Contains(t, out, "2 document(s)")
}

func TestRenderer_HighlightKeepsLineText(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, PlainStyles())

	// Plain styles render text unchanged, so highlighting must be lossless.
	r.Render("fox", []search.Result{
		{Ref: "a.txt", Score: 1, MatchingLines: []string{"fox meets fox"}},
	})

	assert.Contains(t, buf.String(), "fox meets fox")
}
