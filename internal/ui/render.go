package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/lineseek/lineseek/internal/search"
)

// Renderer writes search results to a terminal or pipe.
type Renderer struct {
	out    io.Writer
	styles Styles
}

// NewRenderer creates a renderer writing to out with the given styles.
func NewRenderer(out io.Writer, styles Styles) *Renderer {
	return &Renderer{out: out, styles: styles}
}

// Render writes the results of a query, one document block per result,
// with the query highlighted inside each matching line.
func (r *Renderer) Render(query string, results []search.Result) {
	if len(results) == 0 {
		fmt.Fprintf(r.out, "no results for %q\n", query)
		return
	}

	for i, res := range results {
		if i > 0 {
			fmt.Fprintln(r.out)
		}
		fmt.Fprintf(r.out, "%s %s\n",
			r.styles.Ref.Render(res.Ref),
			r.styles.Score.Render(fmt.Sprintf("(score %.3f)", res.Score)))
		for _, line := range res.MatchingLines {
			fmt.Fprintf(r.out, "  %s\n", r.highlight(line, query))
		}
	}
	fmt.Fprintf(r.out, "\n%d document(s)\n", len(results))
}

// highlight wraps each literal occurrence of query in the match style.
func (r *Renderer) highlight(line, query string) string {
	if query == "" {
		return r.styles.Line.Render(line)
	}

	var sb strings.Builder
	rest := line
	for {
		i := strings.Index(rest, query)
		if i < 0 {
			sb.WriteString(r.styles.Line.Render(rest))
			break
		}
		sb.WriteString(r.styles.Line.Render(rest[:i]))
		sb.WriteString(r.styles.Match.Render(query))
		rest = rest[i+len(query):]
	}
	return sb.String()
}
