// Package extract performs best-effort text extraction from source files.
//
// Extraction is keyed on the file extension. It can fail on corrupt or
// unsupported content; callers are expected to absorb per-file failures.
package extract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	apperrors "github.com/lineseek/lineseek/internal/errors"
)

// Text extracts the textual content of the file at path.
func Text(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return pdfText(path)
	case ".txt", ".md":
		return plainText(path)
	default:
		return "", apperrors.New(apperrors.ErrCodeUnsupportedContent,
			fmt.Sprintf("no extractor for %s", filepath.Ext(path)), nil)
	}
}

// plainText reads a text file verbatim, rejecting content that is not
// valid UTF-8.
func plainText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%s: content is not valid UTF-8 text", filepath.Base(path))
	}
	return string(data), nil
}
