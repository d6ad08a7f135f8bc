// Package resume extracts a plain-text rendition of the owner's resume
// PDF for the site's text endpoint and the CLI.
package resume

import (
	"bytes"
	"fmt"
	"strings"
	"sync"

	"github.com/ledongthuc/pdf"
)

// Resume lazily extracts and caches the text of a resume PDF. The PDF
// is read at most once; subsequent calls return the cached result.
type Resume struct {
	path string

	once sync.Once
	text string
	err  error
}

// New creates a Resume for the PDF at path. The file is not touched
// until Text is called.
func New(path string) *Resume {
	return &Resume{path: path}
}

// Path returns the configured PDF path.
func (r *Resume) Path() string {
	return r.path
}

// Text returns the extracted plain text of the PDF.
func (r *Resume) Text() (string, error) {
	r.once.Do(func() {
		r.text, r.err = ExtractText(r.path)
	})
	return r.text, r.err
}

// ExtractText reads the PDF at path and returns its plain text.
func ExtractText(path string) (string, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening resume pdf: %w", err)
	}
	defer f.Close()

	plain, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("extracting resume text: %w", err)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(plain); err != nil {
		return "", fmt.Errorf("reading resume text: %w", err)
	}

	text := strings.TrimSpace(buf.String())
	if text == "" {
		return "", fmt.Errorf("resume pdf contains no extractable text")
	}
	return text, nil
}
