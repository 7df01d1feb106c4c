// Package resume turns uploaded resume PDFs into plain text for the
// optimization and cover-letter workflows.
package resume

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	pdfx "github.com/ledongthuc/pdf"
)

const (
	// MaxBytes caps the accepted upload size.
	MaxBytes = 20 * 1024 * 1024
	// MaxPages caps how many pages are read; resumes past this are truncated.
	MaxPages = 20
)

var ErrEmptyDocument = errors.New("no extractable text in pdf")

// ExtractText extracts the plain text of a PDF document.
func ExtractText(data []byte) (string, error) {
	if len(data) == 0 {
		return "", errors.New("empty pdf payload")
	}
	if len(data) > MaxBytes {
		return "", fmt.Errorf("pdf too large: %d bytes > limit %d", len(data), MaxBytes)
	}

	r, err := pdfx.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}

	pages := r.NumPage()
	if pages > MaxPages {
		pages = MaxPages
	}

	var b strings.Builder
	for i := 1; i <= pages; i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}

		text, err := p.GetPlainText(nil)
		if err != nil {
			continue
		}

		text = strings.TrimSpace(text)
		if len(text) > 0 {
			b.WriteString(text)
			b.WriteString("\n\n")
		}
	}

	out := strings.TrimSpace(b.String())
	if len(out) == 0 {
		return "", ErrEmptyDocument
	}

	return out, nil
}
