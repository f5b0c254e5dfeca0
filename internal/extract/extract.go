package extract

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ErrNoText is returned when a PDF parses but carries no extractable text
// layer, e.g. a pure scanned image.
var ErrNoText = errors.New("no extractable text in document")

// Text pulls the plain-text content out of a PDF byte buffer. Page breaks are
// flattened to newlines. Library used: github.com/ledongthuc/pdf.
func Text(ctx context.Context, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if len(data) == 0 {
		return "", fmt.Errorf("extract text: empty buffer: %w", ErrNoText)
	}

	reader := bytes.NewReader(data)
	pdfReader, err := pdf.NewReader(reader, int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("extract text: parse pdf: %w", err)
	}

	plain, err := pdfReader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("extract text: read text layer: %w", err)
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", fmt.Errorf("extract text: read text layer: %w", err)
	}

	text := Flatten(buf.String())
	if text == "" {
		return "", fmt.Errorf("extract text: %w", ErrNoText)
	}
	return text, nil
}

// Flatten trims the text and collapses blank-only lines so page boundaries
// read as single breaks.
func Flatten(raw string) string {
	lines := strings.Split(strings.ReplaceAll(raw, "\r\n", "\n"), "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if trimmed := strings.TrimRight(line, " \t"); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return strings.Join(out, "\n")
}
