package resume

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	pdfextractor "github.com/unidoc/unipdf/v3/extractor"
	pdfmodel "github.com/unidoc/unipdf/v3/model"
)

// ErrUnreadableDocument marks a payload that cannot be parsed as a well-formed
// document of its declared format.
var ErrUnreadableDocument = errors.New("unreadable document")

// TextExtractor turns an uploaded document payload into plain lowercase text
// with normalized whitespace. It is a pure transformation: same bytes in, same
// text out, no side effects.
type TextExtractor struct{}

func NewTextExtractor() *TextExtractor {
	return &TextExtractor{}
}

// ExtractText dispatches on the file extension. PDFs go through unipdf; text
// files pass through as-is. Anything else is treated as raw text, matching the
// best-effort behavior for DOC/DOCX payloads the upload layer lets through.
func (e *TextExtractor) ExtractText(data []byte, filename string) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		text, err := extractPDFText(data)
		if err != nil {
			return "", err
		}
		return normalizeText(text), nil
	default:
		return normalizeText(string(data)), nil
	}
}

func extractPDFText(data []byte) (string, error) {
	reader, err := pdfmodel.NewPdfReader(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnreadableDocument, err)
	}

	numPages, err := reader.GetNumPages()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnreadableDocument, err)
	}
	if numPages == 0 {
		return "", fmt.Errorf("%w: document has no pages", ErrUnreadableDocument)
	}

	var b strings.Builder
	extracted := false
	for i := 1; i <= numPages; i++ {
		page, err := reader.GetPage(i)
		if err != nil {
			continue
		}
		ex, err := pdfextractor.New(page)
		if err != nil {
			continue
		}
		pageText, err := ex.ExtractText()
		if err != nil {
			continue
		}
		if pageText != "" {
			extracted = true
			b.WriteString(pageText)
			b.WriteString("\n")
		}
	}

	if !extracted {
		return "", fmt.Errorf("%w: no extractable text", ErrUnreadableDocument)
	}
	return b.String(), nil
}

// normalizeText lower-cases and collapses whitespace runs to single spaces.
// The text only feeds substring matchers, so layout is irrelevant.
func normalizeText(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
