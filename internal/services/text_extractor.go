package services

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"code.sajari.com/docconv"
	"github.com/ledongthuc/pdf"
)

// ErrNoTextExtracted is returned whenever a document yields no usable text,
// whatever the underlying cause.
var ErrNoTextExtracted = errors.New("no text content found in document")

// Document is the subject of an analysis: either a file on disk or literal text.
type Document struct {
	Path string
	Text string
}

type TextExtractor interface {
	Extract(doc Document) (string, error)
	ExtractFile(path string) (string, error)
}

type textExtractor struct{}

func NewTextExtractor() TextExtractor {
	return &textExtractor{}
}

func (t *textExtractor) Extract(doc Document) (string, error) {
	if doc.Path != "" {
		return t.ExtractFile(doc.Path)
	}
	if strings.TrimSpace(doc.Text) == "" {
		return "", ErrNoTextExtracted
	}
	return doc.Text, nil
}

func (t *textExtractor) ExtractFile(path string) (string, error) {
	var (
		text string
		err  error
	)

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".pdf":
		text, err = extractPDF(path)
	case ".docx":
		text, err = extractDOCX(path)
	case ".txt":
		var data []byte
		data, err = os.ReadFile(path)
		text = string(data)
	default:
		err = fmt.Errorf("unsupported file type: %s", ext)
	}

	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNoTextExtracted, err)
	}
	if strings.TrimSpace(text) == "" {
		return "", ErrNoTextExtracted
	}

	return text, nil
}

func extractPDF(path string) (text string, err error) {
	// The pdf package panics on some malformed inputs.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("failed to parse PDF: %v", r)
		}
	}()

	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	var textBuilder strings.Builder
	totalPage := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		pageText, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}

		textBuilder.WriteString(pageText)
		textBuilder.WriteString("\n")
	}

	return textBuilder.String(), nil
}

func extractDOCX(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open DOCX: %w", err)
	}
	defer f.Close()

	body, _, err := docconv.ConvertDocx(f)
	if err != nil {
		return "", fmt.Errorf("failed to convert DOCX: %w", err)
	}

	return body, nil
}
