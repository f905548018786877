package services

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"

	"alfredoptarigan/resume-matcher/internal/models"
)

// TextExtractor turns uploaded resumes into lowercase plain text.
type TextExtractor interface {
	// Extract parses an in-memory document. Unsupported types yield "".
	Extract(doc *models.RawDocument) (string, error)
	// ExtractFile reads a stored document by key and extracts it.
	ExtractFile(ctx context.Context, key string) (string, error)
}

type textExtractor struct {
	files FileReader
}

func NewTextExtractor(files FileReader) TextExtractor {
	return &textExtractor{files: files}
}

func (e *textExtractor) ExtractFile(ctx context.Context, key string) (string, error) {
	if e.files == nil {
		return "", fmt.Errorf("%w: no file storage configured", ErrExtraction)
	}

	data, err := e.files.ReadFile(ctx, key)
	if err != nil {
		return "", fmt.Errorf("%w: failed to read %s: %w", ErrExtraction, key, err)
	}

	return e.Extract(models.NewRawDocument(key, data))
}

func (e *textExtractor) Extract(doc *models.RawDocument) (string, error) {
	if doc == nil {
		return "", fmt.Errorf("%w: no document to extract", ErrExtraction)
	}

	var (
		text string
		err  error
	)

	switch doc.Type {
	case models.DocumentTypePDF:
		text, err = extractPDFText(doc.Data)
	case models.DocumentTypeDOCX:
		text, err = extractDocxText(doc.Data)
	default:
		return "", nil
	}
	if err != nil {
		return "", err
	}

	return strings.ToLower(CleanText(text)), nil
}

func extractPDFText(data []byte) (text string, err error) {
	// The pdf package panics on some malformed object streams.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("%w: malformed PDF: %v", ErrExtraction, r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: failed to open PDF: %w", ErrExtraction, err)
	}

	var textBuilder strings.Builder
	totalPage := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		pageText, err := page.GetPlainText(nil)
		if err != nil {
			// Keep whatever the other pages give us.
			continue
		}

		textBuilder.WriteString(pageText)
		textBuilder.WriteString("\n\n")
	}

	return textBuilder.String(), nil
}

var (
	docxLineBreaks = strings.NewReplacer("</w:p>", "\n", "<w:br/>", "\n", "<w:tab/>", "\t")
	xmlTags        = regexp.MustCompile(`<[^>]+>`)
)

func extractDocxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: failed to open DOCX: %w", ErrExtraction, err)
	}
	defer doc.Close()

	return docxXMLToText(doc.Editable().GetContent()), nil
}

// docxXMLToText flattens word/document.xml. Runs are joined without a
// separator because Word splits single words across runs.
func docxXMLToText(content string) string {
	text := docxLineBreaks.Replace(content)
	text = xmlTags.ReplaceAllString(text, "")
	return html.UnescapeString(text)
}

// CleanText trims every line and drops blank ones.
func CleanText(text string) string {
	text = strings.TrimSpace(text)

	lines := strings.Split(text, "\n")
	var cleanedLines []string

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			cleanedLines = append(cleanedLines, line)
		}
	}

	return strings.Join(cleanedLines, "\n")
}
