// Package pdftext extracts plain text from uploaded PDF resumes.
package pdftext

import (
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"

	apperrors "github.com/APVS-BRO/ai-careers-hub/internal/errors"
)

// Extractor implements core.ResumeTextExtractor on top of a pure-Go PDF
// parser.
type Extractor struct{}

// NewExtractor constructs a PDF text extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractText parses the PDF and returns its concatenated plain text. Files
// that are not valid PDFs, or that contain no extractable text, report as
// validation errors so callers can reject the upload.
func (e *Extractor) ExtractText(r io.ReaderAt, size int64) (string, error) {
	reader, err := pdf.NewReader(r, size)
	if err != nil {
		return "", apperrors.ValidationField("resumeFile", fmt.Sprintf("file is not a readable PDF: %v", err))
	}

	content, err := reader.GetPlainText()
	if err != nil {
		return "", apperrors.ValidationField("resumeFile", fmt.Sprintf("PDF text extraction failed: %v", err))
	}

	var builder strings.Builder
	if _, err := io.Copy(&builder, content); err != nil {
		return "", fmt.Errorf("read PDF text: %w", err)
	}

	text := strings.TrimSpace(builder.String())
	if text == "" {
		return "", apperrors.ValidationField("resumeFile", "PDF contains no extractable text")
	}
	return text, nil
}
