package extract

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
)

const (
	// maxExtractedChars bounds downstream prompt size and cost.
	maxExtractedChars = 50000
	truncationNotice  = "\n\n[Content truncated due to length...]"
)

// ErrUnsupportedContent is returned for content types the extractor cannot
// handle, currently images (OCR not implemented).
var ErrUnsupportedContent = errors.New("unsupported content: OCR not implemented")

// PDFParseError wraps a failure from the underlying PDF parser. The raw
// parser error never escapes without this wrapper.
type PDFParseError struct {
	Err error
}

func (e *PDFParseError) Error() string {
	if e.Err == nil {
		return "Failed to parse PDF"
	}
	return fmt.Sprintf("Failed to parse PDF: %v", e.Err)
}

func (e *PDFParseError) Unwrap() error { return e.Err }

// parsePDF is indirected so tests can inject parser outcomes.
var parsePDF = pdfPlainText

// FromBase64 extracts plain text from a base64-encoded payload. Dispatch is
// by primary MIME type, matched substring-wise with parameters ignored:
// PDF payloads go through the PDF parser, images always fail (no OCR), and
// anything else is treated as text with a best-effort decode fallback.
// Output longer than 50,000 characters is truncated with a notice suffix.
func FromBase64(payload, declaredMimeType string) (string, error) {
	mimeType := primaryType(declaredMimeType)

	switch {
	case strings.Contains(mimeType, "pdf"):
		raw, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			return "", &PDFParseError{Err: err}
		}
		text, err := parsePDF(raw)
		if err != nil {
			return "", &PDFParseError{Err: err}
		}
		return truncate(text), nil

	case strings.Contains(mimeType, "image"):
		return "", ErrUnsupportedContent

	default:
		// Text-like (text/plain, text/html, ...). A payload that is not
		// valid base64 passes through unchanged rather than failing.
		raw, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			return truncate(payload), nil
		}
		return truncate(string(raw)), nil
	}
}

func primaryType(mimeType string) string {
	return strings.ToLower(strings.TrimSpace(strings.Split(mimeType, ";")[0]))
}

func truncate(text string) string {
	if utf8.RuneCountInString(text) <= maxExtractedChars {
		return text
	}
	runes := []rune(text)
	return string(runes[:maxExtractedChars]) + truncationNotice
}

func pdfPlainText(data []byte) (string, error) {
	reader := bytes.NewReader(data)
	pdfReader, err := pdf.NewReader(reader, int64(len(data)))
	if err != nil {
		return "", err
	}
	plain, err := pdfReader.GetPlainText()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", err
	}
	return buf.String(), nil
}
