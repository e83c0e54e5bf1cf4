// Package document turns uploaded files into the plain text the extractor
// works on.
package document

import (
	"bytes"
	"fmt"
	"html"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/ledongthuc/pdf"
	"github.com/microcosm-cc/bluemonday"
	"github.com/nguyenthenguyen/docx"

	"searchfind/internal/errors"
)

// Format identifies a supported input format
type Format string

const (
	FormatText     Format = "txt"
	FormatMarkdown Format = "md"
	FormatPDF      Format = "pdf"
	FormatDOCX     Format = "docx"
	FormatHTML     Format = "html"
	FormatUnknown  Format = ""
)

const (
	mimePDF  = "application/pdf"
	mimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	mimeHTML = "text/html"
	mimeText = "text/plain"
)

var extensionFormats = map[string]Format{
	".txt":      FormatText,
	".text":     FormatText,
	".md":       FormatMarkdown,
	".markdown": FormatMarkdown,
	".pdf":      FormatPDF,
	".docx":     FormatDOCX,
	".html":     FormatHTML,
	".htm":      FormatHTML,
}

var (
	htmlBlockBreak = regexp.MustCompile(`(?i)<br\s*/?>|</(p|div|li|tr|h[1-6]|section|article|ul|ol)>`)
	docxBreak      = regexp.MustCompile(`</w:p>|<w:br/>|<w:cr/>`)
	docxTab        = regexp.MustCompile(`<w:tab/>`)
	inlineSpace    = regexp.MustCompile(`[ \t\f\v]+`)
	blankLines     = regexp.MustCompile(`\n{3,}`)
)

// FormatFromName maps a file name's extension to a format
func FormatFromName(name string) Format {
	return extensionFormats[strings.ToLower(filepath.Ext(name))]
}

// DetectFormat uses the file extension when known and falls back to content sniffing
func DetectFormat(name string, data []byte) Format {
	if f := FormatFromName(name); f != FormatUnknown {
		return f
	}

	mtype := mimetype.Detect(data)
	switch {
	case mtype.Is(mimePDF):
		return FormatPDF
	case mtype.Is(mimeDOCX):
		return FormatDOCX
	case mtype.Is(mimeHTML):
		return FormatHTML
	case mtype.Is(mimeText):
		return FormatText
	}
	return FormatUnknown
}

// Reader converts documents to text. It is safe for concurrent use.
type Reader struct {
	maxSize int64
	strip   *bluemonday.Policy
	logger  *errors.Logger
}

// NewReader creates a reader rejecting inputs above maxSize bytes; zero disables the limit
func NewReader(maxSize int64, logger *errors.Logger) *Reader {
	if logger == nil {
		logger = errors.NopLogger()
	}
	return &Reader{
		maxSize: maxSize,
		strip:   bluemonday.StrictPolicy(),
		logger:  logger,
	}
}

// ReadFile reads and converts the file at path
func (r *Reader) ReadFile(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.NewIOError(errors.ErrCodeFileNotFound,
				fmt.Sprintf("File not found: %s", path), err)
		}
		return "", errors.NewIOError(errors.ErrCodeFileReadFailed,
			fmt.Sprintf("Cannot access file: %s", path), err)
	}
	if info.IsDir() {
		return "", errors.NewValidationError(errors.ErrCodeFileReadFailed,
			fmt.Sprintf("Path is a directory, not a file: %s", path), nil)
	}
	if r.maxSize > 0 && info.Size() > r.maxSize {
		return "", errors.NewValidationError(errors.ErrCodeFileTooLarge,
			fmt.Sprintf("File %s is %d bytes, limit is %d", path, info.Size(), r.maxSize), nil)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.NewIOError(errors.ErrCodeFileReadFailed,
			fmt.Sprintf("Failed to read file content: %s", path), err)
	}
	return r.Convert(filepath.Base(path), data)
}

// ReadAll reads everything from src, enforcing the size limit, and converts it
func (r *Reader) ReadAll(name string, src io.Reader) (string, error) {
	limited := src
	if r.maxSize > 0 {
		limited = io.LimitReader(src, r.maxSize+1)
	}
	data, err := io.ReadAll(limited)
	if err != nil {
		return "", errors.NewIOError(errors.ErrCodeFileReadFailed, "Failed to read input", err)
	}
	if r.maxSize > 0 && int64(len(data)) > r.maxSize {
		return "", errors.NewValidationError(errors.ErrCodeFileTooLarge,
			fmt.Sprintf("Input exceeds %d bytes", r.maxSize), nil)
	}
	return r.Convert(name, data)
}

// Convert turns raw document bytes into normalized plain text
func (r *Reader) Convert(name string, data []byte) (string, error) {
	format := DetectFormat(name, data)

	var text string
	var err error
	switch format {
	case FormatText, FormatMarkdown:
		text = string(data)
	case FormatHTML:
		text = r.stripMarkup(htmlBlockBreak.ReplaceAllString(string(data), "$0\n"))
	case FormatPDF:
		text, err = extractPDFText(data)
	case FormatDOCX:
		text, err = r.extractDOCXText(data)
	default:
		return "", errors.NewValidationError(errors.ErrCodeUnsupportedFormat,
			fmt.Sprintf("Unsupported document format: %s (%s)", name, mimetype.Detect(data).String()), nil)
	}
	if err != nil {
		return "", errors.NewValidationError(errors.ErrCodeInvalidFormat,
			fmt.Sprintf("Failed to parse %s document: %s", format, name), err)
	}

	text = normalize(text)
	r.logger.Debug("Document converted",
		"name", name,
		"format", string(format),
		"bytes", len(data),
		"chars", len(text))
	return text, nil
}

func extractPDFText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		b.WriteString(text)
		b.WriteString("\n\n")
	}
	return b.String(), nil
}

func (r *Reader) extractDOCXText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	defer func() {
		if err := doc.Close(); err != nil {
			r.logger.Warn("Failed to close docx", "error", err.Error())
		}
	}()

	content := doc.Editable().GetContent()
	content = docxBreak.ReplaceAllString(content, "$0\n")
	content = docxTab.ReplaceAllString(content, "\t")
	return r.stripMarkup(content), nil
}

// stripMarkup removes every tag and decodes entities
func (r *Reader) stripMarkup(s string) string {
	return html.UnescapeString(r.strip.Sanitize(s))
}

// normalize collapses runs of inline whitespace and blank lines
func normalize(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(inlineSpace.ReplaceAllString(line, " "))
	}
	return strings.TrimSpace(blankLines.ReplaceAllString(strings.Join(lines, "\n"), "\n\n"))
}
