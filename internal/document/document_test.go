package document

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"searchfind/internal/errors"
)

func buildDocx(t *testing.T, body string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	files := map[string]string{
		"[Content_Types].xml":          `<?xml version="1.0" encoding="UTF-8"?><Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"></Types>`,
		"word/_rels/document.xml.rels": `<?xml version="1.0" encoding="UTF-8"?><Relationships></Relationships>`,
		"word/document.xml": `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
			`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` +
			body + `</w:body></w:document>`,
	}
	for _, name := range []string{"[Content_Types].xml", "word/_rels/document.xml.rels", "word/document.xml"} {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(files[name]))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func requireCode(t *testing.T, err error, code string) {
	t.Helper()
	appErr, ok := errors.As(err)
	require.True(t, ok, "expected AppError, got %v", err)
	assert.Equal(t, code, appErr.Code)
}

func TestFormatFromName(t *testing.T) {
	tests := map[string]Format{
		"resume.TXT":     FormatText,
		"notes.markdown": FormatMarkdown,
		"cv.pdf":         FormatPDF,
		"cv.docx":        FormatDOCX,
		"job.htm":        FormatHTML,
		"archive.zip":    FormatUnknown,
		"noext":          FormatUnknown,
	}
	for name, want := range tests {
		assert.Equal(t, want, FormatFromName(name), name)
	}
}

func TestDetectFormatSniffsContent(t *testing.T) {
	assert.Equal(t, FormatPDF, DetectFormat("upload", []byte("%PDF-1.4\n%\xe2\xe3\xcf\xd3\n1 0 obj\n")))
	assert.Equal(t, FormatHTML, DetectFormat("upload", []byte("<!DOCTYPE html><html><body><p>Hi</p></body></html>")))
	assert.Equal(t, FormatText, DetectFormat("upload", []byte("Jane Doe\nSoftware Engineer\n")))
	assert.Equal(t, FormatUnknown, DetectFormat("upload", []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")))
}

func TestConvertText(t *testing.T) {
	r := NewReader(0, nil)
	text, err := r.Convert("resume.txt", []byte("Jane   Doe\r\n\r\n\r\n\r\nSKILLS\n\tGo,  Python  \n"))
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\n\nSKILLS\nGo, Python", text)
}

func TestConvertHTML(t *testing.T) {
	r := NewReader(0, nil)
	page := `<html><head><style>p { color: red }</style><script>alert(1)</script></head>
<body><h1>Senior Go Engineer</h1><p>Acme &amp; Co is hiring.</p><ul><li>Go</li><li>Kubernetes</li></ul></body></html>`

	text, err := r.Convert("job.html", []byte(page))
	require.NoError(t, err)

	assert.Contains(t, text, "Senior Go Engineer\n")
	assert.Contains(t, text, "Acme & Co is hiring.")
	assert.Contains(t, text, "Go\nKubernetes")
	assert.NotContains(t, text, "alert")
	assert.NotContains(t, text, "color")
	assert.NotContains(t, text, "<")
}

func TestConvertDOCX(t *testing.T) {
	r := NewReader(0, nil)
	data := buildDocx(t,
		`<w:p><w:r><w:t>Jane Doe</w:t></w:r></w:p>`+
			`<w:p><w:r><w:t>EXPERIENCE</w:t></w:r></w:p>`+
			`<w:p><w:r><w:t>Engineer</w:t></w:r><w:r><w:tab/><w:t>Globex &amp; Sons</w:t></w:r></w:p>`)

	text, err := r.Convert("resume.docx", data)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\nEXPERIENCE\nEngineer Globex & Sons", text)
}

func TestConvertErrors(t *testing.T) {
	r := NewReader(0, nil)

	_, err := r.Convert("image.bin", []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"))
	requireCode(t, err, errors.ErrCodeUnsupportedFormat)

	_, err = r.Convert("broken.pdf", []byte("%PDF-1.4\nthis is not really a pdf\n"))
	requireCode(t, err, errors.ErrCodeInvalidFormat)

	_, err = r.Convert("broken.docx", []byte("not a zip archive"))
	requireCode(t, err, errors.ErrCodeInvalidFormat)
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resume.md")
	require.NoError(t, os.WriteFile(path, []byte("# Jane Doe\n\nGo developer\n"), 0600))

	t.Run("reads and converts", func(t *testing.T) {
		text, err := NewReader(1024, nil).ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "# Jane Doe\n\nGo developer", text)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := NewReader(0, nil).ReadFile(filepath.Join(dir, "absent.txt"))
		requireCode(t, err, errors.ErrCodeFileNotFound)
	})

	t.Run("too large", func(t *testing.T) {
		_, err := NewReader(5, nil).ReadFile(path)
		requireCode(t, err, errors.ErrCodeFileTooLarge)
	})

	t.Run("directory", func(t *testing.T) {
		_, err := NewReader(0, nil).ReadFile(dir)
		requireCode(t, err, errors.ErrCodeFileReadFailed)
	})
}

func TestReadAllLimit(t *testing.T) {
	r := NewReader(10, nil)

	text, err := r.ReadAll("short.txt", strings.NewReader("0123456789"))
	require.NoError(t, err)
	assert.Equal(t, "0123456789", text)

	_, err = r.ReadAll("long.txt", strings.NewReader("0123456789X"))
	requireCode(t, err, errors.ErrCodeFileTooLarge)
}
