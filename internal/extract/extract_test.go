package extract

import (
	"archive/zip"
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"interview-prep/internal/domain"
)

func buildDocx(t *testing.T, documentXML string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(documentXML))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

const sampleDocumentXML = `<?xml version="1.0" encoding="UTF-8"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>Senior Software Engineer</w:t></w:r></w:p>
    <w:p><w:r><w:t>Developed services with Go and Docker</w:t></w:r></w:p>
  </w:body>
</w:document>`

func TestText_DOCX(t *testing.T) {
	data := buildDocx(t, sampleDocumentXML)

	text, err := Text(data, MimeDOCX, "resume.docx")
	require.NoError(t, err)
	assert.Contains(t, text, "Senior Software Engineer")
	assert.Contains(t, text, "Developed services with Go and Docker")
}

func TestText_DOCXParagraphsBecomeLines(t *testing.T) {
	data := buildDocx(t, sampleDocumentXML)

	text, err := Text(data, MimeDOCX, "resume.docx")
	require.NoError(t, err)
	assert.Contains(t, text, "Engineer\n")
}

func TestText_ZipMimeSniffedAsDOCX(t *testing.T) {
	data := buildDocx(t, sampleDocumentXML)

	text, err := Text(data, "application/zip", "resume.docx")
	require.NoError(t, err)
	assert.Contains(t, text, "Senior Software Engineer")
}

func TestText_PDFRejectedWithHint(t *testing.T) {
	_, err := Text([]byte("%PDF-1.4"), MimePDF, "resume.pdf")
	require.Error(t, err)

	var domainErr *domain.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, domain.CodeUnsupportedFile, domainErr.Code)
	assert.Contains(t, domainErr.Message, "PDF support is coming soon")
}

func TestText_UnknownTypeRejected(t *testing.T) {
	_, err := Text([]byte("hello"), "text/plain", "resume.txt")
	require.Error(t, err)

	var domainErr *domain.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, domain.CodeUnsupportedFile, domainErr.Code)
}

func TestText_CorruptDOCX(t *testing.T) {
	_, err := Text([]byte("not a zip archive"), MimeDOCX, "resume.docx")
	assert.Error(t, err)
}

func TestText_DOCXMissingDocumentXML(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/styles.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte("<styles/>"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	_, err = Text(buf.Bytes(), MimeDOCX, "resume.docx")
	assert.Error(t, err)
}
