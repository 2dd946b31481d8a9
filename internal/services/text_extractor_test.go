package services

import (
	"archive/zip"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractLiteralText(t *testing.T) {
	ex := NewTextExtractor()

	text, err := ex.Extract(Document{Text: "Go developer"})
	require.NoError(t, err)
	assert.Equal(t, "Go developer", text)

	_, err = ex.Extract(Document{Text: "   "})
	assert.ErrorIs(t, err, ErrNoTextExtracted)
}

func TestExtractPlainTextFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte("Python engineer, 5 years experience"), 0o600))

	text, err := NewTextExtractor().Extract(Document{Path: path})
	require.NoError(t, err)
	assert.Contains(t, text, "Python engineer")
}

func TestExtractEmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte("\n\n  "), 0o600))

	_, err := NewTextExtractor().ExtractFile(path)
	assert.ErrorIs(t, err, ErrNoTextExtracted)
}

func TestExtractInvalidPDF(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resume.pdf")
	require.NoError(t, os.WriteFile(path, []byte("this is not a pdf"), 0o600))

	_, err := NewTextExtractor().ExtractFile(path)
	assert.ErrorIs(t, err, ErrNoTextExtracted)
}

func TestExtractMultiPagePDF(t *testing.T) {
	text, err := NewTextExtractor().ExtractFile(filepath.Join("testdata", "resume.pdf"))
	require.NoError(t, err)

	lines := []string{
		"Jane Doe",
		"Senior Software Engineer",
		"Bachelor of Science in Computer Science",
		"5 years of experience with Python and Kubernetes",
		"Built data pipelines on AWS",
	}
	last := -1
	for _, line := range lines {
		idx := strings.Index(text, line)
		require.GreaterOrEqual(t, idx, 0, "missing %q in %q", line, text)
		assert.Greater(t, idx, last, "%q out of page order", line)
		last = idx
	}

	signals := NewFeatureExtractor(nil).Extract(text)
	require.NotNil(t, signals.ExperienceYears)
	assert.Equal(t, 5, *signals.ExperienceYears)
	assert.Contains(t, signals.Skills, "Python")
	assert.Contains(t, signals.Skills, "Kubernetes")
	assert.Contains(t, signals.Skills, "AWS")
	assert.Contains(t, signals.Education, "bachelors")
}

func TestExtractUnsupportedExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resume.odt")
	require.NoError(t, os.WriteFile(path, []byte("content"), 0o600))

	_, err := NewTextExtractor().ExtractFile(path)
	require.ErrorIs(t, err, ErrNoTextExtracted)
	assert.Contains(t, err.Error(), "unsupported file type: .odt")
}

func TestExtractMissingFile(t *testing.T) {
	_, err := NewTextExtractor().ExtractFile(filepath.Join(t.TempDir(), "missing.pdf"))
	assert.ErrorIs(t, err, ErrNoTextExtracted)
}

func TestExtractDOCX(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resume.docx")

	f, err := os.Create(path)
	require.NoError(t, err)

	zw := zip.NewWriter(f)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:body><w:p><w:r><w:t>Golang engineer with Kubernetes</w:t></w:r></w:p></w:body>
</w:document>`))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	text, err := NewTextExtractor().ExtractFile(path)
	require.NoError(t, err)
	assert.Contains(t, text, "Golang engineer with Kubernetes")
}
