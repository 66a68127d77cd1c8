package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtract_PlainText(t *testing.T) {
	e := NewTextExtractor()

	got := e.Extract([]byte("Senior Go developer, 8 years"), "resume.txt")
	assert.Equal(t, "Senior Go developer, 8 years", got)
}

func TestExtract_SuffixIsCaseInsensitive(t *testing.T) {
	e := NewTextExtractor()

	got := e.Extract([]byte("hello"), "RESUME.TXT")
	assert.Equal(t, "hello", got)
}

func TestExtract_UnknownSuffixYieldsEmpty(t *testing.T) {
	e := NewTextExtractor()

	assert.Empty(t, e.Extract([]byte("anything"), "resume.png"))
	assert.Empty(t, e.Extract([]byte("anything"), "resume"))
}

func TestExtract_InvalidUTF8YieldsEmpty(t *testing.T) {
	e := NewTextExtractor()

	got := e.Extract([]byte{0xff, 0xfe, 0xfd}, "resume.txt")
	assert.Empty(t, got)
}

func TestExtract_CorruptPDFYieldsEmpty(t *testing.T) {
	e := NewTextExtractor()

	got := e.Extract([]byte("not a pdf at all"), "resume.pdf")
	assert.Empty(t, got)
}

func TestExtract_CorruptDocxYieldsEmpty(t *testing.T) {
	e := NewTextExtractor()

	got := e.Extract([]byte("not a zip archive"), "resume.docx")
	assert.Empty(t, got)
}
