package document

import (
	"errors"
	"testing"
)

func TestExtractPDFTextRejectsNonPDF(t *testing.T) {
	if _, err := ExtractPDFText([]byte("\x89PNG....")); !errors.Is(err, ErrNotPDF) {
		t.Fatalf("err=%v, want ErrNotPDF", err)
	}
}

func TestExtractPDFTextMalformed(t *testing.T) {
	if _, err := ExtractPDFText([]byte("%PDF-1.4\ngarbage without xref")); err == nil {
		t.Fatal("malformed PDF must return an error")
	}
}
