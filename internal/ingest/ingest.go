// Package ingest pulls record texts out of document files so a corpus can
// be imported in one action instead of typed sentence by sentence.
package ingest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Extract reads the file at path and returns its plain text content.
// Supported formats: plain text (.txt, .md, .rst), PDF, DOCX, and XLSX.
// Unknown extensions are treated as plain text.
func Extract(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read file: %w", err)
	}
	return ExtractBytes(content, strings.ToLower(filepath.Ext(path)))
}

// ExtractBytes extracts text from content based on the extension, which
// should include the leading dot (e.g. ".pdf").
func ExtractBytes(content []byte, ext string) (string, error) {
	switch ext {
	case ".pdf":
		return extractPDF(content)
	case ".docx":
		return extractDOCX(content)
	case ".xlsx":
		return extractExcel(content)
	default:
		return extractPlain(content)
	}
}

// Sentences splits text into candidate record texts: sentence-terminated
// runs and standalone lines, trimmed, with blanks dropped. Terminators are
// kept off the result so imported records read like typed input.
func Sentences(text string) []string {
	var out []string
	var b strings.Builder
	flush := func() {
		s := strings.TrimSpace(b.String())
		b.Reset()
		if s != "" {
			out = append(out, s)
		}
	}
	for _, r := range text {
		switch r {
		case '.', '!', '?', '\n', '\r':
			flush()
		default:
			b.WriteRune(r)
		}
	}
	flush()
	return out
}
