package ingest

import (
	"archive/zip"
	"bytes"
	"fmt"
	"regexp"
	"strings"
)

// DOCX is a zip containing word/document.xml; we pull all <w:t> text nodes
// so content survives regardless of paragraph and run attributes.
var wtTag = regexp.MustCompile(`<w:t[^>]*>([^<]*)</w:t>`)

func extractDOCX(content []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("extract DOCX: not a zip: %w", err)
	}
	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return "", fmt.Errorf("extract DOCX: open %s: %w", f.Name, err)
		}
		var buf bytes.Buffer
		_, err = buf.ReadFrom(rc)
		_ = rc.Close()
		if err != nil {
			return "", fmt.Errorf("extract DOCX: read %s: %w", f.Name, err)
		}
		parts := wtTag.FindAllStringSubmatch(buf.String(), -1)
		var b strings.Builder
		for i, p := range parts {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(strings.TrimSpace(p[1]))
		}
		return strings.TrimSpace(b.String()), nil
	}
	return "", fmt.Errorf("extract DOCX: word/document.xml not found")
}
