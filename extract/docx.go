package extract

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// documentXML mirrors the parts of word/document.xml we care about.
type documentXML struct {
	Body struct {
		Paragraphs []paragraph `xml:"p"`
	} `xml:"body"`
}

type paragraph struct {
	Runs []run `xml:"r"`
}

type run struct {
	Texts []string `xml:"t"`
}

// extractDOCX pulls the paragraph text out of a DOCX (OOXML zip) payload.
func extractDOCX(payload []byte) (string, error) {
	reader, err := zip.NewReader(bytes.NewReader(payload), int64(len(payload)))
	if err != nil {
		return "", fmt.Errorf("%w: not a zip archive", ErrCorruptDocument)
	}

	for _, file := range reader.File {
		if file.Name != "word/document.xml" {
			continue
		}

		rc, err := file.Open()
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrCorruptDocument, err)
		}
		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrCorruptDocument, err)
		}

		var doc documentXML
		if err := xml.Unmarshal(content, &doc); err != nil {
			return "", fmt.Errorf("%w: malformed document.xml", ErrCorruptDocument)
		}

		var b strings.Builder
		for _, p := range doc.Body.Paragraphs {
			var line strings.Builder
			for _, r := range p.Runs {
				for _, t := range r.Texts {
					line.WriteString(t)
				}
			}
			if line.Len() > 0 {
				b.WriteString(line.String())
			}
			b.WriteString("\n")
		}
		return strings.TrimSpace(b.String()), nil
	}

	// An archive without word/document.xml is not a word document.
	return "", fmt.Errorf("%w: missing word/document.xml", ErrCorruptDocument)
}
