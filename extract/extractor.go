// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package extract

import (
	"fmt"
	"strings"
)

// Format identifies the declared binary format of an uploaded document.
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatDOCX Format = "docx"
	FormatDOC  Format = "doc"
	FormatTXT  Format = "txt"
)

// ParseFormat maps a file extension or format tag to a Format.
// The leading dot and case are ignored.
func ParseFormat(tag string) (Format, error) {
	tag = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(tag), "."))
	switch Format(tag) {
	case FormatPDF, FormatDOCX, FormatDOC, FormatTXT:
		return Format(tag), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, tag)
}

// Extract converts a document payload into plain text.
//
// An empty result is valid: an empty document yields empty text, and the
// field extraction heuristics downstream treat it as "nothing found".
// Extraction failure is terminal for the document; no retry logic lives here.
func Extract(payload []byte, format Format) (string, error) {
	// A zero-length payload is an empty document in any format.
	if len(payload) == 0 {
		return "", nil
	}

	switch format {
	case FormatPDF:
		return extractPDF(payload)
	case FormatDOCX:
		return extractDOCX(payload)
	case FormatDOC:
		// Legacy .doc files are frequently DOCX archives with the wrong
		// extension; try the DOCX path before giving up.
		text, err := extractDOCX(payload)
		if err != nil {
			return "", fmt.Errorf("%w: legacy doc payload is not a readable archive", ErrCorruptDocument)
		}
		return text, nil
	case FormatTXT:
		return strings.TrimSpace(string(payload)), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
}
