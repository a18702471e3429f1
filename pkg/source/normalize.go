package source

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Form selects the Unicode normalization applied to text before it is split
// into lines. Columns count code points, so a decomposed accent occupies a
// column of its own unless the text is normalized to NFC.
type Form string

// Normalization forms.
const (
	FormNone Form = "none"
	FormNFC  Form = "nfc"
	FormNFD  Form = "nfd"
)

// ParseForm parses a form name case-insensitively. The empty string is FormNone.
func ParseForm(name string) (Form, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none":
		return FormNone, nil
	case "nfc":
		return FormNFC, nil
	case "nfd":
		return FormNFD, nil
	default:
		return "", fmt.Errorf("unknown normalization form %q; valid forms: none, nfc, nfd", name)
	}
}

// Normalize applies the form to text.
func (f Form) Normalize(text string) string {
	switch f {
	case FormNFC:
		return norm.NFC.String(text)
	case FormNFD:
		return norm.NFD.String(text)
	default:
		return text
	}
}

// NewNormalizedFileContent normalizes text and then splits it like NewFileContent.
func NewNormalizedFileContent(name, text string, form Form) *FileContent {
	return NewFileContent(name, form.Normalize(text))
}
