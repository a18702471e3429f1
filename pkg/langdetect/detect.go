// Package langdetect recognizes files that were written in some other
// language and handed to the calculator by mistake. It uses go-enry for
// shebangs and extensions and a few content patterns for the rest.
package langdetect

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// Extension is the calculator source extension. Linguist maps ".fx" to
// HLSL, so it is never looked up.
const Extension = ".fx"

const (
	langGo         = "go"
	langPython     = "python"
	langJavaScript = "javascript"
	langJSON       = "json"
	langHTML       = "html"
	langSQL        = "sql"
	langRust       = "rust"
	langBash       = "bash"
)

// Guess returns the lowercase name of the language content appears to be
// written in, or "" when nothing points away from the calculator language.
func Guess(path string, content []byte) string {
	trimmed := bytes.TrimSpace(content)
	if len(trimmed) == 0 {
		return ""
	}

	if lang, safe := enry.GetLanguageByShebang(content); safe {
		return normalize(lang)
	}

	if ext := filepath.Ext(path); ext != "" && !strings.EqualFold(ext, Extension) {
		if lang, safe := enry.GetLanguageByExtension(path); safe {
			return normalize(lang)
		}
	}

	return detectByPattern(trimmed)
}

// detectByPattern checks for patterns that calculator programs never contain.
func detectByPattern(trimmed []byte) string {
	text := string(trimmed)
	lower := strings.ToLower(text)

	switch {
	case strings.HasPrefix(text, "package "):
		return langGo
	case strings.Contains(text, "def ") && strings.Contains(text, "):"),
		strings.Contains(text, "__name__"),
		strings.HasPrefix(text, "import ") && !strings.HasPrefix(text, "import ("):
		return langPython
	case strings.Contains(lower, "<!doctype html"), strings.Contains(lower, "<html"):
		return langHTML
	case (trimmed[0] == '{' || trimmed[0] == '[') && strings.Contains(text, `"`):
		return langJSON
	case hasAnyPrefix(strings.ToUpper(text), "SELECT ", "INSERT ", "UPDATE ", "DELETE ", "CREATE "):
		return langSQL
	case strings.Contains(text, "fn main()"), strings.Contains(text, "println!"):
		return langRust
	case strings.Contains(text, "=>"), strings.Contains(text, "console.log"), strings.Contains(text, "function "):
		return langJavaScript
	}
	return ""
}

func hasAnyPrefix(text string, prefixes ...string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(text, prefix) {
			return true
		}
	}
	return false
}

// normalize converts go-enry language names to short lowercase names.
func normalize(lang string) string {
	if lang == "Shell" {
		return langBash
	}
	return strings.ToLower(lang)
}
