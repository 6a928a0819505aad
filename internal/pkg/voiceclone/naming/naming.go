package naming

import (
	"fmt"
	"regexp"
	"strings"
)

const maxNameLen = 100

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	unsafeRe     = regexp.MustCompile(`[^A-Za-z0-9._-]`)
)

// Sanitize makes a string safe for use inside a filename. Whitespace runs
// become underscores and anything outside [A-Za-z0-9._-] is dropped. An empty
// result falls back to "utt".
func Sanitize(name string) string {
	name = strings.TrimSpace(name)
	name = whitespaceRe.ReplaceAllString(name, "_")
	name = unsafeRe.ReplaceAllString(name, "")
	if name == "" {
		return "utt"
	}
	if len(name) > maxNameLen {
		return name[:maxNameLen]
	}
	return name
}

// Slug builds a short filename fragment from the first six words of text.
func Slug(text string) string {
	words := strings.Fields(text)
	if len(words) > 6 {
		words = words[:6]
	}
	return Sanitize(strings.Join(words, " "))
}

// DetailedName is the output filename for the detailed variant.
func DetailedName(index int, id, slug string) string {
	if slug == "" {
		return fmt.Sprintf("%03d_%s.wav", index, id)
	}
	return fmt.Sprintf("%03d_%s_%s.wav", index, id, slug)
}

// AdvancedName is the output filename for one (row, language) pair in the
// advanced variant. The file lives under a per-language subdirectory.
func AdvancedName(index int, id, slug, lang string) string {
	if slug == "" {
		slug = "utt"
	}
	return fmt.Sprintf("%03d_%s_%s.%s.wav", index, id, slug, lang)
}
