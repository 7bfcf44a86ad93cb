// SPDX-License-Identifier: GPL-2.0-only

package brcore

// NewStaticDictionary returns a small, representative static dictionary.
// Brotli's real dictionary is several hundred kilobytes of corpus-derived
// word fragments grouped by exact length and addressed by (length, index
// within that length's group) — spec §1 places its contents out of scope,
// so this ships only enough common English word and markup fragments to
// exercise the probing algorithm end to end. See DESIGN.md.
func NewStaticDictionary() *StaticDictionary {
	words := []string{
		"the", "and", "for", "that", "with", "this", "from", "have",
		"http", "https", "www.", ".com", ".org", ".net",
		"class", "style", "script", "function", "return", "value",
		"content", "type", "text", "html", "head", "body", "title",
		"image", "width", "height", "color", "background", "border",
		"public", "private", "static", "const", "struct", "import",
		"error", "index", "length", "number", "string", "object",
		"version", "name", "data", "true", "false", "null",
	}

	dict := &StaticDictionary{}
	for _, w := range words {
		b := []byte(w)
		dict.byLength[len(b)] = append(dict.byLength[len(b)], b)
	}
	return dict
}
