// Package text holds the string helpers shared by the extraction, analysis
// and generation stages: slug and case conversion, class-token cleaning,
// HTML escaping and attribute formatting.
package text

import (
	"sort"
	"strings"
	"unicode"
)

// DynamicMarker is the documentation placeholder for "this part of the class
// is dynamic at runtime". It is stripped from class attributes before the
// sample is analyzed.
const DynamicMarker = "$$"

// CleanClass removes every occurrence of the dynamic marker from a class
// attribute value. Idempotent.
func CleanClass(s string) string {
	return strings.ReplaceAll(s, DynamicMarker, "")
}

// slugSymbols maps glyphs that appear in documentation titles (keyboard keys,
// directional arrows) to ASCII words.
var slugSymbols = map[rune]string{
	'←': "left",
	'↑': "up",
	'→': "right",
	'↓': "down",
	'⌘': "cmd",
	'⌥': "opt",
	'⇧': "shift",
	'⌃': "ctrl",
}

// Slugify turns an arbitrary title into a lower_snake identifier. Symbol
// glyphs become words, anything outside [a-z0-9 _] is dropped, runs of
// whitespace collapse to single underscores. A slug starting with a digit
// gets a leading underscore so it stays a valid identifier; an empty result
// becomes "example".
func Slugify(s string) string {
	var expanded strings.Builder
	for _, r := range s {
		if word, ok := slugSymbols[r]; ok {
			expanded.WriteByte(' ')
			expanded.WriteString(word)
			expanded.WriteByte(' ')
			continue
		}
		expanded.WriteRune(unicode.ToLower(r))
	}

	var kept strings.Builder
	for _, r := range expanded.String() {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_':
			kept.WriteRune(r)
		case unicode.IsSpace(r):
			kept.WriteByte(' ')
		}
	}

	slug := strings.Join(strings.Fields(kept.String()), "_")
	slug = strings.Trim(slug, "_")
	if slug == "" {
		return "example"
	}
	if slug[0] >= '0' && slug[0] <= '9' {
		slug = "_" + slug
	}
	return slug
}

// PascalCase converts a hyphen/underscore/space separated name into an
// exported Go identifier: "radio-button" becomes "RadioButton".
func PascalCase(s string) string {
	var b strings.Builder
	for _, part := range strings.FieldsFunc(s, func(r rune) bool {
		return r == '-' || r == '_' || unicode.IsSpace(r)
	}) {
		r := []rune(part)
		b.WriteRune(unicode.ToUpper(r[0]))
		b.WriteString(string(r[1:]))
	}
	return b.String()
}

// LowerCamel is PascalCase with a lowered first rune.
func LowerCamel(s string) string {
	p := PascalCase(s)
	if p == "" {
		return ""
	}
	r := []rune(p)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}

// SnakeCase converts a name to lower_snake: "RadioButton" and "radio-button"
// both become "radio_button".
func SnakeCase(s string) string {
	var b strings.Builder
	var prevLower bool
	for _, r := range s {
		switch {
		case r == '-' || r == '_' || unicode.IsSpace(r):
			b.WriteByte('_')
			prevLower = false
		case unicode.IsUpper(r):
			if prevLower {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			prevLower = false
		default:
			b.WriteRune(r)
			prevLower = true
		}
	}
	return strings.Trim(b.String(), "_")
}

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

// EscapeHTML escapes text for inclusion in markup. Text without any special
// character passes through untouched.
func EscapeHTML(s string) string {
	if !strings.ContainsAny(s, `<>&"`) {
		return s
	}
	return htmlEscaper.Replace(s)
}

// FormatAttrs renders an attribute map as ` k="v" ...` source text, class
// first, remaining keys sorted. Returns "" for an empty map.
func FormatAttrs(attrs map[string]string) string {
	if len(attrs) == 0 {
		return ""
	}
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		if k != "class" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	if _, ok := attrs["class"]; ok {
		keys = append([]string{"class"}, keys...)
	}
	var b strings.Builder
	for _, k := range keys {
		b.WriteByte(' ')
		b.WriteString(k)
		b.WriteString(`="`)
		b.WriteString(EscapeHTML(attrs[k]))
		b.WriteByte('"')
	}
	return b.String()
}

// PackageName reduces an arbitrary name (typically a module path base) to a
// legal Go package name: lowered, with anything outside [a-z0-9_] dropped.
func PackageName(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' {
			b.WriteRune(r)
		}
	}
	name := b.String()
	if name == "" || (name[0] >= '0' && name[0] <= '9') {
		name = "components"
	}
	return name
}
