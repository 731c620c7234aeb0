// Package identity provides normalization of personal identifiers so that
// equivalent values compare equal despite formatting noise. The normalized
// form is the sole join key of the whole reconciliation, so every function
// here must be pure, total, and idempotent.
package identity

import "strings"

// prefixedLength is the identifier length that licenses stripping a leading
// "G". Some certificate systems prepend a non-numeric "G" to an otherwise
// standard 18-character identifier; the prefix is removed only when the
// remainder has exactly that length, never blindly.
const prefixedLength = 18

// Normalize canonicalizes a raw identifier: leading/trailing whitespace is
// trimmed, internal spaces/tabs/newlines/carriage returns are removed, and
// letters are uppercased (a trailing "x" check digit becomes "X"). Any input,
// including already-clean input, maps to a stable output.
//
// The full-width space U+3000 counts as whitespace; it shows up when
// identifiers are typed with a CJK input method active.
func Normalize(raw string) string {
	s := strings.Map(dropSpace, raw)
	return strings.ToUpper(s)
}

// StripEntryPrefix removes a single leading "G" from an already-normalized
// identifier when the remainder is exactly 18 characters long. Identifiers
// where stripping would leave any other length are returned unchanged.
func StripEntryPrefix(id string) string {
	rest, found := strings.CutPrefix(id, "G")
	if found && len(rest) == prefixedLength {
		return rest
	}
	return id
}

func dropSpace(r rune) rune {
	switch r {
	case ' ', '\t', '\n', '\r', '　':
		return -1
	}
	return r
}
