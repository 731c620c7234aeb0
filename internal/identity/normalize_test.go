package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"already clean", "420101199001011234", "420101199001011234"},
		{"leading and trailing spaces", "  420101199001011234  ", "420101199001011234"},
		{"internal spaces removed", "4201 0119 9001 0112 34", "420101199001011234"},
		{"tabs and newlines removed", "42010119\t9001\n0112\r34", "420101199001011234"},
		{"lowercase check digit uppercased", "42010119900101123x", "42010119900101123X"},
		{"full-width spaces removed", "4201　0119　9001011234", "420101199001011234"},
		{"case and whitespace together", " 1234  x ", "1234X"},
		{"empty input", "", ""},
		{"whitespace only", " \t\r\n ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"420101199001011234",
		" 4201 0119 9001 0112 3x ",
		"g42010119900101123X",
		"",
		"甲 乙",
	}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "Normalize must be idempotent for %q", in)
	}
}

func TestNormalize_EquivalentInputsAgree(t *testing.T) {
	assert.Equal(t, Normalize("1234X"), Normalize(" 1234  x "))
	assert.Equal(t, Normalize("42010119900101123X"), Normalize("42010119900101123x\r\n"))
}

func TestStripEntryPrefix(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"G plus 18 chars strips", "G42010119900101123X", "42010119900101123X"},
		{"G plus short remainder keeps prefix", "G123", "G123"},
		{"G plus 17 chars keeps prefix", "G1234567890123456X", "G1234567890123456X"},
		{"G plus 19 chars keeps prefix", "G4201011990010112345", "G4201011990010112345"},
		{"no prefix unchanged", "420101199001011234", "420101199001011234"},
		{"bare G unchanged", "G", "G"},
		{"empty unchanged", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StripEntryPrefix(tt.input))
		})
	}
}

func TestStripEntryPrefix_Idempotent(t *testing.T) {
	inputs := []string{"G42010119900101123X", "G123", "GG4201011990010112345", ""}
	for _, in := range inputs {
		once := StripEntryPrefix(in)
		assert.Equal(t, once, StripEntryPrefix(once), "StripEntryPrefix must be idempotent for %q", in)
	}
}

func TestNormalizeThenStrip_ComposedVariant(t *testing.T) {
	// The certificate-source variant runs the prefix rule after base
	// normalization, so a lowercase "g" with embedded spacing still strips.
	got := StripEntryPrefix(Normalize(" g4201 0119 9001 0112 3x "))
	assert.Equal(t, "42010119900101123X", got)

	// Too-short remainders survive the composition untouched.
	assert.Equal(t, "G123", StripEntryPrefix(Normalize(" g 123 ")))
}
