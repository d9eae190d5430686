// Package textnorm turns free-text ingredient and stock descriptions into the
// canonical form every comparison in the app uses: lowercase, accent-free,
// digit-free, unit-word-free and whitespace-collapsed.
package textnorm

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	digitsRe = regexp.MustCompile(`\d+`)

	// Unit and quantity words are stripped only as whole words; the token
	// list is accent-free because it is applied after accent removal.
	unitsRe = regexp.MustCompile(`\b(kg|g|ml|l|litro|litros|un|unidade|unidades|dente|dentes|colher|colheres|xicara|xicaras|maco|macos|fatia|fatias|folha|folhas|cm)\b`)

	spacesRe = regexp.MustCompile(`\s+`)

	// NFD decomposition followed by removal of combining marks, so that
	// "Açúcar" becomes "acucar".
	deaccent = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
)

// Normalize canonicalizes a description for comparison. It is pure and
// idempotent; empty input normalizes to the empty string.
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	s := strings.ToLower(text)

	stripped, _, err := transform.String(deaccent, s)
	if err == nil {
		s = stripped
	}

	s = digitsRe.ReplaceAllString(s, "")
	s = unitsRe.ReplaceAllString(s, "")
	s = spacesRe.ReplaceAllString(s, " ")

	return strings.TrimSpace(s)
}

// Amount parses a numeric-as-text quantity the way the app always has:
// the longest leading numeric prefix counts, anything else falls back.
// "200" -> 200, "2 colheres" -> 2, "1/2" -> 1, "a gosto" -> fallback.
func Amount(s string, fallback float64) float64 {
	s = strings.TrimSpace(s)

	end := 0
	seenDot := false
	for i, r := range s {
		if r >= '0' && r <= '9' {
			end = i + 1
			continue
		}
		if r == '.' && !seenDot && end == i && end > 0 {
			seenDot = true
			end = i + 1
			continue
		}
		break
	}

	prefix := strings.TrimSuffix(s[:end], ".")
	if prefix == "" {
		return fallback
	}

	value, err := strconv.ParseFloat(prefix, 64)
	if err != nil {
		return fallback
	}
	return value
}

// FormatAmount renders a numeric amount back to its list form, without
// trailing zeros ("2", "0.5"), matching how totals were always displayed.
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
