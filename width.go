package headlessterm

import (
	"github.com/unilibs/uniwidth"
	"golang.org/x/text/width"
)

// runeWidth returns uniwidth's own display width classification: 2 for
// wide characters (CJK, emoji), 1 for normal, 0 for zero-width (combining
// marks, control chars). This is the context-free answer; Terminal.Input
// calls runeWidthForTerminal instead, which additionally honors the
// per-terminal East Asian Ambiguous override from WithAmbiguousWidth.
func runeWidth(r rune) int {
	return uniwidth.RuneWidth(r)
}

// isWideRune returns true if the rune occupies 2 columns (CJK ideographs, fullwidth forms, emoji).
func isWideRune(r rune) bool {
	return uniwidth.RuneWidth(r) == 2
}

// StringWidth returns the total display width of a string (sum of rune widths).
func StringWidth(s string) int {
	return uniwidth.StringWidth(s)
}

// runeWidthForTerminal resolves a rune's column width the way t was
// configured to: uniwidth's classification, except runes Unicode's East
// Asian Width table tags Ambiguous are forced to ambiguousWidth columns
// when the embedder overrode the default via WithAmbiguousWidth (spec §6
// "ambiguousWidth: 1 or 2 for East Asian ambiguous", default 1 per spec
// §4.A "Ambiguous defaults to 1, configurable to 2").
func (t *Terminal) runeWidthForTerminal(r rune) int {
	w := uniwidth.RuneWidth(r)
	if w == 0 {
		return w
	}
	if t.ambiguousWidth == 0 {
		return w
	}
	if width.LookupRune(r).Kind() == width.EastAsianAmbiguous {
		return t.ambiguousWidth
	}
	return w
}
