package grapheme

import "github.com/rivo/uniseg"

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	return uniseg.GraphemeClusterCount(text)
}

// Boundaries returns the rune offsets where grapheme clusters of rs start,
// followed by len(rs). The result always starts with 0.
func Boundaries(rs []rune) []int {
	out := []int{0}
	if len(rs) == 0 {
		return out
	}
	g := uniseg.NewGraphemes(string(rs))
	off := 0
	for g.Next() {
		off += len(g.Runes())
		out = append(out, off)
	}
	return out
}

// Around returns the bounds [start, end) of the cluster containing rune index
// i of rs. For i outside [0, len(rs)) it returns an empty range at the
// nearest edge.
func Around(rs []rune, i int) (start, end int) {
	if i < 0 {
		return 0, 0
	}
	if i >= len(rs) {
		return len(rs), len(rs)
	}
	b := Boundaries(rs)
	for k := 1; k < len(b); k++ {
		if i < b[k] {
			return b[k-1], b[k]
		}
	}
	return len(rs), len(rs)
}
