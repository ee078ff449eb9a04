// Package buffer implements rune content storage for editors on top of a gap
// buffer.
//
// Offsets are 0-based rune indexes into the content. Pos addresses the same
// content by (Line, Col), also in runes. Edits are validated before anything
// is mutated: a rejected edit leaves the content, its marks and its history
// untouched.
package buffer
