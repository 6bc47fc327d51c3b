package model

import "unicode/utf8"

// Word is a dictionary word found on the grid together with the tile
// path that spells it, one position per character in visit order.
//
// Identity is the text alone: two Words spelling the same sequence are
// the same word, and whichever path was discovered first is the one a
// result set keeps. The path is never part of equality.
type Word struct {
	Text string     `json:"text"`
	Path []Position `json:"path"`
}

// Len returns the word length in characters
func (w Word) Len() int {
	return utf8.RuneCountInString(w.Text)
}
