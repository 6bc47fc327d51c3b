package solver

import (
	"sort"
	"unicode/utf8"

	"github.com/gridhunt/gridhunt/internal/model"
)

// minWordLength is the hard minimum for a recorded word, independent of
// dictionary content.
const minWordLength = 3

// directions enumerates the 8 neighbors of a cell in a fixed order, so
// repeated solves of the same board traverse tiles identically.
var directions = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Dictionary is the lookup surface the search needs
type Dictionary interface {
	HasPrefix(prefix string) bool
	IsWord(word string) bool
}

// Service enumerates every dictionary word reachable on a grid by a
// path of adjacent, non-repeating tiles.
type Service struct {
	dictionary Dictionary
}

// New creates a new solver Service
func New(dictionary Dictionary) *Service {
	return &Service{
		dictionary: dictionary,
	}
}

// FindAllWords returns every dictionary word of length >= 3 spellable
// on the grid, deduplicated by text and sorted longest first, ties
// broken lexicographically. An empty grid yields an empty result.
func (s *Service) FindAllWords(grid *model.Grid) []model.Word {
	rows, cols := grid.Rows(), grid.Cols()
	if rows == 0 || cols == 0 {
		return nil
	}

	visited := make([][]bool, rows)
	for i := range visited {
		visited[i] = make([]bool, cols)
	}

	st := &search{
		grid:       grid,
		dictionary: s.dictionary,
		visited:    visited,
		found:      make(map[string]model.Word),
	}

	// Start cells are scanned row-major; together with the fixed
	// direction table this makes the surviving path per word stable
	// across runs.
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			st.visit(row, col)
		}
	}

	words := make([]model.Word, 0, len(st.found))
	for _, w := range st.found {
		words = append(words, w)
	}
	sort.Slice(words, func(i, j int) bool {
		if len(words[i].Path) != len(words[j].Path) {
			return len(words[i].Path) > len(words[j].Path)
		}
		return words[i].Text < words[j].Text
	})
	return words
}

// search is the mutable state of one in-flight enumeration. It is
// owned by a single FindAllWords call and never shared.
type search struct {
	grid       *model.Grid
	dictionary Dictionary
	visited    [][]bool
	text       []byte
	path       []model.Position
	found      map[string]model.Word
}

// visit extends the current path onto (row, col), explores from there,
// and undoes the extension on every return path. Bounds are checked by
// the caller via the direction loop, and again here for the row-major
// entry points.
func (st *search) visit(row, col int) {
	if st.visited[row][col] {
		return
	}

	cell := st.grid.Cells[row][col]
	st.visited[row][col] = true
	st.text = append(st.text, cell...)
	st.path = append(st.path, model.Position{Col: col, Row: row})

	candidate := string(st.text)
	if st.dictionary.HasPrefix(candidate) {
		if len(st.path) >= minWordLength && st.dictionary.IsWord(candidate) {
			st.record(candidate)
		}

		for _, d := range directions {
			nr, nc := row+d[0], col+d[1]
			if nr >= 0 && nr < st.grid.Rows() && nc >= 0 && nc < st.grid.Cols() {
				st.visit(nr, nc)
			}
		}
	}

	st.path = st.path[:len(st.path)-1]
	st.text = st.text[:len(st.text)-len(cell)]
	st.visited[row][col] = false
}

// record keeps the first path discovered for each distinct text
func (st *search) record(text string) {
	if utf8.RuneCountInString(text) != len(st.path) {
		panic("solver: path length diverged from word length")
	}
	if _, ok := st.found[text]; ok {
		return
	}
	path := make([]model.Position, len(st.path))
	copy(path, st.path)
	st.found[text] = model.Word{Text: text, Path: path}
}
