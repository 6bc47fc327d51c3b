package solver

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/gridhunt/gridhunt/internal/model"
	"github.com/gridhunt/gridhunt/internal/services/dictionary"
	"github.com/gridhunt/gridhunt/internal/storage/memory"
)

type ServiceSuite struct {
	suite.Suite
	dictionary *dictionary.Service
	service    *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.dictionary = dictionary.New(memory.New(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	s.service = New(s.dictionary)
}

func (s *ServiceSuite) grid(cells [][]string) *model.Grid {
	grid, err := model.NewGrid(cells)
	s.Require().NoError(err)
	return grid
}

func (s *ServiceSuite) texts(words []model.Word) []string {
	texts := make([]string, len(words))
	for i, w := range words {
		texts[i] = w.Text
	}
	return texts
}

func (s *ServiceSuite) TestFindsAdjacentWords() {
	s.dictionary.LoadWords([]string{"cat", "car", "art", "rat"})

	grid := s.grid([][]string{
		{"c", "a", "t"},
		{"a", "r", "?"},
		{"?", "?", "?"},
	})

	words := s.service.FindAllWords(grid)

	// All four words are reachable; equal length sorts lexicographically
	s.Equal([]string{"art", "car", "cat", "rat"}, s.texts(words))
}

func (s *ServiceSuite) TestShortWordsNeverAppear() {
	// "ca" and "ar" are valid prefixes but below the minimum length,
	// even if the dictionary contained them as words
	s.dictionary.LoadWords([]string{"ca", "ar", "cat"})

	grid := s.grid([][]string{
		{"c", "a"},
		{"a", "t"},
	})

	words := s.service.FindAllWords(grid)
	s.Equal([]string{"cat"}, s.texts(words))
}

func (s *ServiceSuite) TestEveryResultIsAValidPath() {
	s.dictionary.LoadWords([]string{"cat", "car", "art", "rat", "tar", "carat"})

	grid := s.grid([][]string{
		{"c", "a", "t"},
		{"a", "r", "t"},
		{"r", "a", "c"},
	})

	for _, w := range s.service.FindAllWords(grid) {
		s.GreaterOrEqual(len(w.Path), 3, w.Text)
		s.Len(w.Path, len(w.Text), w.Text)
		s.True(s.dictionary.IsWord(w.Text), w.Text)

		seen := make(map[model.Position]bool)
		for i, pos := range w.Path {
			s.True(grid.InBounds(pos), w.Text)
			s.Equal(string(w.Text[i]), grid.At(pos), w.Text)
			s.False(seen[pos], "path revisits a cell in %q", w.Text)
			seen[pos] = true

			if i > 0 {
				prev := w.Path[i-1]
				dc, dr := pos.Col-prev.Col, pos.Row-prev.Row
				s.True(dc >= -1 && dc <= 1 && dr >= -1 && dr <= 1 && (dc != 0 || dr != 0),
					"path step not adjacent in %q", w.Text)
			}
		}
	}
}

func (s *ServiceSuite) TestDuplicateSpellingsCollapse() {
	s.dictionary.LoadWords([]string{"tat"})

	// "tat" is spellable left-to-right and right-to-left
	grid := s.grid([][]string{{"t", "a", "t"}})

	words := s.service.FindAllWords(grid)
	s.Require().Len(words, 1)
	s.Equal("tat", words[0].Text)
}

func (s *ServiceSuite) TestResultOrdering() {
	s.dictionary.LoadWords([]string{"ten", "net", "tent", "nett"})

	grid := s.grid([][]string{
		{"t", "e"},
		{"n", "t"},
	})

	words := s.service.FindAllWords(grid)

	for i := 1; i < len(words); i++ {
		a, b := words[i-1], words[i]
		if len(a.Path) == len(b.Path) {
			s.Less(a.Text, b.Text)
		} else {
			s.Greater(len(a.Path), len(b.Path))
		}
	}
	// Longest first
	s.Equal("nett", words[0].Text)
}

func (s *ServiceSuite) TestEmptyDictionaryFindsNothing() {
	s.dictionary.LoadWords(nil)

	grid := s.grid([][]string{
		{"c", "a"},
		{"a", "t"},
	})

	s.Empty(s.service.FindAllWords(grid))
}

func (s *ServiceSuite) TestEmptyGrid() {
	s.dictionary.LoadWords([]string{"cat"})

	s.Empty(s.service.FindAllWords(s.grid(nil)))
	s.Empty(s.service.FindAllWords(s.grid([][]string{{}, {}})))
}

func (s *ServiceSuite) TestRepeatedSolvesAgree() {
	s.dictionary.LoadWords([]string{"cat", "car", "art", "rat", "tar"})

	grid := s.grid([][]string{
		{"c", "a", "t"},
		{"a", "r", "t"},
	})

	first := s.service.FindAllWords(grid)
	second := s.service.FindAllWords(grid)

	s.Equal(s.texts(first), s.texts(second))
}

func (s *ServiceSuite) TestCellMayRepeatAcrossWordsNotWithin() {
	// "noon" needs two o's; a single o cannot be reused
	s.dictionary.LoadWords([]string{"noon"})

	single := s.grid([][]string{{"n", "o", "n"}})
	s.Empty(s.service.FindAllWords(single))

	double := s.grid([][]string{
		{"n", "o"},
		{"o", "n"},
	})
	s.Equal([]string{"noon"}, s.texts(s.service.FindAllWords(double)))
}
