package classifier

import (
	"image"

	"github.com/vitali-fedulov/images4"

	"github.com/gridhunt/gridhunt/internal/model"
)

// Service classifies tile images into characters by nearest perceptual
// match against the glyph catalog. Pure: no state beyond the immutable
// catalog, safe for concurrent use.
type Service struct {
	catalog *Catalog
}

// New creates a new classifier Service
func New(catalog *Catalog) *Service {
	return &Service{
		catalog: catalog,
	}
}

// Classify returns the catalog character closest to the tile image.
// The best match is always accepted, however poor; there is no
// confidence threshold. An empty catalog is the one failure mode.
func (s *Service) Classify(tile image.Image) (rune, error) {
	if s.catalog.Len() == 0 {
		return 0, model.ErrEmptyCatalog
	}

	icon := images4.Icon(tile)

	var best rune
	bestDistance := -1.0
	for _, r := range s.catalog.Characters() {
		m1, m2, m3 := images4.EucMetric(icon, s.catalog.icons[r])
		distance := m1 + m2 + m3
		// Strict less-than keeps the lowest character code on ties,
		// since Characters() is in ascending code order.
		if bestDistance < 0 || distance < bestDistance {
			best = r
			bestDistance = distance
		}
	}
	return best, nil
}

// ClassifyGrid classifies a row-major matrix of tile images into a grid
func (s *Service) ClassifyGrid(tiles [][]image.Image) (*model.Grid, error) {
	cells := make([][]string, len(tiles))
	for row, tileRow := range tiles {
		cells[row] = make([]string, len(tileRow))
		for col, tile := range tileRow {
			r, err := s.Classify(tile)
			if err != nil {
				return nil, err
			}
			cells[row][col] = string(r)
		}
	}
	return model.NewGrid(cells)
}

// Interface for dependency injection
type ServiceInterface interface {
	Classify(tile image.Image) (rune, error)
	ClassifyGrid(tiles [][]image.Image) (*model.Grid, error)
}

var _ ServiceInterface = (*Service)(nil)
