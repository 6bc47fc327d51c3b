package motion

import "github.com/gridhunt/gridhunt/internal/model"

// Delta is one relative pointer movement in pixels
type Delta struct {
	DX int `json:"dx"`
	DY int `json:"dy"`
}

// Config fixes the on-screen geometry of the grid: the absolute pixel
// position of cell (0,0) and the pitch between cell centers.
type Config struct {
	OriginX     int
	OriginY     int
	ColumnPitch int
	RowPitch    int
}

// DefaultConfig returns the geometry for the reference 523x1135 window
func DefaultConfig() Config {
	return Config{
		OriginX:     35,
		OriginY:     165,
		ColumnPitch: 30,
		RowPitch:    33,
	}
}

// Mapper converts a word's tile path into the relative pointer deltas
// that trace it on screen.
type Mapper struct {
	cfg Config
}

// New creates a new Mapper
func New(cfg Config) *Mapper {
	return &Mapper{cfg: cfg}
}

// Origin returns the absolute pixel position of grid cell (0,0)
func (m *Mapper) Origin() (int, int) {
	return m.cfg.OriginX, m.cfg.OriginY
}

// cellPixel maps a grid cell to its absolute pixel position
func (m *Mapper) cellPixel(p model.Position) (int, int) {
	return m.cfg.OriginX + p.Col*m.cfg.ColumnPitch, m.cfg.OriginY + p.Row*m.cfg.RowPitch
}

// PathToDeltas returns the relative movement for each step of the path.
// The pointer is assumed parked on cell (0,0) before the first step;
// every word's trace starts from that anchor regardless of where the
// previous word left off. All arithmetic is exact integers, so a path
// that returns to its start sums to exactly (0,0).
func (m *Mapper) PathToDeltas(path []model.Position) []Delta {
	deltas := make([]Delta, 0, len(path))
	current := model.Position{}
	for _, next := range path {
		cx, cy := m.cellPixel(current)
		nx, ny := m.cellPixel(next)
		deltas = append(deltas, Delta{DX: nx - cx, DY: ny - cy})
		current = next
	}
	return deltas
}
