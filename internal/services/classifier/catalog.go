package classifier

import (
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/vitali-fedulov/images4"
)

// Alphabet is the set of characters that may have reference glyphs.
// There are currently no reference samples for 'q' or 'z'; tiles
// showing them are rare enough that degraded accuracy is accepted.
const Alphabet = "abcdefghijklmnoprstuvwxy"

// Catalog holds the reference glyph for each known character, reduced
// to the perceptual icon form the matcher compares against. Built once
// at startup and read-only afterward.
type Catalog struct {
	icons map[rune]images4.IconT
	chars []rune
}

// NewCatalog builds a catalog from reference glyph images
func NewCatalog(glyphs map[rune]image.Image) *Catalog {
	c := &Catalog{
		icons: make(map[rune]images4.IconT, len(glyphs)),
		chars: make([]rune, 0, len(glyphs)),
	}
	for r, img := range glyphs {
		c.icons[r] = images4.Icon(img)
		c.chars = append(c.chars, r)
	}
	// Fixed iteration order makes classification ties deterministic:
	// equal scores resolve to the lowest character code.
	sort.Slice(c.chars, func(i, j int) bool { return c.chars[i] < c.chars[j] })
	return c
}

// LoadCatalog reads <char>.png reference glyphs from a directory.
// Characters without a sample are skipped; the catalog simply cannot
// produce them as a match.
func LoadCatalog(dir string, logger *slog.Logger) *Catalog {
	glyphs := make(map[rune]image.Image)
	for _, r := range Alphabet {
		path := filepath.Join(dir, fmt.Sprintf("%c.png", r))
		img, err := loadPNG(path)
		if err != nil {
			logger.Warn("skipping glyph",
				slog.String("path", path),
				slog.String("error", err.Error()))
			continue
		}
		glyphs[r] = img
	}
	return NewCatalog(glyphs)
}

// Len returns the number of characters with a reference glyph
func (c *Catalog) Len() int {
	return len(c.chars)
}

// Characters returns the catalog's characters in ascending code order
func (c *Catalog) Characters() []rune {
	return c.chars
}

func loadPNG(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return png.Decode(f)
}
