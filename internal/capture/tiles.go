package capture

import (
	"image"
	stddraw "image/draw"

	"golang.org/x/image/draw"
)

// Board geometry in pixels at the reference 523x1135 window size
const (
	BoardLeft = 57
	BoardTop  = 480
	// BoardSize is the side of the square board region
	BoardSize = 412
	// BoardPadding surrounds the tile area inside the board region
	BoardPadding = 22
	// TileSize is the side of one tile
	TileSize = 83
	// TileGap separates adjacent tiles
	TileGap = 12
)

// CropBoard extracts the square board region from a full-window frame
func CropBoard(frame image.Image) *image.RGBA {
	return crop(frame, image.Rect(BoardLeft, BoardTop, BoardLeft+BoardSize, BoardTop+BoardSize))
}

// CropTile extracts the tile at (row, col) from a board-sized image
func CropTile(board image.Image, row, col int) *image.RGBA {
	x := board.Bounds().Min.X + BoardPadding + col*(TileSize+TileGap)
	y := board.Bounds().Min.Y + BoardPadding + row*(TileSize+TileGap)
	return crop(board, image.Rect(x, y, x+TileSize, y+TileSize))
}

// SplitTiles cuts a board image into a row-major matrix of tile images.
// A board captured at a non-reference window size is resampled to
// BoardSize first so the tile geometry lines up.
func SplitTiles(board image.Image, rows, cols int) [][]image.Image {
	if board.Bounds().Dx() != BoardSize || board.Bounds().Dy() != BoardSize {
		board = resize(board, BoardSize, BoardSize)
	}

	tiles := make([][]image.Image, rows)
	for row := 0; row < rows; row++ {
		tiles[row] = make([]image.Image, cols)
		for col := 0; col < cols; col++ {
			tiles[row][col] = CropTile(board, row, col)
		}
	}
	return tiles
}

// crop copies a rectangle of src into a fresh image anchored at (0,0)
func crop(src image.Image, r image.Rectangle) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	stddraw.Draw(dst, dst.Bounds(), src, r.Min, stddraw.Src)
	return dst
}

// resize resamples src to the given size
func resize(src image.Image, w, h int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}
