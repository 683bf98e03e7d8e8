// Package tileset slices sample bitmaps into deduplicated tiles and
// renders solved grids back to images.
package tileset

import (
	"errors"
	"image"
	"image/draw"

	"github.com/katalvlaran/wfc/symbols"
	"github.com/katalvlaran/wfc/wave"
)

// Sentinel errors for tile extraction and rendering.
var (
	// ErrNilImage indicates a nil source image.
	ErrNilImage = errors.New("tileset: source image is nil")
	// ErrBadTileSize indicates non-positive tile dimensions.
	ErrBadTileSize = errors.New("tileset: tile dimensions must be positive")
	// ErrNonFactorWidth indicates the image width is not an exact
	// multiple of the tile width. Analysis fails rather than truncating.
	ErrNonFactorWidth = errors.New("tileset: image width is not a multiple of the tile width")
	// ErrNonFactorHeight indicates the image height is not an exact
	// multiple of the tile height.
	ErrNonFactorHeight = errors.New("tileset: image height is not a multiple of the tile height")
	// ErrTileIndex indicates a tile id outside 0..Len()-1.
	ErrTileIndex = errors.New("tileset: tile id out of range")
	// ErrUncollapsedGrid indicates a render of a grid that still has
	// undecided cells.
	ErrUncollapsedGrid = errors.New("tileset: grid is not fully collapsed")
)

// TileSet maps dense symbol ids to tile images of one uniform size.
// Immutable once built by FromImage.
type TileSet struct {
	tiles        []*image.RGBA
	table        *symbols.Table[*image.RGBA]
	tileW, tileH int
}

// FromImage slices img into tileW×tileH blocks in row-major order,
// dedupes them by exact pixel equality, and returns the tile table plus
// a fully collapsed sample grid of tile ids (ready for wave.Analyze).
// Pixel-color mode is FromImage(img, 1, 1).
//
// Returns ErrNilImage, ErrBadTileSize, ErrNonFactorWidth or
// ErrNonFactorHeight; dimensions are never silently truncated.
// Complexity: O(P·T), P = pixels, T = distinct tiles.
func FromImage(img image.Image, tileW, tileH int) (*TileSet, *wave.Grid, error) {
	if img == nil {
		return nil, nil, ErrNilImage
	}
	if tileW <= 0 || tileH <= 0 {
		return nil, nil, ErrBadTileSize
	}
	bounds := img.Bounds()
	if bounds.Dx()%tileW != 0 {
		return nil, nil, ErrNonFactorWidth
	}
	if bounds.Dy()%tileH != 0 {
		return nil, nil, ErrNonFactorHeight
	}

	gridW, gridH := bounds.Dx()/tileW, bounds.Dy()/tileH
	ts := &TileSet{
		table: symbols.NewFunc(equalTiles),
		tileW: tileW,
		tileH: tileH,
	}

	ids := make([][]int, gridH)
	for y := 0; y < gridH; y++ {
		ids[y] = make([]int, gridW)
		for x := 0; x < gridW; x++ {
			tile := cutTile(img, bounds.Min.X+x*tileW, bounds.Min.Y+y*tileH, tileW, tileH)
			id := ts.table.Intern(tile)
			if id == len(ts.tiles) {
				ts.tiles = append(ts.tiles, tile)
			}
			ids[y][x] = id
		}
	}

	grid, err := wave.New(gridW, gridH, len(ts.tiles))
	if err != nil {
		return nil, nil, err
	}
	for y := 0; y < gridH; y++ {
		for x := 0; x < gridW; x++ {
			if err = grid.SetCollapsed(x, y, ids[y][x]); err != nil {
				return nil, nil, err
			}
		}
	}

	return ts, grid, nil
}

// Len reports the number of distinct tiles.
func (ts *TileSet) Len() int { return len(ts.tiles) }

// TileSize reports the uniform tile dimensions.
func (ts *TileSet) TileSize() (w, h int) { return ts.tileW, ts.tileH }

// Tile returns the tile image for id.
// Returns ErrTileIndex outside 0..Len()-1.
func (ts *TileSet) Tile(id int) (image.Image, error) {
	if id < 0 || id >= len(ts.tiles) {
		return nil, ErrTileIndex
	}

	return ts.tiles[id], nil
}

// Weights returns the empirical per-cell frequency of each tile in the
// sample it was built from: occurrences over total cells.
func (ts *TileSet) Weights() []float64 { return ts.table.Weights() }

// Render maps every cell id of a fully collapsed grid back to its tile
// and blits the result into a Width·tileW × Height·tileH RGBA image.
// Returns wave.ErrNilGrid on a nil grid, ErrUncollapsedGrid when any
// cell is undecided, ErrTileIndex when the grid's id space outgrew the
// tile set.
// Complexity: O(P) over output pixels.
func (ts *TileSet) Render(g *wave.Grid) (*image.RGBA, error) {
	if g == nil {
		return nil, wave.ErrNilGrid
	}
	ids, err := g.IDs()
	if err != nil {
		return nil, ErrUncollapsedGrid
	}

	out := image.NewRGBA(image.Rect(0, 0, g.Width()*ts.tileW, g.Height()*ts.tileH))
	for y, row := range ids {
		for x, id := range row {
			if id >= len(ts.tiles) {
				return nil, ErrTileIndex
			}
			dst := image.Rect(x*ts.tileW, y*ts.tileH, (x+1)*ts.tileW, (y+1)*ts.tileH)
			draw.Draw(out, dst, ts.tiles[id], ts.tiles[id].Bounds().Min, draw.Src)
		}
	}

	return out, nil
}

// cutTile copies one tileW×tileH window of img into a standalone RGBA,
// normalizing the color model so pixel equality is well defined.
func cutTile(img image.Image, x0, y0, w, h int) *image.RGBA {
	tile := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(tile, tile.Bounds(), img, image.Point{X: x0, Y: y0}, draw.Src)

	return tile
}

// equalTiles reports exact pixel equality of two same-sized RGBA tiles.
func equalTiles(a, b *image.RGBA) bool {
	if !a.Bounds().Size().Eq(b.Bounds().Size()) {
		return false
	}
	for y := 0; y < a.Bounds().Dy(); y++ {
		for x := 0; x < a.Bounds().Dx(); x++ {
			if a.RGBAAt(x, y) != b.RGBAAt(x, y) {
				return false
			}
		}
	}

	return true
}
