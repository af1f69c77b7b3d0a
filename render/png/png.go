// Package png rasterizes a carved maze to an image: white corridors, black
// walls, an optional solution-path overlay, and start/end arrows when the
// maze designates those cells.
package png

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/yalue/image_utils"

	"github.com/arvegal/mazecarve/grid"
)

// ErrMazeNil is returned when a nil *grid.Maze is passed.
var ErrMazeNil = errors.New("png: maze is nil")

// DefaultCellSize is the rendered size of one maze cell in pixels.
const DefaultCellSize = 16

// borderWidth is the white margin added around the rendered maze.
const borderWidth = 5

var (
	wallColor  = color.RGBA{0, 0, 0, 255}
	floorColor = color.RGBA{255, 255, 255, 255}
	pathColor  = color.RGBA{190, 235, 200, 255}
	startColor = color.RGBA{40, 180, 70, 255}
	endColor   = color.RGBA{100, 120, 255, 255}
)

// Render rasterizes m at the given cell size (DefaultCellSize when
// cellSize < 4). path cells, if any, are tinted before walls are drawn.
// Start/End cells, when set on the maze, receive down-pointing arrows.
func Render(m *grid.Maze, path []grid.CellID, cellSize int) (*image.RGBA, error) {
	if m == nil {
		return nil, ErrMazeNil
	}
	cs := cellSize
	if cs < 4 {
		cs = DefaultCellSize
	}

	// 1. Floor: one pixel row/column of slack for the closing walls.
	img := image.NewRGBA(image.Rect(0, 0, m.Width*cs+1, m.Height*cs+1))
	fill(img, floorColor)

	// 2. Solution overlay under the walls.
	for _, id := range path {
		if id < 0 || int(id) >= m.Cells() {
			continue
		}
		x, y := m.Coord(id)
		fillRect(img, x*cs+1, y*cs+1, (x+1)*cs, (y+1)*cs, pathColor)
	}

	// 3. Walls: north and west per cell unless carved open, then the
	//    outer south and east boundary.
	var x, y int
	for y = 0; y < m.Height; y++ {
		for x = 0; x < m.Width; x++ {
			id, _ := m.At(x, y)
			if north, ok := m.At(x, y-1); !ok || !m.HasEdge(id, north) {
				hline(img, x*cs, (x+1)*cs, y*cs, wallColor)
			}
			if west, ok := m.At(x-1, y); !ok || !m.HasEdge(id, west) {
				vline(img, x*cs, y*cs, (y+1)*cs, wallColor)
			}
		}
	}
	hline(img, 0, m.Width*cs, m.Height*cs, wallColor)
	vline(img, m.Width*cs, 0, m.Height*cs, wallColor)

	// 4. Start/end markers composited on top, then the outer margin.
	decorated, err := decorate(img, m, cs)
	if err != nil {
		return nil, err
	}

	return image_utils.ToRGBA(image_utils.AddImageBorder(decorated, color.White, borderWidth)), nil
}

// Encode renders m and writes it to w as PNG.
func Encode(w io.Writer, m *grid.Maze, path []grid.CellID, cellSize int) error {
	img, err := Render(m, path, cellSize)
	if err != nil {
		return err
	}

	return png.Encode(w, img)
}

// decorate overlays start/end arrows when the maze designates those cells.
func decorate(base image.Image, m *grid.Maze, cs int) (image.Image, error) {
	if m.Start == grid.NoCell && m.End == grid.NoCell {
		return base, nil
	}

	comp := image_utils.NewCompositeImage()
	if err := comp.AddImage(base, image.Pt(0, 0)); err != nil {
		return nil, err
	}
	markers := []struct {
		id grid.CellID
		c  color.Color
	}{
		{m.Start, startColor},
		{m.End, endColor},
	}
	for _, mk := range markers {
		if mk.id == grid.NoCell || mk.id < 0 || int(mk.id) >= m.Cells() {
			continue
		}
		x, y := m.Coord(mk.id)
		arrow := image_utils.ResizeImage(image_utils.DownArrow(mk.c), cs-2, cs-2)
		if err := comp.AddImage(arrow, image.Pt(x*cs+1, y*cs+1)); err != nil {
			return nil, err
		}
	}

	return comp, nil
}

// fill paints the whole image one color.
func fill(img *image.RGBA, c color.RGBA) {
	b := img.Bounds()
	fillRect(img, b.Min.X, b.Min.Y, b.Max.X, b.Max.Y, c)
}

// fillRect paints the half-open rectangle [x0,x1)×[y0,y1).
func fillRect(img *image.RGBA, x0, y0, x1, y1 int, c color.RGBA) {
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			img.SetRGBA(x, y, c)
		}
	}
}

// hline paints the horizontal segment [x0,x1]×{y}.
func hline(img *image.RGBA, x0, x1, y int, c color.RGBA) {
	for x := x0; x <= x1; x++ {
		img.SetRGBA(x, y, c)
	}
}

// vline paints the vertical segment {x}×[y0,y1].
func vline(img *image.RGBA, x, y0, y1 int, c color.RGBA) {
	for y := y0; y <= y1; y++ {
		img.SetRGBA(x, y, c)
	}
}
