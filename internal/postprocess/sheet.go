// Package postprocess assembles rendered frames into overview images.
package postprocess

import (
	"image"

	"golang.org/x/image/draw"
)

// ContactSheet scales each frame into a cell×cell tile and lays the tiles
// out row-major, cols per row. Trailing cells of the last row stay black.
// Returns nil for an empty frame list.
func ContactSheet(frames []*image.NRGBA, cols, cell int) *image.NRGBA {
	if len(frames) == 0 {
		return nil
	}
	if cols < 1 {
		cols = 1
	}
	if cell < 8 {
		cell = 8
	}

	rows := (len(frames) + cols - 1) / cols
	dst := image.NewNRGBA(image.Rect(0, 0, cols*cell, rows*cell))

	for i, frame := range frames {
		if frame == nil {
			continue
		}
		x := (i % cols) * cell
		y := (i / cols) * cell
		tile := image.Rect(x, y, x+cell, y+cell)
		draw.CatmullRom.Scale(dst, tile, frame, frame.Bounds(), draw.Src, nil)
	}
	return dst
}
