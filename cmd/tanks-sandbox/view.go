package main

import (
	"github.com/lixenwraith/space-tanks/vmath"
)

// view maps the X/Z ground plane onto terminal cells, +Z pointing down the screen
// Cells are roughly twice as tall as wide, so one world unit spans two columns per row
type view struct {
	cols, rows  int
	centerX     float64
	centerZ     float64
	unitsPerRow float64
}

func newView(cols, rows int, halfExtent float64) view {
	v := view{cols: cols, rows: rows}
	v.fit(halfExtent)
	return v
}

// fit scales so a square of ±halfExtent around the center is visible
func (v *view) fit(halfExtent float64) {
	rows := max(v.rows, 1)
	cols := max(v.cols/2, 1)
	v.unitsPerRow = 2 * halfExtent / float64(min(rows, cols))
}

func (v *view) resize(cols, rows int, halfExtent float64) {
	v.cols, v.rows = cols, rows
	v.fit(halfExtent)
}

// cell returns the terminal cell for a world position and whether it is on screen
func (v *view) cell(pos vmath.Vec3) (int, int, bool) {
	return v.cellF(vmath.ToFloat(pos.X), vmath.ToFloat(pos.Z))
}

func (v *view) cellF(x, z float64) (int, int, bool) {
	fc := (x-v.centerX)/v.unitsPerRow*2 + float64(v.cols)/2
	fr := (z-v.centerZ)/v.unitsPerRow + float64(v.rows)/2
	if fc < 0 || fr < 0 {
		return 0, 0, false
	}
	c, r := int(fc), int(fr)
	return c, r, c < v.cols && r < v.rows
}

// span is the number of rows covered by a world length, at least one
func (v *view) span(length float64) int {
	return max(int(length/v.unitsPerRow+0.5), 1)
}
