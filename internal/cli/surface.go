package cli

import (
	"math"

	"github.com/matzehuels/cropframe/pkg/geom"
	"github.com/matzehuels/cropframe/pkg/selection"
)

// =============================================================================
// Terminal Surface
// =============================================================================

// surface maps terminal cells to surface units. Each cell covers
// cellW x cellH units and a cell is addressed by its top-left corner.
type surface struct {
	cols, rows   int
	cellW, cellH float64
}

func (s surface) bounds() geom.Size {
	return geom.Size{Width: float64(s.cols) * s.cellW, Height: float64(s.rows) * s.cellH}
}

func (s surface) point(col, row int) geom.Point {
	return geom.Point{X: float64(col) * s.cellW, Y: float64(row) * s.cellH}
}

// cell returns the cell containing p, clamped to the grid.
func (s surface) cell(p geom.Point) (col, row int) {
	return clampIndex(int(math.Floor(p.X/s.cellW)), s.cols), clampIndex(int(math.Floor(p.Y/s.cellH)), s.rows)
}

// span returns the inclusive cell range covered by [lo, hi).
func span(lo, hi, size float64, n int) (first, last int) {
	first = clampIndex(int(math.Floor(lo/size)), n)
	last = clampIndex(int(math.Ceil(hi/size))-1, n)
	if last < first {
		last = first
	}
	return first, last
}

func clampIndex(i, n int) int {
	return max(0, min(i, n-1))
}

type cellKind uint8

const (
	cellOutside cellKind = iota
	cellInside
	cellBorder
	cellHandle
	cellToolbar
	cellButton
)

type cell struct {
	kind cellKind
	r    rune
}

var buttonGlyphs = map[selection.ToolbarButton]rune{
	selection.ButtonAccept: '✓',
	selection.ButtonRetry:  '↻',
	selection.ButtonCancel: '✗',
}

// frame is one snapshot of what the terminal host draws.
type frame struct {
	rect    geom.Rect
	state   selection.State
	toolbar selection.ToolbarAnchor
}

// layout rasterizes f onto the grid: the selection border, its handles once
// a selection exists, and the toolbar with one glyph per button.
func (s surface) layout(f frame) [][]cell {
	grid := make([][]cell, s.rows)
	for y := range grid {
		grid[y] = make([]cell, s.cols)
		for x := range grid[y] {
			grid[y][x] = cell{kind: cellOutside, r: '░'}
		}
	}
	if s.cols == 0 || s.rows == 0 {
		return grid
	}

	r := f.rect
	if !r.IsNoSelection() && !r.Empty() {
		s.drawRect(grid, r)
		if f.state != selection.Drawing {
			for _, h := range selection.Handles {
				x, y := s.handleCell(r, h)
				grid[y][x] = cell{kind: cellHandle, r: '■'}
			}
		}
	}

	if f.toolbar.Visible {
		tb := f.toolbar.Rect()
		x0, x1 := span(tb.Left(), tb.Right(), s.cellW, s.cols)
		y0, y1 := span(tb.Top(), tb.Bottom(), s.cellH, s.rows)
		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				grid[y][x] = cell{kind: cellToolbar, r: ' '}
			}
		}
		for _, b := range selection.ToolbarButtons {
			x, y := s.cell(f.toolbar.ButtonRect(b).Center())
			grid[y][x] = cell{kind: cellButton, r: buttonGlyphs[b]}
		}
	}
	return grid
}

// handleCell places handle h on the border cells of r, so handles on the
// right and bottom edges stay inside the drawn frame.
func (s surface) handleCell(r geom.Rect, h selection.Handle) (col, row int) {
	x0, x1 := span(r.Left(), r.Right(), s.cellW, s.cols)
	y0, y1 := span(r.Top(), r.Bottom(), s.cellH, s.rows)
	col, row = s.cell(selection.HandleCenter(r, h))
	return max(x0, min(col, x1)), max(y0, min(row, y1))
}

func (s surface) drawRect(grid [][]cell, r geom.Rect) {
	x0, x1 := span(r.Left(), r.Right(), s.cellW, s.cols)
	y0, y1 := span(r.Top(), r.Bottom(), s.cellH, s.rows)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			grid[y][x] = cell{kind: cellInside, r: ' '}
		}
	}
	for x := x0; x <= x1; x++ {
		grid[y0][x] = cell{kind: cellBorder, r: '─'}
		grid[y1][x] = cell{kind: cellBorder, r: '─'}
	}
	for y := y0; y <= y1; y++ {
		grid[y][x0] = cell{kind: cellBorder, r: '│'}
		grid[y][x1] = cell{kind: cellBorder, r: '│'}
	}
	grid[y0][x0].r = '┌'
	grid[y0][x1].r = '┐'
	grid[y1][x0].r = '└'
	grid[y1][x1].r = '┘'
}
