package core

// Sprite is a pre-built glyph image. Rows are sampled to fit whatever cell
// area the sprite's logical box projects onto; spaces are transparent.
type Sprite struct {
	Rows  []string
	Color Color
}

// Align controls horizontal text anchoring.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Canvas projects a fixed logical canvas (e.g. 600×600 units) onto a Screen
// of terminal cells. Game code draws in logical units and never sees cells.
type Canvas struct {
	dst  *Screen
	w, h int
}

// NewCanvas wraps dst as a logical w×h drawing surface.
func NewCanvas(dst *Screen, w, h int) *Canvas {
	return &Canvas{dst: dst, w: Max(w, 1), h: Max(h, 1)}
}

// Screen returns the underlying cell buffer.
func (c *Canvas) Screen() *Screen {
	return c.dst
}

// Project maps a logical rectangle to the cell rectangle it covers.
// A non-empty logical box always covers at least one cell.
func (c *Canvas) Project(r Rect) Rect {
	cols, rows := c.dst.Width(), c.dst.Height()

	x0 := floorDiv(r.X*cols, c.w)
	x1 := ceilDiv(r.Right()*cols, c.w)
	y0 := floorDiv(r.Y*rows, c.h)
	y1 := ceilDiv(r.Bottom()*rows, c.h)

	switch {
	case r.W <= 0:
		x1 = x0
	case x1 <= x0:
		x1 = x0 + 1
	}
	switch {
	case r.H <= 0:
		y1 = y0
	case y1 <= y0:
		y1 = y0 + 1
	}
	return NewRect(x0, y0, x1-x0, y1-y0)
}

// cellPoint maps a logical point to the cell containing it.
func (c *Canvas) cellPoint(x, y int) (int, int) {
	return floorDiv(x*c.dst.Width(), c.w), floorDiv(y*c.dst.Height(), c.h)
}

// Blit draws a sprite stretched over the logical box r.
func (c *Canvas) Blit(s *Sprite, r Rect) {
	cr := c.Project(r)
	if cr.W <= 0 || cr.H <= 0 {
		return
	}

	if len(s.Rows) == 0 {
		for y := cr.Y; y < cr.Bottom(); y++ {
			for x := cr.X; x < cr.Right(); x++ {
				c.dst.SetCell(x, y, '█', s.Color)
			}
		}
		return
	}

	for cy := 0; cy < cr.H; cy++ {
		row := []rune(s.Rows[cy*len(s.Rows)/cr.H])
		if len(row) == 0 {
			continue
		}
		for cx := 0; cx < cr.W; cx++ {
			ch := row[cx*len(row)/cr.W]
			if ch == ' ' {
				continue
			}
			c.dst.SetCell(cr.X+cx, cr.Y+cy, ch, s.Color)
		}
	}
}

// Text writes a string anchored at the logical point (x, y).
func (c *Canvas) Text(text string, x, y int, align Align, col Color) {
	cx, cy := c.cellPoint(x, y)
	n := len([]rune(text))

	switch align {
	case AlignCenter:
		cx -= n / 2
	case AlignRight:
		cx -= n
	}
	c.dst.DrawColorText(cx, cy, text, col)
}

// HLine shades the cell row containing logical row y. Lines denser than the
// cell grid collapse into alternating faint rows.
func (c *Canvas) HLine(y int, _ Color, alpha uint8) {
	if alpha == 0 {
		return
	}
	_, row := c.cellPoint(0, y)
	if row < 0 || row >= c.dst.Height() {
		return
	}
	if c.dst.RowDimmed(row) || c.dst.RowDimmed(row-1) {
		return
	}
	c.dst.DimRow(row)
}

// Panel clears the logical box r and outlines it.
func (c *Canvas) Panel(r Rect) {
	cr := c.Project(r)
	c.dst.DrawRect(cr, ' ')
	c.dst.DrawBox(cr)
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func ceilDiv(a, b int) int {
	return -floorDiv(-a, b)
}
