package core

import "testing"

func TestCanvasProject(t *testing.T) {
	s := NewScreen(60, 30)
	c := NewCanvas(s, 600, 600)

	tests := []struct {
		name     string
		in       Rect
		expected Rect
	}{
		{"origin", NewRect(0, 0, 100, 100), NewRect(0, 0, 10, 5)},
		{"partial cells round outward", NewRect(15, 25, 10, 10), NewRect(1, 1, 2, 1)},
		{"tiny box keeps one cell", NewRect(300, 300, 1, 1), NewRect(30, 15, 1, 1)},
		{"negative x floors", NewRect(-50, 80, 64, 20), NewRect(-5, 4, 7, 1)},
		{"empty box stays empty", NewRect(10, 10, 0, 0), NewRect(1, 0, 0, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := c.Project(tc.in)
			if got != tc.expected {
				t.Errorf("Project(%+v) = %+v, expected %+v", tc.in, got, tc.expected)
			}
		})
	}
}

func TestCanvasBlit(t *testing.T) {
	s := NewScreen(60, 60)
	c := NewCanvas(s, 600, 600)
	sprite := &Sprite{Rows: []string{"AB", "C "}, Color: ColorGreen}

	c.Blit(sprite, NewRect(0, 0, 40, 40)) // 4×4 cells

	expected := []string{"AABB", "AABB", "CC  ", "CC  "}
	for y, want := range expected {
		if got := s.Row(y)[:4]; got != want {
			t.Errorf("row %d = %q, expected %q", y, got, want)
		}
	}
	if s.GetCell(0, 0).Color != ColorGreen {
		t.Error("Blit should color sprite cells")
	}
	if s.GetCell(3, 3).Color != ColorDefault {
		t.Error("Spaces in a sprite should be transparent")
	}
}

func TestCanvasBlitWithoutRowsFills(t *testing.T) {
	s := NewScreen(10, 10)
	c := NewCanvas(s, 100, 100)

	c.Blit(&Sprite{Color: ColorRed}, NewRect(20, 20, 20, 10))

	if s.Get(2, 2) != '█' || s.Get(3, 2) != '█' {
		t.Errorf("Row 2 = %q, expected a filled block", s.Row(2))
	}
	if s.Get(4, 2) != ' ' {
		t.Error("Fill should stop at the projected right edge")
	}
}

func TestCanvasText(t *testing.T) {
	s := NewScreen(20, 10)
	c := NewCanvas(s, 200, 100)

	c.Text("left", 10, 0, AlignLeft, ColorWhite)
	c.Text("mid", 100, 50, AlignCenter, ColorWhite)
	c.Text("end", 200, 90, AlignRight, ColorWhite)

	if s.Row(0)[1:5] != "left" {
		t.Errorf("Row(0) = %q", s.Row(0))
	}
	if s.Row(5)[9:12] != "mid" {
		t.Errorf("Row(5) = %q", s.Row(5))
	}
	if s.Row(9)[17:20] != "end" {
		t.Errorf("Row(9) = %q", s.Row(9))
	}
}

func TestCanvasHLineAlternatesWhenDense(t *testing.T) {
	s := NewScreen(10, 10)
	c := NewCanvas(s, 600, 600)

	// 200 lines over 10 rows: more lines than rows
	for y := 0; y < 600; y += 3 {
		c.HLine(y, ColorBlack, 80)
	}

	for row := 0; row < 10; row++ {
		if got := s.RowDimmed(row); got != (row%2 == 0) {
			t.Errorf("RowDimmed(%d) = %v", row, got)
		}
	}
}

func TestCanvasHLineSparse(t *testing.T) {
	s := NewScreen(10, 60)
	c := NewCanvas(s, 600, 600)

	c.HLine(0, ColorBlack, 80)
	c.HLine(300, ColorBlack, 80)
	c.HLine(310, ColorBlack, 0) // Transparent line is a no-op

	for row := 0; row < 60; row++ {
		want := row == 0 || row == 30
		if got := s.RowDimmed(row); got != want {
			t.Errorf("RowDimmed(%d) = %v, expected %v", row, got, want)
		}
	}
}

func TestCanvasPanel(t *testing.T) {
	s := NewScreen(20, 20)
	c := NewCanvas(s, 200, 200)
	s.DrawColorText(0, 5, "xxxxxxxxxxxxxxxxxxxx", ColorDefault)

	c.Panel(NewRect(50, 40, 100, 40))

	if s.Get(5, 4) != '┌' || s.Get(14, 7) != '┘' {
		t.Errorf("Panel should outline the projected box, got %q / %q", s.Row(4), s.Row(7))
	}
	if s.Get(7, 5) != ' ' {
		t.Error("Panel should clear its interior")
	}
	if s.Get(2, 5) != 'x' {
		t.Error("Panel should not touch cells outside the box")
	}
}
