package layout

// Rect is an inclusive cell range, columns first like the drawing commands.
type Rect struct {
	Col0, Row0, Col1, Row1 int
}

func (r Rect) Contains(col, row int) bool {
	return col >= r.Col0 && col <= r.Col1 && row >= r.Row0 && row <= r.Row1
}

type Fill struct {
	Rect
	Color Color
}

// Padding is in points.
type Padding struct {
	Left, Right, Top, Bottom float64
}

// Grid is a fixed-shape table. Widths and heights are in centimetres.
type Grid struct {
	Rows      [][]Value
	ColWidths []float64
	RowHeight float64

	Spans      []Rect
	Boxes      []Rect
	InnerGrids []Rect
	Fills      []Fill

	VAlign   VAlign
	Padding  Padding
	FontSize float64
}

func (g Grid) NumRows() int { return len(g.Rows) }

func (g Grid) NumCols() int { return len(g.ColWidths) }

func (g Grid) Width() float64 {
	var w float64
	for _, c := range g.ColWidths {
		w += c
	}
	return w
}

func (g Grid) Height() float64 {
	return g.RowHeight * float64(len(g.Rows))
}

// R builds a Rect where negative indexes count from the last column or row.
func (g Grid) R(col0, row0, col1, row1 int) Rect {
	fix := func(i, n int) int {
		if i < 0 {
			return n + i
		}
		return i
	}
	return Rect{
		Col0: fix(col0, g.NumCols()),
		Row0: fix(row0, g.NumRows()),
		Col1: fix(col1, g.NumCols()),
		Row1: fix(row1, g.NumRows()),
	}
}

// SpanAt returns the span whose top-left corner is (col, row).
func (g Grid) SpanAt(col, row int) (Rect, bool) {
	for _, s := range g.Spans {
		if s.Col0 == col && s.Row0 == row {
			return s, true
		}
	}
	return Rect{}, false
}

// Covered reports whether (col, row) is hidden under another cell's span.
func (g Grid) Covered(col, row int) bool {
	for _, s := range g.Spans {
		if s.Contains(col, row) && (s.Col0 != col || s.Row0 != row) {
			return true
		}
	}
	return false
}
