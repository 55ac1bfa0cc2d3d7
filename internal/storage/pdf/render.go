package pdf

import (
	"log/slog"
	"strings"

	"github.com/go-pdf/fpdf"

	generate_pdf "folha-tarefa/internal/service/generate-pdf"
	"folha-tarefa/internal/service/layout"
)

const (
	pageMargin = 1.0 // cm
	ptToCm     = 2.54 / 72
	lineWidth  = 0.03
	fontFamily = "Helvetica"
	lineBreak  = "<br/>"
)

type renderer struct {
	log *slog.Logger
	pdf *fpdf.Fpdf
	tr  func(string) string

	pageW, pageH float64

	// images holds the registered size of every readable image; a nil
	// entry marks a path that failed to load.
	images map[string]*fpdf.ImageInfoType
}

func newRenderer(log *slog.Logger, title string) *renderer {
	pdf := fpdf.New("L", "cm", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(false, pageMargin)
	pdf.SetCellMargin(0)
	pdf.SetTitle(title, true)
	pdf.SetCreator("folha-tarefa", true)

	w, h := pdf.GetPageSize()

	return &renderer{
		log:    log,
		pdf:    pdf,
		tr:     pdf.UnicodeTranslatorFromDescriptor(""),
		pageW:  w,
		pageH:  h,
		images: map[string]*fpdf.ImageInfoType{},
	}
}

// render flows the blocks top to bottom. A table that does not fit below the
// current position starts a new page; explicit breaks only add a page when
// another table follows.
func (r *renderer) render(doc generate_pdf.Document) {
	r.pdf.AddPage()
	y := pageMargin
	bottom := r.pageH - pageMargin

	for i, b := range doc.Blocks {
		switch b.Kind {
		case generate_pdf.BlockSpacer:
			y += b.Height * ptToCm
		case generate_pdf.BlockPageBreak:
			if gridFollows(doc.Blocks[i+1:]) {
				r.pdf.AddPage()
				y = pageMargin
			}
		case generate_pdf.BlockGrid:
			h := b.Grid.Height()
			if y+h > bottom && y > pageMargin {
				r.pdf.AddPage()
				y = pageMargin
			}
			x := max((r.pageW-b.Grid.Width())/2, 0)
			r.drawGrid(x, y, b.Grid)
			y += h
		}
	}
}

func gridFollows(blocks []generate_pdf.Block) bool {
	for _, b := range blocks {
		if b.Kind == generate_pdf.BlockGrid {
			return true
		}
	}
	return false
}

func (r *renderer) drawGrid(x0, y0 float64, g layout.Grid) {
	cols := make([]float64, g.NumCols()+1)
	cols[0] = x0
	for i, w := range g.ColWidths {
		cols[i+1] = cols[i] + w
	}
	rowY := func(row int) float64 { return y0 + float64(row)*g.RowHeight }
	area := func(rc layout.Rect) (x, y, w, h float64) {
		return cols[rc.Col0], rowY(rc.Row0), cols[rc.Col1+1] - cols[rc.Col0], rowY(rc.Row1+1) - rowY(rc.Row0)
	}
	cell := func(col, row int) layout.Rect {
		if s, ok := g.SpanAt(col, row); ok {
			return s
		}
		return layout.Rect{Col0: col, Row0: row, Col1: col, Row1: row}
	}

	for _, f := range g.Fills {
		r.pdf.SetFillColor(int(f.Color.R), int(f.Color.G), int(f.Color.B))
		x, y, w, h := area(f.Rect)
		r.pdf.Rect(x, y, w, h, "F")
	}

	for row := range g.Rows {
		for col, v := range g.Rows[row] {
			if col >= g.NumCols() || g.Covered(col, row) {
				continue
			}
			x, y, w, h := area(cell(col, row))
			r.drawValue(v, x, y, w, h, g)
		}
	}

	r.pdf.SetDrawColor(0, 0, 0)
	r.pdf.SetLineWidth(lineWidth)
	for _, ig := range g.InnerGrids {
		for row := ig.Row0; row <= ig.Row1; row++ {
			for col := ig.Col0; col <= ig.Col1; col++ {
				if g.Covered(col, row) {
					continue
				}
				x, y, w, h := area(cell(col, row))
				r.pdf.Rect(x, y, w, h, "D")
			}
		}
	}
	for _, b := range g.Boxes {
		x, y, w, h := area(b)
		r.pdf.Rect(x, y, w, h, "D")
	}
}

func (r *renderer) drawValue(v layout.Value, x, y, w, h float64, g layout.Grid) {
	pad := g.Padding
	ix, iy := x+pad.Left*ptToCm, y+pad.Top*ptToCm
	iw, ih := w-(pad.Left+pad.Right)*ptToCm, h-(pad.Top+pad.Bottom)*ptToCm

	rich, ok := v.Rich()
	if !ok {
		text := v.String()
		if text == "" {
			return
		}
		size := g.FontSize
		rich = layout.Paragraph(text, layout.Style{Size: size, Leading: size * 1.2, Align: layout.AlignCenter})
	}

	switch rich.Kind {
	case layout.RichParagraph:
		r.paragraph(rich, ix, iy, iw, ih, g.VAlign)
	case layout.RichImage:
		r.image(rich, ix, iy, iw, ih)
	case layout.RichBox:
		r.box(rich.Width, rich.Height, ix, iy, iw, ih)
	}
}

func (r *renderer) paragraph(p layout.RichText, x, y, w, h float64, va layout.VAlign) {
	if strings.TrimSpace(p.Text) == "" {
		return
	}

	style := ""
	if p.Style.Bold {
		style = "B"
	}
	r.pdf.SetFont(fontFamily, style, p.Style.Size)
	r.pdf.SetTextColor(int(p.Style.Color.R), int(p.Style.Color.G), int(p.Style.Color.B))

	var lines []string
	for _, part := range strings.Split(p.Text, lineBreak) {
		lines = append(lines, r.wrap(r.tr(strings.TrimSpace(part)), w)...)
	}

	lead := p.Style.Leading * ptToCm
	if lead <= 0 {
		lead = p.Style.Size * 1.2 * ptToCm
	}
	if va == layout.VAlignMiddle {
		if total := lead * float64(len(lines)); total < h {
			y += (h - total) / 2
		}
	}

	align := "LM"
	switch p.Style.Align {
	case layout.AlignCenter:
		align = "CM"
	case layout.AlignRight:
		align = "RM"
	}

	for i, line := range lines {
		r.pdf.SetXY(x, y+float64(i)*lead)
		r.pdf.CellFormat(w, lead, line, "", 0, align, false, 0, "")
	}
}

// wrap breaks already translated text on spaces so every line fits width w.
// A single word wider than w is kept whole.
func (r *renderer) wrap(text string, w float64) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	line := words[0]
	for _, word := range words[1:] {
		candidate := line + " " + word
		if r.pdf.GetStringWidth(candidate) > w {
			lines = append(lines, line)
			line = word
			continue
		}
		line = candidate
	}

	return append(lines, line)
}

func (r *renderer) image(p layout.RichText, x, y, w, h float64) {
	info, seen := r.images[p.Path]
	if !seen {
		info = r.pdf.RegisterImageOptions(p.Path, fpdf.ImageOptions{ReadDpi: true})
		if !r.pdf.Ok() {
			r.log.Warn("image could not be embedded, drawing placeholder", slog.String("path", p.Path), slog.String("error", r.pdf.Error().Error()))
			r.pdf.ClearError()
			info = nil
		}
		r.images[p.Path] = info
	}
	if info == nil {
		r.box(p.Width, p.Height, x, y, w, h)
		return
	}

	iw, ih := fit(p.Width, p.Height, w, h)
	r.pdf.ImageOptions(p.Path, x+(w-iw)/2, y+(h-ih)/2, iw, ih, false, fpdf.ImageOptions{ReadDpi: true}, 0, "")
}

func (r *renderer) box(bw, bh, x, y, w, h float64) {
	bw, bh = fit(bw, bh, w, h)
	r.pdf.SetDrawColor(0, 0, 0)
	r.pdf.SetLineWidth(lineWidth)
	r.pdf.Rect(x+(w-bw)/2, y+(h-bh)/2, bw, bh, "D")
}

// fit scales (w, h) down, keeping its ratio, so it fits inside (maxW, maxH).
func fit(w, h, maxW, maxH float64) (float64, float64) {
	if w <= 0 || h <= 0 {
		return 0, 0
	}
	scale := 1.0
	if w > maxW {
		scale = maxW / w
	}
	if h*scale > maxH {
		scale = maxH / h
	}
	return w * scale, h * scale
}
