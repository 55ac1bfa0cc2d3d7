package generate_pdf

import "folha-tarefa/internal/service/layout"

type BlockKind int

const (
	BlockGrid BlockKind = iota
	BlockSpacer
	BlockPageBreak
)

// Block is one element of the document flow. Spacer heights are in points.
type Block struct {
	Kind   BlockKind
	Grid   layout.Grid
	Height float64
}

// Document is the ordered flow written as one PDF: cover, fragments, breaks.
type Document struct {
	Title  string
	Blocks []Block
}

func (d *Document) add(b Block) {
	d.Blocks = append(d.Blocks, b)
}

func (d *Document) grid(g layout.Grid) {
	d.add(Block{Kind: BlockGrid, Grid: g})
}

func (d *Document) spacer(points float64) {
	d.add(Block{Kind: BlockSpacer, Height: points})
}

func (d *Document) pageBreak() {
	d.add(Block{Kind: BlockPageBreak})
}

// Grids counts every table in the flow, cover included.
func (d Document) Grids() int {
	n := 0
	for _, b := range d.Blocks {
		if b.Kind == BlockGrid {
			n++
		}
	}
	return n
}

func (d Document) PageBreaks() int {
	n := 0
	for _, b := range d.Blocks {
		if b.Kind == BlockPageBreak {
			n++
		}
	}
	return n
}
