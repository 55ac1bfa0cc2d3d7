package generate_pdf

import (
	"folha-tarefa/internal/service/layout"
	"folha-tarefa/internal/storage"
)

const (
	FragmentsPerPage = 4
	BlankFragments   = 3

	coverGap    = 12
	fragmentGap = 1
)

// Assemble lays out one supervisor's sheet: the cover, one fragment per record
// in row order, then blank fragments for handwritten additions. A page break
// follows every FragmentsPerPage fragments; the cover does not count.
func Assemble(title string, cover layout.Grid, records []storage.ActivityRecord, columns []string, st layout.Styles, checkbox layout.RichText) Document {
	doc := Document{Title: title}
	doc.grid(cover)
	doc.spacer(coverGap)

	index := 1
	count := 0
	place := func(m layout.Mapping) {
		doc.grid(layout.BuildFragment(m, index, st, checkbox))
		doc.spacer(fragmentGap)
		index++
		count++
		if count == FragmentsPerPage {
			doc.pageBreak()
			count = 0
		}
	}

	for _, rec := range records {
		place(layout.MappingFromFields(rec.Fields))
	}

	blank := make(map[string]string, len(columns))
	for _, c := range columns {
		blank[c] = ""
	}
	for i := 0; i < BlankFragments; i++ {
		place(layout.BlankMapping(blank))
	}

	return doc
}
