package layout

import (
	"strconv"
	"strings"

	"folha-tarefa/internal/constants"
)

// FragmentRows is the fixed height of one activity table.
const FragmentRows = 6

var fragmentWidths = []float64{2, 1, 1.5, 3.5, 4, 3, 1, 3, 1, 6}

// FragmentTemplate is the placeholder grid of one activity table before
// substitution. index is the 1-based frame number printed in the header.
func FragmentTemplate(index int, st Styles, checkbox RichText) Grid {
	p := func(s string) Value { return Rich(Paragraph(s, st.Subtitle)) }
	t := Template
	cb := Rich(checkbox)
	e := Text("")

	g := Grid{
		Rows: [][]Value{
			{p("FRENTE:"), Text(strconv.Itoa(index)), p("Local:"), t("[" + constants.ColLocation + "]"), p("Cronograma"), p("Pendência"), Text(" "), p("Atividade"), Text(" "), p("INFORMAÇÕES DE PT")},
			{t("[" + constants.ColDescription + "]"), e, e, e, e, t("Documentação"), cb, t("Nova"), cb, t("Nº PT:")},
			{e, e, e, e, t("[" + constants.ColPendency + "]"), t("Projeto"), cb, t("Andamento:"), cb, t("Horário Solicitação:")},
			{e, e, e, e, e, t("Suprimento"), cb, t("Paralisada:"), cb, t("Horário Liberação:")},
			{t("Observações:"), e, t("[" + constants.ColHandover + "]"), e, e, t("Outros"), cb, t("Finalizada:"), cb, t("Impacto de:")},
			{t("Impacto ou Paralisação:"), e, e, e, e, e, e, e, e, t("ATÉ")},
		},
		ColWidths: fragmentWidths,
		RowHeight: 0.7,
		VAlign:    VAlignTop,
		Padding:   Padding{Left: 4, Right: 4, Top: 3, Bottom: 3},
		FontSize:  9,
	}

	g.Boxes = []Rect{
		g.R(0, 0, -1, -1),
		g.R(0, 0, -1, 0),
		g.R(4, 0, 4, -2),
		g.R(5, 0, 6, -2),
		g.R(7, 0, 8, -2),
		g.R(9, 0, 9, -2),
		g.R(0, -1, -1, -1),
	}
	g.InnerGrids = []Rect{g.R(-1, 0, -1, -2)}
	g.Fills = []Fill{{Rect: g.R(0, 0, -1, 0), Color: LightGrey}}
	g.Spans = []Rect{
		g.R(0, 1, 3, 1),   // description
		g.R(0, -2, 1, -2), // observations label
		g.R(2, -2, 3, -2), // handover text
		g.R(0, -1, 4, -1), // impact
		g.R(-3, 0, -2, 0),
		g.R(-5, 0, -4, 0),
	}

	return g
}

// BuildFragment fills the activity table for one record and styles the text:
// the description and the handover note get their own styles, everything else
// is body text.
func BuildFragment(m Mapping, index int, st Styles, checkbox RichText) Grid {
	g := SubstituteGrid(FragmentTemplate(index, st, checkbox), m)

	description := strings.TrimSpace(plain(m[constants.ColDescription]))
	handover := strings.TrimSpace(plain(m[constants.ColHandover]))

	for r, row := range g.Rows {
		for c, cell := range row {
			if cell.kind == KindRich {
				continue
			}

			text := strings.TrimSpace(cell.String())
			if strings.EqualFold(text, "nan") {
				text = ""
			}

			style := st.Body
			switch {
			case description != "" && text == description:
				style = st.Description
			case handover != "" && text == handover:
				style = st.Handover
			}
			g.Rows[r][c] = Rich(Paragraph(text, style))
		}
	}

	return g
}

func plain(v Value) string {
	if v.isMissing() {
		return ""
	}
	return v.String()
}
