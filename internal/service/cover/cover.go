// Package cover builds the first page of a task sheet: header block plus the
// supervisor's crew roster.
package cover

import (
	"log/slog"
	"strconv"
	"time"

	"folha-tarefa/internal/service/layout"
	"folha-tarefa/internal/storage"
)

// MaxCrew is the number of roster rows printed on the cover.
const MaxCrew = 17

// HeaderRows precede the roster rows.
const HeaderRows = 6

const columns = 17

var weekdays = [...]string{
	time.Sunday:    "Domingo",
	time.Monday:    "Segunda-feira",
	time.Tuesday:   "Terça-feira",
	time.Wednesday: "Quarta-feira",
	time.Thursday:  "Quinta-feira",
	time.Friday:    "Sexta-feira",
	time.Saturday:  "Sábado",
}

// Weekday returns the Portuguese weekday name, or "" for a zero date.
func Weekday(date time.Time) string {
	if date.IsZero() {
		return ""
	}
	return weekdays[date.Weekday()]
}

type RosterLookup interface {
	Lookup(supervisor string) ([]storage.RosterEntry, bool)
}

// Header carries the fixed contract values printed on every cover.
type Header struct {
	Contract string
	Venture  string
}

type Builder struct {
	log    *slog.Logger
	roster RosterLookup
	styles layout.Styles
	header Header
	logo   layout.RichText
}

func NewBuilder(log *slog.Logger, roster RosterLookup, styles layout.Styles, header Header, logo layout.RichText) *Builder {
	return &Builder{
		log:    log,
		roster: roster,
		styles: styles,
		header: header,
		logo:   logo,
	}
}

// Build returns the cover grid. An unmapped supervisor is not an error: the
// roster rows are left blank and a warning is logged.
func (b *Builder) Build(supervisor string, date time.Time, shiftLabel string) layout.Grid {
	crew, ok := b.roster.Lookup(supervisor)

	st := b.styles.Cover
	p := func(s string, style layout.Style) layout.Value { return layout.Rich(layout.Paragraph(s, style)) }
	e := layout.Text("")
	blank := func(n int) []layout.Value {
		out := make([]layout.Value, n)
		for i := range out {
			out[i] = e
		}
		return out
	}
	row := func(head []layout.Value, tail ...layout.Value) []layout.Value {
		r := append([]layout.Value{}, head...)
		r = append(r, blank(columns-len(head)-len(tail))...)
		return append(r, tail...)
	}

	dateText := ""
	if !date.IsZero() {
		dateText = date.Format("02/01/2006")
	}

	numbers := make([]layout.Value, 0, 12)
	for i := 1; i <= 12; i++ {
		numbers = append(numbers, layout.Text(strconv.Itoa(i)))
	}

	rows := [][]layout.Value{
		row([]layout.Value{e, p("FOLHA TAREFA", st.Title)}, p("CONTRATO:", st.Label), e, p(b.header.Contract, st.Value)),
		row([]layout.Value{layout.Rich(b.logo)}, p("DATA:", st.Label), e, p(dateText, st.Value)),
		row(nil, p("DIA:", st.Label), e, p(Weekday(date), st.Value)),
		row([]layout.Value{p("EMPREENDIMENTO:", st.Label), e, layout.Text(b.header.Venture)}, p("TURNO:", st.Label), e, p(shiftLabel, st.Value)),
		row([]layout.Value{p("(COLABORADOR) EQUIPE - "+supervisor, st.Subtitle), p("FUNÇÃO", st.Subtitle), p("FRENTE", st.Subtitle)}, p("CONTROLE<br/>DE HORAS", st.Subtitle), e, e),
		row(append([]layout.Value{e, e}, numbers...), e, e, e),
	}

	for i := 0; i < MaxCrew; i++ {
		var name, role string
		if i < len(crew) {
			name, role = crew[i].Name, crew[i].Role
		}
		rows = append(rows, row([]layout.Value{p(name, st.Value), p(role, st.Value)}, p("ATÉ", st.Subtitle), e))
	}

	g := layout.Grid{
		Rows:      rows,
		ColWidths: []float64{6, 4, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 3, 1, 3},
		RowHeight: 0.8,
		VAlign:    layout.VAlignMiddle,
		Padding:   layout.Padding{Left: 6, Right: 6, Top: 3, Bottom: 3},
		FontSize:  9,
	}
	g.Boxes = []layout.Rect{
		g.R(0, 0, -1, -1),
		g.R(0, 0, -1, 2),
		g.R(0, 3, 13, 3),
		g.R(-3, 3, -1, 3),
		g.R(-3, 0, -1, 2),
		g.R(-3, 4, -1, 5),
	}
	g.Fills = []layout.Fill{{Rect: g.R(0, 4, -1, 5), Color: layout.LightGrey}}
	g.InnerGrids = []layout.Rect{
		g.R(0, 4, -3, -1),
		g.R(-1, 6, -1, -1),
	}
	g.Spans = []layout.Rect{
		g.R(1, 0, 13, 2),
		g.R(0, 3, 1, 3),
		g.R(2, 3, 13, 3),
		g.R(2, 4, 13, 4),
		g.R(0, 4, 0, 5),
		g.R(1, 4, 1, 5),
		g.R(-3, 4, -1, 5),
	}

	if ok && len(crew) > 0 {
		placed := min(len(crew), MaxCrew)
		b.log.Info("cover built",
			slog.String("supervisor", supervisor),
			slog.Int("crew", len(crew)),
			slog.Int("placed", placed),
		)
		if len(crew) > MaxCrew {
			b.log.Warn("crew truncated on cover", slog.String("supervisor", supervisor), slog.Int("dropped", len(crew)-MaxCrew))
		}
	} else {
		b.log.Warn("supervisor not found in roster, blank cover built", slog.String("supervisor", supervisor))
	}

	return g
}
