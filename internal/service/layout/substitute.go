package layout

import (
	"regexp"
	"strings"
)

var placeholder = regexp.MustCompile(`\[([^\]]+)\]`)

// Substitute resolves every placeholder in cell against m. The result is never
// a template, so applying it again with the same mapping changes nothing.
func Substitute(cell Value, m Mapping) Value {
	switch cell.kind {
	case KindRich, KindText:
		return cell
	case KindNull:
		return Text("")
	case KindNumber:
		if cell.isMissing() {
			return Text("")
		}
		return cell
	}

	matches := placeholder.FindAllStringSubmatch(cell.text, -1)
	if len(matches) == 0 {
		return Text(cell.text)
	}

	if len(matches) == 1 && strings.TrimSpace(cell.text) == matches[0][0] {
		v, ok := m[matches[0][1]]
		if !ok {
			return Text("")
		}
		if v.kind == KindRich {
			return v
		}
		if v.isMissing() {
			return Text("")
		}
		return Text(v.String())
	}

	out := placeholder.ReplaceAllStringFunc(cell.text, func(token string) string {
		key := token[1 : len(token)-1]
		v, ok := m[key]
		if !ok || v.isMissing() {
			return ""
		}
		return v.String()
	})
	return Text(out)
}

// SubstituteGrid returns a copy of g with every cell resolved.
func SubstituteGrid(g Grid, m Mapping) Grid {
	out := g
	out.Rows = make([][]Value, len(g.Rows))
	for r, row := range g.Rows {
		out.Rows[r] = make([]Value, len(row))
		for c, cell := range row {
			out.Rows[r][c] = Substitute(cell, m)
		}
	}
	return out
}
