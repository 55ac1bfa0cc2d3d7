package layout

import (
	"math"
	"strconv"
	"strings"
)

type Kind int

const (
	KindNull Kind = iota
	KindText
	KindNumber
	KindRich
	KindTemplate
)

type RichKind int

const (
	RichParagraph RichKind = iota
	RichImage
	// RichBox is an empty square drawn in place of a missing glyph image.
	RichBox
)

// RichText is a finished visual element. It is placed as-is and never
// substituted again.
type RichText struct {
	Kind  RichKind
	Text  string
	Style Style

	// Path, Width and Height (cm) apply to images and boxes.
	Path   string
	Width  float64
	Height float64
}

func Paragraph(text string, st Style) RichText {
	return RichText{Kind: RichParagraph, Text: text, Style: st}
}

func Image(path string, width, height float64) RichText {
	return RichText{Kind: RichImage, Path: path, Width: width, Height: height}
}

func Box(width, height float64) RichText {
	return RichText{Kind: RichBox, Width: width, Height: height}
}

// Value is one grid cell or one mapping entry.
type Value struct {
	kind Kind
	text string
	num  float64
	rich RichText
}

func Null() Value { return Value{kind: KindNull} }

// Text is literal text; brackets in it are never read as placeholders.
func Text(s string) Value { return Value{kind: KindText, text: s} }

func Number(f float64) Value { return Value{kind: KindNumber, num: f} }

func Rich(r RichText) Value { return Value{kind: KindRich, rich: r} }

// Template holds text with [Key] tokens. Text without tokens is literal.
func Template(s string) Value {
	if !placeholder.MatchString(s) {
		return Text(s)
	}
	return Value{kind: KindTemplate, text: s}
}

func (v Value) Kind() Kind { return v.kind }

func (v Value) Rich() (RichText, bool) {
	return v.rich, v.kind == KindRich
}

func (v Value) Float() (float64, bool) {
	return v.num, v.kind == KindNumber
}

// String is the text form used when a value lands inside a cell.
func (v Value) String() string {
	switch v.kind {
	case KindText, KindTemplate:
		return v.text
	case KindNumber:
		if math.IsNaN(v.num) {
			return ""
		}
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindRich:
		return v.rich.Text
	}
	return ""
}

// isMissing covers null, NaN and the literal text "nan" left by spreadsheet exports.
func (v Value) isMissing() bool {
	switch v.kind {
	case KindNull:
		return true
	case KindNumber:
		return math.IsNaN(v.num)
	case KindText:
		return strings.EqualFold(v.text, "nan")
	}
	return false
}

// Mapping resolves placeholder keys.
type Mapping map[string]Value

// MappingFromFields maps record columns; blank cells become Null.
func MappingFromFields(fields map[string]string) Mapping {
	m := make(Mapping, len(fields))
	for k, v := range fields {
		if v == "" {
			m[k] = Null()
			continue
		}
		m[k] = Text(v)
	}
	return m
}

// BlankMapping has every key of fields mapped to empty text.
func BlankMapping(fields map[string]string) Mapping {
	m := make(Mapping, len(fields))
	for k := range fields {
		m[k] = Text("")
	}
	return m
}
