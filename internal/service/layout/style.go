package layout

type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

type VAlign int

const (
	VAlignTop VAlign = iota
	VAlignMiddle
)

type Color struct {
	R, G, B uint8
}

var (
	Black     = Color{0, 0, 0}
	Blue      = Color{0, 0, 255}
	DarkRed   = Color{0xB3, 0x00, 0x00}
	ValueBlue = Color{0x00, 0x70, 0xC0}
	LightGrey = Color{0xD9, 0xD9, 0xD9}
)

// Style describes how a paragraph is drawn. Sizes are in points.
type Style struct {
	Bold    bool
	Size    float64
	Leading float64
	Color   Color
	Align   Align
}

// Styles is built once per run and handed to every layout call.
type Styles struct {
	Body        Style
	Subtitle    Style
	Description Style
	Handover    Style

	Cover CoverStyles
}

type CoverStyles struct {
	Text     Style
	Title    Style
	Subtitle Style
	Label    Style
	Value    Style
}

func DefaultStyles() Styles {
	return Styles{
		Body:        Style{Size: 9, Leading: 12, Color: Black, Align: AlignLeft},
		Subtitle:    Style{Bold: true, Size: 9, Leading: 10, Color: Black, Align: AlignCenter},
		Description: Style{Bold: true, Size: 9, Leading: 12, Color: Blue, Align: AlignLeft},
		Handover:    Style{Bold: true, Size: 8, Leading: 12, Color: DarkRed, Align: AlignLeft},
		Cover: CoverStyles{
			Text:     Style{Size: 7, Leading: 9, Color: Black, Align: AlignCenter},
			Title:    Style{Bold: true, Size: 10, Leading: 12, Color: Black, Align: AlignCenter},
			Subtitle: Style{Bold: true, Size: 7, Leading: 10, Color: Black, Align: AlignCenter},
			Label:    Style{Bold: true, Size: 8, Leading: 10, Color: Black, Align: AlignCenter},
			Value:    Style{Bold: true, Size: 7, Leading: 10, Color: ValueBlue, Align: AlignLeft},
		},
	}
}
