package assets

import (
	"log/slog"
	"os"
	"path/filepath"

	"folha-tarefa/internal/service/layout"
)

const (
	logoFile     = "logo.png"
	checkboxFile = "square.png"

	logoWidth    = 3.5
	logoHeight   = 2
	checkboxSide = 0.35
)

type Assets struct {
	Logo     layout.RichText
	Checkbox layout.RichText
}

// Load resolves the images under dir. A missing logo becomes a "LOGO"
// paragraph and a missing checkbox an empty drawn square; both are logged.
func Load(log *slog.Logger, dir string, styles layout.Styles) Assets {
	a := Assets{
		Logo:     layout.Paragraph("LOGO", styles.Body),
		Checkbox: layout.Box(checkboxSide, checkboxSide),
	}

	logo := filepath.Join(dir, logoFile)
	if err := readable(logo); err != nil {
		log.Warn("failed to load logo, using text placeholder", slog.String("path", logo), slog.String("error", err.Error()))
	} else {
		a.Logo = layout.Image(logo, logoWidth, logoHeight)
	}

	checkbox := filepath.Join(dir, checkboxFile)
	if err := readable(checkbox); err != nil {
		log.Warn("failed to load checkbox image, drawing boxes", slog.String("path", checkbox), slog.String("error", err.Error()))
	} else {
		a.Checkbox = layout.Image(checkbox, checkboxSide, checkboxSide)
	}

	return a
}

func readable(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	return f.Close()
}
