package pdf

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	generate_pdf "folha-tarefa/internal/service/generate-pdf"
)

type Writer struct {
	log      *slog.Logger
	optimize bool
}

func NewWriter(log *slog.Logger, optimize bool) *Writer {
	return &Writer{log: log, optimize: optimize}
}

// Write renders doc to path and returns its page count. The document is
// drawn into a temporary file next to path and only moved into place once
// complete, so a failed run never leaves a truncated PDF behind.
func (w *Writer) Write(ctx context.Context, doc generate_pdf.Document, path string) (int, error) {
	const op = "storage.pdf.Write"

	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	tmp, err := os.CreateTemp(dir, ".folha-*.pdf")
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	tmpPath := tmp.Name()
	tmp.Close()
	defer os.Remove(tmpPath)

	r := newRenderer(w.log, doc.Title)
	r.render(doc)
	if err := r.pdf.OutputFileAndClose(tmpPath); err != nil {
		return 0, fmt.Errorf("%s: render: %w", op, err)
	}

	if err := w.finish(tmpPath, path); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	pages, err := api.PageCountFile(path)
	if err != nil {
		return 0, fmt.Errorf("%s: count pages: %w", op, err)
	}

	return pages, nil
}

func (w *Writer) finish(tmpPath, path string) error {
	if w.optimize {
		cfg := model.NewDefaultConfiguration()
		cfg.ValidationMode = model.ValidationRelaxed
		err := api.OptimizeFile(tmpPath, path, cfg)
		if err == nil {
			return nil
		}
		w.log.Warn("pdf optimization failed, keeping unoptimized file", slog.String("path", path), slog.String("error", err.Error()))
	}

	return os.Rename(tmpPath, path)
}
