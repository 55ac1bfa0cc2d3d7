package generate_pdf

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"

	"folha-tarefa/internal/service/layout"
	"folha-tarefa/internal/service/normalize"
	"folha-tarefa/internal/service/shift"
	"folha-tarefa/internal/storage"
	"folha-tarefa/internal/storage/xlsx"
)

const summaryFile = "resumo.xlsx"

var ErrNoInput = errors.New("no input file selected")

type Spreadsheet interface {
	ReadRows(path string) ([][]string, error)
	WriteTable(path string, t *storage.Table) error
	WriteSummary(path string, rows []xlsx.SummaryRow) error
}

type DocumentWriter interface {
	Write(ctx context.Context, doc Document, path string) (int, error)
}

type CoverBuilder interface {
	Build(supervisor string, date time.Time, shiftLabel string) layout.Grid
}

type Options struct {
	OutputDir      string
	FolderPrefix   string
	ArtifactPrefix string
	// NormalizedPath receives a copy of the normalized table; empty skips it.
	NormalizedPath string
	Workers        int
	Summary        bool

	Styles   layout.Styles
	Checkbox layout.RichText
}

type Request struct {
	InputPath string
	Date      time.Time
	Shift     shift.Shift
}

type Result struct {
	Supervisor string
	Activities int
	Fragments  int
	Pages      int
	Path       string
	Err        error
}

type Report struct {
	Folder  string
	Total   int
	Kept    int
	Results []Result
}

func (r *Report) Failed() int {
	n := 0
	for _, res := range r.Results {
		if res.Err != nil {
			n++
		}
	}
	return n
}

type GenerateService struct {
	log    *slog.Logger
	sheets Spreadsheet
	writer DocumentWriter
	covers CoverBuilder
	opts   Options
}

func NewGenerateService(log *slog.Logger, sheets Spreadsheet, writer DocumentWriter, covers CoverBuilder, opts Options) *GenerateService {
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	return &GenerateService{
		log:    log,
		sheets: sheets,
		writer: writer,
		covers: covers,
		opts:   opts,
	}
}

// Run generates one task sheet per supervisor of the requested shift. Only
// input problems abort the run; a failing supervisor is recorded in the
// report and the others still get their sheets.
func (g *GenerateService) Run(ctx context.Context, req Request) (*Report, error) {
	const op = "service.generate-pdf.Run"

	if req.InputPath == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrNoInput)
	}

	table, err := g.Load(req.InputPath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	records := table.Records()
	kept := shift.Partition(g.log, records, req.Date, req.Shift)
	groups := GroupBySupervisor(kept, req.Shift)

	folder := filepath.Join(g.opts.OutputDir, FolderName(g.opts.FolderPrefix, req.Date, req.Shift))
	if err := os.MkdirAll(folder, 0o755); err != nil {
		return nil, fmt.Errorf("%s: create output folder: %w", op, err)
	}

	g.log.Info("generating task sheets",
		slog.String("date", req.Date.Format("02/01/2006")),
		slog.String("shift", req.Shift.Label()),
		slog.Int("activities", len(records)),
		slog.Int("kept", len(kept)),
		slog.Int("supervisors", len(groups)),
		slog.String("folder", folder),
	)

	report := &Report{
		Folder:  folder,
		Total:   len(records),
		Kept:    len(kept),
		Results: make([]Result, len(groups)),
	}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(g.opts.Workers)
	for i, grp := range groups {
		eg.Go(func() error {
			report.Results[i] = g.generate(egCtx, grp, table.Header, req, folder)
			return nil
		})
	}
	_ = eg.Wait()

	if g.opts.Summary {
		g.writeSummary(folder, report)
	}

	return report, nil
}

// Load reads and normalizes the export, saving the normalized copy when configured.
func (g *GenerateService) Load(path string) (*storage.Table, error) {
	rows, err := g.sheets.ReadRows(path)
	if err != nil {
		return nil, err
	}

	table, err := normalize.Normalize(rows)
	if err != nil {
		return nil, err
	}

	if g.opts.NormalizedPath != "" {
		if err := g.sheets.WriteTable(g.opts.NormalizedPath, table); err != nil {
			g.log.Warn("failed to save normalized spreadsheet", slog.String("path", g.opts.NormalizedPath), slog.String("error", err.Error()))
		}
	}

	return table, nil
}

func (g *GenerateService) generate(ctx context.Context, grp Group, columns []string, req Request, folder string) (res Result) {
	const op = "service.generate-pdf.generate"

	log := g.log.With(slog.String("supervisor", grp.Supervisor))
	res = Result{Supervisor: grp.Supervisor, Activities: len(grp.Records)}

	defer func() {
		if r := recover(); r != nil {
			res.Err = fmt.Errorf("%s: panic: %v", op, r)
		}
		if res.Err != nil {
			log.Error("failed to generate task sheet", slog.String("op", op), slog.String("error", res.Err.Error()))
		}
	}()

	if err := ctx.Err(); err != nil {
		res.Err = fmt.Errorf("%s: %w", op, err)
		return res
	}

	cover := g.covers.Build(grp.Supervisor, req.Date, req.Shift.Label())
	title := fmt.Sprintf("Folha Tarefa %s %s %s", grp.Supervisor, req.Date.Format("02/01/2006"), req.Shift.Label())
	doc := Assemble(title, cover, grp.Records, columns, g.opts.Styles, g.opts.Checkbox)
	res.Fragments = doc.Grids() - 1

	path := filepath.Join(folder, FileName(g.opts.ArtifactPrefix, grp.Supervisor, req.Date, req.Shift))
	pages, err := g.writer.Write(ctx, doc, path)
	if err != nil {
		res.Err = fmt.Errorf("%s: %w", op, err)
		return res
	}

	res.Pages = pages
	res.Path = path
	log.Info("task sheet generated", slog.String("path", path), slog.Int("fragments", res.Fragments), slog.Int("pages", pages))

	return res
}

func (g *GenerateService) writeSummary(folder string, report *Report) {
	rows := make([]xlsx.SummaryRow, 0, len(report.Results))
	for _, r := range report.Results {
		row := xlsx.SummaryRow{
			Supervisor: r.Supervisor,
			Activities: r.Activities,
			Fragments:  r.Fragments,
			Pages:      r.Pages,
			File:       filepath.Base(r.Path),
		}
		if r.Path == "" {
			row.File = ""
		}
		if r.Err != nil {
			row.Error = r.Err.Error()
		}
		rows = append(rows, row)
	}

	path := filepath.Join(folder, summaryFile)
	if err := g.sheets.WriteSummary(path, rows); err != nil {
		g.log.Warn("failed to write run summary", slog.String("path", path), slog.String("error", err.Error()))
	}
}
