package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"folha-tarefa/internal/config"
	"folha-tarefa/internal/constants"
	"folha-tarefa/internal/service/cover"
	generate_pdf "folha-tarefa/internal/service/generate-pdf"
	"folha-tarefa/internal/service/layout"
	"folha-tarefa/internal/service/shift"
	"folha-tarefa/internal/storage/assets"
	"folha-tarefa/internal/storage/pdf"
	"folha-tarefa/internal/storage/roster"
	"folha-tarefa/internal/storage/xlsx"
	"folha-tarefa/internal/ui/picker"
)

func newGenerateCmd(configPath *string) *cobra.Command {
	var dateFlag, shiftFlag string

	cmd := &cobra.Command{
		Use:   "generate [planilha]",
		Short: "Gera um PDF por encarregado para a data e o turno",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.MustConfig(*configPath)
			log := setupLogger(cfg.Env).With(slog.String("run_id", uuid.NewString()))

			input := ""
			if len(args) == 1 {
				input = args[0]
			}

			req, err := resolveRequest(input, dateFlag, shiftFlag)
			if err != nil {
				if errors.Is(err, picker.ErrAborted) || errors.Is(err, generate_pdf.ErrNoInput) {
					log.Error("no file selected")
					return errors.New("nenhum arquivo selecionado")
				}
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			return runGenerate(ctx, log, cfg, req)
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "", "data da folha (DD/MM/AAAA)")
	cmd.Flags().StringVar(&shiftFlag, "shift", "", "turno: manha ou noite")
	return cmd
}

// resolveRequest fills whatever the flags left out through the interactive pickers.
func resolveRequest(input, dateFlag, shiftFlag string) (generate_pdf.Request, error) {
	const op = "cmd.folha.resolveRequest"

	var (
		req generate_pdf.Request
		err error
	)

	req.InputPath = input
	if req.InputPath == "" {
		if req.InputPath, err = picker.PickFile("."); err != nil {
			return req, err
		}
	}
	if _, err := os.Stat(req.InputPath); err != nil {
		return req, fmt.Errorf("%s: %w", op, err)
	}

	if dateFlag != "" {
		if req.Date, err = time.Parse(constants.DateLayout, dateFlag); err != nil {
			return req, fmt.Errorf("%s: invalid --date %q, expected DD/MM/YYYY", op, dateFlag)
		}
	}
	if shiftFlag != "" {
		if req.Shift, err = shift.ParseShift(shiftFlag); err != nil {
			return req, fmt.Errorf("%s: %w", op, err)
		}
	}

	if req.Date.IsZero() || req.Shift == "" {
		date, s := req.Date, req.Shift
		if date.IsZero() {
			date = time.Now()
		}
		if s == "" {
			s = shift.Morning
		}
		if req.Date, req.Shift, err = picker.PickSchedule(date, s); err != nil {
			return req, err
		}
	}

	return req, nil
}

func runGenerate(ctx context.Context, log *slog.Logger, cfg *config.Config, req generate_pdf.Request) error {
	const op = "cmd.folha.runGenerate"

	teams, err := roster.Load(cfg.RosterPath)
	if err != nil {
		log.Error("failed to load roster", slog.String("op", op), slog.String("error", err.Error()))
		return err
	}

	styles := layout.DefaultStyles()
	images := assets.Load(log, cfg.ImagesDir, styles)

	covers := cover.NewBuilder(log, teams, styles, cover.Header{
		Contract: cfg.Contract,
		Venture:  cfg.Venture,
	}, images.Logo)

	svc := generate_pdf.NewGenerateService(log, xlsx.Workbooks{}, pdf.NewWriter(log, !cfg.SkipOptimize), covers, generate_pdf.Options{
		OutputDir:      cfg.OutputDir,
		FolderPrefix:   cfg.FolderPrefix,
		ArtifactPrefix: cfg.ArtifactPrefix,
		NormalizedPath: cfg.NormalizedPath,
		Workers:        cfg.Workers,
		Summary:        !cfg.SkipSummary,
		Styles:         styles,
		Checkbox:       images.Checkbox,
	})

	report, err := svc.Run(ctx, req)
	if err != nil {
		log.Error("generation failed", slog.String("op", op), slog.String("error", err.Error()))
		return err
	}

	log.Info("generation finished",
		slog.String("folder", report.Folder),
		slog.Int("sheets", len(report.Results)-report.Failed()),
		slog.Int("failed", report.Failed()),
	)

	if n := report.Failed(); n > 0 {
		return fmt.Errorf("%d de %d folhas falharam, veja %s", n, len(report.Results), errorLogFile)
	}

	return nil
}
