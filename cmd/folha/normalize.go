package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"folha-tarefa/internal/config"
	"folha-tarefa/internal/service/normalize"
	"folha-tarefa/internal/storage/xlsx"
)

func newNormalizeCmd(configPath *string) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "normalize <planilha>",
		Short: "Trata a planilha exportada e grava a versão normalizada",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			const op = "cmd.folha.normalize"

			cfg := config.MustConfig(*configPath)
			log := setupLogger(cfg.Env)

			if out == "" {
				out = cfg.NormalizedPath
			}

			rows, err := xlsx.ReadRows(args[0])
			if err != nil {
				log.Error("failed to read spreadsheet", slog.String("op", op), slog.String("error", err.Error()))
				return err
			}

			table, err := normalize.Normalize(rows)
			if err != nil {
				log.Error("failed to normalize spreadsheet", slog.String("op", op), slog.String("error", err.Error()))
				return err
			}

			if err := xlsx.WriteTable(out, table); err != nil {
				log.Error("failed to write normalized spreadsheet", slog.String("op", op), slog.String("error", err.Error()))
				return err
			}

			log.Info("spreadsheet normalized", slog.String("path", out), slog.Int("rows", len(table.Rows)))
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "arquivo de saída (default normalized_path)")
	return cmd
}
