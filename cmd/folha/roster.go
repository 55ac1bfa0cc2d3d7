package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	"folha-tarefa/internal/config"
	"folha-tarefa/internal/storage"
	"folha-tarefa/internal/storage/roster"
)

func newRosterCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "roster",
		Short: "Lista as equipes de cada encarregado",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.MustConfig(*configPath)

			teams, err := roster.Load(cfg.RosterPath)
			if err != nil {
				return err
			}

			printRoster(cmd.OutOrStdout(), teams)
			return nil
		},
	}
}

func printRoster(w io.Writer, teams *storage.Roster) {
	names := teams.Supervisors()
	sort.Strings(names)
	for _, name := range names {
		crew, _ := teams.Lookup(name)
		_, _ = fmt.Fprintf(w, "%s (%d)\n", name, len(crew))
		for _, e := range crew {
			_, _ = fmt.Fprintf(w, "  %-40s %s\n", e.Name, e.Role)
		}
	}
}
