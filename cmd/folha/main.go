package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "folha",
		Short:         "Gera as folhas de tarefa diárias por encarregado e turno",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default $CONFIG_PATH or ./config/local.yaml)")

	root.AddCommand(newGenerateCmd(&configPath))
	root.AddCommand(newNormalizeCmd(&configPath))
	root.AddCommand(newRosterCmd(&configPath))
	return root
}
