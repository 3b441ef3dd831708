// Command quipu is the operator CLI: text utilities that mirror the API,
// schema migrations and alias maintenance.
//
// Usage:
//
//	quipu normalize "Pedro  Castillo"
//	quipu variants politica
//	quipu categories --source plan
//	quipu migrate up
//	quipu aliases backfill
//	quipu token --user <uuid> --org <uuid>
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/DAAT-RI/quipu/internal/app"
	"github.com/DAAT-RI/quipu/internal/config"
)

// configPath overrides CONFIG_PATH when set through --config.
var configPath string

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "quipu",
		Short:         "Operator tooling for the quipu civic data API",
		Version:       app.BuildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (defaults to $CONFIG_PATH or ./config.yaml)")

	root.AddCommand(normalizeCmd())
	root.AddCommand(variantsCmd())
	root.AddCommand(categoriesCmd())
	root.AddCommand(migrateCmd())
	root.AddCommand(aliasesCmd())
	root.AddCommand(tokenCmd())

	return root
}

func loadConfig() (*config.Config, error) {
	if configPath != "" {
		return config.LoadFile(configPath)
	}
	return config.Load()
}
