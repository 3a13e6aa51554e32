// Package cli implements the tagcenter command line.
package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tagcenter/tagcenter/internal/daemon"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "tagcenter",
	Short: "FASTag service center ledger",
	Long: `tagcenter records counter transactions, tracks pending balances per
vehicle, runs the collection workflow and closes worker shifts.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config",
		filepath.Join(daemon.Home(), "config.toml"), "Path to config file")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// openDaemon loads config and opens the store. Callers must Close it.
func openDaemon(ctx context.Context) (*daemon.Daemon, error) {
	cfg, err := daemon.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return daemon.New(ctx, cfg)
}
