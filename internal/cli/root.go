package cli

import (
	"fmt"
	"os"

	"printhub/internal/infrastructure/config"
	"printhub/internal/infrastructure/logging"

	"github.com/spf13/cobra"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "printhub",
	Short: "Printhub - print shop order backend",
	Long: `Printhub manages order requests for a print shop and keeps the
client_orders mirror table in step with them.

Run "printhub serve" to start the HTTP API, or use the other commands to
inspect the configured storage backend.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := logging.Setup(loaded.LogLevel, loaded.LogFormat, os.Stderr); err != nil {
			return err
		}
		cfg = loaded
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
