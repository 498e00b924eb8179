package cli

import (
	"context"
	"fmt"
	"time"

	"printhub/internal/infrastructure/database"

	"github.com/spf13/cobra"
)

var checkTimeout time.Duration

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check the storage backend and report its capabilities",
	Long: `Connect to the configured storage backend, ping it and report whether
the client_orders mirror table is in use. Exits non-zero when the backend
cannot be reached.`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().DurationVar(&checkTimeout, "timeout", 10*time.Second, "Time allowed for connecting and probing")
}

func runCheck(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), checkTimeout)
	defer cancel()

	stores, err := database.Open(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to open storage backend: %w", err)
	}
	defer stores.Close()

	if err := stores.Ping(ctx); err != nil {
		return fmt.Errorf("storage backend ping failed: %w", err)
	}

	out := cmd.OutOrStdout()
	caps := stores.Capabilities
	fmt.Fprintf(out, "backend:        %s\n", caps.Backend)
	fmt.Fprintf(out, "mirror table:   %s\n", caps.MirrorTable)
	fmt.Fprintf(out, "mirror enabled: %t\n", caps.MirrorEnabled)
	return nil
}
