package cli

import (
	"context"
	"fmt"
	"time"

	"printhub/internal/infrastructure/database"
	"printhub/internal/usecase"

	"github.com/spf13/cobra"
)

var nextCodeCmd = &cobra.Command{
	Use:   "next-code",
	Short: "Print the next order request code without reserving it",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		defer cancel()

		stores, err := database.Open(ctx, cfg)
		if err != nil {
			return fmt.Errorf("failed to open storage backend: %w", err)
		}
		defer stores.Close()

		code, err := previewCode(ctx, stores)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), code)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(nextCodeCmd)
}

func previewCode(ctx context.Context, stores *database.Stores) (string, error) {
	engine := usecase.NewStatusEngine(stores.Requests, stores.Orders, stores.History)
	uc := usecase.NewOrderRequestUseCase(stores.Requests, stores.Orders, stores.Clients, stores.History, stores.Sequence, engine)
	return uc.GenerateRequestCode(ctx)
}
