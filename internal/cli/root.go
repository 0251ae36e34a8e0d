// Package cli is the thin command-line surface over the ledger. Commands hold
// no business logic and never touch the store directly.
package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mvbarbosa/stockpos/internal/ledger"
	"github.com/mvbarbosa/stockpos/internal/stats"
	"github.com/mvbarbosa/stockpos/internal/validate"
)

// App carries the wired dependencies into the command tree.
type App struct {
	Ledger ledger.UseCase
	Stats  *stats.Aggregator
	Logger *zap.Logger
}

// NewRootCommand creates the stockpos root command.
func NewRootCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "stockpos",
		Short:         "Retail inventory and point-of-sale tracker",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(NewItemCommand(app))
	cmd.AddCommand(NewSellCommand(app))
	cmd.AddCommand(NewSalesCommand(app))
	cmd.AddCommand(NewStatsCommand(app))

	return cmd
}

// renderError expands validation failures into one line per violated rule so
// the operator sees every problem at once.
func renderError(cmd *cobra.Command, err error) error {
	var verr *validate.Error
	if errors.As(err, &verr) {
		fmt.Fprintln(cmd.ErrOrStderr(), "invalid input:")
		for _, code := range verr.Codes {
			fmt.Fprintf(cmd.ErrOrStderr(), "  - %s\n", code.Message())
		}
		return err
	}
	fmt.Fprintln(cmd.ErrOrStderr(), "error:", err)
	return err
}
