package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mvbarbosa/stockpos/internal/ledger/dto"
)

// NewSellCommand creates the sale registration command.
func NewSellCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "sell <item-id> <quantity> <total-value>",
		Short: "Register a sale and decrement the item's stock",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			itemID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid item id %q", args[0])
			}
			quantity, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid quantity %q", args[1])
			}
			totalValue, err := strconv.ParseFloat(args[2], 64)
			if err != nil {
				return fmt.Errorf("invalid total value %q", args[2])
			}

			id, err := app.Ledger.RegisterSale(cmd.Context(), &dto.RegisterSaleInput{
				ItemID:     itemID,
				Quantity:   quantity,
				TotalValue: totalValue,
			})
			if err != nil {
				return renderError(cmd, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "sale %d registered\n", id)
			return nil
		},
	}
}
