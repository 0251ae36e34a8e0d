package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mvbarbosa/stockpos/internal/model"
)

// NewSalesCommand creates the sales listing command.
func NewSalesCommand(app *App) *cobra.Command {
	var itemID int64

	cmd := &cobra.Command{
		Use:   "sales",
		Short: "List registered sales, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				sales []model.Sale
				err   error
			)
			if itemID > 0 {
				sales, err = app.Ledger.ListSalesByItem(cmd.Context(), itemID)
			} else {
				sales, err = app.Ledger.ListSales(cmd.Context())
			}
			if err != nil {
				return renderError(cmd, err)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tITEM\tQTY\tTOTAL\tDATE")
			for _, s := range sales {
				fmt.Fprintf(w, "%d\t%d\t%d\t%.2f\t%s\n",
					s.ID, s.ItemID, s.Quantity, s.TotalValue, s.SaleDate.Format("2006-01-02 15:04"))
			}
			w.Flush()
			return nil
		},
	}

	cmd.Flags().Int64Var(&itemID, "item", 0, "only sales of the given item id")

	return cmd
}
