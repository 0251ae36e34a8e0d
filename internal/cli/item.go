package cli

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mvbarbosa/stockpos/internal/ledger/dto"
	"github.com/mvbarbosa/stockpos/internal/model"
)

// NewItemCommand creates the item management command group.
func NewItemCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "item",
		Short: "Manage sellable items",
	}

	cmd.AddCommand(newItemAddCommand(app))
	cmd.AddCommand(newItemListCommand(app))
	cmd.AddCommand(newItemLowStockCommand(app))
	cmd.AddCommand(newItemRemoveCommand(app))

	return cmd
}

func newItemAddCommand(app *App) *cobra.Command {
	input := &dto.AddItemInput{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new item to the inventory",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := app.Ledger.AddItem(cmd.Context(), input)
			if err != nil {
				return renderError(cmd, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "item %d added\n", id)
			return nil
		},
	}

	cmd.Flags().StringVar(&input.Name, "name", "", "item name")
	cmd.Flags().IntVar(&input.Quantity, "quantity", 0, "quantity on hand")
	cmd.Flags().Float64Var(&input.CostPrice, "cost", 0, "cost price")
	cmd.Flags().Float64Var(&input.SellingPrice, "price", 0, "selling price")
	cmd.Flags().IntVar(&input.MinimumStock, "min-stock", 0, "minimum stock threshold")
	cmd.Flags().StringVar(&input.Unit, "unit", "", `unit label, e.g. "kg" or "unit"`)
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("price")

	return cmd
}

func newItemListCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all items, ordered by name",
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := app.Ledger.ListItems(cmd.Context())
			if err != nil {
				return renderError(cmd, err)
			}
			printItems(cmd, items)
			return nil
		},
	}
}

func newItemLowStockCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "low-stock",
		Short: "List items at or below their minimum stock threshold",
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := app.Ledger.ListLowStock(cmd.Context())
			if err != nil {
				return renderError(cmd, err)
			}
			if len(items) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no items below minimum stock")
				return nil
			}
			printItems(cmd, items)
			return nil
		},
	}
}

func newItemRemoveCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <item-id>",
		Short: "Delete an item and all of its sales",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid item id %q", args[0])
			}
			if err := app.Ledger.DeleteItem(cmd.Context(), id); err != nil {
				return renderError(cmd, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "item %d deleted\n", id)
			return nil
		},
	}
}

func printItems(cmd *cobra.Command, items []model.Item) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tQTY\tUNIT\tCOST\tPRICE\tMIN")
	for _, it := range items {
		fmt.Fprintf(w, "%d\t%s\t%d\t%s\t%.2f\t%.2f\t%d\n",
			it.ID, it.Name, it.Quantity, it.Unit, it.CostPrice, it.SellingPrice, it.MinimumStock)
	}
	w.Flush()
}
