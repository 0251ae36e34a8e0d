// Package ledger defines the coordinating component through which every state
// change to items and sales must pass. It is the only component allowed to
// couple stock mutation to sale creation.
package ledger

import (
	"context"
	"time"

	"github.com/mvbarbosa/stockpos/internal/ledger/dto"
	"github.com/mvbarbosa/stockpos/internal/model"
)

type UseCase interface {
	// Item CRUD with validation
	AddItem(ctx context.Context, input *dto.AddItemInput) (int64, error)
	UpdateItem(ctx context.Context, item *model.Item) error
	DeleteItem(ctx context.Context, id int64) error
	GetItemByID(ctx context.Context, id int64) (*model.Item, error)
	ListItems(ctx context.Context) ([]model.Item, error)
	ListLowStock(ctx context.Context) ([]model.Item, error)

	// Sale registration and read-only pass-throughs
	RegisterSale(ctx context.Context, input *dto.RegisterSaleInput) (int64, error)
	ListSales(ctx context.Context) ([]model.Sale, error)
	ListSalesByItem(ctx context.Context, itemID int64) ([]model.Sale, error)

	// Administrative correction path, not tied to stock
	UpdateSale(ctx context.Context, sale *model.Sale) error
	DeleteSale(ctx context.Context, id int64) error

	// Reporting
	GetSalesStats(ctx context.Context, start, end time.Time) (*model.SalesStats, error)
}
