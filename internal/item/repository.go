package item

import (
	"context"

	"github.com/mvbarbosa/stockpos/internal/model"
)

type Repository interface {
	FindAll(ctx context.Context) ([]model.Item, error)
	FindLowStock(ctx context.Context) ([]model.Item, error)
	FindByID(ctx context.Context, id int64) (*model.Item, error)

	// Save inserts the item when its id is zero, replacing an existing record
	// otherwise, and returns the assigned id.
	Save(ctx context.Context, item *model.Item) (int64, error)
	Update(ctx context.Context, item *model.Item) error

	// Delete removes the item; the store cascades deletion of its sales.
	Delete(ctx context.Context, id int64) error

	// Stock access for the sale path
	DecrementQuantity(ctx context.Context, id int64, amount int) error
	GetQuantity(ctx context.Context, id int64) (int, error)
}
