package sale

import (
	"context"
	"time"

	"github.com/mvbarbosa/stockpos/internal/model"
)

type Repository interface {
	FindAll(ctx context.Context) ([]model.Sale, error)
	FindByDateRange(ctx context.Context, start, end time.Time) ([]model.Sale, error)
	FindByItem(ctx context.Context, itemID int64) ([]model.Sale, error)

	// Range rollups; inclusive on both ends, empty ranges yield zero.
	SumTotalInRange(ctx context.Context, start, end time.Time) (float64, error)
	CountInRange(ctx context.Context, start, end time.Time) (int, error)
	SumQuantityByItem(ctx context.Context, itemID int64) (int, error)

	// Save inserts the sale when its id is zero, replacing an existing record
	// otherwise, and returns the assigned id.
	Save(ctx context.Context, sale *model.Sale) (int64, error)
	Update(ctx context.Context, sale *model.Sale) error
	Delete(ctx context.Context, id int64) error

	// CreateWithStockDecrement inserts the sale and decrements the item's
	// stock as one atomic unit: the item's quantity is read and checked under
	// the same transaction, and any failure rolls the whole unit back.
	// Returns model.ErrItemNotFound or model.ErrInsufficientStock without
	// touching state.
	CreateWithStockDecrement(ctx context.Context, sale *model.Sale) (int64, error)
}
