package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mvbarbosa/stockpos/internal/item"
	"github.com/mvbarbosa/stockpos/internal/ledger"
	"github.com/mvbarbosa/stockpos/internal/ledger/dto"
	"github.com/mvbarbosa/stockpos/internal/model"
	"github.com/mvbarbosa/stockpos/internal/sale"
	"github.com/mvbarbosa/stockpos/internal/stats"
	"github.com/mvbarbosa/stockpos/internal/validate"
)

type ledgerUseCase struct {
	items  item.Repository
	sales  sale.Repository
	stats  *stats.Aggregator
	logger *zap.Logger
}

func NewLedgerUseCase(items item.Repository, sales sale.Repository, aggregator *stats.Aggregator, log *zap.Logger) ledger.UseCase {
	return &ledgerUseCase{
		items:  items,
		sales:  sales,
		stats:  aggregator,
		logger: log,
	}
}

func (uc *ledgerUseCase) AddItem(ctx context.Context, input *dto.AddItemInput) (int64, error) {
	if codes := validate.Item(input.Name, input.Quantity, input.CostPrice, input.SellingPrice, input.MinimumStock, input.Unit); len(codes) > 0 {
		return 0, &validate.Error{Codes: codes}
	}

	it := &model.Item{
		Name:         input.Name,
		Quantity:     input.Quantity,
		CostPrice:    input.CostPrice,
		SellingPrice: input.SellingPrice,
		MinimumStock: input.MinimumStock,
		Unit:         input.Unit,
	}

	opID := uuid.NewString()
	id, err := uc.items.Save(ctx, it)
	if err != nil {
		uc.logger.Error("failed to add item", zap.String("op_id", opID), zap.Error(err))
		return 0, err
	}

	uc.logger.Info("item added",
		zap.String("op_id", opID),
		zap.Int64("item_id", id),
		zap.String("name", it.Name),
		zap.Int("quantity", it.Quantity))
	return id, nil
}

func (uc *ledgerUseCase) UpdateItem(ctx context.Context, it *model.Item) error {
	if codes := validate.Item(it.Name, it.Quantity, it.CostPrice, it.SellingPrice, it.MinimumStock, it.Unit); len(codes) > 0 {
		return &validate.Error{Codes: codes}
	}

	opID := uuid.NewString()
	if err := uc.items.Update(ctx, it); err != nil {
		uc.logger.Error("failed to update item", zap.String("op_id", opID), zap.Int64("item_id", it.ID), zap.Error(err))
		return err
	}

	uc.logger.Info("item updated", zap.String("op_id", opID), zap.Int64("item_id", it.ID))
	return nil
}

func (uc *ledgerUseCase) DeleteItem(ctx context.Context, id int64) error {
	opID := uuid.NewString()
	if err := uc.items.Delete(ctx, id); err != nil {
		uc.logger.Error("failed to delete item", zap.String("op_id", opID), zap.Int64("item_id", id), zap.Error(err))
		return err
	}

	// Dependent sales are removed by the store's cascade.
	uc.logger.Info("item deleted", zap.String("op_id", opID), zap.Int64("item_id", id))
	return nil
}

func (uc *ledgerUseCase) GetItemByID(ctx context.Context, id int64) (*model.Item, error) {
	return uc.items.FindByID(ctx, id)
}

func (uc *ledgerUseCase) ListItems(ctx context.Context) ([]model.Item, error) {
	return uc.items.FindAll(ctx)
}

func (uc *ledgerUseCase) ListLowStock(ctx context.Context) ([]model.Item, error) {
	return uc.items.FindLowStock(ctx)
}

func (uc *ledgerUseCase) RegisterSale(ctx context.Context, input *dto.RegisterSaleInput) (int64, error) {
	opID := uuid.NewString()

	it, err := uc.items.FindByID(ctx, input.ItemID)
	if err != nil {
		return 0, err
	}

	// The item's selling price is the unit price the charged total is checked
	// against. Stock sufficiency is re-checked inside the transaction; the
	// result here only classifies the rejection.
	codes := validate.Sale(input.ItemID, input.Quantity, it.Quantity, it.SellingPrice, input.TotalValue)
	if len(codes) == 1 && codes[0] == validate.CodeInsufficientStock {
		return 0, model.ErrInsufficientStock
	}
	if len(codes) > 0 {
		return 0, &validate.Error{Codes: codes}
	}

	s := &model.Sale{
		ItemID:     input.ItemID,
		Quantity:   input.Quantity,
		TotalValue: input.TotalValue,
		SaleDate:   time.Now().UTC(),
	}

	id, err := uc.sales.CreateWithStockDecrement(ctx, s)
	if err != nil {
		uc.logger.Error("failed to register sale",
			zap.String("op_id", opID),
			zap.Int64("item_id", input.ItemID),
			zap.Int("quantity", input.Quantity),
			zap.Error(err))
		return 0, err
	}

	uc.logger.Info("sale registered",
		zap.String("op_id", opID),
		zap.Int64("sale_id", id),
		zap.Int64("item_id", input.ItemID),
		zap.Int("quantity", input.Quantity),
		zap.Float64("total_value", input.TotalValue))
	return id, nil
}

func (uc *ledgerUseCase) ListSales(ctx context.Context) ([]model.Sale, error) {
	return uc.sales.FindAll(ctx)
}

func (uc *ledgerUseCase) ListSalesByItem(ctx context.Context, itemID int64) ([]model.Sale, error) {
	return uc.sales.FindByItem(ctx, itemID)
}

func (uc *ledgerUseCase) UpdateSale(ctx context.Context, s *model.Sale) error {
	opID := uuid.NewString()
	if err := uc.sales.Update(ctx, s); err != nil {
		uc.logger.Error("failed to update sale", zap.String("op_id", opID), zap.Int64("sale_id", s.ID), zap.Error(err))
		return err
	}
	uc.logger.Info("sale updated", zap.String("op_id", opID), zap.Int64("sale_id", s.ID))
	return nil
}

func (uc *ledgerUseCase) DeleteSale(ctx context.Context, id int64) error {
	opID := uuid.NewString()
	if err := uc.sales.Delete(ctx, id); err != nil {
		uc.logger.Error("failed to delete sale", zap.String("op_id", opID), zap.Int64("sale_id", id), zap.Error(err))
		return err
	}
	uc.logger.Info("sale deleted", zap.String("op_id", opID), zap.Int64("sale_id", id))
	return nil
}

func (uc *ledgerUseCase) GetSalesStats(ctx context.Context, start, end time.Time) (*model.SalesStats, error) {
	return uc.stats.ComputeStats(ctx, start, end)
}
