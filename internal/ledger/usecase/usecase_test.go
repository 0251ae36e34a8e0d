package usecase

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	itemRepoPkg "github.com/mvbarbosa/stockpos/internal/item/repository"
	"github.com/mvbarbosa/stockpos/internal/ledger"
	"github.com/mvbarbosa/stockpos/internal/ledger/dto"
	"github.com/mvbarbosa/stockpos/internal/model"
	"github.com/mvbarbosa/stockpos/internal/sale"
	saleRepoPkg "github.com/mvbarbosa/stockpos/internal/sale/repository"
	"github.com/mvbarbosa/stockpos/internal/stats"
	"github.com/mvbarbosa/stockpos/internal/store"
	"github.com/mvbarbosa/stockpos/internal/validate"
)

func newLedger(t *testing.T) ledger.UseCase {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "test.db"), 0)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	itemRepo := itemRepoPkg.NewSQLiteRepository(s.DB())
	saleRepo := saleRepoPkg.NewSQLiteRepository(s.DB())
	return NewLedgerUseCase(itemRepo, saleRepo, stats.NewAggregator(saleRepo), zap.NewNop())
}

func validInput() *dto.AddItemInput {
	return &dto.AddItemInput{
		Name:         "Picanha",
		Quantity:     10,
		CostPrice:    25.0,
		SellingPrice: 40.0,
		MinimumStock: 5,
		Unit:         "kg",
	}
}

func TestAddItem_ThenGetReturnsEqualRecord(t *testing.T) {
	uc := newLedger(t)
	ctx := context.Background()

	input := validInput()
	id, err := uc.AddItem(ctx, input)
	require.NoError(t, err)
	require.Positive(t, id)

	got, err := uc.GetItemByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, &model.Item{
		ID:           id,
		Name:         input.Name,
		Quantity:     input.Quantity,
		CostPrice:    input.CostPrice,
		SellingPrice: input.SellingPrice,
		MinimumStock: input.MinimumStock,
		Unit:         input.Unit,
	}, got)
}

func TestAddItem_SellingPriceNotAboveCostIsRejected(t *testing.T) {
	uc := newLedger(t)
	ctx := context.Background()

	input := validInput()
	input.SellingPrice = input.CostPrice

	_, err := uc.AddItem(ctx, input)
	var verr *validate.Error
	require.ErrorAs(t, err, &verr)
	assert.True(t, verr.Has(validate.CodeSellingPriceTooLow))

	items, err := uc.ListItems(ctx)
	require.NoError(t, err)
	assert.Empty(t, items, "no insert may occur on validation failure")
}

func TestAddItem_ReportsEveryViolation(t *testing.T) {
	uc := newLedger(t)

	_, err := uc.AddItem(context.Background(), &dto.AddItemInput{})
	var verr *validate.Error
	require.ErrorAs(t, err, &verr)
	assert.True(t, verr.Has(validate.CodeEmptyName))
	assert.True(t, verr.Has(validate.CodeInvalidCostPrice))
	assert.True(t, verr.Has(validate.CodeEmptyUnit))
}

func TestUpdateItem_NotFound(t *testing.T) {
	uc := newLedger(t)

	it := &model.Item{ID: 42, Name: "Picanha", Quantity: 1, CostPrice: 25.0, SellingPrice: 40.0, Unit: "kg"}
	err := uc.UpdateItem(context.Background(), it)
	assert.ErrorIs(t, err, model.ErrItemNotFound)
}

func TestUpdateItem_RunsFullValidation(t *testing.T) {
	uc := newLedger(t)
	ctx := context.Background()

	id, err := uc.AddItem(ctx, validInput())
	require.NoError(t, err)

	it, err := uc.GetItemByID(ctx, id)
	require.NoError(t, err)
	it.Unit = " "

	var verr *validate.Error
	require.ErrorAs(t, uc.UpdateItem(ctx, it), &verr)
	assert.True(t, verr.Has(validate.CodeEmptyUnit))
}

func TestGetItemByID_NotFoundIsDomainError(t *testing.T) {
	uc := newLedger(t)

	_, err := uc.GetItemByID(context.Background(), 42)
	assert.ErrorIs(t, err, model.ErrItemNotFound)
}

func TestRegisterSale_DecrementsStockAndRecordsSale(t *testing.T) {
	uc := newLedger(t)
	ctx := context.Background()

	id, err := uc.AddItem(ctx, validInput())
	require.NoError(t, err)

	saleID, err := uc.RegisterSale(ctx, &dto.RegisterSaleInput{ItemID: id, Quantity: 3, TotalValue: 120.0})
	require.NoError(t, err)
	assert.Positive(t, saleID)

	it, err := uc.GetItemByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 7, it.Quantity)

	sales, err := uc.ListSales(ctx)
	require.NoError(t, err)
	require.Len(t, sales, 1)
	assert.Equal(t, saleID, sales[0].ID)
	assert.Equal(t, 120.0, sales[0].TotalValue)
}

func TestRegisterSale_InsufficientStock(t *testing.T) {
	uc := newLedger(t)
	ctx := context.Background()

	id, err := uc.AddItem(ctx, validInput())
	require.NoError(t, err)

	_, err = uc.RegisterSale(ctx, &dto.RegisterSaleInput{ItemID: id, Quantity: 11, TotalValue: 440.0})
	assert.ErrorIs(t, err, model.ErrInsufficientStock)

	it, err := uc.GetItemByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 10, it.Quantity, "stock must be unchanged")

	sales, err := uc.ListSales(ctx)
	require.NoError(t, err)
	assert.Empty(t, sales, "no sale row may exist")
}

func TestRegisterSale_ItemNotFound(t *testing.T) {
	uc := newLedger(t)

	_, err := uc.RegisterSale(context.Background(), &dto.RegisterSaleInput{ItemID: 42, Quantity: 1, TotalValue: 40.0})
	assert.ErrorIs(t, err, model.ErrItemNotFound)
}

func TestRegisterSale_RejectsTotalValueMismatch(t *testing.T) {
	uc := newLedger(t)
	ctx := context.Background()

	id, err := uc.AddItem(ctx, validInput())
	require.NoError(t, err)

	// 3 × 40.00 charged as 100.00
	_, err = uc.RegisterSale(ctx, &dto.RegisterSaleInput{ItemID: id, Quantity: 3, TotalValue: 100.0})
	var verr *validate.Error
	require.ErrorAs(t, err, &verr)
	assert.True(t, verr.Has(validate.CodeCalculationMismatch))

	sales, err := uc.ListSales(ctx)
	require.NoError(t, err)
	assert.Empty(t, sales)
}

func TestRegisterSale_RejectsNonPositiveQuantity(t *testing.T) {
	uc := newLedger(t)
	ctx := context.Background()

	id, err := uc.AddItem(ctx, validInput())
	require.NoError(t, err)

	_, err = uc.RegisterSale(ctx, &dto.RegisterSaleInput{ItemID: id, Quantity: 0, TotalValue: 40.0})
	var verr *validate.Error
	require.ErrorAs(t, err, &verr)
	assert.True(t, verr.Has(validate.CodeInvalidQuantity))
}

func TestDeleteItem_CascadesSales(t *testing.T) {
	uc := newLedger(t)
	ctx := context.Background()

	id, err := uc.AddItem(ctx, validInput())
	require.NoError(t, err)

	_, err = uc.RegisterSale(ctx, &dto.RegisterSaleInput{ItemID: id, Quantity: 2, TotalValue: 80.0})
	require.NoError(t, err)

	require.NoError(t, uc.DeleteItem(ctx, id))

	sales, err := uc.ListSales(ctx)
	require.NoError(t, err)
	assert.Empty(t, sales)
}

func TestUpdateAndDeleteSale_AdministrativePathLeavesStockAlone(t *testing.T) {
	uc := newLedger(t)
	ctx := context.Background()

	id, err := uc.AddItem(ctx, validInput())
	require.NoError(t, err)
	saleID, err := uc.RegisterSale(ctx, &dto.RegisterSaleInput{ItemID: id, Quantity: 2, TotalValue: 80.0})
	require.NoError(t, err)

	sales, err := uc.ListSales(ctx)
	require.NoError(t, err)
	corrected := sales[0]
	corrected.TotalValue = 79.0
	require.NoError(t, uc.UpdateSale(ctx, &corrected))

	require.NoError(t, uc.DeleteSale(ctx, saleID))
	assert.ErrorIs(t, uc.DeleteSale(ctx, saleID), model.ErrSaleNotFound)

	it, err := uc.GetItemByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 8, it.Quantity, "corrections never touch stock")
}

func TestGetSalesStats_RoundTrip(t *testing.T) {
	uc := newLedger(t)
	ctx := context.Background()

	id, err := uc.AddItem(ctx, &dto.AddItemInput{
		Name: "Espetinho", Quantity: 100, CostPrice: 2.0, SellingPrice: 5.0, Unit: "un",
	})
	require.NoError(t, err)

	_, err = uc.RegisterSale(ctx, &dto.RegisterSaleInput{ItemID: id, Quantity: 2, TotalValue: 10.0})
	require.NoError(t, err)
	_, err = uc.RegisterSale(ctx, &dto.RegisterSaleInput{ItemID: id, Quantity: 3, TotalValue: 15.0})
	require.NoError(t, err)

	now := time.Now().UTC()
	start := now.Truncate(24 * time.Hour)
	end := start.Add(24*time.Hour - time.Second)

	got, err := uc.GetSalesStats(ctx, start, end)
	require.NoError(t, err)
	assert.Equal(t, &model.SalesStats{TotalValue: 25.0, Count: 2}, got)

	disjoint, err := uc.GetSalesStats(ctx, start.Add(-72*time.Hour), start.Add(-48*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, &model.SalesStats{TotalValue: 0, Count: 0}, disjoint)
}

// failingSaleRepo simulates an infrastructure failure in the atomic unit.
type failingSaleRepo struct {
	sale.Repository
}

func (f *failingSaleRepo) CreateWithStockDecrement(ctx context.Context, s *model.Sale) (int64, error) {
	return 0, errors.New("disk I/O error")
}

func TestRegisterSale_PropagatesInfrastructureFailure(t *testing.T) {
	s, err := store.Open(filepath.Join(t.TempDir(), "test.db"), 0)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	itemRepo := itemRepoPkg.NewSQLiteRepository(s.DB())
	saleRepo := &failingSaleRepo{Repository: saleRepoPkg.NewSQLiteRepository(s.DB())}
	uc := NewLedgerUseCase(itemRepo, saleRepo, stats.NewAggregator(saleRepo), zap.NewNop())

	ctx := context.Background()
	id, err := uc.AddItem(ctx, validInput())
	require.NoError(t, err)

	_, err = uc.RegisterSale(ctx, &dto.RegisterSaleInput{ItemID: id, Quantity: 1, TotalValue: 40.0})
	require.Error(t, err)
	assert.NotErrorIs(t, err, model.ErrInsufficientStock)

	it, err := uc.GetItemByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 10, it.Quantity)
}
