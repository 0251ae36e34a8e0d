package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvbarbosa/stockpos/internal/model"
	"github.com/mvbarbosa/stockpos/internal/store"
)

func openTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "test.db"), 0)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s.DB()
}

func newItem(name string, quantity int) *model.Item {
	return &model.Item{
		Name:         name,
		Quantity:     quantity,
		CostPrice:    25.0,
		SellingPrice: 40.0,
		MinimumStock: 5,
		Unit:         "kg",
	}
}

func TestSave_AssignsID(t *testing.T) {
	r := NewSQLiteRepository(openTestDB(t))
	ctx := context.Background()

	it := newItem("Picanha", 10)
	id, err := r.Save(ctx, it)
	require.NoError(t, err)
	assert.Positive(t, id)
	assert.Equal(t, id, it.ID)
}

func TestSave_RoundTripPreservesEveryField(t *testing.T) {
	r := NewSQLiteRepository(openTestDB(t))
	ctx := context.Background()

	it := newItem("Picanha", 10)
	id, err := r.Save(ctx, it)
	require.NoError(t, err)

	got, err := r.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, it, got)
}

func TestSave_ReplacesExistingRecord(t *testing.T) {
	r := NewSQLiteRepository(openTestDB(t))
	ctx := context.Background()

	it := newItem("Picanha", 10)
	id, err := r.Save(ctx, it)
	require.NoError(t, err)

	it.Quantity = 20
	it.SellingPrice = 45.0
	again, err := r.Save(ctx, it)
	require.NoError(t, err)
	assert.Equal(t, id, again)

	got, err := r.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 20, got.Quantity)
	assert.Equal(t, 45.0, got.SellingPrice)
}

func TestFindByID_NotFound(t *testing.T) {
	r := NewSQLiteRepository(openTestDB(t))

	_, err := r.FindByID(context.Background(), 42)
	assert.ErrorIs(t, err, model.ErrItemNotFound)
}

func TestFindAll_OrderedByName(t *testing.T) {
	r := NewSQLiteRepository(openTestDB(t))
	ctx := context.Background()

	for _, name := range []string{"Linguiça", "Asa", "Picanha"} {
		_, err := r.Save(ctx, newItem(name, 10))
		require.NoError(t, err)
	}

	items, err := r.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "Asa", items[0].Name)
	assert.Equal(t, "Linguiça", items[1].Name)
	assert.Equal(t, "Picanha", items[2].Name)
}

func TestFindLowStock(t *testing.T) {
	r := NewSQLiteRepository(openTestDB(t))
	ctx := context.Background()

	low := newItem("Asa", 5) // at the threshold counts as low
	ok := newItem("Picanha", 6)
	_, err := r.Save(ctx, low)
	require.NoError(t, err)
	_, err = r.Save(ctx, ok)
	require.NoError(t, err)

	items, err := r.FindLowStock(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Asa", items[0].Name)
}

func TestUpdate_NotFound(t *testing.T) {
	r := NewSQLiteRepository(openTestDB(t))

	it := newItem("Picanha", 10)
	it.ID = 42
	err := r.Update(context.Background(), it)
	assert.ErrorIs(t, err, model.ErrItemNotFound)
}

func TestUpdate_ChangesRecord(t *testing.T) {
	r := NewSQLiteRepository(openTestDB(t))
	ctx := context.Background()

	it := newItem("Picanha", 10)
	_, err := r.Save(ctx, it)
	require.NoError(t, err)

	it.Name = "Picanha Premium"
	it.MinimumStock = 8
	require.NoError(t, r.Update(ctx, it))

	got, err := r.FindByID(ctx, it.ID)
	require.NoError(t, err)
	assert.Equal(t, "Picanha Premium", got.Name)
	assert.Equal(t, 8, got.MinimumStock)
}

func TestDelete_CascadesSales(t *testing.T) {
	db := openTestDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	it := newItem("Picanha", 10)
	id, err := r.Save(ctx, it)
	require.NoError(t, err)

	_, err = db.Exec(`
		INSERT INTO sales (item_id, quantity, total_value, sale_date) VALUES (?, 2, 80.0, ?)
	`, id, time.Now().UTC())
	require.NoError(t, err)

	require.NoError(t, r.Delete(ctx, id))

	var count int
	require.NoError(t, db.Get(&count, `SELECT COUNT(*) FROM sales WHERE item_id = ?`, id))
	assert.Zero(t, count, "dependent sales must be removed with the item")
}

func TestDelete_NotFound(t *testing.T) {
	r := NewSQLiteRepository(openTestDB(t))
	assert.ErrorIs(t, r.Delete(context.Background(), 42), model.ErrItemNotFound)
}

func TestDecrementQuantity(t *testing.T) {
	r := NewSQLiteRepository(openTestDB(t))
	ctx := context.Background()

	it := newItem("Picanha", 10)
	id, err := r.Save(ctx, it)
	require.NoError(t, err)

	require.NoError(t, r.DecrementQuantity(ctx, id, 3))

	quantity, err := r.GetQuantity(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 7, quantity)
}

func TestDecrementQuantity_NotFound(t *testing.T) {
	r := NewSQLiteRepository(openTestDB(t))
	assert.ErrorIs(t, r.DecrementQuantity(context.Background(), 42, 1), model.ErrItemNotFound)
}

func TestGetQuantity_NotFound(t *testing.T) {
	r := NewSQLiteRepository(openTestDB(t))
	_, err := r.GetQuantity(context.Background(), 42)
	assert.ErrorIs(t, err, model.ErrItemNotFound)
}
