package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/mvbarbosa/stockpos/internal/model"
	"github.com/mvbarbosa/stockpos/internal/sale"
)

type SQLiteRepository struct {
	DB *sqlx.DB
}

var _ sale.Repository = (*SQLiteRepository)(nil)

func NewSQLiteRepository(db *sqlx.DB) *SQLiteRepository {
	return &SQLiteRepository{DB: db}
}

func (r *SQLiteRepository) FindAll(ctx context.Context) ([]model.Sale, error) {
	var sales []model.Sale
	err := r.DB.SelectContext(ctx, &sales, `SELECT * FROM sales ORDER BY sale_date DESC`)
	return sales, err
}

func (r *SQLiteRepository) FindByDateRange(ctx context.Context, start, end time.Time) ([]model.Sale, error) {
	var sales []model.Sale
	err := r.DB.SelectContext(ctx, &sales, `
		SELECT * FROM sales WHERE sale_date BETWEEN ? AND ? ORDER BY sale_date DESC
	`, start.UTC(), end.UTC())
	return sales, err
}

func (r *SQLiteRepository) FindByItem(ctx context.Context, itemID int64) ([]model.Sale, error) {
	var sales []model.Sale
	err := r.DB.SelectContext(ctx, &sales, `
		SELECT * FROM sales WHERE item_id = ? ORDER BY sale_date DESC
	`, itemID)
	return sales, err
}

func (r *SQLiteRepository) SumTotalInRange(ctx context.Context, start, end time.Time) (float64, error) {
	var total sql.NullFloat64
	err := r.DB.GetContext(ctx, &total, `
		SELECT SUM(total_value) FROM sales WHERE sale_date BETWEEN ? AND ?
	`, start.UTC(), end.UTC())
	if err != nil {
		return 0, err
	}
	return total.Float64, nil
}

func (r *SQLiteRepository) CountInRange(ctx context.Context, start, end time.Time) (int, error) {
	var count int
	err := r.DB.GetContext(ctx, &count, `
		SELECT COUNT(*) FROM sales WHERE sale_date BETWEEN ? AND ?
	`, start.UTC(), end.UTC())
	return count, err
}

func (r *SQLiteRepository) SumQuantityByItem(ctx context.Context, itemID int64) (int, error) {
	var quantity sql.NullInt64
	err := r.DB.GetContext(ctx, &quantity, `
		SELECT SUM(quantity) FROM sales WHERE item_id = ?
	`, itemID)
	if err != nil {
		return 0, err
	}
	return int(quantity.Int64), nil
}

func (r *SQLiteRepository) Save(ctx context.Context, s *model.Sale) (int64, error) {
	s.SaleDate = s.SaleDate.UTC()

	if s.ID == 0 {
		res, err := r.DB.NamedExecContext(ctx, `
			INSERT INTO sales (item_id, quantity, total_value, sale_date)
			VALUES (:item_id, :quantity, :total_value, :sale_date)
		`, s)
		if err != nil {
			return 0, fmt.Errorf("failed to insert sale: %w", err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return 0, err
		}
		s.ID = id
		return id, nil
	}

	_, err := r.DB.NamedExecContext(ctx, `
		INSERT INTO sales (id, item_id, quantity, total_value, sale_date)
		VALUES (:id, :item_id, :quantity, :total_value, :sale_date)
		ON CONFLICT (id) DO UPDATE SET
			item_id = excluded.item_id,
			quantity = excluded.quantity,
			total_value = excluded.total_value,
			sale_date = excluded.sale_date
	`, s)
	if err != nil {
		return 0, fmt.Errorf("failed to upsert sale: %w", err)
	}
	return s.ID, nil
}

func (r *SQLiteRepository) Update(ctx context.Context, s *model.Sale) error {
	s.SaleDate = s.SaleDate.UTC()

	res, err := r.DB.NamedExecContext(ctx, `
		UPDATE sales SET
			item_id = :item_id,
			quantity = :quantity,
			total_value = :total_value,
			sale_date = :sale_date
		WHERE id = :id
	`, s)
	if err != nil {
		return fmt.Errorf("failed to update sale: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return model.ErrSaleNotFound
	}
	return nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM sales WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete sale: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return model.ErrSaleNotFound
	}
	return nil
}

func (r *SQLiteRepository) CreateWithStockDecrement(ctx context.Context, s *model.Sale) (int64, error) {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// The transaction is opened IMMEDIATE (connection option), so the stock
	// read below cannot interleave with another writer's decrement.
	var current int
	err = tx.GetContext(ctx, &current, `SELECT quantity FROM items WHERE id = ?`, s.ItemID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, model.ErrItemNotFound
		}
		return 0, fmt.Errorf("failed to read stock: %w", err)
	}

	if current < s.Quantity {
		return 0, model.ErrInsufficientStock
	}

	s.SaleDate = s.SaleDate.UTC()
	res, err := tx.NamedExecContext(ctx, `
		INSERT INTO sales (item_id, quantity, total_value, sale_date)
		VALUES (:item_id, :quantity, :total_value, :sale_date)
	`, s)
	if err != nil {
		return 0, fmt.Errorf("failed to insert sale: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	upd, err := tx.ExecContext(ctx, `UPDATE items SET quantity = quantity - ? WHERE id = ?`, s.Quantity, s.ItemID)
	if err != nil {
		return 0, fmt.Errorf("failed to decrement stock: %w", err)
	}
	affected, err := upd.RowsAffected()
	if err != nil {
		return 0, err
	}
	if affected != 1 {
		return 0, fmt.Errorf("stock decrement affected %d rows", affected)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit sale: %w", err)
	}

	s.ID = id
	return id, nil
}
