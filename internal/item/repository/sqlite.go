package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/mvbarbosa/stockpos/internal/item"
	"github.com/mvbarbosa/stockpos/internal/model"
)

type SQLiteRepository struct {
	DB *sqlx.DB
}

var _ item.Repository = (*SQLiteRepository)(nil)

func NewSQLiteRepository(db *sqlx.DB) *SQLiteRepository {
	return &SQLiteRepository{DB: db}
}

func (r *SQLiteRepository) FindAll(ctx context.Context) ([]model.Item, error) {
	var items []model.Item
	err := r.DB.SelectContext(ctx, &items, `SELECT * FROM items ORDER BY name ASC`)
	return items, err
}

func (r *SQLiteRepository) FindLowStock(ctx context.Context) ([]model.Item, error) {
	var items []model.Item
	err := r.DB.SelectContext(ctx, &items, `SELECT * FROM items WHERE quantity <= minimum_stock ORDER BY name ASC`)
	return items, err
}

func (r *SQLiteRepository) FindByID(ctx context.Context, id int64) (*model.Item, error) {
	var it model.Item
	err := r.DB.GetContext(ctx, &it, `SELECT * FROM items WHERE id = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrItemNotFound
		}
		return nil, err
	}
	return &it, nil
}

func (r *SQLiteRepository) Save(ctx context.Context, it *model.Item) (int64, error) {
	if it.ID == 0 {
		res, err := r.DB.NamedExecContext(ctx, `
			INSERT INTO items (name, quantity, cost_price, selling_price, minimum_stock, unit)
			VALUES (:name, :quantity, :cost_price, :selling_price, :minimum_stock, :unit)
		`, it)
		if err != nil {
			return 0, fmt.Errorf("failed to insert item: %w", err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return 0, err
		}
		it.ID = id
		return id, nil
	}

	_, err := r.DB.NamedExecContext(ctx, `
		INSERT INTO items (id, name, quantity, cost_price, selling_price, minimum_stock, unit)
		VALUES (:id, :name, :quantity, :cost_price, :selling_price, :minimum_stock, :unit)
		ON CONFLICT (id) DO UPDATE SET
			name = excluded.name,
			quantity = excluded.quantity,
			cost_price = excluded.cost_price,
			selling_price = excluded.selling_price,
			minimum_stock = excluded.minimum_stock,
			unit = excluded.unit
	`, it)
	if err != nil {
		return 0, fmt.Errorf("failed to upsert item: %w", err)
	}
	return it.ID, nil
}

func (r *SQLiteRepository) Update(ctx context.Context, it *model.Item) error {
	res, err := r.DB.NamedExecContext(ctx, `
		UPDATE items SET
			name = :name,
			quantity = :quantity,
			cost_price = :cost_price,
			selling_price = :selling_price,
			minimum_stock = :minimum_stock,
			unit = :unit
		WHERE id = :id
	`, it)
	if err != nil {
		return fmt.Errorf("failed to update item: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return model.ErrItemNotFound
	}
	return nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM items WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return model.ErrItemNotFound
	}
	return nil
}

func (r *SQLiteRepository) DecrementQuantity(ctx context.Context, id int64, amount int) error {
	res, err := r.DB.ExecContext(ctx, `UPDATE items SET quantity = quantity - ? WHERE id = ?`, amount, id)
	if err != nil {
		return fmt.Errorf("failed to decrement quantity: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return model.ErrItemNotFound
	}
	return nil
}

func (r *SQLiteRepository) GetQuantity(ctx context.Context, id int64) (int, error) {
	var quantity int
	err := r.DB.GetContext(ctx, &quantity, `SELECT quantity FROM items WHERE id = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, model.ErrItemNotFound
		}
		return 0, err
	}
	return quantity, nil
}
