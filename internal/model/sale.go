package model

import "time"

// Sale is an immutable record of one completed transaction. Sales are
// dependent records of the referenced item and are removed with it
// (ON DELETE CASCADE).
type Sale struct {
	ID         int64     `db:"id" json:"id"`
	ItemID     int64     `db:"item_id" json:"item_id"`
	Quantity   int       `db:"quantity" json:"quantity"`
	TotalValue float64   `db:"total_value" json:"total_value"`
	SaleDate   time.Time `db:"sale_date" json:"sale_date"`
}

// SalesStats is a derived rollup over a date range. It is never persisted.
type SalesStats struct {
	TotalValue float64 `json:"total_value"`
	Count      int     `json:"count"`
}
