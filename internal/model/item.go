package model

// Item is a sellable stock-keeping unit. The id is assigned by the store on
// first save and immutable afterwards. Quantity is mutated outside a full
// update only as the stock decrement of a registered sale.
type Item struct {
	ID           int64   `db:"id" json:"id"`
	Name         string  `db:"name" json:"name"`
	Quantity     int     `db:"quantity" json:"quantity"`
	CostPrice    float64 `db:"cost_price" json:"cost_price"`
	SellingPrice float64 `db:"selling_price" json:"selling_price"`
	MinimumStock int     `db:"minimum_stock" json:"minimum_stock"`
	Unit         string  `db:"unit" json:"unit"` // e.g. "kg", "unit"
}

// LowStock reports whether the item is at or below its replenishment threshold.
func (i *Item) LowStock() bool {
	return i.Quantity <= i.MinimumStock
}
