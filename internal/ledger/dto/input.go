package dto

type AddItemInput struct {
	Name         string
	Quantity     int
	CostPrice    float64
	SellingPrice float64
	MinimumStock int
	Unit         string
}

type RegisterSaleInput struct {
	ItemID     int64
	Quantity   int
	TotalValue float64
}
