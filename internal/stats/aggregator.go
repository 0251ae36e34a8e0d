// Package stats computes read-only rollups over the sale store.
package stats

import (
	"context"
	"time"

	"github.com/mvbarbosa/stockpos/internal/calc"
	"github.com/mvbarbosa/stockpos/internal/model"
	"github.com/mvbarbosa/stockpos/internal/sale"
)

type Aggregator struct {
	sales sale.Repository
}

func NewAggregator(sales sale.Repository) *Aggregator {
	return &Aggregator{sales: sales}
}

// ComputeStats sums and counts the sales whose timestamp lies within the
// inclusive range. An empty range yields zero values, never an error.
func (a *Aggregator) ComputeStats(ctx context.Context, start, end time.Time) (*model.SalesStats, error) {
	total, err := a.sales.SumTotalInRange(ctx, start, end)
	if err != nil {
		return nil, err
	}
	count, err := a.sales.CountInRange(ctx, start, end)
	if err != nil {
		return nil, err
	}
	return &model.SalesStats{TotalValue: total, Count: count}, nil
}

// RangeReport is a window's stats with derived reporting figures.
type RangeReport struct {
	model.SalesStats
	DailyAverage  float64 `json:"daily_average"`
	PreviousTotal float64 `json:"previous_total"`
	GrowthRate    float64 `json:"growth_rate"`
}

// Report computes the window's stats plus the daily average across the window
// and the growth rate against the immediately preceding window of equal
// length.
func (a *Aggregator) Report(ctx context.Context, start, end time.Time) (*RangeReport, error) {
	stats, err := a.ComputeStats(ctx, start, end)
	if err != nil {
		return nil, err
	}

	window := end.Sub(start)
	prevEnd := start.Add(-time.Second)
	prevTotal, err := a.sales.SumTotalInRange(ctx, prevEnd.Add(-window), prevEnd)
	if err != nil {
		return nil, err
	}

	days := int(window.Hours()/24) + 1
	return &RangeReport{
		SalesStats:    *stats,
		DailyAverage:  calc.DailyAverage(stats.TotalValue, days),
		PreviousTotal: calc.RoundCurrency(prevTotal),
		GrowthRate:    calc.GrowthRate(stats.TotalValue, prevTotal),
	}, nil
}

// ItemPerformance summarizes how one item has sold over its lifetime.
type ItemPerformance struct {
	ItemID       int64   `json:"item_id"`
	UnitsSold    int     `json:"units_sold"`
	Revenue      float64 `json:"revenue"`
	ProfitMargin float64 `json:"profit_margin"`
	Markup       float64 `json:"markup"`
}

// ItemPerformance aggregates all sales of the given item.
func (a *Aggregator) ItemPerformance(ctx context.Context, it *model.Item) (*ItemPerformance, error) {
	units, err := a.sales.SumQuantityByItem(ctx, it.ID)
	if err != nil {
		return nil, err
	}

	sales, err := a.sales.FindByItem(ctx, it.ID)
	if err != nil {
		return nil, err
	}
	var revenue float64
	for _, s := range sales {
		revenue += s.TotalValue
	}

	return &ItemPerformance{
		ItemID:       it.ID,
		UnitsSold:    units,
		Revenue:      calc.RoundCurrency(revenue),
		ProfitMargin: calc.ProfitMargin(it.SellingPrice, it.CostPrice),
		Markup:       calc.Markup(it.SellingPrice, it.CostPrice),
	}, nil
}
