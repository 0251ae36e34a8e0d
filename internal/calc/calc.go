// Package calc provides the money and ratio arithmetic used across the core.
// Currency values round half-to-even at 2 decimal places, percentage-style
// figures at 1. Any ratio with a zero denominator yields 0.
package calc

import "github.com/shopspring/decimal"

const (
	currencyScale   = 2
	percentageScale = 1
)

// RoundCurrency rounds a monetary value half-to-even at 2 decimal places.
func RoundCurrency(v float64) float64 {
	return roundToScale(v, currencyScale)
}

// RoundPercentage rounds a percentage half-to-even at 1 decimal place.
func RoundPercentage(v float64) float64 {
	return roundToScale(v, percentageScale)
}

func roundToScale(v float64, scale int32) float64 {
	out, _ := decimal.NewFromFloat(v).RoundBank(scale).Float64()
	return out
}

// Total is the charged value for quantity units at the given unit price.
func Total(quantity int, unitPrice float64) float64 {
	return RoundCurrency(float64(quantity) * unitPrice)
}

// Profit is the absolute gain per unit sold.
func Profit(sellingPrice, costPrice float64) float64 {
	return RoundCurrency(sellingPrice - costPrice)
}

// ProfitMargin is the gain relative to cost, as a percentage.
func ProfitMargin(sellingPrice, costPrice float64) float64 {
	if costPrice <= 0 {
		return 0
	}
	return RoundPercentage((sellingPrice - costPrice) / costPrice * 100)
}

// Markup is the gain relative to the selling price, as a percentage.
func Markup(sellingPrice, costPrice float64) float64 {
	if sellingPrice <= 0 {
		return 0
	}
	return RoundPercentage((sellingPrice - costPrice) / sellingPrice * 100)
}

// DailyAverage spreads a sales total over a number of days.
func DailyAverage(total float64, days int) float64 {
	if days <= 0 {
		return 0
	}
	return RoundCurrency(total / float64(days))
}

// GrowthRate is the relative change from previous to current, as a percentage.
func GrowthRate(current, previous float64) float64 {
	if previous <= 0 {
		return 0
	}
	return RoundPercentage((current - previous) / previous * 100)
}

// StockTurnover is total sales over average inventory value.
func StockTurnover(totalSales, averageInventory float64) float64 {
	if averageInventory <= 0 {
		return 0
	}
	return roundToScale(totalSales/averageInventory, 1)
}
