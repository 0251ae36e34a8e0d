// Package validate holds the business rules checked before any state change.
// Rules are pure functions over input values. They never short-circuit: every
// violated rule is reported, so callers can surface all problems at once.
package validate

import (
	"math"
	"strings"
)

// Code identifies one violated rule.
type Code string

const (
	CodeEmptyName           Code = "empty_name"
	CodeInvalidQuantity     Code = "invalid_quantity"
	CodeInvalidCostPrice    Code = "invalid_cost_price"
	CodeInvalidSellingPrice Code = "invalid_selling_price"
	CodeSellingPriceTooLow  Code = "selling_price_too_low"
	CodeInvalidMinimumStock Code = "invalid_minimum_stock"
	CodeEmptyUnit           Code = "empty_unit"
	CodeInvalidItem         Code = "invalid_item"
	CodeInsufficientStock   Code = "insufficient_stock"
	CodeInvalidUnitPrice    Code = "invalid_unit_price"
	CodeInvalidTotalValue   Code = "invalid_total_value"
	CodeCalculationMismatch Code = "calculation_mismatch"
)

// CalculationTolerance is the allowed absolute difference between the charged
// total and quantity × unit price.
const CalculationTolerance = 0.01

// Message returns the human-readable description of the violation.
func (c Code) Message() string {
	switch c {
	case CodeEmptyName:
		return "name is required"
	case CodeInvalidQuantity:
		return "invalid quantity"
	case CodeInvalidCostPrice:
		return "invalid cost price"
	case CodeInvalidSellingPrice:
		return "invalid selling price"
	case CodeSellingPriceTooLow:
		return "selling price must exceed cost price"
	case CodeInvalidMinimumStock:
		return "invalid minimum stock"
	case CodeEmptyUnit:
		return "unit is required"
	case CodeInvalidItem:
		return "select a valid item"
	case CodeInsufficientStock:
		return "quantity exceeds available stock"
	case CodeInvalidUnitPrice:
		return "invalid unit price"
	case CodeInvalidTotalValue:
		return "invalid total value"
	case CodeCalculationMismatch:
		return "total value does not match quantity times unit price"
	default:
		return string(c)
	}
}

// Item checks the rules for creating or replacing an item and returns every
// violation in declaration order.
func Item(name string, quantity int, costPrice, sellingPrice float64, minimumStock int, unit string) []Code {
	var codes []Code

	if strings.TrimSpace(name) == "" {
		codes = append(codes, CodeEmptyName)
	}
	if quantity < 0 {
		codes = append(codes, CodeInvalidQuantity)
	}
	if costPrice <= 0 {
		codes = append(codes, CodeInvalidCostPrice)
	}
	if sellingPrice <= 0 {
		codes = append(codes, CodeInvalidSellingPrice)
	}
	if sellingPrice <= costPrice {
		codes = append(codes, CodeSellingPriceTooLow)
	}
	if minimumStock < 0 {
		codes = append(codes, CodeInvalidMinimumStock)
	}
	if strings.TrimSpace(unit) == "" {
		codes = append(codes, CodeEmptyUnit)
	}

	return codes
}

// Sale checks the rules for registering a sale against the stock available at
// that instant. A non-positive quantity is reported as invalid rather than as
// insufficient stock.
func Sale(itemID int64, quantity, availableQuantity int, unitPrice, totalValue float64) []Code {
	var codes []Code

	if itemID <= 0 {
		codes = append(codes, CodeInvalidItem)
	}
	if quantity <= 0 {
		codes = append(codes, CodeInvalidQuantity)
	} else if quantity > availableQuantity {
		codes = append(codes, CodeInsufficientStock)
	}
	if unitPrice <= 0 {
		codes = append(codes, CodeInvalidUnitPrice)
	}
	if totalValue <= 0 {
		codes = append(codes, CodeInvalidTotalValue)
	}
	if math.Abs(totalValue-float64(quantity)*unitPrice) > CalculationTolerance {
		codes = append(codes, CodeCalculationMismatch)
	}

	return codes
}
