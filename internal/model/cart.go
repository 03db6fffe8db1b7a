package model

import "github.com/shopspring/decimal"

// LineItem is a product snapshot with the quantity being sold.
type LineItem struct {
	Product
	Qty int `json:"qty"`
}

// Amount returns price * qty for the line.
func (i LineItem) Amount() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Qty)))
}
