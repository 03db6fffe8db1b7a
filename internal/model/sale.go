package model

import (
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SaleDateLayout is the ISO-8601 layout sale dates are written with.
const SaleDateLayout = "2006-01-02T15:04:05.000Z07:00"

type Sale struct {
	ID uuid.UUID `json:"id"`
	// Date is kept as written so history loaded from storage with an
	// unreadable date can still be detected and pruned.
	Date  string          `json:"date"`
	Items []SaleItem      `json:"items"`
	Total decimal.Decimal `json:"total"`
}

// Clone returns a copy of the sale that shares no items with s.
func (s Sale) Clone() Sale {
	s.Items = slices.Clone(s.Items)
	return s
}

// SaleItem is the frozen copy of a cart line, decoupled from the catalog.
type SaleItem struct {
	Name  string          `json:"name"`
	Sku   string          `json:"sku"`
	Qty   int             `json:"qty"`
	Price decimal.Decimal `json:"price"`
}

// Amount returns price * qty for the item.
func (i SaleItem) Amount() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Qty)))
}

// FormatSaleDate renders t the way sale dates are stored.
func FormatSaleDate(t time.Time) string {
	return t.UTC().Format(SaleDateLayout)
}
