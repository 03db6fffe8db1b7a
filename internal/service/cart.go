package service

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/tuanvumaihuynh/pos/internal/apperr"
	"github.com/tuanvumaihuynh/pos/internal/model"
)

// ProductFinder resolves a scanned sku to a catalog product.
type ProductFinder interface {
	FindBySku(ctx context.Context, sku string) (model.Product, error)
}

// Cart aggregates scanned products for the sale in progress. It holds at
// most one line per sku and is never persisted.
type Cart struct {
	finder ProductFinder
	// newest line first
	items []model.LineItem
}

func NewCart(finder ProductFinder) *Cart {
	return &Cart{finder: finder}
}

// AddBySku adds one unit of the product with the given sku. A sku already in
// the cart keeps its position and gains one unit; a new sku goes to the front.
func (c *Cart) AddBySku(ctx context.Context, sku string) (model.LineItem, error) {
	if sku == "" {
		return model.LineItem{}, apperr.ValidationErr.WrapParent(errors.New("sku is required"))
	}

	product, err := c.finder.FindBySku(ctx, sku)
	if err != nil {
		return model.LineItem{}, fmt.Errorf("find product by sku: %w", err)
	}

	if idx := c.index(sku); idx >= 0 {
		c.items[idx].Qty++
		return c.items[idx], nil
	}

	item := model.LineItem{Product: product, Qty: 1}
	c.items = slices.Insert(c.items, 0, item)
	return item, nil
}

// SetQty sets the quantity of a line, clamping anything below 1 to 1.
// It reports whether the sku was in the cart.
func (c *Cart) SetQty(sku string, qty int) bool {
	idx := c.index(sku)
	if idx < 0 {
		return false
	}

	c.items[idx].Qty = max(1, qty)
	return true
}

// Remove drops the line for sku and reports whether it existed.
func (c *Cart) Remove(sku string) bool {
	idx := c.index(sku)
	if idx < 0 {
		return false
	}

	c.items = slices.Delete(c.items, idx, idx+1)
	return true
}

func (c *Cart) Clear() {
	c.items = nil
}

// Total is recomputed from the lines on every call.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.items {
		total = total.Add(item.Amount())
	}
	return total
}

func (c *Cart) Items() []model.LineItem {
	return slices.Clone(c.items)
}

func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

func (c *Cart) index(sku string) int {
	return slices.IndexFunc(c.items, func(i model.LineItem) bool {
		return i.Sku == sku
	})
}
