package service_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuanvumaihuynh/pos/internal/apperr"
	"github.com/tuanvumaihuynh/pos/internal/model"
	"github.com/tuanvumaihuynh/pos/internal/service"
)

type stubFinder map[string]model.Product

func (f stubFinder) FindBySku(_ context.Context, sku string) (model.Product, error) {
	p, ok := f[sku]
	if !ok {
		return model.Product{}, apperr.ProductNotFoundErr
	}
	return p, nil
}

func newStubFinder() stubFinder {
	return stubFinder{
		"A": {Name: "Kurta", Sku: "A", Price: decimal.NewFromInt(100)},
		"B": {Name: "Dupatta", Sku: "B", Price: decimal.NewFromInt(50)},
		"C": {Name: "Pin", Sku: "C", Price: decimal.RequireFromString("0.10")},
	}
}

func skus(items []model.LineItem) []string {
	out := make([]string, 0, len(items))
	for _, i := range items {
		out = append(out, i.Sku)
	}
	return out
}

func TestCart(t *testing.T) {
	ctx := context.Background()

	t.Run("Should merge repeated scans into one line", func(t *testing.T) {
		cart := service.NewCart(newStubFinder())

		_, err := cart.AddBySku(ctx, "A")
		require.NoError(t, err)
		item, err := cart.AddBySku(ctx, "A")
		require.NoError(t, err)

		items := cart.Items()
		require.Len(t, items, 1)
		assert.Equal(t, 2, items[0].Qty)
		assert.Equal(t, 2, item.Qty)
	})

	t.Run("Should put new lines first and keep existing positions", func(t *testing.T) {
		cart := service.NewCart(newStubFinder())

		for _, sku := range []string{"A", "B", "A", "C"} {
			_, err := cart.AddBySku(ctx, sku)
			require.NoError(t, err)
		}

		assert.Equal(t, []string{"C", "B", "A"}, skus(cart.Items()))
	})

	t.Run("Should leave the cart unchanged for an unknown sku", func(t *testing.T) {
		cart := service.NewCart(newStubFinder())
		_, err := cart.AddBySku(ctx, "A")
		require.NoError(t, err)

		_, err = cart.AddBySku(ctx, "ZZZ")
		assert.ErrorIs(t, err, apperr.ProductNotFoundErr)
		assert.Equal(t, []string{"A"}, skus(cart.Items()))
		assert.Equal(t, 1, cart.Items()[0].Qty)
	})

	t.Run("Should reject a blank sku", func(t *testing.T) {
		cart := service.NewCart(newStubFinder())

		_, err := cart.AddBySku(ctx, "")
		assert.ErrorIs(t, err, apperr.ValidationErr)
		assert.True(t, cart.IsEmpty())
	})

	t.Run("Should clamp quantities below one", func(t *testing.T) {
		cart := service.NewCart(newStubFinder())
		_, err := cart.AddBySku(ctx, "A")
		require.NoError(t, err)

		assert.True(t, cart.SetQty("A", 0))
		assert.Equal(t, 1, cart.Items()[0].Qty)

		assert.True(t, cart.SetQty("A", -5))
		assert.Equal(t, 1, cart.Items()[0].Qty)

		assert.True(t, cart.SetQty("A", 7))
		assert.Equal(t, 7, cart.Items()[0].Qty)

		assert.False(t, cart.SetQty("B", 3))
	})

	t.Run("Should remove lines and ignore unknown skus", func(t *testing.T) {
		cart := service.NewCart(newStubFinder())
		_, err := cart.AddBySku(ctx, "A")
		require.NoError(t, err)
		_, err = cart.AddBySku(ctx, "B")
		require.NoError(t, err)

		assert.True(t, cart.Remove("A"))
		assert.False(t, cart.Remove("A"))
		assert.Equal(t, []string{"B"}, skus(cart.Items()))
	})

	t.Run("Should recompute the total on every read", func(t *testing.T) {
		cart := service.NewCart(newStubFinder())
		assert.True(t, cart.Total().IsZero())

		_, err := cart.AddBySku(ctx, "A")
		require.NoError(t, err)
		_, err = cart.AddBySku(ctx, "C")
		require.NoError(t, err)
		assert.Equal(t, "100.1", cart.Total().String())

		cart.SetQty("C", 3)
		assert.Equal(t, "100.3", cart.Total().String())
	})

	t.Run("Should empty on clear", func(t *testing.T) {
		cart := service.NewCart(newStubFinder())
		_, err := cart.AddBySku(ctx, "A")
		require.NoError(t, err)

		cart.Clear()
		assert.True(t, cart.IsEmpty())
		assert.Empty(t, cart.Items())
	})

	t.Run("Should hand out copies of the lines", func(t *testing.T) {
		cart := service.NewCart(newStubFinder())
		_, err := cart.AddBySku(ctx, "A")
		require.NoError(t, err)

		items := cart.Items()
		items[0].Qty = 99
		assert.Equal(t, 1, cart.Items()[0].Qty)
	})
}
