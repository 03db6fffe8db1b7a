package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuanvumaihuynh/pos/internal/apperr"
	"github.com/tuanvumaihuynh/pos/internal/event"
	"github.com/tuanvumaihuynh/pos/internal/repository"
	"github.com/tuanvumaihuynh/pos/internal/service"
	"github.com/tuanvumaihuynh/pos/internal/storage/kv"
)

func TestCatalogService_AddProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("Should add exactly one product with the submitted fields", func(t *testing.T) {
		f := newFixture(t, kv.NewMemoryStore())

		p, err := f.catalog.AddProduct(ctx, service.AddProductParams{
			Name: "Kurta", Price: "499.50", Desc: "cotton", Sku: "AGR-111111",
		})
		require.NoError(t, err)

		products := f.catalog.ListProducts(ctx)
		require.Len(t, products, 1)
		assert.Equal(t, p, products[0])
		assert.NotEqual(t, uuid.Nil, p.ID)
		assert.Equal(t, "Kurta", p.Name)
		assert.Equal(t, "499.5", p.Price.String())
		assert.Equal(t, "cotton", p.Desc)
		assert.Equal(t, "AGR-111111", p.Sku)
		assert.Equal(t, 1, p.Stock)
		assert.Equal(t, f.clock.Now(), p.CreatedAt)
	})

	t.Run("Should put the newest product first with unique ids", func(t *testing.T) {
		f := newFixture(t, kv.NewMemoryStore())

		first, err := f.catalog.AddProduct(ctx, service.AddProductParams{Name: "A", Price: "1", Sku: "A"})
		require.NoError(t, err)
		second, err := f.catalog.AddProduct(ctx, service.AddProductParams{Name: "B", Price: "2", Sku: "B"})
		require.NoError(t, err)

		products := f.catalog.ListProducts(ctx)
		require.Len(t, products, 2)
		assert.Equal(t, second.ID, products[0].ID)
		assert.Equal(t, first.ID, products[1].ID)
		assert.NotEqual(t, first.ID, second.ID)
	})

	t.Run("Should reject missing required fields and leave the catalog unchanged", func(t *testing.T) {
		f := newFixture(t, kv.NewMemoryStore())

		cases := map[string]service.AddProductParams{
			"empty name":     {Price: "10", Sku: "A"},
			"empty price":    {Name: "A", Sku: "A"},
			"empty sku":      {Name: "A", Price: "10"},
			"negative price": {Name: "A", Price: "-1", Sku: "A"},
			"bad price":      {Name: "A", Price: "ten", Sku: "A"},
		}
		for name, params := range cases {
			t.Run(name, func(t *testing.T) {
				_, err := f.catalog.AddProduct(ctx, params)
				assert.ErrorIs(t, err, apperr.ValidationErr)
				assert.Empty(t, f.catalog.ListProducts(ctx))
			})
		}
		assert.Empty(t, f.publisher.events)
	})

	t.Run("Should persist and announce the new product", func(t *testing.T) {
		f := newFixture(t, kv.NewMemoryStore())

		p, err := f.catalog.AddProduct(ctx, service.AddProductParams{Name: "A", Price: "1", Sku: "A"})
		require.NoError(t, err)

		stored, err := repository.NewProductRepository(f.store).ListAllProducts(ctx)
		require.NoError(t, err)
		require.Len(t, stored, 1)
		assert.Equal(t, p.ID, stored[0].ID)

		require.Len(t, f.publisher.events, 1)
		assert.Equal(t, event.TopicProductCreated, f.publisher.events[0].topic)
		assert.Equal(t, event.ProductCreatedEvent{Product: p}, f.publisher.events[0].payload)
	})

	t.Run("Should keep the product in memory when saving fails", func(t *testing.T) {
		store := &failingStore{}
		f := newFixture(t, store)

		_, err := f.catalog.AddProduct(ctx, service.AddProductParams{Name: "A", Price: "1", Sku: "A"})
		require.NoError(t, err)

		assert.Len(t, f.catalog.ListProducts(ctx), 1)
		assert.Positive(t, store.puts)
	})
}

func TestCatalogService_DeleteProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("Should remove a previously added product", func(t *testing.T) {
		f := newFixture(t, kv.NewMemoryStore())
		p, err := f.catalog.AddProduct(ctx, service.AddProductParams{Name: "A", Price: "1", Sku: "A"})
		require.NoError(t, err)

		assert.True(t, f.catalog.DeleteProduct(ctx, p.ID))
		assert.Empty(t, f.catalog.ListProducts(ctx))

		stored, err := repository.NewProductRepository(f.store).ListAllProducts(ctx)
		require.NoError(t, err)
		assert.Empty(t, stored)
	})

	t.Run("Should ignore an unknown id", func(t *testing.T) {
		f := newFixture(t, kv.NewMemoryStore())
		_, err := f.catalog.AddProduct(ctx, service.AddProductParams{Name: "A", Price: "1", Sku: "A"})
		require.NoError(t, err)

		assert.False(t, f.catalog.DeleteProduct(ctx, uuid.New()))
		assert.Len(t, f.catalog.ListProducts(ctx), 1)
	})
}

func TestCatalogService_FindBySku(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, kv.NewMemoryStore())

	older, err := f.catalog.AddProduct(ctx, service.AddProductParams{Name: "Old", Price: "1", Sku: "DUP"})
	require.NoError(t, err)
	newer, err := f.catalog.AddProduct(ctx, service.AddProductParams{Name: "New", Price: "2", Sku: "DUP"})
	require.NoError(t, err)

	t.Run("Should return the first match for duplicate skus", func(t *testing.T) {
		p, err := f.catalog.FindBySku(ctx, "DUP")
		require.NoError(t, err)
		assert.Equal(t, newer.ID, p.ID)
	})

	t.Run("Should find by id", func(t *testing.T) {
		p, err := f.catalog.FindByID(ctx, older.ID)
		require.NoError(t, err)
		assert.Equal(t, "Old", p.Name)
	})

	t.Run("Should report an unknown sku", func(t *testing.T) {
		_, err := f.catalog.FindBySku(ctx, "MISSING")
		assert.ErrorIs(t, err, apperr.ProductNotFoundErr)
	})
}

func TestCatalogService_Load(t *testing.T) {
	ctx := context.Background()

	t.Run("Should start empty when stored data is corrupt", func(t *testing.T) {
		store := kv.NewMemoryStore()
		require.NoError(t, store.Put(ctx, "products", []byte("garbage")))

		f := newFixture(t, store)
		assert.Empty(t, f.catalog.ListProducts(ctx))
	})

	t.Run("Should reload what was persisted", func(t *testing.T) {
		store := kv.NewMemoryStore()
		f := newFixture(t, store)
		p, err := f.catalog.AddProduct(ctx, service.AddProductParams{Name: "A", Price: "1", Sku: "A"})
		require.NoError(t, err)

		reloaded := newFixture(t, store)
		products := reloaded.catalog.ListProducts(ctx)
		require.Len(t, products, 1)
		assert.Equal(t, p.ID, products[0].ID)
	})
}
