package repository

import (
	"context"
	"fmt"

	"github.com/tuanvumaihuynh/pos/internal/model"
	"github.com/tuanvumaihuynh/pos/internal/storage/kv"
)

type ProductRepository interface {
	ListAllProducts(ctx context.Context) ([]model.Product, error)
	ReplaceAllProducts(ctx context.Context, products []model.Product) error
}

type productRepository struct {
	products collection[model.Product]
}

func NewProductRepository(store kv.Store) ProductRepository {
	return &productRepository{
		products: collection[model.Product]{store: store, key: keyProducts},
	}
}

func (r productRepository) ListAllProducts(ctx context.Context) ([]model.Product, error) {
	products, err := r.products.load(ctx)
	if err != nil {
		return nil, fmt.Errorf("list all products: %w", err)
	}

	return products, nil
}

func (r productRepository) ReplaceAllProducts(ctx context.Context, products []model.Product) error {
	if err := r.products.replace(ctx, products); err != nil {
		return fmt.Errorf("replace all products: %w", err)
	}

	return nil
}
