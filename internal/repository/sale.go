package repository

import (
	"context"
	"fmt"

	"github.com/tuanvumaihuynh/pos/internal/model"
	"github.com/tuanvumaihuynh/pos/internal/storage/kv"
)

type SaleRepository interface {
	ListAllSales(ctx context.Context) ([]model.Sale, error)
	ReplaceAllSales(ctx context.Context, sales []model.Sale) error
}

type saleRepository struct {
	sales collection[model.Sale]
}

func NewSaleRepository(store kv.Store) SaleRepository {
	return &saleRepository{
		sales: collection[model.Sale]{store: store, key: keySales},
	}
}

func (r saleRepository) ListAllSales(ctx context.Context) ([]model.Sale, error) {
	sales, err := r.sales.load(ctx)
	if err != nil {
		return nil, fmt.Errorf("list all sales: %w", err)
	}

	return sales, nil
}

func (r saleRepository) ReplaceAllSales(ctx context.Context, sales []model.Sale) error {
	if err := r.sales.replace(ctx, sales); err != nil {
		return fmt.Errorf("replace all sales: %w", err)
	}

	return nil
}
