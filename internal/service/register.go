package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tuanvumaihuynh/pos/internal/model"
)

// Register is the single-operator till: the catalog, the sale history and
// the cart of the sale in progress. Calls are expected from one goroutine.
type Register struct {
	logger  *slog.Logger
	catalog CatalogService
	sales   SaleService
	cart    *Cart
}

func NewRegister(logger *slog.Logger, catalog CatalogService, sales SaleService) *Register {
	return &Register{
		logger:  logger.With(slog.String("service", "register")),
		catalog: catalog,
		sales:   sales,
		cart:    NewCart(catalog),
	}
}

// Init loads the catalog and the sale history and prunes expired sales.
func (r *Register) Init(ctx context.Context) {
	r.catalog.Load(ctx)
	r.sales.Load(ctx)
}

// Flush writes both collections. They are independent, so a failure of one
// does not stop the other.
func (r *Register) Flush(ctx context.Context) error {
	var errs []error
	if err := r.catalog.Persist(ctx); err != nil {
		errs = append(errs, fmt.Errorf("persist catalog: %w", err))
	}
	if err := r.sales.Persist(ctx); err != nil {
		errs = append(errs, fmt.Errorf("persist sales: %w", err))
	}
	return errors.Join(errs...)
}

func (r *Register) AddProduct(ctx context.Context, params AddProductParams) (model.Product, error) {
	return r.catalog.AddProduct(ctx, params)
}

func (r *Register) DeleteProduct(ctx context.Context, id uuid.UUID) bool {
	return r.catalog.DeleteProduct(ctx, id)
}

func (r *Register) FindProduct(ctx context.Context, sku string) (model.Product, error) {
	return r.catalog.FindBySku(ctx, sku)
}

func (r *Register) FindProductByID(ctx context.Context, id uuid.UUID) (model.Product, error) {
	return r.catalog.FindByID(ctx, id)
}

func (r *Register) Products(ctx context.Context) []model.Product {
	return r.catalog.ListProducts(ctx)
}

func (r *Register) AddToCart(ctx context.Context, sku string) (model.LineItem, error) {
	return r.cart.AddBySku(ctx, sku)
}

func (r *Register) SetCartQty(sku string, qty int) bool {
	return r.cart.SetQty(sku, qty)
}

func (r *Register) RemoveFromCart(sku string) bool {
	return r.cart.Remove(sku)
}

// ClearCart abandons the sale in progress.
func (r *Register) ClearCart() {
	r.cart.Clear()
}

func (r *Register) CartItems() []model.LineItem {
	return r.cart.Items()
}

func (r *Register) CartTotal() decimal.Decimal {
	return r.cart.Total()
}

func (r *Register) FinalizeSale(ctx context.Context) (model.Sale, error) {
	sale, err := r.sales.Finalize(ctx, r.cart)
	if err != nil {
		return model.Sale{}, fmt.Errorf("sale service finalize: %w", err)
	}
	return sale, nil
}

func (r *Register) Sales(ctx context.Context) []model.Sale {
	return r.sales.ListSales(ctx)
}

func (r *Register) PruneNow(ctx context.Context) int {
	removed := r.sales.PruneNow(ctx)
	if removed > 0 {
		if err := r.sales.Persist(ctx); err != nil {
			r.logger.WarnContext(ctx, "error persisting pruned history", slog.Any("error", err))
		}
	}
	return removed
}
