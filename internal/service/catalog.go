package service

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tuanvumaihuynh/pos/internal/apperr"
	"github.com/tuanvumaihuynh/pos/internal/event"
	"github.com/tuanvumaihuynh/pos/internal/model"
	"github.com/tuanvumaihuynh/pos/internal/repository"
	"github.com/tuanvumaihuynh/pos/pkg/validator"
)

// defaultStock is the stock recorded for every new product.
const defaultStock = 1

type AddProductParams struct {
	Name  string `validate:"required"`
	Price string `validate:"required,money"`
	Desc  string
	Sku   string `validate:"required"`
}

type CatalogService interface {
	// Load replaces the in-memory catalog with the stored one. Unreadable
	// data yields an empty catalog.
	Load(ctx context.Context)
	// Persist writes the whole catalog.
	Persist(ctx context.Context) error

	AddProduct(ctx context.Context, params AddProductParams) (model.Product, error)
	// DeleteProduct reports whether a product was removed.
	DeleteProduct(ctx context.Context, id uuid.UUID) bool
	// FindBySku returns the first product with the sku. Skus are not
	// unique, so later duplicates are shadowed.
	FindBySku(ctx context.Context, sku string) (model.Product, error)
	FindByID(ctx context.Context, id uuid.UUID) (model.Product, error)
	ListProducts(ctx context.Context) []model.Product
}

type catalogService struct {
	logger      *slog.Logger
	validator   validator.Validator
	productRepo repository.ProductRepository
	publisher   event.Publisher
	now         func() time.Time

	// most recently added first
	products []model.Product
}

func NewCatalogService(
	logger *slog.Logger,
	validator validator.Validator,
	productRepo repository.ProductRepository,
	publisher event.Publisher,
	now func() time.Time,
) CatalogService {
	return &catalogService{
		logger:      logger.With(slog.String("service", "catalog")),
		validator:   validator,
		productRepo: productRepo,
		publisher:   publisher,
		now:         now,
		products:    []model.Product{},
	}
}

func (s *catalogService) Load(ctx context.Context) {
	products, err := s.productRepo.ListAllProducts(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "error loading catalog, starting empty", slog.Any("error", err))
		products = []model.Product{}
	}

	s.products = products
	s.logger.InfoContext(ctx, "catalog loaded", slog.Int("count", len(products)))
}

func (s *catalogService) Persist(ctx context.Context) error {
	if err := s.productRepo.ReplaceAllProducts(ctx, s.products); err != nil {
		return fmt.Errorf("product repository replace all products: %w", err)
	}
	return nil
}

func (s *catalogService) AddProduct(ctx context.Context, params AddProductParams) (model.Product, error) {
	if err := s.validator.Validate(params); err != nil {
		return model.Product{}, apperr.ValidationErr.WrapParent(err)
	}

	price, err := decimal.NewFromString(params.Price)
	if err != nil {
		return model.Product{}, apperr.ValidationErr.WrapParent(fmt.Errorf("parse price: %w", err))
	}

	id, err := uuid.NewV7()
	if err != nil {
		return model.Product{}, fmt.Errorf("generate uuid v7: %w", err)
	}

	product := model.Product{
		ID:        id,
		Name:      params.Name,
		Price:     price,
		Desc:      params.Desc,
		Sku:       params.Sku,
		CreatedAt: s.now(),
		Stock:     defaultStock,
	}

	s.products = slices.Insert(s.products, 0, product)
	s.persist(ctx)

	s.publisher.Publish(ctx, event.TopicProductCreated, event.ProductCreatedEvent{Product: product})

	return product, nil
}

func (s *catalogService) DeleteProduct(ctx context.Context, id uuid.UUID) bool {
	before := len(s.products)
	s.products = slices.DeleteFunc(s.products, func(p model.Product) bool {
		return p.ID == id
	})
	removed := len(s.products) != before

	// written even when nothing changed, matching every other catalog action
	s.persist(ctx)

	return removed
}

func (s *catalogService) FindBySku(_ context.Context, sku string) (model.Product, error) {
	idx := slices.IndexFunc(s.products, func(p model.Product) bool {
		return p.Sku == sku
	})
	if idx < 0 {
		return model.Product{}, apperr.ProductNotFoundErr.WrapParent(fmt.Errorf("sku %q", sku))
	}

	return s.products[idx], nil
}

func (s *catalogService) FindByID(_ context.Context, id uuid.UUID) (model.Product, error) {
	idx := slices.IndexFunc(s.products, func(p model.Product) bool {
		return p.ID == id
	})
	if idx < 0 {
		return model.Product{}, apperr.ProductNotFoundErr.WrapParent(fmt.Errorf("id %s", id))
	}

	return s.products[idx], nil
}

func (s *catalogService) ListProducts(_ context.Context) []model.Product {
	return slices.Clone(s.products)
}

// persist is best-effort: the in-memory catalog stays authoritative.
func (s *catalogService) persist(ctx context.Context) {
	if err := s.Persist(ctx); err != nil {
		s.logger.WarnContext(ctx, "error persisting catalog", slog.Any("error", err))
	}
}
