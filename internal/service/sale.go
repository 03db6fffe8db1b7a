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
	"github.com/tuanvumaihuynh/pos/internal/retention"
)

// CheckoutCart is the part of a cart the finalizer needs.
type CheckoutCart interface {
	Items() []model.LineItem
	Clear()
}

type SaleService interface {
	// Load replaces the in-memory history with the stored one and prunes it.
	Load(ctx context.Context)
	// Persist writes the whole history.
	Persist(ctx context.Context) error
	// PruneNow applies the retention window and returns how many sales it removed.
	PruneNow(ctx context.Context) int

	// Finalize records the cart as a sale and clears it.
	Finalize(ctx context.Context, cart CheckoutCart) (model.Sale, error)
	ListSales(ctx context.Context) []model.Sale
}

type saleService struct {
	logger    *slog.Logger
	saleRepo  repository.SaleRepository
	publisher event.Publisher
	now       func() time.Time

	// most recently finalized first
	sales []model.Sale
}

func NewSaleService(
	logger *slog.Logger,
	saleRepo repository.SaleRepository,
	publisher event.Publisher,
	now func() time.Time,
) SaleService {
	return &saleService{
		logger:    logger.With(slog.String("service", "sale")),
		saleRepo:  saleRepo,
		publisher: publisher,
		now:       now,
		sales:     []model.Sale{},
	}
}

func (s *saleService) Load(ctx context.Context) {
	sales, err := s.saleRepo.ListAllSales(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "error loading sale history, starting empty", slog.Any("error", err))
		sales = []model.Sale{}
	}

	s.sales = sales
	s.logger.InfoContext(ctx, "sale history loaded", slog.Int("count", len(sales)))

	if removed := s.PruneNow(ctx); removed > 0 {
		s.persist(ctx)
	}
}

func (s *saleService) Persist(ctx context.Context) error {
	if err := s.saleRepo.ReplaceAllSales(ctx, s.sales); err != nil {
		return fmt.Errorf("sale repository replace all sales: %w", err)
	}
	return nil
}

func (s *saleService) PruneNow(ctx context.Context) int {
	before := len(s.sales)
	s.sales = retention.Prune(s.sales, s.now())
	removed := before - len(s.sales)

	if removed > 0 {
		s.logger.InfoContext(ctx, "pruned sale history",
			slog.Int("removed", removed),
			slog.Int("kept", len(s.sales)),
		)
	}

	return removed
}

func (s *saleService) Finalize(ctx context.Context, cart CheckoutCart) (model.Sale, error) {
	items := cart.Items()
	if len(items) == 0 {
		return model.Sale{}, apperr.EmptyCartErr
	}

	id, err := uuid.NewV7()
	if err != nil {
		return model.Sale{}, fmt.Errorf("generate uuid v7: %w", err)
	}

	sale := model.Sale{
		ID:    id,
		Date:  model.FormatSaleDate(s.now()),
		Items: make([]model.SaleItem, 0, len(items)),
		Total: decimal.Zero,
	}
	for _, item := range items {
		sale.Items = append(sale.Items, model.SaleItem{
			Name:  item.Name,
			Sku:   item.Sku,
			Qty:   item.Qty,
			Price: item.Price,
		})
		sale.Total = sale.Total.Add(item.Amount())
	}

	s.sales = slices.Insert(s.sales, 0, sale)
	s.PruneNow(ctx)
	s.persist(ctx)

	s.publisher.Publish(ctx, event.TopicSaleFinalized, event.SaleFinalizedEvent{Sale: sale.Clone()})

	cart.Clear()

	return sale.Clone(), nil
}

func (s *saleService) ListSales(_ context.Context) []model.Sale {
	sales := make([]model.Sale, 0, len(s.sales))
	for _, sale := range s.sales {
		sales = append(sales, sale.Clone())
	}
	return sales
}

// persist is best-effort: the in-memory history stays authoritative.
func (s *saleService) persist(ctx context.Context) {
	if err := s.Persist(ctx); err != nil {
		s.logger.WarnContext(ctx, "error persisting sale history", slog.Any("error", err))
	}
}
