package event

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"

	"github.com/tuanvumaihuynh/pos/internal/document"
	"github.com/tuanvumaihuynh/pos/internal/printer"
)

// ReceiptRenderer turns a receipt into printable bytes.
type ReceiptRenderer interface {
	Receipt(receipt document.Receipt) ([]byte, error)
}

// Service is the event service.
type Service struct {
	logger   *slog.Logger
	bus      *Bus
	renderer ReceiptRenderer
	printer  printer.Printer
}

// New creates a new event service.
func New(
	logger *slog.Logger,
	bus *Bus,
	renderer ReceiptRenderer,
	printer printer.Printer,
) *Service {
	return &Service{
		logger:   logger.With(slog.String("service", "event")),
		bus:      bus,
		renderer: renderer,
		printer:  printer,
	}
}

type CleanupFunc func()

func (s *Service) Run(ctx context.Context) (CleanupFunc, error) {
	handlers := map[string]HandlerFunc{
		TopicProductCreated: s.recoverer(TopicProductCreated, func(ctx context.Context, payload any) {
			ev, ok := payload.(ProductCreatedEvent)
			if !ok {
				s.unexpectedPayload(ctx, TopicProductCreated, payload)
				return
			}
			s.handleProductCreatedEvent(ctx, ev)
		}),
		TopicSaleFinalized: s.recoverer(TopicSaleFinalized, func(ctx context.Context, payload any) {
			ev, ok := payload.(SaleFinalizedEvent)
			if !ok {
				s.unexpectedPayload(ctx, TopicSaleFinalized, payload)
				return
			}
			if err := s.handleSaleFinalizedEvent(ctx, ev); err != nil {
				// the sale is already recorded, a missing receipt is not fatal
				s.logger.WarnContext(ctx, "error printing receipt",
					slog.String("sale_id", ev.Sale.ID.String()),
					slog.Any("error", err),
				)
			}
		}),
	}

	for topic, fn := range handlers {
		if err := s.bus.Subscribe(topic, fn); err != nil {
			return nil, fmt.Errorf("register %s event handler: %w", topic, err)
		}
	}

	cleanup := func() {
		for topic, fn := range handlers {
			if err := s.bus.Unsubscribe(topic, fn); err != nil {
				s.logger.WarnContext(ctx, "error unsubscribing handler", slog.Any("error", err))
			}
		}
	}

	return cleanup, nil
}

func (s *Service) handleProductCreatedEvent(ctx context.Context, ev ProductCreatedEvent) {
	s.logger.InfoContext(ctx, "product created",
		slog.String("product_id", ev.Product.ID.String()),
		slog.String("sku", ev.Product.Sku),
	)
}

func (s *Service) handleSaleFinalizedEvent(ctx context.Context, ev SaleFinalizedEvent) error {
	s.logger.InfoContext(ctx, "sale finalized",
		slog.String("sale_id", ev.Sale.ID.String()),
		slog.String("total", ev.Sale.Total.StringFixed(2)),
		slog.Int("lines", len(ev.Sale.Items)),
	)

	content, err := s.renderer.Receipt(document.ReceiptFromSale(ev.Sale))
	if err != nil {
		return fmt.Errorf("render receipt: %w", err)
	}

	path, err := s.printer.Print(ctx, printer.Document{
		Kind:    printer.KindReceipt,
		Ref:     ev.Sale.ID.String(),
		Content: content,
	})
	if err != nil {
		return fmt.Errorf("print receipt: %w", err)
	}

	s.logger.InfoContext(ctx, "receipt printed", slog.String("path", path))
	return nil
}

func (s *Service) recoverer(topic string, fn HandlerFunc) HandlerFunc {
	return func(ctx context.Context, payload any) {
		defer func() {
			if rvr := recover(); rvr != nil {
				s.logger.ErrorContext(ctx, "panic in event handler",
					slog.String("topic", topic),
					slog.Any("recover", rvr),
					slog.String("stack", string(debug.Stack())),
				)
			}
		}()

		fn(ctx, payload)
	}
}

var errUnexpectedPayload = errors.New("unexpected payload")

func (s *Service) unexpectedPayload(ctx context.Context, topic string, payload any) {
	s.logger.ErrorContext(ctx, "error handling event",
		slog.String("topic", topic),
		slog.Any("error", fmt.Errorf("%w: %T", errUnexpectedPayload, payload)),
	)
}
