package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tuanvumaihuynh/pos/internal/repository"
	"github.com/tuanvumaihuynh/pos/internal/service"
	"github.com/tuanvumaihuynh/pos/internal/storage/kv"
	"github.com/tuanvumaihuynh/pos/pkg/validator"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

type clock struct {
	t time.Time
}

func newClock() *clock {
	return &clock{t: time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)}
}

func (c *clock) Now() time.Time { return c.t }

func (c *clock) Advance(d time.Duration) { c.t = c.t.Add(d) }

type published struct {
	topic   string
	payload any
}

type recordingPublisher struct {
	events []published
}

func (p *recordingPublisher) Publish(_ context.Context, topic string, payload any) {
	p.events = append(p.events, published{topic: topic, payload: payload})
}

// failingStore reads like an empty store and refuses every write.
type failingStore struct {
	puts int
}

var errDiskFull = errors.New("disk full")

func (s *failingStore) Get(context.Context, string) ([]byte, error) {
	return nil, kv.ErrNotFound
}

func (s *failingStore) Put(context.Context, string, []byte) error {
	s.puts++
	return errDiskFull
}

func (s *failingStore) Close() error { return nil }

type fixture struct {
	store     kv.Store
	clock     *clock
	publisher *recordingPublisher
	catalog   service.CatalogService
	sales     service.SaleService
	register  *service.Register
}

func newFixture(t *testing.T, store kv.Store) *fixture {
	t.Helper()

	v, err := validator.NewDefaultValidator()
	require.NoError(t, err)

	f := &fixture{
		store:     store,
		clock:     newClock(),
		publisher: &recordingPublisher{},
	}
	f.catalog = service.NewCatalogService(discardLogger, v, repository.NewProductRepository(store), f.publisher, f.clock.Now)
	f.sales = service.NewSaleService(discardLogger, repository.NewSaleRepository(store), f.publisher, f.clock.Now)
	f.register = service.NewRegister(discardLogger, f.catalog, f.sales)
	f.register.Init(context.Background())

	return f
}
