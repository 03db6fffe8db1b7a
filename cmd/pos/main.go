package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tuanvumaihuynh/pos/internal/config"
	"github.com/tuanvumaihuynh/pos/internal/document"
	"github.com/tuanvumaihuynh/pos/internal/event"
	"github.com/tuanvumaihuynh/pos/internal/log"
	"github.com/tuanvumaihuynh/pos/internal/printer"
	"github.com/tuanvumaihuynh/pos/internal/repository"
	"github.com/tuanvumaihuynh/pos/internal/service"
	"github.com/tuanvumaihuynh/pos/internal/shell"
	"github.com/tuanvumaihuynh/pos/internal/sku"
	"github.com/tuanvumaihuynh/pos/internal/storage/kv"
	"github.com/tuanvumaihuynh/pos/pkg/sessionid"
	"github.com/tuanvumaihuynh/pos/pkg/validator"
)

func main() {
	if err := run(); err != nil {
		fmt.Printf("error running pos: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	time.Local = time.UTC

	type Config struct {
		Log   config.Log
		Store config.Store
		Shop  config.Shop
		Print config.Print
	}
	cfg, err := config.New[Config]()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	logWriter := log.NewWriter(cfg.Log)
	defer logWriter.Close()

	logger := log.NewSlogLogger(cfg.Log, logWriter)
	ctx = sessionid.NewContext(ctx, sessionid.New())

	store, err := kv.Open(cfg.Store)
	if err != nil {
		return fmt.Errorf("error opening store: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.ErrorContext(ctx, "error closing store", slog.Any("error", err))
		}
	}()

	v, err := validator.NewDefaultValidator()
	if err != nil {
		return fmt.Errorf("error creating validator: %w", err)
	}

	renderer, err := document.NewRenderer(cfg.Shop)
	if err != nil {
		return fmt.Errorf("error creating document renderer: %w", err)
	}
	filePrinter := printer.NewFilePrinter(cfg.Print)

	bus := event.NewBus()
	eventSvc := event.New(logger, bus, renderer, filePrinter)
	cleanupEvents, err := eventSvc.Run(ctx)
	if err != nil {
		return fmt.Errorf("error running event service: %w", err)
	}
	defer cleanupEvents()

	productRepository := repository.NewProductRepository(store)
	saleRepository := repository.NewSaleRepository(store)

	catalogService := service.NewCatalogService(logger, v, productRepository, bus, time.Now)
	saleService := service.NewSaleService(logger, saleRepository, bus, time.Now)

	register := service.NewRegister(logger, catalogService, saleService)
	register.Init(ctx)
	logger.InfoContext(ctx, "register opened",
		slog.String("store", cfg.Store.Driver.String()),
		slog.Int("products", len(register.Products(ctx))),
		slog.Int("sales", len(register.Sales(ctx))),
	)

	sh := shell.New(logger, register, renderer, filePrinter, sku.NewGenerator(cfg.Shop.SkuPrefix))

	fmt.Printf("%s - %s\ntype help for commands\n", cfg.Shop.Name, cfg.Shop.Tagline)

	done := make(chan error, 1)
	go func() {
		done <- sh.Run(ctx, os.Stdin, os.Stdout)
	}()

	select {
	case err = <-done:
	case <-ctx.Done():
		fmt.Println()
		logger.InfoContext(ctx, "interrupted")
	}
	// the reader may stay blocked on stdin; Close only waits for a running command
	sh.Close()

	// the signal context may already be cancelled
	if flushErr := register.Flush(context.WithoutCancel(ctx)); flushErr != nil {
		logger.ErrorContext(ctx, "error flushing register", slog.Any("error", flushErr))
	}
	logger.InfoContext(ctx, "register closed")

	if err != nil {
		return fmt.Errorf("error running shell: %w", err)
	}
	return nil
}
