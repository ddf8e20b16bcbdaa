package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/KirkDiggler/playtime/internal/common/clock"
	"github.com/KirkDiggler/playtime/internal/common/logger"
	"github.com/KirkDiggler/playtime/internal/common/uuid"
	"github.com/KirkDiggler/playtime/internal/config"
	"github.com/KirkDiggler/playtime/internal/handlers/cli"
	"github.com/KirkDiggler/playtime/internal/pricing"
	clientRepo "github.com/KirkDiggler/playtime/internal/repositories/client"
	paymentRepo "github.com/KirkDiggler/playtime/internal/repositories/payment"
	promotionRepo "github.com/KirkDiggler/playtime/internal/repositories/promotion"
	reservationRepo "github.com/KirkDiggler/playtime/internal/repositories/reservation"
	sessionRepo "github.com/KirkDiggler/playtime/internal/repositories/session"
	stationRepo "github.com/KirkDiggler/playtime/internal/repositories/station"
	catalogService "github.com/KirkDiggler/playtime/internal/services/catalog"
	"github.com/KirkDiggler/playtime/internal/services/messaging"
	reportService "github.com/KirkDiggler/playtime/internal/services/report"
	reservationService "github.com/KirkDiggler/playtime/internal/services/reservation"
	sessionService "github.com/KirkDiggler/playtime/internal/services/session"
	"github.com/KirkDiggler/playtime/internal/store"
	"github.com/KirkDiggler/playtime/internal/ticket"
	"github.com/KirkDiggler/playtime/internal/watchdog"
)

// eventBuffer is how many expiry notices the watch prompt may lag behind
const eventBuffer = 64

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(".env")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		return 1
	}

	log, err := logger.New(cfg.LogLevel, cfg.LogDevelopment)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		return 1
	}
	defer func() { _ = log.Sync() }()

	st, err := store.Open(ctx, &store.Config{
		Path:        cfg.DBPath,
		BusyRetries: cfg.BusyRetries,
		BusyBackoff: cfg.BusyBackoff,
		Logger:      log,
	})
	if err != nil {
		log.Error("Failed to open store", zap.String("path", cfg.DBPath), zap.Error(err))
		return 1
	}
	defer func() {
		if err := st.Close(); err != nil {
			log.Warn("Failed to close store", zap.Error(err))
		}
	}()

	app, err := build(cfg, st, log)
	if err != nil {
		log.Error("Failed to initialize", zap.Error(err))
		return 1
	}

	// errors were already printed as operator messages
	if err := app.Command().ExecuteContext(ctx); err != nil {
		return 1
	}
	return 0
}

func build(cfg *config.Config, st *store.Store, log *zap.Logger) (*cli.CLI, error) {
	tariff, err := pricing.LoadTariff(cfg.TariffPath)
	if err != nil {
		return nil, err
	}

	// Initialize repositories
	reservations, err := reservationRepo.NewSQLite(&reservationRepo.Config{Store: st})
	if err != nil {
		return nil, fmt.Errorf("failed to create reservation repository: %w", err)
	}
	sessions, err := sessionRepo.NewSQLite(&sessionRepo.Config{Store: st})
	if err != nil {
		return nil, fmt.Errorf("failed to create session repository: %w", err)
	}
	clients, err := clientRepo.NewSQLite(&clientRepo.Config{Store: st})
	if err != nil {
		return nil, fmt.Errorf("failed to create client repository: %w", err)
	}
	stations, err := stationRepo.NewSQLite(&stationRepo.Config{Store: st})
	if err != nil {
		return nil, fmt.Errorf("failed to create station repository: %w", err)
	}
	promotions, err := promotionRepo.NewSQLite(&promotionRepo.Config{Store: st})
	if err != nil {
		return nil, fmt.Errorf("failed to create promotion repository: %w", err)
	}
	payments, err := paymentRepo.NewSQLite(&paymentRepo.Config{Store: st})
	if err != nil {
		return nil, fmt.Errorf("failed to create payment repository: %w", err)
	}

	clk := &clock.DefaultClock{}
	ids := uuid.New()

	// The watchdog doubles as the session service's expiry flags
	prompts := watchdog.NewChannelNotifier(eventBuffer, log)
	dog, err := watchdog.New(&watchdog.Config{
		SessionRepo:      sessions,
		Notifier:         watchdog.MultiNotifier{&watchdog.LogNotifier{Logger: log}, prompts},
		Clock:            clk,
		Interval:         cfg.WatchdogInterval,
		LowTimeThreshold: cfg.LowTimeThreshold,
		Logger:           log,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create watchdog: %w", err)
	}

	// Initialize services
	reservationSvc, err := reservationService.NewService(&reservationService.Config{
		ReservationRepo: reservations,
		ClientRepo:      clients,
		StationRepo:     stations,
		PromotionRepo:   promotions,
		Transactor:      st,
		Tariff:          tariff,
		TicketGenerator: ticket.New(&ticket.Config{}),
		Clock:           clk,
		UUIDGenerator:   ids,
		MinDuration:     cfg.MinReservation,
		Logger:          log,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create reservation service: %w", err)
	}

	sessionSvc, err := sessionService.NewService(&sessionService.Config{
		SessionRepo:     sessions,
		ReservationRepo: reservations,
		StationRepo:     stations,
		PaymentRepo:     payments,
		Transactor:      st,
		Tariff:          tariff,
		Clock:           clk,
		UUIDGenerator:   ids,
		ExpiryFlags:     dog,
		Logger:          log,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create session service: %w", err)
	}

	reportSvc, err := reportService.NewService(&reportService.Config{
		ReservationRepo: reservations,
		PaymentRepo:     payments,
		StationRepo:     stations,
		SessionRepo:     sessions,
		Clock:           clk,
		Logger:          log,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create report service: %w", err)
	}

	catalogSvc, err := catalogService.NewService(&catalogService.Config{
		StationRepo:   stations,
		ClientRepo:    clients,
		PromotionRepo: promotions,
		Transactor:    st,
		Clock:         clk,
		Logger:        log,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create catalog service: %w", err)
	}

	messagingSvc, err := messaging.NewService(&messaging.ServiceConfig{Currency: tariff.Currency})
	if err != nil {
		return nil, fmt.Errorf("failed to create messaging service: %w", err)
	}

	return cli.New(&cli.Config{
		ReservationService: reservationSvc,
		SessionService:     sessionSvc,
		ReportService:      reportSvc,
		CatalogService:     catalogSvc,
		MessagingService:   messagingSvc,
		Watcher:            dog,
		Events:             prompts.Events(),
		Operator:           cfg.Operator,
		Currency:           tariff.Currency,
		Logger:             log,
	})
}
