// Package cli is the operator console: one cobra command per lifecycle
// operation, all running in-process against the local store.
package cli

import (
	"context"
	"errors"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/KirkDiggler/playtime/internal/common/logger"
	"github.com/KirkDiggler/playtime/internal/services/catalog"
	"github.com/KirkDiggler/playtime/internal/services/messaging"
	"github.com/KirkDiggler/playtime/internal/services/report"
	"github.com/KirkDiggler/playtime/internal/services/reservation"
	"github.com/KirkDiggler/playtime/internal/services/session"
	"github.com/KirkDiggler/playtime/internal/watchdog"
)

// Watcher runs the expiry sweep until ctx is done
type Watcher interface {
	Run(ctx context.Context) error
}

// Config holds the configuration for the CLI
type Config struct {
	ReservationService reservation.Service
	SessionService     session.Service
	ReportService      report.Service
	CatalogService     catalog.Service
	MessagingService   messaging.Service

	// Watcher and Events back the watch command; Events receives what the
	// watcher raises
	Watcher Watcher
	Events  <-chan watchdog.Event

	// Operator is the default for --operator
	Operator string

	// Currency is printed beside amounts
	Currency string

	// Location is used to read dates given on the command line
	Location *time.Location

	Logger *zap.Logger
}

// CLI represents the operator console
type CLI struct {
	reservations reservation.Service
	sessions     session.Service
	reports      report.Service
	catalog      catalog.Service
	messages     messaging.Service
	watcher      Watcher
	events       <-chan watchdog.Event
	currency     string
	location     *time.Location
	log          *zap.Logger

	operator string
}

// New creates a new CLI
func New(cfg *Config) (*CLI, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.ReservationService == nil {
		return nil, errors.New("reservation service cannot be nil")
	}
	if cfg.SessionService == nil {
		return nil, errors.New("session service cannot be nil")
	}
	if cfg.ReportService == nil {
		return nil, errors.New("report service cannot be nil")
	}
	if cfg.CatalogService == nil {
		return nil, errors.New("catalog service cannot be nil")
	}
	if cfg.MessagingService == nil {
		return nil, errors.New("messaging service cannot be nil")
	}

	loc := cfg.Location
	if loc == nil {
		loc = time.Local
	}

	return &CLI{
		reservations: cfg.ReservationService,
		sessions:     cfg.SessionService,
		reports:      cfg.ReportService,
		catalog:      cfg.CatalogService,
		messages:     cfg.MessagingService,
		watcher:      cfg.Watcher,
		events:       cfg.Events,
		currency:     cfg.Currency,
		location:     loc,
		log:          logger.OrNop(cfg.Logger),
		operator:     cfg.Operator,
	}, nil
}

// Command builds the root command with every subcommand registered
func (c *CLI) Command() *cobra.Command {
	root := &cobra.Command{
		Use:   "playtime",
		Short: "Run a gaming venue's reservations and station sessions",
		Long: `playtime sells reservations for gaming stations, runs their sessions with
pause, resume, extension and termination, and warns when paid time runs out.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&c.operator, "operator", c.operator, "operator id recorded on every change")

	for _, handler := range []CommandHandler{
		c.reserveCommand(),
		c.quoteCommand(),
		c.reservationCommand(),
		c.cancelCommand(),
		c.deleteCommand(),
		c.startCommand(),
		c.pauseCommand(),
		c.resumeCommand(),
		c.extendCommand(),
		c.terminateCommand(),
		c.statusCommand(),
		c.boardCommand(),
		c.reportCommand(),
		c.importCommand(),
		c.outOfServiceCommand(),
		c.watchCommand(),
	} {
		c.RegisterCommand(root, handler)
	}
	return root
}

// RegisterCommand adds a command to the root and logs each run
func (c *CLI) RegisterCommand(root *cobra.Command, handler CommandHandler) {
	cmd := handler.GetCommand()
	name := handler.GetName()
	run := cmd.RunE
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		c.log.Debug("command",
			zap.String("name", name),
			zap.Strings("args", args),
			zap.String("operator_id", c.operator),
		)
		return run(cmd, args)
	}
	root.AddCommand(cmd)
}
