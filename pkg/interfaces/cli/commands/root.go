// Package commands implements the mfgerp command line interface. Every
// subcommand runs against a SQLite-backed store resolved from configuration,
// scoped to a single tenant.
package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/tishbian-meshach/Manufacturing-ERP-sub000/pkg/application/services/execution"
	"github.com/tishbian-meshach/Manufacturing-ERP-sub000/pkg/application/services/planning"
	"github.com/tishbian-meshach/Manufacturing-ERP-sub000/pkg/application/services/stockposting"
	"github.com/tishbian-meshach/Manufacturing-ERP-sub000/pkg/domain/repositories"
	"github.com/tishbian-meshach/Manufacturing-ERP-sub000/pkg/infrastructure/config"
	"github.com/tishbian-meshach/Manufacturing-ERP-sub000/pkg/infrastructure/events"
	"github.com/tishbian-meshach/Manufacturing-ERP-sub000/pkg/infrastructure/repositories/sqlite"
)

// App bundles the services and repositories the subcommands run against
type App struct {
	Config *config.Config
	Logger *slog.Logger
	Tenant string

	Planning  *planning.Service
	Execution *execution.Service

	Orders      repositories.OrderRepository
	WorkOrders  repositories.WorkOrderRepository
	WorkCenters repositories.WorkCenterRepository
	Items       repositories.ItemRepository
	Stock       repositories.StockRepository
	Events      events.Store

	db *sqlite.DB
}

var (
	app        *App
	configPath string
	dbPath     string
	tenant     string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "mfgerp",
	Short: "Manufacturing order execution and gating",
	Long: `mfgerp manages manufacturing orders, their stage plans, and the work
orders that execute those plans.

Orders carry an immutable plan of work center assignments grouped into
stages. Work orders start only on assignments whose stage has been unlocked
by earlier progress; completing work orders cascades the parent order to
completed and posts the finished quantity to stock.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		app, err = openApp()
		return err
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return app.Close()
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "SQLite database path (overrides config)")
	rootCmd.PersistentFlags().StringVar(&tenant, "tenant", "", "Tenant scope (overrides config)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")

	rootCmd.AddCommand(loadCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(cancelCmd)
	rootCmd.AddCommand(startableCmd)
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(stockCmd)
}

// openApp resolves configuration, opens the store and wires the services
func openApp() (*App, error) {
	cfg := config.DefaultConfig()
	if configPath != "" {
		loaded, err := config.LoadFromFile(configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if dbPath != "" {
		cfg.Database.Path = dbPath
	}
	if tenant != "" {
		cfg.Tenant.Default = tenant
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	level, err := cfg.SlogLevel()
	if err != nil {
		return nil, err
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	db, err := sqlite.Open(cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", cfg.Database.Path, err)
	}
	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return NewApp(cfg, logger, db), nil
}

// NewApp wires services over an open database
func NewApp(cfg *config.Config, logger *slog.Logger, db *sqlite.DB) *App {
	orders := sqlite.NewOrderRepository(db)
	plans := sqlite.NewAssignmentRepository(db)
	workOrders := sqlite.NewWorkOrderRepository(db)
	workCenters := sqlite.NewWorkCenterRepository(db)
	items := sqlite.NewItemRepository(db)
	stock := sqlite.NewStockRepository(db)
	eventStore := events.NewInMemoryStore()

	// Completed orders post finished goods to stock in the same invocation.
	stockposting.NewPoster(stock, eventStore).Register(eventStore)

	return &App{
		Config:      cfg,
		Logger:      logger,
		Tenant:      cfg.Tenant.Default,
		Planning:    planning.NewService(orders, plans, workCenters, eventStore),
		Execution:   execution.NewService(orders, plans, workOrders, eventStore),
		Orders:      orders,
		WorkOrders:  workOrders,
		WorkCenters: workCenters,
		Items:       items,
		Stock:       stock,
		Events:      eventStore,
		db:          db,
	}
}

// Close releases the underlying database
func (a *App) Close() error {
	if a == nil || a.db == nil {
		return nil
	}
	return a.db.Close()
}
