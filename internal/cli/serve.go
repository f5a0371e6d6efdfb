package cli

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"driveway_xpto/internal/adapter/http/handlers"
	"driveway_xpto/internal/adapter/http/routes"
	"driveway_xpto/internal/adapter/persistence/repository"
	"driveway_xpto/internal/config"
	"driveway_xpto/internal/domain/entities"
	"driveway_xpto/internal/infrastructure/database"
	"driveway_xpto/internal/usecase"

	"github.com/spf13/cobra"
)

func newServeCmd(load configLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return runServer(ctx, cfg)
		},
	}
}

func runServer(ctx context.Context, cfg *config.Config) error {
	log.Printf("[serve] connecting to database host=%s name=%s", cfg.DB.Host, cfg.DB.Name)
	db, err := database.Connect(ctx, cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: routes.NewRouter(buildHandlers(db.DB, db, cfg), cfg.Server),
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("[serve] listening addr=%s strict_status=%t", cfg.Server.Addr, cfg.Workflow.StrictStatus)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Printf("[serve] shutting down timeout=%s", cfg.Server.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}

// buildHandlers wires repositories into use cases into handlers.
func buildHandlers(db *sql.DB, health handlers.HealthChecker, cfg *config.Config) routes.Handlers {
	clientRepo := repository.NewClientMySQLRepository(db)
	requestRepo := repository.NewRequestMySQLRepository(db)
	quoteRepo := repository.NewQuoteMySQLRepository(db)
	orderRepo := repository.NewOrderMySQLRepository(db)
	billRepo := repository.NewBillMySQLRepository(db)
	reportRepo := repository.NewReportMySQLRepository(db)

	policy := entities.StatusPolicy{Strict: cfg.Workflow.StrictStatus}

	return routes.Handlers{
		Client:  handlers.NewClientHandler(usecase.NewClientUseCase(clientRepo)),
		Request: handlers.NewRequestHandler(usecase.NewRequestUseCase(requestRepo)),
		Quote:   handlers.NewQuoteHandler(usecase.NewQuoteUseCase(quoteRepo, policy)),
		Order:   handlers.NewOrderHandler(usecase.NewOrderUseCase(orderRepo, quoteRepo, cfg.Billing.DueDays)),
		Bill:    handlers.NewBillHandler(usecase.NewBillUseCase(billRepo, policy)),
		Lookup:  handlers.NewLookupHandler(usecase.NewLookupUseCase(clientRepo, requestRepo, quoteRepo, orderRepo, billRepo)),
		Report:  handlers.NewReportHandler(usecase.NewReportUseCase(reportRepo, cfg.Reports.OverdueGraceDays)),
		Ping:    handlers.NewPingHandler(health),
	}
}
