// Package daemon wires configuration, storage and the HTTP API into a
// running tagcenter server.
package daemon

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tagcenter/tagcenter/internal/api"
	"github.com/tagcenter/tagcenter/internal/app/reconcile"
	"github.com/tagcenter/tagcenter/internal/app/statement"
	"github.com/tagcenter/tagcenter/internal/domain"
	"github.com/tagcenter/tagcenter/internal/infra/observability"
	"github.com/tagcenter/tagcenter/internal/infra/postgres"
	"github.com/tagcenter/tagcenter/internal/infra/sqlite"
)

// Daemon owns the store and everything built on top of it.
type Daemon struct {
	Config     Config
	Store      domain.Store
	Tracer     *observability.Tracer
	Service    *reconcile.Service
	Statements *statement.Builder
}

// OpenStore opens the configured store and applies its migrations.
func OpenStore(ctx context.Context, cfg DatabaseConfig) (domain.Store, error) {
	switch cfg.Driver {
	case DriverPostgres:
		db, err := postgres.Open(ctx, cfg.URI)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		return db, nil
	case DriverSQLite, "":
		db, err := sqlite.Open(cfg.Dir)
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		return db, nil
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.Driver)
	}
}

// New opens the store and builds the services.
func New(ctx context.Context, cfg Config) (*Daemon, error) {
	store, err := OpenStore(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}
	log.Printf("[daemon] %s store ready", cfg.Database.Driver)

	var tracer *observability.Tracer
	if cfg.Tracing.Enabled {
		tracer = observability.NewTracer(observability.TracerConfig{
			Enabled:  true,
			MaxSpans: cfg.Tracing.MaxSpans,
		})
	}

	return &Daemon{
		Config:     cfg,
		Store:      store,
		Tracer:     tracer,
		Service:    reconcile.New(store, tracer),
		Statements: statement.NewBuilder(store),
	}, nil
}

// Handler builds the HTTP API for the daemon's services.
func (d *Daemon) Handler() (http.Handler, error) {
	srv := api.NewServer(d.Service, d.Statements, d.Tracer)
	if d.Config.Metrics.Enabled {
		srv.EnableMetrics()
	}
	timeout, err := d.Config.RequestTimeout()
	if err != nil {
		return nil, err
	}
	srv.SetRequestTimeout(timeout)
	return srv.Handler(), nil
}

// Serve listens on the configured address until ctx is cancelled or a
// SIGINT/SIGTERM arrives, then drains in-flight requests.
func (d *Daemon) Serve(ctx context.Context) error {
	handler, err := d.Handler()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	httpServer := &http.Server{
		Addr:              d.Config.API.Addr(),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("[daemon] listening on %s", httpServer.Addr)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Println("[daemon] shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// Close releases the store.
func (d *Daemon) Close() error {
	return d.Store.Close()
}
