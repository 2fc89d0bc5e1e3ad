// Package server wires the identcore composition root: storage, token
// revocation, the account service and the gRPC and ops servers.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dmitrijs2005/identcore/internal/cryptox"
	"github.com/dmitrijs2005/identcore/internal/logging"
	"github.com/dmitrijs2005/identcore/internal/server/auth"
	"github.com/dmitrijs2005/identcore/internal/server/config"
	"github.com/dmitrijs2005/identcore/internal/server/document"
	"github.com/dmitrijs2005/identcore/internal/server/metrics"
	"github.com/dmitrijs2005/identcore/internal/server/ops"
	"github.com/dmitrijs2005/identcore/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/identcore/internal/server/services"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"

	gs "github.com/dmitrijs2005/identcore/internal/server/grpc"
)

type App struct {
	config         *config.Config
	logger         logging.Logger
	repos          repomanager.RepositoryManager
	revoked        *auth.MemoryRevocationStore
	redis          *redis.Client
	registry       *prometheus.Registry
	accountService *services.AccountService
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	logger := logging.New(c.LogBackend, c.LogLevel, os.Stdout)

	repos, err := repomanager.New(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("storage init error: %w", err)
	}

	if err := repos.RunMigrations(ctx); err != nil {
		_ = repos.Close(ctx)
		return nil, fmt.Errorf("migrations error: %w", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	app := &App{config: c, logger: logger, repos: repos, registry: registry}

	var store auth.RevocationStore
	switch c.RevocationBackend {
	case config.RevocationBackendRedis:
		app.redis = redis.NewClient(&redis.Options{Addr: c.RedisAddr, Password: c.RedisPassword, DB: c.RedisDB})
		if err := app.redis.Ping(ctx).Err(); err != nil {
			_ = repos.Close(ctx)
			return nil, fmt.Errorf("redis init error: %w", err)
		}
		store = auth.NewRedisRevocationStore(app.redis, nil)
	default:
		app.revoked = auth.NewMemoryRevocationStore()
		metrics.RegisterRevokedTokens(registry, app.revoked.Len)
		store = app.revoked
	}

	issuer := auth.NewIssuer([]byte(c.SecretKey), store, nil)
	hasher := cryptox.NewPasswordHasher(c.PasswordHashCost)

	app.accountService = services.NewAccountService(repos.Accounts(), hasher, issuer, logger, services.AccountServiceOptions{
		TokenTTL:  c.AccessTokenValidityDuration,
		Sequences: document.ParseSequencePolicy(c.EmptySequencePolicy),
	})

	return app, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.accountService, metrics.NewRPCMetrics(app.registry))

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) startOpsServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s := ops.NewServer(app.config.OpsAddr, ops.NewRouter(app.registry, app.repos, app.logger), app.logger)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// compactRevocations drops expired entries from the in-process revocation
// set. Redis expires its entries by TTL instead.
func (app *App) compactRevocations(ctx context.Context) {
	if app.revoked == nil || app.config.RevocationCompactInterval <= 0 {
		return
	}

	ticker := time.NewTicker(app.config.RevocationCompactInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if n := app.revoked.Compact(now); n > 0 {
				app.logger.Info(ctx, "revocation set compacted", "removed", n)
			}
		}
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "storage", app.config.StorageBackend, "revocation", app.config.RevocationBackend)

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(3)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()
	go func() {
		defer wg.Done()
		app.startOpsServer(ctx, cancelFunc)
	}()
	go func() {
		defer wg.Done()
		app.compactRevocations(ctx)
	}()

	wg.Wait()

	app.close()
}

func (app *App) close() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.repos.Close(ctx); err != nil {
		app.logger.Error(ctx, "storage close error", "error", err)
	}
	if app.redis != nil {
		if err := app.redis.Close(); err != nil {
			app.logger.Error(ctx, "redis close error", "error", err)
		}
	}
	app.logger.Info(ctx, "App stopped")
}
