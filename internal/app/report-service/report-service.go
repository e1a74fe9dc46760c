package reportservice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/streadway/amqp"

	"github.com/magabrotheeeer/user-statistics/internal/cache"
	"github.com/magabrotheeeer/user-statistics/internal/config"
	"github.com/magabrotheeeer/user-statistics/internal/http/handlers/health"
	"github.com/magabrotheeeer/user-statistics/internal/http/middlewarectx"
	"github.com/magabrotheeeer/user-statistics/internal/lib/progress"
	"github.com/magabrotheeeer/user-statistics/internal/lib/sl"
	"github.com/magabrotheeeer/user-statistics/internal/migrations"
	"github.com/magabrotheeeer/user-statistics/internal/rabbitmq"
	reportsvc "github.com/magabrotheeeer/user-statistics/internal/services/report"
	"github.com/magabrotheeeer/user-statistics/internal/storage/memory"
	"github.com/magabrotheeeer/user-statistics/internal/storage/postgresql"
)

const shutdownTimeout = 15 * time.Second

// App держит HTTP сервер и все открытые подключения.
type App struct {
	server  *http.Server
	logger  *slog.Logger
	closers []namedCloser
}

type namedCloser struct {
	name  string
	close func() error
}

type repository interface {
	reportsvc.Repository
	health.Pinger
}

// New собирает приложение по конфигу. При ошибке уже открытые
// подключения закрываются.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (app *App, err error) {
	const op = "app.reportservice.New"

	a := &App{logger: logger}
	defer func() {
		if err != nil {
			a.close()
		}
	}()

	policy, err := progress.New(cfg.MaxDurationMs)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	deps := make(map[string]health.Pinger)

	repo, err := a.initStorage(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	deps["storage"] = repo

	var reportCache reportsvc.Cache = cache.Nop{}
	if cfg.AddressRedis != "" {
		cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		a.closers = append(a.closers, namedCloser{"redis", cacheRedis.Close})
		reportCache = cacheRedis
		deps["cache"] = cacheRedis
	} else {
		logger.Info("redis address is empty, caching disabled")
	}

	opts := []reportsvc.Option{reportsvc.WithCacheTTL(cfg.CacheTTL)}
	if cfg.URL != "" {
		publisher, err := a.initPublisher(cfg.RabbitMQ)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		opts = append(opts, reportsvc.WithNotifier(publisher))
	} else {
		logger.Info("rabbitmq url is empty, events disabled")
	}

	service := reportsvc.NewService(repo, reportCache, policy, logger, opts...)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, service, middlewarectx.NewLimiter(cfg.RPS, cfg.Burst), deps)

	a.server = &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}
	return a, nil
}

func (a *App) initStorage(ctx context.Context, cfg *config.Config) (repository, error) {
	switch cfg.StorageType {
	case config.StoragePostgres:
		db, err := postgresql.New(ctx, cfg.StorageConnectionString)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, namedCloser{"postgres", db.Close})
		if err := migrations.Run(db.DB); err != nil {
			return nil, err
		}
		a.logger.Info("using postgres storage")
		return db, nil
	case config.StorageMemory:
		a.logger.Info("using in-memory storage")
		return memory.New(), nil
	default:
		return nil, fmt.Errorf("unknown storage type %q", cfg.StorageType)
	}
}

func (a *App) initPublisher(cfg config.RabbitMQ) (*rabbitmq.Publisher, error) {
	conn, err := rabbitmq.Connect(cfg.URL, cfg.Retries, cfg.RetryDelay)
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, namedCloser{"rabbitmq", conn.Close})

	ch, err := rabbitmq.SetupChannel(conn, cfg.Exchange)
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, namedCloser{"rabbitmq channel", ch.Close})
	a.watchConnection(conn)

	return rabbitmq.NewPublisher(ch, cfg.Exchange, cfg.RoutingKey), nil
}

// watchConnection пишет в лог, если брокер закрыл соединение.
func (a *App) watchConnection(conn *amqp.Connection) {
	closed := conn.NotifyClose(make(chan *amqp.Error, 1))
	go func() {
		if amqpErr, ok := <-closed; ok && amqpErr != nil {
			a.logger.Error("rabbitmq connection closed", slog.String("reason", amqpErr.Reason))
		}
	}()
}

// Run запускает HTTP сервер и блокируется до отмены ctx или ошибки сервера.
func (a *App) Run(ctx context.Context) error {
	defer a.close()

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		return a.server.Shutdown(timeoutCtx)
	}
}

// close закрывает подключения в обратном порядке открытия.
func (a *App) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		c := a.closers[i]
		if err := c.close(); err != nil {
			a.logger.Warn("failed to close", slog.String("name", c.name), sl.Err(err))
		}
	}
	a.closers = nil
}
