package pledge

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/streadway/amqp"
	"golang.org/x/time/rate"

	"github.com/magabrotheeeer/pledge-customizer/internal/cache"
	"github.com/magabrotheeeer/pledge-customizer/internal/config"
	"github.com/magabrotheeeer/pledge-customizer/internal/i18n"
	"github.com/magabrotheeeer/pledge-customizer/internal/lib/metrics"
	"github.com/magabrotheeeer/pledge-customizer/internal/lib/rabbitmq"
	"github.com/magabrotheeeer/pledge-customizer/internal/lib/sl"
	"github.com/magabrotheeeer/pledge-customizer/internal/migrations"
	pledgeservice "github.com/magabrotheeeer/pledge-customizer/internal/services/pledge"
	"github.com/magabrotheeeer/pledge-customizer/internal/storage/repository"
)

const shutdownTimeout = 15 * time.Second

type App struct {
	server    *http.Server
	logger    *slog.Logger
	db        *repository.Storage
	cache     *cache.Cache
	conn      *amqp.Connection
	publisher *rabbitmq.Publisher
}

// logPublisher используется, когда брокер не настроен: события только пишутся в лог.
type logPublisher struct {
	log *slog.Logger
}

func (p logPublisher) Publish(_ context.Context, routingKey string, message any) error {
	p.log.Info("event not published, broker is not configured",
		slog.String("routing_key", routingKey), slog.Any("event", message))
	return nil
}

func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := repository.New(ctx, cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, cfg.MigrationsPath); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err = repository.CheckDatabaseReady(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	catalog, err := i18n.Load(cfg.TranslationsPath)
	if err != nil {
		_ = db.Close()
		_ = cacheRedis.Close()
		return nil, err
	}

	app := &App{
		logger: logger,
		db:     db,
		cache:  cacheRedis,
	}

	var publisher pledgeservice.Publisher = logPublisher{log: logger}
	if cfg.RabbitMQ.URL != "" {
		conn, err := rabbitmq.Connect(ctx, cfg.RabbitMQ.URL, cfg.RabbitMQ.Retries, cfg.RabbitMQ.Delay)
		if err != nil {
			app.close()
			return nil, err
		}
		app.conn = conn
		ch, err := rabbitmq.SetupChannel(conn, cfg.RabbitMQ.Exchange, rabbitmq.GetPledgeQueues())
		if err != nil {
			app.close()
			return nil, err
		}
		app.publisher = rabbitmq.NewPublisher(ch, cfg.RabbitMQ.Exchange)
		publisher = app.publisher
	} else {
		logger.Warn("rabbitmq url is empty, pledge events will only be logged")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	service := pledgeservice.NewService(db, cacheRedis, publisher, catalog, m, logger, cfg.CacheTTL)
	limiter := rate.NewLimiter(rate.Limit(cfg.RateLimit.RPS), cfg.RateLimit.Burst)

	app.server = &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      NewRouter(logger, service, db, limiter, reg),
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}
	return app, nil
}

func (a *App) Run(ctx context.Context) error {
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
		a.close()
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		a.close()
		return err
	}
}

// close освобождает соединения с брокером, кешем и базой.
func (a *App) close() {
	if a.publisher != nil {
		if err := a.publisher.Close(); err != nil {
			a.logger.Warn("failed to close rabbitmq channel", sl.Err(err))
		}
	}
	if a.conn != nil {
		if err := a.conn.Close(); err != nil {
			a.logger.Warn("failed to close rabbitmq connection", sl.Err(err))
		}
	}
	if a.cache != nil {
		if err := a.cache.Close(); err != nil {
			a.logger.Warn("failed to close redis client", sl.Err(err))
		}
	}
	if err := a.db.Close(); err != nil {
		a.logger.Warn("failed to close database", sl.Err(err))
	}
}
