package hooks

import (
	"errors"
	"io"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/gummi-coder/Novora-sub009/cache"
	"github.com/gummi-coder/Novora-sub009/config"
	mstore "github.com/gummi-coder/Novora-sub009/database/memory"
	rstore "github.com/gummi-coder/Novora-sub009/database/redis"
	"github.com/gummi-coder/Novora-sub009/internal/pkg/cli"
	"github.com/gummi-coder/Novora-sub009/internal/pkg/limiter"
	mlimiter "github.com/gummi-coder/Novora-sub009/internal/pkg/limiter/memory"
	rlimiter "github.com/gummi-coder/Novora-sub009/internal/pkg/limiter/redis"
	"github.com/gummi-coder/Novora-sub009/internal/pkg/locker"
	"github.com/gummi-coder/Novora-sub009/internal/pkg/metrics"
	"github.com/gummi-coder/Novora-sub009/internal/pkg/rdb"
	"github.com/gummi-coder/Novora-sub009/pkg/apperror"
	"github.com/gummi-coder/Novora-sub009/pkg/audit"
	"github.com/gummi-coder/Novora-sub009/pkg/log"
	"github.com/gummi-coder/Novora-sub009/queue/memqueue"
	redisQueue "github.com/gummi-coder/Novora-sub009/queue/redis"
)

const sentryFlushTimeout = 2 * time.Second

func PreRun(app *cli.App) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfgPath, err := cmd.Flags().GetString("config")
		if err != nil {
			return err
		}

		cfg, err := config.Load(cfgPath)
		if err != nil {
			return err
		}

		if err = overrideFromFlags(cmd, &cfg); err != nil {
			return err
		}

		lo := log.NewLogger(os.Stdout)
		lvl, err := log.ParseLevel(cfg.Logger.Level)
		if err != nil {
			return err
		}
		lo.SetLevel(lvl)

		reporter, err := apperror.NewReporter(lo, cfg.Sentry.Dsn, cfg.Environment)
		if err != nil {
			return err
		}

		reg := metrics.NewRegistry()

		app.Config = cfg
		app.Logger = lo
		app.Reporter = reporter
		app.Audit = audit.NewLogger(lo)
		app.Registry = reg
		app.Metrics = metrics.NewMetrics(reg)

		if cfg.Queue.Type == config.InMemoryQueueProvider {
			buildInMemory(app)
			lo.Warn("running with the in-memory queue and store, data is lost on restart")
			return nil
		}

		return buildRedis(app, cfg)
	}
}

func buildInMemory(app *cli.App) {
	store := mstore.NewStore()

	app.WebhookRepo = store.WebhookRepo()
	app.DeliveryRepo = store.DeliveryRepo()
	app.Queue = memqueue.NewQueue()
	app.Locker = locker.NewMemoryLocker()
	app.Limiter = newLimiter(app.Config, func() limiter.RateLimiter { return mlimiter.NewMemoryRateLimiter() })
}

func buildRedis(app *cli.App, cfg config.Configuration) error {
	r, err := rdb.NewClientFromConfig(cfg.Redis)
	if err != nil {
		return err
	}

	q := redisQueue.NewQueue(r)
	if err = app.Registry.Register(q); err != nil {
		return err
	}

	app.Redis = r
	app.Queue = q
	app.WebhookRepo = rstore.NewWebhookRepo(r, cache.NewRedisCache(r))
	app.DeliveryRepo = rstore.NewDeliveryRepo(r)
	app.Locker = locker.NewRedisLocker(r.Client())
	app.Limiter = newLimiter(cfg, func() limiter.RateLimiter { return rlimiter.NewRedisLimiter(r.Client()) })

	return nil
}

func newLimiter(cfg config.Configuration, build func() limiter.RateLimiter) limiter.RateLimiter {
	if !cfg.Delivery.RateLimit.Enabled {
		return limiter.NewNoopLimiter()
	}
	return build()
}

func PostRun(app *cli.App) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		apperror.Flush(app.Reporter, sentryFlushTimeout)

		if app.Queue != nil {
			closeWithError(app.Queue)
		}

		// the asynq client owns the connection it was built from, so
		// closing the queue may already have closed redis.
		if app.Redis != nil {
			if err := app.Redis.Close(); err != nil && !errors.Is(err, redis.ErrClosed) {
				return err
			}
		}

		return nil
	}
}

// overrideFromFlags applies the persistent flags the user set explicitly.
func overrideFromFlags(cmd *cobra.Command, cfg *config.Configuration) error {
	flags := cmd.Flags()

	if flags.Changed("log-level") {
		v, err := flags.GetString("log-level")
		if err != nil {
			return err
		}
		cfg.Logger.Level = v
	}

	if flags.Changed("queue") {
		v, err := flags.GetString("queue")
		if err != nil {
			return err
		}
		cfg.Queue.Type = config.QueueProvider(v)
	}

	if flags.Changed("redis") {
		v, err := flags.GetString("redis")
		if err != nil {
			return err
		}
		cfg.Redis.Dsn = v
	}

	return config.Validate(cfg)
}

func closeWithError(closer io.Closer) {
	if err := closer.Close(); err != nil {
		log.WithError(err).Error("an error occurred while closing the client")
	}
}
