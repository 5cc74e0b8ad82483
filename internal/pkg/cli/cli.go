package cli

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	flag "github.com/spf13/pflag"

	"github.com/gummi-coder/Novora-sub009/config"
	"github.com/gummi-coder/Novora-sub009/datastore"
	"github.com/gummi-coder/Novora-sub009/internal/pkg/limiter"
	"github.com/gummi-coder/Novora-sub009/internal/pkg/locker"
	"github.com/gummi-coder/Novora-sub009/internal/pkg/metrics"
	"github.com/gummi-coder/Novora-sub009/internal/pkg/rdb"
	"github.com/gummi-coder/Novora-sub009/net"
	"github.com/gummi-coder/Novora-sub009/pkg/apperror"
	"github.com/gummi-coder/Novora-sub009/pkg/audit"
	"github.com/gummi-coder/Novora-sub009/pkg/log"
	"github.com/gummi-coder/Novora-sub009/queue"
	"github.com/gummi-coder/Novora-sub009/queue/memqueue"
	"github.com/gummi-coder/Novora-sub009/services"
)

// App is the core dependency of the entire binary.
type App struct {
	Version string
	Config  config.Configuration
	Logger  log.StdLogger

	// Redis is nil when running with the in-memory queue.
	Redis *rdb.Redis
	Queue queue.Queuer

	WebhookRepo  datastore.WebhookRepository
	DeliveryRepo datastore.DeliveryRepository
	Locker       locker.Locker
	Limiter      limiter.RateLimiter

	Reporter apperror.Reporter
	Audit    audit.Logger
	Metrics  *metrics.Metrics
	Registry *prometheus.Registry
}

// InMemory reports whether deliveries are queued and consumed in-process.
func (a *App) InMemory() bool {
	_, ok := a.Queue.(*memqueue.MemQueue)
	return ok
}

func (a *App) WebhookService() *services.WebhookService {
	return &services.WebhookService{
		WebhookRepo:  a.WebhookRepo,
		DeliveryRepo: a.DeliveryRepo,
		Queue:        a.Queue,
		Reporter:     a.Reporter,
		Audit:        a.Audit,
		Metrics:      a.Metrics,
		Logger:       a.Logger,
		RetryDefaults: datastore.RetryConfig{
			MaxRetries:    a.Config.Delivery.Retry.MaxRetries,
			RetryDelay:    a.Config.Delivery.Retry.RetryDelay,
			BackoffFactor: a.Config.Delivery.Retry.BackoffFactor,
		},
	}
}

func (a *App) DeliveryProcessor() *services.DeliveryProcessor {
	return &services.DeliveryProcessor{
		WebhookRepo:   a.WebhookRepo,
		DeliveryRepo:  a.DeliveryRepo,
		Queue:         a.Queue,
		Dispatcher:    net.NewDispatcher(a.Config.Delivery.UserAgent, int64(a.Config.Delivery.MaxResponseSize), a.Logger),
		Locker:        a.Locker,
		Limiter:       a.Limiter,
		Audit:         a.Audit,
		Metrics:       a.Metrics,
		Logger:        a.Logger,
		Config:        a.Config.Delivery,
		SignatureHash: a.Config.Signature.Hash,
	}
}

type NovoraCli struct {
	cmd *cobra.Command
}

func NewCli(app *App) *NovoraCli {
	cmd := &cobra.Command{
		Use:     "novora",
		Version: app.Version,
		Short:   "Signed webhook delivery with retries",
	}

	return &NovoraCli{cmd: cmd}
}

func (c *NovoraCli) Flags() *flag.FlagSet {
	return c.cmd.PersistentFlags()
}

func (c *NovoraCli) PersistentPreRunE(fn func(*cobra.Command, []string) error) {
	c.cmd.PersistentPreRunE = fn
}

func (c *NovoraCli) PersistentPostRunE(fn func(*cobra.Command, []string) error) {
	c.cmd.PersistentPostRunE = fn
}

func (c *NovoraCli) AddCommand(subCmd *cobra.Command) {
	c.cmd.AddCommand(subCmd)
}

func (c *NovoraCli) Execute() error {
	return c.cmd.Execute()
}
