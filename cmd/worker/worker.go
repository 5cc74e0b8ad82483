package worker

import (
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	novora "github.com/gummi-coder/Novora-sub009"
	"github.com/gummi-coder/Novora-sub009/internal/pkg/cli"
	"github.com/gummi-coder/Novora-sub009/internal/pkg/server"
	"github.com/gummi-coder/Novora-sub009/worker"
	"github.com/gummi-coder/Novora-sub009/worker/task"
)

var ErrInMemoryQueue = errors.New("the in-memory queue is consumed by the server command, run the worker with the redis queue")

func AddWorkerCommand(a *cli.App) *cobra.Command {
	var concurrency int
	var metricsPort uint32

	cmd := &cobra.Command{
		Use:   "worker",
		Short: "Start the webhook delivery worker",
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.InMemory() {
				return ErrInMemoryQueue
			}

			if concurrency <= 0 {
				concurrency = a.Config.Queue.Concurrency
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			consumer := worker.NewConsumer(a.Redis, concurrency, a.Logger)
			consumer.RegisterHandlers(novora.WebhookDeliveryProcessor, task.ProcessWebhookDelivery(a.DeliveryProcessor()))

			if err := consumer.Start(); err != nil {
				return err
			}
			defer consumer.Stop()

			a.Logger.Infof("started novora worker with concurrency %d", concurrency)

			if metricsPort == 0 {
				<-ctx.Done()
				return nil
			}

			router := chi.NewRouter()
			router.Handle("/metrics", promhttp.HandlerFor(a.Registry, promhttp.HandlerOpts{}))

			srv := server.NewServer("", metricsPort, a.Logger)
			srv.SetHandler(router)

			return srv.Listen(ctx)
		},
	}

	cmd.Flags().IntVar(&concurrency, "concurrency", 0, "Number of deliveries processed at once")
	cmd.Flags().Uint32Var(&metricsPort, "metrics-port", 5006, "Port serving /metrics, 0 disables it")

	return cmd
}
