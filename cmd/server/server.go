package server

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/hibiken/asynq"
	"github.com/spf13/cobra"

	novora "github.com/gummi-coder/Novora-sub009"
	"github.com/gummi-coder/Novora-sub009/api"
	"github.com/gummi-coder/Novora-sub009/api/types"
	"github.com/gummi-coder/Novora-sub009/internal/pkg/cli"
	"github.com/gummi-coder/Novora-sub009/internal/pkg/server"
	"github.com/gummi-coder/Novora-sub009/queue/memqueue"
	"github.com/gummi-coder/Novora-sub009/worker"
	"github.com/gummi-coder/Novora-sub009/worker/task"
)

func AddServerCommand(a *cli.App) *cobra.Command {
	var host string
	var port uint32
	var withWorkers bool

	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.Config
			if cmd.Flags().Changed("host") {
				cfg.Server.HTTP.Host = host
			}
			if cmd.Flags().Changed("port") {
				cfg.Server.HTTP.Port = port
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			processor := task.ProcessWebhookDelivery(a.DeliveryProcessor())

			consumed := make(chan struct{})
			switch {
			case a.InMemory():
				mux := asynq.NewServeMux()
				mux.HandleFunc(string(novora.WebhookDeliveryProcessor), processor)

				go func() {
					defer close(consumed)
					a.Queue.(*memqueue.MemQueue).Consume(ctx, mux, cfg.Queue.Concurrency)
				}()
			case withWorkers:
				consumer := worker.NewConsumer(a.Redis, cfg.Queue.Concurrency, a.Logger)
				consumer.RegisterHandlers(novora.WebhookDeliveryProcessor, processor)
				if err := consumer.Start(); err != nil {
					return err
				}
				defer consumer.Stop()
				close(consumed)
			default:
				close(consumed)
			}

			h := api.NewApplicationHandler(&types.APIOptions{
				Webhooks: a.WebhookService(),
				Logger:   a.Logger,
				Metrics:  a.Metrics,
				Registry: a.Registry,
			})

			srv := server.NewServer(cfg.Server.HTTP.Host, cfg.Server.HTTP.Port, a.Logger)
			srv.SetHandler(h.BuildRoutes())

			a.Logger.Infof("started novora server on %s", srv.Addr())

			err := srv.Listen(ctx)
			stop()
			<-consumed

			return err
		},
	}

	cmd.Flags().StringVar(&host, "host", "", "Host to bind the API to")
	cmd.Flags().Uint32Var(&port, "port", 0, "Server port")
	cmd.Flags().BoolVar(&withWorkers, "with-workers", false, "Also consume the redis delivery queue in this process")

	return cmd
}
