package api

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	novora "github.com/gummi-coder/Novora-sub009"
	"github.com/gummi-coder/Novora-sub009/api/handlers"
	"github.com/gummi-coder/Novora-sub009/api/types"
	"github.com/gummi-coder/Novora-sub009/internal/pkg/middleware"
	"github.com/gummi-coder/Novora-sub009/util"
)

type ApplicationHandler struct {
	Router http.Handler
	A      *types.APIOptions
}

func NewApplicationHandler(a *types.APIOptions) *ApplicationHandler {
	return &ApplicationHandler{A: a}
}

func (a *ApplicationHandler) BuildRoutes() *chi.Mux {
	m := middleware.NewMiddleware(&middleware.CreateMiddleware{
		Logger:  a.A.Logger,
		Metrics: a.A.Metrics,
	})

	router := chi.NewRouter()

	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.Recoverer)
	router.Use(m.WriteRequestIDHeader)
	router.Use(m.InstrumentRequests())
	router.Use(m.LogHttpRequest())
	router.Use(m.JsonResponse)

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		_ = render.Render(w, r, util.NewServerResponse(fmt.Sprintf("Novora %v", novora.GetVersion()), nil, http.StatusOK))
	})

	if a.A.Registry != nil {
		router.Handle("/metrics", promhttp.HandlerFor(a.A.Registry, promhttp.HandlerOpts{}))
	}

	h := handlers.NewHandler(a.A)

	router.Route("/api/v1", func(v1Router chi.Router) {
		v1Router.Route("/tenants/{tenantID}/webhooks", func(tenantRouter chi.Router) {
			tenantRouter.Post("/", h.CreateWebhook)
			tenantRouter.Get("/", h.ListWebhooks)
		})

		v1Router.Route("/webhooks/{webhookID}", func(webhookRouter chi.Router) {
			webhookRouter.Get("/", h.GetWebhook)
			webhookRouter.Delete("/", h.DeleteWebhook)
			webhookRouter.Put("/status", h.UpdateWebhookStatus)
			webhookRouter.Post("/trigger", h.TriggerWebhook)
			webhookRouter.Get("/deliveries", h.ListDeliveries)
		})

		v1Router.Route("/deliveries/{deliveryID}", func(deliveryRouter chi.Router) {
			deliveryRouter.Get("/", h.GetDelivery)
			deliveryRouter.Post("/retry", h.RetryDelivery)
		})
	})

	a.Router = router

	return router
}
