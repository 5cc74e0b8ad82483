package types

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/gummi-coder/Novora-sub009/internal/pkg/metrics"
	"github.com/gummi-coder/Novora-sub009/pkg/log"
	"github.com/gummi-coder/Novora-sub009/services"
)

type APIOptions struct {
	Webhooks *services.WebhookService
	Logger   log.StdLogger
	Metrics  *metrics.Metrics
	Registry *prometheus.Registry
}
