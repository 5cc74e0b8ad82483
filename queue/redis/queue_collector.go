package redis

import (
	"github.com/prometheus/client_golang/prometheus"

	novora "github.com/gummi-coder/Novora-sub009"
)

const namespace = "novora"

var deliveryQueueSizeDesc = prometheus.NewDesc(
	prometheus.BuildFQName(namespace, "", "delivery_queue_tasks"),
	"Number of tasks in the webhook delivery queue by state",
	[]string{"state"}, nil,
)

func (q *RedisQueue) Describe(ch chan<- *prometheus.Desc) {
	ch <- deliveryQueueSizeDesc
}

func (q *RedisQueue) Collect(ch chan<- prometheus.Metric) {
	if q == nil {
		return
	}

	qinfo, err := q.inspector.GetQueueInfo(string(novora.WebhookDeliveryQueue))
	if err != nil {
		return
	}

	states := map[string]int{
		"pending":   qinfo.Pending,
		"scheduled": qinfo.Scheduled,
		"active":    qinfo.Active,
		"retry":     qinfo.Retry,
		"archived":  qinfo.Archived,
	}

	for state, n := range states {
		ch <- prometheus.MustNewConstMetric(deliveryQueueSizeDesc, prometheus.GaugeValue, float64(n), state)
	}
}
