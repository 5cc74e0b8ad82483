package novora

import (
	"embed"
	"strings"
)

type HttpMethod string

type TaskName string

type QueueName string

type CacheKey string

type StoreKey string

//go:embed VERSION
var F embed.FS

func (c CacheKey) Get(suffix string) CacheKey {
	var name strings.Builder
	delim := ":"

	name.WriteString(string(c))
	name.WriteString(delim)
	name.WriteString(suffix)

	return CacheKey(name.String())
}

func (c CacheKey) String() string {
	return string(c)
}

func (k StoreKey) Get(suffix string) string {
	return string(k) + ":" + suffix
}

func (k StoreKey) String() string {
	return string(k)
}

func readVersion(fs embed.FS) ([]byte, error) {
	data, err := fs.ReadFile("VERSION")
	if err != nil {
		return nil, err
	}

	return data, nil
}

func GetVersion() string {
	v := "0.1.0"

	f, err := readVersion(F)
	if err != nil {
		return v
	}

	v = strings.TrimSpace(string(f))
	return v
}

const (
	WebhookDeliveryProcessor TaskName = "WebhookDeliveryProcessor"

	WebhookCacheKey CacheKey = "webhook_cache"
)

// store keys
const (
	WebhookKey            StoreKey = "webhook"
	WebhookDeliveryKey    StoreKey = "webhook_delivery"
	TenantWebhooksKey     StoreKey = "tenant_webhooks"
	WebhookDeliveriesKey  StoreKey = "webhook_deliveries"
	DeliveryLockKeyPrefix StoreKey = "novora:delivery_lock"
)

// queues
const (
	WebhookDeliveryQueue QueueName = "webhook_delivery_queue"
)
