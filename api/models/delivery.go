package models

import (
	"strconv"

	"github.com/gummi-coder/Novora-sub009/datastore"
)

const (
	defaultDeliveryLimit = 50
	maxDeliveryLimit     = 500
)

type DeliveryResponse struct {
	*datastore.WebhookDelivery
}

type QueryListDeliveries struct {
	Limit int
}

// NewQueryListDeliveries parses the limit query parameter, falling back to
// the default for missing or invalid values.
func NewQueryListDeliveries(rawLimit string) *QueryListDeliveries {
	limit, err := strconv.Atoi(rawLimit)
	if err != nil || limit <= 0 {
		limit = defaultDeliveryLimit
	}

	if limit > maxDeliveryLimit {
		limit = maxDeliveryLimit
	}

	return &QueryListDeliveries{Limit: limit}
}
