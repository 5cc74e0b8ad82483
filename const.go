package novora

import "time"

const (
	HttpPost HttpMethod = "POST"
	HttpGet  HttpMethod = "GET"
)

const (
	HTTP_TIMEOUT             = 10
	HTTP_TIMEOUT_IN_DURATION = time.Duration(HTTP_TIMEOUT) * time.Second

	// MAX_RESPONSE_SIZE caps how much of an endpoint's response body is recorded.
	MAX_RESPONSE_SIZE = 50 * 1024

	DEFAULT_MAX_RETRIES    = 3
	DEFAULT_RETRY_DELAY_MS = 1000
	DEFAULT_BACKOFF_FACTOR = 2

	RATE_LIMIT          = 1000
	RATE_LIMIT_DURATION = 60

	CACHE_TTL = 5 * time.Minute
)

// Outbound delivery headers.
const (
	SignatureHeader  = "X-Webhook-Signature"
	EventHeader      = "X-Webhook-Event"
	DeliveryIDHeader = "X-Webhook-Delivery"
)
