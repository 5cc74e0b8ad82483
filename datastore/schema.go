package datastore

import (
	"errors"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

const webhookSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["id", "tenant_id", "name", "url", "events", "secret", "status", "retry_config"],
  "properties": {
    "id": {"type": "string", "minLength": 1},
    "tenant_id": {"type": "string", "minLength": 1},
    "name": {"type": "string", "minLength": 1, "maxLength": 255},
    "url": {"type": "string", "format": "uri", "pattern": "^https?://"},
    "events": {
      "type": "array",
      "minItems": 1,
      "uniqueItems": true,
      "items": {"type": "string", "minLength": 1}
    },
    "secret": {"type": "string", "pattern": "^[0-9a-f]{64}$"},
    "status": {"enum": ["active", "inactive"]},
    "retry_config": {
      "type": "object",
      "required": ["max_retries", "retry_delay", "backoff_factor"],
      "properties": {
        "max_retries": {"type": "integer", "minimum": 0, "maximum": 100},
        "retry_delay": {"type": "integer", "minimum": 1},
        "backoff_factor": {"type": "number", "minimum": 1}
      }
    }
  }
}`

var webhookSchemaLoader = gojsonschema.NewStringLoader(webhookSchema)

// ValidateWebhook checks w against the webhook JSON schema. The returned
// error lists every violation.
func ValidateWebhook(w *Webhook) error {
	result, err := gojsonschema.Validate(webhookSchemaLoader, gojsonschema.NewGoLoader(w))
	if err != nil {
		return err
	}

	if result.Valid() {
		return nil
	}

	messages := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		messages = append(messages, e.String())
	}

	return errors.New(strings.Join(messages, ", "))
}
