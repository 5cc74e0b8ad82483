package datastore

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/tidwall/gjson"
)

var ErrInvalidPayload = errors.New("payload is not a valid JSON document")

// Payload is an event body held as its serialized JSON form. It is
// serialized exactly once, so the stored, signed and sent bytes are the same.
type Payload []byte

// NewPayload serializes v. json.RawMessage and []byte values are
// treated as already-serialized JSON.
func NewPayload(v interface{}) (Payload, error) {
	switch t := v.(type) {
	case Payload:
		return ParsePayload(t)
	case json.RawMessage:
		return ParsePayload(t)
	case []byte:
		return ParsePayload(t)
	}

	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	return Payload(b), nil
}

// ParsePayload validates b and returns it in compact form.
func ParsePayload(b []byte) (Payload, error) {
	if len(bytes.TrimSpace(b)) == 0 || !gjson.ValidBytes(b) {
		return nil, ErrInvalidPayload
	}

	buf := &bytes.Buffer{}
	if err := json.Compact(buf, b); err != nil {
		return nil, ErrInvalidPayload
	}

	return Payload(buf.Bytes()), nil
}

func (p Payload) Bytes() []byte {
	return []byte(p)
}

// Get returns the value at a gjson path, e.g. "survey.id".
func (p Payload) Get(path string) gjson.Result {
	return gjson.GetBytes(p, path)
}

func (p Payload) MarshalJSON() ([]byte, error) {
	if len(p) == 0 {
		return []byte("null"), nil
	}
	return p, nil
}

func (p *Payload) UnmarshalJSON(b []byte) error {
	if p == nil {
		return errors.New("datastore.Payload: UnmarshalJSON on nil pointer")
	}

	*p = append((*p)[0:0], b...)
	return nil
}
