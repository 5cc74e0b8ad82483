package util

import (
	"bytes"

	"github.com/vmihailenco/msgpack/v5"
)

// EncodeMsgPack encodes payload using its json struct tags as field names.
func EncodeMsgPack(payload interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetCustomStructTag("json")

	if err := enc.Encode(payload); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func DecodeMsgPack(pack []byte, target interface{}) error {
	dec := msgpack.NewDecoder(bytes.NewReader(pack))
	dec.SetCustomStructTag("json")

	return dec.Decode(target)
}
