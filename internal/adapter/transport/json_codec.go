package transport

import (
	"encoding/json"

	"connectrpc.com/connect"
)

const codecNameJSON = "json"

// jsonCodec marshals plain Go request and response types for Connect
// handlers. It replaces the built-in protojson codec registered under the
// same name.
type jsonCodec struct{}

var _ connect.Codec = jsonCodec{}

func (jsonCodec) Name() string { return codecNameJSON }

func (jsonCodec) Marshal(msg any) ([]byte, error) {
	return json.Marshal(msg)
}

func (jsonCodec) Unmarshal(data []byte, msg any) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, msg)
}
