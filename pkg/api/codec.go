package api

import (
	"encoding/json"

	"google.golang.org/grpc/encoding"
)

// CodecName is the content-subtype the service travels with. Clients
// select it per call with grpc.CallContentSubtype(CodecName); servers
// resolve it from the codec registry by name.
const CodecName = "json"

// jsonCodec encodes and decodes the service messages as JSON.
type jsonCodec struct{}

func (jsonCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

func (jsonCodec) Name() string {
	return CodecName
}

// RegisterCodec registers the JSON codec with the gRPC codec registry
// so both clients and servers of this service can use it. Safe to call
// more than once.
func RegisterCodec() {
	encoding.RegisterCodec(jsonCodec{})
}
