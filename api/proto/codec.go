package proto

import (
	"fmt"

	"google.golang.org/grpc/encoding"
	googleproto "google.golang.org/protobuf/proto"
)

// wireMessage is implemented by every message type in this package.
type wireMessage interface {
	MarshalWire() ([]byte, error)
	UnmarshalWire([]byte) error
}

type codec struct{}

func (codec) Name() string { return "proto" }

func (codec) Marshal(v interface{}) ([]byte, error) {
	switch m := v.(type) {
	case wireMessage:
		return m.MarshalWire()
	case googleproto.Message:
		return googleproto.Marshal(m)
	default:
		return nil, fmt.Errorf("proto: cannot marshal %T", v)
	}
}

func (codec) Unmarshal(data []byte, v interface{}) error {
	switch m := v.(type) {
	case wireMessage:
		return m.UnmarshalWire(data)
	case googleproto.Message:
		return googleproto.Unmarshal(data, m)
	default:
		return fmt.Errorf("proto: cannot unmarshal into %T", v)
	}
}

// Codec must be forced explicitly onto any grpc.Server or grpc.ClientConn
// carrying ManagerService, via grpc.ForceServerCodec/grpc.ForceCodec. It is
// deliberately not registered through encoding.RegisterCodec: that registry
// is keyed by name ("proto") and shared with grpc-go's own default codec,
// so which one wins depends on unrelated packages' init order. Forcing it
// per-server/per-client sidesteps that. It falls back to the real
// protobuf-go marshaler for messages that aren't ours (grpc's health and
// reflection services, which share the same server), so a single codec
// serves both.
var Codec encoding.Codec = codec{}

var _ encoding.Codec = Codec
