// Package proto defines the wire types for migration.proto by hand against
// google.golang.org/protobuf/encoding/protowire, rather than against a
// compiled-in FileDescriptorProto. A real descriptor can only be produced by
// running protoc, which this repository's build never does; protowire's
// tag/varint/length-delimited primitives let every message below marshal
// and unmarshal to the exact wire format migration.proto describes without
// one. Field numbers and wire types match the .proto file one-to-one, so
// the format stays interoperable with any protoc-generated peer.
package proto

import (
	"google.golang.org/protobuf/encoding/protowire"
)

type PodInfo struct {
	Name          string
	TemplateHash  string
	ContainerName string
}

func (x *PodInfo) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *PodInfo) GetTemplateHash() string {
	if x != nil {
		return x.TemplateHash
	}
	return ""
}

func (x *PodInfo) GetContainerName() string {
	if x != nil {
		return x.ContainerName
	}
	return ""
}

func (x *PodInfo) MarshalWire() ([]byte, error) {
	var b []byte
	if x.Name != "" {
		b = protowire.AppendTag(b, 1, protowire.BytesType)
		b = protowire.AppendString(b, x.Name)
	}
	if x.TemplateHash != "" {
		b = protowire.AppendTag(b, 2, protowire.BytesType)
		b = protowire.AppendString(b, x.TemplateHash)
	}
	if x.ContainerName != "" {
		b = protowire.AppendTag(b, 3, protowire.BytesType)
		b = protowire.AppendString(b, x.ContainerName)
	}
	return b, nil
}

func (x *PodInfo) UnmarshalWire(b []byte) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
		switch num {
		case 1:
			v, n := protowire.ConsumeString(b)
			if n < 0 {
				return protowire.ParseError(n)
			}
			x.Name = v
			b = b[n:]
		case 2:
			v, n := protowire.ConsumeString(b)
			if n < 0 {
				return protowire.ParseError(n)
			}
			x.TemplateHash = v
			b = b[n:]
		case 3:
			v, n := protowire.ConsumeString(b)
			if n < 0 {
				return protowire.ParseError(n)
			}
			x.ContainerName = v
			b = b[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return protowire.ParseError(n)
			}
			b = b[n:]
		}
	}
	return nil
}

type NotifyCheckpointRequest struct {
	ContainerId    string
	CheckpointPath string
	PodInfo        *PodInfo
}

func (x *NotifyCheckpointRequest) GetContainerId() string {
	if x != nil {
		return x.ContainerId
	}
	return ""
}

func (x *NotifyCheckpointRequest) GetCheckpointPath() string {
	if x != nil {
		return x.CheckpointPath
	}
	return ""
}

func (x *NotifyCheckpointRequest) GetPodInfo() *PodInfo {
	if x != nil {
		return x.PodInfo
	}
	return nil
}

func (x *NotifyCheckpointRequest) MarshalWire() ([]byte, error) {
	var b []byte
	if x.ContainerId != "" {
		b = protowire.AppendTag(b, 1, protowire.BytesType)
		b = protowire.AppendString(b, x.ContainerId)
	}
	if x.CheckpointPath != "" {
		b = protowire.AppendTag(b, 2, protowire.BytesType)
		b = protowire.AppendString(b, x.CheckpointPath)
	}
	if x.PodInfo != nil {
		sub, err := x.PodInfo.MarshalWire()
		if err != nil {
			return nil, err
		}
		b = protowire.AppendTag(b, 3, protowire.BytesType)
		b = protowire.AppendBytes(b, sub)
	}
	return b, nil
}

func (x *NotifyCheckpointRequest) UnmarshalWire(b []byte) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
		switch num {
		case 1:
			v, n := protowire.ConsumeString(b)
			if n < 0 {
				return protowire.ParseError(n)
			}
			x.ContainerId = v
			b = b[n:]
		case 2:
			v, n := protowire.ConsumeString(b)
			if n < 0 {
				return protowire.ParseError(n)
			}
			x.CheckpointPath = v
			b = b[n:]
		case 3:
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return protowire.ParseError(n)
			}
			sub := new(PodInfo)
			if err := sub.UnmarshalWire(v); err != nil {
				return err
			}
			x.PodInfo = sub
			b = b[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return protowire.ParseError(n)
			}
			b = b[n:]
		}
	}
	return nil
}

type NotifyCheckpointResponse struct{}

func (x *NotifyCheckpointResponse) MarshalWire() ([]byte, error) { return nil, nil }

func (x *NotifyCheckpointResponse) UnmarshalWire(b []byte) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
		n = protowire.ConsumeFieldValue(num, typ, b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
	}
	return nil
}

type RequestRestoreRequest struct {
	PodTemplateHash string
	PodName         string
}

func (x *RequestRestoreRequest) GetPodTemplateHash() string {
	if x != nil {
		return x.PodTemplateHash
	}
	return ""
}

func (x *RequestRestoreRequest) GetPodName() string {
	if x != nil {
		return x.PodName
	}
	return ""
}

func (x *RequestRestoreRequest) MarshalWire() ([]byte, error) {
	var b []byte
	if x.PodTemplateHash != "" {
		b = protowire.AppendTag(b, 1, protowire.BytesType)
		b = protowire.AppendString(b, x.PodTemplateHash)
	}
	if x.PodName != "" {
		b = protowire.AppendTag(b, 2, protowire.BytesType)
		b = protowire.AppendString(b, x.PodName)
	}
	return b, nil
}

func (x *RequestRestoreRequest) UnmarshalWire(b []byte) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
		switch num {
		case 1:
			v, n := protowire.ConsumeString(b)
			if n < 0 {
				return protowire.ParseError(n)
			}
			x.PodTemplateHash = v
			b = b[n:]
		case 2:
			v, n := protowire.ConsumeString(b)
			if n < 0 {
				return protowire.ParseError(n)
			}
			x.PodName = v
			b = b[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return protowire.ParseError(n)
			}
			b = b[n:]
		}
	}
	return nil
}

type RequestRestoreResponse struct {
	Found          bool
	CheckpointPath string
}

func (x *RequestRestoreResponse) GetFound() bool {
	if x != nil {
		return x.Found
	}
	return false
}

func (x *RequestRestoreResponse) GetCheckpointPath() string {
	if x != nil {
		return x.CheckpointPath
	}
	return ""
}

func (x *RequestRestoreResponse) MarshalWire() ([]byte, error) {
	var b []byte
	if x.Found {
		b = protowire.AppendTag(b, 1, protowire.VarintType)
		b = protowire.AppendVarint(b, 1)
	}
	if x.CheckpointPath != "" {
		b = protowire.AppendTag(b, 2, protowire.BytesType)
		b = protowire.AppendString(b, x.CheckpointPath)
	}
	return b, nil
}

func (x *RequestRestoreResponse) UnmarshalWire(b []byte) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
		switch num {
		case 1:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return protowire.ParseError(n)
			}
			x.Found = v != 0
			b = b[n:]
		case 2:
			v, n := protowire.ConsumeString(b)
			if n < 0 {
				return protowire.ParseError(n)
			}
			x.CheckpointPath = v
			b = b[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return protowire.ParseError(n)
			}
			b = b[n:]
		}
	}
	return nil
}

type PullImageRequest struct {
	CheckpointPath string
}

func (x *PullImageRequest) GetCheckpointPath() string {
	if x != nil {
		return x.CheckpointPath
	}
	return ""
}

func (x *PullImageRequest) MarshalWire() ([]byte, error) {
	var b []byte
	if x.CheckpointPath != "" {
		b = protowire.AppendTag(b, 1, protowire.BytesType)
		b = protowire.AppendString(b, x.CheckpointPath)
	}
	return b, nil
}

func (x *PullImageRequest) UnmarshalWire(b []byte) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
		switch num {
		case 1:
			v, n := protowire.ConsumeString(b)
			if n < 0 {
				return protowire.ParseError(n)
			}
			x.CheckpointPath = v
			b = b[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return protowire.ParseError(n)
			}
			b = b[n:]
		}
	}
	return nil
}

type PullImageResponse struct {
	Chunk []byte
}

func (x *PullImageResponse) GetChunk() []byte {
	if x != nil {
		return x.Chunk
	}
	return nil
}

func (x *PullImageResponse) MarshalWire() ([]byte, error) {
	var b []byte
	if len(x.Chunk) > 0 {
		b = protowire.AppendTag(b, 1, protowire.BytesType)
		b = protowire.AppendBytes(b, x.Chunk)
	}
	return b, nil
}

func (x *PullImageResponse) UnmarshalWire(b []byte) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
		switch num {
		case 1:
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return protowire.ParseError(n)
			}
			chunk := make([]byte, len(v))
			copy(chunk, v)
			x.Chunk = chunk
			b = b[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return protowire.ParseError(n)
			}
			b = b[n:]
		}
	}
	return nil
}

type FinishRestoreRequest struct {
	ContainerId string
	Success     bool
}

func (x *FinishRestoreRequest) GetContainerId() string {
	if x != nil {
		return x.ContainerId
	}
	return ""
}

func (x *FinishRestoreRequest) GetSuccess() bool {
	if x != nil {
		return x.Success
	}
	return false
}

func (x *FinishRestoreRequest) MarshalWire() ([]byte, error) {
	var b []byte
	if x.ContainerId != "" {
		b = protowire.AppendTag(b, 1, protowire.BytesType)
		b = protowire.AppendString(b, x.ContainerId)
	}
	if x.Success {
		b = protowire.AppendTag(b, 2, protowire.VarintType)
		b = protowire.AppendVarint(b, 1)
	}
	return b, nil
}

func (x *FinishRestoreRequest) UnmarshalWire(b []byte) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
		switch num {
		case 1:
			v, n := protowire.ConsumeString(b)
			if n < 0 {
				return protowire.ParseError(n)
			}
			x.ContainerId = v
			b = b[n:]
		case 2:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return protowire.ParseError(n)
			}
			x.Success = v != 0
			b = b[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return protowire.ParseError(n)
			}
			b = b[n:]
		}
	}
	return nil
}

type FinishRestoreResponse struct{}

func (x *FinishRestoreResponse) MarshalWire() ([]byte, error) { return nil, nil }

func (x *FinishRestoreResponse) UnmarshalWire(b []byte) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
		n = protowire.ConsumeFieldValue(num, typ, b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
	}
	return nil
}
