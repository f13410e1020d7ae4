package bridge

import (
	"bytes"
	"io"

	"github.com/goccy/go-json"
	"github.com/rotisserie/eris"
	"google.golang.org/protobuf/encoding/protodelim"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/zeusync/scene/pkg/encoding"
	"github.com/zeusync/scene/pkg/generic"
)

// Codec frames messages on a byte stream.
type Codec = encoding.Codec[Message]

var buffers = generic.NewPool(func() *bytes.Buffer { return new(bytes.Buffer) }, (*bytes.Buffer).Reset)

// JSONCodec writes one JSON document per line.
type JSONCodec struct{}

func (JSONCodec) Name() string { return "json" }

func (JSONCodec) Encode(w io.Writer, m Message) error {
	data, err := json.Marshal(m)
	if err != nil {
		return eris.Wrapf(err, "failed to marshal %s message", m.Type)
	}

	buf := buffers.Get()
	defer buffers.Put(buf)
	buf.Write(data)
	buf.WriteByte('\n')
	_, err = w.Write(buf.Bytes())
	return eris.Wrap(err, "failed to write frame")
}

func (JSONCodec) Decode(r encoding.Reader, m *Message) error {
	line, err := readLine(r)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(line, m); err != nil {
		return eris.Wrap(ErrMalformedFrame, err.Error())
	}
	return nil
}

// readLine returns the next non-empty line without its terminator. io.EOF is
// returned unwrapped when the stream ends between lines.
func readLine(r encoding.Reader) ([]byte, error) {
	buf := buffers.Get()
	defer buffers.Put(buf)

	for {
		b, err := r.ReadByte()
		if err == io.EOF {
			if buf.Len() == 0 {
				return nil, io.EOF
			}
			break
		}
		if err != nil {
			return nil, eris.Wrap(err, "failed to read frame")
		}
		if b == '\n' {
			if len(bytes.TrimSpace(buf.Bytes())) == 0 {
				buf.Reset()
				continue
			}
			break
		}
		buf.WriteByte(b)
	}
	return bytes.Clone(bytes.TrimSpace(buf.Bytes())), nil
}

// StructCodec writes messages as varint-delimited protobuf Structs.
type StructCodec struct{}

func (StructCodec) Name() string { return "structpb" }

func (StructCodec) Encode(w io.Writer, m Message) error {
	st, err := marshalToStruct(m)
	if err != nil {
		return err
	}
	if _, err := protodelim.MarshalTo(w, st); err != nil {
		return eris.Wrap(err, "failed to write frame")
	}
	return nil
}

func (StructCodec) Decode(r encoding.Reader, m *Message) error {
	st := &structpb.Struct{}
	if err := protodelim.UnmarshalFrom(r, st); err != nil {
		if err == io.EOF {
			return io.EOF
		}
		return eris.Wrap(ErrMalformedFrame, err.Error())
	}

	data, err := json.Marshal(st.AsMap())
	if err != nil {
		return eris.Wrap(err, "failed to marshal struct")
	}
	if err := json.Unmarshal(data, m); err != nil {
		return eris.Wrap(ErrMalformedFrame, err.Error())
	}
	return nil
}

func marshalToStruct(payload any) (*structpb.Struct, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, eris.Wrap(err, "failed to marshal payload")
	}

	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, eris.Wrap(err, "failed to unmarshal payload to map[string]any")
	}

	st, err := structpb.NewStruct(m)
	if err != nil {
		return nil, eris.Wrap(err, "failed to convert map to structpb.Struct")
	}
	return st, nil
}

// CodecByName resolves "json" or "structpb".
func CodecByName(name string) (Codec, error) {
	switch name {
	case "", "json":
		return JSONCodec{}, nil
	case "structpb", "proto":
		return StructCodec{}, nil
	default:
		return nil, eris.Errorf("unknown codec %q", name)
	}
}
