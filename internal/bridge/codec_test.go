package bridge

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/scene/internal/core/ecs"
)

func sampleMessages() []Message {
	return []Message{
		{Type: MsgAddEntity, EntityID: "E1"},
		{Type: MsgSetParent, EntityID: "E1", ParentID: ecs.RootID},
		{
			Type:          MsgUpdateEntityComponent,
			EntityID:      "E1",
			ComponentName: "engine.transform",
			ClassID:       ecs.ClassTransform,
			Data:          json.RawMessage(`{"position":{"x":1,"y":2,"z":3}}`),
		},
	}
}

func TestCodecsFrameMessages(t *testing.T) {
	for _, codec := range []Codec{JSONCodec{}, StructCodec{}} {
		t.Run(codec.Name(), func(t *testing.T) {
			var buf bytes.Buffer
			for _, m := range sampleMessages() {
				require.NoError(t, codec.Encode(&buf, m))
			}

			r := bufio.NewReader(&buf)
			var got []Message
			for {
				var m Message
				err := codec.Decode(r, &m)
				if err == io.EOF {
					break
				}
				require.NoError(t, err)
				got = append(got, m)
			}

			require.Len(t, got, 3)
			assert.Equal(t, MsgSetParent, got[1].Type)
			assert.Equal(t, ecs.RootID, got[1].ParentID)
			assert.Equal(t, ecs.ClassTransform, got[2].ClassID)
			assert.JSONEq(t, `{"position":{"x":1,"y":2,"z":3}}`, string(got[2].Data))
		})
	}
}

func TestJSONCodecWritesOneLinePerMessage(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, JSONCodec{}.Encode(&buf, Message{Type: MsgRemoveEntity, EntityID: "E7"}))
	assert.Equal(t, `{"type":"removeEntity","entityId":"E7"}`+"\n", buf.String())
}

func TestJSONCodecRejectsGarbage(t *testing.T) {
	var m Message
	err := JSONCodec{}.Decode(bufio.NewReader(strings.NewReader("not json\n")), &m)
	assert.ErrorIs(t, err, ErrMalformedFrame)
}

func TestCodecByName(t *testing.T) {
	c, err := CodecByName("structpb")
	require.NoError(t, err)
	assert.Equal(t, "structpb", c.Name())

	_, err = CodecByName("xml")
	assert.Error(t, err)
}

type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func TestTeeFansOut(t *testing.T) {
	rec := NewRecorder()
	var out lockedBuffer
	tee := Tee{rec, NewWriterSink(&out, JSONCodec{})}

	require.NoError(t, tee.Send(context.Background(), sampleMessages()))
	assert.Len(t, rec.Messages(), 3)
	assert.Equal(t, 3, strings.Count(out.buf.String(), "\n"))
}

func TestWriterSinkHonorsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	err := NewWriterSink(&buf, nil).Send(ctx, sampleMessages())
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, buf.Len())
}
