package bridge

import (
	"context"
	"io"
	"slices"
	"sync"

	"github.com/rotisserie/eris"

	"github.com/zeusync/scene/pkg/concurrent"
	"github.com/zeusync/scene/pkg/sequence"
)

// Sink receives the messages flushed at the end of every tick, in order.
type Sink interface {
	Send(ctx context.Context, msgs []Message) error
}

// Recorder keeps every message in memory.
type Recorder struct {
	mu   sync.Mutex
	msgs []Message
}

func NewRecorder() *Recorder { return &Recorder{} }

func (r *Recorder) Send(_ context.Context, msgs []Message) error {
	r.mu.Lock()
	r.msgs = append(r.msgs, msgs...)
	r.mu.Unlock()
	return nil
}

func (r *Recorder) Messages() []Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.msgs)
}

// OfType returns the recorded messages of type t.
func (r *Recorder) OfType(t MessageType) []Message {
	return sequence.From(r.Messages()).Filter(func(m Message) bool { return m.Type == t }).Collect()
}

func (r *Recorder) Reset() {
	r.mu.Lock()
	r.msgs = nil
	r.mu.Unlock()
}

// WriterSink encodes messages with a codec onto an io.Writer.
type WriterSink struct {
	mu    sync.Mutex
	codec Codec
	w     io.Writer
}

func NewWriterSink(w io.Writer, codec Codec) *WriterSink {
	if codec == nil {
		codec = JSONCodec{}
	}
	return &WriterSink{codec: codec, w: w}
}

func (s *WriterSink) Send(ctx context.Context, msgs []Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range msgs {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.codec.Encode(s.w, m); err != nil {
			return eris.Wrapf(err, "%s sink", s.codec.Name())
		}
	}
	return nil
}

// Tee sends every batch to all sinks concurrently.
type Tee []Sink

func (t Tee) Send(ctx context.Context, msgs []Message) error {
	return concurrent.Concurrent(ctx, sequence.From([]Sink(t)), func(ctx context.Context, s Sink) error {
		return s.Send(ctx, msgs)
	})
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(ctx context.Context, msgs []Message) error

func (f SinkFunc) Send(ctx context.Context, msgs []Message) error { return f(ctx, msgs) }
