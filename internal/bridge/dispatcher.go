package bridge

import (
	"bufio"
	"context"
	"io"

	"github.com/goccy/go-json"
	"github.com/rotisserie/eris"

	"github.com/zeusync/scene/internal/core/ecs"
	"github.com/zeusync/scene/internal/core/events/bus"
	"github.com/zeusync/scene/internal/core/observability/log"
	"github.com/zeusync/scene/pkg/sequence"
)

// Envelope is an inbound renderer event.
type Envelope struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// Decoder turns envelope data into a bus event.
type Decoder func(data json.RawMessage) (bus.Event, error)

// Dispatcher buffers renderer events, which may arrive on any goroutine, and
// publishes them on the engine bus during its Update.
type Dispatcher struct {
	log      log.Log
	bus      bus.EventBus
	queue    *sequence.Queue[Envelope]
	decoders map[string]Decoder

	published uint64
	failed    uint64
}

func NewDispatcher(l log.Log) *Dispatcher {
	if l == nil {
		l = log.NewNop()
	}
	d := &Dispatcher{
		log:      l.With(log.String("system", "dispatcher")),
		queue:    sequence.NewQueue[Envelope](),
		decoders: make(map[string]Decoder),
	}
	d.Register(ecs.EventUUID, decodeInto[ecs.UUIDEvent])
	d.Register(ecs.EventVideo, decodeInto[ecs.VideoEvent])
	return d
}

func decodeInto[T bus.Event](data json.RawMessage) (bus.Event, error) {
	var ev T
	if err := json.Unmarshal(data, &ev); err != nil {
		return nil, eris.Wrapf(err, "failed to decode %s", ev.Type())
	}
	return ev, nil
}

// Register adds or replaces the decoder for an envelope type.
func (d *Dispatcher) Register(envelopeType string, dec Decoder) {
	d.decoders[envelopeType] = dec
}

func (d *Dispatcher) Activate(en *ecs.Engine) { d.bus = en.Bus() }

func (d *Dispatcher) Deactivate() { d.bus = nil }

// Enqueue accepts envelopes of registered types only. It is safe to call
// from any goroutine.
func (d *Dispatcher) Enqueue(envs ...Envelope) error {
	for _, env := range envs {
		if _, ok := d.decoders[env.Type]; !ok {
			return eris.Wrapf(ErrUnknownEnvelope, "type %q", env.Type)
		}
	}
	d.queue.Enqueue(envs...)
	return nil
}

// Pending reports how many envelopes wait for the next Update.
func (d *Dispatcher) Pending() int { return d.queue.Len() }

// Update publishes every queued envelope in arrival order.
func (d *Dispatcher) Update(float64) {
	if d.bus == nil {
		return
	}
	for _, env := range d.queue.Drain() {
		ev, err := d.decoders[env.Type](env.Data)
		if err != nil {
			d.failed++
			d.log.Warn("dropping malformed envelope", log.String("type", env.Type), log.Error(err))
			continue
		}
		if err := d.bus.Publish(ev); err != nil {
			d.failed++
			d.log.Error("envelope handler failed", log.String("type", env.Type), log.Error(err))
			continue
		}
		d.published++
	}
}

func (d *Dispatcher) Published() uint64 { return d.published }
func (d *Dispatcher) Failed() uint64    { return d.failed }

// ReadFrom enqueues newline-delimited JSON envelopes from r until it is
// exhausted or ctx is done. Unknown and malformed lines are logged and skipped.
func (d *Dispatcher) ReadFrom(ctx context.Context, r io.Reader) error {
	br := bufio.NewReader(r)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		line, err := readLine(br)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		var env Envelope
		if err := json.Unmarshal(line, &env); err != nil {
			d.log.Warn("skipping malformed envelope", log.Error(err))
			continue
		}
		if err := d.Enqueue(env); err != nil {
			d.log.Warn("skipping envelope", log.Error(err))
		}
	}
}
