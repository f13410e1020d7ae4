package bus

// EventBus is the in-process pub/sub channel the engine uses to announce
// structural changes (entities, components, parenting) and to route renderer
// events to systems.
//
// Delivery is synchronous: Publish invokes handlers in the caller goroutine,
// in subscription order. Handlers subscribed to Wildcard receive every event
// after the type-specific handlers. Handler errors are joined and returned.
// A handler may subscribe or cancel during delivery; the change takes effect
// on the next Publish.
type EventBus interface {
	Publish(event Event) error
	Subscribe(eventType string, handler EventHandler) (Subscription, error)
	// Unsubscribe cancels the given Subscription. Nil is ignored.
	Unsubscribe(Subscription) error

	// PublishWithFilters drops the event silently when any filter rejects it.
	PublishWithFilters(event Event, filters ...EventFilter) error
	// PublishBatch publishes events in order and aggregates errors across them.
	PublishBatch(events ...Event) error

	AddObserver(obs EventBusObserver)
	RemoveObserver(obs EventBusObserver)
	// GetMetrics returns a snapshot of accumulated counters. Counters are only
	// maintained while at least one observer is registered.
	GetMetrics() EventBusMetrics
}

// Wildcard subscribes a handler to every event type.
const Wildcard = "*"

// Event is an immutable message transported by the EventBus. Type is the
// routing key.
type Event interface {
	Type() string
}

type (
	EventHandler func(event Event) error
	EventFilter  func(event Event) bool
)

// Subscription represents a registered handler bound to an event type.
type Subscription interface {
	ID() string
	EventType() string
	IsActive() bool
	// Cancel de-registers the handler. Multiple calls are safe.
	Cancel() error
}

// EventBusObserver is notified about deliveries and errors.
type EventBusObserver interface {
	OnPublish(eventType string, event Event)
	OnDelivered(eventType string, handlers int, err error, durationMicros int64)
}

type EventBusMetrics struct {
	Published         uint64
	DeliveredHandlers uint64
	Errors            uint64
	DroppedByFilters  uint64
	SubscribersActive uint64
}
