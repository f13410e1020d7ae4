// Package systems holds the built-in engine systems that route renderer
// events back into scene components.
package systems

import (
	"github.com/zeusync/scene/internal/core/events/bus"
)

// subscriptions collects the bus subscriptions a system owns so they can be
// cancelled together on Deactivate.
type subscriptions []bus.Subscription

func (s *subscriptions) subscribe(b bus.EventBus, eventType string, h bus.EventHandler) error {
	sub, err := b.Subscribe(eventType, h)
	if err != nil {
		return err
	}
	*s = append(*s, sub)
	return nil
}

func (s *subscriptions) cancel() {
	for _, sub := range *s {
		_ = sub.Cancel()
	}
	*s = nil
}
