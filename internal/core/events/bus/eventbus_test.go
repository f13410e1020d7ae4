package bus

import (
	"errors"
	"testing"
)

type testObserver struct {
	publishCount   int
	deliveredCount int
	lastErr        error
}

func (o *testObserver) OnPublish(_ string, _ Event) {
	o.publishCount++
}

func (o *testObserver) OnDelivered(_ string, handlers int, err error, _ int64) {
	o.deliveredCount += handlers
	o.lastErr = err
}

func TestBasicPublishSubscribe(t *testing.T) {
	b := New()
	called := 0
	_, err := b.Subscribe("test.event", func(e Event) error {
		called++
		if e.(Basic).Data != 123 {
			t.Fatalf("unexpected payload %v", e.(Basic).Data)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}
	if err = b.Publish(Basic{Kind: "test.event", Data: 123}); err != nil {
		t.Fatalf("publish: %v", err)
	}
	if called != 1 {
		t.Fatalf("expected 1 call, got %d", called)
	}
}

func TestDeliveryFollowsSubscriptionOrder(t *testing.T) {
	b := New()
	var order []int
	for i := 0; i < 5; i++ {
		_, _ = b.Subscribe("x", func(Event) error {
			order = append(order, i)
			return nil
		})
	}
	_, _ = b.Subscribe(Wildcard, func(Event) error {
		order = append(order, 99)
		return nil
	})
	_ = b.Publish(Basic{Kind: "x"})
	want := []int{0, 1, 2, 3, 4, 99}
	if len(order) != len(want) {
		t.Fatalf("order %v", order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order %v, want %v", order, want)
		}
	}
}

func TestCancelDuringDeliveryAppliesNextPublish(t *testing.T) {
	b := New()
	calls := 0
	var second Subscription
	_, _ = b.Subscribe("x", func(Event) error {
		_ = second.Cancel()
		return nil
	})
	second, _ = b.Subscribe("x", func(Event) error {
		calls++
		return nil
	})
	_ = b.Publish(Basic{Kind: "x"})
	_ = b.Publish(Basic{Kind: "x"})
	if calls != 0 {
		t.Fatalf("cancelled handler ran %d times", calls)
	}
	if second.IsActive() {
		t.Fatal("subscription still active")
	}
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	b := New()
	count := 0
	sub, err := b.Subscribe("y", func(Event) error { count++; return nil })
	if err != nil {
		t.Fatalf("sub: %v", err)
	}
	_ = b.Publish(Basic{Kind: "y"})
	if err = b.Unsubscribe(sub); err != nil {
		t.Fatalf("unsub: %v", err)
	}
	_ = b.Publish(Basic{Kind: "y"})
	if count != 1 {
		t.Fatalf("expected 1 delivery, got %d", count)
	}
	if err = b.Unsubscribe(nil); err != nil {
		t.Fatalf("nil unsub: %v", err)
	}
}

func TestErrorsAreJoined(t *testing.T) {
	b := New()
	e1 := errors.New("first")
	e2 := errors.New("second")
	_, _ = b.Subscribe("z", func(Event) error { return e1 })
	_, _ = b.Subscribe("z", func(Event) error { return e2 })
	err := b.PublishBatch(Basic{Kind: "z"}, Basic{Kind: "none"})
	if !errors.Is(err, e1) || !errors.Is(err, e2) {
		t.Fatalf("expected both errors, got %v", err)
	}
}

func TestFiltersAndMetrics(t *testing.T) {
	b := New()
	obs := &testObserver{}
	b.AddObserver(obs)
	delivered := 0
	_, _ = b.Subscribe("f", func(Event) error { delivered++; return nil })

	reject := func(Event) bool { return false }
	if err := b.PublishWithFilters(Basic{Kind: "f"}, reject); err != nil {
		t.Fatalf("filtered publish: %v", err)
	}
	if err := b.PublishWithFilters(Basic{Kind: "f"}); err != nil {
		t.Fatalf("publish: %v", err)
	}

	if delivered != 1 {
		t.Fatalf("expected 1 delivery, got %d", delivered)
	}
	m := b.GetMetrics()
	if m.DroppedByFilters != 1 || m.Published != 1 || m.SubscribersActive != 1 {
		t.Fatalf("unexpected metrics %+v", m)
	}
	if obs.publishCount != 1 || obs.deliveredCount != 1 {
		t.Fatalf("unexpected observer state %+v", obs)
	}

	b.RemoveObserver(obs)
	_ = b.Publish(Basic{Kind: "f"})
	if obs.publishCount != 1 {
		t.Fatal("removed observer still notified")
	}
}

func TestRejectsNilHandlerAndEvent(t *testing.T) {
	b := New()
	if _, err := b.Subscribe("x", nil); !errors.Is(err, ErrNilHandler) {
		t.Fatalf("expected ErrNilHandler, got %v", err)
	}
	if err := b.Publish(nil); !errors.Is(err, ErrNilEvent) {
		t.Fatalf("expected ErrNilEvent, got %v", err)
	}
}
