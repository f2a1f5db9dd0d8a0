package events

import "testing"

func TestBus_PublishReachesAllSubscribers(t *testing.T) {
	bus := NewBus()

	var first, second []string
	bus.Subscribe(func(e Event) {
		if ev, ok := e.(WidgetAdded); ok {
			first = append(first, ev.ID)
		}
	})
	bus.Subscribe(func(e Event) {
		if ev, ok := e.(WidgetAdded); ok {
			second = append(second, ev.ID)
		}
	})

	bus.Publish(WidgetAdded{ID: "w-1"})
	bus.Publish(WidgetAdded{ID: "w-2"})

	if len(first) != 2 || len(second) != 2 {
		t.Fatalf("expected both handlers to see 2 events, got %d and %d", len(first), len(second))
	}
	if first[0] != "w-1" || first[1] != "w-2" {
		t.Errorf("unexpected event ids: %v", first)
	}
}

func TestBus_Unsubscribe(t *testing.T) {
	bus := NewBus()

	count := 0
	sub := bus.Subscribe(func(Event) { count++ })

	bus.Publish(HistoryChanged{CanUndo: true})
	bus.Unsubscribe(sub)
	bus.Publish(HistoryChanged{CanUndo: false})

	if count != 1 {
		t.Errorf("expected 1 delivery after unsubscribe, got %d", count)
	}
}

func TestBus_UnsubscribeUnknownToken(t *testing.T) {
	bus := NewBus()
	bus.Unsubscribe(Subscription(42)) // must not panic
}

func TestBus_NilBusDropsEvents(t *testing.T) {
	var bus *Bus
	bus.Publish(SelectionChanged{Selected: []string{"w-1"}})
}
