package bus

import "testing"

type testEvent struct {
	topic Topic
	n     int
}

func (e testEvent) Topic() Topic { return e.topic }

func TestPublishInSubscriptionOrder(t *testing.T) {
	b := New()
	var got []int
	b.Subscribe("t", func(Event) { got = append(got, 1) })
	b.Subscribe("t", func(Event) { got = append(got, 2) })
	b.Subscribe("t", func(Event) { got = append(got, 3) })

	b.Publish(testEvent{topic: "t"})

	if len(got) != 3 || got[0] != 1 || got[1] != 2 || got[2] != 3 {
		t.Fatalf("handlers ran as %v, want [1 2 3]", got)
	}
}

func TestPublishExactTopicOnly(t *testing.T) {
	b := New()
	calls := 0
	b.Subscribe("one", func(Event) { calls++ })
	b.Subscribe("one.two", func(Event) { calls++ })

	b.Publish(testEvent{topic: "one"})

	if calls != 1 {
		t.Fatalf("calls = %d, want 1 (no wildcard or prefix matching)", calls)
	}
}

func TestPublishNoSubscribersIsNoOp(t *testing.T) {
	b := New()
	// must not panic or buffer anything
	b.Publish(testEvent{topic: "nobody"})
	calls := 0
	b.Subscribe("nobody", func(Event) { calls++ })
	if calls != 0 {
		t.Fatalf("late subscriber saw %d buffered events, want 0", calls)
	}
}

func TestPayloadDelivered(t *testing.T) {
	b := New()
	var got int
	b.Subscribe("t", func(e Event) { got = e.(testEvent).n })
	b.Publish(testEvent{topic: "t", n: 42})
	if got != 42 {
		t.Fatalf("payload = %d, want 42", got)
	}
}

func TestNestedPublishRunsDepthFirst(t *testing.T) {
	b := New()
	var order []string
	b.Subscribe("outer", func(Event) {
		order = append(order, "outer-start")
		b.Publish(testEvent{topic: "inner"})
		order = append(order, "outer-end")
	})
	b.Subscribe("inner", func(Event) { order = append(order, "inner") })

	b.Publish(testEvent{topic: "outer"})

	want := []string{"outer-start", "inner", "outer-end"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	b := New()
	calls := 0
	unsub := b.Subscribe("t", func(Event) { calls++ })
	b.Publish(testEvent{topic: "t"})
	unsub()
	b.Publish(testEvent{topic: "t"})
	if calls != 1 {
		t.Fatalf("calls = %d, want 1", calls)
	}
}

func TestUnsubscribeDuringDispatchIsSafe(t *testing.T) {
	b := New()
	var got []int
	var unsub2 func()
	b.Subscribe("t", func(Event) {
		got = append(got, 1)
		unsub2() // removes the next handler mid-dispatch
	})
	unsub2 = b.Subscribe("t", func(Event) { got = append(got, 2) })
	b.Subscribe("t", func(Event) { got = append(got, 3) })

	// The dispatch in flight sees the snapshot taken at publish time.
	b.Publish(testEvent{topic: "t"})
	if len(got) != 3 {
		t.Fatalf("first publish reached %v, want all 3 (snapshot semantics)", got)
	}

	got = nil
	b.Publish(testEvent{topic: "t"})
	if len(got) != 2 || got[0] != 1 || got[1] != 3 {
		t.Fatalf("second publish reached %v, want [1 3]", got)
	}
}

func TestUnsubscribeTwiceIsHarmless(t *testing.T) {
	b := New()
	unsub := b.Subscribe("t", func(Event) {})
	calls := 0
	b.Subscribe("t", func(Event) { calls++ })
	unsub()
	unsub()
	b.Publish(testEvent{topic: "t"})
	if calls != 1 {
		t.Fatalf("calls = %d, want 1", calls)
	}
}
