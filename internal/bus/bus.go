// Package bus provides the synchronous event bus that couples the
// storefront's models, coordinator, and render targets. A Bus is an
// explicit instance passed to every component at construction time;
// there is no package-level singleton.
//
// Dispatch is fully synchronous and depth-first: Publish invokes every
// handler subscribed to the event's topic, in subscription order, before
// returning. A handler may itself publish; the nested dispatch runs to
// completion before control returns to the outer handler. Nothing is
// queued or buffered — publishing with no subscribers is a no-op.
//
// A Bus is not goroutine-safe. The storefront is single-threaded by
// construction: one goroutine owns the bus and every model behind it.
package bus

// Topic names one event channel. Exact match only; no wildcards.
type Topic string

// Event is a fixed tagged record carried on the bus. Each event type
// belongs to exactly one topic, so a handler subscribed to a topic can
// type-assert the one payload shape that topic carries.
type Event interface {
	Topic() Topic
}

// Handler receives every event published to a subscribed topic.
type Handler func(Event)

// Bus routes events to handlers by topic.
type Bus struct {
	handlers map[Topic][]subscription
	nextID   int
}

type subscription struct {
	id int
	fn Handler
}

// New returns an empty bus.
func New() *Bus {
	return &Bus{handlers: make(map[Topic][]subscription)}
}

// Subscribe registers h under topic and returns a function that removes
// the registration. Handlers on one topic are invoked in subscription
// order. Unsubscribing is safe during dispatch: Publish snapshots the
// handler list before invoking, so the current dispatch still sees the
// list as it was when the event was published.
func (b *Bus) Subscribe(topic Topic, h Handler) (unsubscribe func()) {
	b.nextID++
	id := b.nextID
	b.handlers[topic] = append(b.handlers[topic], subscription{id: id, fn: h})
	return func() {
		subs := b.handlers[topic]
		for i := range subs {
			if subs[i].id == id {
				b.handlers[topic] = append(subs[:i:i], subs[i+1:]...)
				return
			}
		}
	}
}

// Publish delivers e to every handler currently subscribed to e.Topic().
// A panicking handler is a wiring defect, not a data condition, and is
// allowed to propagate to the caller.
func (b *Bus) Publish(e Event) {
	subs := b.handlers[e.Topic()]
	if len(subs) == 0 {
		return
	}
	snapshot := make([]subscription, len(subs))
	copy(snapshot, subs)
	for _, s := range snapshot {
		s.fn(e)
	}
}
