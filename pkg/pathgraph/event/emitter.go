package event

import (
	"sync"
	"sync/atomic"
)

// DefaultBufferSize is the per-subscription channel buffer.
const DefaultBufferSize = 256

// Emitter fans search events out to subscribers over buffered channels.
//
// Publish never blocks the search: when a subscriber's buffer is full the
// event is dropped for that subscriber and counted. Subscribers that care
// about completeness should size their buffer accordingly or drain promptly.
type Emitter struct {
	mu      sync.RWMutex
	subs    map[int64]*subscription
	nextID  atomic.Int64
	dropped atomic.Int64
	closed  atomic.Bool
}

// subscription is one subscriber's channel plus its type filter.
type subscription struct {
	types map[Type]bool // nil = all types
	ch    chan Event
	once  sync.Once
}

// shut closes the channel exactly once. Both Close and unsubscribe funnel
// through here so either order is safe.
func (s *subscription) shut() {
	s.once.Do(func() { close(s.ch) })
}

// NewEmitter creates an emitter.
func NewEmitter() *Emitter {
	return &Emitter{
		subs: make(map[int64]*subscription),
	}
}

// Subscribe registers for the given event types (all types when none are
// given). Returns the receive channel and an unsubscribe function that
// closes it. Unsubscribe is idempotent.
func (e *Emitter) Subscribe(types ...Type) (<-chan Event, func()) {
	return e.SubscribeBuffered(DefaultBufferSize, types...)
}

// SubscribeBuffered is Subscribe with an explicit channel buffer size.
func (e *Emitter) SubscribeBuffered(buffer int, types ...Type) (<-chan Event, func()) {
	if buffer <= 0 {
		buffer = DefaultBufferSize
	}

	sub := &subscription{ch: make(chan Event, buffer)}
	if len(types) > 0 {
		sub.types = make(map[Type]bool, len(types))
		for _, t := range types {
			sub.types[t] = true
		}
	}

	id := e.nextID.Add(1)

	e.mu.Lock()
	e.subs[id] = sub
	e.mu.Unlock()

	unsubscribe := func() {
		e.mu.Lock()
		delete(e.subs, id)
		e.mu.Unlock()
		sub.shut()
	}
	return sub.ch, unsubscribe
}

// Publish delivers the event to every matching subscriber without blocking.
// Publishing on a closed emitter is a no-op.
func (e *Emitter) Publish(evt Event) {
	if e.closed.Load() {
		return
	}

	e.mu.RLock()
	defer e.mu.RUnlock()

	for _, sub := range e.subs {
		if sub.types != nil && !sub.types[evt.Type] {
			continue
		}
		select {
		case sub.ch <- evt:
		default:
			e.dropped.Add(1)
		}
	}
}

// Dropped returns the number of events dropped because of full subscriber
// buffers.
func (e *Emitter) Dropped() int64 {
	return e.dropped.Load()
}

// Close shuts the emitter down and closes all subscriber channels.
func (e *Emitter) Close() {
	if !e.closed.CompareAndSwap(false, true) {
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	for id, sub := range e.subs {
		delete(e.subs, id)
		sub.shut()
	}
}
