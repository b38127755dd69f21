package events

import "sync"

const defaultSubscriberBuffer = 1000

// Broadcast is the default in-process Bus: each subscriber gets its own
// buffered channel, and Publish sends to every subscriber without
// blocking — a full buffer drops the event for that subscriber rather
// than stalling the publisher or other subscribers.
type Broadcast[Scope comparable] struct {
	bufferSize int

	mu          sync.Mutex
	subscribers map[int]chan Scoped[Scope]
	nextID      int
}

// NewBroadcast constructs a Broadcast bus with the given per-subscriber
// buffer size. A size of 0 uses the default of 1000.
func NewBroadcast[Scope comparable](bufferSize int) *Broadcast[Scope] {
	if bufferSize <= 0 {
		bufferSize = defaultSubscriberBuffer
	}
	return &Broadcast[Scope]{
		bufferSize:  bufferSize,
		subscribers: make(map[int]chan Scoped[Scope]),
	}
}

func (b *Broadcast[Scope]) Subscribe() <-chan Scoped[Scope] {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan Scoped[Scope], b.bufferSize)
	id := b.nextID
	b.nextID++
	b.subscribers[id] = ch
	return ch
}

// Unsubscribe removes and closes a subscriber's channel. It is not part
// of the Bus interface since callers normally just let a receiver idle,
// but is useful for tests and long-lived services that create and drop
// many subscribers.
func (b *Broadcast[Scope]) Unsubscribe(ch <-chan Scoped[Scope]) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for id, sub := range b.subscribers {
		if sub == ch {
			delete(b.subscribers, id)
			close(sub)
			return
		}
	}
}

func (b *Broadcast[Scope]) Publish(scope Scope, event Event) {
	msg := Scoped[Scope]{Scope: scope, Event: event}

	b.mu.Lock()
	defer b.mu.Unlock()
	for _, sub := range b.subscribers {
		select {
		case sub <- msg:
		default:
			// Subscriber buffer full: drop, per the best-effort contract.
		}
	}
}

var _ Bus[string] = (*Broadcast[string])(nil)
