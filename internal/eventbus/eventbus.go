package eventbus

import (
	"sync"
	"time"
)

// PlanEvent is published after every planning run.
type PlanEvent struct {
	Owner                string
	Policy               string
	Scheduled            int
	Rejected             int
	TimeUsedMinutes      int
	TimeAvailableMinutes int
	EfficiencyPercent    float64
	GeneratedAt          time.Time
}

// Bus implements a simple publish/subscribe bus for plan events using
// fan-out channels.
type Bus struct {
	mu     sync.RWMutex
	subs   []chan PlanEvent
	closed bool
}

// New creates a new Bus.
func New() *Bus { return &Bus{} }

// Publish sends the event to all subscribers. Delivery is non-blocking;
// a slow subscriber misses events rather than stalling the publisher.
func (b *Bus) Publish(e PlanEvent) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		return
	}
	for _, ch := range b.subs {
		select {
		case ch <- e:
		default:
		}
	}
}

// Subscribe registers a new subscriber and returns its channel.
func (b *Bus) Subscribe() <-chan PlanEvent {
	ch := make(chan PlanEvent, 8)
	b.mu.Lock()
	if b.closed {
		close(ch)
	} else {
		b.subs = append(b.subs, ch)
	}
	b.mu.Unlock()
	return ch
}

// Unsubscribe removes the subscriber and closes its channel.
func (b *Bus) Unsubscribe(sub <-chan PlanEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, ch := range b.subs {
		if ch == sub {
			b.subs = append(b.subs[:i], b.subs[i+1:]...)
			if !b.closed {
				close(ch)
			}
			return
		}
	}
}

// Close closes all subscriber channels and clears the list.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	for _, ch := range b.subs {
		close(ch)
	}
	b.subs = nil
}
