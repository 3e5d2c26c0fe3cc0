package events

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

type Op string

const (
	OpInsert Op = "INSERT"
	OpUpdate Op = "UPDATE"
	OpDelete Op = "DELETE"
)

// Change describes one committed single-row write
type Change struct {
	Table  string
	UserID uuid.UUID
	Op     Op
	ID     uuid.UUID
	At     time.Time
}

type Publisher interface {
	Publish(c Change)
}

// Broker fans changes out to subscribers. Delivery is best effort: a
// subscriber whose buffer is full misses the change.
type Broker struct {
	mu     sync.RWMutex
	subs   map[int]chan Change
	next   int
	closed bool
}

func NewBroker() *Broker {
	return &Broker{
		subs: make(map[int]chan Change),
	}
}

// Subscribe returns a channel of changes and a func that detaches it.
func (b *Broker) Subscribe(buffer int) (<-chan Change, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	ch := make(chan Change, buffer)
	if b.closed {
		close(ch)
		return ch, func() {}
	}
	id := b.next
	b.next++
	b.subs[id] = ch
	var once sync.Once
	return ch, func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			if sub, ok := b.subs[id]; ok {
				delete(b.subs, id)
				close(sub)
			}
		})
	}
}

func (b *Broker) Publish(c Change) {
	if c.At.IsZero() {
		c.At = time.Now()
	}
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, ch := range b.subs {
		select {
		case ch <- c:
		default:
			slog.Warn("change dropped for slow subscriber",
				slog.String("table", c.Table),
				slog.String("op", string(c.Op)),
			)
		}
	}
}

// Close detaches every subscriber. Publishing after Close is a no-op.
func (b *Broker) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	for id, ch := range b.subs {
		delete(b.subs, id)
		close(ch)
	}
}
