package notify

import (
	"context"
	"sync"
)

// Notifier delivers payload-free roster change ticks. A tick carries no
// diff; subscribers are expected to re-fetch the roster themselves.
type Notifier interface {
	Publish(ctx context.Context) error
	Subscribe(onChange func()) (unsubscribe func())
}

// inMemoryNotifier fans ticks out to in-process subscribers. Used in tests
// and as a fallback when Redis is not configured (single-instance mode).
type inMemoryNotifier struct {
	mu        sync.RWMutex
	nextID    int
	listeners map[int]func()
}

// NewInMemoryNotifier creates a process-local notifier.
func NewInMemoryNotifier() Notifier {
	return &inMemoryNotifier{listeners: make(map[int]func())}
}

// Publish synchronously invokes every subscriber.
func (n *inMemoryNotifier) Publish(ctx context.Context) error {
	n.mu.RLock()
	handlers := make([]func(), 0, len(n.listeners))
	for _, h := range n.listeners {
		handlers = append(handlers, h)
	}
	n.mu.RUnlock()

	for _, handler := range handlers {
		handler()
	}
	return nil
}

// Subscribe registers a change handler and returns its removal function.
func (n *inMemoryNotifier) Subscribe(onChange func()) func() {
	n.mu.Lock()
	id := n.nextID
	n.nextID++
	n.listeners[id] = onChange
	n.mu.Unlock()

	return func() {
		n.mu.Lock()
		delete(n.listeners, id)
		n.mu.Unlock()
	}
}
