package notify

import (
	"context"
	"sync"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// DefaultChannel is the pub/sub channel carrying roster change ticks.
const DefaultChannel = "pulse:roster:changed"

// redisNotifier bridges change ticks across instances via Redis pub/sub.
// The message body is ignored; receipt of any message is the signal.
type redisNotifier struct {
	client  *redis.Client
	channel string
	logger  *zap.Logger

	mu        sync.Mutex
	nextID    int
	listeners map[int]func()
	pubsub    *redis.PubSub
	done      chan struct{}
}

// NewRedisNotifier creates a notifier backed by the given Redis client.
// An empty channel selects DefaultChannel.
func NewRedisNotifier(client *redis.Client, channel string, logger *zap.Logger) Notifier {
	if channel == "" {
		channel = DefaultChannel
	}
	return &redisNotifier{
		client:    client,
		channel:   channel,
		logger:    logger,
		listeners: make(map[int]func()),
	}
}

// Publish emits a tick to every subscriber across all instances.
func (n *redisNotifier) Publish(ctx context.Context) error {
	return n.client.Publish(ctx, n.channel, "1").Err()
}

// Subscribe registers a change handler. The Redis subscription is opened
// lazily on the first subscriber and closed when the last one leaves.
func (n *redisNotifier) Subscribe(onChange func()) func() {
	n.mu.Lock()
	id := n.nextID
	n.nextID++
	n.listeners[id] = onChange
	if n.pubsub == nil {
		n.pubsub = n.client.Subscribe(context.Background(), n.channel)
		n.done = make(chan struct{})
		go n.receive(n.pubsub, n.done)
	}
	n.mu.Unlock()

	return func() {
		n.mu.Lock()
		delete(n.listeners, id)
		if len(n.listeners) == 0 && n.pubsub != nil {
			_ = n.pubsub.Close()
			close(n.done)
			n.pubsub = nil
			n.done = nil
		}
		n.mu.Unlock()
	}
}

func (n *redisNotifier) receive(pubsub *redis.PubSub, done chan struct{}) {
	ch := pubsub.Channel()
	for {
		select {
		case <-done:
			return
		case _, ok := <-ch:
			if !ok {
				return
			}
			n.mu.Lock()
			handlers := make([]func(), 0, len(n.listeners))
			for _, h := range n.listeners {
				handlers = append(handlers, h)
			}
			n.mu.Unlock()
			for _, handler := range handlers {
				handler()
			}
		}
	}
}
