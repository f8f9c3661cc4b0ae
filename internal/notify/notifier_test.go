package notify

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInMemoryNotifierFansOutToAllSubscribers(t *testing.T) {
	notifier := NewInMemoryNotifier()

	var first, second int
	notifier.Subscribe(func() { first++ })
	notifier.Subscribe(func() { second++ })

	require.NoError(t, notifier.Publish(context.Background()))
	require.NoError(t, notifier.Publish(context.Background()))

	require.Equal(t, 2, first)
	require.Equal(t, 2, second)
}

func TestInMemoryNotifierUnsubscribeStopsDelivery(t *testing.T) {
	notifier := NewInMemoryNotifier()

	var ticks int
	unsubscribe := notifier.Subscribe(func() { ticks++ })

	require.NoError(t, notifier.Publish(context.Background()))
	unsubscribe()
	require.NoError(t, notifier.Publish(context.Background()))

	require.Equal(t, 1, ticks)
}

func TestInMemoryNotifierPublishWithoutSubscribers(t *testing.T) {
	notifier := NewInMemoryNotifier()
	require.NoError(t, notifier.Publish(context.Background()))
}
