package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatcherDeliversToSubscribers(t *testing.T) {
	d := NewInMemoryDispatcher()

	var seen []Event
	d.Subscribe(EventMemberRegistered, func(_ context.Context, event Event) error {
		seen = append(seen, event)
		return nil
	})

	err := d.Publish(context.Background(), Event{Type: EventMemberRegistered, GymID: 5})
	require.NoError(t, err)
	require.Len(t, seen, 1)
	assert.Equal(t, int64(5), seen[0].GymID)
}

func TestDispatcherIgnoresUnsubscribedTypes(t *testing.T) {
	d := NewInMemoryDispatcher()

	called := false
	d.Subscribe(EventPaymentRecorded, func(context.Context, Event) error {
		called = true
		return nil
	})

	err := d.Publish(context.Background(), Event{Type: EventGymCreated})
	require.NoError(t, err)
	assert.False(t, called)
}

func TestDispatcherContinuesAfterHandlerError(t *testing.T) {
	d := NewInMemoryDispatcher()

	var order []string
	d.Subscribe(EventPaymentRecorded, func(context.Context, Event) error {
		order = append(order, "first")
		return errors.New("boom")
	})
	d.Subscribe(EventPaymentRecorded, func(context.Context, Event) error {
		order = append(order, "second")
		return nil
	})

	err := d.Publish(context.Background(), Event{Type: EventPaymentRecorded})
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, order)
}
