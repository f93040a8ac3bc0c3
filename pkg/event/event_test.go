package event_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shashiranjanraj/feastbook/pkg/event"
)

func TestFireCallsListenersInOrder(t *testing.T) {
	event.Flush()
	t.Cleanup(event.Flush)

	var got []string
	event.Listen(event.OrderPlaced, func(p interface{}) { got = append(got, "a:"+p.(string)) })
	event.Listen(event.OrderPlaced, func(p interface{}) { got = append(got, "b:"+p.(string)) })
	event.Listen(event.OrderUpdated, func(interface{}) { got = append(got, "never") })

	event.Fire(event.OrderPlaced, "ORD-1")

	assert.Equal(t, []string{"a:ORD-1", "b:ORD-1"}, got)
	assert.True(t, event.HasListeners(event.OrderUpdated))
	assert.False(t, event.HasListeners(event.CustomerCreated))
}

func TestListenerMayRegisterDuringFire(t *testing.T) {
	event.Flush()
	t.Cleanup(event.Flush)

	calls := 0
	event.Listen(event.RegistrySaved, func(interface{}) {
		calls++
		event.Listen(event.RegistrySaved, func(interface{}) { calls++ })
	})

	event.Fire(event.RegistrySaved, nil)
	assert.Equal(t, 1, calls)

	event.Fire(event.RegistrySaved, nil)
	assert.Equal(t, 3, calls)
}
