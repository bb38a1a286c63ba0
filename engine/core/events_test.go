package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventFireDispatchesToHandler(t *testing.T) {
	require.True(t, EventSystemInitialize())

	received := make(chan EventContext, 1)
	require.True(t, EventRegister(EVENT_CODE_DEBUG0, func(context EventContext) {
		received <- context
	}))

	go ProcessEvents()

	require.True(t, EventFire(EventContext{Type: EVENT_CODE_DEBUG0, Data: "ping"}))

	select {
	case context := <-received:
		assert.Equal(t, EVENT_CODE_DEBUG0, context.Type)
		assert.Equal(t, "ping", context.Data)
	case <-time.After(time.Second):
		t.Fatal("event was never dispatched")
	}
}

func TestEventRegisterRejectsNilHandler(t *testing.T) {
	require.True(t, EventSystemInitialize())
	assert.False(t, EventRegister(EVENT_CODE_DEBUG1, nil))
}

func TestEventFireUnhandledCodeIsFine(t *testing.T) {
	require.True(t, EventSystemInitialize())
	assert.True(t, EventFire(EventContext{Type: EVENT_CODE_SET_RENDER_MODE, Data: 2}))
}

func TestEventSystemShutdownIsIdempotent(t *testing.T) {
	require.True(t, EventSystemInitialize())
	require.NoError(t, EventSystemShutdown())
	require.NoError(t, EventSystemShutdown())
}
