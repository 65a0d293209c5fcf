package player

import (
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fillEmitter(t *testing.T, e emitter) {
	t.Helper()
	for range eventBufferSize {
		require.True(t, e.send(Event{Kind: EventTimeUpdate}))
	}
}

func TestEmitterSend_GivesUpWhenBufferStaysFull(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		e := newEmitter()
		fillEmitter(t, e)

		start := time.Now()
		assert.False(t, e.send(Event{Kind: EventPause}))
		assert.Equal(t, sendTimeout, time.Since(start))
		assert.Len(t, e.ch, eventBufferSize)
	})
}

func TestEmitterSend_WaitsForConsumer(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		e := newEmitter()
		fillEmitter(t, e)
		go func() {
			time.Sleep(100 * time.Millisecond)
			<-e.ch
		}()

		start := time.Now()
		assert.True(t, e.send(Event{Kind: EventPause}))
		assert.Equal(t, 100*time.Millisecond, time.Since(start))
	})
}

func TestEmitterSend_ClosedReturnsImmediately(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		e := newEmitter()
		fillEmitter(t, e)
		close(e.closed)

		start := time.Now()
		assert.False(t, e.send(Event{Kind: EventEnded}))
		assert.Zero(t, time.Since(start))
	})
}

func TestEmitterSendTick_KeepsRoomForSignals(t *testing.T) {
	e := newEmitter()
	for range eventBufferSize {
		e.sendTick(Event{Kind: EventTimeUpdate})
	}
	assert.Len(t, e.ch, eventBufferSize/2)
}

func TestMock_EventsCarryLoadID(t *testing.T) {
	m := NewMock()
	defer m.Close()

	require.NoError(t, m.Load("a.mp3"))
	first := m.LoadID()
	require.NoError(t, m.Play())
	require.NoError(t, m.Load("a.mp3"))
	assert.NotEqual(t, first, m.LoadID())

	play := <-m.Events()
	assert.Equal(t, EventPlay, play.Kind)
	assert.Equal(t, first, play.Load)
	pause := <-m.Events()
	assert.Equal(t, EventPause, pause.Kind)
	assert.Equal(t, first, pause.Load, "the stop of the old load is tagged with its ID")
}
