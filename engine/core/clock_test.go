package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClockStartsStopped(t *testing.T) {
	clock := NewClock()
	clock.Update()
	assert.Equal(t, 0.0, clock.Elapsed())
}

func TestClockMeasuresElapsedTime(t *testing.T) {
	clock := NewClock()
	clock.Start()
	time.Sleep(10 * time.Millisecond)
	clock.Update()
	assert.Greater(t, clock.Elapsed(), 0.0)
}

func TestClockStopFreezesElapsed(t *testing.T) {
	clock := NewClock()
	clock.Start()
	time.Sleep(5 * time.Millisecond)
	clock.Update()
	clock.Stop()

	frozen := clock.Elapsed()
	time.Sleep(5 * time.Millisecond)
	clock.Update()
	assert.Equal(t, frozen, clock.Elapsed())
}

func TestClockRestartResetsElapsed(t *testing.T) {
	clock := NewClock()
	clock.Start()
	time.Sleep(5 * time.Millisecond)
	clock.Update()
	assert.Greater(t, clock.Elapsed(), 0.0)

	clock.Start()
	assert.Equal(t, 0.0, clock.Elapsed())
}
