package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestNew(t *testing.T) {
	assert.NotNil(t, New())
}

func TestNow(t *testing.T) {
	before := time.Now()
	now := New().Now()
	assert.False(t, now.Before(before))
}

func TestSleep(t *testing.T) {
	assert.NotPanics(t, func() {
		clock{}.Sleep(1 * time.Microsecond)
	})
}

func TestAfterFunc(t *testing.T) {
	t.Run("fires", func(t *testing.T) {
		done := make(chan struct{})
		New().AfterFunc(time.Millisecond, func() { close(done) })
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("AfterFunc did not fire")
		}
	})

	t.Run("stopped before firing", func(t *testing.T) {
		timer := New().AfterFunc(time.Hour, func() { t.Error("should not fire") })
		assert.True(t, timer.Stop())
	})
}

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
