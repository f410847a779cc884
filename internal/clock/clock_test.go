package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var epoch = time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)

func TestRealClock_Now(t *testing.T) {
	before := time.Now()
	now := RealClock{}.Now()
	after := time.Now()

	assert.False(t, now.Before(before), "Now should be >= before")
	assert.False(t, now.After(after), "Now should be <= after")
}

func TestRealClock_AfterFunc(t *testing.T) {
	done := make(chan struct{})
	RealClock{}.AfterFunc(time.Millisecond, func() { close(done) })

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("AfterFunc did not fire")
	}
}

func TestMockClock_NowSetAdvance(t *testing.T) {
	c := NewMockClock(epoch)
	assert.Equal(t, epoch, c.Now())

	c.Advance(time.Hour)
	assert.Equal(t, epoch.Add(time.Hour), c.Now())

	later := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	c.Set(later)
	assert.Equal(t, later, c.Now())
}

func TestMockClock_AfterFunc(t *testing.T) {
	c := NewMockClock(epoch)

	var called bool
	c.AfterFunc(5*time.Minute, func() { called = true })
	assert.Equal(t, 1, c.Pending())

	c.Advance(3 * time.Minute)
	assert.False(t, called)

	c.Advance(2 * time.Minute)
	assert.True(t, called, "timer fires exactly at its deadline")
	assert.Equal(t, 0, c.Pending())
}

func TestMockClock_Stop(t *testing.T) {
	c := NewMockClock(epoch)

	var called bool
	timer := c.AfterFunc(5*time.Minute, func() { called = true })

	assert.True(t, timer.Stop())
	assert.False(t, timer.Stop())
	assert.Equal(t, 0, c.Pending())

	c.Advance(10 * time.Minute)
	assert.False(t, called)
}

func TestMockClock_StopAfterFire(t *testing.T) {
	c := NewMockClock(epoch)
	timer := c.AfterFunc(time.Second, func() {})

	c.Advance(time.Second)
	assert.False(t, timer.Stop())
}

func TestMockClock_FiresInDeadlineOrder(t *testing.T) {
	c := NewMockClock(epoch)

	var order []int
	c.AfterFunc(3*time.Minute, func() { order = append(order, 3) })
	c.AfterFunc(1*time.Minute, func() { order = append(order, 1) })
	c.AfterFunc(2*time.Minute, func() { order = append(order, 2) })

	c.Advance(5 * time.Minute)
	assert.Equal(t, []int{1, 2, 3}, order)
}

func TestMockClock_CallbackSchedulesTimer(t *testing.T) {
	c := NewMockClock(epoch)

	var fired int
	c.AfterFunc(time.Second, func() {
		fired++
		c.AfterFunc(time.Second, func() { fired++ })
	})

	c.Advance(time.Second)
	assert.Equal(t, 1, fired)
	assert.Equal(t, 1, c.Pending())

	c.Advance(time.Second)
	assert.Equal(t, 2, fired)
}
