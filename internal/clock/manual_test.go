package clock

import (
	"testing"
	"time"
)

var epoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func TestManual_AdvanceFiresInOrder(t *testing.T) {
	m := NewManual(epoch)
	var order []string

	m.AfterFunc(300*time.Millisecond, func() { order = append(order, "c") })
	m.AfterFunc(100*time.Millisecond, func() { order = append(order, "a") })
	m.AfterFunc(200*time.Millisecond, func() { order = append(order, "b") })

	m.Advance(250 * time.Millisecond)
	if len(order) != 2 || order[0] != "a" || order[1] != "b" {
		t.Fatalf("order = %v, want [a b]", order)
	}
	if m.Pending() != 1 {
		t.Errorf("Pending() = %d, want 1", m.Pending())
	}

	m.Advance(50 * time.Millisecond)
	if len(order) != 3 || order[2] != "c" {
		t.Fatalf("order = %v, want [a b c]", order)
	}
}

func TestManual_NowDuringCallback(t *testing.T) {
	m := NewManual(epoch)
	var seen time.Time
	m.AfterFunc(time.Second, func() { seen = m.Now() })

	m.Advance(5 * time.Second)

	if !seen.Equal(epoch.Add(time.Second)) {
		t.Errorf("Now() in callback = %v, want %v", seen, epoch.Add(time.Second))
	}
	if !m.Now().Equal(epoch.Add(5 * time.Second)) {
		t.Errorf("Now() after Advance = %v, want %v", m.Now(), epoch.Add(5*time.Second))
	}
}

func TestManual_Stop(t *testing.T) {
	m := NewManual(epoch)
	fired := false
	timer := m.AfterFunc(time.Second, func() { fired = true })

	if !timer.Stop() {
		t.Error("Stop() on pending timer = false, want true")
	}
	if timer.Stop() {
		t.Error("second Stop() = true, want false")
	}

	m.Advance(2 * time.Second)
	if fired {
		t.Error("stopped timer fired")
	}
}

func TestManual_ChainedCallbacks(t *testing.T) {
	m := NewManual(epoch)
	ticks := 0
	var tick func()
	tick = func() {
		ticks++
		m.AfterFunc(time.Second, tick)
	}
	m.AfterFunc(time.Second, tick)

	m.Advance(5 * time.Second)

	if ticks != 5 {
		t.Errorf("ticks = %d, want 5", ticks)
	}
}

func TestManual_SameDeadlineKeepsScheduleOrder(t *testing.T) {
	m := NewManual(epoch)
	var order []int
	for i := 0; i < 5; i++ {
		i := i
		m.AfterFunc(time.Second, func() { order = append(order, i) })
	}

	m.Advance(time.Second)

	for i, v := range order {
		if v != i {
			t.Fatalf("order = %v, want ascending", order)
		}
	}
}

func TestReal_AfterFunc(t *testing.T) {
	r := NewReal()
	done := make(chan struct{})
	r.AfterFunc(10*time.Millisecond, func() { close(done) })

	select {
	case <-done:
	case <-time.After(1 * time.Second):
		t.Fatal("timed out waiting for real timer")
	}
}
