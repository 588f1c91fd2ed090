package events

import (
	"testing"
	"time"
)

func TestNewBus(t *testing.T) {
	bus := NewBus()
	if bus == nil {
		t.Fatal("NewBus() returned nil")
	}
	if bus.Events == nil {
		t.Fatal("Events channel is nil")
	}
}

func TestBus_PublishReceive(t *testing.T) {
	bus := NewBus()

	if !bus.Publish(Event{Kind: KindPhase, Phase: "playing"}) {
		t.Fatal("Publish() = false on empty bus")
	}

	select {
	case received := <-bus.Events:
		if received.Kind != KindPhase || received.Phase != "playing" {
			t.Errorf("received = %+v, want phase=playing", received)
		}
	case <-time.After(1 * time.Second):
		t.Fatal("timed out waiting for event")
	}
}

func TestBus_DropsWhenFull(t *testing.T) {
	bus := NewBus()

	for i := 0; i < cap(bus.Events); i++ {
		if !bus.Publish(Event{Kind: KindTick}) {
			t.Fatalf("Publish() #%d = false before buffer full", i)
		}
	}

	done := make(chan bool)
	go func() {
		done <- bus.Publish(Event{Kind: KindTick})
	}()

	select {
	case ok := <-done:
		if ok {
			t.Error("Publish() on full bus = true, want false")
		}
	case <-time.After(1 * time.Second):
		t.Fatal("Publish blocked on full bus")
	}
	if bus.Dropped() != 1 {
		t.Errorf("Dropped() = %d, want 1", bus.Dropped())
	}
}

func TestBus_Close(t *testing.T) {
	bus := NewBus()
	bus.Close()
	bus.Close()

	if bus.Publish(Event{Kind: KindTick}) {
		t.Error("Publish() after Close = true, want false")
	}
	if _, ok := <-bus.Events; ok {
		t.Error("Events should be closed")
	}
}
