package go4rs

import (
	"fmt"
	"testing"
	"time"
)

func TestClosureHandler(t *testing.T) {
	var received Invocation
	var dropCalled bool

	closure := NewClosure(
		func(inv Invocation) {
			received = inv
		},
		func() {
			dropCalled = true
		},
	)

	callback, drop, ch := closure.ToCbDropHandler()

	if ch != nil {
		t.Error("Closure should not have a channel")
	}

	callback(Invocation{ClassName: "string", JSON: `"hi"`})
	if received.ClassName != "string" || received.JSON != `"hi"` {
		t.Errorf("received = %+v, want string/\"hi\"", received)
	}

	drop()
	if !dropCalled {
		t.Error("drop function was not called")
	}
}

func TestFifoChannelHandler(t *testing.T) {
	fifo := NewFifoChannel[Invocation](10)
	callback, drop, ch := fifo.ToCbDropHandler()

	if ch == nil {
		t.Fatal("FifoChannel should have a channel")
	}

	want := []Invocation{
		{ClassName: "int", JSON: "1"},
		{ClassName: "int", JSON: "2"},
		{ClassName: "int", JSON: "3"},
	}
	for _, inv := range want {
		callback(inv)
	}

	for i, expected := range want {
		select {
		case received := <-ch:
			if received != expected {
				t.Errorf("invocation %d: received = %+v, want %+v", i, received, expected)
			}
		case <-time.After(time.Second):
			t.Fatalf("timeout waiting for invocation %d", i)
		}
	}

	drop()
	select {
	case _, ok := <-ch:
		if ok {
			t.Error("channel should be closed after drop")
		}
	case <-time.After(time.Second):
		t.Error("timeout waiting for channel close")
	}
}

func TestRingChannelDropsOldest(t *testing.T) {
	ring := NewRingChannel[Invocation](2)
	callback, _, ch := ring.ToCbDropHandler()

	for i := 1; i <= 3; i++ {
		callback(Invocation{ClassName: "int", JSON: fmt.Sprintf("%d", i)})
	}

	// Oldest (1) was dropped; 2 and 3 remain
	first := <-ch
	if first.JSON != "2" {
		t.Errorf("first remaining invocation = %q, want %q", first.JSON, "2")
	}
	second := <-ch
	if second.JSON != "3" {
		t.Errorf("second remaining invocation = %q, want %q", second.JSON, "3")
	}
}

func TestRingChannelRejectsZeroCapacity(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewRingChannel(0) should panic")
		}
	}()
	NewRingChannel[Invocation](0)
}
