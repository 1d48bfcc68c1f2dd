package core

import (
	"testing"
	"time"
)

func TestFixedStepPacing(t *testing.T) {
	now := time.Unix(1000, 0)
	fs := NewFixedStep(10)
	fs.now = func() time.Time { return now }

	if fs.Interval() != 100*time.Millisecond {
		t.Fatalf("interval %v, expected 100ms", fs.Interval())
	}
	if !fs.ShouldStep() {
		t.Fatal("first call should step")
	}
	now = now.Add(50 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatal("half an interval should not step")
	}
	now = now.Add(50 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("a full interval should step")
	}

	// A long stall drains one step per call.
	now = now.Add(300 * time.Millisecond)
	steps := 0
	for i := 0; i < 5; i++ {
		if fs.ShouldStep() {
			steps++
		}
	}
	if steps != 3 {
		t.Fatalf("stall produced %d steps, expected 3", steps)
	}
}

func TestFixedStepReset(t *testing.T) {
	now := time.Unix(1000, 0)
	fs := NewFixedStep(4)
	fs.now = func() time.Time { return now }
	fs.Reset()
	if fs.ShouldStep() {
		t.Fatal("reset should require a full interval before stepping")
	}
	now = now.Add(250 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("expected a step after one interval")
	}
}

func TestFixedStepDefaultRate(t *testing.T) {
	fs := NewFixedStep(0)
	if fs.Interval() != time.Second/60 {
		t.Fatalf("interval %v, expected 1/60s", fs.Interval())
	}
}
