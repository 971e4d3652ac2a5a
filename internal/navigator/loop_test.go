package navigator

import (
	"context"
	"errors"
	"testing"
	"time"

	"tensor-field/internal/core"
)

func newRunningLoop(t *testing.T, s Sampler) *Loop {
	t.Helper()
	agent, err := NewAgent(DefaultConfig())
	if err != nil {
		t.Fatalf("NewAgent: %v", err)
	}
	if err := agent.SelectStart(core.Point{X: 0, Y: 0}); err != nil {
		t.Fatalf("SelectStart: %v", err)
	}
	if err := agent.SelectAngle(core.Point{X: 10, Y: 0}); err != nil {
		t.Fatalf("SelectAngle: %v", err)
	}
	return NewLoop(agent, s)
}

func frames(n int) chan time.Time {
	ch := make(chan time.Time, n)
	for i := 0; i < n; i++ {
		ch <- time.Time{}
	}
	return ch
}

func TestFrameStopsAfterReset(t *testing.T) {
	loop := newRunningLoop(t, constSampler(127.5))
	for i := 0; i < 3; i++ {
		more, err := loop.Frame()
		if err != nil || !more {
			t.Fatalf("frame %d: more=%v err=%v", i, more, err)
		}
	}
	loop.Agent().Reset()
	before := loop.Agent().Context()

	more, err := loop.Frame()
	if err != nil || more {
		t.Fatalf("frame after reset: more=%v err=%v", more, err)
	}
	after := loop.Agent().Context()
	if after != before {
		t.Fatalf("context changed after reset: %+v != %+v", after, before)
	}
	if after.State != SelectingPoint {
		t.Fatalf("state = %s, want %s", after.State, SelectingPoint)
	}
}

func TestTrailRecordsStartAndEachTick(t *testing.T) {
	loop := newRunningLoop(t, constSampler(127.5))
	for i := 0; i < 4; i++ {
		if _, err := loop.Frame(); err != nil {
			t.Fatalf("Frame: %v", err)
		}
	}
	trail := loop.Trail()
	if len(trail) != 5 {
		t.Fatalf("trail length = %d, want 5", len(trail))
	}
	if trail[0] != (core.Point{}) {
		t.Fatalf("trail should start at the start point, got %+v", trail[0])
	}
	if trail[4] != loop.Agent().Context().Position {
		t.Fatal("trail should end at the current position")
	}

	loop.SetTrailLimit(2)
	if len(loop.Trail()) != 2 || loop.Trail()[1] != trail[4] {
		t.Fatalf("trimmed trail = %+v", loop.Trail())
	}
	loop.ClearTrail()
	if len(loop.Trail()) != 0 {
		t.Fatal("ClearTrail should empty the trail")
	}
}

func TestRunHonoursLimit(t *testing.T) {
	loop := newRunningLoop(t, constSampler(127.5))
	ticks, err := loop.Run(context.Background(), frames(50), 10)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if ticks != 10 || loop.Agent().Context().Ticks != 10 {
		t.Fatalf("ticks = %d (agent %d), want 10", ticks, loop.Agent().Context().Ticks)
	}
}

func TestRunStopsWhenFramesClose(t *testing.T) {
	loop := newRunningLoop(t, constSampler(127.5))
	ch := frames(3)
	close(ch)
	ticks, err := loop.Run(context.Background(), ch, 0)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if ticks != 3 {
		t.Fatalf("ticks = %d, want 3", ticks)
	}
}

func TestRunCancelled(t *testing.T) {
	loop := newRunningLoop(t, constSampler(127.5))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	ticks, err := loop.Run(ctx, make(chan time.Time), 0)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if ticks != 0 {
		t.Fatalf("ticks = %d, want 0", ticks)
	}
}

func TestRunReturnsSamplingError(t *testing.T) {
	sentinel := errors.New("off the map")
	loop := newRunningLoop(t, failingSampler{err: sentinel})
	before := loop.Agent().Context()
	_, err := loop.Run(context.Background(), frames(5), 0)
	if !errors.Is(err, sentinel) {
		t.Fatalf("expected sampler error, got %v", err)
	}
	if loop.Agent().Context() != before {
		t.Fatal("agent context must stay at its last good value")
	}
}

func TestRunIdleWhenNotRunning(t *testing.T) {
	agent, _ := NewAgent(DefaultConfig())
	loop := NewLoop(agent, constSampler(0))
	ticks, err := loop.Run(context.Background(), frames(5), 0)
	if err != nil || ticks != 0 {
		t.Fatalf("idle Run = %d, %v", ticks, err)
	}
}
