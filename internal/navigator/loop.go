package navigator

import (
	"context"
	"time"

	"tensor-field/internal/core"
)

// DefaultTrailLimit bounds the number of positions a Loop remembers.
const DefaultTrailLimit = 1 << 16

// Loop drives an Agent one tick per host frame. The host calls Frame from its
// own frame callback and keeps calling while Frame reports true; a Reset
// between frames stops the loop at the next frame boundary.
type Loop struct {
	agent *Agent
	field Sampler

	trail      []core.Point
	trailLimit int
}

// NewLoop binds an agent to the field it samples.
func NewLoop(agent *Agent, field Sampler) *Loop {
	return &Loop{agent: agent, field: field, trailLimit: DefaultTrailLimit}
}

// Agent returns the driven agent.
func (l *Loop) Agent() *Agent { return l.agent }

// SetTrailLimit changes how many positions are kept; non-positive disables
// the trail.
func (l *Loop) SetTrailLimit(n int) {
	l.trailLimit = n
	l.trimTrail()
}

// Trail returns the positions visited since the trail was last cleared. Each
// run contributes its start position followed by one position per tick.
func (l *Loop) Trail() []core.Point { return l.trail }

// ClearTrail forgets visited positions.
func (l *Loop) ClearTrail() { l.trail = l.trail[:0] }

// Frame runs one tick if the agent is running and reports whether another
// frame should be requested. A sampling error stops the loop; the agent keeps
// its last good context.
func (l *Loop) Frame() (bool, error) {
	if l.agent.State() != Running {
		return false, nil
	}
	if l.agent.Context().Ticks == 0 {
		l.record(l.agent.Context().Position)
	}
	if err := l.agent.Tick(l.field); err != nil {
		return false, err
	}
	l.record(l.agent.Context().Position)
	return l.agent.State() == Running, nil
}

// Run drives frames from the frames channel until the agent stops running,
// limit ticks have been taken (limit <= 0 means no limit), the channel is
// closed, or ctx is done. It returns the number of ticks taken.
func (l *Loop) Run(ctx context.Context, frames <-chan time.Time, limit int) (int, error) {
	ticks := 0
	for l.agent.State() == Running {
		if limit > 0 && ticks >= limit {
			return ticks, nil
		}
		select {
		case <-ctx.Done():
			return ticks, ctx.Err()
		case _, ok := <-frames:
			if !ok {
				return ticks, nil
			}
			more, err := l.Frame()
			if err != nil {
				return ticks, err
			}
			ticks++
			if !more {
				return ticks, nil
			}
		}
	}
	return ticks, nil
}

func (l *Loop) record(p core.Point) {
	if l.trailLimit <= 0 {
		return
	}
	l.trail = append(l.trail, p)
	l.trimTrail()
}

func (l *Loop) trimTrail() {
	if l.trailLimit <= 0 {
		l.trail = l.trail[:0]
		return
	}
	if over := len(l.trail) - l.trailLimit; over > 0 {
		l.trail = append(l.trail[:0], l.trail[over:]...)
	}
}
