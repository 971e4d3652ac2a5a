package logging

import (
	"strconv"

	"github.com/felixgeelhaar/bolt/v3"
)

// Field applies structured data to a log event.
type Field func(*bolt.Event) *bolt.Event

// Str adds an arbitrary string field.
func Str(key, value string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str(key, value)
	}
}

// Int adds an arbitrary integer field.
func Int(key string, value int) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int(key, value)
	}
}

// Bool adds an arbitrary boolean field.
func Bool(key string, value bool) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Bool(key, value)
	}
}

// RunID tags an event with the trace run identifier.
func RunID(id string) Field { return Str("run_id", id) }

// State adds the agent state.
func State(s string) Field { return Str("state", s) }

// FromState adds the state a transition left.
func FromState(s string) Field { return Str("from_state", s) }

// ToState adds the state a transition entered.
func ToState(s string) Field { return Str("to_state", s) }

// Ticks adds a tick count.
func Ticks(n int) Field { return Int("ticks", n) }

// Float adds a float rendered with the given precision; -1 keeps the
// shortest exact representation.
func Float(key string, v float64, prec int) Field {
	return Str(key, strconv.FormatFloat(v, 'f', prec, 64))
}

// Point adds x and y fields for a coordinate.
func Point(prefix string, x, y float64) Field {
	return func(e *bolt.Event) *bolt.Event {
		e = e.Str(prefix+"_x", strconv.FormatFloat(x, 'f', 3, 64))
		return e.Str(prefix+"_y", strconv.FormatFloat(y, 'f', 3, 64))
	}
}

// Err adds an error field.
func Err(err error) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Err(err)
	}
}
