package logging

import (
	"time"

	"github.com/google/uuid"
)

func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

func Float64(key string, value float64) Field {
	return Field{Key: key, Value: value}
}

func Bool(key string, value bool) Field {
	return Field{Key: key, Value: value}
}

func Duration(key string, value time.Duration) Field {
	return Field{Key: key, Value: value.String()}
}

func Error(err error) Field {
	if err == nil {
		return Field{Key: "error", Value: nil}
	}
	return Field{Key: "error", Value: err.Error()}
}

func Any(key string, value any) Field {
	return Field{Key: key, Value: value}
}

// Domain helpers

func Component(name string) Field {
	return String("component", name)
}

func Operation(op string) Field {
	return String("operation", op)
}

// NodeID logs a node identifier in its canonical string form.
func NodeID(id uuid.UUID) Field {
	return String("node_id", id.String())
}

// ParentID logs the uplink a node points at.
func ParentID(id uuid.UUID) Field {
	return String("parent_id", id.String())
}

func Zoom(z float64) Field {
	return Float64("zoom", z)
}

// Pan logs a pan offset as a two-element array.
func Pan(x, y float64) Field {
	return Field{Key: "pan", Value: [2]float64{x, y}}
}

func Latency(d time.Duration) Field {
	return Duration("latency", d)
}

func Count(n int) Field {
	return Int("count", n)
}

func Path(p string) Field {
	return String("path", p)
}
