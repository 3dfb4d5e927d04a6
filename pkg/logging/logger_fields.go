package logging

import (
	"fmt"
	"time"
)

func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

func Int(key string, value int) Field {
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

// Component names the emitting package
func Component(name string) Field {
	return String("component", name)
}

// NodeID renders a graph identifier.
func NodeID(id fmt.Stringer) Field {
	return String("node_id", id.String())
}

// Item renders an arbitrary search item with %v, since item types need not
// be JSON-marshalable.
func Item(key string, item any) Field {
	return String(key, fmt.Sprintf("%v", item))
}

func Operation(op string) Field {
	return String("operation", op)
}

func Latency(d time.Duration) Field {
	return Duration("latency", d)
}

func Count(n int) Field {
	return Int("count", n)
}

func Rounds(n int) Field {
	return Int("rounds", n)
}

func Hops(n int) Field {
	return Int("hops", n)
}
