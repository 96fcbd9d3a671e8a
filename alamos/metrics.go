package alamos

import (
	"sync"

	"itimer"
)

// Metric records values of type T. Implementations are safe for concurrent use.
type Metric[T any] interface {
	Entry
	// Record records a value.
	Record(T)
	// Values returns the recorded values.
	Values() []T
	// Count returns the number of values recorded.
	Count() int
}

// |||||| GAUGE ||||||

// gauge keeps only the most recently recorded value.
type gauge[T any] struct {
	baseEntry
	mu    sync.RWMutex
	count int
	value T
}

// NewGauge creates a gauge that keeps the last recorded value and adds it to exp.
func NewGauge[T any](exp Experiment, key string) Metric[T] {
	if m := nilMetric[T](exp, key); m != nil {
		return m
	}
	m := newGauge[T](key)
	exp.Add(m)
	return m
}

func newGauge[T any](key string) *gauge[T] {
	return &gauge[T]{baseEntry: baseEntry{k: key}}
}

func (g *gauge[T]) Count() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.count
}

func (g *gauge[T]) Values() []T {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if g.count == 0 {
		return nil
	}
	return []T{g.value}
}

func (g *gauge[T]) Record(v T) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.count++
	g.value = v
}

func (g *gauge[T]) report() interface{} {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return map[string]interface{}{"count": g.count, "value": reportValue(g.value)}
}

// |||||| SERIES ||||||

// series keeps every recorded value.
type series[T any] struct {
	baseEntry
	mu     sync.RWMutex
	values []T
}

// NewSeries creates a series that keeps every recorded value and adds it to exp.
func NewSeries[T any](exp Experiment, key string) Metric[T] {
	if m := nilMetric[T](exp, key); m != nil {
		return m
	}
	m := newSeries[T](key)
	exp.Add(m)
	return m
}

func newSeries[T any](key string) *series[T] {
	return &series[T]{baseEntry: baseEntry{k: key}}
}

func (s *series[T]) Values() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	values := make([]T, len(s.values))
	copy(values, s.values)
	return values
}

func (s *series[T]) Record(v T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values = append(s.values, v)
}

func (s *series[T]) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.values)
}

func (s *series[T]) report() interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()
	values := make([]interface{}, len(s.values))
	for i, v := range s.values {
		values[i] = reportValue(v)
	}
	return map[string]interface{}{"count": len(s.values), "values": values}
}

// |||||| EMPTY ||||||

type empty[T any] struct {
	baseEntry
}

func (e *empty[T]) Values() []T {
	return nil
}

func (e *empty[T]) Record(T) {}

func (e *empty[T]) Count() int {
	return 0
}

func (e *empty[T]) report() interface{} {
	return nil
}

func nilMetric[T any](exp Experiment, key string) Metric[T] {
	if exp != nil {
		return nil
	}
	return &empty[T]{baseEntry: baseEntry{k: key}}
}

// reportValue converts intervals to seconds so that reports carry human readable units.
func reportValue(v interface{}) interface{} {
	if iv, ok := v.(itimer.Interval); ok {
		return iv.Seconds()
	}
	return v
}
