// Package alamos instruments code with experiments: named, hierarchical collections of
// metrics. Durations are timed with itimer, so totals accumulate exactly and are only
// converted to seconds when reported. Every constructor accepts a nil Experiment and returns a
// no-op metric, so instrumentation can be left in place at zero cost when it is disabled.
package alamos

import (
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Experiment is a named collection of metrics and sub experiments. Implementations are safe for
// concurrent use.
type Experiment interface {
	// Key returns the key the experiment was created with.
	Key() string
	// ID uniquely identifies this run of the experiment.
	ID() uuid.UUID
	// Sub creates a child experiment that inherits the options of its parent.
	Sub(key string) Experiment
	// Add adds a metric to the experiment, replacing any metric with the same key.
	Add(Entry)
	// Entries returns a snapshot of the metrics in the experiment.
	Entries() map[string]Entry
	// Children returns a snapshot of the sub experiments.
	Children() map[string]Experiment
	// Report returns a serializable snapshot of the experiment tree.
	Report() Report
	opts() *options
}

type experiment struct {
	mu       sync.RWMutex
	key      string
	id       uuid.UUID
	options  *options
	children map[string]Experiment
	entries  map[string]Entry
}

// New creates a new root Experiment.
func New(key string, opts ...Option) Experiment {
	return newExperiment(key, newOptions(opts...))
}

func newExperiment(key string, o *options) *experiment {
	e := &experiment{
		key:      key,
		id:       uuid.New(),
		options:  o,
		children: make(map[string]Experiment),
		entries:  make(map[string]Entry),
	}
	o.logger.Debug("created experiment", zap.String("key", key), zap.Stringer("id", e.id))
	return e
}

func (e *experiment) Key() string { return e.key }

func (e *experiment) ID() uuid.UUID { return e.id }

func (e *experiment) opts() *options { return e.options }

func (e *experiment) Sub(key string) Experiment {
	exp := newExperiment(key, e.options)
	e.mu.Lock()
	defer e.mu.Unlock()
	e.children[key] = exp
	return exp
}

func (e *experiment) Add(m Entry) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.entries[m.key()] = m
}

func (e *experiment) Entries() map[string]Entry {
	e.mu.RLock()
	defer e.mu.RUnlock()
	entries := make(map[string]Entry, len(e.entries))
	for k, v := range e.entries {
		entries[k] = v
	}
	return entries
}

func (e *experiment) Children() map[string]Experiment {
	e.mu.RLock()
	defer e.mu.RUnlock()
	children := make(map[string]Experiment, len(e.children))
	for k, v := range e.children {
		children[k] = v
	}
	return children
}

// Sub creates a child of exp, returning nil if exp is nil.
func Sub(exp Experiment, key string) Experiment {
	if exp == nil {
		return nil
	}
	return exp.Sub(key)
}

// Entry is a metric held by an Experiment. It is implemented only by the metrics of this package.
type Entry interface {
	key() string
	report() interface{}
}

type baseEntry struct {
	k string
}

func (b baseEntry) key() string {
	return b.k
}
