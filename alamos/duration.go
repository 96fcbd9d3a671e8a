package alamos

import (
	"sync"

	"go.uber.org/zap"
	"itimer"
)

// |||||| INTERFACE ||||||

// Duration is a Metric of itimer.Intervals that can time work itself.
type Duration interface {
	Metric[itimer.Interval]
	// Start marks the beginning of a timed section. Start panics if the Duration is already
	// running.
	Start()
	// Stop records and returns the Interval elapsed since Start. Stop panics if the Duration is
	// not running.
	Stop() itimer.Interval
	// Time runs f between Start and Stop. If f panics, nothing is recorded and the Duration is
	// left stopped.
	Time(f func()) itimer.Interval
	// Total returns the exact sum of every recorded Interval.
	Total() itimer.Interval
}

// |||||| BASE ||||||

type duration struct {
	Metric[itimer.Interval]
	mu      sync.Mutex
	start   itimer.Timestamp
	running bool
	total   itimer.Interval
	logger  *zap.Logger
}

func (d *duration) Start() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.running {
		panic("duration already started. please call Stop() first")
	}
	d.running = true
	d.start.Begin()
}

func (d *duration) Stop() itimer.Interval {
	d.mu.Lock()
	if !d.running {
		d.mu.Unlock()
		panic("duration not started. please call Start() first")
	}
	elapsed := d.start.End()
	d.running = false
	d.mu.Unlock()
	d.Record(elapsed)
	d.logger.Debug("duration stopped", zap.String("key", d.key()), zap.Stringer("elapsed", elapsed))
	return elapsed
}

func (d *duration) Time(f func()) itimer.Interval {
	d.Start()
	done := false
	defer func() {
		if !done {
			d.abort()
		}
	}()
	f()
	done = true
	return d.Stop()
}

// abort clears the running state without recording anything.
func (d *duration) abort() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.running = false
}

func (d *duration) Record(iv itimer.Interval) {
	d.mu.Lock()
	d.total.Accumulate(iv)
	d.mu.Unlock()
	d.Metric.Record(iv)
}

func (d *duration) Total() itimer.Interval {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.total
}

func (d *duration) report() interface{} {
	r := map[string]interface{}{"total": d.Total().Seconds()}
	if base, ok := d.Metric.report().(map[string]interface{}); ok {
		for k, v := range base {
			r[k] = v
		}
	}
	return r
}

// NewSeriesDuration creates a Duration that keeps every recorded Interval.
func NewSeriesDuration(exp Experiment, key string) Duration {
	if m := nilDuration(exp, key); m != nil {
		return m
	}
	return addDuration(exp, newSeries[itimer.Interval](key))
}

// NewGaugeDuration creates a Duration that keeps only the last recorded Interval, along with
// the count and total of all of them.
func NewGaugeDuration(exp Experiment, key string) Duration {
	if m := nilDuration(exp, key); m != nil {
		return m
	}
	return addDuration(exp, newGauge[itimer.Interval](key))
}

func addDuration(exp Experiment, m Metric[itimer.Interval]) Duration {
	d := &duration{Metric: m, logger: exp.opts().logger}
	exp.Add(d)
	return d
}

// |||||| EMPTY ||||||

type emptyDuration struct {
	Metric[itimer.Interval]
}

func (e emptyDuration) Record(itimer.Interval) {}

func (e emptyDuration) Start() {}

func (e emptyDuration) Stop() itimer.Interval {
	return itimer.Interval{}
}

func (e emptyDuration) Time(f func()) itimer.Interval {
	f()
	return itimer.Interval{}
}

func (e emptyDuration) Total() itimer.Interval {
	return itimer.Interval{}
}

func nilDuration(exp Experiment, key string) Duration {
	if exp != nil {
		return nil
	}
	return emptyDuration{nilMetric[itimer.Interval](exp, key)}
}
