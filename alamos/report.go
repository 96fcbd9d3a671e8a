package alamos

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Report is a serializable snapshot of an experiment tree. Intervals are reported in seconds.
type Report struct {
	ID       uuid.UUID              `json:"id"`
	Key      string                 `json:"key"`
	Metrics  map[string]interface{} `json:"metrics"`
	Children map[string]Report      `json:"children,omitempty"`
}

func (e *experiment) Report() Report {
	r := Report{ID: e.id, Key: e.key, Metrics: make(map[string]interface{})}
	for k, m := range e.Entries() {
		r.Metrics[k] = m.report()
	}
	children := e.Children()
	if len(children) > 0 {
		r.Children = make(map[string]Report, len(children))
		for k, c := range children {
			r.Children[k] = c.Report()
		}
	}
	e.options.logger.Debug("generated report",
		zap.String("key", e.key),
		zap.Int("metrics", len(r.Metrics)),
		zap.Int("children", len(r.Children)),
	)
	return r
}
