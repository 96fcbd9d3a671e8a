package testutil

import (
	"time"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega/gmeasure"
	"itimer"
)

// RunIntervalExp samples f n times, timing each call with an itimer.Timestamp, and attaches
// the resulting experiment to the current spec's report.
func RunIntervalExp(name string, n int, f func()) *gmeasure.Experiment {
	exp := gmeasure.NewExperiment(name)
	ginkgo.AddReportEntry(exp.Name, exp)
	exp.Sample(func(idx int) {
		var ts itimer.Timestamp
		ts.Begin()
		f()
		exp.RecordDuration(name, ts.End().Duration(), gmeasure.Precision(time.Nanosecond))
	}, gmeasure.SamplingConfig{N: n})
	return exp
}
