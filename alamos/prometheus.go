package alamos

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// pathEscaper escapes dots inside experiment keys so that distinct trees never share a path.
var pathEscaper = strings.NewReplacer(`\`, `\\`, ".", `\.`)

// collector exports the count and total of every Duration in an experiment tree.
type collector struct {
	exp    Experiment
	logger *zap.Logger

	count *prometheus.Desc
	total *prometheus.Desc
}

// NewCollector returns a prometheus.Collector over the Durations in exp and all of its sub
// experiments. Metrics are labeled with the dotted experiment path, in which dots inside a key
// are escaped as `\.`, and with the Duration key.
func NewCollector(exp Experiment) prometheus.Collector {
	o := exp.opts()
	labels := []string{"experiment", "metric"}
	return &collector{
		exp:    exp,
		logger: o.logger,
		count: prometheus.NewDesc(
			prometheus.BuildFQName(o.namespace, "duration", "count"),
			"Number of intervals recorded by the duration",
			labels, nil,
		),
		total: prometheus.NewDesc(
			prometheus.BuildFQName(o.namespace, "duration", "seconds_total"),
			"Exact sum of the intervals recorded by the duration, in seconds",
			labels, nil,
		),
	}
}

// Register registers a collector for exp with reg.
func Register(exp Experiment, reg prometheus.Registerer) error {
	if err := reg.Register(NewCollector(exp)); err != nil {
		return errors.Wrapf(err, "alamos: register collector for experiment %q", exp.Key())
	}
	return nil
}

func (c *collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.count
	ch <- c.total
}

func (c *collector) Collect(ch chan<- prometheus.Metric) {
	n := c.collect(ch, nil, c.exp)
	c.logger.Debug("collected durations", zap.String("experiment", c.exp.Key()), zap.Int("count", n))
}

func (c *collector) collect(ch chan<- prometheus.Metric, path []string, exp Experiment) int {
	path = append(path, pathEscaper.Replace(exp.Key()))
	name := strings.Join(path, ".")
	n := 0
	for key, e := range exp.Entries() {
		d, ok := e.(Duration)
		if !ok {
			continue
		}
		ch <- prometheus.MustNewConstMetric(c.count, prometheus.CounterValue, float64(d.Count()), name, key)
		ch <- prometheus.MustNewConstMetric(c.total, prometheus.CounterValue, d.Total().Seconds(), name, key)
		n++
	}
	for _, child := range exp.Children() {
		n += c.collect(ch, path, child)
	}
	return n
}
