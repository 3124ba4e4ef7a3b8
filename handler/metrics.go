package handler

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/philipp01105/bootlog/core"
)

// Collector exports a StatsProvider's counters as Prometheus metrics.
type Collector struct {
	provider   StatsProvider
	written    *prometheus.Desc
	suppressed *prometheus.Desc
}

// NewCollector creates a Collector reading from p on every scrape.
func NewCollector(p StatsProvider) *Collector {
	return &Collector{
		provider: p,
		written: prometheus.NewDesc(
			"bootlog_lines_written_total",
			"Log lines written to the sink.",
			[]string{"level"}, nil,
		),
		suppressed: prometheus.NewDesc(
			"bootlog_lines_suppressed_total",
			"Log events dropped by environment suppression.",
			[]string{"level"}, nil,
		),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.written
	ch <- c.suppressed
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	snap := c.provider.Stats()
	for _, l := range core.Levels {
		ch <- prometheus.MustNewConstMetric(c.written, prometheus.CounterValue, float64(snap.Processed[l]), l.String())
		ch <- prometheus.MustNewConstMetric(c.suppressed, prometheus.CounterValue, float64(snap.Suppressed[l]), l.String())
	}
}
