package xorsat

import "github.com/prometheus/client_golang/prometheus"

// Collector exports the statistics accumulated by a Monitor as Prometheus
// metrics. Values are read from the monitor at collection time.
type Collector struct {
	monitor *Monitor

	solves      *prometheus.Desc
	sources     *prometheus.Desc
	derivations *prometheus.Desc
	extracted   *prometheus.Desc
	nodes       *prometheus.Desc
	pruned      *prometheus.Desc
	solutions   *prometheus.Desc
	maxDepth    *prometheus.Desc
	extractTime *prometheus.Desc
	searchTime  *prometheus.Desc
}

var _ prometheus.Collector = (*Collector)(nil)

// NewCollector returns a collector reading from m.
func NewCollector(m *Monitor) *Collector {
	return &Collector{
		monitor: m,
		solves: prometheus.NewDesc("xorsat_solves_total",
			"Number of completed searches.", nil, nil),
		sources: prometheus.NewDesc("xorsat_source_equations_total",
			"Raw script equations fed to extraction.", nil, nil),
		derivations: prometheus.NewDesc("xorsat_derivations_total",
			"Extraction derivations by outcome.", []string{"outcome"}, nil),
		extracted: prometheus.NewDesc("xorsat_extracted_equations_total",
			"Distinct equations kept after extraction by kind.", []string{"kind"}, nil),
		nodes: prometheus.NewDesc("xorsat_search_nodes_total",
			"Search nodes explored.", nil, nil),
		pruned: prometheus.NewDesc("xorsat_search_pruned_total",
			"Branches pruned by a violated equation.", nil, nil),
		solutions: prometheus.NewDesc("xorsat_solutions_total",
			"Satisfying assignments found.", nil, nil),
		maxDepth: prometheus.NewDesc("xorsat_search_max_depth",
			"Deepest branching level reached by any search.", nil, nil),
		extractTime: prometheus.NewDesc("xorsat_extract_seconds_total",
			"Time spent extracting.", nil, nil),
		searchTime: prometheus.NewDesc("xorsat_search_seconds_total",
			"Time spent searching.", nil, nil),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.solves
	ch <- c.sources
	ch <- c.derivations
	ch <- c.extracted
	ch <- c.nodes
	ch <- c.pruned
	ch <- c.solutions
	ch <- c.maxDepth
	ch <- c.extractTime
	ch <- c.searchTime
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	s := c.monitor.Snapshot()
	counter := func(d *prometheus.Desc, v float64, labels ...string) {
		ch <- prometheus.MustNewConstMetric(d, prometheus.CounterValue, v, labels...)
	}
	counter(c.solves, float64(c.monitor.Runs()))
	counter(c.sources, float64(s.SourceEquations))
	counter(c.derivations, float64(s.Derived), "derived")
	counter(c.derivations, float64(s.Discarded), "discarded")
	counter(c.derivations, float64(s.Fallbacks), "fallback")
	counter(c.extracted, float64(s.Constants), "constant")
	counter(c.extracted, float64(s.Equations), "partial")
	counter(c.nodes, float64(s.NodesExplored))
	counter(c.pruned, float64(s.Pruned))
	counter(c.solutions, float64(s.SolutionsFound))
	ch <- prometheus.MustNewConstMetric(c.maxDepth, prometheus.GaugeValue, float64(s.MaxDepth))
	counter(c.extractTime, s.ExtractTime.Seconds())
	counter(c.searchTime, s.SearchTime.Seconds())
}
