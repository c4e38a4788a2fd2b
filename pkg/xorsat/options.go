package xorsat

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Option configures an Extractor, a Solver or Run.
type Option func(*options)

type options struct {
	log       logrus.FieldLogger
	monitor   *Monitor
	solutions bool
}

// WithLogger sets the logger used for debug tracing. By default nothing is
// logged.
func WithLogger(log logrus.FieldLogger) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}

// WithMonitor records extraction and search statistics into m.
func WithMonitor(m *Monitor) Option {
	return func(o *options) {
		o.monitor = m
	}
}

// WithSolutions keeps every satisfying assignment in Result.Solutions
// instead of only counting them.
func WithSolutions() Option {
	return func(o *options) {
		o.solutions = true
	}
}

func newOptions(opts []Option) options {
	o := options{log: discardLogger()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
