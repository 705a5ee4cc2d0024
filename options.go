package seedselect

type options struct {
	logger           *Logger
	metricsCollector MetricsCollector
	parallelism      int
	layout           Layout
}

func defaultOptions() options {
	return options{
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
		parallelism:      1,
		layout:           LayoutCanonical,
	}
}

// Option configures a Selector.
type Option func(*options)

// WithLogger configures the logger for selection events.
//
// If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector configures the metrics sink.
//
// If nil is passed, NoopMetricsCollector is used.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithParallelism computes candidate digests on up to p goroutines.
//
// The heap is still fed in input order, so the result is identical to the
// sequential scan. Worth it only for large pools or expensive digests.
// If p <= 1, the scan is sequential.
func WithParallelism(p int) Option {
	return func(o *options) {
		if p < 1 {
			p = 1
		}
		o.parallelism = p
	}
}

// WithLayout selects the reference digest layout. Default is LayoutCanonical.
func WithLayout(l Layout) Option {
	return func(o *options) {
		o.layout = l
	}
}
