package chaperone

type options struct {
	workers int
}

// Option configures a Moderator.
type Option func(*options)

// WithWorkers sets the number of goroutines scanning utterances in parallel.
// Default: 1 (serial). Parallel output is identical to a serial pass.
func WithWorkers(n int) Option {
	return func(o *options) { o.workers = n }
}

func defaultOptions() options {
	return options{workers: 1}
}
