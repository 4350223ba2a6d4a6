package boolop

import (
	"io"
	"log"
)

// config holds Run's optional tuning parameters, set via functional
// options in the style of bfs.Option.
type config struct {
	logger *log.Logger
}

func defaultConfig() config {
	return config{logger: log.New(io.Discard, "", 0)}
}

// Option configures a Run call.
type Option func(*config)

// WithLogger directs Run's phase-level progress logging to l. By default
// logging is discarded, so logging is opt-in.
func WithLogger(l *log.Logger) Option {
	return func(c *config) { c.logger = l }
}
