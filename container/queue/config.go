package queue

import "github.com/tezrry/lineup/pkg/logging"

type ConfigFunc func(c *Config)

type Config struct {
	// Capacity is a growth hint for the backing array. The initial
	// allocation is rounded up to a power of two and never smaller than
	// the number of items the queue is created with.
	Capacity int

	// Logger receives debug entries for rejected removals.
	// The default is logging.GetDefaultLogger().
	Logger logging.Logger
}

func WithConfig(config *Config) ConfigFunc {
	return func(c *Config) {
		*c = *config
	}
}

func WithCapacity(n int) ConfigFunc {
	return func(c *Config) {
		c.Capacity = n
	}
}

func WithLogger(logger logging.Logger) ConfigFunc {
	return func(c *Config) {
		c.Logger = logger
	}
}
