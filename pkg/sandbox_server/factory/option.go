package factory

import "time"

type Option func(f *Factory)

// WithSeed makes the generated data reproducible. Seed 0 picks a random seed.
func WithSeed(seed uint64) Option {
	return func(f *Factory) {
		f.seed = seed
	}
}

func WithClock(now func() time.Time) Option {
	return func(f *Factory) {
		f.now = now
	}
}
