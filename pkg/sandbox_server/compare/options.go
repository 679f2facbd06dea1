package compare

import "time"

type Options struct {
	// Number of decimal places kept when comparing numbers.
	FloatPrecision int32
	// Timestamps are truncated to this precision. Zero keeps them untouched.
	TimePrecision time.Duration
}

var DefaultOptions = Options{
	FloatPrecision: 2,
	TimePrecision:  time.Second,
}

func NewOptions(floatPrecision int32) Options {
	opts := DefaultOptions
	if floatPrecision >= 0 {
		opts.FloatPrecision = floatPrecision
	}
	return opts
}
