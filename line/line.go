// Package line defines the digital line capabilities the rest of this module
// is built on: something you can drive high or low, and something you can
// sample. Backends live in subpackages; test doubles live in the inject
// package.
package line

import "context"

// Output is a single digital output line.
type Output interface {
	// Set drives the line to either low or high.
	Set(ctx context.Context, high bool) error

	// Close releases the underlying line. The line must not be used afterward.
	Close() error
}

// Input is a single digital input line.
type Input interface {
	// Get samples the high/low state of the line.
	Get(ctx context.Context) (bool, error)

	// Close releases the underlying line. The line must not be used afterward.
	Close() error
}
