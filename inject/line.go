// Package inject provides injectable digital lines for testing.
package inject

import (
	"context"

	"github.com/viam-labs/softspi/line"
)

// Output is an injected output line.
type Output struct {
	line.Output
	SetFunc   func(ctx context.Context, high bool) error
	CloseFunc func() error
}

// Set calls the injected SetFunc or the real version.
func (o *Output) Set(ctx context.Context, high bool) error {
	if o.SetFunc == nil {
		return o.Output.Set(ctx, high)
	}
	return o.SetFunc(ctx, high)
}

// Close calls the injected CloseFunc or the real version.
func (o *Output) Close() error {
	if o.CloseFunc == nil {
		return o.Output.Close()
	}
	return o.CloseFunc()
}

// Input is an injected input line.
type Input struct {
	line.Input
	GetFunc   func(ctx context.Context) (bool, error)
	CloseFunc func() error
}

// Get calls the injected GetFunc or the real version.
func (i *Input) Get(ctx context.Context) (bool, error) {
	if i.GetFunc == nil {
		return i.Input.Get(ctx)
	}
	return i.GetFunc(ctx)
}

// Close calls the injected CloseFunc or the real version.
func (i *Input) Close() error {
	if i.CloseFunc == nil {
		return i.Input.Close()
	}
	return i.CloseFunc()
}
