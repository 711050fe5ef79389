package softspi

import (
	"context"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/viam-labs/softspi/line"
)

// synchronizer owns the clock line and paces the bus: one pulse per bit.
type synchronizer struct {
	clk   line.Output
	width time.Duration
	clock clock.Clock
}

// pulse drives the clock high, holds it for the configured width, and drives
// it low again. The uneven duty cycle (no hold after the falling edge)
// matches what attached slaves have been tested against; don't even it out.
func (s *synchronizer) pulse(ctx context.Context) error {
	if err := s.clk.Set(ctx, true); err != nil {
		return err
	}
	s.clock.Sleep(s.width)
	return s.clk.Set(ctx, false)
}
