package softspi

import (
	"time"

	"github.com/pkg/errors"

	"github.com/viam-labs/softspi/line"
)

// DefaultPulseWidth is the time the clock line is held high during each
// pulse. There is deliberately no hold after the falling edge.
const DefaultPulseWidth = time.Millisecond

// A Config describes the lines a Master drives and how it drives them. The
// Master takes ownership of every line supplied here and closes them all when
// it is closed.
type Config struct {
	// Clock is the serial clock line. Required.
	Clock line.Output
	// ChipSelect1 is the (active-low) select line for slave 1. Required.
	ChipSelect1 line.Output
	// ChipSelect2 is the (active-low) select line for slave 2. Optional.
	ChipSelect2 line.Output
	// DataOut is the master-out line. Optional; without it writes are
	// unsupported.
	DataOut line.Output
	// DataIn is the master-in line. Optional; without it reads are
	// unsupported.
	DataIn line.Input
	// Order is the bit transmission order. Defaults to LittleEndian.
	Order Order
	// PulseWidth is how long the clock is held high per pulse. Defaults to
	// DefaultPulseWidth.
	PulseWidth time.Duration
}

// Validate ensures all parts of the config are valid.
func (conf *Config) Validate() error {
	if conf.Clock == nil {
		return errors.New("need a clock line")
	}
	if conf.ChipSelect1 == nil {
		return errors.New("need a chip select line for slave 1")
	}
	if conf.PulseWidth < 0 {
		return errors.Errorf("pulse width must be non-negative, got %v", conf.PulseWidth)
	}
	return nil
}
