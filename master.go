package softspi

import (
	"context"

	"github.com/benbjohnson/clock"
	"github.com/edaniels/golog"
	"go.uber.org/multierr"

	"github.com/viam-labs/softspi/line"
)

// Master is a software-driven SPI master. It owns a clock line, one or two
// chip select lines, and optionally a data-out and a data-in line, and
// exchanges words of 1 to 64 bits with whichever slave is selected, one clock
// pulse per bit.
//
// A Master is not safe for concurrent use; callers sharing one across
// goroutines must serialize access themselves. Interleaved unsynchronized
// transfers corrupt the bus.
type Master struct {
	bus     synchronizer
	cs1     line.Output
	cs2     line.Output
	dataOut line.Output
	dataIn  line.Input
	order   Order
	logger  golog.Logger
	closed  bool
}

// New takes ownership of the lines in conf and returns a Master with the bus
// driven to its idle state: clock low, chip selects deasserted (high), and
// data-out low if present. If idling the bus fails, every line is closed
// before returning.
func New(ctx context.Context, conf Config, logger golog.Logger) (*Master, error) {
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	width := conf.PulseWidth
	if width == 0 {
		width = DefaultPulseWidth
	}
	m := &Master{
		bus:     synchronizer{clk: conf.Clock, width: width, clock: clock.New()},
		cs1:     conf.ChipSelect1,
		cs2:     conf.ChipSelect2,
		dataOut: conf.DataOut,
		dataIn:  conf.DataIn,
		order:   conf.Order,
		logger:  logger,
	}
	if err := m.idle(ctx); err != nil {
		return nil, multierr.Combine(err, m.Close(ctx))
	}
	logger.Debugf("SPI master ready (%s, pulse width %v)", m.order, width)
	return m, nil
}

func (m *Master) idle(ctx context.Context) error {
	if err := m.bus.clk.Set(ctx, false); err != nil {
		return err
	}
	if err := m.cs1.Set(ctx, true); err != nil {
		return err
	}
	if m.cs2 != nil {
		if err := m.cs2.Set(ctx, true); err != nil {
			return err
		}
	}
	if m.dataOut != nil {
		if err := m.dataOut.Set(ctx, false); err != nil {
			return err
		}
	}
	return nil
}

// WriteBit puts one bit on the data-out line and then clocks it out with a
// single pulse. The pulse is seen by every device on the bus, so the intended
// slave must already be selected.
func (m *Master) WriteBit(ctx context.Context, high bool) error {
	if m.closed {
		return ErrClosed
	}
	if m.dataOut == nil {
		return &UnsupportedError{Capability: "data-out"}
	}
	if err := m.dataOut.Set(ctx, high); err != nil {
		return err
	}
	return m.bus.pulse(ctx)
}

// ReadBit issues one clock pulse and then samples the data-in line. The
// sample happens strictly after the pulse completes; slaves drive data on one
// clock phase and we capture on the other.
func (m *Master) ReadBit(ctx context.Context) (bool, error) {
	if m.closed {
		return false, ErrClosed
	}
	if m.dataIn == nil {
		return false, &UnsupportedError{Capability: "data-in"}
	}
	if err := m.bus.pulse(ctx); err != nil {
		return false, err
	}
	return m.dataIn.Get(ctx)
}

func (m *Master) writeBits(ctx context.Context, word uint64, width, bits int) error {
	if err := checkBits(bits, width); err != nil {
		return err
	}
	for i := 0; i < bits; i++ {
		idx := m.order.bitIndex(bits, i)
		if err := m.WriteBit(ctx, word>>uint(idx)&1 == 1); err != nil {
			return err
		}
	}
	return nil
}

// WriteWord8 clocks out bits of an 8-bit word, one pulse per bit, in the
// master's configured bit order.
func (m *Master) WriteWord8(ctx context.Context, word uint8, bits int) error {
	return m.writeBits(ctx, uint64(word), 8, bits)
}

// WriteWord16 clocks out bits of a 16-bit word.
func (m *Master) WriteWord16(ctx context.Context, word uint16, bits int) error {
	return m.writeBits(ctx, uint64(word), 16, bits)
}

// WriteWord32 clocks out bits of a 32-bit word.
func (m *Master) WriteWord32(ctx context.Context, word uint32, bits int) error {
	return m.writeBits(ctx, uint64(word), 32, bits)
}

// WriteWord64 clocks out bits of a 64-bit word.
func (m *Master) WriteWord64(ctx context.Context, word uint64, bits int) error {
	return m.writeBits(ctx, word, 64, bits)
}

// ReadWord clocks in the given number of bits, at most 64, and assembles them
// into a word in the master's configured bit order. Reading zero bits returns
// zero without touching the bus.
func (m *Master) ReadWord(ctx context.Context, bits int) (uint64, error) {
	if err := checkBits(bits, 64); err != nil {
		return 0, err
	}
	var word uint64
	for i := 0; i < bits; i++ {
		high, err := m.ReadBit(ctx)
		if err != nil {
			return 0, err
		}
		if high {
			word |= 1 << uint(m.order.bitIndex(bits, i))
		}
	}
	return word, nil
}

// Order returns the bit transmission order the master was configured with.
func (m *Master) Order() Order {
	return m.order
}

// SelectSlave1 asserts the first chip select line and returns a Selection
// that must be released when the transfer is done.
func (m *Master) SelectSlave1(ctx context.Context) (*Selection, error) {
	return m.selectSlave(ctx, m.cs1, 1)
}

// SelectSlave2 asserts the second chip select line, if one was configured.
func (m *Master) SelectSlave2(ctx context.Context) (*Selection, error) {
	if m.cs2 == nil {
		if m.closed {
			return nil, ErrClosed
		}
		return nil, &UnsupportedError{Capability: "chip select 2"}
	}
	return m.selectSlave(ctx, m.cs2, 2)
}

func (m *Master) selectSlave(ctx context.Context, cs line.Output, slave int) (*Selection, error) {
	if m.closed {
		return nil, ErrClosed
	}
	// Chip selects are active-low.
	if err := cs.Set(ctx, false); err != nil {
		return nil, err
	}
	m.logger.Debugf("selected slave %d", slave)
	return &Selection{master: m, cs: cs, slave: slave}, nil
}

func (m *Master) deselect(ctx context.Context, cs line.Output, slave int) error {
	if m.closed {
		return ErrClosed
	}
	if err := cs.Set(ctx, true); err != nil {
		return err
	}
	m.logger.Debugf("deselected slave %d", slave)
	return nil
}

// Close closes every line the master owns, skipping optional ones that were
// never configured. The master must not be used afterward; operations on a
// closed master return ErrClosed.
func (m *Master) Close(ctx context.Context) error {
	if m.closed {
		return ErrClosed
	}
	m.closed = true
	err := multierr.Combine(m.bus.clk.Close(), m.cs1.Close())
	if m.cs2 != nil {
		err = multierr.Combine(err, m.cs2.Close())
	}
	if m.dataOut != nil {
		err = multierr.Combine(err, m.dataOut.Close())
	}
	if m.dataIn != nil {
		err = multierr.Combine(err, m.dataIn.Close())
	}
	return err
}
