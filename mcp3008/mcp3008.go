// Package mcp3008 reads samples from an MCP3008 analog-to-digital converter
// attached to a bit-banged SPI master.
package mcp3008

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/viam-labs/softspi"
)

// A Reader reads one channel of a connected MCP3008.
type Reader struct {
	master  *softspi.Master
	slave   int
	channel int
}

// New returns a Reader for the given channel (0-7) of the MCP3008 attached as
// the given slave (1 or 2). The master must transmit high bits first
// (LittleEndian order); the chip's command framing is MSB-first.
func New(master *softspi.Master, slave, channel int) (*Reader, error) {
	if slave != 1 && slave != 2 {
		return nil, errors.Errorf("slave must be 1 or 2, got %d", slave)
	}
	if channel < 0 || channel > 7 {
		return nil, errors.Errorf("channel must be between 0 and 7, got %d", channel)
	}
	if master.Order() != softspi.LittleEndian {
		return nil, errors.New("MCP3008 needs a little-endian (high bit first) master")
	}
	return &Reader{master: master, slave: slave, channel: channel}, nil
}

// Read selects the chip, clocks out the 5-bit conversion command (start bit,
// single-ended mode, 3-bit channel), and clocks back the null bit plus the
// 10-bit sample.
func (r *Reader) Read(ctx context.Context) (value uint16, err error) {
	var sel *softspi.Selection
	if r.slave == 1 {
		sel, err = r.master.SelectSlave1(ctx)
	} else {
		sel, err = r.master.SelectSlave2(ctx)
	}
	if err != nil {
		return 0, err
	}
	defer func() {
		err = multierr.Combine(err, sel.Release(ctx))
	}()

	cmd := uint8(0x18 | r.channel) // start, SGL/DIFF, D2..D0
	if err := r.master.WriteWord8(ctx, cmd, 5); err != nil {
		return 0, err
	}
	// Null bit first, then the sample, high bit first.
	word, err := r.master.ReadWord(ctx, 11)
	if err != nil {
		return 0, err
	}
	return uint16(word & 0x3ff), nil
}
