package mcp3008

import (
	"context"
	"testing"
	"time"

	"github.com/edaniels/golog"
	"go.viam.com/test"

	"github.com/viam-labs/softspi"
	"github.com/viam-labs/softspi/line/fake"
)

func TestNewValidation(t *testing.T) {
	ctx := context.Background()
	logger := golog.NewTestLogger(t)

	newMaster := func(t *testing.T, order softspi.Order) *softspi.Master {
		t.Helper()
		m, err := softspi.New(ctx, softspi.Config{
			Clock:       &fake.Output{},
			ChipSelect1: &fake.Output{},
			DataOut:     &fake.Output{},
			DataIn:      &fake.Input{},
			Order:       order,
			PulseWidth:  time.Nanosecond,
		}, logger)
		test.That(t, err, test.ShouldBeNil)
		return m
	}

	t.Run("bad slave", func(t *testing.T) {
		m := newMaster(t, softspi.LittleEndian)
		_, err := New(m, 3, 0)
		test.That(t, err, test.ShouldNotBeNil)
		test.That(t, err.Error(), test.ShouldContainSubstring, "slave")
		test.That(t, m.Close(ctx), test.ShouldBeNil)
	})

	t.Run("bad channel", func(t *testing.T) {
		m := newMaster(t, softspi.LittleEndian)
		_, err := New(m, 1, 8)
		test.That(t, err, test.ShouldNotBeNil)
		test.That(t, err.Error(), test.ShouldContainSubstring, "channel")
		test.That(t, m.Close(ctx), test.ShouldBeNil)
	})

	t.Run("wrong bit order", func(t *testing.T) {
		m := newMaster(t, softspi.BigEndian)
		_, err := New(m, 1, 0)
		test.That(t, err, test.ShouldNotBeNil)
		test.That(t, err.Error(), test.ShouldContainSubstring, "little-endian")
		test.That(t, m.Close(ctx), test.ShouldBeNil)
	})
}

func TestRead(t *testing.T) {
	ctx := context.Background()
	logger := golog.NewTestLogger(t)

	slave := fake.NewSlave()
	cs := &fake.Output{}
	m, err := softspi.New(ctx, softspi.Config{
		Clock:       slave.Clock(),
		ChipSelect1: cs,
		DataOut:     slave.DataOut(),
		DataIn:      slave.DataIn(),
		PulseWidth:  time.Nanosecond,
	}, logger)
	test.That(t, err, test.ShouldBeNil)

	reader, err := New(m, 1, 5)
	test.That(t, err, test.ShouldBeNil)

	// The chip is quiet for the 5 command clocks, sends a null bit, then the
	// 10-bit sample high bit first. 0x2A5 = 1010100101.
	script := make([]bool, 5)
	script = append(script, false) // null bit
	script = append(script, true, false, true, false, true, false, false, true, false, true)
	slave.Load(script)

	value, err := reader.Read(ctx)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, value, test.ShouldEqual, uint16(0x2a5))

	// Command on the wire: start, single-ended, then channel 5 (101).
	captured := slave.Captured()
	test.That(t, captured, test.ShouldHaveLength, 16)
	test.That(t, captured[:5], test.ShouldResemble, []bool{true, true, true, false, true})

	// Chip select was asserted for the transaction and released after.
	test.That(t, cs.High, test.ShouldBeTrue)
	test.That(t, cs.SetCount, test.ShouldEqual, 3) // idle, assert, release

	test.That(t, m.Close(ctx), test.ShouldBeNil)
}
