// Package fake provides in-memory digital lines and a scripted slave device.
// They are used in tests and anywhere a real bus is not wired up yet.
package fake

import (
	"context"
	"sync"

	"github.com/viam-labs/softspi/line"
)

// An Output reads back the last level it was set to.
type Output struct {
	mu         sync.Mutex
	High       bool
	SetCount   int
	CloseCount int
}

// Set records the level.
func (o *Output) Set(ctx context.Context, high bool) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.High = high
	o.SetCount++
	return nil
}

// Close counts how many times it was called.
func (o *Output) Close() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.CloseCount++
	return nil
}

// An Input returns a fixed level.
type Input struct {
	mu         sync.Mutex
	High       bool
	GetCount   int
	CloseCount int
}

// Get returns the stored level.
func (i *Input) Get(ctx context.Context) (bool, error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.GetCount++
	return i.High, nil
}

// Close counts how many times it was called.
func (i *Input) Close() error {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.CloseCount++
	return nil
}

// A Slave behaves like the shift register at the far end of the bus. On every
// rising clock edge it captures the level of the master's data-out line and,
// if bits have been loaded for replay, drives the next one onto the master's
// data-in line. Wire a master's clock, data-out, and data-in to the lines it
// hands out, write a word, load the captured bits back, and read them out
// again for a full loop-back round trip with no hardware.
type Slave struct {
	mu       sync.Mutex
	clkHigh  bool
	out      Output
	inLevel  bool
	captured []bool
	replay   []bool
}

// NewSlave returns an idle slave.
func NewSlave() *Slave {
	return &Slave{}
}

// Clock returns the clock line to hand to the master.
func (s *Slave) Clock() line.Output {
	return slaveClock{s}
}

// DataOut returns the data line the master writes to.
func (s *Slave) DataOut() line.Output {
	return &s.out
}

// DataIn returns the data line the master reads from.
func (s *Slave) DataIn() line.Input {
	return slaveDataIn{s}
}

// Captured returns the bits captured so far, in wire order.
func (s *Slave) Captured() []bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]bool, len(s.captured))
	copy(out, s.captured)
	return out
}

// Load queues bits to be shifted out to the master, in wire order, one per
// rising clock edge.
func (s *Slave) Load(bits []bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.replay = append(s.replay, bits...)
}

// Reset clears the captured bits and anything still queued for replay.
func (s *Slave) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.captured = nil
	s.replay = nil
}

func (s *Slave) clockEdge(high bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rising := high && !s.clkHigh
	s.clkHigh = high
	if !rising {
		return
	}
	s.out.mu.Lock()
	s.captured = append(s.captured, s.out.High)
	s.out.mu.Unlock()
	if len(s.replay) > 0 {
		s.inLevel = s.replay[0]
		s.replay = s.replay[1:]
	}
}

type slaveClock struct {
	s *Slave
}

func (c slaveClock) Set(ctx context.Context, high bool) error {
	c.s.clockEdge(high)
	return nil
}

func (c slaveClock) Close() error {
	return nil
}

type slaveDataIn struct {
	s *Slave
}

func (d slaveDataIn) Get(ctx context.Context) (bool, error) {
	d.s.mu.Lock()
	defer d.s.mu.Unlock()
	return d.s.inLevel, nil
}

func (d slaveDataIn) Close() error {
	return nil
}
