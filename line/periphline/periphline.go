// Package periphline exposes periph.io GPIO pins as softspi lines. Pins are
// resolved by name through periph's global registry, so Init must be called
// (once) before any line is opened.
package periphline

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"

	"github.com/viam-labs/softspi/line"
)

var hostInit sync.Once

// Init loads the periph.io host drivers. It is safe to call more than once.
func Init() error {
	var err error
	hostInit.Do(func() {
		_, err = host.Init()
	})
	return err
}

// NewOutput returns an output line for the named pin.
func NewOutput(pinName string) (line.Output, error) {
	pin, err := byName(pinName)
	if err != nil {
		return nil, err
	}
	return periphOutput{pin}, nil
}

// NewInput returns an input line for the named pin, configured with no pull.
func NewInput(pinName string) (line.Input, error) {
	pin, err := byName(pinName)
	if err != nil {
		return nil, err
	}
	if err := pin.In(gpio.Float, gpio.NoEdge); err != nil {
		return nil, err
	}
	return periphInput{pin}, nil
}

func byName(pinName string) (gpio.PinIO, error) {
	pin := gpioreg.ByName(pinName)
	if pin == nil {
		return nil, errors.Errorf("no global pin found for %q", pinName)
	}
	return pin, nil
}

type periphOutput struct {
	pin gpio.PinIO
}

func (o periphOutput) Set(ctx context.Context, high bool) error {
	l := gpio.Low
	if high {
		l = gpio.High
	}
	return o.pin.Out(l)
}

func (o periphOutput) Close() error {
	return o.pin.Halt()
}

type periphInput struct {
	pin gpio.PinIO
}

func (i periphInput) Get(ctx context.Context) (bool, error) {
	return i.pin.Read() == gpio.High, nil
}

func (i periphInput) Close() error {
	return i.pin.Halt()
}
