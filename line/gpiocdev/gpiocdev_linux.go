//go:build linux

// Package gpiocdev exposes Linux GPIO character-device lines (/dev/gpiochip*)
// as softspi lines, by way of the ioctl interface in mkch's gpio package.
package gpiocdev

import (
	"context"
	"sync"

	"github.com/mkch/gpio"
	goutils "go.viam.com/utils"

	"github.com/viam-labs/softspi/line"
)

const consumerLabel = "softspi"

// NewOutput returns an output line at the given offset on the given GPIO
// chip device (e.g. "/dev/gpiochip0"). The line is requested lazily on first
// use.
func NewOutput(devicePath string, offset uint32) line.Output {
	return &outputLine{devicePath: devicePath, offset: offset}
}

// NewInput returns an input line at the given offset on the given GPIO chip
// device. The line is requested lazily on first use.
func NewInput(devicePath string, offset uint32) line.Input {
	return &inputLine{devicePath: devicePath, offset: offset}
}

type outputLine struct {
	// These two are immutable. Lock the mutex for the rest.
	devicePath string
	offset     uint32

	mu   sync.Mutex
	line *gpio.Line
}

func openLine(devicePath string, offset uint32, flags gpio.LineFlag) (*gpio.Line, error) {
	chip, err := gpio.OpenChip(devicePath)
	if err != nil {
		return nil, err
	}
	defer goutils.UncheckedErrorFunc(chip.Close)

	// The 0 is the line's initial value; callers set the real level
	// immediately after opening.
	return chip.OpenLine(offset, 0, flags, consumerLabel)
}

func (l *outputLine) Set(ctx context.Context, high bool) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.line == nil {
		opened, err := openLine(l.devicePath, l.offset, gpio.Output)
		if err != nil {
			return err
		}
		l.line = opened
	}
	var value byte
	if high {
		value = 1
	}
	return l.line.SetValue(value)
}

func (l *outputLine) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.line == nil {
		return nil
	}
	err := l.line.Close()
	l.line = nil
	return err
}

type inputLine struct {
	devicePath string
	offset     uint32

	mu   sync.Mutex
	line *gpio.Line
}

func (l *inputLine) Get(ctx context.Context) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.line == nil {
		opened, err := openLine(l.devicePath, l.offset, gpio.Input)
		if err != nil {
			return false, err
		}
		l.line = opened
	}
	value, err := l.line.Value()
	if err != nil {
		return false, err
	}
	// We'd expect value to be either 0 or 1, but any non-zero value should
	// be considered high.
	return value != 0, nil
}

func (l *inputLine) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.line == nil {
		return nil
	}
	err := l.line.Close()
	l.line = nil
	return err
}
