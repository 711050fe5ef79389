package softspi

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrClosed is returned by any operation attempted after Close.
var ErrClosed = errors.New("SPI master is closed")

// UnsupportedError is returned when an operation needs an optional line that
// was not supplied at construction. It is raised before any line is touched.
type UnsupportedError struct {
	// Capability names the missing line, e.g. "data-out".
	Capability string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("unsupported: no %s line configured", e.Capability)
}

// IsUnsupported reports whether err came from attempting to use an
// unconfigured optional line.
func IsUnsupported(err error) bool {
	var target *UnsupportedError
	return errors.As(err, &target)
}

// BitCountError is returned when a requested bit count exceeds the width of
// the word encoding it addresses. It is raised before any line is touched.
type BitCountError struct {
	Bits  int
	Width int
}

func (e *BitCountError) Error() string {
	return fmt.Sprintf("bit count %d out of range for %d-bit word", e.Bits, e.Width)
}

// IsOutOfRange reports whether err came from an out-of-range bit count.
func IsOutOfRange(err error) bool {
	var target *BitCountError
	return errors.As(err, &target)
}

func checkBits(bits, width int) error {
	if bits < 0 || bits > width {
		return &BitCountError{Bits: bits, Width: width}
	}
	return nil
}
