// Package buses is the kernel-driver SPI path: buses backed by a hardware
// SPI peripheral through the Linux spidev interface, by way of periph.io. It
// is independent of the bit-banged master in the root package; use it
// whenever the bus is actually wired to a hardware controller.
package buses

import (
	"context"
	"fmt"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
)

// SPI represents a shareable hardware SPI bus.
type SPI interface {
	// OpenHandle locks the shared bus and returns a handle interface that
	// MUST be closed when done.
	OpenHandle() (SPIHandle, error)
	Close(ctx context.Context) error
}

// SPIHandle is similar to an io handle. It MUST be closed to release the bus.
type SPIHandle interface {
	// Xfer performs a single SPI transfer, that is, the complete transaction
	// from chipselect enable to chipselect disable. SPI transfers are
	// synchronous, number of bytes received will be equal to the number of
	// bytes sent. Write-only transfers can usually just discard the returned
	// bytes. Read-only transfers usually transmit a request/address and
	// continue with some number of null bytes to equal the expected size of
	// the returning data.
	Xfer(ctx context.Context, baud uint, chipSelect string, mode uint, tx []byte) ([]byte, error)

	// Close closes the handle and releases the lock on the bus.
	Close() error
}

// NewSpiBus returns an SPI bus for the given bus number (e.g. "0" for
// /dev/spidev0.x).
func NewSpiBus(bus string) SPI {
	return &spiBus{bus: bus}
}

type spiBus struct {
	mu         sync.Mutex
	openHandle *spiHandle
	bus        string
}

type spiHandle struct {
	bus      *spiBus
	isClosed bool
}

func (sb *spiBus) OpenHandle() (SPIHandle, error) {
	sb.mu.Lock()
	sb.openHandle = &spiHandle{bus: sb, isClosed: false}
	return sb.openHandle, nil
}

func (sb *spiBus) Close(ctx context.Context) error {
	return nil
}

func (sh *spiHandle) Xfer(
	ctx context.Context,
	baud uint,
	chipSelect string,
	mode uint,
	tx []byte,
) (rx []byte, err error) {
	if sh.isClosed {
		return nil, errors.New("can't use Xfer() on an already closed SPIHandle")
	}

	port, err := spireg.Open(fmt.Sprintf("SPI%s.%s", sh.bus.bus, chipSelect))
	if err != nil {
		return nil, err
	}
	defer func() {
		err = multierr.Combine(err, port.Close())
	}()
	conn, err := port.Connect(physic.Hertz*physic.Frequency(baud), spi.Mode(mode), 8)
	if err != nil {
		return nil, err
	}
	rx = make([]byte, len(tx))
	return rx, conn.Tx(tx, rx)
}

func (sh *spiHandle) Close() error {
	sh.isClosed = true
	sh.bus.mu.Unlock()
	return nil
}
