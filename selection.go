package softspi

import (
	"context"

	"github.com/viam-labs/softspi/line"
)

// A Selection is the handle returned when a slave's chip select line has been
// asserted. It borrows the line from its Master; it never owns it. Release it
// exactly once, typically with defer, as soon as the transfer is done —
// holding two Selections open at once interleaves transfers and corrupts
// both.
type Selection struct {
	master *Master
	cs     line.Output
	slave  int
}

// Slave returns which slave this selection is for, 1 or 2.
func (s *Selection) Slave() int {
	return s.slave
}

// Release deasserts the chip select line this selection was created for.
func (s *Selection) Release(ctx context.Context) error {
	return s.master.deselect(ctx, s.cs, s.slave)
}
