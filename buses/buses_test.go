package buses

import (
	"context"
	"testing"

	"go.viam.com/test"
)

func TestHandleLifecycle(t *testing.T) {
	bus := NewSpiBus("0")

	handle, err := bus.OpenHandle()
	test.That(t, err, test.ShouldBeNil)
	test.That(t, handle.Close(), test.ShouldBeNil)

	_, err = handle.Xfer(context.Background(), 1000000, "0", 0, []byte{0xff})
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "closed")

	// The bus is reusable once the previous handle is closed.
	handle, err = bus.OpenHandle()
	test.That(t, err, test.ShouldBeNil)
	test.That(t, handle.Close(), test.ShouldBeNil)
	test.That(t, bus.Close(context.Background()), test.ShouldBeNil)
}
