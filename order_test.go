package softspi

import (
	"testing"

	"go.viam.com/test"
)

func TestBitIndex(t *testing.T) {
	t.Run("little endian reverses", func(t *testing.T) {
		for n := 1; n <= 8; n++ {
			for i := 0; i < n; i++ {
				test.That(t, LittleEndian.bitIndex(n, i), test.ShouldEqual, n-1-i)
			}
		}
	})

	t.Run("big endian is identity", func(t *testing.T) {
		for n := 1; n <= 8; n++ {
			for i := 0; i < n; i++ {
				test.That(t, BigEndian.bitIndex(n, i), test.ShouldEqual, i)
			}
		}
	})
}

func TestOrderString(t *testing.T) {
	test.That(t, LittleEndian.String(), test.ShouldEqual, "little-endian")
	test.That(t, BigEndian.String(), test.ShouldEqual, "big-endian")
}
