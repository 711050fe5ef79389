// Package softspi implements a bit-banged SPI master on top of plain digital
// output and input lines. It is meant for buses where no hardware SPI
// peripheral (or kernel spidev driver) is available or wired up; when one is,
// prefer the kernel-backed path in the buses package.
//
// The clock is idle-low and data is clocked out before each pulse and sampled
// after it (SPI mode 0). Chip selects are active-low. The clock rate is set
// only by Config.PulseWidth and how fast the host can toggle lines; there is
// no speed negotiation.
package softspi
