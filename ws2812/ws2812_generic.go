//go:build !baremetal_ws2812_asm

package ws2812

import "machine"

// WriteByte bit-bangs one byte over d.Pin using the WS2812 timing
// protocol (roughly 0.4us/0.8us high for a zero/one bit, each followed
// by the complementary low phase), scaled off machine.CPUFrequency
// rather than a precomputed per-clock-speed cycle count, so it runs on
// any target without needing an architecture-specific build.
func (d Device) WriteByte(c byte) error {
	cyclesPerUs := uint64(machine.CPUFrequency() / 1_000_000)
	for i := 7; i >= 0; i-- {
		bit := c&(1<<uint(i)) != 0
		d.Pin.High()
		if bit {
			busyWait(cyclesPerUs * 8 / 10)
		} else {
			busyWait(cyclesPerUs * 4 / 10)
		}
		d.Pin.Low()
		if bit {
			busyWait(cyclesPerUs * 4 / 10)
		} else {
			busyWait(cyclesPerUs * 8 / 10)
		}
	}
	return nil
}

// busyWait spins for approximately the given number of CPU cycles. It is
// deliberately not inlined-away: WS2812 timing has no tolerance for
// reordering around this loop.
//
//go:noinline
func busyWait(cycles uint64) {
	for i := uint64(0); i < cycles; i++ {
	}
}
