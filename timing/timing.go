// Package timing provides a monotonic tick counter with wrap-around-safe
// difference helpers, thread sleeping, and wall-clock time in milliseconds.
//
// Tick counts start at zero when the process begins and come from the
// monotonic clock, so they are unaffected by wall-clock adjustments. The
// millisecond counter is deliberately 32 bits wide and wraps roughly every
// 49.7 days; DifferenceMS stays correct across a single wrap.
package timing

import "time"

// Ticks is a number of ticks, represented in microseconds.
type Ticks = uint64

var processStart = time.Now()

// TickCountUS returns the raw number of microseconds elapsed since the
// process started.
func TickCountUS() Ticks {
	return Ticks(time.Since(processStart) / time.Microsecond)
}

// TickCount returns the number of milliseconds elapsed since the process
// started, wrapping at 32 bits.
func TickCount() uint32 {
	return uint32(TickCountUS() / 1000)
}

// TickDifference calculates the difference in microseconds between two tick
// counts, accounting for wrap-around.
func TickDifference(nextTicks, prevTicks Ticks) Ticks {
	difference := nextTicks - prevTicks
	if ^difference < difference {
		return ^difference
	}
	return difference
}

// DifferenceMS calculates the difference in milliseconds between two
// TickCount values, accounting for wrap-around.
func DifferenceMS(nextTime, prevTime uint32) uint32 {
	difference := nextTime - prevTime
	if ^difference < difference {
		return ^difference
	}
	return difference
}

// Sleep suspends the current goroutine for the given number of milliseconds.
func Sleep(milliseconds uint32) {
	time.Sleep(time.Duration(milliseconds) * time.Millisecond)
}

// SleepUS suspends the current goroutine for the given number of
// microseconds.
func SleepUS(microseconds uint32) {
	time.Sleep(time.Duration(microseconds) * time.Microsecond)
}

// Time returns the number of milliseconds elapsed since the Unix epoch.
func Time() int64 {
	return time.Now().UnixMilli()
}
