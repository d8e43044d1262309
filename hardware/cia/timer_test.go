package cia_test

import (
	"testing"

	"github.com/jetsetilly/test64/hardware/cia"
	"github.com/jetsetilly/test64/test"
)

// a control register write is staged and never affects the timer during the
// cycle it was issued. the first decrement happens two cycles after the start
// bit is applied: one cycle in the wait state and one in the transition to
// counting
func TestTimerStartLatency(t *testing.T) {
	c, _, _, _ := createTestCIA(cia.CIA1)

	poke(t, c, 0x04, 0x05)
	poke(t, c, 0x05, 0x00)
	test.ExpectEquality(t, peek16(t, c, 0x04), uint16(0x0005))

	poke(t, c, 0x0e, 0x01)

	// the write itself has no effect on the running state
	test.ExpectEquality(t, peek16(t, c, 0x04), uint16(0x0005))

	// start bit applied at the end of this update
	cycle(c, 1)
	test.ExpectEquality(t, peek16(t, c, 0x04), uint16(0x0005))

	// wait state
	cycle(c, 1)
	test.ExpectEquality(t, peek16(t, c, 0x04), uint16(0x0005))

	// first counting cycle
	cycle(c, 1)
	test.ExpectEquality(t, peek16(t, c, 0x04), uint16(0x0004))

	cycle(c, 1)
	test.ExpectEquality(t, peek16(t, c, 0x04), uint16(0x0003))
}

// stopping a running timer also takes one cycle to have an effect
func TestTimerStopLatency(t *testing.T) {
	c, _, _, _ := createTestCIA(cia.CIA1)

	poke(t, c, 0x04, 0x10)
	poke(t, c, 0x05, 0x00)
	poke(t, c, 0x0e, 0x01)
	cycle(c, 4)
	test.ExpectEquality(t, peek16(t, c, 0x04), uint16(0x000e))

	poke(t, c, 0x0e, 0x00)

	// the timer counts in the cycle the stop is applied and once more in the
	// transition to the stopped state
	cycle(c, 1)
	test.ExpectEquality(t, peek16(t, c, 0x04), uint16(0x000d))
	cycle(c, 1)
	test.ExpectEquality(t, peek16(t, c, 0x04), uint16(0x000c))

	cycle(c, 4)
	test.ExpectEquality(t, peek16(t, c, 0x04), uint16(0x000c))
}

// a timer in one-shot mode raises its interrupt, reloads from the latch and
// clears its own run bit
func TestTimerOneShot(t *testing.T) {
	c, _, cpu, _ := createTestCIA(cia.CIA1)

	poke(t, c, 0x0d, 0x81)
	poke(t, c, 0x04, 0x02)
	poke(t, c, 0x05, 0x00)
	poke(t, c, 0x0e, 0x09)

	// two pipeline cycles then two counting cycles to the underflow
	cycle(c, 4)

	test.ExpectEquality(t, cpu.irqLine, true)
	test.ExpectEquality(t, peek(t, c, 0x0e), uint8(0x08))

	// reload from the latch and stop
	cycle(c, 1)
	test.ExpectEquality(t, peek16(t, c, 0x04), uint16(0x0002))

	icr := peek(t, c, 0x0d)
	test.ExpectEquality(t, icr, uint8(0x81))

	// no further counting
	cycle(c, 8)
	test.ExpectEquality(t, peek16(t, c, 0x04), uint16(0x0002))
	test.ExpectEquality(t, peek(t, c, 0x0d), uint8(0x00))
}

// a continuous mode timer reloads from the latch on underflow and keeps
// counting
func TestTimerContinuous(t *testing.T) {
	c, _, _, _ := createTestCIA(cia.CIA1)

	poke(t, c, 0x04, 0x03)
	poke(t, c, 0x05, 0x00)
	poke(t, c, 0x0e, 0x01)

	cycle(c, 5)
	test.ExpectEquality(t, peek(t, c, 0x0d)&0x01, uint8(0x01))

	// reload and carry on
	cycle(c, 1)
	test.ExpectEquality(t, peek16(t, c, 0x04), uint16(0x0003))
	cycle(c, 1)
	test.ExpectEquality(t, peek16(t, c, 0x04), uint16(0x0002))
}

// the force load strobe reloads the counter from the latch without stopping a
// running timer
func TestTimerForceLoad(t *testing.T) {
	c, _, _, _ := createTestCIA(cia.CIA1)

	poke(t, c, 0x04, 0x40)
	poke(t, c, 0x05, 0x00)
	poke(t, c, 0x0e, 0x01)
	cycle(c, 6)
	test.ExpectEquality(t, peek16(t, c, 0x04), uint16(0x003c))

	poke(t, c, 0x0e, 0x11)

	// force load strobe never reads back
	cycle(c, 2)
	test.ExpectEquality(t, peek(t, c, 0x0e), uint8(0x01))
	test.ExpectEquality(t, peek16(t, c, 0x04), uint16(0x0040))
}

// a force load issued while the counter is one away from underflow still
// produces the interrupt
func TestTimerForceLoadExpiring(t *testing.T) {
	c, _, cpu, _ := createTestCIA(cia.CIA1)

	poke(t, c, 0x0d, 0x81)
	poke(t, c, 0x04, 0x05)
	poke(t, c, 0x05, 0x00)
	poke(t, c, 0x0e, 0x01)

	// pipeline plus three counting cycles leaves the counter at two
	cycle(c, 5)
	test.ExpectEquality(t, peek16(t, c, 0x04), uint16(0x0002))

	poke(t, c, 0x0e, 0x11)

	// final decrement to one, then the force load catches the expiry
	cycle(c, 2)
	test.ExpectEquality(t, cpu.irqLine, true)
	test.ExpectEquality(t, peek(t, c, 0x0d)&0x01, uint8(0x01))
}

// timer B in cascade mode decrements only on cycles where timer A underflowed
func TestTimerCascade(t *testing.T) {
	c, _, _, _ := createTestCIA(cia.CIA1)

	poke(t, c, 0x04, 0x03)
	poke(t, c, 0x05, 0x00)
	poke(t, c, 0x06, 0x02)
	poke(t, c, 0x07, 0x00)

	poke(t, c, 0x0f, 0x41)
	poke(t, c, 0x0e, 0x01)

	var changes []int
	prev := peek16(t, c, 0x06)
	for i := range 12 {
		cycle(c, 1)
		v := peek16(t, c, 0x06)
		if v != prev {
			changes = append(changes, i)
			prev = v
		}
	}

	// a continuous timer with latch N underflows every N+1 cycles because the
	// reload takes a cycle of its own. timer B only moves on those cycles
	test.DemandEquality(t, len(changes), 2)
	for i := 1; i < len(changes); i++ {
		test.ExpectEquality(t, changes[i]-changes[i-1], 4)
	}

	// two underflows of timer A expire timer B
	test.ExpectEquality(t, peek(t, c, 0x0d)&0x02, uint8(0x02))
}
