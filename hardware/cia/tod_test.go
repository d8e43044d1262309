package cia_test

import (
	"testing"

	"github.com/jetsetilly/test64/hardware/cia"
	"github.com/jetsetilly/test64/test"
)

// count the mains ticks between two advances of the deciseconds field
func todPeriod(t *testing.T, c *cia.CIA) int {
	t.Helper()

	prev := peek(t, c, 0x08)
	for range 20 {
		c.CountTOD()
		if peek(t, c, 0x08) != prev {
			break
		}
	}

	prev = peek(t, c, 0x08)
	period := 0
	for range 20 {
		c.CountTOD()
		period++
		if peek(t, c, 0x08) != prev {
			return period
		}
	}

	t.Fatal("time of day clock is not advancing")
	return 0
}

// the divisor converts the mains frequency input to tenths of a second. the
// 50/60Hz select bit lives in timer A's control register
func TestTODDivisor(t *testing.T) {
	c, _, _, _ := createTestCIA(cia.CIA1)

	test.ExpectEquality(t, todPeriod(t, c), 6)

	poke(t, c, 0x0e, 0x80)
	c.Update()
	test.ExpectEquality(t, todPeriod(t, c), 5)
}

// seconds carry into minutes through valid BCD digit pairs
func TestTODCarry(t *testing.T) {
	c, _, _, _ := createTestCIA(cia.CIA1)

	poke(t, c, 0x09, 0x59)
	poke(t, c, 0x08, 0x09)

	c.CountTOD()

	test.ExpectEquality(t, peek(t, c, 0x09), uint8(0x00))
	test.ExpectEquality(t, peek(t, c, 0x0a), uint8(0x01))
	test.ExpectEquality(t, peek(t, c, 0x08), uint8(0x00))
}

// hours use a 12 hour encoding with the AM/PM flag in the top bit, toggling
// on the wrap
func TestTODHourWrap(t *testing.T) {
	c, _, _, _ := createTestCIA(cia.CIA1)

	poke(t, c, 0x0b, 0x11)
	poke(t, c, 0x0a, 0x59)
	poke(t, c, 0x09, 0x59)
	poke(t, c, 0x08, 0x09)

	c.CountTOD()

	test.ExpectEquality(t, peek(t, c, 0x0a), uint8(0x00))
	test.ExpectEquality(t, peek(t, c, 0x0b), uint8(0x80))
}

// reading the hours register freezes the clock so that software can read a
// consistent multi-byte time. reading deciseconds releases it
func TestTODHalt(t *testing.T) {
	c, _, _, _ := createTestCIA(cia.CIA1)

	// prime the clock so it is mid-count
	for range 8 {
		c.CountTOD()
	}

	hour := peek(t, c, 0x0b)

	// latched: the clock must not advance no matter how many ticks pass
	before := c.String()
	for range 40 {
		c.CountTOD()
	}
	test.ExpectEquality(t, peek(t, c, 0x0b), hour)
	test.ExpectEquality(t, c.String(), before)

	// reading deciseconds releases the latch
	prev := peek(t, c, 0x08)
	advanced := false
	for range 10 {
		c.CountTOD()
		if peek(t, c, 0x08) != prev {
			advanced = true
			break
		}
	}
	test.ExpectEquality(t, advanced, true)
}

// the alarm registers share addresses with the clock registers, selected by
// bit 7 of timer B's control register. an exact four field match raises the
// alarm interrupt
func TestTODAlarm(t *testing.T) {
	c, _, cpu, _ := createTestCIA(cia.CIA1)

	// route the time registers to the alarm
	poke(t, c, 0x0f, 0x80)
	c.Update()
	poke(t, c, 0x08, 0x01)

	// and back to the clock
	poke(t, c, 0x0f, 0x00)
	c.Update()

	poke(t, c, 0x0d, 0x84)

	c.CountTOD()

	test.ExpectEquality(t, cpu.irqLine, true)
	test.ExpectEquality(t, peek(t, c, 0x0d), uint8(0x84))

	// the clock has moved past the alarm time
	c.CountTOD()
	test.ExpectEquality(t, cpu.irqLine, false)
	test.ExpectEquality(t, peek(t, c, 0x0d), uint8(0x00))
}
