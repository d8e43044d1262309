package cia

// the time of day clock. all time fields are BCD encoded. the hours register
// carries the AM/PM flag in bit 7
type todClock struct {
	// latched by reading the hours register and released by reading the
	// tenths register. while halted the clock does not advance
	halt bool

	// divides the mains frequency input down to tenths of a second
	freqDiv uint16

	hour uint8
	min  uint8
	sec  uint8
	dsec uint8

	alarmHour uint8
	alarmMin  uint8
	alarmSec  uint8
	alarmDsec uint8
}

func (tod *todClock) reset() {
	tod.halt = false
	tod.freqDiv = 0
	tod.hour = 0
	tod.min = 0
	tod.sec = 0
	tod.dsec = 0
	tod.alarmHour = 0
	tod.alarmMin = 0
	tod.alarmSec = 0
	tod.alarmDsec = 0
}

// bcdInc increments a BCD value, returning the new value and whether the
// digit pair carried past the limit on the high digit
func bcdInc(v uint8, hiLimit uint8) (uint8, bool) {
	lo := (v & 0x0f) + 1
	hi := v >> 4
	if lo > 9 {
		lo = 0
		hi++
	}
	if hi > hiLimit {
		return 0, true
	}
	return (hi << 4) | lo, false
}

// tick advances the clock by one mains cycle. fiftyHz selects the divisor
// appropriate for a 50Hz input. returns true when the clock has reached the
// alarm time
func (tod *todClock) tick(fiftyHz bool) bool {
	if tod.halt {
		return false
	}

	if tod.freqDiv != 0 {
		tod.freqDiv--
		return false
	}

	if fiftyHz {
		tod.freqDiv = 4
	} else {
		tod.freqDiv = 5
	}

	tod.dsec++
	if tod.dsec > 9 {
		tod.dsec = 0

		var carry bool
		tod.sec, carry = bcdInc(tod.sec, 5)
		if carry {
			tod.min, carry = bcdInc(tod.min, 5)
			if carry {
				// hours count 1 to 12 with the AM/PM flag toggling on the
				// wrap from 11:59:59.9 to 12:00:00.0
				pm := tod.hour & 0x80
				hr, _ := bcdInc(tod.hour&0x1f, 9)
				if hr > 0x11 {
					tod.hour = pm ^ 0x80
				} else {
					tod.hour = pm | hr
				}
			}
		}
	}

	return tod.dsec == tod.alarmDsec &&
		tod.sec == tod.alarmSec &&
		tod.min == tod.alarmMin &&
		tod.hour == tod.alarmHour
}
