package cia

// the interval timers are driven by a state machine rather than by testing
// the control register on every cycle. control register writes are staged and
// only folded into the running state at the end of the next Update(), giving
// the one cycle delay of the real silicon
type timerState int

const (
	timerStop timerState = iota

	// a start request has been seen but counting begins on the next cycle
	timerWaitCount

	// reload from the latch and then stop/count
	timerLoadStop
	timerLoadCount

	// force load was requested while a start is pending
	timerLoadWaitCount

	timerCount

	// count one final time and then stop
	timerCountStop
)

func (s timerState) String() string {
	switch s {
	case timerStop:
		return "stop"
	case timerWaitCount:
		return "wait"
	case timerLoadStop:
		return "load/stop"
	case timerLoadCount:
		return "load/count"
	case timerLoadWaitCount:
		return "load/wait"
	case timerCount:
		return "count"
	case timerCountStop:
		return "count/stop"
	}
	return "unknown"
}

// control register bits common to both timers
const (
	ctrlStart     = 0x01
	ctrlOneShot   = 0x08
	ctrlForceLoad = 0x10
)

type timer struct {
	state timerState

	// mask used when raising the interrupt. bit 0 for timer A, bit 1 for
	// timer B
	srcMask uint8

	value uint16
	latch uint16

	ctrl uint8

	// a write to the control register is staged here and applied at the end
	// of the following Update()
	newCtrl    uint8
	hasNewCtrl bool

	// decoded from the control register input mode bits on write
	cntPhi2        bool
	cntTAUnderflow bool

	// an underflow raises the interrupt flag immediately but delivery to the
	// interrupt line happens on the next cycle
	irqNextCycle bool

	// whether the timer underflowed on the most recent Update(). consumed by
	// timer B when it is counting timer A underflows
	underflow bool
}

func (tm *timer) reset() {
	tm.state = timerStop
	tm.value = 0xffff
	tm.latch = 0x0001
	tm.ctrl = 0
	tm.newCtrl = 0
	tm.hasNewCtrl = false
	tm.cntPhi2 = false
	tm.cntTAUnderflow = false
	tm.irqNextCycle = false
	tm.underflow = false
}

// update advances the timer by one phi2 cycle. icr accumulates the interrupt
// source flags. taUnderflow is whether timer A underflowed this cycle and is
// meaningful only for timer B
func (tm *timer) update(icr *uint8, taUnderflow bool) {
	tm.underflow = false

	switch tm.state {
	case timerStop:
		// nothing to do

	case timerWaitCount:
		tm.state = timerCount

	case timerLoadStop:
		tm.value = tm.latch
		tm.state = timerStop

	case timerLoadCount:
		tm.value = tm.latch
		tm.state = timerCount

	case timerLoadWaitCount:
		tm.state = timerWaitCount

		// a force load racing a counter about to expire still produces the
		// interrupt
		if tm.value == 1 {
			tm.irq(icr)
		} else {
			tm.value = tm.latch
		}

	case timerCount:
		tm.count(icr, taUnderflow)

	case timerCountStop:
		tm.state = timerStop
		tm.count(icr, taUnderflow)
	}

	tm.idle()
}

// idle applies a staged control register write. the new start/stop and force
// load bits steer the state machine and only take effect from the next cycle
func (tm *timer) idle() {
	if !tm.hasNewCtrl {
		return
	}

	switch tm.state {
	case timerStop, timerLoadStop:
		if tm.newCtrl&ctrlStart != 0 {
			if tm.newCtrl&ctrlForceLoad != 0 {
				tm.state = timerLoadWaitCount
			} else {
				tm.state = timerWaitCount
			}
		} else if tm.newCtrl&ctrlForceLoad != 0 {
			tm.state = timerLoadStop
		}

	case timerWaitCount, timerLoadCount:
		if tm.newCtrl&ctrlStart != 0 {
			if tm.newCtrl&ctrlOneShot != 0 {
				tm.newCtrl &= 0xfe
				tm.state = timerStop
			} else if tm.newCtrl&ctrlForceLoad != 0 {
				tm.state = timerLoadWaitCount
			}
		} else {
			tm.state = timerStop
		}

	case timerCount:
		if tm.newCtrl&ctrlStart != 0 {
			if tm.newCtrl&ctrlForceLoad != 0 {
				tm.state = timerLoadWaitCount
			}
		} else {
			if tm.newCtrl&ctrlForceLoad != 0 {
				tm.state = timerLoadStop
			} else {
				tm.state = timerCountStop
			}
		}
	}

	// the force load bit is a strobe and never reads back as set
	tm.ctrl = tm.newCtrl & 0xef
	tm.hasNewCtrl = false
}

// irq handles an underflow. the counter reloads from the latch and, in
// one-shot mode, the start bit is cleared
func (tm *timer) irq(icr *uint8) {
	tm.value = tm.latch
	tm.irqNextCycle = true
	*icr |= tm.srcMask

	if tm.ctrl&ctrlOneShot != 0 {
		tm.ctrl &= 0xfe
		tm.newCtrl &= 0xfe
		tm.state = timerLoadStop
	} else {
		tm.state = timerLoadCount
	}
}

// count decrements the timer if the input mode selects a source that is
// active this cycle
func (tm *timer) count(icr *uint8, taUnderflow bool) {
	if tm.cntPhi2 || (tm.cntTAUnderflow && taUnderflow) {
		curr := tm.value
		tm.value--
		if curr == 0 || tm.value == 0 {
			if tm.state != timerStop {
				tm.irq(icr)
			}
			tm.underflow = true
		}
	}
}
