package cia

// interrupts is the interrupt control register pair: the latched source flags
// and the enable mask. bit 7 of the flags is the summary bit, set whenever an
// enabled source has flagged. the chip's interrupt line follows the summary
// bit until the flags are read
type interrupts struct {
	pending uint8
	mask    uint8
}

func (irq *interrupts) reset() {
	irq.pending = 0
	irq.mask = 0
}

// raise flags an interrupt source. returns true if the source is enabled and
// the interrupt line should be asserted
func (irq *interrupts) raise(src uint8) bool {
	irq.pending |= src
	if irq.mask&src != 0 {
		irq.pending |= 0x80
		return true
	}
	return false
}

// writeMask applies a write to the mask register. bit 7 of the written value
// selects whether the low bits set or clear mask bits. returns true if an
// already flagged source has just been enabled and the interrupt line should
// be asserted
func (irq *interrupts) writeMask(data uint8) bool {
	if data&0x80 != 0 {
		irq.mask |= data & 0x7f
	} else {
		irq.mask &^= data
	}

	if irq.pending&irq.mask&0x1f != 0 {
		irq.pending |= 0x80
		return true
	}
	return false
}

// readAndClear returns the flags, including the summary bit, and clears them.
// the caller is responsible for releasing the interrupt line
func (irq *interrupts) readAndClear() uint8 {
	curr := irq.pending
	irq.pending = 0
	return curr
}
