package debugger

import (
	"fmt"
	"strconv"
	"strings"
)

func (m *debugger) parseStepRule(cmd []string) bool {
	// rough support for step rule definition

	rule := strings.ToUpper(cmd[0])
	if rule == "FRAME" || rule == "FR" {
		var tgt int
		if len(cmd) > 1 {
			var err error
			tgt, err = strconv.Atoi(cmd[1])
			if err != nil {
				fmt.Println(m.styles.err.Render(err.Error()))
				return false
			}
			if tgt <= m.console.VIC.Frame {
				fmt.Println(m.styles.err.Render(fmt.Sprintf("FRAME %d is in the past", tgt)))
				return false
			}
		} else {
			tgt = m.console.VIC.Frame + 1
		}
		m.stepRule = func() bool {
			return m.console.VIC.Frame == tgt
		}
	} else if rule == "SCANLINE" || rule == "SL" {
		var tgt int
		if len(cmd) > 1 {
			var err error
			tgt, err = strconv.Atoi(cmd[1])
			if err != nil {
				fmt.Println(m.styles.err.Render(err.Error()))
				return false
			}
			if tgt <= m.console.VIC.Scanline {
				fmt.Println(m.styles.err.Render(fmt.Sprintf("SCANLINE %d is in the past", tgt)))
				return false
			}
		} else {
			tgt = m.console.VIC.Scanline + 1
		}
		m.stepRule = func() bool {
			return m.console.VIC.Scanline == tgt
		}
	} else if rule == "CYCLE" || rule == "CY" {
		n := 1
		if len(cmd) > 1 {
			var err error
			n, err = strconv.Atoi(cmd[1])
			if err != nil {
				fmt.Println(m.styles.err.Render(err.Error()))
				return false
			}
		}
		tgt := m.console.Cycles + uint64(n)
		m.stepRule = func() bool {
			return m.console.Cycles >= tgt
		}
	} else {
		fmt.Println(m.styles.err.Render(
			fmt.Sprintf("STEP %s is unsupported", rule),
		))
		return false
	}
	return true
}
