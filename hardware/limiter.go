package hardware

import (
	"time"

	"github.com/jetsetilly/test64/hardware/spec"
)

type limiter struct {
	tick *time.Ticker

	// the payload function for the Wait() method
	wait func()
}

func newLimiter(spec spec.Spec) *limiter {
	l := &limiter{}

	// the ideal frame rate of the console
	d := time.Second / time.Duration(spec.RefreshRate)

	// the wait() function deliberately starts slow and then changes state
	// after a few frames to normal operation
	var ct int
	l.wait = func() {
		<-time.After(time.Duration(float64(d) * 1.025))
		ct++
		if ct > 2 {
			l.tick = time.NewTicker(d)
			l.wait = func() {
				<-l.tick.C
			}
		}
	}

	return l
}

func (l *limiter) Wait() {
	l.wait()
}
