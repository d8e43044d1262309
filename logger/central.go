package logger

import (
	"io"
)

// only allowing one central log for the entire application. there's no need to
// allow more than one log.
var central *logger

// maximum number of entries in the central logger.
const maxCentral = 256

func init() {
	central = newLogger(maxCentral)
}

// Log adds an entry to the central logger
func Log(perm Permission, tag string, detail any) {
	if perm == Allow || perm.AllowLogging() {
		central.log(tag, detail)
	}
}

// Logf adds a formatted entry to the central logger
func Logf(perm Permission, tag, format string, args ...any) {
	if perm == Allow || perm.AllowLogging() {
		central.logf(tag, format, args...)
	}
}

// Clear all entries from central logger
func Clear() {
	central.clear()
}

// Write contents of central logger to io.Writer
func Write(output io.Writer) {
	central.write(output)
}

// Tail writes the last N entries to io.Writer. A negative number writes every
// entry in the log
func Tail(output io.Writer, number int) {
	central.tail(output, number)
}

// SetEcho echoes log entries to io.Writer as they arrive. A nil value stops
// any echoing
func SetEcho(output io.Writer) {
	central.setEcho(output)
}
