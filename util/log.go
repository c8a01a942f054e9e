package util

import (
	"log"
	"os"

	"github.com/mattn/go-isatty"
)

var flagEnableTrace bool = false

func EnableTrace() {
	flagEnableTrace = true
}

func DisableTrace() {
	flagEnableTrace = false
}

func Trace(format string, v ...interface{}) {
	if flagEnableTrace {
		log.Printf(format, v...)
	}
}

// SetupLogger configures the standard logger for a demo binary. Interactive
// terminals get short timestamps; redirected output gets full dates.
// HANDMADE_TRACE=1 turns tracing on.
func SetupLogger(prefix string) {
	log.SetPrefix(prefix + ": ")
	if isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		log.SetFlags(log.Ltime | log.Lmicroseconds)
	} else {
		log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	}
	if os.Getenv("HANDMADE_TRACE") == "1" {
		EnableTrace()
	}
}
