package logutil

import (
	"fmt"
	"io"
	"log"
	"os"
)

const (
	logFileName  = "xrectsel_debug.log"
	maxSizeBytes = 5 * 1024 * 1024
)

// Setup routes the stdlib logger. Diagnostics go to the debug file when
// fileLogging is on and to stderr when verbose is on; with neither, logs are
// discarded so stdout stays clean for scripts consuming the geometry.
func Setup(fileLogging, verbose bool) {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	var sinks []io.Writer
	if verbose {
		sinks = append(sinks, os.Stderr)
	}
	if fileLogging {
		rotateIfNeeded()
		f, err := os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
		} else {
			sinks = append(sinks, f)
		}
	}

	switch len(sinks) {
	case 0:
		log.SetOutput(io.Discard)
	case 1:
		log.SetOutput(sinks[0])
	default:
		log.SetOutput(io.MultiWriter(sinks...))
	}
}

// rotateIfNeeded keeps one archived generation of the debug log.
func rotateIfNeeded() {
	if st, err := os.Stat(logFileName); err == nil && st.Size() > maxSizeBytes {
		_ = os.Rename(logFileName, logFileName+".1")
	}
}
