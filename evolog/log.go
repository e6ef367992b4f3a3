// Package evolog provides the process-wide, level-gated logger used across
// the engine and its sub-packages.
package evolog

import (
	"fmt"
	"log"
	"os"
)

// Level controls which messages reach the underlying loggers.
type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

var (
	// Current is the active log level; Error-only by default so libraries
	// embedding the engine don't get unsolicited stdout noise.
	Current = LevelError

	debugLogger = log.New(os.Stdout, "DEBUG: ", log.Ltime|log.Lshortfile)
	infoLogger  = log.New(os.Stdout, "INFO: ", log.Ltime|log.Lshortfile)
	warnLogger  = log.New(os.Stdout, "WARN: ", log.Ltime|log.Lshortfile)
	errLogger   = log.New(os.Stderr, "ERROR: ", log.Ltime|log.Lshortfile)
)

// SetLevel sets the process-wide log level. An unrecognized level is
// treated as LevelError.
func SetLevel(l Level) {
	switch l {
	case LevelDebug, LevelInfo, LevelWarn, LevelError:
		Current = l
	default:
		Current = LevelError
	}
}

func accepts(target Level) bool {
	order := map[Level]int{LevelDebug: 0, LevelInfo: 1, LevelWarn: 2, LevelError: 3}
	return order[target] >= order[Current]
}

func Debugf(format string, args ...interface{}) {
	if accepts(LevelDebug) {
		_ = debugLogger.Output(2, sprintf(format, args...))
	}
}

func Infof(format string, args ...interface{}) {
	if accepts(LevelInfo) {
		_ = infoLogger.Output(2, sprintf(format, args...))
	}
}

func Warnf(format string, args ...interface{}) {
	if accepts(LevelWarn) {
		_ = warnLogger.Output(2, sprintf(format, args...))
	}
}

func Errorf(format string, args ...interface{}) {
	if accepts(LevelError) {
		_ = errLogger.Output(2, sprintf(format, args...))
	}
}

func sprintf(format string, args ...interface{}) string {
	if len(args) == 0 {
		return format
	}
	return fmt.Sprintf(format, args...)
}
