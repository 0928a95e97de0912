package errors

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"
)

// Handler receives diagnostics reported by the gtkml runtime.
//
// There is no process-wide handler: every application context carries its
// own, so two applications in one process never share diagnostics.
type Handler interface {
	// Log is called for informational messages.
	Log(msg string)
	// HandleError is called when a recoverable error occurs.
	HandleError(err *Error)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}

// Default returns the handler used when none is configured: a LogHandler
// writing to stderr.
func Default() Handler {
	return &LogHandler{Out: os.Stderr}
}

// Report sends an error to h, falling back to Default when h is nil.
// If err.Timestamp is zero, it is set to the current time.
func Report(h Handler, err *Error) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	if h == nil {
		h = Default()
	}
	h.HandleError(err)
}

// Warn reports err as a warning for op. A nil err is ignored.
func Warn(h Handler, op string, kind ErrorKind, err error) {
	if err == nil {
		return
	}
	Report(h, &Error{Op: op, Kind: kind, Severity: SeverityWarn, Err: err})
}

// Logf sends a formatted informational message to h.
func Logf(h Handler, format string, args ...any) {
	if h == nil {
		h = Default()
	}
	h.Log(fmt.Sprintf(format, args...))
}

// ReportPanic sends a panic error to h.
func ReportPanic(h Handler, err *PanicError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	if h == nil {
		h = Default()
	}
	h.HandlePanic(err)
}

// Recover is a helper for deferred panic recovery.
// Usage: defer errors.Recover(h, "operation.name")
func Recover(h Handler, op string) {
	if r := recover(); r != nil {
		ReportPanic(h, &PanicError{
			Op:         op,
			Value:      r,
			StackTrace: CaptureStack(),
			Timestamp:  time.Now(),
		})
	}
}

// Guard runs fn, reporting and swallowing any panic it raises.
// It returns false if fn panicked.
func Guard(h Handler, op string, fn func()) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			ReportPanic(h, &PanicError{
				Op:         op,
				Value:      r,
				StackTrace: CaptureStack(),
				Timestamp:  time.Now(),
			})
			ok = false
		}
	}()
	fn()
	return true
}

// CaptureStack returns the current call stack as a string.
// It skips the first few frames to exclude the CaptureStack call itself.
func CaptureStack() string {
	const maxDepth = 32
	var pcs [maxDepth]uintptr
	n := runtime.Callers(3, pcs[:])
	if n == 0 {
		return ""
	}

	frames := runtime.CallersFrames(pcs[:n])
	var sb strings.Builder
	for {
		frame, more := frames.Next()
		sb.WriteString(frame.Function)
		sb.WriteString("\n\t")
		sb.WriteString(frame.File)
		sb.WriteString(":")
		sb.WriteString(strconv.Itoa(frame.Line))
		sb.WriteString("\n")
		if !more {
			break
		}
	}
	return sb.String()
}
