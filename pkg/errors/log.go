package errors

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// LogHandler is a Handler that prints console diagnostics.
//
// Lines look like "[gtkml:WARN] No widget handler for <foo>". Verbose mode
// prints the full structured error and stack traces.
type LogHandler struct {
	// Out receives the output. Nil means stderr.
	Out io.Writer
	// Verbose enables detailed output including stack traces.
	Verbose bool

	mu sync.Mutex
}

func (h *LogHandler) out() io.Writer {
	if h.Out == nil {
		return os.Stderr
	}
	return h.Out
}

// Log prints an informational message.
func (h *LogHandler) Log(msg string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	fmt.Fprintf(h.out(), "[gtkml:LOG] %s\n", msg)
}

// HandleError prints an Error.
func (h *LogHandler) HandleError(err *Error) {
	if err == nil {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	w := h.out()
	if h.Verbose {
		fmt.Fprintf(w, "[gtkml:%s] %s\n", err.Severity, err.Error())
		if err.StackTrace != "" {
			fmt.Fprintf(w, "Stack trace:\n%s\n", err.StackTrace)
		}
		return
	}
	fmt.Fprintf(w, "[gtkml:%s] %v\n", err.Severity, err.Err)
}

// HandlePanic prints a PanicError.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	w := h.out()
	fmt.Fprintf(w, "[gtkml:ERROR] %s\n", err.Error())
	if h.Verbose && err.StackTrace != "" {
		fmt.Fprintf(w, "Stack trace:\n%s\n", err.StackTrace)
	}
}
