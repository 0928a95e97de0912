package errors

import "sync"

// Recorder is a Handler that keeps every report in memory.
type Recorder struct {
	mu     sync.Mutex
	logs   []string
	errs   []*Error
	panics []*PanicError
}

// Log records an informational message.
func (r *Recorder) Log(msg string) {
	r.mu.Lock()
	r.logs = append(r.logs, msg)
	r.mu.Unlock()
}

// HandleError records err.
func (r *Recorder) HandleError(err *Error) {
	if err == nil {
		return
	}
	r.mu.Lock()
	r.errs = append(r.errs, err)
	r.mu.Unlock()
}

// HandlePanic records err.
func (r *Recorder) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	r.mu.Lock()
	r.panics = append(r.panics, err)
	r.mu.Unlock()
}

// Logs returns the recorded messages.
func (r *Recorder) Logs() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.logs...)
}

// Errors returns the recorded errors in report order.
func (r *Recorder) Errors() []*Error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*Error(nil), r.errs...)
}

// Panics returns the recorded panics in report order.
func (r *Recorder) Panics() []*PanicError {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*PanicError(nil), r.panics...)
}

// Count returns the number of errors and panics recorded.
func (r *Recorder) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.errs) + len(r.panics)
}

// ByKind returns the recorded errors of the given kind.
func (r *Recorder) ByKind(kind ErrorKind) []*Error {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*Error
	for _, err := range r.errs {
		if err.Kind == kind {
			out = append(out, err)
		}
	}
	return out
}

// Reset discards everything recorded so far.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.logs, r.errs, r.panics = nil, nil, nil
	r.mu.Unlock()
}

// Multi fans reports out to several handlers.
type Multi []Handler

// Log forwards msg to every handler.
func (m Multi) Log(msg string) {
	for _, h := range m {
		h.Log(msg)
	}
}

// HandleError forwards err to every handler.
func (m Multi) HandleError(err *Error) {
	for _, h := range m {
		h.HandleError(err)
	}
}

// HandlePanic forwards err to every handler.
func (m Multi) HandlePanic(err *PanicError) {
	for _, h := range m {
		h.HandlePanic(err)
	}
}
