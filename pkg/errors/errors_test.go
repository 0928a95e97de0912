package errors

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"time"
)

func TestErrorString(t *testing.T) {
	err := &Error{
		Op:   "gtkml.CreateWidget",
		Kind: KindModule,
		Tag:  "button",
		Err:  ErrNoConstructor,
	}
	got := err.Error()
	want := "gtkml.CreateWidget [module] <button>: widget module has no construct entry point"
	if got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestErrorWithPath(t *testing.T) {
	err := &Error{
		Op:   "gtkml.LoadLogic",
		Kind: KindLogic,
		Path: "/tmp/logic.so",
		Err:  ErrLogicNotFound,
	}
	if !strings.Contains(err.Error(), "path=/tmp/logic.so") {
		t.Errorf("error string %q should contain the path", err.Error())
	}
	if !Is(err, ErrLogicNotFound) {
		t.Error("expected Is to see through Error")
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindMarkup, "markup"},
		{KindStructure, "structure"},
		{KindResolve, "resolve"},
		{KindModule, "module"},
		{KindHandler, "handler"},
		{KindAsset, "asset"},
		{KindLogic, "logic"},
		{KindProperty, "property"},
		{KindConfig, "config"},
		{KindPanic, "panic"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestMarkupErrorString(t *testing.T) {
	err := &MarkupError{Source: "ui.gtkm", Line: 3, Err: fmt.Errorf("unexpected EOF")}
	want := "failed to parse UI file 'ui.gtkm' (line 3): unexpected EOF"
	if got := err.Error(); got != want {
		t.Errorf("MarkupError.Error() = %q, want %q", got, want)
	}

	err.Line = 0
	want = "failed to parse UI file 'ui.gtkm': unexpected EOF"
	if got := err.Error(); got != want {
		t.Errorf("MarkupError.Error() = %q, want %q", got, want)
	}
}

func TestStructureErrorUnwrap(t *testing.T) {
	err := &StructureError{Source: "ui.gtkm", Err: ErrNoWindow}
	if !Is(err, ErrNoWindow) {
		t.Error("expected StructureError to unwrap to ErrNoWindow")
	}
	var se *StructureError
	if !As(fmt.Errorf("wrapped: %w", err), &se) {
		t.Error("expected As to find StructureError")
	}
}

func TestResolveError(t *testing.T) {
	err := &ResolveError{Tag: "blink", Tried: []string{"/w/blink.so"}}
	if got, want := err.Error(), "No widget handler for <blink>"; got != want {
		t.Errorf("ResolveError.Error() = %q, want %q", got, want)
	}
	if !Is(err, ErrNoModule) {
		t.Error("expected ResolveError to unwrap to ErrNoModule")
	}
}

func TestPanicErrorString(t *testing.T) {
	err := &PanicError{
		Value:     "test panic",
		Timestamp: time.Now(),
	}
	if got, want := err.Error(), "panic: test panic"; got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}

	err.Op = "gtkml.Construct"
	if got, want := err.Error(), "panic in gtkml.Construct: test panic"; got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
}

func TestReportSetsTimestamp(t *testing.T) {
	rec := &Recorder{}
	Report(rec, &Error{Op: "test.op", Kind: KindAsset, Err: ErrAssetNotFound})

	errs := rec.Errors()
	if len(errs) != 1 {
		t.Fatalf("recorded %d errors, want 1", len(errs))
	}
	if errs[0].Op != "test.op" {
		t.Errorf("Op = %q, want %q", errs[0].Op, "test.op")
	}
	if errs[0].Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
}

func TestWarnIgnoresNil(t *testing.T) {
	rec := &Recorder{}
	Warn(rec, "test.op", KindProperty, nil)
	if rec.Count() != 0 {
		t.Errorf("Count() = %d, want 0", rec.Count())
	}
}

func TestRecover(t *testing.T) {
	rec := &Recorder{}

	func() {
		defer Recover(rec, "test.recover")
		panic("intentional test panic")
	}()

	panics := rec.Panics()
	if len(panics) != 1 {
		t.Fatalf("recorded %d panics, want 1", len(panics))
	}
	if panics[0].Value != "intentional test panic" {
		t.Errorf("Value = %v, want %q", panics[0].Value, "intentional test panic")
	}
	if panics[0].Op != "test.recover" {
		t.Errorf("Op = %q, want %q", panics[0].Op, "test.recover")
	}
}

func TestGuard(t *testing.T) {
	rec := &Recorder{}
	if ok := Guard(rec, "test.guard", func() {}); !ok {
		t.Error("Guard returned false for a function that did not panic")
	}
	if ok := Guard(rec, "test.guard", func() { panic("boom") }); ok {
		t.Error("Guard returned true for a panicking function")
	}
	if rec.Count() != 1 {
		t.Errorf("Count() = %d, want 1", rec.Count())
	}
}

func TestCaptureStack(t *testing.T) {
	stack := CaptureStack()
	if stack == "" {
		t.Error("expected non-empty stack trace")
	}
	if !strings.Contains(stack, "testing") && !strings.Contains(stack, "runtime") {
		t.Errorf("stack trace should contain testing or runtime frames, got: %s", stack)
	}
}

func TestLogHandlerOutput(t *testing.T) {
	var buf bytes.Buffer
	h := &LogHandler{Out: &buf}

	h.Log("Loaded logic unit")
	h.HandleError(&Error{Op: "gtkml.Resolve", Kind: KindResolve, Err: &ResolveError{Tag: "blink"}})
	h.HandlePanic(&PanicError{Op: "gtkml.Construct", Value: "boom"})

	want := "[gtkml:LOG] Loaded logic unit\n" +
		"[gtkml:WARN] No widget handler for <blink>\n" +
		"[gtkml:ERROR] panic in gtkml.Construct: boom\n"
	if got := buf.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestLogHandlerVerbose(t *testing.T) {
	var buf bytes.Buffer
	h := &LogHandler{Out: &buf, Verbose: true}
	h.HandleError(&Error{
		Op:         "gtkml.Resolve",
		Kind:       KindResolve,
		Severity:   SeverityError,
		Tag:        "blink",
		Err:        ErrNoModule,
		StackTrace: "main.main\n",
	})

	got := buf.String()
	if !strings.HasPrefix(got, "[gtkml:ERROR] gtkml.Resolve [resolve] <blink>: no widget module\n") {
		t.Errorf("unexpected verbose output %q", got)
	}
	if !strings.Contains(got, "Stack trace:\nmain.main") {
		t.Errorf("verbose output should include the stack trace, got %q", got)
	}
}

func TestRecorderByKind(t *testing.T) {
	rec := &Recorder{}
	Warn(rec, "a", KindAsset, ErrAssetNotFound)
	Warn(rec, "b", KindHandler, ErrHandlerNotFound)
	Warn(rec, "c", KindAsset, ErrAssetNotFound)

	if got := len(rec.ByKind(KindAsset)); got != 2 {
		t.Errorf("ByKind(KindAsset) = %d errors, want 2", got)
	}
	rec.Reset()
	if rec.Count() != 0 {
		t.Errorf("Count() after Reset = %d, want 0", rec.Count())
	}
}

func TestMultiFansOut(t *testing.T) {
	a, b := &Recorder{}, &Recorder{}
	m := Multi{a, b}
	m.Log("hello")
	m.HandleError(&Error{Err: ErrNoModule})
	m.HandlePanic(&PanicError{Value: 1})

	for i, r := range []*Recorder{a, b} {
		if len(r.Logs()) != 1 || r.Count() != 2 {
			t.Errorf("handler %d: logs=%d count=%d, want 1 and 2", i, len(r.Logs()), r.Count())
		}
	}
}
