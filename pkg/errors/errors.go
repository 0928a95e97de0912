// Package errors provides structured error handling for the gtkml runtime.
//
// Errors fall in two groups. Fatal conditions (a malformed document, a
// document without a window) are returned to the caller as [MarkupError] or
// [StructureError] values. Everything else is recoverable: it is wrapped in
// an [Error] and reported to a [Handler], and construction continues with a
// degraded result.
package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindMarkup indicates a document that is not well-formed.
	KindMarkup
	// KindStructure indicates a well-formed document with an unusable shape.
	KindStructure
	// KindResolve indicates a tag with no widget module.
	KindResolve
	// KindModule indicates a widget module that failed to load or construct.
	KindModule
	// KindHandler indicates an event attribute naming an unknown handler.
	KindHandler
	// KindAsset indicates a missing or undecodable asset.
	KindAsset
	// KindLogic indicates a logic unit that could not be loaded.
	KindLogic
	// KindProperty indicates a common property that could not be applied.
	KindProperty
	// KindConfig indicates a bad descriptor or stylesheet.
	KindConfig
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindMarkup:
		return "markup"
	case KindStructure:
		return "structure"
	case KindResolve:
		return "resolve"
	case KindModule:
		return "module"
	case KindHandler:
		return "handler"
	case KindAsset:
		return "asset"
	case KindLogic:
		return "logic"
	case KindProperty:
		return "property"
	case KindConfig:
		return "config"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// Severity tells a Handler how loudly to report an Error.
type Severity int

const (
	// SeverityWarn marks a degraded but usable result.
	SeverityWarn Severity = iota
	// SeverityError marks an operation that produced nothing.
	SeverityError
)

func (s Severity) String() string {
	if s == SeverityError {
		return "ERROR"
	}
	return "WARN"
}

// Sentinel errors wrapped by recoverable reports.
var (
	ErrNoWindow        = stderrors.New("markup must contain a <window> element")
	ErrNoModule        = stderrors.New("no widget module")
	ErrNoConstructor   = stderrors.New("widget module has no construct entry point")
	ErrHandlerNotFound = stderrors.New("no such handler")
	ErrLogicNotFound   = stderrors.New("logic unit not found")
	ErrAssetNotFound   = stderrors.New("asset not found")
	ErrUnknownSignal   = stderrors.New("unknown signal")
)

// Error represents a recoverable error reported during startup or build.
type Error struct {
	// Op is the operation that failed (e.g., "gtkml.CreateWidget").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Severity controls how the error is presented.
	Severity Severity
	// Tag is the element tag involved, if any.
	Tag string
	// Path is the file involved, if any.
	Path string
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *Error) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Op)
	fmt.Fprintf(&sb, " [%s]", e.Kind)
	if e.Tag != "" {
		fmt.Fprintf(&sb, " <%s>", e.Tag)
	}
	if e.Path != "" {
		fmt.Fprintf(&sb, " path=%s", e.Path)
	}
	fmt.Fprintf(&sb, ": %v", e.Err)
	return sb.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// MarkupError reports a document that is not well-formed.
type MarkupError struct {
	// Source is the document path or name.
	Source string
	// Line is the 1-based line of the failure, or 0 when unknown.
	Line int
	// Err is the underlying decoder error.
	Err error
}

func (e *MarkupError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("failed to parse UI file '%s' (line %d): %v", e.Source, e.Line, e.Err)
	}
	return fmt.Sprintf("failed to parse UI file '%s': %v", e.Source, e.Err)
}

func (e *MarkupError) Unwrap() error {
	return e.Err
}

// StructureError reports a document from which no UI can be built.
type StructureError struct {
	// Source is the document path or name.
	Source string
	// Err is the reason, usually ErrNoWindow.
	Err error
}

func (e *StructureError) Error() string {
	if e.Source == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.Source, e.Err)
}

func (e *StructureError) Unwrap() error {
	return e.Err
}

// ResolveError reports a tag for which no widget module could be found.
type ResolveError struct {
	// Tag is the unresolved tag.
	Tag string
	// Tried lists the file paths and registry names that were probed.
	Tried []string
}

func (e *ResolveError) Error() string {
	return fmt.Sprintf("No widget handler for <%s>", e.Tag)
}

func (e *ResolveError) Unwrap() error {
	return ErrNoModule
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "gtkml.Construct").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// New returns an error that formats as the given text.
func New(text string) error {
	return stderrors.New(text)
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool {
	return stderrors.As(err, target)
}
