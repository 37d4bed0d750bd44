package errors

import (
	"fmt"
	"strings"
)

// Phase indicates which initialization stage the error occurred in
type Phase string

const (
	PhaseConfig    Phase = "config"    // settings loading/saving
	PhaseInit      Phase = "init"      // real initializer invocation
	PhaseResolve   Phase = "resolve"   // version resolution
	PhaseLayout    Phase = "layout"    // layout catalog selection
	PhaseAcquire   Phase = "acquire"   // capability object acquisition
	PhaseIntercept Phase = "intercept" // dispatch table construction/patching
	PhaseHook      Phase = "hook"      // import linkage rewriting
	PhaseExtend    Phase = "extend"    // extension collaborator invocation
	PhaseRefresh   Phase = "refresh"   // async metadata refresh
)

// Kind categorizes the error
type Kind string

const (
	KindVersionInfoUnavailable Kind = "version_info_unavailable"
	KindUnsupportedVersion     Kind = "unsupported_version"
	KindInitializerFailure     Kind = "initializer_failure"
	KindHookNotFound           Kind = "hook_not_found"
	KindSymbolNotFound         Kind = "symbol_not_found"
	KindModuleNotLoaded        Kind = "module_not_loaded"
	KindInvalidData            Kind = "invalid_data"
	KindOutOfBounds            Kind = "out_of_bounds"
	KindNotInitialized         Kind = "not_initialized"
	KindAlreadyInitialized     Kind = "already_initialized"
	KindUnsupported            Kind = "unsupported"
	KindTimeout                Kind = "timeout"
	KindIO                     Kind = "io"
)

// Error is the structured error type used throughout the runtime
type Error struct {
	Value   any
	Cause   error
	Phase   Phase
	Kind    Kind
	Library string
	Symbol  string
	Object  string
	Detail  string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Library != "" {
		b.WriteString(": ")
		b.WriteString(e.Library)
		if e.Symbol != "" {
			b.WriteByte('!')
			b.WriteString(e.Symbol)
		}
	} else if e.Symbol != "" {
		b.WriteString(": ")
		b.WriteString(e.Symbol)
	}

	if e.Object != "" {
		b.WriteString(" object ")
		b.WriteString(e.Object)
	}

	if e.Detail != "" {
		if e.Library != "" || e.Symbol != "" || e.Object != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Fatal reports whether the error must surface to the user and fail the
// host's own initialization contract. Every other condition degrades to the
// target library's shipped behavior.
func (e *Error) Fatal() bool {
	return e.Kind == KindUnsupportedVersion || e.Kind == KindInitializerFailure
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Library sets the library name
func (b *Builder) Library(name string) *Builder {
	b.err.Library = name
	return b
}

// Symbol sets the symbol name
func (b *Builder) Symbol(name string) *Builder {
	b.err.Symbol = name
	return b
}

// Object sets the capability-object kind name
func (b *Builder) Object(name string) *Builder {
	b.err.Object = name
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// VersionInfoUnavailable creates a resolver failure error. Non-fatal: the
// engine leaves the library unmodified.
func VersionInfoUnavailable(library, detail string) *Error {
	return &Error{
		Phase:   PhaseResolve,
		Kind:    KindVersionInfoUnavailable,
		Library: library,
		Detail:  detail,
	}
}

// UnsupportedVersion creates a catalog-ceiling error. Fatal.
func UnsupportedVersion(library string, version, ceiling uint64) *Error {
	return &Error{
		Phase:   PhaseResolve,
		Kind:    KindUnsupportedVersion,
		Library: library,
		Value:   version,
		Detail:  fmt.Sprintf("detected version %#016x exceeds catalog ceiling %#016x", version, ceiling),
	}
}

// InitializerFailure creates an error for a rejected initializer call. Fatal
// only after the fallback identity attempt also failed.
func InitializerFailure(symbol string, identity uint32) *Error {
	return &Error{
		Phase:  PhaseInit,
		Kind:   KindInitializerFailure,
		Symbol: symbol,
		Value:  identity,
		Detail: fmt.Sprintf("initializer rejected identity %d", identity),
	}
}

// HookNotFound creates a silent hook-miss error. Never surfaced.
func HookNotFound(library, symbol string) *Error {
	return &Error{
		Phase:   PhaseHook,
		Kind:    KindHookNotFound,
		Library: library,
		Symbol:  symbol,
	}
}

// SymbolNotFound creates a missing-export error
func SymbolNotFound(phase Phase, library, symbol string) *Error {
	return &Error{
		Phase:   phase,
		Kind:    KindSymbolNotFound,
		Library: library,
		Symbol:  symbol,
	}
}

// OutOfBounds creates an out of bounds error
func OutOfBounds(phase Phase, object string, index, length int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOutOfBounds,
		Object: object,
		Detail: fmt.Sprintf("index %d out of bounds (length %d)", index, length),
		Value:  index,
	}
}

// Unsupported creates an unsupported operation error
func Unsupported(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Detail: what,
	}
}
