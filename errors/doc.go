// Package errors provides structured error types for the tek-game-runtime library.
//
// Errors are categorized by Phase (which stage of initialization failed) and
// Kind (error category). The Error type carries the library/symbol pair and
// capability-object kind involved, plus a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseResolve, errors.KindVersionInfoUnavailable).
//		Library("steam_api64.dll").
//		Detail("version resource absent").
//		Build()
//
// Only errors of KindUnsupportedVersion and KindInitializerFailure are
// surfaced to the user; every other condition degrades to the target
// library's unmodified behavior.
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
