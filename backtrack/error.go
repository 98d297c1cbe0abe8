// Package backtrack implements a bounded greedy-backtracking matcher for a
// deliberately small regex grammar: literals, '.', [...] classes with
// ranges and negation, the quantifiers * + ? {n}, the anchors ^ and $, and
// backslash escapes.
//
// The engine interprets the pattern in place with integer cursors; it never
// compiles the pattern into an automaton or any other intermediate form.
// Matching is greedy with single-character backtracking, made safe for
// untrusted input by three configurable ceilings (pattern length, recursion
// depth, backtrack step budget) that guarantee termination.
//
// Known grammar restrictions: character classes have no internal escaping
// (a literal ']' cannot be a class member) and an unterminated class is a
// silent non-match rather than a pattern error. Alternation, grouping,
// backreferences, lookaround and lazy quantifiers are unsupported.
package backtrack

import "errors"

// Code identifies the outcome of a search as a compact numeric value,
// for callers that log diagnostics or bridge to C-style status codes.
type Code int

// Search outcome codes. Within one top-level search the first code written
// wins; later violations never overwrite it.
const (
	// CodeOK means a match was found.
	CodeOK Code = iota

	// CodeNoMatch means the pattern legitimately does not occur.
	// Not a true error.
	CodeNoMatch

	// CodePatternTooLong means the pattern exceeds Limits.MaxPatternLen.
	CodePatternTooLong

	// CodeRecursionDepth means Limits.MaxDepth was exceeded.
	CodeRecursionDepth

	// CodeBacktrackLimit means Limits.MaxBacktrackSteps was exhausted.
	CodeBacktrackLimit

	// CodeMalformedPattern means the pattern is structurally invalid,
	// e.g. an empty, zero or unterminated {n} count.
	CodeMalformedPattern
)

// Common engine errors, one per failure Code.
var (
	// ErrNoMatch indicates the pattern does not occur in the text.
	ErrNoMatch = errors.New("no match")

	// ErrPatternTooLong indicates the pattern exceeds the length ceiling.
	ErrPatternTooLong = errors.New("pattern too long")

	// ErrDepthLimit indicates the recursion depth ceiling was exceeded.
	ErrDepthLimit = errors.New("recursion depth limit exceeded")

	// ErrBacktrackLimit indicates the backtrack step budget was exhausted.
	ErrBacktrackLimit = errors.New("backtrack step limit exceeded")

	// ErrMalformedPattern indicates a structurally invalid pattern.
	ErrMalformedPattern = errors.New("malformed pattern")
)

// Err converts a Code to its sentinel error. CodeOK converts to nil.
func (c Code) Err() error {
	switch c {
	case CodeNoMatch:
		return ErrNoMatch
	case CodePatternTooLong:
		return ErrPatternTooLong
	case CodeRecursionDepth:
		return ErrDepthLimit
	case CodeBacktrackLimit:
		return ErrBacktrackLimit
	case CodeMalformedPattern:
		return ErrMalformedPattern
	}
	return nil
}

// String returns a short name for the code.
func (c Code) String() string {
	switch c {
	case CodeOK:
		return "OK"
	case CodeNoMatch:
		return "NO_MATCH"
	case CodePatternTooLong:
		return "PATTERN_TOO_LONG"
	case CodeRecursionDepth:
		return "RECURSION_DEPTH"
	case CodeBacktrackLimit:
		return "BACKTRACK_LIMIT"
	case CodeMalformedPattern:
		return "MALFORMED_PATTERN"
	}
	return "UNKNOWN"
}

// CodeForErr converts an engine error back to its Code. A nil error
// converts to CodeOK; unknown errors convert to CodeNoMatch.
func CodeForErr(err error) Code {
	switch {
	case err == nil:
		return CodeOK
	case errors.Is(err, ErrPatternTooLong):
		return CodePatternTooLong
	case errors.Is(err, ErrDepthLimit):
		return CodeRecursionDepth
	case errors.Is(err, ErrBacktrackLimit):
		return CodeBacktrackLimit
	case errors.Is(err, ErrMalformedPattern):
		return CodeMalformedPattern
	}
	return CodeNoMatch
}
