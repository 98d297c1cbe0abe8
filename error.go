package tinyre

import "github.com/HansH111/TinyRE/backtrack"

// Engine errors, re-exported from the backtrack package so callers can
// match them with errors.Is without importing the engine internals.
var (
	// ErrNoMatch indicates the pattern does not occur in the text.
	// Not a true failure of the engine.
	ErrNoMatch = backtrack.ErrNoMatch

	// ErrPatternTooLong indicates the pattern exceeds Config.MaxPatternLen.
	ErrPatternTooLong = backtrack.ErrPatternTooLong

	// ErrDepthLimit indicates Config.MaxDepth was exceeded.
	ErrDepthLimit = backtrack.ErrDepthLimit

	// ErrBacktrackLimit indicates Config.MaxBacktrackSteps was exhausted.
	ErrBacktrackLimit = backtrack.ErrBacktrackLimit

	// ErrMalformedPattern indicates a structurally invalid pattern, such
	// as an empty, zero or unterminated {n} count.
	ErrMalformedPattern = backtrack.ErrMalformedPattern
)

// Code is the numeric outcome code of a search, for callers that branch
// on compact status values rather than sentinel errors.
type Code = backtrack.Code

// Numeric outcome codes.
const (
	CodeOK               = backtrack.CodeOK
	CodeNoMatch          = backtrack.CodeNoMatch
	CodePatternTooLong   = backtrack.CodePatternTooLong
	CodeRecursionDepth   = backtrack.CodeRecursionDepth
	CodeBacktrackLimit   = backtrack.CodeBacktrackLimit
	CodeMalformedPattern = backtrack.CodeMalformedPattern
)

// ErrorCode maps an error returned by Find or FindLast to its numeric
// code. A nil error maps to CodeOK.
func ErrorCode(err error) Code {
	return backtrack.CodeForErr(err)
}
