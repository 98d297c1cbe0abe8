package backtrack

// Default safety ceilings.
//
// The defaults are deliberately tight: the engine is meant to run
// untrusted patterns in resource-constrained environments.
const (
	// DefaultMaxPatternLen is the default maximum pattern length in bytes.
	DefaultMaxPatternLen = 64

	// DefaultMaxDepth is the default maximum recursion depth.
	DefaultMaxDepth = 128

	// DefaultMaxBacktrackSteps is the default maximum number of greedy
	// extension and backtrack retreat steps per top-level search.
	DefaultMaxBacktrackSteps = 1024
)

// Limits holds the three independently configurable safety ceilings.
//
// Every ceiling is checked during matching and trips deterministically:
// for any finite text and any pattern within MaxPatternLen, a search is
// guaranteed to terminate because recursion depth and the backtrack step
// counter are monotonically bounded.
//
// Example:
//
//	limits := backtrack.DefaultLimits()
//	limits.MaxBacktrackSteps = 128 // much stricter budget
type Limits struct {
	// MaxPatternLen rejects patterns longer than this many bytes with
	// CodePatternTooLong before any matching is attempted.
	// Default: 64
	MaxPatternLen int

	// MaxDepth bounds the recursion depth of the repetition engine.
	// Exceeding it fails the search with CodeRecursionDepth.
	// Default: 128
	MaxDepth int

	// MaxBacktrackSteps bounds the shared step budget for greedy
	// extensions and backtrack retreats within one top-level search.
	// Exceeding it fails the search with CodeBacktrackLimit.
	// Default: 1024
	MaxBacktrackSteps int
}

// DefaultLimits returns the default safety ceilings.
func DefaultLimits() Limits {
	return Limits{
		MaxPatternLen:     DefaultMaxPatternLen,
		MaxDepth:          DefaultMaxDepth,
		MaxBacktrackSteps: DefaultMaxBacktrackSteps,
	}
}

// Peaks records the highest recursion depth and backtrack step count
// observed across searches. The counters are purely observational and
// never affect match outcomes.
//
// Peaks persist across searches sharing the same instance until Reset is
// called. The usual owner is a tinyre.Matcher, which exposes them through
// its Peaks and ResetPeaks methods.
type Peaks struct {
	// Depth is the maximum recursion depth observed.
	Depth int

	// Steps is the maximum backtrack step count observed.
	Steps int
}

// Reset clears both peak counters.
func (p *Peaks) Reset() {
	p.Depth = 0
	p.Steps = 0
}
