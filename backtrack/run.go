package backtrack

// Params configures a single search run.
type Params struct {
	// Limits holds the safety ceilings for the run.
	Limits Limits

	// CaseInsensitive folds ASCII case in literal, escape and class
	// comparisons.
	CaseInsensitive bool

	// Backward scans start positions from the end of the text toward the
	// beginning. Ignored for '^'-anchored patterns.
	Backward bool
}

// Run is the mutable context of one top-level search: the case-folding
// flag, the shared backtrack step counter, the first-write-wins outcome
// code, and a pointer to the owner's persistent peak diagnostics.
//
// A Run is not safe for concurrent use and must not be re-entered while a
// search is in flight; the step counter and code are not stack-scoped.
type Run struct {
	limits Limits
	fold   bool
	back   bool

	steps int
	code  Code
	set   bool // code was written for this run

	peaks *Peaks
}

// NewRun returns a run context using the given parameters. peaks may be
// nil, in which case the run keeps private throwaway counters.
func NewRun(p Params, peaks *Peaks) *Run {
	if peaks == nil {
		peaks = &Peaks{}
	}
	return &Run{
		limits: p.Limits,
		fold:   p.CaseInsensitive,
		back:   p.Backward,
		peaks:  peaks,
	}
}

// setCode records the run's outcome. The first write wins: once a code is
// recorded, later violations in the same run never overwrite it.
func (r *Run) setCode(c Code) {
	if !r.set {
		r.code = c
		r.set = true
	}
}

// Code returns the recorded outcome of the run, CodeOK if none.
func (r *Run) Code() Code {
	return r.code
}

// Steps returns the backtrack steps consumed so far in this run.
func (r *Run) Steps() int {
	return r.steps
}

// Reset prepares the run for a fresh top-level search and validates the
// pattern against the length ceiling. It returns false, with the code set
// to CodePatternTooLong, when the pattern is rejected.
func (r *Run) Reset(pattern string) bool {
	r.steps = 0
	r.code = CodeOK
	r.set = false
	if len(pattern) > r.limits.MaxPatternLen {
		r.setCode(CodePatternTooLong)
		return false
	}
	return true
}

// Try attempts a single anchored match of pattern at text[at:], at depth
// zero, charging this run's shared step budget. It returns the matched
// length and whether the attempt succeeded.
//
// Reset must have been called for the current search. Try does not strip a
// leading '^'; callers driving candidate positions are expected to have
// excluded anchored patterns.
func (r *Run) Try(pattern string, text []byte, at int) (int, bool) {
	return r.matchHere(pattern, 0, text, at, 0)
}

// Search scans for pattern in text and returns the match start, the
// matched length, and the outcome code.
//
// A pattern starting with '^' is tried exactly once at offset zero,
// regardless of the requested direction. Otherwise every start offset from
// 0 through len(text) inclusive is tried in the configured direction and
// the first offset yielding a match wins; the final offset permits empty
// matches at end of text. When the scan is exhausted and no more specific
// code was recorded, the outcome is CodeNoMatch.
func (r *Run) Search(pattern string, text []byte) (start, length int, code Code) {
	if !r.Reset(pattern) {
		return -1, 0, r.code
	}

	if len(pattern) > 0 && pattern[0] == '^' {
		if n, ok := r.matchHere(pattern, 1, text, 0, 0); ok {
			return 0, n, CodeOK
		}
		r.setCode(CodeNoMatch)
		return -1, 0, r.code
	}

	if r.back {
		for at := len(text); at >= 0; at-- {
			if n, ok := r.matchHere(pattern, 0, text, at, 0); ok {
				return at, n, CodeOK
			}
		}
	} else {
		for at := 0; at <= len(text); at++ {
			if n, ok := r.matchHere(pattern, 0, text, at, 0); ok {
				return at, n, CodeOK
			}
		}
	}
	r.setCode(CodeNoMatch)
	return -1, 0, r.code
}
