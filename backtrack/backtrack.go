package backtrack

// matchHere attempts to match pattern[pi:] against text starting at ti, at
// the given recursion depth. It returns the total number of text bytes
// consumed and whether the match succeeded.
//
// The matcher is greedy: after the mandatory first application of an atom
// it extends the repetition as far as the quantifier's upper bound and the
// text allow, then backtracks one byte at a time until the remainder of
// the pattern matches or the quantifier's minimum is reached. Both the
// extension and the retreat charge the shared backtrack step budget.
//
// Zero repetitions under '*' or '?' are only reachable by backtracking
// below one after the first application succeeded; an atom that fails its
// first application fails the whole attempt regardless of the quantifier.
func (r *Run) matchHere(pattern string, pi int, text []byte, ti, depth int) (int, bool) {
	if depth > r.peaks.Depth {
		r.peaks.Depth = depth
	}
	if depth > r.limits.MaxDepth {
		r.setCode(CodeRecursionDepth)
		return 0, false
	}

	if pi >= len(pattern) {
		return 0, true
	}
	// '$' is only an anchor as the last pattern byte.
	if pattern[pi] == '$' && pi+1 == len(pattern) {
		return 0, ti == len(text)
	}

	npi, repeat, ok := r.matchAtom(pattern, pi, text, ti)
	if !ok {
		return 0, false
	}

	// Repetition range for the atom just matched.
	minRep, maxRep := repeat, repeat // exact {n}, or the implicit single
	afterQuant := npi
	if npi < len(pattern) {
		switch pattern[npi] {
		case '*':
			minRep, maxRep = 0, -1
			afterQuant++
		case '+':
			minRep, maxRep = 1, -1
			afterQuant++
		case '?':
			minRep, maxRep = 0, 1
			afterQuant++
		case '{':
			// The {n} count was already consumed with the atom.
			afterQuant++
		}
	}

	start := ti
	ti++ // one occurrence already consumed
	count := 1

	// Greedy extension up to the upper bound.
	for (maxRep < 0 || count < maxRep) && ti < len(text) {
		if !r.step() {
			return 0, false
		}
		if _, _, ok := r.matchAtom(pattern, pi, text, ti); !ok {
			break
		}
		ti++
		count++
	}

	// Backtrack from the maximal count down to the quantifier's minimum.
	for count >= minRep {
		if rest, ok := r.matchHere(pattern, afterQuant, text, ti, depth+1); ok {
			return (ti - start) + rest, true
		}
		if !r.step() {
			return 0, false
		}
		if count == minRep {
			break
		}
		count--
		ti-- // one repetition is always one text byte
	}
	return 0, false
}

// step charges one unit of the backtrack budget, updating the persistent
// peak. It returns false, recording CodeBacktrackLimit, once the budget is
// exhausted.
func (r *Run) step() bool {
	r.steps++
	if r.steps > r.peaks.Steps {
		r.peaks.Steps = r.steps
	}
	if r.steps > r.limits.MaxBacktrackSteps {
		r.setCode(CodeBacktrackLimit)
		return false
	}
	return true
}
