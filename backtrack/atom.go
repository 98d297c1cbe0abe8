package backtrack

import "strings"

// maxRepeatCount caps a parsed {n} count so pathological digit runs
// cannot overflow the counter.
const maxRepeatCount = 1 << 30

// matchAtom attempts to consume exactly one pattern atom at pattern[pi:]
// against the single text byte at text[ti].
//
// On success it returns the cursor advanced past the atom and past any
// immediately following {n} count, the repetition count (n from {n}, or 1
// meaning "a bare quantifier may follow"), and true. On failure the cursor
// is unchanged.
//
// Recognition order: backslash escape, '[' class, '.', plain literal. An
// atom never matches when the text is exhausted, '.' included. A '[' with
// no closing ']' is a silent non-match. A {n} with a zero, empty or
// unterminated count records CodeMalformedPattern and reports no match.
func (r *Run) matchAtom(pattern string, pi int, text []byte, ti int) (next, repeat int, ok bool) {
	if ti >= len(text) {
		return pi, 1, false
	}
	c := text[ti]
	start := pi

	switch {
	case pattern[pi] == '\\' && pi+1 < len(pattern):
		if !r.eqByte(c, pattern[pi+1]) {
			return start, 1, false
		}
		pi += 2
	case pattern[pi] == '[':
		end := strings.IndexByte(pattern[pi+1:], ']')
		if end < 0 || !r.inClass(c, pattern[pi+1:pi+1+end]) {
			return start, 1, false
		}
		pi += end + 2
	case pattern[pi] == '.':
		pi++
	default:
		// A lone trailing backslash falls through here and compares
		// as a literal backslash.
		if !r.eqByte(c, pattern[pi]) {
			return start, 1, false
		}
		pi++
	}

	repeat = 1
	if pi < len(pattern) && pattern[pi] == '{' {
		pi++
		n := 0
		for pi < len(pattern) && pattern[pi] >= '0' && pattern[pi] <= '9' {
			n = n*10 + int(pattern[pi]-'0')
			if n > maxRepeatCount {
				// Saturate: any count beyond the text length already
				// cannot match, and saturation keeps n positive.
				n = maxRepeatCount
			}
			pi++
		}
		if n == 0 || pi >= len(pattern) || pattern[pi] != '}' {
			r.setCode(CodeMalformedPattern)
			return start, 1, false
		}
		pi++
		repeat = n
	}
	return pi, repeat, true
}
