package backtrack

// foldByte lowercases an ASCII byte.
func foldByte(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

// eqByte compares two bytes under the run's case-folding rule.
func (r *Run) eqByte(a, b byte) bool {
	if r.fold {
		return foldByte(a) == foldByte(b)
	}
	return a == b
}

// inClass reports whether c is a member of the bracket expression whose
// raw body (the slice between '[' and the first ']') is cls.
//
// A leading '^' negates the verdict. A three-byte sequence low-high, where
// high is not the closing bracket, is an inclusive range and consumes three
// positions; anything else is a single member. Members are evaluated left
// to right and the first hit wins. Class bodies have no internal escaping.
func (r *Run) inClass(c byte, cls string) bool {
	negate := false
	if len(cls) > 0 && cls[0] == '^' {
		negate = true
		cls = cls[1:]
	}

	matched := false
	for i := 0; i < len(cls); {
		if i+2 < len(cls) && cls[i+1] == '-' && cls[i+2] != ']' {
			lo, hi, probe := cls[i], cls[i+2], c
			if r.fold {
				lo, hi, probe = foldByte(lo), foldByte(hi), foldByte(probe)
			}
			if probe >= lo && probe <= hi {
				matched = true
				break
			}
			i += 3
		} else {
			if r.eqByte(c, cls[i]) {
				matched = true
				break
			}
			i++
		}
	}
	return negate != matched
}
