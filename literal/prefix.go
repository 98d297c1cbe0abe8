// Package literal extracts literal information from patterns for
// prefilter optimization.
package literal

// MinPrefixLen is the default minimum prefix length worth prefiltering.
// Shorter literals produce too many candidate positions to pay off.
const MinPrefixLen = 2

// metachar reports whether c starts or modifies a non-literal construct.
// '$' is only an anchor as the last pattern byte and '{' only opens a
// count when well formed, but stopping at either is always safe for
// prefix extraction.
func metachar(c byte) bool {
	switch c {
	case '\\', '.', '[', '*', '+', '?', '{', '$':
		return true
	}
	return false
}

// LeadingLiteral returns the run of plain literal bytes at the start of
// pattern, stopping before the first metacharacter.
//
// Every returned byte is required, in order, at the start of any match:
// the engine demands a first successful application of each atom even
// under '*' or '?', so a quantifier following the run never lowers the
// requirement below one occurrence. The run is therefore a necessary
// prefix and safe to prefilter on.
//
// Patterns anchored with '^' return an empty prefix; anchored searches
// probe a single position and gain nothing from prefiltering.
func LeadingLiteral(pattern string) string {
	if len(pattern) > 0 && pattern[0] == '^' {
		return ""
	}
	i := 0
	for i < len(pattern) && !metachar(pattern[i]) {
		i++
	}
	return pattern[:i]
}
