// Package tinyre is a minimal regular-expression engine for untrusted
// patterns in resource-constrained environments.
//
// tinyre interprets a restricted grammar directly against the text, with
// no compilation step and no allocation proportional to the pattern:
//   - Literals: abc, hello123
//   - Any character: .
//   - Character classes: [abc], [^0-9], [a-zA-Z0-9]
//   - Quantifiers: * (zero or more), + (one or more), ? (zero or one),
//     {n} (exact repetition, n >= 1)
//   - Anchors: ^ (start of text), $ (end of text)
//   - Escaping: \., \*, \[, \\, etc.
//
// Matching is greedy backtracking search made safe for pathological input
// by three configurable ceilings: maximum pattern length, maximum
// recursion depth, and a shared backtrack step budget. Every search is
// guaranteed to terminate.
//
// Basic usage:
//
//	m := tinyre.New()
//	match, err := m.Find("[0-9]+", []byte("order 1047 shipped"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(match.Start, match.Length) // 6 4
//
// Absent matches are reported as errors so that callers can distinguish
// "pattern legitimately does not occur" (ErrNoMatch) from "this pattern is
// unsafe or invalid to run" (ErrPatternTooLong, ErrDepthLimit,
// ErrBacktrackLimit, ErrMalformedPattern):
//
//	if _, err := m.Find("a+a+a+b", hostile); errors.Is(err, tinyre.ErrBacktrackLimit) {
//	    // pattern exhausted its step budget, drop it
//	}
//
// Limitations:
//   - No alternation, grouping, backreferences, lookaround or lazy
//     quantifiers.
//   - Bytes only; no multi-byte or Unicode-aware character semantics.
//   - Character classes have no internal escaping (a literal ']' cannot
//     be a class member) and an unterminated class is a silent non-match.
//   - A quantified atom must still match at least once where it appears;
//     zero repetitions under '*' or '?' are reached only by backtracking
//     after that first application.
//
// A Matcher is not safe for concurrent use; callers must serialize access
// or use one Matcher per goroutine.
package tinyre

import (
	"github.com/HansH111/TinyRE/backtrack"
	"github.com/HansH111/TinyRE/literal"
	"github.com/HansH111/TinyRE/prefilter"
)

// Config controls matching behavior and the safety ceilings.
//
// Example:
//
//	config := tinyre.DefaultConfig()
//	config.MaxBacktrackSteps = 128 // stricter budget
//	config.CaseInsensitive = true
//	m := tinyre.NewWithConfig(config)
type Config struct {
	// MaxPatternLen rejects longer patterns with ErrPatternTooLong
	// before any matching is attempted.
	// Default: 64
	MaxPatternLen int

	// MaxDepth bounds the recursion depth of the matcher.
	// Default: 128
	MaxDepth int

	// MaxBacktrackSteps bounds the total greedy-extension and backtrack
	// steps per search.
	// Default: 1024
	MaxBacktrackSteps int

	// CaseInsensitive folds ASCII case in literal, escape and class
	// comparisons.
	// Default: false
	CaseInsensitive bool

	// EnablePrefilter allows forward case-sensitive searches whose
	// pattern starts with a literal run to probe only positions where
	// that literal occurs. Positions the prefilter skips do not charge
	// the backtrack step budget; disable it when step accounting must
	// match a full scan exactly.
	// Default: true
	EnablePrefilter bool

	// MinPrefixLen is the minimum literal prefix length worth
	// prefiltering on.
	// Default: 2
	MinPrefixLen int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		MaxPatternLen:     backtrack.DefaultMaxPatternLen,
		MaxDepth:          backtrack.DefaultMaxDepth,
		MaxBacktrackSteps: backtrack.DefaultMaxBacktrackSteps,
		EnablePrefilter:   true,
		MinPrefixLen:      literal.MinPrefixLen,
	}
}

// Match is a successful search result: a start offset into the text and
// the matched length in bytes. Length zero is a valid empty match.
type Match struct {
	Start  int
	Length int
}

// End returns the offset just past the match.
func (m Match) End() int {
	return m.Start + m.Length
}

// Peaks is the persistent peak-usage diagnostics of a Matcher.
type Peaks = backtrack.Peaks

// Matcher runs searches under one configuration and accumulates peak
// usage diagnostics across them.
//
// A Matcher is not safe for concurrent use: the step counter, outcome
// code and peak counters of an in-flight search are unsynchronized.
type Matcher struct {
	config Config
	peaks  backtrack.Peaks
}

// New returns a Matcher with the default configuration.
func New() *Matcher {
	return NewWithConfig(DefaultConfig())
}

// NewWithConfig returns a Matcher with the given configuration.
func NewWithConfig(config Config) *Matcher {
	return &Matcher{config: config}
}

// Find searches forward for the leftmost match of pattern in text.
//
// On success the returned error is nil. Otherwise the error is one of
// ErrNoMatch, ErrPatternTooLong, ErrDepthLimit, ErrBacktrackLimit or
// ErrMalformedPattern.
func (m *Matcher) Find(pattern string, text []byte) (Match, error) {
	return m.find(pattern, text, false)
}

// FindLast searches backward, trying start offsets from the end of the
// text toward the beginning, and returns the rightmost match start. A
// pattern anchored with '^' ignores the direction and is still tried only
// at offset zero.
func (m *Matcher) FindLast(pattern string, text []byte) (Match, error) {
	return m.find(pattern, text, true)
}

// FindString is Find for string text.
func (m *Matcher) FindString(pattern, text string) (Match, error) {
	return m.Find(pattern, []byte(text))
}

// Peaks returns the maximum recursion depth and backtrack step count
// observed over all searches since the last ResetPeaks.
func (m *Matcher) Peaks() Peaks {
	return m.peaks
}

// ResetPeaks clears the peak diagnostics.
func (m *Matcher) ResetPeaks() {
	m.peaks.Reset()
}

func (m *Matcher) params(backward bool) backtrack.Params {
	return backtrack.Params{
		Limits: backtrack.Limits{
			MaxPatternLen:     m.config.MaxPatternLen,
			MaxDepth:          m.config.MaxDepth,
			MaxBacktrackSteps: m.config.MaxBacktrackSteps,
		},
		CaseInsensitive: m.config.CaseInsensitive,
		Backward:        backward,
	}
}

func (m *Matcher) find(pattern string, text []byte, backward bool) (Match, error) {
	run := backtrack.NewRun(m.params(backward), &m.peaks)

	if pf := m.literalPrefilter(pattern, backward); pf != nil {
		return m.findFiltered(run, pf, pattern, text)
	}

	start, length, code := run.Search(pattern, text)
	if code != backtrack.CodeOK {
		return Match{}, code.Err()
	}
	return Match{Start: start, Length: length}, nil
}

// literalPrefilter builds a candidate scanner when the pattern has a
// usable required literal prefix. Case folding and backward scans fall
// back to the full position scan.
func (m *Matcher) literalPrefilter(pattern string, backward bool) *prefilter.Literal {
	if !m.config.EnablePrefilter || m.config.CaseInsensitive || backward {
		return nil
	}
	prefix := literal.LeadingLiteral(pattern)
	minLen := m.config.MinPrefixLen
	if minLen <= 0 {
		minLen = literal.MinPrefixLen
	}
	if len(prefix) < minLen {
		return nil
	}
	pf, err := prefilter.NewLiteral(prefix)
	if err != nil {
		return nil
	}
	return pf
}

// findFiltered verifies candidate positions reported by the prefilter.
// All candidates share one run, so the step budget and first-write-wins
// outcome code span the whole top-level search, exactly as in a full
// scan.
func (m *Matcher) findFiltered(run *backtrack.Run, pf *prefilter.Literal, pattern string, text []byte) (Match, error) {
	if !run.Reset(pattern) {
		return Match{}, run.Code().Err()
	}
	for at := pf.Next(text, 0); at >= 0; at = pf.Next(text, at+1) {
		if n, ok := run.Try(pattern, text, at); ok {
			return Match{Start: at, Length: n}, nil
		}
	}
	if code := run.Code(); code != backtrack.CodeOK {
		return Match{}, code.Err()
	}
	return Match{}, backtrack.ErrNoMatch
}

// Find searches with the default configuration.
func Find(pattern string, text []byte) (Match, error) {
	return New().Find(pattern, text)
}

// FindString is Find for string text.
func FindString(pattern, text string) (Match, error) {
	return New().FindString(pattern, text)
}
