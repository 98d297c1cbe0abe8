// Package prefilter locates candidate match positions for a required
// literal prefix, so the backtracking engine only runs where a match can
// possibly start.
package prefilter

import (
	"github.com/coregx/ahocorasick"
)

// Literal scans a text for occurrences of one required literal, reporting
// each occurrence start as a candidate match position.
//
// Example:
//
//	pf, err := prefilter.NewLiteral("abc")
//	if err != nil {
//	    return err
//	}
//	for at := pf.Next(text, 0); at >= 0; at = pf.Next(text, at+1) {
//	    // verify a full match starting at 'at'
//	}
type Literal struct {
	auto   *ahocorasick.Automaton
	litLen int
}

// NewLiteral builds a candidate scanner for the given literal. The
// literal must be non-empty.
func NewLiteral(lit string) (*Literal, error) {
	builder := ahocorasick.NewBuilder()
	builder.AddPattern([]byte(lit))
	auto, err := builder.Build()
	if err != nil {
		return nil, err
	}
	return &Literal{auto: auto, litLen: len(lit)}, nil
}

// Next returns the start of the next literal occurrence beginning at or
// after at, or -1 when there are none.
func (p *Literal) Next(text []byte, at int) int {
	if at < 0 {
		at = 0
	}
	if at >= len(text) {
		return -1
	}
	m := p.auto.Find(text, at)
	if m == nil {
		return -1
	}
	return m.Start
}

// LitLen returns the length of the scanned literal.
func (p *Literal) LitLen() int {
	return p.litLen
}
