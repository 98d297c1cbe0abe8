package tinyre

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// TestFind covers the supported grammar end to end.
func TestFind(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		text    string
		want    Match
		wantErr error
	}{
		{"literal", "abc", "abc", Match{0, 3}, nil},
		{"literal inside", "abc", "xxabcxx", Match{2, 3}, nil},
		{"literal absent", "abc", "abx", Match{}, ErrNoMatch},
		{"empty pattern", "", "anything", Match{0, 0}, nil},
		{"empty pattern empty text", "", "", Match{0, 0}, nil},
		{"dot", "a.c", "abc", Match{0, 3}, nil},
		{"dot any byte", ".", "#", Match{0, 1}, nil},
		{"dot needs a byte", ".", "", Match{}, ErrNoMatch},
		{"escape dot", `\.`, "a.b", Match{1, 1}, nil},
		{"escape dot literal only", `\.`, "ab", Match{}, ErrNoMatch},
		{"escape backslash", `\\`, `a\b`, Match{1, 1}, nil},
		{"class", "[abc]", "zzb", Match{2, 1}, nil},
		{"class range", "[0-9][0-9]", "x42y", Match{1, 2}, nil},
		{"class negated", "[^0-9]", "42x", Match{2, 1}, nil},
		{"class dash member", "[a-]", "-", Match{0, 1}, nil},
		{"star greedy", "a.*b", "aXbYb", Match{0, 5}, nil},
		{"star longest run", "a*$", "aaa", Match{0, 3}, nil},
		{"dot star longest", ".*$", "abc", Match{0, 3}, nil},
		{"plus", "[0-9]+", "order 1047 shipped", Match{6, 4}, nil},
		{"plus single", "a+", "ba", Match{1, 1}, nil},
		{"optional present", "ab?c", "abc", Match{0, 3}, nil},
		{"exact count", "a{3}", "xaaay", Match{1, 3}, nil},
		{"exact count short text", "a{2}", "a", Match{}, ErrNoMatch},
		{"count then more", "[0-9]{2}:[0-9]{2}", "at 12:45 sharp", Match{3, 5}, nil},
		{"anchored digits", "^[0-9]+$", "42", Match{0, 2}, nil},
		{"anchored digits trailing", "^[0-9]+$", "42x", Match{}, ErrNoMatch},
		{"dollar", "b$", "ab", Match{1, 1}, nil},
		{"dollar not at end", "a$", "ab", Match{}, ErrNoMatch},
	}

	m := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := m.Find(tt.pattern, []byte(tt.text))
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Find(%q, %q) error = %v, want %v", tt.pattern, tt.text, err, tt.wantErr)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Find(%q, %q) mismatch (-want +got):\n%s", tt.pattern, tt.text, diff)
			}
		})
	}
}

// TestFindCaseInsensitive verifies folding of literals, escapes and class
// ranges.
func TestFindCaseInsensitive(t *testing.T) {
	config := DefaultConfig()
	config.CaseInsensitive = true
	m := NewWithConfig(config)

	tests := []struct {
		name    string
		pattern string
		text    string
		want    Match
		wantErr error
	}{
		{"literal", "abc", "abC", Match{0, 3}, nil},
		{"literal upper pattern", "ABC", "xabcx", Match{1, 3}, nil},
		{"class range", "[a-z]+", "HELLO", Match{0, 5}, nil},
		{"class member", "[xyz]", "Y", Match{0, 1}, nil},
		{"escape", `\A`, "a", Match{0, 1}, nil},
		{"still no match", "abc", "abd", Match{}, ErrNoMatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := m.Find(tt.pattern, []byte(tt.text))
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Find(%q, %q) error = %v, want %v", tt.pattern, tt.text, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Find(%q, %q) = %+v, want %+v", tt.pattern, tt.text, got, tt.want)
			}
		})
	}
}

// TestFindLast verifies the backward scan returns the rightmost match.
func TestFindLast(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		text    string
		want    Match
		wantErr error
	}{
		{"single letter", "a", "banana", Match{5, 1}, nil},
		// The backward scan returns the first start position found from
		// the right; greedy extension never grows leftward past it.
		{"digits", "[0-9]+", "a1b22c", Match{4, 1}, nil},
		{"absent", "z", "banana", Match{}, ErrNoMatch},
		{"empty pattern matches at end", "", "abc", Match{3, 0}, nil},
	}

	m := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := m.FindLast(tt.pattern, []byte(tt.text))
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("FindLast(%q, %q) error = %v, want %v", tt.pattern, tt.text, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("FindLast(%q, %q) = %+v, want %+v", tt.pattern, tt.text, got, tt.want)
			}
		})
	}
}

// TestIdempotence verifies that identical calls under identical
// configuration produce identical results and identical errors.
func TestIdempotence(t *testing.T) {
	m := New()
	patterns := []string{"a.*b", "[0-9]+", "x{2}y", "a+a+a+a+b", "[0-9]{0}"}
	text := []byte("xx12aXbYb x 99 aaaaaaaa")

	for _, pattern := range patterns {
		first, errFirst := m.Find(pattern, text)
		second, errSecond := m.Find(pattern, text)
		if first != second {
			t.Errorf("Find(%q) not idempotent: %+v then %+v", pattern, first, second)
		}
		if !errors.Is(errFirst, errSecond) && !errors.Is(errSecond, errFirst) {
			t.Errorf("Find(%q) errors differ: %v then %v", pattern, errFirst, errSecond)
		}
	}
}

// TestPrefilterEquivalence verifies that the literal prefilter never
// changes a successful result.
func TestPrefilterEquivalence(t *testing.T) {
	tests := []struct {
		pattern string
		text    string
	}{
		{"abc[0-9]", "zzabc5zz"},
		{"abc", "abc"},
		{"foo.*bar", "xx foo yy foobar zz"},
		{"ab+c", "xabbbcx"},
		{"needle", "plain haystack with no match"},
	}

	plain := NewWithConfig(func() Config {
		c := DefaultConfig()
		c.EnablePrefilter = false
		return c
	}())
	filtered := New()

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			wantMatch, wantErr := plain.Find(tt.pattern, []byte(tt.text))
			gotMatch, gotErr := filtered.Find(tt.pattern, []byte(tt.text))
			if wantMatch != gotMatch {
				t.Errorf("prefilter changed result: %+v vs %+v", gotMatch, wantMatch)
			}
			if (wantErr == nil) != (gotErr == nil) || (wantErr != nil && !errors.Is(gotErr, wantErr)) {
				t.Errorf("prefilter changed error: %v vs %v", gotErr, wantErr)
			}
		})
	}
}

// TestPeaks verifies the persistent peak diagnostics.
func TestPeaks(t *testing.T) {
	m := New()

	if p := m.Peaks(); p.Depth != 0 || p.Steps != 0 {
		t.Fatalf("fresh matcher peaks = %+v, want zero", p)
	}

	if _, err := m.Find("a.*b", []byte("aXbYb")); err != nil {
		t.Fatalf("Find: %v", err)
	}
	after := m.Peaks()
	if after.Depth == 0 {
		t.Error("peak depth not recorded")
	}
	if after.Steps == 0 {
		t.Error("peak steps not recorded")
	}

	// A lighter search must not lower the peaks.
	if _, err := m.Find("a", []byte("a")); err != nil {
		t.Fatalf("Find: %v", err)
	}
	if p := m.Peaks(); p != after {
		t.Errorf("peaks lowered by a lighter search: %+v, want %+v", p, after)
	}

	m.ResetPeaks()
	if p := m.Peaks(); p.Depth != 0 || p.Steps != 0 {
		t.Errorf("peaks after reset = %+v, want zero", p)
	}
}

// TestMatchEnd sanity-checks the End helper.
func TestMatchEnd(t *testing.T) {
	m, err := Find("[0-9]+", []byte("ab123cd"))
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if m.End() != m.Start+m.Length {
		t.Errorf("End() = %d, want %d", m.End(), m.Start+m.Length)
	}
}

// TestFindString exercises the string convenience entry points.
func TestFindString(t *testing.T) {
	got, err := FindString("l+", "hello")
	if err != nil {
		t.Fatalf("FindString: %v", err)
	}
	if want := (Match{2, 2}); got != want {
		t.Errorf("FindString = %+v, want %+v", got, want)
	}
}
