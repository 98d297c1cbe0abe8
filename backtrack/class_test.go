package backtrack

import "testing"

func foldRun(fold bool) *Run {
	return NewRun(Params{Limits: DefaultLimits(), CaseInsensitive: fold}, nil)
}

// TestInClass covers membership, ranges, negation and ordering.
func TestInClass(t *testing.T) {
	tests := []struct {
		name string
		c    byte
		cls  string
		fold bool
		want bool
	}{
		{"single member", 'b', "abc", false, true},
		{"single member miss", 'x', "abc", false, false},
		{"empty body", 'a', "", false, false},
		{"range low", '0', "0-9", false, true},
		{"range high", '9', "0-9", false, true},
		{"range inside", '5', "0-9", false, true},
		{"range outside", 'a', "0-9", false, false},
		{"multi range", 'G', "a-zA-Z0-9", false, true},
		{"multi range digit", '7', "a-zA-Z0-9", false, true},
		{"multi range miss", '_', "a-zA-Z0-9", false, false},
		{"negated member", 'a', "^abc", false, false},
		{"negated miss", 'x', "^abc", false, true},
		{"negated range", '5', "^0-9", false, false},
		{"negated empty matches all", 'q', "^", false, true},
		{"dash as last member", '-', "a-", false, true},
		{"dash as first member", '-', "-z", false, true},
		{"fold member", 'B', "abc", true, true},
		{"fold range", 'C', "a-z", true, true},
		{"fold range endpoints", 'q', "A-Z", true, true},
		{"fold off", 'B', "abc", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := foldRun(tt.fold)
			if got := r.inClass(tt.c, tt.cls); got != tt.want {
				t.Errorf("inClass(%q, %q, fold=%v) = %v, want %v",
					tt.c, tt.cls, tt.fold, got, tt.want)
			}
		})
	}
}

// TestInClassFirstHitWins verifies members are evaluated left to right.
func TestInClassFirstHitWins(t *testing.T) {
	r := foldRun(false)
	// 'b' hits the first member; the malformed-looking tail is never
	// reached and cannot change the verdict.
	if !r.inClass('b', "b-") {
		t.Error("first member hit not honored")
	}
}
