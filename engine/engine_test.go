package engine

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/Kris030/regex/automaton"
	"github.com/Kris030/regex/compiler"
)

func compile(t testing.TB, pattern string, mode compiler.Mode) *automaton.Graph {
	t.Helper()
	config := compiler.DefaultConfig()
	config.Mode = mode
	g, err := compiler.CompileWithConfig(pattern, config)
	if err != nil {
		t.Fatalf("CompileWithConfig(%q, %v) error: %v", pattern, mode, err)
	}
	return g
}

func TestRun(t *testing.T) {
	tests := []struct {
		pattern string
		mode    compiler.Mode
		subject string
		want    bool
	}{
		// Literals.
		{"ab", compiler.ModeCompat, "ab", true},
		{"ab", compiler.ModeCompat, "abx", true},
		{"ab", compiler.ModeCompat, "a", false},
		{"ab", compiler.ModeCompat, "ba", false},
		{"ab", compiler.ModeStandard, "ab", true},
		{"ab", compiler.ModeStandard, "abx", false},
		{"ab", compiler.ModeStandard, "", false},

		// Trailing plus.
		{"a+", compiler.ModeCompat, "ax", true},
		{"a+", compiler.ModeCompat, "ab", true},
		{"a+", compiler.ModeCompat, "aaab", true},
		{"a+", compiler.ModeCompat, "a", false},
		{"a+", compiler.ModeCompat, "", false},
		{"a+", compiler.ModeCompat, "b", true}, // [^a] exit taken first
		{"a+", compiler.ModeStandard, "a", true},
		{"a+", compiler.ModeStandard, "aa", true},
		{"a+", compiler.ModeStandard, "aaa", true},
		{"a+", compiler.ModeStandard, "", false},
		{"a+", compiler.ModeStandard, "ax", false},

		// Plus with a following literal.
		{"a+b", compiler.ModeCompat, "aaab", true},
		{"a+b", compiler.ModeCompat, "b", true}, // exit edge needs no 'a'
		{"a+b", compiler.ModeCompat, "ac", false},
		{"a+b", compiler.ModeStandard, "aaab", true},
		{"a+b", compiler.ModeStandard, "b", false},

		// The character after `+` is taken verbatim.
		{"a+b+", compiler.ModeCompat, "aab+", true},
		{"a+b+", compiler.ModeCompat, "aab", false},
		{"a++", compiler.ModeCompat, "aa+", true},
		{"((ab))", compiler.ModeCompat, "aba(", true},
		{"((ab))", compiler.ModeCompat, "abab", false},

		// The first listed transition wins: the self-loop shadows the exit.
		{"a+a", compiler.ModeCompat, "aa", false},
		{"a+a", compiler.ModeCompat, "aaa", false},

		// Quantified group.
		{"Hello(wo)+ World!", compiler.ModeCompat, "Hellowo World!", true},
		{"Hello(wo)+ World!", compiler.ModeCompat, "Hellowowowowo World!", true},
		{"Hello(wo)+ World!", compiler.ModeCompat, "Hello World!", false},
		{"Hello(wo)+ World!", compiler.ModeCompat, "Hellow World!", false},
		{"Hello(wo)+ World!", compiler.ModeStandard, "Hellowo World!", true},
		{"Hello(wo)+ World!", compiler.ModeStandard, "Hellowowowowo World!", true},
		{"Hello(wo)+ World!", compiler.ModeStandard, "Hello World!", false},
		{"Hello(wo)+ World!", compiler.ModeStandard, "Hellow World!", false},

		// Standard-only quantifiers.
		{"ab*c", compiler.ModeStandard, "ac", true},
		{"ab*c", compiler.ModeStandard, "abbbc", true},
		{"ab?c", compiler.ModeStandard, "abc", true},
		{"ab?c", compiler.ModeStandard, "abbc", false},
		{"(ab)*", compiler.ModeStandard, "", true},
		{"(ab)*", compiler.ModeStandard, "abab", true},
		{"(ab)*", compiler.ModeStandard, "aba", false},
		{`a\+`, compiler.ModeStandard, "a+", true},
		{`a\+`, compiler.ModeStandard, "aa", false},

		// Multi-byte characters.
		{"é+", compiler.ModeCompat, "ééx", true},
		{"日本", compiler.ModeStandard, "日本", true},
		{"日本", compiler.ModeStandard, "日", false},
	}

	for _, tt := range tests {
		t.Run(tt.mode.String()+"/"+tt.pattern+"/"+tt.subject, func(t *testing.T) {
			g := compile(t, tt.pattern, tt.mode)
			if got := Run(tt.subject, g); got != tt.want {
				t.Errorf("Run(%q) = %v, want %v\n%s", tt.subject, got, tt.want, g)
			}
		})
	}
}

func TestRun_EmptyGraph(t *testing.T) {
	g := compile(t, "", compiler.ModeCompat)
	for _, s := range []string{"", "a", "anything"} {
		if Run(s, g) {
			t.Errorf("empty pattern accepted %q", s)
		}
	}
}

func TestRun_NilGraph(t *testing.T) {
	if Run("a", nil) {
		t.Error("Run(nil graph) = true, want false")
	}
	if res := Exec("a", nil); res.Final != automaton.Failed || res.Steps != 0 {
		t.Errorf("Exec(nil graph) = %+v, want Failed with no steps", res)
	}
	if _, ok := MatchPrefix("a", nil); ok {
		t.Error("MatchPrefix(nil graph) ok = true, want false")
	}
}

func TestRun_FailedEdge(t *testing.T) {
	// x -> Failed is listed before [^y] -> Done, which also accepts x.
	b := automaton.NewBuilder()
	b.AddState(
		automaton.Transition{Matcher: automaton.Is('x'), Target: automaton.Failed},
		automaton.Transition{Matcher: automaton.IsNot('y'), Target: automaton.Done},
	)
	g, err := b.Build()
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}

	tests := []struct {
		subject  string
		matched  bool
		final    automaton.StateRef
		consumed int
		steps    int
	}{
		{"x", false, automaton.Failed, 0, 1},
		{"xz", false, automaton.Failed, 0, 1},
		{"z", true, automaton.Done, 1, 1},
		{"y", false, automaton.Failed, 0, 1},
		{"", false, automaton.Failed, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.subject, func(t *testing.T) {
			res := Exec(tt.subject, g)
			if res.Matched != tt.matched || res.Final != tt.final || res.Consumed != tt.consumed || res.Steps != tt.steps {
				t.Errorf("Exec(%q) = %+v, want {Matched:%v Final:%v Consumed:%d Steps:%d}",
					tt.subject, res, tt.matched, tt.final, tt.consumed, tt.steps)
			}
			if got := Run(tt.subject, g); got != tt.matched {
				t.Errorf("Run(%q) = %v, want %v", tt.subject, got, tt.matched)
			}
		})
	}

	if end, ok := MatchPrefix("x", g); ok {
		t.Errorf("MatchPrefix(%q) = (%d, true), want no match", "x", end)
	}
	if end, ok := MatchPrefix("zz", g); !ok || end != 1 {
		t.Errorf("MatchPrefix(%q) = (%d, %v), want (1, true)", "zz", end, ok)
	}
}

func TestExec(t *testing.T) {
	tests := []struct {
		name     string
		pattern  string
		mode     compiler.Mode
		subject  string
		final    automaton.StateRef
		consumed int
		steps    int
	}{
		{"compat done early", "ab", compiler.ModeCompat, "abcd", automaton.Done, 2, 2},
		{"compat exit char consumed", "a+", compiler.ModeCompat, "aax", automaton.Done, 3, 3},
		{"compat exhausted", "a+", compiler.ModeCompat, "aa", automaton.Failed, 2, 2},
		{"no transition", "ab", compiler.ModeCompat, "ax", automaton.Failed, 1, 2},
		{"standard accept", "a+", compiler.ModeStandard, "aaa", automaton.Index(1), 3, 3},
		{"standard trailing", "a+", compiler.ModeStandard, "aab", automaton.Failed, 2, 3},
		{"multibyte", "é+", compiler.ModeCompat, "éé!", automaton.Done, 5, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := compile(t, tt.pattern, tt.mode)
			res := Exec(tt.subject, g)
			if res.Final != tt.final {
				t.Errorf("Final = %v, want %v", res.Final, tt.final)
			}
			if res.Matched != !tt.final.IsFailed() {
				t.Errorf("Matched = %v with Final %v", res.Matched, res.Final)
			}
			if res.Consumed != tt.consumed {
				t.Errorf("Consumed = %d, want %d", res.Consumed, tt.consumed)
			}
			if res.Steps != tt.steps {
				t.Errorf("Steps = %d, want %d", res.Steps, tt.steps)
			}
		})
	}
}

func TestExec_StepsBounded(t *testing.T) {
	g := compile(t, "(ab)*(a+b)*c", compiler.ModeStandard)
	for _, n := range []int{0, 1, 10, 1000} {
		subject := strings.Repeat("ab", n) + "c"
		res := Exec(subject, g)
		if !res.Matched {
			t.Errorf("n=%d: not matched", n)
		}
		if limit := utf8.RuneCountInString(subject); res.Steps > limit {
			t.Errorf("n=%d: Steps = %d, exceeds %d characters", n, res.Steps, limit)
		}
	}
}

func TestMatchPrefix(t *testing.T) {
	tests := []struct {
		pattern string
		mode    compiler.Mode
		subject string
		end     int
		ok      bool
	}{
		{"ab", compiler.ModeCompat, "abab", 2, true},
		{"a+", compiler.ModeCompat, "aab", 3, true},
		{"a+", compiler.ModeCompat, "aa", -1, false},
		{"a+", compiler.ModeStandard, "aab", 2, true},
		{"a+", compiler.ModeStandard, "b", -1, false},
		{"(ab)*", compiler.ModeStandard, "ababa", 4, true},
		{"(ab)*", compiler.ModeStandard, "x", 0, true},
		{"ab?", compiler.ModeStandard, "ac", 1, true},
		{"", compiler.ModeCompat, "abc", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.mode.String()+"/"+tt.pattern+"/"+tt.subject, func(t *testing.T) {
			g := compile(t, tt.pattern, tt.mode)
			end, ok := MatchPrefix(tt.subject, g)
			if ok != tt.ok || (ok && end != tt.end) {
				t.Errorf("MatchPrefix(%q) = (%d, %v), want (%d, %v)", tt.subject, end, ok, tt.end, tt.ok)
			}
		})
	}
}

func TestRun_SelfLoopWithoutExit(t *testing.T) {
	b := automaton.NewBuilder()
	b.AddState(automaton.Transition{Matcher: automaton.Is('a'), Target: automaton.Index(0)})
	g, err := b.Build()
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	if Run("aaaa", g) {
		t.Error("looping graph without exit accepted")
	}
}

func BenchmarkRun(b *testing.B) {
	g := compile(b, "Hello(wo)+ World!", compiler.ModeStandard)
	subject := "Hello" + strings.Repeat("wo", 500) + " World!"
	b.SetBytes(int64(len(subject)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if !Run(subject, g) {
			b.Fatal("no match")
		}
	}
}
