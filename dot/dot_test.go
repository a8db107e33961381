package dot

import (
	"errors"
	"testing"

	"github.com/Kris030/regex/automaton"
	"github.com/Kris030/regex/compiler"
)

func TestWrite(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		mode    compiler.Mode
		want    string
	}{
		{
			name:    "empty",
			pattern: "",
			mode:    compiler.ModeCompat,
			want:    `digraph G {}`,
		},
		{
			name:    "literal",
			pattern: "ab",
			mode:    compiler.ModeCompat,
			want:    `digraph G {s0[label="0"];s0 -> s1 [label="a"];s1[label="1"];s1 -> end [label="b"];}`,
		},
		{
			name:    "plus",
			pattern: "a+",
			mode:    compiler.ModeCompat,
			want:    `digraph G {s0[label="0"];s0 -> s0 [label="a"];s0 -> end [label="[^a]"];}`,
		},
		{
			name:    "accepting",
			pattern: "a+",
			mode:    compiler.ModeStandard,
			want:    `digraph G {s0[label="0"];s0 -> s1 [label="a"];s1[label="1",shape=doublecircle];s1 -> s1 [label="a"];}`,
		},
		{
			name:    "escaped label",
			pattern: `\"`,
			mode:    compiler.ModeStandard,
			want:    `digraph G {s0[label="0"];s0 -> s1 [label="\""];s1[label="1",shape=doublecircle];}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := compiler.DefaultConfig()
			config.Mode = tt.mode
			g, err := compiler.CompileWithConfig(tt.pattern, config)
			if err != nil {
				t.Fatalf("CompileWithConfig error: %v", err)
			}
			if got := String(g); got != tt.want {
				t.Errorf("Write() =\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}

func TestWrite_OmitsFailed(t *testing.T) {
	b := automaton.NewBuilder()
	b.AddState(
		automaton.Transition{Matcher: automaton.Is('x'), Target: automaton.Failed},
		automaton.Transition{Matcher: automaton.Is('y'), Target: automaton.Done},
	)
	g, err := b.Build()
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	want := `digraph G {s0[label="0"];s0 -> end [label="y"];}`
	if got := String(g); got != want {
		t.Errorf("Write() = %s, want %s", got, want)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWrite_Error(t *testing.T) {
	g, err := compiler.Compile("Hello(wo)+ World!")
	if err != nil {
		t.Fatal(err)
	}
	if err := Write(failingWriter{}, g); err == nil {
		t.Error("Write to failing writer returned nil")
	}
}
