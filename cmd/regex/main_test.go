package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Kris030/regex"
)

const testPatterns = `
pattern "hello" {
  expr = "hello"
}

pattern "ab" {
  expr = "(ab)+"
  mode = "standard"
}
`

func writePatterns(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "patterns.hcl")
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}

func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return -1
}

func TestRun(t *testing.T) {
	patterns := writePatterns(t, testPatterns)

	tests := []struct {
		name     string
		args     []string
		want     string
		wantCode int
	}{
		{
			name: "match",
			args: []string{"match", "ab", "ab", "abc"},
			want: "ab\ttrue\nabc\ttrue\n",
		},
		{
			name:     "match rejects",
			args:     []string{"match", "ab", "ab", "ax"},
			want:     "ab\ttrue\nax\tfalse\n",
			wantCode: 1,
		},
		{
			name: "match standard",
			args: []string{"match", "-mode", "standard", "(ab)*", "", "abab"},
			want: "\ttrue\nabab\ttrue\n",
		},
		{
			name: "match verbose",
			args: []string{"match", "-v", "ab", "ab"},
			want: "ab\ttrue\tfinal=Done consumed=2 steps=2\n",
		},
		{
			name: "match find",
			args: []string{"match", "-find", "ab", "xxab"},
			want: "xxab\t[2:4]\t\"ab\"\n",
		},
		{
			name:     "match find none",
			args:     []string{"match", "-find", "ab", "xx"},
			want:     "xx\tno match\n",
			wantCode: 1,
		},
		{
			name: "dot",
			args: []string{"dot", "ab"},
			want: `digraph G {s0[label="0"];s0 -> s1 [label="a"];s1[label="1"];s1 -> end [label="b"];}` + "\n",
		},
		{
			name: "set",
			args: []string{"set", "-file", patterns, "hello", "xxabab"},
			want: "hello\tmatches=hello\tleftmost=hello[0:5]\nxxabab\tmatches=\tleftmost=ab[2:6]\n",
		},
		{
			name: "help",
			args: []string{"help"},
		},
		{
			name: "command help",
			args: []string{"match", "-h"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out, errOut bytes.Buffer
			err := run(&out, &errOut, tt.args)
			if got := exitCode(err); got != tt.wantCode {
				t.Fatalf("run() exit code = %d, want %d (err = %v)", got, tt.wantCode, err)
			}
			if tt.want != "" && out.String() != tt.want {
				t.Errorf("run() output =\n%q\nwant\n%q", out.String(), tt.want)
			}
		})
	}
}

func TestRun_UsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no command", nil},
		{"unknown command", []string{"frobnicate"}},
		{"unknown flag", []string{"match", "-nope", "a", "a"}},
		{"missing subject", []string{"match", "a"}},
		{"bad mode", []string{"match", "-mode", "posix", "a", "a"}},
		{"bad log level", []string{"match", "-log-level", "loud", "a", "a"}},
		{"bad log format", []string{"match", "-log-format", "xml", "a", "a"}},
		{"bad max depth", []string{"match", "-max-depth", "1", "a", "a"}},
		{"compile error", []string{"match", "a*", "a"}},
		{"dot arity", []string{"dot"}},
		{"gen arity", []string{"gen"}},
		{"gen bad package", []string{"gen", "-pkg", "1x", "ab"}},
		{"set without file", []string{"set", "x"}},
		{"set missing file", []string{"set", "-file", "/nonexistent/patterns.hcl", "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out, errOut bytes.Buffer
			if got := exitCode(run(&out, &errOut, tt.args)); got != 2 {
				t.Errorf("run(%q) exit code = %d, want 2", tt.args, got)
			}
		})
	}
}

func TestRun_Gen(t *testing.T) {
	var out, errOut bytes.Buffer
	if err := run(&out, &errOut, []string{"gen", "-pkg", "m", "-func", "IsAB", "ab"}); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	src := out.String()
	for _, want := range []string{
		"// Code generated by regex gen. DO NOT EDIT.",
		"package m",
		"func IsAB(input string) bool {",
	} {
		if !strings.Contains(src, want) {
			t.Errorf("generated source missing %q:\n%s", want, src)
		}
	}
}

func TestRun_GenFromFile(t *testing.T) {
	patterns := writePatterns(t, testPatterns)
	output := filepath.Join(t.TempDir(), "matchers.go")

	var out, errOut bytes.Buffer
	if err := run(&out, &errOut, []string{"gen", "-file", patterns, "-o", output}); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("run() wrote %d bytes to stdout with -o set", out.Len())
	}

	src, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	for _, want := range []string{"package matchers", "func MatchHello(", "func MatchAb("} {
		if !strings.Contains(string(src), want) {
			t.Errorf("generated source missing %q:\n%s", want, src)
		}
	}
}

func TestRun_DebugLogging(t *testing.T) {
	var out, errOut bytes.Buffer
	args := []string{"match", "-log-level", "debug", "-log-format", "json", "a+b", "aab"}
	if err := run(&out, &errOut, args); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if !strings.Contains(errOut.String(), `"msg":"compiled pattern"`) {
		t.Errorf("log output missing compile record:\n%s", errOut.String())
	}
}

func TestParsePatternSet_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"syntax", `pattern "a" {`, "failed to parse"},
		{"missing expr", `pattern "a" {}`, "failed to decode"},
		{"empty", ``, "defines no patterns"},
		{"duplicate", "pattern \"a\" {\n  expr = \"a\"\n}\npattern \"a\" {\n  expr = \"b\"\n}\n", "duplicate pattern"},
		{"bad mode", "pattern \"a\" {\n  expr = \"a\"\n  mode = \"posix\"\n}\n", "unknown mode"},
		{"bad expr", "pattern \"a\" {\n  expr = \"a*\"\n}\n", `pattern "a"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parsePatternSet([]byte(tt.src), "test.hcl", regex.DefaultConfig())
			if err == nil {
				t.Fatal("parsePatternSet() error = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("parsePatternSet() error = %v, want it to contain %q", err, tt.want)
			}
		})
	}
}

func TestFuncName(t *testing.T) {
	tests := []struct {
		label string
		want  string
	}{
		{"hello", "MatchHello"},
		{"user-id", "MatchUserId"},
		{"snake_case.name", "MatchSnakeCaseName"},
		{"", "Match"},
	}

	for _, tt := range tests {
		if got := funcName(tt.label); got != tt.want {
			t.Errorf("funcName(%q) = %q, want %q", tt.label, got, tt.want)
		}
	}
}
