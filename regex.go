// Package regex compiles small regular expressions into deterministic state
// graphs and runs subjects through them in linear time.
//
// The syntax has literal characters, parenthesized groups and the
// quantifiers `+`, `*` and `?`. Two compilation modes are provided:
//
//   - ModeCompat (default) keeps the legacy single-pass construction:
//     a group's quantifier binds to the character right after its `(`,
//     `+` uses the next pattern character as its exit edge, `*` and `?`
//     are rejected, and a match is reported as soon as the final edge is
//     taken, even with input left.
//   - ModeStandard compiles every quantifier with its usual meaning, on
//     whole groups, and requires the entire subject to match. Backslash
//     escapes a metacharacter.
//
// Basic usage:
//
//	re, err := regex.Compile("Hello(wo)+ World!")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(re.MatchString("Hellowowowowo World!")) // true
//
// Advanced usage:
//
//	config := regex.DefaultConfig()
//	config.Mode = regex.ModeStandard
//	re, err := regex.CompileWithConfig("(ab)*c?", config)
//
// Every run examines each character of the subject at most once. Compiled
// values are immutable and safe for concurrent use.
package regex

import (
	"unicode/utf8"

	"github.com/Kris030/regex/automaton"
	"github.com/Kris030/regex/compiler"
	"github.com/Kris030/regex/engine"
	"github.com/Kris030/regex/literal"
	"github.com/Kris030/regex/prefilter"
)

// Config controls compilation. See compiler.Config.
type Config = compiler.Config

// Mode selects how a pattern is translated into a state graph.
type Mode = compiler.Mode

const (
	// ModeCompat keeps the legacy single-pass construction.
	ModeCompat = compiler.ModeCompat

	// ModeStandard applies every quantifier to whole units and requires a
	// full match.
	ModeStandard = compiler.ModeStandard
)

// Regex represents a compiled regular expression.
//
// A Regex is safe to use concurrently from multiple goroutines.
//
// Example:
//
//	re := regex.MustCompile("ab+c")
//	if re.MatchString("abbbc") {
//	    println("matched!")
//	}
type Regex struct {
	graph     *automaton.Graph
	pattern   string
	mode      Mode
	prefix    literal.Literal
	prefilter prefilter.Prefilter
}

// Compile compiles a pattern in ModeCompat.
//
// Returns a *syntax.Error wrapping syntax.ErrMalformed or
// syntax.ErrUnsupported if the pattern cannot be compiled.
//
// Example:
//
//	re, err := regex.Compile("a+b")
//	if err != nil {
//	    log.Fatal(err)
//	}
func Compile(pattern string) (*Regex, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// MustCompile compiles a pattern and panics if it fails.
//
// This is useful for patterns known to be valid at compile time.
//
// Example:
//
//	var greeting = regex.MustCompile("Hello(wo)+ World!")
func MustCompile(pattern string) *Regex {
	re, err := Compile(pattern)
	if err != nil {
		panic("regex: Compile(`" + pattern + "`): " + err.Error())
	}
	return re
}

// CompileWithConfig compiles a pattern with custom configuration.
//
// Example:
//
//	config := regex.DefaultConfig()
//	config.Mode = regex.ModeStandard
//	config.MaxStates = 1000
//	re, err := regex.CompileWithConfig("(ab)*", config)
func CompileWithConfig(pattern string, config Config) (*Regex, error) {
	g, err := compiler.CompileWithConfig(pattern, config)
	if err != nil {
		return nil, err
	}
	return newRegex(pattern, config.Mode, g), nil
}

func newRegex(pattern string, mode Mode, g *automaton.Graph) *Regex {
	prefix := literal.Prefix(g, literal.DefaultMaxLen)
	return &Regex{
		graph:     g,
		pattern:   pattern,
		mode:      mode,
		prefix:    prefix,
		prefilter: prefilter.NewBuilder(literal.NewSeq(prefix)).Build(),
	}
}

// DefaultConfig returns the default configuration for compilation.
//
// Example:
//
//	config := regex.DefaultConfig()
//	config.Mode = regex.ModeStandard
//	re, _ := regex.CompileWithConfig("a*", config)
func DefaultConfig() Config {
	return compiler.DefaultConfig()
}

// QuoteMeta returns a ModeStandard pattern that matches the literal text s.
// ModeCompat has no escapes; there, only text without metacharacters can be
// matched literally.
//
// Example:
//
//	escaped := regex.QuoteMeta("1+1")
//	// escaped = `1\+1`
func QuoteMeta(s string) string {
	const special = `\()+*?`

	n := 0
	for i := 0; i < len(s); i++ {
		if isSpecial(s[i], special) {
			n++
		}
	}
	if n == 0 {
		return s
	}

	buf := make([]byte, len(s)+n)
	j := 0
	for i := 0; i < len(s); i++ {
		if isSpecial(s[i], special) {
			buf[j] = '\\'
			j++
		}
		buf[j] = s[i]
		j++
	}
	return string(buf)
}

// isSpecial returns true if c is in the special characters string.
func isSpecial(c byte, special string) bool {
	for i := 0; i < len(special); i++ {
		if c == special[i] {
			return true
		}
	}
	return false
}

// Match reports whether the pattern accepts b, starting at its first byte.
//
// In ModeCompat, input left over once the final edge was taken is ignored.
// In ModeStandard, the whole of b must match.
func (r *Regex) Match(b []byte) bool {
	return r.MatchString(string(b))
}

// MatchString reports whether the pattern accepts s, starting at its first
// character.
//
// Example:
//
//	re := regex.MustCompile("a+")
//	re.MatchString("aab") // true: the run ends on the first non-'a'
//	re.MatchString("aa")  // false: input ran out first
func (r *Regex) MatchString(s string) bool {
	return engine.Run(s, r.graph)
}

// Exec runs s through the pattern and returns the details of the run.
func (r *Regex) Exec(s string) engine.Result {
	return engine.Exec(s, r.graph)
}

// Find returns a slice holding the text of the leftmost match in b.
// Returns nil if no match is found.
func (r *Regex) Find(b []byte) []byte {
	loc := r.FindIndex(b)
	if loc == nil {
		return nil
	}
	return b[loc[0]:loc[1]:loc[1]]
}

// FindString returns the text of the leftmost match in s.
// Returns empty string if no match is found.
//
// Example:
//
//	re := regex.MustCompile("wo+ ")
//	println(re.FindString("Hello wooo World")) // "wooo "
func (r *Regex) FindString(s string) string {
	loc := r.FindStringIndex(s)
	if loc == nil {
		return ""
	}
	return s[loc[0]:loc[1]]
}

// FindIndex returns the location of the leftmost match in b as a
// two-element slice; the match is at b[loc[0]:loc[1]].
// Returns nil if no match is found.
func (r *Regex) FindIndex(b []byte) []int {
	start, end, ok := r.findAt(string(b), b, 0)
	if !ok {
		return nil
	}
	return []int{start, end}
}

// FindStringIndex returns the location of the leftmost match in s.
//
// A match may start at any character boundary. The leftmost start wins; at
// that start the match ends where the run takes the final edge or, failing
// that, at the longest accepted prefix.
//
// Example:
//
//	re := regex.MustCompile("ab")
//	loc := re.FindStringIndex("xxab")
//	println(loc[0], loc[1]) // 2, 4
func (r *Regex) FindStringIndex(s string) []int {
	start, end, ok := r.findAt(s, []byte(s), 0)
	if !ok {
		return nil
	}
	return []int{start, end}
}

// FindAllStringIndex returns the locations of all successive
// non-overlapping matches in s.
// If n > 0, it returns at most n matches. If n <= 0, it returns all matches.
func (r *Regex) FindAllStringIndex(s string, n int) [][]int {
	if n == 0 {
		return nil
	}

	b := []byte(s)
	var indices [][]int
	pos, prevEnd := 0, -1
	for pos <= len(s) {
		start, end, ok := r.findAt(s, b, pos)
		if !ok {
			break
		}

		if end > start {
			pos = end
		} else {
			// Empty match: step over one character to avoid looping.
			_, size := utf8.DecodeRuneInString(s[end:])
			pos = end + max(size, 1)
			if start == prevEnd {
				// An empty match right after the previous match is not reported.
				continue
			}
		}
		indices = append(indices, []int{start, end})
		prevEnd = end

		if n > 0 && len(indices) >= n {
			break
		}
	}
	return indices
}

// FindAllString returns all successive non-overlapping matches in s.
// If n > 0, it returns at most n matches. If n <= 0, it returns all matches.
//
// Example:
//
//	re := regex.MustCompile("ab")
//	matches := re.FindAllString("ab ab ab", -1)
//	// matches = ["ab", "ab", "ab"]
func (r *Regex) FindAllString(s string, n int) []string {
	indices := r.FindAllStringIndex(s, n)
	if indices == nil {
		return nil
	}

	result := make([]string, len(indices))
	for i, loc := range indices {
		result[i] = s[loc[0]:loc[1]]
	}
	return result
}

// findAt returns the leftmost match starting at or after at. s and b hold
// the same text; b feeds the prefilter.
func (r *Regex) findAt(s string, b []byte, at int) (start, end int, ok bool) {
	tracker := prefilter.NewTracker(r.prefilter)

	for pos := at; pos <= len(s); {
		if tracker.IsActive() {
			cand := tracker.Find(b, pos)
			if cand < 0 {
				// Every match starts with the prefix literal.
				return -1, -1, false
			}
			pos = cand
			if r.prefilter.IsComplete() {
				tracker.ConfirmMatch()
				return pos, pos + r.prefilter.LiteralLen(), true
			}
		}

		if n, ok := engine.MatchPrefix(s[pos:], r.graph); ok {
			if tracker != nil {
				tracker.ConfirmMatch()
			}
			return pos, pos + n, true
		}

		if pos == len(s) {
			break
		}
		_, size := utf8.DecodeRuneInString(s[pos:])
		pos += size
	}
	return -1, -1, false
}

// LiteralPrefix returns the literal text every match must begin with. The
// boolean is true if the literal alone decides a match.
//
// Example:
//
//	re := regex.MustCompile("Hello(wo)+ World!")
//	prefix, complete := re.LiteralPrefix()
//	// prefix = "Hellowo", complete = false
func (r *Regex) LiteralPrefix() (prefix string, complete bool) {
	return string(r.prefix.Bytes), r.prefix.Complete
}

// String returns the source text used to compile the regular expression.
func (r *Regex) String() string {
	return r.pattern
}

// Mode returns the mode the pattern was compiled in.
func (r *Regex) Mode() Mode {
	return r.mode
}

// Graph returns the compiled state graph. The graph is immutable.
func (r *Regex) Graph() *automaton.Graph {
	return r.graph
}

// ParseMode parses a mode name, "compat" or "standard".
func ParseMode(s string) (Mode, error) {
	return compiler.ParseMode(s)
}
