// Package dot writes an automaton.Graph in Graphviz DOT format.
//
// Nodes are named sN after their index and labeled with it. Reaching Done
// is drawn as an edge to a node named end. Edges to Failed are omitted.
// Accepting states are drawn as double circles.
package dot

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/Kris030/regex/automaton"
)

var labelEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`)

// Write writes g to w as a single-line digraph named G.
func Write(w io.Writer, g *automaton.Graph) error {
	bw := bufio.NewWriter(w)

	bw.WriteString("digraph G {")
	for i := 0; i < g.Len(); i++ {
		s := g.State(i)
		if s.IsAccept() {
			fmt.Fprintf(bw, "s%d[label=\"%d\",shape=doublecircle];", i, i)
		} else {
			fmt.Fprintf(bw, "s%d[label=\"%d\"];", i, i)
		}

		for _, t := range s.Transitions() {
			label := labelEscaper.Replace(t.Matcher.String())
			switch t.Target.Kind() {
			case automaton.RefIndex:
				j, _ := t.Target.Index()
				fmt.Fprintf(bw, "s%d -> s%d [label=\"%s\"];", i, j, label)
			case automaton.RefDone:
				fmt.Fprintf(bw, "s%d -> end [label=\"%s\"];", i, label)
			}
		}
	}
	bw.WriteString("}")

	// bufio.Writer keeps the first write error and returns it here.
	return bw.Flush()
}

// String returns the DOT text for g.
func String(g *automaton.Graph) string {
	var sb strings.Builder
	_ = Write(&sb, g)
	return sb.String()
}
