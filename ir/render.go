package ir

import (
	"fmt"
	"strings"
)

// Write renders g as text, entry-first by DFS (spec.md §6.3): each
// block writes `label:`, then its statements two-space-indented and
// semicolon-terminated, then a `goto label1,label2;` trailer when it
// has successors. If g carries a FuncDecl, its declaration (§6.4) is
// written first.
func Write[L comparable](g *CFG[L]) string {
	var sb strings.Builder
	if g.decl != nil {
		fmt.Fprintf(&sb, "%s\n", g.decl)
	}

	visited := make(map[L]bool)
	var walk func(label L)
	walk = func(label L) {
		if visited[label] {
			return
		}
		visited[label] = true

		b := g.GetNode(label)
		fmt.Fprintf(&sb, "%v:\n", label)
		for _, s := range b.Statements() {
			fmt.Fprintf(&sb, "  %s;\n", s)
		}
		succs := b.Succs()
		if len(succs) > 0 {
			names := make([]string, len(succs))
			for i, s := range succs {
				names[i] = fmt.Sprintf("%v", s)
			}
			fmt.Fprintf(&sb, "  goto %s;\n", strings.Join(names, ","))
		}
		for _, s := range succs {
			walk(s)
		}
	}
	walk(g.entry)

	return sb.String()
}
