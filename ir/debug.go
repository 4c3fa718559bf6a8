package ir

import "fmt"

// DebugInfo carries the source location a front-end attributed to a
// statement. It is present only for the statement kinds spec.md §3
// names (bin_op, assert, cast, pointer load/store, pointer assert,
// boolean bin-op and assert) — carried as optional data, never
// compared or used as a map key (see DESIGN.md's Open Question note
// on the original's dubious debug_info ordering, which does not arise
// here because this layer never needs one).
type DebugInfo struct {
	File   string
	Line   int
	Column int
}

func (d DebugInfo) String() string {
	return fmt.Sprintf("%s:%d:%d", d.File, d.Line, d.Column)
}
