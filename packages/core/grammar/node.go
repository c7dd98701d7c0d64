package grammar

import (
	"fmt"
	"strings"
)

// Position is a location in the matched input. Offset is a byte offset,
// Line and Column are 1-based.
type Position struct {
	Offset int
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Node is one node of a parse tree. Text is the exact substring of the
// input matched by Rule.
type Node struct {
	Rule     Rule
	Text     string
	Pos      Position
	Children []*Node
}

// End returns the byte offset just past the node's text.
func (n *Node) End() int {
	return n.Pos.Offset + len(n.Text)
}

// Child returns the first child produced by rule, or nil.
func (n *Node) Child(rule Rule) *Node {
	for _, c := range n.Children {
		if c.Rule == rule {
			return c
		}
	}
	return nil
}

// Walk visits n and its descendants depth first. Returning false from fn
// skips the children of the visited node.
func (n *Node) Walk(fn func(*Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

// String renders the tree one node per line, indented by depth.
func (n *Node) String() string {
	var sb strings.Builder
	n.write(&sb, 0)
	return sb.String()
}

func (n *Node) write(sb *strings.Builder, depth int) {
	fmt.Fprintf(sb, "%s%s %s %q\n", strings.Repeat("  ", depth), n.Rule, n.Pos, n.Text)
	for _, c := range n.Children {
		c.write(sb, depth+1)
	}
}
