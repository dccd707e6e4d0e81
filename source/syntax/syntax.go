package syntax

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
)

// Documented represents named syntax node with the comment block ending on the line above it
type Documented struct {
	Node     *sitter.Node
	Comments []*sitter.Node
}

// Last returns the comment closest to the node or nil
func (d *Documented) Last() *sitter.Node {
	if len(d.Comments) == 0 {
		return nil
	}
	return d.Comments[len(d.Comments)-1]
}

// Children returns named non comment children of the parent with their leading comments.
// Comments starting on the line where the previous node ends are trailing and ignored.
func Children(parent *sitter.Node) []*Documented {
	var ret []*Documented
	var group []*sitter.Node
	lastRow := -1
	for i := 0; i < int(parent.NamedChildCount()); i++ {
		child := parent.NamedChild(i)
		row := int(child.StartPoint().Row)
		if child.Type() == "comment" {
			if row == lastRow {
				continue
			}
			if len(group) > 0 && int(group[len(group)-1].EndPoint().Row)+1 != row {
				group = nil
			}
			group = append(group, child)
			continue
		}
		item := &Documented{Node: child}
		if len(group) > 0 && int(group[len(group)-1].EndPoint().Row)+1 == row {
			item.Comments = group
		}
		group = nil
		lastRow = int(child.EndPoint().Row)
		ret = append(ret, item)
	}
	return ret
}

// Text joins node contents with new lines
func Text(nodes []*sitter.Node, src []byte) string {
	lines := make([]string, 0, len(nodes))
	for _, node := range nodes {
		lines = append(lines, node.Content(src))
	}
	return strings.Join(lines, "\n")
}

// Line returns 1-based line of the node start
func Line(node *sitter.Node) int {
	return int(node.StartPoint().Row) + 1
}

// HasChild returns true if the node has a direct child, named or anonymous, of the type
func HasChild(node *sitter.Node, childType string) bool {
	for i := 0; i < int(node.ChildCount()); i++ {
		if node.Child(i).Type() == childType {
			return true
		}
	}
	return false
}
