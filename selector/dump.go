package selector

import (
	"fmt"

	"github.com/xlab/treeprint"
)

// Dump returns a tree view of a selector, one line per simple selector and
// one branch per combinator. It is intended for debugging.
func Dump(sel Selector) string {
	tree := treeprint.New()
	dump(tree, sel)
	return tree.String()
}

func dump(tree treeprint.Tree, sel Selector) {
	switch s := sel.(type) {
	case *Combined:
		if s == nil {
			tree.AddNode("<nil>")
			return
		}
		branch := tree.AddMetaBranch("combine", fmt.Sprintf("%q", string(s.Combinator)))
		dump(branch, s.Left)
		dump(branch, s.Right)
	case nil:
		tree.AddNode("<nil>")
	default:
		if err := s.Err(); err != nil {
			tree.AddMetaNode("error", s.Stringify())
			return
		}
		tree.AddNode(s.Stringify())
	}
}
