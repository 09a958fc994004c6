// Package treeview prints the structure of a markup tree, one line per
// node, for inspecting what a document compiles to.
package treeview

import (
	"encoding/json"
	"io"
	"unicode/utf8"

	"github.com/pterm/pterm"
	"github.com/rasviitanen/svgmacro/pkg/errors"
	"github.com/rasviitanen/svgmacro/pkg/markup"
)

// MaxLabel is the number of runes shown for a node before it is cut.
const MaxLabel = 72

// Tree returns the pterm tree of nodes. The root has no text; each node
// becomes a child labeled with markup.Describe. Escape nodes are leaves
// since their output is only known when they run.
func Tree(nodes []markup.Node) pterm.TreeNode {
	return pterm.TreeNode{Children: children(nodes)}
}

func children(nodes []markup.Node) []pterm.TreeNode {
	var out []pterm.TreeNode
	for _, n := range nodes {
		if empty(n) {
			continue
		}
		tn := pterm.TreeNode{Text: truncate(markup.Describe(n))}
		if el, ok := n.(*markup.Element); ok && !el.SelfClosing {
			tn.Children = children(el.Children)
		}
		out = append(out, tn)
	}
	return out
}

func empty(n markup.Node) bool {
	el, ok := n.(*markup.Element)
	return n == nil || (ok && el == nil)
}

func truncate(s string) string {
	if utf8.RuneCountInString(s) <= MaxLabel {
		return s
	}
	r := []rune(s)
	return string(r[:MaxLabel-1]) + "…"
}

// Render writes the tree of nodes to w.
func Render(w io.Writer, nodes []markup.Node) error {
	s, err := pterm.DefaultTree.WithRoot(Tree(nodes)).Srender()
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to render tree")
	}
	if _, err := io.WriteString(w, s); err != nil {
		return errors.Wrap(err, errors.ErrSinkWrite, "failed to write tree")
	}
	return nil
}

// Entry is the JSON form of a tree node
type Entry struct {
	Label    string  `json:"label"`
	Children []Entry `json:"children,omitempty"`
}

// Entries converts nodes to JSON entries. Labels are not truncated.
func Entries(nodes []markup.Node) []Entry {
	out := []Entry{}
	for _, n := range nodes {
		if empty(n) {
			continue
		}
		e := Entry{Label: markup.Describe(n)}
		if el, ok := n.(*markup.Element); ok && !el.SelfClosing && len(el.Children) > 0 {
			e.Children = Entries(el.Children)
		}
		out = append(out, e)
	}
	return out
}

// JSON writes the entries of nodes to w as indented JSON.
func JSON(w io.Writer, nodes []markup.Node) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(Entries(nodes)); err != nil {
		return errors.Wrap(err, errors.ErrSinkWrite, "failed to write tree")
	}
	return nil
}
