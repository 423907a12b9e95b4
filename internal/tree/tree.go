// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package tree holds constituency parse trees in Penn Treebank bracketed form.
// Nodes are shared by pointer: a Mention keeps a pointer into its sentence
// tree, and containment checks compare node identity, not structure.
package tree

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"
)

// Tree is a labelled constituency node. Leaves are nodes with a Word and no
// children; a preterminal is a node whose only child is a leaf.
type Tree struct {
	label    string
	word     string
	children []*Tree
}

// New builds an interior node. It is mostly used by tests and backends that
// assemble trees programmatically.
func New(label string, children ...*Tree) *Tree {
	return &Tree{label: label, children: children}
}

// Leaf builds a preterminal node tagging a single word.
func Leaf(tag, word string) *Tree {
	return &Tree{label: tag, children: []*Tree{{word: word}}}
}

// Label returns the syntactic category of the node, or "" for a leaf.
func (t *Tree) Label() string { return t.label }

// Children returns the direct children of the node.
func (t *Tree) Children() []*Tree { return t.children }

// IsLeaf reports whether the node is a token.
func (t *Tree) IsLeaf() bool { return len(t.children) == 0 && t.label == "" }

// IsPreterminal reports whether the node is a POS tag over a single token.
func (t *Tree) IsPreterminal() bool {
	return len(t.children) == 1 && t.children[0].IsLeaf()
}

// Subtrees returns the node followed by every labelled descendant in
// pre-order. Leaves are not included.
func (t *Tree) Subtrees() []*Tree {
	var out []*Tree
	var walk func(n *Tree)
	walk = func(n *Tree) {
		if n.IsLeaf() {
			return
		}
		out = append(out, n)
		for _, c := range n.children {
			walk(c)
		}
	}
	walk(t)
	return out
}

// Leaves returns the tokens under the node, left to right.
func (t *Tree) Leaves() []string {
	var out []string
	var walk func(n *Tree)
	walk = func(n *Tree) {
		if n.IsLeaf() {
			out = append(out, n.word)
			return
		}
		for _, c := range n.children {
			walk(c)
		}
	}
	walk(t)
	return out
}

// Tagged is a token with its preterminal label.
type Tagged struct {
	Word string
	Tag  string
}

// Preterminals returns every (word, tag) pair under the node, left to right.
func (t *Tree) Preterminals() []Tagged {
	var out []Tagged
	for _, n := range t.Subtrees() {
		if n.IsPreterminal() {
			out = append(out, Tagged{Word: n.children[0].word, Tag: n.label})
		}
	}
	return out
}

// Contains reports whether node is t itself or one of its descendants.
func (t *Tree) Contains(node *Tree) bool {
	if t == node {
		return true
	}
	for _, c := range t.children {
		if c.Contains(node) {
			return true
		}
	}
	return false
}

// String renders the tree back into single-line bracketed form.
func (t *Tree) String() string {
	var b strings.Builder
	t.write(&b)
	return b.String()
}

func (t *Tree) write(b *strings.Builder) {
	if t.IsLeaf() {
		b.WriteString(t.word)
		return
	}
	b.WriteByte('(')
	b.WriteString(t.label)
	for _, c := range t.children {
		b.WriteByte(' ')
		c.write(b)
	}
	b.WriteByte(')')
}

// Parse reads exactly one bracketed tree from s.
func Parse(s string) (*Tree, error) {
	p := &reader{toks: tokenize(s)}
	if len(p.toks) == 0 {
		return nil, fmt.Errorf("empty tree")
	}
	t, err := p.node()
	if err != nil {
		return nil, err
	}
	if p.pos != len(p.toks) {
		return nil, fmt.Errorf("unexpected %q after tree", p.toks[p.pos])
	}
	return t, nil
}

// ParseAll reads consecutive bracketed trees from r. Trees may span lines.
func ParseAll(r io.Reader) ([]*Tree, error) {
	var toks []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for sc.Scan() {
		toks = append(toks, tokenize(sc.Text())...)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading trees: %w", err)
	}

	p := &reader{toks: toks}
	var trees []*Tree
	for p.pos < len(p.toks) {
		t, err := p.node()
		if err != nil {
			return trees, fmt.Errorf("tree %d: %w", len(trees)+1, err)
		}
		trees = append(trees, t)
	}
	return trees, nil
}

type reader struct {
	toks []string
	pos  int
}

func (p *reader) node() (*Tree, error) {
	if p.pos >= len(p.toks) || p.toks[p.pos] != "(" {
		return nil, fmt.Errorf("expected ( at token %d", p.pos)
	}
	p.pos++

	t := &Tree{}
	if p.pos < len(p.toks) && p.toks[p.pos] != "(" && p.toks[p.pos] != ")" {
		t.label = p.toks[p.pos]
		p.pos++
	}

	for {
		if p.pos >= len(p.toks) {
			return nil, fmt.Errorf("unbalanced parentheses in %s", t.label)
		}
		switch p.toks[p.pos] {
		case ")":
			p.pos++
			// Treebank files wrap sentences in an unlabelled root: (  (S ...) ).
			if t.label == "" && len(t.children) == 1 {
				return t.children[0], nil
			}
			if t.label == "" {
				t.label = "ROOT"
			}
			if len(t.children) == 0 {
				return nil, fmt.Errorf("node %s has no children", t.label)
			}
			return t, nil
		case "(":
			c, err := p.node()
			if err != nil {
				return nil, err
			}
			t.children = append(t.children, c)
		default:
			t.children = append(t.children, &Tree{word: p.toks[p.pos]})
			p.pos++
		}
	}
}

func tokenize(s string) []string {
	var toks []string
	var cur strings.Builder
	flush := func() {
		if cur.Len() > 0 {
			toks = append(toks, cur.String())
			cur.Reset()
		}
	}
	for _, r := range s {
		switch {
		case r == '(' || r == ')':
			flush()
			toks = append(toks, string(r))
		case unicode.IsSpace(r):
			flush()
		default:
			cur.WriteRune(r)
		}
	}
	flush()
	return toks
}
