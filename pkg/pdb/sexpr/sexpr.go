// Package sexpr is a small streaming S-expression reader for design files.
// Quoted strings and bare words both come back as atoms; callers decide how
// to interpret them.
package sexpr

import (
	"io"
	"strings"
)

// Node is an S-expression: either an Atom or a *List.
type Node interface {
	IsAtom() bool
	String() string
}

// Atom is a bare word, number, or quoted string.
type Atom string

func (a Atom) IsAtom() bool   { return true }
func (a Atom) String() string { return string(a) }

// List is a parenthesised sequence of nodes.
type List struct {
	Items []Node
	Line  int // line of the opening parenthesis
}

func (l *List) IsAtom() bool { return false }

func (l *List) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, item := range l.Items {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(item.String())
	}
	b.WriteByte(')')
	return b.String()
}

// Len returns the number of items.
func (l *List) Len() int {
	return len(l.Items)
}

// Get returns the item at index, or nil when out of range.
func (l *List) Get(index int) Node {
	if index < 0 || index >= len(l.Items) {
		return nil
	}
	return l.Items[index]
}

// Key returns the leading atom of the list, or "" if it has none.
func (l *List) Key() string {
	if len(l.Items) == 0 {
		return ""
	}
	if a, ok := l.Items[0].(Atom); ok {
		return string(a)
	}
	return ""
}

// Find returns the first child list whose key matches.
func (l *List) Find(key string) (*List, bool) {
	for _, item := range l.Items {
		if sub, ok := item.(*List); ok && sub.Key() == key {
			return sub, true
		}
	}
	return nil, false
}

// FindAll returns every child list whose key matches, in order.
func (l *List) FindAll(key string) []*List {
	var out []*List
	for _, item := range l.Items {
		if sub, ok := item.(*List); ok && sub.Key() == key {
			out = append(out, sub)
		}
	}
	return out
}

// Parse reads all top-level expressions from r.
func Parse(r io.Reader) ([]Node, error) {
	return NewParser(r).ParseAll()
}

// ParseString reads all top-level expressions from s.
func ParseString(s string) ([]Node, error) {
	return Parse(strings.NewReader(s))
}
