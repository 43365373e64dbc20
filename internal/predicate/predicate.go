// Copyright (c) 2026 Keymaster Team
// Passgen - Unicode password generator
// This source code is licensed under the MIT license found in the LICENSE file.

package predicate

import (
	"fmt"
	"strings"

	"github.com/toeirei/passgen/internal/ucd"
)

// Kind identifies a predicate node.
type Kind uint8

const (
	KindAtom Kind = iota
	KindAnd
	KindOr
	KindNot
)

func (k Kind) String() string {
	switch k {
	case KindAtom:
		return "atom"
	case KindAnd:
		return "and"
	case KindOr:
		return "or"
	case KindNot:
		return "not"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Predicate is a node of a filter expression tree. The set of
// implementations is closed to this package.
type Predicate interface {
	Kind() Kind
	String() string
	node()
}

// Subject is the character a predicate is evaluated against.
type Subject interface {
	Rune() rune
	Attributes() ucd.Attributes
	HasProperty(p ucd.Property) bool
}

// Atom tests a single attribute against a set of acceptable values.
// When include is false the test is inverted.
type Atom struct {
	values  Values
	include bool
}

// And matches when every child matches. An empty And matches everything.
type And struct {
	children []Predicate
}

// Or matches when any child matches. An empty Or matches nothing.
type Or struct {
	children []Predicate
}

// Not inverts its child.
type Not struct {
	child Predicate
}

func (*Atom) Kind() Kind { return KindAtom }
func (*And) Kind() Kind  { return KindAnd }
func (*Or) Kind() Kind   { return KindOr }
func (*Not) Kind() Kind  { return KindNot }

func (*Atom) node() {}
func (*And) node()  {}
func (*Or) node()   {}
func (*Not) node()  {}

// Is returns an atom matching characters whose attribute is in v.
func Is(v Values) *Atom {
	if v == nil {
		panic("predicate: Is called with nil values")
	}
	return &Atom{values: v, include: true}
}

// IsNot returns an atom matching characters whose attribute is not in v.
func IsNot(v Values) *Atom {
	if v == nil {
		panic("predicate: IsNot called with nil values")
	}
	return &Atom{values: v, include: false}
}

// All returns the conjunction of children.
func All(children ...Predicate) *And {
	return &And{children: copyChildren("All", children)}
}

// Any returns the disjunction of children.
func Any(children ...Predicate) *Or {
	return &Or{children: copyChildren("Any", children)}
}

// Negate returns the negation of child.
func Negate(child Predicate) *Not {
	if isNil(child) {
		panic("predicate: Negate called with nil child")
	}
	return &Not{child: child}
}

func copyChildren(op string, children []Predicate) []Predicate {
	out := make([]Predicate, len(children))
	for i, c := range children {
		if isNil(c) {
			panic(fmt.Sprintf("predicate: %s child %d is nil", op, i))
		}
		out[i] = c
	}
	return out
}

// isNil catches both untyped nil and typed nil node pointers.
func isNil(p Predicate) bool {
	switch n := p.(type) {
	case nil:
		return true
	case *Atom:
		return n == nil
	case *And:
		return n == nil
	case *Or:
		return n == nil
	case *Not:
		return n == nil
	}
	return false
}

// Values returns the atom's acceptable value set.
func (a *Atom) Values() Values { return a.values }

// Include reports the atom's polarity.
func (a *Atom) Include() bool { return a.include }

// Children returns a copy of the conjunction's children.
func (n *And) Children() []Predicate { return append([]Predicate(nil), n.children...) }

// Children returns a copy of the disjunction's children.
func (n *Or) Children() []Predicate { return append([]Predicate(nil), n.children...) }

// Child returns the negated predicate.
func (n *Not) Child() Predicate { return n.child }

// Eval evaluates p against s.
func Eval(p Predicate, s Subject) bool {
	switch n := p.(type) {
	case *Atom:
		return n.values.match(s) == n.include
	case *And:
		for _, c := range n.children {
			if !Eval(c, s) {
				return false
			}
		}
		return true
	case *Or:
		for _, c := range n.children {
			if Eval(c, s) {
				return true
			}
		}
		return false
	case *Not:
		return !Eval(n.child, s)
	}
	panic(fmt.Sprintf("predicate: unknown node %T", p))
}

// Walk calls fn for every node of p in depth-first pre-order. Returning
// false from fn skips the node's children.
func Walk(p Predicate, fn func(Predicate) bool) {
	if !fn(p) {
		return
	}
	switch n := p.(type) {
	case *And:
		for _, c := range n.children {
			Walk(c, fn)
		}
	case *Or:
		for _, c := range n.children {
			Walk(c, fn)
		}
	case *Not:
		Walk(n.child, fn)
	}
}

// Validate reports nil nodes and empty value sets anywhere in p.
func Validate(p Predicate) error {
	var err error
	if isNil(p) {
		return fmt.Errorf("%w: nil predicate", ErrInvalid)
	}
	Walk(p, func(n Predicate) bool {
		if err != nil {
			return false
		}
		if isNil(n) {
			err = fmt.Errorf("%w: nil child", ErrInvalid)
			return false
		}
		if a, ok := n.(*Atom); ok {
			if a.values == nil || a.values.len() == 0 {
				err = fmt.Errorf("%w: empty value set in %s", ErrInvalid, a)
			}
		}
		return true
	})
	return err
}

func (a *Atom) String() string {
	return a.values.describe(a.include)
}

func (n *And) String() string { return "all(" + join(n.children) + ")" }
func (n *Or) String() string  { return "any(" + join(n.children) + ")" }
func (n *Not) String() string { return "not(" + n.child.String() + ")" }

func join(children []Predicate) string {
	parts := make([]string, len(children))
	for i, c := range children {
		parts[i] = c.String()
	}
	return strings.Join(parts, ", ")
}
