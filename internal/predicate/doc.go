// Copyright (c) 2026 Keymaster Team
// Passgen - Unicode password generator
// This source code is licensed under the MIT license found in the LICENSE file.

// Package predicate implements boolean filter expressions over Unicode
// character attributes.
//
// A Predicate is one of four node kinds: *Atom, *And, *Or and *Not. Trees
// are assembled bottom-up through constructors that copy their children,
// so a tree can never refer back to itself. Eval walks a tree against a
// Subject and always returns a definite result.
//
// Spec is the declarative form used by configuration files; Compile turns
// it into a Predicate.
package predicate
