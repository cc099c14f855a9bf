package smtlib

import (
	"fmt"
	"strings"
)

// FormKind classifies a top-level form by its leading keyword.
type FormKind int

const (
	KindDeclaration FormKind = iota
	KindPrecondition
	KindDefinition
	KindAssertion
	KindCommand
)

// PreconditionSuffix marks define-fun names that encode a precondition
// predicate in the transpiler's symbolic export.
const PreconditionSuffix = "-pre"

// Node is a single S-expression: either an atom or a list, never both.
type Node struct {
	Atom string
	List []*Node
}

func (n *Node) IsAtom() bool {
	return len(n.List) == 0 && n.Atom != ""
}

// Head returns the leading atom of a list form, or "" if there is none.
func (n *Node) Head() string {
	if len(n.List) == 0 || !n.List[0].IsAtom() {
		return ""
	}
	return n.List[0].Atom
}

func (n *Node) String() string {
	if n.IsAtom() {
		return n.Atom
	}
	var sb strings.Builder
	sb.WriteByte('(')
	for i, child := range n.List {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(child.String())
	}
	sb.WriteByte(')')
	return sb.String()
}

// Form is one top-level form of the document. Forms are immutable once
// parsed; a rewrite produces a new Form instead of mutating one.
type Form struct {
	Kind FormKind
	Raw  string
	Node *Node
}

// Document is an ordered sequence of top-level forms. Order is significant:
// declarations precede their uses and serialization preserves it.
type Document struct {
	Forms []*Form
}

// Serialize renders the document, one form per line, each form using its
// original text.
func (d *Document) Serialize() []byte {
	var sb strings.Builder
	for _, form := range d.Forms {
		sb.WriteString(form.Raw)
		sb.WriteByte('\n')
	}
	return []byte(sb.String())
}

// ParseError reports malformed SMT-LIB input.
type ParseError struct {
	Offset int
	Msg    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("smtlib parse: %s (offset %d)", e.Msg, e.Offset)
}
