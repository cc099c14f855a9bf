package smtlib

// Rewrite guards the equivalence-check assertion with a precondition call.
// The first assertion whose body is (not (= (f args) (g args))), for two
// distinct symbols applied to one identical argument list, is the target;
// its body becomes (and (pre args) body) using the first precondition in
// document order. The input document is never mutated: the result shares
// untouched forms and carries a fresh form for the rewritten assertion.
// When no target assertion or no precondition exists, the document is
// returned unchanged with applied == false; neither case is an error.
func Rewrite(doc *Document, pres []Precondition) (*Document, bool) {
	if len(pres) == 0 {
		return doc, false
	}
	target := -1
	var args []*Node
	for i, form := range doc.Forms {
		if form.Kind != KindAssertion || len(form.Node.List) != 2 {
			continue
		}
		if a, ok := equivalenceArgs(form.Node.List[1]); ok {
			target, args = i, a
			break
		}
	}
	if target < 0 {
		return doc, false
	}

	body := doc.Forms[target].Node.List[1]
	guarded := &Node{List: []*Node{
		{Atom: "assert"},
		{List: []*Node{{Atom: "and"}, pres[0].call(args), body}},
	}}

	forms := make([]*Form, len(doc.Forms))
	copy(forms, doc.Forms)
	forms[target] = &Form{
		Kind: KindAssertion,
		Raw:  guarded.String(),
		Node: guarded,
	}
	return &Document{Forms: forms}, true
}

// equivalenceArgs matches a negated equality of two applications of
// distinct symbols over the same arguments, returning those arguments.
func equivalenceArgs(body *Node) ([]*Node, bool) {
	if body.Head() != "not" || len(body.List) != 2 {
		return nil, false
	}
	eq := body.List[1]
	if eq.Head() != "=" || len(eq.List) != 3 {
		return nil, false
	}
	lhs, rhs := eq.List[1], eq.List[2]
	// Zero-argument applications are bare symbols.
	if lhs.IsAtom() && rhs.IsAtom() {
		if lhs.Atom == rhs.Atom {
			return nil, false
		}
		return []*Node{}, true
	}
	if lhs.Head() == "" || rhs.Head() == "" || lhs.Head() == rhs.Head() {
		return nil, false
	}
	if len(lhs.List) != len(rhs.List) {
		return nil, false
	}
	for i := 1; i < len(lhs.List); i++ {
		if !nodesEqual(lhs.List[i], rhs.List[i]) {
			return nil, false
		}
	}
	return lhs.List[1:], true
}

// call renders the precondition applied to the assertion's own arguments.
// A nullary precondition is referenced as a bare symbol.
func (p Precondition) call(args []*Node) *Node {
	if len(p.Params) == 0 && len(args) == 0 {
		return &Node{Atom: p.Name}
	}
	list := make([]*Node, 0, len(args)+1)
	list = append(list, &Node{Atom: p.Name})
	list = append(list, args...)
	return &Node{List: list}
}

func nodesEqual(a, b *Node) bool {
	if a.Atom != b.Atom || len(a.List) != len(b.List) {
		return false
	}
	for i := range a.List {
		if !nodesEqual(a.List[i], b.List[i]) {
			return false
		}
	}
	return true
}
