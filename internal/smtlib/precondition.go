package smtlib

// Param is one typed parameter of a precondition predicate.
type Param struct {
	Name string
	Sort string
}

// Precondition is an extracted precondition predicate: a Boolean
// define-fun whose name carries PreconditionSuffix. Parameter order
// matches the textual declaration order, which the rewriter relies on
// when synthesizing a call.
type Precondition struct {
	Name   string
	Params []Param
}

// Preconditions extracts every precondition definition in document order.
// A document without preconditions yields an empty slice; that is a valid
// state, not an error.
func Preconditions(doc *Document) []Precondition {
	var result []Precondition
	for _, form := range doc.Forms {
		if form.Kind != KindPrecondition {
			continue
		}
		pre, ok := parsePrecondition(form.Node)
		if ok {
			result = append(result, pre)
		}
	}
	return result
}

// parsePrecondition pulls name and parameter list out of
// (define-fun name-pre ((p Sort) ...) Bool body).
func parsePrecondition(node *Node) (Precondition, bool) {
	if len(node.List) < 4 || !node.List[1].IsAtom() {
		return Precondition{}, false
	}
	pre := Precondition{Name: node.List[1].Atom}
	params := node.List[2]
	if params.IsAtom() {
		return Precondition{}, false
	}
	for _, pair := range params.List {
		if len(pair.List) != 2 || !pair.List[0].IsAtom() {
			return Precondition{}, false
		}
		pre.Params = append(pre.Params, Param{
			Name: pair.List[0].Atom,
			Sort: pair.List[1].String(),
		})
	}
	return pre, true
}
