package smtlib

import "strings"

// parser scans raw SMT-LIB text and yields top-level forms. A balanced
// parenthesis reader replaces line-oriented matching, which breaks on
// multi-line forms and on parentheses inside string literals.
type parser struct {
	src string
	pos int
}

// Parse reads raw SMT-LIB text into a Document.
func Parse(src string) (*Document, error) {
	p := &parser{src: src}
	doc := &Document{}
	for {
		p.skipTrivia()
		if p.pos >= len(p.src) {
			break
		}
		if p.src[p.pos] != '(' {
			return nil, &ParseError{Offset: p.pos, Msg: "expected '(' at top level"}
		}
		start := p.pos
		node, err := p.readList()
		if err != nil {
			return nil, err
		}
		if len(node.List) == 0 {
			return nil, &ParseError{Offset: start, Msg: "empty top-level form"}
		}
		doc.Forms = append(doc.Forms, &Form{
			Kind: classify(node),
			Raw:  p.src[start:p.pos],
			Node: node,
		})
	}
	return doc, nil
}

// skipTrivia advances past whitespace and ';' line comments.
func (p *parser) skipTrivia() {
	for p.pos < len(p.src) {
		switch c := p.src[p.pos]; {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			p.pos++
		case c == ';':
			for p.pos < len(p.src) && p.src[p.pos] != '\n' {
				p.pos++
			}
		default:
			return
		}
	}
}

func (p *parser) readNode() (*Node, error) {
	switch p.src[p.pos] {
	case '(':
		return p.readList()
	case ')':
		return nil, &ParseError{Offset: p.pos, Msg: "unexpected ')'"}
	case '"':
		return p.readDelimited('"')
	case '|':
		return p.readDelimited('|')
	default:
		return p.readAtom(), nil
	}
}

func (p *parser) readList() (*Node, error) {
	open := p.pos
	p.pos++ // consume '('
	node := &Node{}
	for {
		p.skipTrivia()
		if p.pos >= len(p.src) {
			return nil, &ParseError{Offset: open, Msg: "unbalanced parentheses"}
		}
		if p.src[p.pos] == ')' {
			p.pos++
			return node, nil
		}
		child, err := p.readNode()
		if err != nil {
			return nil, err
		}
		node.List = append(node.List, child)
	}
}

// readDelimited reads a string literal or quoted symbol, delimiter
// included in the atom so the raw text round-trips.
func (p *parser) readDelimited(delim byte) (*Node, error) {
	start := p.pos
	p.pos++
	for p.pos < len(p.src) {
		if p.src[p.pos] == delim {
			// "" escapes a quote inside string literals
			if delim == '"' && p.pos+1 < len(p.src) && p.src[p.pos+1] == '"' {
				p.pos += 2
				continue
			}
			p.pos++
			return &Node{Atom: p.src[start:p.pos]}, nil
		}
		p.pos++
	}
	return nil, &ParseError{Offset: start, Msg: "unterminated literal"}
}

func (p *parser) readAtom() *Node {
	start := p.pos
	for p.pos < len(p.src) && !isAtomEnd(p.src[p.pos]) {
		p.pos++
	}
	return &Node{Atom: p.src[start:p.pos]}
}

func isAtomEnd(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '(', ')', ';', '"', '|':
		return true
	}
	return false
}

func classify(node *Node) FormKind {
	switch node.Head() {
	case "assert":
		return KindAssertion
	case "declare-fun", "declare-const", "declare-sort", "declare-datatype", "declare-datatypes":
		return KindDeclaration
	case "define-fun", "define-fun-rec":
		if len(node.List) > 1 && strings.HasSuffix(node.List[1].Atom, PreconditionSuffix) {
			return KindPrecondition
		}
		return KindDefinition
	case "define-sort":
		return KindDefinition
	default:
		return KindCommand
	}
}
