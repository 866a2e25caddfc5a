// Package parser reads type syntax such as HashMap<String, Vec<u8>> or
// <T as Iterator>::Item into frontend/ast nodes.
//
// It does not parse whole source files: items, statements and most
// expressions are built directly as ast values by whoever owns the tree.
package parser

import (
	"fmt"

	"github.com/cottand/retype/frontend/ast"
)

// ParseError reports malformed input. Offset is the 0-based byte offset of
// the offending token.
type ParseError struct {
	Offset int
	Msg    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%d: %s", e.Offset, e.Msg)
}

// ParseType parses src as a single type.
//
// Positions in the returned tree are 1-based byte offsets into src, so a
// Range{1, 4} covers src[0:3].
func ParseType(src string) (ast.Type, error) {
	p, err := newTypeParser(src)
	if err != nil {
		return nil, err
	}
	t, err := p.parseType()
	if err != nil {
		return nil, err
	}
	if !p.is(tokEOF) {
		return nil, p.errorf("unexpected trailing input")
	}
	return t, nil
}

// MustParseType is like ParseType but panics on malformed input.
func MustParseType(src string) ast.Type {
	t, err := ParseType(src)
	if err != nil {
		panic(fmt.Sprintf("parse type %q: %v", src, err))
	}
	return t
}

// ParseExpr parses src as a constant expression, the kind that appears
// as an array length or a const generic argument.
func ParseExpr(src string) (ast.Expr, error) {
	p, err := newTypeParser(src)
	if err != nil {
		return nil, err
	}
	e, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if !p.is(tokEOF) {
		return nil, p.errorf("unexpected trailing input")
	}
	return e, nil
}

func newTypeParser(src string) (*typeParser, error) {
	toks, err := lex(src)
	if err != nil {
		return nil, err
	}
	return &typeParser{toks: toks}, nil
}
