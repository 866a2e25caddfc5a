package parser

import (
	"go/token"

	"github.com/cottand/retype/frontend/ast"
)

// binaryOps maps the arithmetic operators allowed in constant expressions
// to their precedence
var binaryOps = map[rune]struct {
	op   token.Token
	prec int
}{
	'+': {token.ADD, 1},
	'-': {token.SUB, 1},
	'*': {token.MUL, 2},
	'/': {token.QUO, 2},
	'%': {token.REM, 2},
}

var litKinds = map[rune]token.Token{
	tokInt:    token.INT,
	tokFloat:  token.FLOAT,
	tokString: token.STRING,
	tokRaw:    token.STRING,
	tokIdent:  token.IDENT,
}

// parseExpr parses the constant expressions found in array lengths and const
// generic arguments: literals, paths, calls, casts, blocks and arithmetic.
func (p *typeParser) parseExpr() (ast.Expr, error) {
	return p.parseBinary(1)
}

func (p *typeParser) parseBinary(minPrec int) (ast.Expr, error) {
	start := p.peek().pos
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := binaryOps[p.peek().kind]
		// -> closes a return type, it is never a subtraction here
		if !ok || op.prec < minPrec || p.is('-') && p.peekN(1).kind == '>' {
			return left, nil
		}
		p.next()
		right, err := p.parseBinary(op.prec + 1)
		if err != nil {
			return nil, err
		}
		left = &ast.ExprBinary{Range: p.rangeFrom(start), Left: left, Op: op.op, Right: right}
	}
}

func (p *typeParser) parseUnary() (ast.Expr, error) {
	start := p.peek().pos
	var op ast.UnaryOp
	switch {
	case p.is('-'):
		op = ast.UnaryNeg
	case p.is('!'):
		op = ast.UnaryNot
	case p.is('*'):
		op = ast.UnaryDeref
	default:
		return p.parsePostfix()
	}
	p.next()
	operand, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	return &ast.ExprUnary{Range: p.rangeFrom(start), Op: op, Expr: operand}, nil
}

func (p *typeParser) parsePostfix() (ast.Expr, error) {
	start := p.peek().pos
	expr, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for {
		switch {
		case p.is('('):
			p.next()
			call := &ast.ExprCall{Func: expr}
			for !p.is(')') {
				arg, err := p.parseExpr()
				if err != nil {
					return nil, err
				}
				call.Args = append(call.Args, arg)
				if !p.accept(',') {
					break
				}
			}
			if err := p.expect(')'); err != nil {
				return nil, err
			}
			call.Range = p.rangeFrom(start)
			expr = call
		case p.isKeyword("as"):
			p.next()
			t, err := p.parseType()
			if err != nil {
				return nil, err
			}
			expr = &ast.ExprCast{Range: p.rangeFrom(start), Expr: expr, Type: t}
		default:
			return expr, nil
		}
	}
}

func (p *typeParser) parsePrimary() (ast.Expr, error) {
	start := p.peek().pos
	switch {
	case p.is(tokInt), p.is(tokFloat), p.is(tokString), p.is(tokRaw), p.isKeyword("true"), p.isKeyword("false"):
		t := p.next()
		return &ast.ExprLit{Range: p.rangeFrom(start), Kind: litKinds[t.kind], Value: t.text}, nil
	case p.isKeyword("_"):
		p.next()
		return &ast.ExprInfer{Range: p.rangeFrom(start)}, nil
	case p.is('('):
		p.next()
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.expect(')'); err != nil {
			return nil, err
		}
		return &ast.ExprParen{Range: p.rangeFrom(start), Expr: inner}, nil
	case p.is('{'):
		p.next()
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.expect('}'); err != nil {
			return nil, err
		}
		r := p.rangeFrom(start)
		return &ast.ExprBlock{Range: r, Block: &ast.Block{Range: r, Stmts: []ast.Stmt{
			&ast.ExprStmt{Range: ast.RangeOf(inner), Expr: inner},
		}}}, nil
	case p.is('<'):
		tp, err := p.parseQualifiedTypePath(true)
		if err != nil {
			return nil, err
		}
		return &ast.ExprPath{Range: tp.Range, QSelf: tp.QSelf, Path: tp.Path}, nil
	case p.is(tokIdent) || p.isPathSep():
		path, err := p.parsePath(true)
		if err != nil {
			return nil, err
		}
		if p.is('!') {
			mac, err := p.parseMacroRest(start, path)
			if err != nil {
				return nil, err
			}
			return &ast.ExprMacro{Range: mac.Range, Mac: mac}, nil
		}
		return &ast.ExprPath{Range: p.rangeFrom(start), Path: path}, nil
	default:
		return nil, p.errorf("expected an expression")
	}
}
