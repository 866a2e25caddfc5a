package parser

import (
	"fmt"
	"go/token"

	"github.com/cottand/retype/frontend/ast"
)

// typeParser is a recursive-descent parser over pre-lexed tokens. Lexing
// everything up front makes backtracking a matter of resetting idx.
type typeParser struct {
	toks []tok
	idx  int
}

func (p *typeParser) peek() tok { return p.toks[p.idx] }

func (p *typeParser) peekN(n int) tok {
	if p.idx+n >= len(p.toks) {
		return p.toks[len(p.toks)-1]
	}
	return p.toks[p.idx+n]
}

func (p *typeParser) next() tok {
	t := p.toks[p.idx]
	if t.kind != tokEOF {
		p.idx++
	}
	return t
}

// lastEnd is the end of the most recently consumed token
func (p *typeParser) lastEnd() token.Pos {
	if p.idx == 0 {
		return p.toks[0].pos
	}
	return p.toks[p.idx-1].end
}

func (p *typeParser) rangeFrom(start token.Pos) ast.Range {
	return ast.Range{PosStart: start, PosEnd: p.lastEnd()}
}

func (p *typeParser) is(kind rune) bool { return p.peek().kind == kind }

func (p *typeParser) isKeyword(kw string) bool {
	t := p.peek()
	return t.kind == tokIdent && t.text == kw
}

// isPathSep reports whether the next two tokens are an adjacent ::
func (p *typeParser) isPathSep() bool {
	return p.is(':') && p.peekN(1).kind == ':' && !p.peekN(1).spaceBefore
}

func (p *typeParser) accept(kind rune) bool {
	if p.is(kind) {
		p.next()
		return true
	}
	return false
}

func (p *typeParser) acceptKeyword(kw string) bool {
	if p.isKeyword(kw) {
		p.next()
		return true
	}
	return false
}

func (p *typeParser) expect(kind rune) error {
	if !p.accept(kind) {
		return p.errorf("expected '%c'", kind)
	}
	return nil
}

func (p *typeParser) errorf(format string, args ...any) error {
	t := p.peek()
	found := t.text
	if t.kind == tokEOF {
		found = "end of input"
	}
	return &ParseError{
		Offset: int(t.pos) - 1,
		Msg:    fmt.Sprintf(format, args...) + fmt.Sprintf(", found '%s'", found),
	}
}

func (p *typeParser) parseType() (ast.Type, error) {
	start := p.peek().pos
	switch {
	case p.accept('!'):
		return &ast.TypeNever{Range: p.rangeFrom(start)}, nil
	case p.isKeyword("_"):
		p.next()
		return &ast.TypeInfer{Range: p.rangeFrom(start)}, nil
	case p.is('('):
		return p.parseTupleOrParen()
	case p.is('['):
		return p.parseArrayOrSlice()
	case p.is('&'):
		p.next()
		ref := &ast.TypeReference{}
		if p.is('\'') {
			lifetime, err := p.parseLifetime()
			if err != nil {
				return nil, err
			}
			ref.Lifetime = lifetime
		}
		ref.Mutable = p.acceptKeyword("mut")
		elem, err := p.parseType()
		if err != nil {
			return nil, err
		}
		ref.Elem = elem
		ref.Range = p.rangeFrom(start)
		return ref, nil
	case p.is('*'):
		p.next()
		ptr := &ast.TypePtr{}
		switch {
		case p.acceptKeyword("mut"):
			ptr.Mutable = true
		case p.acceptKeyword("const"):
		default:
			return nil, p.errorf("expected 'const' or 'mut' after '*'")
		}
		elem, err := p.parseType()
		if err != nil {
			return nil, err
		}
		ptr.Elem = elem
		ptr.Range = p.rangeFrom(start)
		return ptr, nil
	case p.isKeyword("fn") || p.isKeyword("unsafe") || p.isKeyword("extern"):
		return p.parseBareFn(nil, start)
	case p.isKeyword("for"):
		lifetimes, err := p.parseForLifetimes()
		if err != nil {
			return nil, err
		}
		if p.isKeyword("fn") || p.isKeyword("unsafe") || p.isKeyword("extern") {
			return p.parseBareFn(lifetimes, start)
		}
		// for<'a> Trait<'a> in type position is a trait object without dyn
		bound, err := p.parseTraitBoundRest(start, lifetimes)
		if err != nil {
			return nil, err
		}
		return p.parseTraitObjectRest(start, false, bound)
	case p.isKeyword("impl"):
		p.next()
		bounds, err := p.parseBounds()
		if err != nil {
			return nil, err
		}
		return &ast.TypeImplTrait{Range: p.rangeFrom(start), Bounds: bounds}, nil
	case p.isKeyword("dyn"):
		p.next()
		bounds, err := p.parseBounds()
		if err != nil {
			return nil, err
		}
		return &ast.TypeTraitObject{Range: p.rangeFrom(start), Dyn: true, Bounds: bounds}, nil
	case p.is('<'):
		return p.parseQualifiedTypePath(false)
	case p.is(tokInt) || p.is(tokFloat) || p.is(tokString) || p.is(tokRaw):
		t := p.next()
		return &ast.TypeLit{Range: p.rangeFrom(start), Value: t.text}, nil
	case p.is(tokIdent) || p.isPathSep():
		path, err := p.parsePath(false)
		if err != nil {
			return nil, err
		}
		if p.is('!') && !path.Global && len(path.Segments) > 0 && path.Segments[len(path.Segments)-1].Arguments == nil {
			mac, err := p.parseMacroRest(start, path)
			if err != nil {
				return nil, err
			}
			return &ast.TypeMacro{Range: mac.Range, Mac: mac}, nil
		}
		return &ast.TypePath{Range: p.rangeFrom(start), Path: path}, nil
	default:
		return nil, p.errorf("expected a type")
	}
}

func (p *typeParser) parseTupleOrParen() (ast.Type, error) {
	start := p.next().pos
	var elems []ast.Type
	trailingComma := false
	for !p.is(')') {
		elem, err := p.parseType()
		if err != nil {
			return nil, err
		}
		elems = append(elems, elem)
		trailingComma = p.accept(',')
		if !trailingComma {
			break
		}
	}
	if err := p.expect(')'); err != nil {
		return nil, err
	}
	if len(elems) == 1 && !trailingComma {
		return &ast.TypeParen{Range: p.rangeFrom(start), Elem: elems[0]}, nil
	}
	return &ast.TypeTuple{Range: p.rangeFrom(start), Elems: elems}, nil
}

func (p *typeParser) parseArrayOrSlice() (ast.Type, error) {
	start := p.next().pos
	elem, err := p.parseType()
	if err != nil {
		return nil, err
	}
	if p.accept(';') {
		length, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.expect(']'); err != nil {
			return nil, err
		}
		return &ast.TypeArray{Range: p.rangeFrom(start), Elem: elem, Len: length}, nil
	}
	if err := p.expect(']'); err != nil {
		return nil, err
	}
	return &ast.TypeSlice{Range: p.rangeFrom(start), Elem: elem}, nil
}

func (p *typeParser) parseBareFn(lifetimes []string, start token.Pos) (ast.Type, error) {
	fn := &ast.TypeBareFn{Lifetimes: lifetimes}
	fn.Unsafe = p.acceptKeyword("unsafe")
	if p.acceptKeyword("extern") {
		fn.Abi = `"C"`
		if p.is(tokString) {
			fn.Abi = p.next().text
		}
	}
	if !p.acceptKeyword("fn") {
		return nil, p.errorf("expected 'fn'")
	}
	if err := p.expect('('); err != nil {
		return nil, err
	}
	for !p.is(')') {
		if p.is('.') && p.peekN(1).kind == '.' && p.peekN(2).kind == '.' {
			p.next()
			p.next()
			p.next()
			fn.Variadic = true
			break
		}
		argStart := p.peek().pos
		arg := ast.BareFnArg{}
		// named argument: name: T (but not a path starting name::)
		if p.is(tokIdent) && p.peekN(1).kind == ':' && p.peekN(2).kind != ':' {
			arg.Name = p.next().text
			p.next()
		}
		t, err := p.parseType()
		if err != nil {
			return nil, err
		}
		arg.Type = t
		arg.Range = p.rangeFrom(argStart)
		fn.Inputs = append(fn.Inputs, arg)
		if !p.accept(',') {
			break
		}
	}
	if err := p.expect(')'); err != nil {
		return nil, err
	}
	output, err := p.parseReturnType()
	if err != nil {
		return nil, err
	}
	fn.Output = output
	fn.Range = p.rangeFrom(start)
	return fn, nil
}

// parseReturnType parses an optional -> T
func (p *typeParser) parseReturnType() (ast.Type, error) {
	if p.is('-') && p.peekN(1).kind == '>' {
		p.next()
		p.next()
		return p.parseType()
	}
	return nil, nil
}

func (p *typeParser) parseLifetime() (string, error) {
	if err := p.expect('\''); err != nil {
		return "", err
	}
	if !p.is(tokIdent) {
		return "", p.errorf("expected a lifetime name")
	}
	return "'" + p.next().text, nil
}

func (p *typeParser) parseForLifetimes() ([]string, error) {
	if !p.acceptKeyword("for") {
		return nil, p.errorf("expected 'for'")
	}
	if err := p.expect('<'); err != nil {
		return nil, err
	}
	var lifetimes []string
	for !p.is('>') {
		lifetime, err := p.parseLifetime()
		if err != nil {
			return nil, err
		}
		lifetimes = append(lifetimes, lifetime)
		if !p.accept(',') {
			break
		}
	}
	return lifetimes, p.expect('>')
}

// parseQualifiedTypePath parses <T>::Rest and <T as Trait>::Rest
func (p *typeParser) parseQualifiedTypePath(expr bool) (*ast.TypePath, error) {
	start := p.next().pos
	selfType, err := p.parseType()
	if err != nil {
		return nil, err
	}
	qself := &ast.QSelf{Type: selfType}
	path := ast.Path{}
	if p.acceptKeyword("as") {
		trait, err := p.parsePath(false)
		if err != nil {
			return nil, err
		}
		path = trait
		qself.Position = len(trait.Segments)
	}
	if err := p.expect('>'); err != nil {
		return nil, err
	}
	qself.Range = p.rangeFrom(start)
	if !p.isPathSep() {
		return nil, p.errorf("expected '::' after qualified self type")
	}
	for p.isPathSep() {
		p.next()
		p.next()
		seg, err := p.parseSegment(expr)
		if err != nil {
			return nil, err
		}
		path.Segments = append(path.Segments, seg)
	}
	path.Range = p.rangeFrom(start)
	return &ast.TypePath{Range: p.rangeFrom(start), QSelf: qself, Path: path}, nil
}

// parsePath parses a::b<T>::c. In expression position generic arguments
// must be written with a turbofish.
func (p *typeParser) parsePath(expr bool) (ast.Path, error) {
	start := p.peek().pos
	path := ast.Path{}
	if p.isPathSep() {
		p.next()
		p.next()
		path.Global = true
	}
	for {
		seg, err := p.parseSegment(expr)
		if err != nil {
			return ast.Path{}, err
		}
		path.Segments = append(path.Segments, seg)
		// a :: followed by < is a turbofish on the segment we just parsed
		if !p.isPathSep() || p.peekN(2).kind == '<' {
			break
		}
		p.next()
		p.next()
	}
	path.Range = p.rangeFrom(start)
	return path, nil
}

func (p *typeParser) parseSegment(expr bool) (ast.PathSegment, error) {
	start := p.peek().pos
	if !p.is(tokIdent) {
		return ast.PathSegment{}, p.errorf("expected an identifier")
	}
	seg := ast.PathSegment{Ident: p.next().text}
	switch {
	case p.isPathSep() && p.peekN(2).kind == '<':
		p.next()
		p.next()
		args, err := p.parseAngleBracketed(true)
		if err != nil {
			return ast.PathSegment{}, err
		}
		seg.Arguments = args
	case !expr && p.is('<'):
		args, err := p.parseAngleBracketed(false)
		if err != nil {
			return ast.PathSegment{}, err
		}
		seg.Arguments = args
	case !expr && p.is('('):
		args, err := p.parseParenthesized()
		if err != nil {
			return ast.PathSegment{}, err
		}
		seg.Arguments = args
	}
	seg.Range = p.rangeFrom(start)
	return seg, nil
}

func (p *typeParser) parseParenthesized() (*ast.ParenthesizedArgs, error) {
	start := p.next().pos
	args := &ast.ParenthesizedArgs{}
	for !p.is(')') {
		t, err := p.parseType()
		if err != nil {
			return nil, err
		}
		args.Inputs = append(args.Inputs, t)
		if !p.accept(',') {
			break
		}
	}
	if err := p.expect(')'); err != nil {
		return nil, err
	}
	output, err := p.parseReturnType()
	if err != nil {
		return nil, err
	}
	args.Output = output
	args.Range = p.rangeFrom(start)
	return args, nil
}

func (p *typeParser) parseAngleBracketed(turbofish bool) (*ast.AngleBracketedArgs, error) {
	start := p.next().pos
	args := &ast.AngleBracketedArgs{Turbofish: turbofish}
	for !p.is('>') {
		arg, err := p.parseGenericArgument()
		if err != nil {
			return nil, err
		}
		args.Args = append(args.Args, arg)
		if !p.accept(',') {
			break
		}
	}
	if err := p.expect('>'); err != nil {
		return nil, err
	}
	args.Range = p.rangeFrom(start)
	return args, nil
}

func (p *typeParser) parseGenericArgument() (ast.GenericArgument, error) {
	start := p.peek().pos
	if p.is('\'') {
		lifetime, err := p.parseLifetime()
		if err != nil {
			return nil, err
		}
		return &ast.LifetimeArg{Range: p.rangeFrom(start), Name: lifetime}, nil
	}
	if binding, ok, err := p.tryParseBinding(); ok || err != nil {
		return binding, err
	}
	if p.isConstArgStart() {
		value, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return &ast.ConstArg{Range: p.rangeFrom(start), Value: value}, nil
	}
	t, err := p.parseType()
	if err != nil {
		return nil, err
	}
	return &ast.TypeArg{Range: p.rangeFrom(start), Type: t}, nil
}

func (p *typeParser) isConstArgStart() bool {
	switch {
	case p.is(tokInt), p.is(tokFloat), p.is(tokString), p.is('{'), p.is('-'):
		return true
	case p.isKeyword("true"), p.isKeyword("false"):
		return true
	default:
		return false
	}
}

// tryParseBinding parses Ident = T, Ident = 3, Ident: Bound and their
// generic forms Ident<'a> = T. It backtracks when the argument turns out to
// be a plain type.
func (p *typeParser) tryParseBinding() (ast.GenericArgument, bool, error) {
	if !p.is(tokIdent) {
		return nil, false, nil
	}
	saved := p.idx
	start := p.peek().pos
	ident := p.next().text
	var generics *ast.AngleBracketedArgs
	if p.is('<') {
		args, err := p.parseAngleBracketed(false)
		if err != nil {
			p.idx = saved
			return nil, false, nil
		}
		generics = args
	}
	switch {
	case p.is('='):
		p.next()
		if p.isConstArgStart() {
			value, err := p.parseExpr()
			if err != nil {
				return nil, true, err
			}
			return &ast.AssocConst{Range: p.rangeFrom(start), Ident: ident, Generics: generics, Value: value}, true, nil
		}
		t, err := p.parseType()
		if err != nil {
			return nil, true, err
		}
		return &ast.AssocType{Range: p.rangeFrom(start), Ident: ident, Generics: generics, Type: t}, true, nil
	case p.is(':') && !p.isPathSep():
		p.next()
		bounds, err := p.parseBounds()
		if err != nil {
			return nil, true, err
		}
		return &ast.Constraint{Range: p.rangeFrom(start), Ident: ident, Generics: generics, Bounds: bounds}, true, nil
	default:
		p.idx = saved
		return nil, false, nil
	}
}

func (p *typeParser) parseBounds() ([]ast.TypeParamBound, error) {
	var bounds []ast.TypeParamBound
	for {
		bound, err := p.parseBound()
		if err != nil {
			return nil, err
		}
		bounds = append(bounds, bound)
		if !p.accept('+') {
			return bounds, nil
		}
	}
}

func (p *typeParser) parseBound() (ast.TypeParamBound, error) {
	start := p.peek().pos
	switch {
	case p.is('\''):
		lifetime, err := p.parseLifetime()
		if err != nil {
			return nil, err
		}
		return &ast.LifetimeBound{Range: p.rangeFrom(start), Name: lifetime}, nil
	case p.is('('):
		p.next()
		bound, err := p.parseBound()
		if err != nil {
			return nil, err
		}
		if err := p.expect(')'); err != nil {
			return nil, err
		}
		if tb, ok := bound.(*ast.TraitBound); ok {
			tb.Paren = true
			tb.Range = p.rangeFrom(start)
		}
		return bound, nil
	case p.isKeyword("for"):
		lifetimes, err := p.parseForLifetimes()
		if err != nil {
			return nil, err
		}
		return p.parseTraitBoundRest(start, lifetimes)
	default:
		return p.parseTraitBoundRest(start, nil)
	}
}

func (p *typeParser) parseTraitBoundRest(start token.Pos, lifetimes []string) (*ast.TraitBound, error) {
	bound := &ast.TraitBound{Lifetimes: lifetimes}
	if p.accept('?') {
		bound.Modifier = ast.ModifierMaybe
	}
	path, err := p.parsePath(false)
	if err != nil {
		return nil, err
	}
	bound.Path = path
	bound.Range = p.rangeFrom(start)
	return bound, nil
}

func (p *typeParser) parseTraitObjectRest(start token.Pos, dyn bool, first ast.TypeParamBound) (ast.Type, error) {
	bounds := []ast.TypeParamBound{first}
	if p.accept('+') {
		rest, err := p.parseBounds()
		if err != nil {
			return nil, err
		}
		bounds = append(bounds, rest...)
	}
	return &ast.TypeTraitObject{Range: p.rangeFrom(start), Dyn: dyn, Bounds: bounds}, nil
}

// parseMacroRest parses the ! and delimited body of a macro invocation,
// keeping the body as raw source text.
func (p *typeParser) parseMacroRest(start token.Pos, path ast.Path) (ast.Macro, error) {
	p.next() // !
	open := p.peek()
	var delim ast.Delimiter
	var closing rune
	switch open.kind {
	case '(':
		delim, closing = ast.DelimParen, ')'
	case '[':
		delim, closing = ast.DelimBracket, ']'
	case '{':
		delim, closing = ast.DelimBrace, '}'
	default:
		return ast.Macro{}, p.errorf("expected a macro delimiter")
	}
	p.next()
	depth := 1
	bodyStart := p.idx
	for depth > 0 {
		t := p.peek()
		switch t.kind {
		case tokEOF:
			return ast.Macro{}, p.errorf("unclosed macro invocation")
		case open.kind:
			depth++
		case closing:
			depth--
		}
		if depth > 0 {
			p.next()
		}
	}
	bodyEnd := p.idx
	p.next()
	return ast.Macro{
		Range:     p.rangeFrom(start),
		Path:      path,
		Delimiter: delim,
		Tokens:    joinTokens(p.toks[bodyStart:bodyEnd]),
	}, nil
}

func joinTokens(toks []tok) string {
	s := ""
	for i, t := range toks {
		if i > 0 && t.spaceBefore {
			s += " "
		}
		s += t.text
	}
	return s
}
