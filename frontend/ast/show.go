package ast

import (
	"strings"
)

// Show renders a node as it would appear in source, on a single line.
//
// It is meant for logs, diagnostics and the CLI rather than as a printer for
// whole files: items are rendered only by their kind and name.
// Parentheses are only printed where the tree has ExprParen or TypeParen nodes.
func Show(n Node) string {
	ctx := newShowContext()
	ctx.node(n)
	return ctx.String()
}

func TypeString(t Type) string {
	ctx := newShowContext()
	ctx.typ(t)
	return ctx.String()
}

func ExprString(e Expr) string {
	ctx := newShowContext()
	ctx.expr(e)
	return ctx.String()
}

type showContext struct {
	*strings.Builder
}

func newShowContext() *showContext {
	return &showContext{Builder: &strings.Builder{}}
}

func (ctx *showContext) node(n Node) {
	switch n := n.(type) {
	case nil:
		ctx.WriteString("nil")
	case Type:
		ctx.typ(n)
	case Expr:
		ctx.expr(n)
	case Pat:
		ctx.pat(n)
	case TypeParamBound:
		ctx.bound(n)
	case Stmt:
		ctx.stmt(n)
	case *Block:
		ctx.block(n)
	case *Path:
		ctx.path(n, false)
	case Item:
		ctx.WriteString("/* " + n.Describe() + " */")
	default:
		ctx.WriteString(n.Describe())
	}
}

func (ctx *showContext) typ(t Type) {
	switch t := t.(type) {
	case nil:
		ctx.WriteString("nil")
	case *TypePath:
		ctx.qualifiedPath(t.QSelf, &t.Path, false)
	case *TypeArray:
		ctx.WriteString("[")
		ctx.typ(t.Elem)
		ctx.WriteString("; ")
		ctx.expr(t.Len)
		ctx.WriteString("]")
	case *TypeSlice:
		ctx.WriteString("[")
		ctx.typ(t.Elem)
		ctx.WriteString("]")
	case *TypeReference:
		ctx.WriteString("&")
		if t.Lifetime != "" {
			ctx.WriteString(t.Lifetime + " ")
		}
		if t.Mutable {
			ctx.WriteString("mut ")
		}
		ctx.typ(t.Elem)
	case *TypePtr:
		if t.Mutable {
			ctx.WriteString("*mut ")
		} else {
			ctx.WriteString("*const ")
		}
		ctx.typ(t.Elem)
	case *TypeBareFn:
		ctx.forLifetimes(t.Lifetimes)
		if t.Unsafe {
			ctx.WriteString("unsafe ")
		}
		if t.Abi != "" {
			ctx.WriteString("extern " + t.Abi + " ")
		}
		ctx.WriteString("fn(")
		for i, in := range t.Inputs {
			if i > 0 {
				ctx.WriteString(", ")
			}
			if in.Name != "" {
				ctx.WriteString(in.Name + ": ")
			}
			ctx.typ(in.Type)
		}
		if t.Variadic {
			if len(t.Inputs) > 0 {
				ctx.WriteString(", ")
			}
			ctx.WriteString("...")
		}
		ctx.WriteString(")")
		ctx.returnType(t.Output)
	case *TypeImplTrait:
		ctx.WriteString("impl ")
		ctx.bounds(t.Bounds)
	case *TypeTraitObject:
		if t.Dyn {
			ctx.WriteString("dyn ")
		}
		ctx.bounds(t.Bounds)
	case *TypeTuple:
		ctx.WriteString("(")
		for i, elem := range t.Elems {
			if i > 0 {
				ctx.WriteString(", ")
			}
			ctx.typ(elem)
		}
		if len(t.Elems) == 1 {
			ctx.WriteString(",")
		}
		ctx.WriteString(")")
	case *TypeParen:
		ctx.WriteString("(")
		ctx.typ(t.Elem)
		ctx.WriteString(")")
	case *TypeGroup:
		ctx.typ(t.Elem)
	case *TypeInfer:
		ctx.WriteString("_")
	case *TypeNever:
		ctx.WriteString("!")
	case *TypeLit:
		ctx.WriteString(t.Value)
	case *TypeMacro:
		ctx.macro(&t.Mac)
	case *TypeVerbatim:
		ctx.WriteString(t.Tokens)
	default:
		ctx.WriteString("/* " + t.Describe() + " */")
	}
}

func (ctx *showContext) returnType(t Type) {
	if t != nil {
		ctx.WriteString(" -> ")
		ctx.typ(t)
	}
}

func (ctx *showContext) forLifetimes(lifetimes []string) {
	if len(lifetimes) > 0 {
		ctx.WriteString("for<" + strings.Join(lifetimes, ", ") + "> ")
	}
}

// qualifiedPath renders <T as Trait>::Rest when qself is set.
func (ctx *showContext) qualifiedPath(qself *QSelf, p *Path, expr bool) {
	if qself == nil {
		ctx.path(p, expr)
		return
	}
	ctx.WriteString("<")
	ctx.typ(qself.Type)
	pos := min(qself.Position, len(p.Segments))
	if pos > 0 {
		ctx.WriteString(" as ")
		if p.Global {
			ctx.WriteString("::")
		}
		ctx.segments(p.Segments[:pos], expr)
	}
	ctx.WriteString(">")
	for _, seg := range p.Segments[pos:] {
		ctx.WriteString("::")
		ctx.segment(seg, expr)
	}
}

func (ctx *showContext) path(p *Path, expr bool) {
	if p.Global {
		ctx.WriteString("::")
	}
	ctx.segments(p.Segments, expr)
}

func (ctx *showContext) segments(segs []PathSegment, expr bool) {
	for i, seg := range segs {
		if i > 0 {
			ctx.WriteString("::")
		}
		ctx.segment(seg, expr)
	}
}

func (ctx *showContext) segment(seg PathSegment, expr bool) {
	ctx.WriteString(seg.Ident)
	switch args := seg.Arguments.(type) {
	case *AngleBracketedArgs:
		ctx.angleBracketed(args, expr)
	case *ParenthesizedArgs:
		ctx.WriteString("(")
		for i, in := range args.Inputs {
			if i > 0 {
				ctx.WriteString(", ")
			}
			ctx.typ(in)
		}
		ctx.WriteString(")")
		ctx.returnType(args.Output)
	}
}

func (ctx *showContext) angleBracketed(args *AngleBracketedArgs, expr bool) {
	if args == nil {
		return
	}
	if args.Turbofish || expr {
		ctx.WriteString("::")
	}
	ctx.WriteString("<")
	for i, arg := range args.Args {
		if i > 0 {
			ctx.WriteString(", ")
		}
		ctx.genericArg(arg)
	}
	ctx.WriteString(">")
}

func (ctx *showContext) genericArg(arg GenericArgument) {
	switch arg := arg.(type) {
	case *TypeArg:
		ctx.typ(arg.Type)
	case *ConstArg:
		ctx.expr(arg.Value)
	case *LifetimeArg:
		ctx.WriteString(arg.Name)
	case *AssocType:
		ctx.WriteString(arg.Ident)
		ctx.angleBracketed(arg.Generics, false)
		ctx.WriteString(" = ")
		ctx.typ(arg.Type)
	case *AssocConst:
		ctx.WriteString(arg.Ident)
		ctx.angleBracketed(arg.Generics, false)
		ctx.WriteString(" = ")
		ctx.expr(arg.Value)
	case *Constraint:
		ctx.WriteString(arg.Ident)
		ctx.angleBracketed(arg.Generics, false)
		ctx.WriteString(": ")
		ctx.bounds(arg.Bounds)
	default:
		ctx.WriteString("/* " + arg.Describe() + " */")
	}
}

func (ctx *showContext) bounds(bounds []TypeParamBound) {
	for i, bound := range bounds {
		if i > 0 {
			ctx.WriteString(" + ")
		}
		ctx.bound(bound)
	}
}

func (ctx *showContext) bound(bound TypeParamBound) {
	switch bound := bound.(type) {
	case *TraitBound:
		if bound.Paren {
			ctx.WriteString("(")
		}
		if bound.Modifier == ModifierMaybe {
			ctx.WriteString("?")
		}
		ctx.forLifetimes(bound.Lifetimes)
		ctx.path(&bound.Path, false)
		if bound.Paren {
			ctx.WriteString(")")
		}
	case *LifetimeBound:
		ctx.WriteString(bound.Name)
	case *VerbatimBound:
		ctx.WriteString(bound.Tokens)
	default:
		ctx.WriteString("/* " + bound.Describe() + " */")
	}
}

func (ctx *showContext) macro(m *Macro) {
	ctx.path(&m.Path, false)
	ctx.WriteString("!" + m.Delimiter.Open() + m.Tokens + m.Delimiter.Close())
}

func (ctx *showContext) label(label string) {
	if label != "" {
		ctx.WriteString("'" + label + ": ")
	}
}

func (ctx *showContext) exprs(exprs []Expr) {
	for i, e := range exprs {
		if i > 0 {
			ctx.WriteString(", ")
		}
		ctx.expr(e)
	}
}

func (ctx *showContext) expr(e Expr) {
	switch e := e.(type) {
	case nil:
		ctx.WriteString("nil")
	case *ExprArray:
		ctx.WriteString("[")
		ctx.exprs(e.Elems)
		ctx.WriteString("]")
	case *ExprAssign:
		ctx.expr(e.Left)
		ctx.WriteString(" = ")
		ctx.expr(e.Right)
	case *ExprAsync:
		ctx.WriteString("async ")
		if e.Move {
			ctx.WriteString("move ")
		}
		ctx.block(e.Block)
	case *ExprAwait:
		ctx.expr(e.Base)
		ctx.WriteString(".await")
	case *ExprBinary:
		ctx.expr(e.Left)
		ctx.WriteString(" " + e.Op.String() + " ")
		ctx.expr(e.Right)
	case *ExprBlock:
		ctx.label(e.Label)
		ctx.block(e.Block)
	case *ExprBreak:
		ctx.WriteString("break")
		if e.Label != "" {
			ctx.WriteString(" '" + e.Label)
		}
		if e.Expr != nil {
			ctx.WriteString(" ")
			ctx.expr(e.Expr)
		}
	case *ExprCall:
		ctx.expr(e.Func)
		ctx.WriteString("(")
		ctx.exprs(e.Args)
		ctx.WriteString(")")
	case *ExprCast:
		ctx.expr(e.Expr)
		ctx.WriteString(" as ")
		ctx.typ(e.Type)
	case *ExprClosure:
		if e.Const {
			ctx.WriteString("const ")
		}
		if e.Static {
			ctx.WriteString("static ")
		}
		if e.Async {
			ctx.WriteString("async ")
		}
		if e.Move {
			ctx.WriteString("move ")
		}
		ctx.WriteString("|")
		for i, in := range e.Inputs {
			if i > 0 {
				ctx.WriteString(", ")
			}
			ctx.pat(in)
		}
		ctx.WriteString("|")
		if e.Output != nil {
			ctx.returnType(e.Output)
		}
		ctx.WriteString(" ")
		ctx.expr(e.Body)
	case *ExprConst:
		ctx.WriteString("const ")
		ctx.block(e.Block)
	case *ExprContinue:
		ctx.WriteString("continue")
		if e.Label != "" {
			ctx.WriteString(" '" + e.Label)
		}
	case *ExprField:
		ctx.expr(e.Base)
		ctx.WriteString("." + e.Member)
	case *ExprForLoop:
		ctx.label(e.Label)
		ctx.WriteString("for ")
		ctx.pat(e.Pat)
		ctx.WriteString(" in ")
		ctx.expr(e.Expr)
		ctx.WriteString(" ")
		ctx.block(e.Body)
	case *ExprGroup:
		ctx.expr(e.Expr)
	case *ExprIf:
		ctx.WriteString("if ")
		ctx.expr(e.Cond)
		ctx.WriteString(" ")
		ctx.block(e.Then)
		if e.Else != nil {
			ctx.WriteString(" else ")
			ctx.expr(e.Else)
		}
	case *ExprIndex:
		ctx.expr(e.Expr)
		ctx.WriteString("[")
		ctx.expr(e.Index)
		ctx.WriteString("]")
	case *ExprInfer:
		ctx.WriteString("_")
	case *ExprLet:
		ctx.WriteString("let ")
		ctx.pat(e.Pat)
		ctx.WriteString(" = ")
		ctx.expr(e.Expr)
	case *ExprLit:
		ctx.WriteString(e.Value)
	case *ExprLoop:
		ctx.label(e.Label)
		ctx.WriteString("loop ")
		ctx.block(e.Body)
	case *ExprMacro:
		ctx.macro(&e.Mac)
	case *ExprMatch:
		ctx.WriteString("match ")
		ctx.expr(e.Expr)
		ctx.WriteString(" {")
		for _, arm := range e.Arms {
			ctx.WriteString(" ")
			ctx.pat(arm.Pat)
			if arm.Guard != nil {
				ctx.WriteString(" if ")
				ctx.expr(arm.Guard)
			}
			ctx.WriteString(" => ")
			ctx.expr(arm.Body)
			ctx.WriteString(",")
		}
		ctx.WriteString(" }")
	case *ExprMethodCall:
		ctx.expr(e.Receiver)
		ctx.WriteString("." + e.Method)
		ctx.angleBracketed(e.Turbofish, true)
		ctx.WriteString("(")
		ctx.exprs(e.Args)
		ctx.WriteString(")")
	case *ExprParen:
		ctx.WriteString("(")
		ctx.expr(e.Expr)
		ctx.WriteString(")")
	case *ExprPath:
		ctx.qualifiedPath(e.QSelf, &e.Path, true)
	case *ExprRange:
		if e.Start != nil {
			ctx.expr(e.Start)
		}
		if e.Inclusive {
			ctx.WriteString("..=")
		} else {
			ctx.WriteString("..")
		}
		if e.Limit != nil {
			ctx.expr(e.Limit)
		}
	case *ExprReference:
		ctx.WriteString("&")
		if e.Mutable {
			ctx.WriteString("mut ")
		}
		ctx.expr(e.Expr)
	case *ExprRepeat:
		ctx.WriteString("[")
		ctx.expr(e.Expr)
		ctx.WriteString("; ")
		ctx.expr(e.Len)
		ctx.WriteString("]")
	case *ExprReturn:
		ctx.WriteString("return")
		if e.Expr != nil {
			ctx.WriteString(" ")
			ctx.expr(e.Expr)
		}
	case *ExprStruct:
		ctx.qualifiedPath(e.QSelf, &e.Path, true)
		ctx.WriteString(" {")
		for i, field := range e.Fields {
			if i > 0 {
				ctx.WriteString(",")
			}
			ctx.WriteString(" " + field.Member + ": ")
			ctx.expr(field.Expr)
		}
		if e.Rest != nil {
			if len(e.Fields) > 0 {
				ctx.WriteString(",")
			}
			ctx.WriteString(" ..")
			ctx.expr(e.Rest)
		}
		ctx.WriteString(" }")
	case *ExprTry:
		ctx.expr(e.Expr)
		ctx.WriteString("?")
	case *ExprTryBlock:
		ctx.WriteString("try ")
		ctx.block(e.Block)
	case *ExprTuple:
		ctx.WriteString("(")
		ctx.exprs(e.Elems)
		if len(e.Elems) == 1 {
			ctx.WriteString(",")
		}
		ctx.WriteString(")")
	case *ExprUnary:
		ctx.WriteString(e.Op.String())
		ctx.expr(e.Expr)
	case *ExprUnsafe:
		ctx.WriteString("unsafe ")
		ctx.block(e.Block)
	case *ExprVerbatim:
		ctx.WriteString(e.Tokens)
	case *ExprWhile:
		ctx.label(e.Label)
		ctx.WriteString("while ")
		ctx.expr(e.Cond)
		ctx.WriteString(" ")
		ctx.block(e.Body)
	case *ExprYield:
		ctx.WriteString("yield")
		if e.Expr != nil {
			ctx.WriteString(" ")
			ctx.expr(e.Expr)
		}
	default:
		ctx.WriteString("/* " + e.Describe() + " */")
	}
}

func (ctx *showContext) block(b *Block) {
	if b == nil || len(b.Stmts) == 0 {
		ctx.WriteString("{}")
		return
	}
	ctx.WriteString("{ ")
	for i, stmt := range b.Stmts {
		if i > 0 {
			ctx.WriteString(" ")
		}
		ctx.stmt(stmt)
	}
	ctx.WriteString(" }")
}

func (ctx *showContext) stmt(s Stmt) {
	switch s := s.(type) {
	case *Local:
		ctx.WriteString("let ")
		ctx.pat(s.Pat)
		if s.Init != nil {
			ctx.WriteString(" = ")
			ctx.expr(s.Init.Expr)
			if s.Init.Diverge != nil {
				ctx.WriteString(" else ")
				ctx.expr(s.Init.Diverge)
			}
		}
		ctx.WriteString(";")
	case *ItemStmt:
		ctx.node(s.Item)
	case *ExprStmt:
		ctx.expr(s.Expr)
		if s.Semi {
			ctx.WriteString(";")
		}
	case *MacroStmt:
		ctx.macro(&s.Mac)
		ctx.WriteString(";")
	default:
		ctx.WriteString("/* " + s.Describe() + " */")
	}
}

func (ctx *showContext) pats(pats []Pat, sep string) {
	for i, p := range pats {
		if i > 0 {
			ctx.WriteString(sep)
		}
		ctx.pat(p)
	}
}

func (ctx *showContext) pat(p Pat) {
	switch p := p.(type) {
	case nil:
		ctx.WriteString("nil")
	case *PatIdent:
		if p.ByRef {
			ctx.WriteString("ref ")
		}
		if p.Mutable {
			ctx.WriteString("mut ")
		}
		ctx.WriteString(p.Name)
		if p.Subpat != nil {
			ctx.WriteString(" @ ")
			ctx.pat(p.Subpat)
		}
	case *PatLit:
		ctx.WriteString(p.Value)
	case *PatMacro:
		ctx.macro(&p.Mac)
	case *PatOr:
		ctx.pats(p.Cases, " | ")
	case *PatParen:
		ctx.WriteString("(")
		ctx.pat(p.Pat)
		ctx.WriteString(")")
	case *PatPath:
		ctx.qualifiedPath(p.QSelf, &p.Path, true)
	case *PatRange:
		ctx.WriteString(p.Start)
		if p.Inclusive {
			ctx.WriteString("..=")
		} else {
			ctx.WriteString("..")
		}
		ctx.WriteString(p.Limit)
	case *PatReference:
		ctx.WriteString("&")
		if p.Mutable {
			ctx.WriteString("mut ")
		}
		ctx.pat(p.Pat)
	case *PatRest:
		ctx.WriteString("..")
	case *PatSlice:
		ctx.WriteString("[")
		ctx.pats(p.Elems, ", ")
		ctx.WriteString("]")
	case *PatStruct:
		ctx.qualifiedPath(p.QSelf, &p.Path, true)
		ctx.WriteString(" {")
		for i, field := range p.Fields {
			if i > 0 {
				ctx.WriteString(",")
			}
			ctx.WriteString(" " + field.Member + ": ")
			ctx.pat(field.Pat)
		}
		if p.Rest {
			if len(p.Fields) > 0 {
				ctx.WriteString(",")
			}
			ctx.WriteString(" ..")
		}
		ctx.WriteString(" }")
	case *PatTuple:
		ctx.WriteString("(")
		ctx.pats(p.Elems, ", ")
		if len(p.Elems) == 1 {
			ctx.WriteString(",")
		}
		ctx.WriteString(")")
	case *PatTupleStruct:
		ctx.qualifiedPath(p.QSelf, &p.Path, true)
		ctx.WriteString("(")
		ctx.pats(p.Elems, ", ")
		ctx.WriteString(")")
	case *PatType:
		ctx.pat(p.Pat)
		ctx.WriteString(": ")
		ctx.typ(p.Type)
	case *PatVerbatim:
		ctx.WriteString(p.Tokens)
	case *PatWild:
		ctx.WriteString("_")
	default:
		ctx.WriteString("/* " + p.Describe() + " */")
	}
}
