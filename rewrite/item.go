package rewrite

import "github.com/cottand/retype/frontend/ast"

func (r *Rewriter) items(items []ast.Item) {
	for _, it := range items {
		r.item(it)
	}
}

func (r *Rewriter) item(it ast.Item) {
	switch it := it.(type) {
	case nil:
	case *ast.ItemFn:
		r.signature(&it.Sig)
		r.block(it.Block)
	case *ast.ItemStruct:
		r.generics(&it.Generics)
		r.fields(&it.Fields)
	case *ast.ItemUnion:
		r.generics(&it.Generics)
		r.fields(&it.Fields)
	case *ast.ItemEnum:
		r.generics(&it.Generics)
		for i := range it.Variants {
			variant := &it.Variants[i]
			r.fields(&variant.Fields)
			r.expr(variant.Discriminant)
		}
	case *ast.ItemTrait:
		r.generics(&it.Generics)
		r.bounds(it.Supertraits)
		for _, ti := range it.Items {
			r.traitItem(ti)
		}
	case *ast.ItemTraitAlias:
		r.generics(&it.Generics)
		r.bounds(it.Bounds)
	case *ast.ItemType:
		r.generics(&it.Generics)
		r.typ(it.Type)
	case *ast.ItemConst:
		r.generics(&it.Generics)
		r.typ(it.Type)
		r.expr(it.Expr)
	case *ast.ItemStatic:
		r.typ(it.Type)
		r.expr(it.Expr)
	case *ast.ItemImpl:
		r.generics(&it.Generics)
		if it.Trait != nil {
			r.path(&it.Trait.Path)
		}
		r.typ(it.Self)
		for _, ii := range it.Items {
			r.implItem(ii)
		}
	case *ast.ItemMod:
		// a module declared as `mod m;` has no Items here
		r.items(it.Items)
	case *ast.ItemUse, *ast.ItemExternCrate, *ast.ItemForeignMod, *ast.ItemMacro, *ast.ItemVerbatim:
		// opaque
	default:
		r.unknown(it)
	}
}

func (r *Rewriter) traitItem(ti ast.TraitItem) {
	switch ti := ti.(type) {
	case nil:
	case *ast.TraitItemConst:
		r.generics(&ti.Generics)
		r.typ(ti.Type)
		r.expr(ti.Default)
	case *ast.TraitItemFn:
		r.signature(&ti.Sig)
		r.block(ti.Default)
	case *ast.TraitItemType:
		r.generics(&ti.Generics)
		r.bounds(ti.Bounds)
		r.typ(ti.Default)
	case *ast.TraitItemMacro, *ast.TraitItemVerbatim:
		// opaque
	default:
		r.unknown(ti)
	}
}

func (r *Rewriter) implItem(ii ast.ImplItem) {
	switch ii := ii.(type) {
	case nil:
	case *ast.ImplItemConst:
		r.generics(&ii.Generics)
		r.typ(ii.Type)
		r.expr(ii.Expr)
	case *ast.ImplItemFn:
		r.signature(&ii.Sig)
		r.block(ii.Block)
	case *ast.ImplItemType:
		r.generics(&ii.Generics)
		r.typ(ii.Type)
	case *ast.ImplItemMacro, *ast.ImplItemVerbatim:
		// opaque
	default:
		r.unknown(ii)
	}
}

func (r *Rewriter) signature(sig *ast.Signature) {
	r.generics(&sig.Generics)
	for _, in := range sig.Inputs {
		r.fnArg(in)
	}
	r.typ(sig.Output)
}

func (r *Rewriter) fnArg(arg ast.FnArg) {
	switch arg := arg.(type) {
	case nil:
	case *ast.Receiver:
		r.typ(arg.Type)
	case *ast.PatType:
		r.pat(arg)
	default:
		r.unknown(arg)
	}
}

func (r *Rewriter) fields(fs *ast.Fields) {
	for i := range fs.List {
		r.typ(fs.List[i].Type)
	}
}
