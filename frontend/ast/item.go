package ast

var (
	_ Item = (*ItemConst)(nil)
	_ Item = (*ItemEnum)(nil)
	_ Item = (*ItemExternCrate)(nil)
	_ Item = (*ItemFn)(nil)
	_ Item = (*ItemForeignMod)(nil)
	_ Item = (*ItemImpl)(nil)
	_ Item = (*ItemMacro)(nil)
	_ Item = (*ItemMod)(nil)
	_ Item = (*ItemStatic)(nil)
	_ Item = (*ItemStruct)(nil)
	_ Item = (*ItemTrait)(nil)
	_ Item = (*ItemTraitAlias)(nil)
	_ Item = (*ItemType)(nil)
	_ Item = (*ItemUnion)(nil)
	_ Item = (*ItemUse)(nil)
	_ Item = (*ItemVerbatim)(nil)

	_ TraitItem = (*TraitItemConst)(nil)
	_ TraitItem = (*TraitItemFn)(nil)
	_ TraitItem = (*TraitItemType)(nil)
	_ TraitItem = (*TraitItemMacro)(nil)
	_ TraitItem = (*TraitItemVerbatim)(nil)

	_ ImplItem = (*ImplItemConst)(nil)
	_ ImplItem = (*ImplItemFn)(nil)
	_ ImplItem = (*ImplItemType)(nil)
	_ ImplItem = (*ImplItemMacro)(nil)
	_ ImplItem = (*ImplItemVerbatim)(nil)
)

func (*ItemConst) Describe() string       { return "constant" }
func (*ItemEnum) Describe() string        { return "enum" }
func (*ItemExternCrate) Describe() string { return "extern crate" }
func (*ItemFn) Describe() string          { return "function" }
func (*ItemForeignMod) Describe() string  { return "extern block" }
func (*ItemImpl) Describe() string        { return "impl block" }
func (*ItemMacro) Describe() string       { return "macro item" }
func (*ItemMod) Describe() string         { return "module" }
func (*ItemStatic) Describe() string      { return "static" }
func (*ItemStruct) Describe() string      { return "struct" }
func (*ItemTrait) Describe() string       { return "trait" }
func (*ItemTraitAlias) Describe() string  { return "trait alias" }
func (*ItemType) Describe() string        { return "type alias" }
func (*ItemUnion) Describe() string       { return "union" }
func (*ItemUse) Describe() string         { return "use declaration" }
func (*ItemVerbatim) Describe() string    { return "verbatim item" }

func (*TraitItemConst) Describe() string    { return "associated constant" }
func (*TraitItemFn) Describe() string       { return "associated function" }
func (*TraitItemType) Describe() string     { return "associated type" }
func (*TraitItemMacro) Describe() string    { return "macro in trait" }
func (*TraitItemVerbatim) Describe() string { return "verbatim trait item" }

func (*ImplItemConst) Describe() string    { return "associated constant" }
func (*ImplItemFn) Describe() string       { return "method" }
func (*ImplItemType) Describe() string     { return "associated type" }
func (*ImplItemMacro) Describe() string    { return "macro in impl" }
func (*ImplItemVerbatim) Describe() string { return "verbatim impl item" }

func (*ItemConst) itemNode()       {}
func (*ItemEnum) itemNode()        {}
func (*ItemExternCrate) itemNode() {}
func (*ItemFn) itemNode()          {}
func (*ItemForeignMod) itemNode()  {}
func (*ItemImpl) itemNode()        {}
func (*ItemMacro) itemNode()       {}
func (*ItemMod) itemNode()         {}
func (*ItemStatic) itemNode()      {}
func (*ItemStruct) itemNode()      {}
func (*ItemTrait) itemNode()       {}
func (*ItemTraitAlias) itemNode()  {}
func (*ItemType) itemNode()        {}
func (*ItemUnion) itemNode()       {}
func (*ItemUse) itemNode()         {}
func (*ItemVerbatim) itemNode()    {}

func (*TraitItemConst) traitItemNode()    {}
func (*TraitItemFn) traitItemNode()       {}
func (*TraitItemType) traitItemNode()     {}
func (*TraitItemMacro) traitItemNode()    {}
func (*TraitItemVerbatim) traitItemNode() {}

func (*ImplItemConst) implItemNode()    {}
func (*ImplItemFn) implItemNode()       {}
func (*ImplItemType) implItemNode()     {}
func (*ImplItemMacro) implItemNode()    {}
func (*ImplItemVerbatim) implItemNode() {}

// Visibility of an item, kept verbatim: "", "pub", "pub(crate)"...
type Visibility string

// Signature is everything about a function but its body.
type Signature struct {
	Range
	Const    bool
	Async    bool
	Unsafe   bool
	Abi      string
	Name     string
	Generics Generics
	// Inputs holds at most one leading *Receiver followed by *PatType arguments
	Inputs   []FnArg
	Variadic bool
	// Output is nil for functions returning ()
	Output Type
}

type ItemFn struct {
	Range
	Vis   Visibility
	Sig   Signature
	Block *Block
}

// FieldsKind tells named fields from tuple fields.
type FieldsKind uint8

const (
	FieldsUnit FieldsKind = iota
	FieldsNamed
	FieldsUnnamed
)

// Field of a struct, union or enum variant. Name is "" for tuple fields.
type Field struct {
	Range
	Vis  Visibility
	Name string
	Type Type
}

type Fields struct {
	Kind FieldsKind
	List []Field
}

type ItemStruct struct {
	Range
	Vis      Visibility
	Name     string
	Generics Generics
	Fields   Fields
}

type ItemUnion struct {
	Range
	Vis      Visibility
	Name     string
	Generics Generics
	Fields   Fields
}

type Variant struct {
	Range
	Name   string
	Fields Fields
	// Discriminant is the optional = expr of the variant
	Discriminant Expr
}

type ItemEnum struct {
	Range
	Vis      Visibility
	Name     string
	Generics Generics
	Variants []Variant
}

type ItemTrait struct {
	Range
	Vis         Visibility
	Unsafe      bool
	Auto        bool
	Name        string
	Generics    Generics
	Supertraits []TypeParamBound
	Items       []TraitItem
}

type ItemTraitAlias struct {
	Range
	Vis      Visibility
	Name     string
	Generics Generics
	Bounds   []TypeParamBound
}

type ItemType struct {
	Range
	Vis      Visibility
	Name     string
	Generics Generics
	Type     Type
}

type ItemConst struct {
	Range
	Vis      Visibility
	Name     string
	Generics Generics
	Type     Type
	Expr     Expr
}

type ItemStatic struct {
	Range
	Vis     Visibility
	Mutable bool
	Name    string
	Type    Type
	Expr    Expr
}

type ItemImpl struct {
	Range
	Unsafe   bool
	Generics Generics
	// Trait is nil for inherent impls
	Trait *ImplTrait
	Self  Type
	Items []ImplItem
}

// ImplTrait is the trait part of impl Trait for Self, or impl !Trait for Self.
type ImplTrait struct {
	Range
	Negative bool
	Path     Path
}

type ItemMod struct {
	Range
	Vis  Visibility
	Name string
	// Inline is unset for mod name; declarations whose contents live in another file
	Inline bool
	Items  []Item
}

// ItemUse is a use declaration. The tree is kept as written: it names
// items, not types, and is never rewritten.
type ItemUse struct {
	Range
	Vis  Visibility
	Tree string
}

type ItemExternCrate struct {
	Range
	Vis    Visibility
	Name   string
	Rename string
}

// ItemForeignMod is an extern "C" { ... } block, kept as unparsed tokens.
type ItemForeignMod struct {
	Range
	Abi    string
	Tokens string
}

type ItemMacro struct {
	Range
	// Ident is the name of a macro_rules! definition, or ""
	Ident string
	Mac   Macro
}

type ItemVerbatim struct {
	Range
	Tokens string
}

type TraitItemConst struct {
	Range
	Name     string
	Generics Generics
	Type     Type
	Default  Expr
}

type TraitItemFn struct {
	Range
	Sig Signature
	// Default is the optional provided body
	Default *Block
}

type TraitItemType struct {
	Range
	Name     string
	Generics Generics
	Bounds   []TypeParamBound
	Default  Type
}

type TraitItemMacro struct {
	Range
	Mac Macro
}

type TraitItemVerbatim struct {
	Range
	Tokens string
}

type ImplItemConst struct {
	Range
	Vis      Visibility
	Name     string
	Generics Generics
	Type     Type
	Expr     Expr
}

type ImplItemFn struct {
	Range
	Vis   Visibility
	Sig   Signature
	Block *Block
}

type ImplItemType struct {
	Range
	Vis      Visibility
	Name     string
	Generics Generics
	Type     Type
}

type ImplItemMacro struct {
	Range
	Mac Macro
}

type ImplItemVerbatim struct {
	Range
	Tokens string
}
