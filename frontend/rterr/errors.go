package rterr

import (
	"fmt"
	"runtime/debug"
	"strings"

	"github.com/cottand/retype/frontend/ast"
)

// enableDebugErrorPrinting makes errors include their stacktrace when printed
const enableDebugErrorPrinting bool = false
const enableDebugFullStacktrace bool = false

type ErrCode int

const (
	None ErrCode = iota
	Parse
	NotATypePath
	NotConcrete
	ConflictingKey
	KeyValueOverlap
)

type RetypeError interface {
	Error() string
	Code() ErrCode
	ast.Positioner

	withStack([]byte) RetypeError
	getStack() []byte
}

func FormatWithCode(e RetypeError) string {
	if enableDebugErrorPrinting && e.getStack() != nil {
		stack := string(e.getStack())
		if !enableDebugFullStacktrace {
			if lines := strings.Split(stack, "\n"); len(lines) > 6 {
				stack = lines[6]
			}
		}
		return fmt.Sprintf("%s:(E%03d) %s", stack, e.Code(), e.Error())
	}
	return fmt.Sprintf("(E%03d) %s", e.Code(), e.Error())
}

func New[E RetypeError](err E) RetypeError {
	return err.withStack(debug.Stack())
}

type Unclassified struct {
	From error
	ast.Positioner
	stack []byte
}

func (e Unclassified) Error() string {
	return fmt.Sprintf("unclassified error: %v", e.From)
}
func (e Unclassified) Code() ErrCode    { return None }
func (e Unclassified) getStack() []byte { return e.stack }
func (e Unclassified) withStack(stack []byte) RetypeError {
	e.stack = stack
	return e
}

// NewParse is an entry of a rename table which is not valid type syntax.
type NewParse struct {
	ast.Positioner
	// Entry is the index of the offending entry in its table
	Entry         int
	Source        string
	ParserMessage string
	stack         []byte
}

func (e NewParse) Error() string {
	return fmt.Sprintf("entry %d: could not parse '%s': %s", e.Entry, e.Source, e.ParserMessage)
}
func (e NewParse) Code() ErrCode    { return Parse }
func (e NewParse) getStack() []byte { return e.stack }
func (e NewParse) withStack(stack []byte) RetypeError {
	e.stack = stack
	return e
}

// NewNotATypePath is a key or value which is a type, but not a type reference.
type NewNotATypePath struct {
	ast.Positioner
	Entry int
	Type  ast.Type
	stack []byte
}

func (e NewNotATypePath) Error() string {
	return fmt.Sprintf("entry %d: '%s' is a %s, but only type paths can be substituted", e.Entry, ast.TypeString(e.Type), e.Type.Describe())
}
func (e NewNotATypePath) Code() ErrCode    { return NotATypePath }
func (e NewNotATypePath) getStack() []byte { return e.stack }
func (e NewNotATypePath) withStack(stack []byte) RetypeError {
	e.stack = stack
	return e
}

// NewNotConcrete is a key or value containing an inferred placeholder.
type NewNotConcrete struct {
	ast.Positioner
	Entry int
	Type  *ast.TypePath
	stack []byte
}

func (e NewNotConcrete) Error() string {
	return fmt.Sprintf("entry %d: '%s' is not fully concrete: placeholders (_) never match", e.Entry, ast.TypeString(e.Type))
}
func (e NewNotConcrete) Code() ErrCode    { return NotConcrete }
func (e NewNotConcrete) getStack() []byte { return e.stack }
func (e NewNotConcrete) withStack(stack []byte) RetypeError {
	e.stack = stack
	return e
}

type NewConflictingKey struct {
	ast.Positioner
	Entry  int
	Key    *ast.TypePath
	First  *ast.TypePath
	Second *ast.TypePath
	stack  []byte
}

func (e NewConflictingKey) Error() string {
	return fmt.Sprintf("entry %d: '%s' is already substituted by '%s', cannot also substitute it by '%s'",
		e.Entry, ast.TypeString(e.Key), ast.TypeString(e.First), ast.TypeString(e.Second))
}
func (e NewConflictingKey) Code() ErrCode    { return ConflictingKey }
func (e NewConflictingKey) getStack() []byte { return e.stack }
func (e NewConflictingKey) withStack(stack []byte) RetypeError {
	e.stack = stack
	return e
}

// NewKeyValueOverlap is a substitution value which is also a key, which
// makes rewriting a tree twice differ from rewriting it once.
type NewKeyValueOverlap struct {
	ast.Positioner
	Value *ast.TypePath
	stack []byte
}

func (e NewKeyValueOverlap) Error() string {
	return fmt.Sprintf("'%s' is both substituted and a substitute", ast.TypeString(e.Value))
}
func (e NewKeyValueOverlap) Code() ErrCode    { return KeyValueOverlap }
func (e NewKeyValueOverlap) getStack() []byte { return e.stack }
func (e NewKeyValueOverlap) withStack(stack []byte) RetypeError {
	e.stack = stack
	return e
}
