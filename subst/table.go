package subst

import (
	"go/token"
	"os"

	"github.com/cottand/retype/frontend/ast"
	"github.com/cottand/retype/frontend/rterr"
	"github.com/cottand/retype/parser"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Table is a rename table as written by users, for example:
//
//	strict: true
//	substitutions:
//	  - from: OldName
//	    to: NewName
//	  - from: Vec<Old>
//	    to: SmallVec<[Old; 4]>
type Table struct {
	// Strict rejects tables where a substitute is also a key
	Strict        bool         `yaml:"strict,omitempty"`
	Substitutions []TableEntry `yaml:"substitutions"`

	path string
}

// TableEntry is one from/to pair of a Table, still in source form.
type TableEntry struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`

	// Line is the line of the entry in its YAML document, 0 if unknown
	Line int `yaml:"-"`
}

func (e *TableEntry) UnmarshalYAML(node *yaml.Node) error {
	type plain TableEntry
	var decoded plain
	if err := node.Decode(&decoded); err != nil {
		return err
	}
	*e = TableEntry(decoded)
	e.Line = node.Line
	return nil
}

// LoadTable reads and decodes the rename table at path.
func LoadTable(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading rename table")
	}
	return ParseTable(data, path)
}

// ParseTable decodes a rename table from YAML.
// The path argument is used only for error messages.
func ParseTable(data []byte, path string) (*Table, error) {
	var t Table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, errors.Wrapf(err, "decoding rename table %s", path)
	}
	for i, entry := range t.Substitutions {
		if entry.From == "" || entry.To == "" {
			return nil, errors.Errorf("%s:%d: substitutions[%d] needs both 'from' and 'to'", path, entry.Line, i)
		}
	}
	t.path = path
	return &t, nil
}

// Path is where the table was read from, as passed to LoadTable or ParseTable.
func (t *Table) Path() string {
	return t.path
}

// Map parses every entry and builds the substitution Map. Entries are
// numbered in table order, so errors point at the offending entry.
func (t *Table) Map() (*Map, *rterr.Errors) {
	b := NewBuilder()
	b.RequireDisjoint = t.Strict

	var errs *rterr.Errors
	for i, entry := range t.Substitutions {
		from, fromErr := parseEntrySide(i, entry.From)
		to, toErr := parseEntrySide(i, entry.To)
		if fromErr != nil || toErr != nil {
			errs = errs.With(nonNil(fromErr, toErr)...)
			// keep Builder numbering in step with the table
			b.added++
			continue
		}
		b.Add(from, to)
	}

	m, buildErrs := b.Build()
	errs = errs.Merge(buildErrs)
	if errs.HasError() {
		return nil, errs
	}
	return m, nil
}

func parseEntrySide(entry int, src string) (ast.Type, rterr.RetypeError) {
	t, err := parser.ParseType(src)
	if err == nil {
		return t, nil
	}
	parseErr := rterr.NewParse{
		Entry:         entry,
		Source:        src,
		ParserMessage: err.Error(),
	}
	var perr *parser.ParseError
	if errors.As(err, &perr) {
		at := token.Pos(perr.Offset + 1)
		parseErr.Positioner = ast.Range{PosStart: at, PosEnd: at}
		parseErr.ParserMessage = perr.Msg
	} else {
		parseErr.Positioner = ast.Range{}
	}
	return nil, rterr.New(parseErr)
}

func nonNil(errs ...rterr.RetypeError) []rterr.RetypeError {
	var out []rterr.RetypeError
	for _, err := range errs {
		if err != nil {
			out = append(out, err)
		}
	}
	return out
}
