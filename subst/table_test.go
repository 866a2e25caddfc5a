package subst_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cottand/retype/frontend/ast"
	"github.com/cottand/retype/frontend/rterr"
	"github.com/cottand/retype/subst"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const renames = `
substitutions:
  - from: OldName
    to: NewName
  - from: Vec<Old>
    to: "SmallVec<[Old; 4]>"
  - from: <T as Iterator>::Item
    to: u8
`

func TestParseTable(t *testing.T) {
	table, err := subst.ParseTable([]byte(renames), "renames.yaml")
	require.NoError(t, err)

	assert.False(t, table.Strict)
	assert.Equal(t, "renames.yaml", table.Path())
	require.Len(t, table.Substitutions, 3)
	assert.Equal(t, subst.TableEntry{From: "OldName", To: "NewName", Line: 3}, table.Substitutions[0])
	assert.Equal(t, 7, table.Substitutions[2].Line)

	m, errs := table.Map()
	require.NoError(t, errs.Err())

	var got []string
	for key, value := range m.All() {
		got = append(got, ast.Show(key)+" -> "+ast.Show(value))
	}
	assert.Equal(t, []string{
		"OldName -> NewName",
		"Vec<Old> -> SmallVec<[Old; 4]>",
		"<T as Iterator>::Item -> u8",
	}, got)
}

func TestParseTableErrors(t *testing.T) {
	cases := map[string]struct {
		yaml string
		want string
	}{
		"not yaml":        {"substitutions: [", "decoding rename table t.yaml"},
		"wrong shape":     {"substitutions: 3", "decoding rename table t.yaml"},
		"missing to":      {"substitutions:\n  - from: A\n", "t.yaml:2: substitutions[0] needs both 'from' and 'to'"},
		"missing from":    {"substitutions:\n  - from: A\n    to: B\n  - to: C\n", "t.yaml:4: substitutions[1]"},
		"list for a type": {"substitutions:\n  - from: A\n    to: [B]\n", "decoding rename table t.yaml"},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			table, err := subst.ParseTable([]byte(c.yaml), "t.yaml")

			assert.Nil(t, table)
			assert.ErrorContains(t, err, c.want)
		})
	}
}

func TestTableMapReportsEntries(t *testing.T) {
	table, err := subst.ParseTable([]byte(`
substitutions:
  - from: Fine
    to: Good
  - from: "Vec<"
    to: New
  - from: "&Old"
    to: New
`), "t.yaml")
	require.NoError(t, err)

	m, errs := table.Map()

	assert.Nil(t, m)
	require.Len(t, errs.Errors(), 2)
	parseErr, ok := errs.Errors()[0].(rterr.NewParse)
	require.True(t, ok)
	assert.Equal(t, 1, parseErr.Entry)
	assert.Equal(t, "Vec<", parseErr.Source)
	assert.Contains(t, parseErr.ParserMessage, "end of input")
	assert.EqualValues(t, 5, parseErr.Pos())
	assert.Equal(t, rterr.NotATypePath, errs.Errors()[1].Code())
	assert.Contains(t, errs.Errors()[1].Error(), "entry 2")
}

func TestStrictTable(t *testing.T) {
	table, err := subst.ParseTable([]byte(`
strict: true
substitutions:
  - {from: A, to: B}
  - {from: B, to: C}
`), "t.yaml")
	require.NoError(t, err)
	require.True(t, table.Strict)

	m, errs := table.Map()

	assert.Nil(t, m)
	assert.Equal(t, []rterr.ErrCode{rterr.KeyValueOverlap}, codes(errs))
}

func TestLoadTable(t *testing.T) {
	dir := t.TempDir()
	at := filepath.Join(dir, "renames.yaml")
	require.NoError(t, os.WriteFile(at, []byte(renames), 0o644))

	table, err := subst.LoadTable(at)
	require.NoError(t, err)
	assert.Equal(t, at, table.Path())
	assert.Len(t, table.Substitutions, 3)

	_, err = subst.LoadTable(filepath.Join(dir, "missing.yaml"))
	assert.ErrorContains(t, err, "reading rename table")
	assert.ErrorIs(t, err, os.ErrNotExist)
}
