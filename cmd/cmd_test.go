package cmd_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cottand/retype/cmd"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	at := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(at, []byte(content), 0o644))
	return at
}

func execute(c *cobra.Command, stdin string, args ...string) (stdout, stderr string, err error) {
	var out, errOut bytes.Buffer
	c.SetIn(strings.NewReader(stdin))
	c.SetOut(&out)
	c.SetErr(&errOut)
	c.SetArgs(args)
	err = c.Execute()
	return out.String(), errOut.String(), err
}

const table = `
substitutions:
  - from: OldName
    to: NewName
  - from: Vec<OldName>
    to: Names
`

func TestTypesFromStdin(t *testing.T) {
	tablePath := writeFile(t, "renames.yaml", table)
	input := strings.Join([]string{
		"# header",
		"HashMap<String, OldName>",
		"",
		"Vec<OldName>",
		"fn(&OldName) -> Option<OldName>",
		"  <OldName as Trait>::Assoc  ",
		"other::OldName",
	}, "\n")

	stdout, stderr, err := execute(cmd.TypesCmd, input, "--map", tablePath, "--stats")

	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		"# header",
		"HashMap<String, NewName>",
		"",
		"Names",
		"fn(&NewName) -> Option<NewName>",
		"<NewName as Trait>::Assoc",
		"other::OldName",
	}, "\n")+"\n", stdout)
	assert.Equal(t, "5 replaced in 5 types\n", stderr)
}

func TestTypesFromFile(t *testing.T) {
	tablePath := writeFile(t, "renames.yaml", table)
	inputPath := writeFile(t, "types.txt", "[OldName; 4]\n")

	stdout, _, err := execute(cmd.TypesCmd, "", "--map", tablePath, "--jobs", "2", "--stats=false", inputPath)

	require.NoError(t, err)
	assert.Equal(t, "[NewName; 4]\n", stdout)
}

func TestTypesErrors(t *testing.T) {
	tablePath := writeFile(t, "renames.yaml", table)
	badTable := writeFile(t, "bad.yaml", "substitutions:\n  - from: OldName\n    to: \"&New\"\n")

	cases := map[string]struct {
		stdin string
		args  []string
		want  string
	}{
		"bad type": {
			stdin: "Vec<OldName>\nVec<\n",
			args:  []string{"--map", tablePath},
			want:  "<stdin>:2:",
		},
		"missing table": {
			args: []string{"--map", filepath.Join(t.TempDir(), "none.yaml")},
			want: "reading rename table",
		},
		"invalid table": {
			args: []string{"--map", badTable},
			want: "bad.yaml:2: (E002) entry 0",
		},
		"missing input file": {
			args: []string{"--map", tablePath, filepath.Join(t.TempDir(), "none.txt")},
			want: "could not open input",
		},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			_, _, err := execute(cmd.TypesCmd, c.stdin, c.args...)

			assert.ErrorContains(t, err, c.want)
		})
	}
}

func TestCheck(t *testing.T) {
	tablePath := writeFile(t, "renames.yaml", table)

	stdout, stderr, err := execute(cmd.CheckCmd, "", tablePath, "--strict=false")

	require.NoError(t, err)
	assert.Equal(t, "OldName -> NewName\nVec<OldName> -> Names\n", stdout)
	assert.Equal(t, "2 substitutions, disjoint\n", stderr)
}

func TestCheckStrict(t *testing.T) {
	overlapping := writeFile(t, "overlap.yaml", "substitutions:\n  - {from: A, to: B}\n  - {from: B, to: C}\n")

	_, stderr, err := execute(cmd.CheckCmd, "", overlapping, "--strict=false")
	require.NoError(t, err)
	assert.Contains(t, stderr, "not disjoint")

	_, _, err = execute(cmd.CheckCmd, "", overlapping, "--strict")
	assert.ErrorContains(t, err, "(E005) 'B' is both substituted and a substitute")
}
