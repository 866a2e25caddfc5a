package cmd

import (
	"fmt"
	"log/slog"

	"github.com/cottand/retype/frontend/ast"
	"github.com/cottand/retype/frontend/rterr"
	"github.com/cottand/retype/internal/log"
	"github.com/cottand/retype/subst"
	"github.com/spf13/cobra"
)

var CheckCmd = &cobra.Command{
	Use:          "check table.yaml",
	Short:        "Validate a rename table and print its substitutions",
	RunE:         runCheck,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
}

var (
	checkStrict   *bool
	checkLogLevel *int
)

func init() {
	checkStrict = CheckCmd.Flags().Bool("strict", false, "reject tables where a substitute is also a key")
	checkLogLevel = CheckCmd.Flags().IntP("log-level", "l", int(slog.LevelError), "log level")
}

func runCheck(cmd *cobra.Command, args []string) error {
	log.SetLevel(slog.Level(*checkLogLevel))

	table, err := subst.LoadTable(args[0])
	if err != nil {
		return err
	}
	table.Strict = table.Strict || *checkStrict

	m, errs := mapOf(table)
	if errs != nil {
		return errs
	}

	out := cmd.OutOrStdout()
	for key, value := range m.All() {
		_, _ = fmt.Fprintf(out, "%s -> %s\n", ast.Show(key), ast.Show(value))
	}
	disjoint := "disjoint"
	if !m.Disjoint() {
		disjoint = "not disjoint, rewriting twice may differ from rewriting once"
	}
	_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "%d substitutions, %s\n", m.Len(), disjoint)
	return nil
}

// mapOf builds the Map of table, formatting its errors for the terminal
func mapOf(table *subst.Table) (*subst.Map, error) {
	m, errs := table.Map()
	if !errs.HasError() {
		return m, nil
	}
	return nil, fmt.Errorf("invalid rename table %s:\n%s", table.Path(), formatErrors(table, errs))
}

func formatErrors(table *subst.Table, errs *rterr.Errors) string {
	var lines []byte
	for _, err := range errs.Errors() {
		lines = append(lines, "  "...)
		lines = append(lines, table.Path()...)
		if line := lineOf(table, err); line > 0 {
			lines = fmt.Appendf(lines, ":%d", line)
		}
		lines = append(lines, ": "...)
		lines = append(lines, rterr.FormatWithCode(err)...)
		lines = append(lines, '\n')
	}
	return string(lines)
}

// lineOf finds the YAML line of the table entry err is about, if any
func lineOf(table *subst.Table, err rterr.RetypeError) int {
	var entry int
	switch err := err.(type) {
	case rterr.NewParse:
		entry = err.Entry
	case rterr.NewNotATypePath:
		entry = err.Entry
	case rterr.NewNotConcrete:
		entry = err.Entry
	case rterr.NewConflictingKey:
		entry = err.Entry
	default:
		return 0
	}
	if entry < 0 || entry >= len(table.Substitutions) {
		return 0
	}
	return table.Substitutions[entry].Line
}
