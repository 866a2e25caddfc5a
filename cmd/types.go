package cmd

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/cottand/retype/frontend/ast"
	"github.com/cottand/retype/internal/log"
	"github.com/cottand/retype/parser"
	"github.com/cottand/retype/rewrite"
	"github.com/cottand/retype/subst"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var TypesCmd = &cobra.Command{
	Use:   "types [file]",
	Short: "Rewrite type references, one per line, with a rename table",
	Long: `Reads one type per line from file (or stdin) and prints each one
rewritten with the substitutions of --map. Blank lines and lines starting
with # are printed unchanged.`,
	RunE:         runTypes,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
}

var (
	typesMapPath  *string
	typesStrict   *bool
	typesJobs     *int
	typesStats    *bool
	typesLogLevel *int
)

func init() {
	typesMapPath = TypesCmd.Flags().StringP("map", "m", "", "rename table (YAML)")
	typesStrict = TypesCmd.Flags().Bool("strict", false, "reject tables where a substitute is also a key")
	typesJobs = TypesCmd.Flags().IntP("jobs", "j", 0, "maximum number of types rewritten at once, 0 for no limit")
	typesStats = TypesCmd.Flags().Bool("stats", false, "print the number of replacements to stderr")
	typesLogLevel = TypesCmd.Flags().IntP("log-level", "l", int(slog.LevelError), "log level")
	_ = TypesCmd.MarkFlagRequired("map")
}

// typeLine is one input line: either a parsed type or text passed through as is
type typeLine struct {
	typ  ast.Type
	text string
}

func runTypes(cmd *cobra.Command, args []string) error {
	log.SetLevel(slog.Level(*typesLogLevel))
	logger := log.Section("cli")

	table, err := subst.LoadTable(*typesMapPath)
	if err != nil {
		return err
	}
	table.Strict = table.Strict || *typesStrict
	m, err := mapOf(table)
	if err != nil {
		return err
	}

	in, name, err := openInput(cmd, args)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	lines, err := readTypes(in, name)
	if err != nil {
		return err
	}

	var roots []ast.Node
	for _, line := range lines {
		if line.typ != nil {
			roots = append(roots, line.typ)
		}
	}
	stats, err := rewrite.ApplyAll(cmd.Context(), roots, m, *typesJobs)
	if err != nil {
		return fmt.Errorf("rewriting %s: %w", name, err)
	}
	logger.Info("rewrote types", "file", name, "types", len(roots), "stats", stats)

	out := bufio.NewWriter(cmd.OutOrStdout())
	for _, line := range lines {
		if line.typ != nil {
			_, _ = fmt.Fprintln(out, ast.Show(line.typ))
		} else {
			_, _ = fmt.Fprintln(out, line.text)
		}
	}
	if err := out.Flush(); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	if *typesStats {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "%d replaced in %d types\n", stats.Replaced, len(roots))
	}
	return nil
}

// openInput opens the file named in args, or stdin when there is none
func openInput(cmd *cobra.Command, args []string) (io.ReadCloser, string, error) {
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, "", fmt.Errorf("could not open input: %w", err)
		}
		return f, args[0], nil
	}
	if f, ok := cmd.InOrStdin().(*os.File); ok {
		if isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()) {
			return nil, "", fmt.Errorf("no input: pass a file or pipe types into stdin")
		}
	}
	return io.NopCloser(cmd.InOrStdin()), "<stdin>", nil
}

func readTypes(r io.Reader, name string) ([]typeLine, error) {
	var lines []typeLine
	scanner := bufio.NewScanner(r)
	for n := 1; scanner.Scan(); n++ {
		text := scanner.Text()
		trimmed := strings.TrimSpace(text)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			lines = append(lines, typeLine{text: text})
			continue
		}
		t, err := parser.ParseType(trimmed)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", name, n, err)
		}
		lines = append(lines, typeLine{typ: t})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	return lines, nil
}
