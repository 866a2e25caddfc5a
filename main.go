package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/cottand/retype/cmd"
	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "retype [subcommand]",
	Short:        "retype renames type references in syntax trees, exactly as written",
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(cmd.TypesCmd)
	rootCmd.AddCommand(cmd.CheckCmd)
}
