package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/farzaaaan/dupnames/cmd/scan"
)

// version is overridden at build time with -ldflags "-X".
var version = "1.0"

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	opts := &scanOptions{}

	c := &cobra.Command{
		Use:   "dupnames <path>",
		Short: "Find files sharing the same name in a directory tree",
		Long: `dupnames walks a directory tree and reports every file name (name + extension)
that appears at more than one path. Only names are compared, never contents.

A directory literally named "blob" is read as the blob subcommand; scan it as ./blob.`,
		Version:       version,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			root := args[0]
			return runScan(cmd, opts, root, func(log *zap.Logger) (scan.Source, error) {
				return scan.NewLocalSource(root, log), nil
			})
		},
	}

	opts.bind(c)
	c.AddCommand(newBlobCmd(opts))
	return c
}

// Execute runs the root command (called by main.go)
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
