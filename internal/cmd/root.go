// Package cmd implements the premiumcodes command line tool, which exports
// the premium error taxonomy for analytics pipelines and client teams.
package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	premiumerrors "github.com/blackwell-systems/premium-errors"
)

type options struct {
	catalogPath string
	verbose     bool

	catalog *premiumerrors.Catalog
	logger  *slog.Logger
}

// NewRootCmd builds the premiumcodes command tree.
func NewRootCmd(out, errOut io.Writer) *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "premiumcodes",
		Short: "Inspect the premium purchase error taxonomy",
		Long: `premiumcodes lists, validates and classifies premium purchase error codes.

Code names are a stable contract: analytics and client teams can use this
tool to export the exact set the services emit.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if opts.verbose {
				level = slog.LevelDebug
			}
			opts.logger = slog.New(slog.NewTextHandler(errOut, &slog.HandlerOptions{Level: level}))

			if opts.catalogPath == "" {
				return nil
			}
			c, err := premiumerrors.LoadCatalogFile(opts.catalogPath)
			if err != nil {
				return err
			}
			opts.catalog = c
			opts.logger.Debug("catalog loaded", "path", opts.catalogPath, "overrides", c.Len())
			return nil
		},
	}
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	rootCmd.PersistentFlags().StringVar(&opts.catalogPath, "catalog", "", "YAML catalog with per-code overrides")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(newListCmd(opts))
	rootCmd.AddCommand(newParseCmd(opts))
	rootCmd.AddCommand(newClassifyCmd(opts))

	return rootCmd
}

// Execute runs the root command with os.Args.
func Execute() {
	if err := NewRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
