package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	premiumerrors "github.com/blackwell-systems/premium-errors"
)

func newParseCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "parse <CODE>...",
		Short: "Validate error code names",
		Long:  "Validate that every argument is an exact premium error code name. Exits non-zero on the first unknown name.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range args {
				code, err := premiumerrors.Parse(name)
				if err != nil {
					opts.logger.Warn("rejected code", "name", name)
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\n", code, code.Ordinal())
			}
			return nil
		},
	}
}
