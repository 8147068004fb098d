package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	premiumerrors "github.com/blackwell-systems/premium-errors"
)

func newClassifyCmd(opts *options) *cobra.Command {
	var debugMessage string

	cmd := &cobra.Command{
		Use:   "classify <operation> <response-code>",
		Short: "Map a billing client response code to an error code",
		Long: `Map a billing client response code to a premium error code.

Operations: setup, purchase, acknowledge, consume.
The response code may be given by name (ITEM_NOT_OWNED) or value (8).
Negative values must follow "--", e.g. classify setup -- -1.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			op, err := premiumerrors.ParseOperation(args[0])
			if err != nil {
				return err
			}
			rc, err := premiumerrors.ParseResponseCode(args[1])
			if err != nil {
				return err
			}

			e := opts.catalog.Apply(premiumerrors.FromResult(op, rc, debugMessage))
			if e == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "OK")
				return nil
			}
			opts.logger.Debug("classified", "error", e)

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(e)
		},
	}
	cmd.Flags().StringVarP(&debugMessage, "message", "m", "", "debug message reported by the billing client")
	return cmd
}
