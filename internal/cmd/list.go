package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	premiumerrors "github.com/blackwell-systems/premium-errors"
)

type codeInfo struct {
	Ordinal   int                `json:"ordinal" yaml:"ordinal"`
	Code      premiumerrors.Code `json:"code" yaml:"code"`
	Status    int                `json:"status" yaml:"status"`
	Retryable bool               `json:"retryable" yaml:"retryable"`
	Warning   bool               `json:"warning" yaml:"warning"`
	Message   string             `json:"message" yaml:"message"`
}

func describeCodes(c *premiumerrors.Catalog) []codeInfo {
	codes := premiumerrors.Codes()
	out := make([]codeInfo, 0, len(codes))
	for _, code := range codes {
		out = append(out, codeInfo{
			Ordinal:   code.Ordinal(),
			Code:      code,
			Status:    c.Status(code),
			Retryable: c.Retryable(code),
			Warning:   code.IsWarning(),
			Message:   c.Message(code),
		})
	}
	return out
}

func newListCmd(opts *options) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every error code",
		Long:  "List every premium error code in declaration order with its default HTTP status, retryable flag and message",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			infos := describeCodes(opts.catalog)
			opts.logger.Debug("listing codes", "count", len(infos), "format", format)
			return writeCodes(cmd.OutOrStdout(), format, infos)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "o", "text", "output format: text, json or yaml")
	return cmd
}

func writeCodes(w io.Writer, format string, infos []codeInfo) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(infos)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(infos); err != nil {
			return err
		}
		return enc.Close()
	case "text":
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "#\tCODE\tSTATUS\tRETRYABLE\tMESSAGE")
		for _, info := range infos {
			fmt.Fprintf(tw, "%d\t%s\t%d\t%t\t%s\n", info.Ordinal, info.Code, info.Status, info.Retryable, info.Message)
		}
		return tw.Flush()
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
