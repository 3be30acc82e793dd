package cmd

import (
	"github.com/spf13/cobra"

	"github.com/reoring/wktcrs/export"
)

func newExportCmd(a *app) *cobra.Command {
	var (
		format string
		indent string
	)
	cmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Write the parsed model as JSON or YAML",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := export.ParseFormat(format)
			if err != nil {
				return err
			}
			c, _, err := a.parseInput(cmd, args)
			if err != nil {
				return err
			}
			b, err := export.Render(c, f, indent)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if _, err := out.Write(b); err != nil {
				return err
			}
			if f == export.FormatJSON {
				_, err = out.Write([]byte("\n"))
			}
			return err
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "json", "output format: json or yaml")
	cmd.Flags().StringVar(&indent, "indent", "  ", "JSON indent unit; empty for compact")
	return cmd
}
