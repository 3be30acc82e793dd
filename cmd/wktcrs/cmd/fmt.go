package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	wktcrs "github.com/reoring/wktcrs"
)

func newFmtCmd(a *app) *cobra.Command {
	var (
		compact bool
		indent  string
	)
	cmd := &cobra.Command{
		Use:   "fmt [file]",
		Short: "Rewrite WKT in canonical form",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, _, err := a.parseInput(cmd, args)
			if err != nil {
				return err
			}
			newline, ind := a.cfg.Layout()
			if cmd.Flags().Changed("indent") {
				ind = indent
			}
			if compact {
				newline, ind = "", ""
			}
			fmt.Fprintln(cmd.OutOrStdout(), wktcrs.Serialize(c, newline, ind))
			return nil
		},
	}
	cmd.Flags().BoolVar(&compact, "compact", false, "write on a single line")
	cmd.Flags().StringVar(&indent, "indent", "", "indent unit (default from config)")
	return cmd
}
