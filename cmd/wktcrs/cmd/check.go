package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	wktcrs "github.com/reoring/wktcrs"
)

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check [file]",
		Short: "Validate WKT and print a one-line summary",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, name, err := a.parseInput(cmd, args)
			if err != nil {
				return err
			}
			kind := c.Family().String()
			if c.IsDerived() {
				kind = "derived " + kind
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%s CRS %q)\n", name, kind, wktcrs.NameOf(c))
			return nil
		},
	}
}
