package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	wktcrs "github.com/reoring/wktcrs"
)

const demoWGS84 = `GEODCRS["WGS84",DATUM["WGS84",ELLIPSOID["WGS84",6378137,298.257223563]],CS[ellipsoidal,2],AXIS["lat",north],AXIS["lon",east]]`

const demoHeight = `VERTCRS["EGM2008 height",VDATUM["EGM2008 geoid"],CS[vertical,1],AXIS["gravity-related height (H)",up],LENGTHUNIT["metre",1]]`

func newDemoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Parse a sample CRS, assemble a compound CRS and print both",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			newline, indent := a.cfg.Layout()

			horizontal, err := wktcrs.Parse(demoWGS84, a.cfg.ParseOpt())
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "# parsed %s CRS %q\n", horizontal.Family(), wktcrs.NameOf(horizontal))
			fmt.Fprintln(out, wktcrs.Serialize(horizontal, newline, indent))

			vertical, err := wktcrs.Parse(demoHeight, a.cfg.ParseOpt())
			if err != nil {
				return err
			}
			compound := wktcrs.NewCompoundCRS("WGS84 + EGM2008 height").
				Append(horizontal).
				Append(vertical)
			compound.Meta().AddIdentifier(wktcrs.NewIdentifier("EPSG", 9705))

			text := wktcrs.Compact(compound)
			if _, err := wktcrs.Parse(text, a.cfg.ParseOpt()); err != nil {
				return fmt.Errorf("compound round trip: %w", err)
			}
			a.log.Debug("compound round trip ok", "bytes", len(text))
			fmt.Fprintf(out, "# assembled compound CRS with %d components\n", len(compound.Components))
			fmt.Fprintln(out, wktcrs.Serialize(compound, newline, indent))
			return nil
		},
	}
}
