package wktcrs_test

import (
	"fmt"

	wktcrs "github.com/reoring/wktcrs"
)

func ExampleParse() {
	crs, err := wktcrs.Parse(`GEODCRS["WGS84",DATUM["WGS84",ELLIPSOID["WGS84",6378137,298.257223563]],CS[ellipsoidal,2],AXIS["lat",north],AXIS["lon",east]]`)
	if err != nil {
		fmt.Println(err)
		return
	}
	g := crs.(*wktcrs.GeodeticCRS)
	fmt.Println(g.Name, g.Datum.Ellipsoid.SemiMajorAxis, len(g.CoordinateSystem.Axes))
	// Output: WGS84 6378137 2
}

func ExamplePretty() {
	crs := wktcrs.MustParse(`VERTCRS["h",VDATUM["d"],CS[vertical,1],AXIS["H",up],LENGTHUNIT["metre",1]]`)
	fmt.Println(wktcrs.Pretty(crs))
	// Output:
	// VERTCRS["h",
	//     VDATUM["d"],
	//     CS[vertical,1],
	//     AXIS["H",up],
	//     LENGTHUNIT["metre",1]]
}

func ExampleAsIssues() {
	_, err := wktcrs.Parse(`GEODCRS["X",DATUM["X",ELLIPSOID["X",1,1]]`)
	if iss, ok := wktcrs.AsIssues(err); ok {
		fmt.Println(iss[0].Code, iss[0].Offset)
	}
	// Output: unmatched_bracket 7
}
