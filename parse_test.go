package wktcrs_test

import (
	"errors"
	"reflect"
	"strings"
	"sync"
	"testing"

	wktcrs "github.com/reoring/wktcrs"
)

const wgs84 = `GEODCRS["WGS84",DATUM["WGS84",ELLIPSOID["WGS84",6378137,298.257223563]],CS[ellipsoidal,2],AXIS["lat",north],AXIS["lon",east]]`

func mustParse(t *testing.T, text string) wktcrs.CRS {
	t.Helper()
	c, err := wktcrs.Parse(text)
	if err != nil {
		t.Fatalf("parse: %v\ninput: %s", err, text)
	}
	return c
}

func expectCode(t *testing.T, text, code string) wktcrs.Issue {
	t.Helper()
	c, err := wktcrs.Parse(text)
	if err == nil {
		t.Fatalf("expected %s, got model %T\ninput: %s", code, c, text)
	}
	if c != nil {
		t.Fatalf("expected no partial model on error")
	}
	iss, ok := wktcrs.AsIssues(err)
	if !ok || len(iss) != 1 {
		t.Fatalf("expected exactly one issue, got %v", err)
	}
	if iss[0].Code != code {
		t.Fatalf("code %s, want %s (%v)\ninput: %s", iss[0].Code, code, err, text)
	}
	return iss[0]
}

// TestParse_WGS84 checks the reference geodetic CRS field by field and its
// exact compact round trip.
func TestParse_WGS84(t *testing.T) {
	c := mustParse(t, wgs84)
	g, ok := c.(*wktcrs.GeodeticCRS)
	if !ok {
		t.Fatalf("expected *GeodeticCRS, got %T", c)
	}
	if g.Name != "WGS84" || g.Geographic {
		t.Fatalf("unexpected name/geographic: %q %v", g.Name, g.Geographic)
	}
	if g.Datum == nil || g.Datum.Name != "WGS84" || g.Datum.Ellipsoid == nil {
		t.Fatalf("unexpected datum: %+v", g.Datum)
	}
	ell := g.Datum.Ellipsoid
	if ell.SemiMajorAxis.Value != 6378137 || ell.InverseFlattening.Value != 298.257223563 {
		t.Fatalf("unexpected ellipsoid: %+v", ell)
	}
	cs := g.CoordinateSystem
	if cs == nil || cs.Type != "ellipsoidal" || cs.Dimension != 2 || len(cs.Axes) != 2 {
		t.Fatalf("unexpected cs: %+v", cs)
	}
	if cs.Axes[0].Name != "lat" || cs.Axes[0].Direction != "north" || cs.Axes[1].Name != "lon" || cs.Axes[1].Direction != "east" {
		t.Fatalf("unexpected axes: %+v %+v", cs.Axes[0], cs.Axes[1])
	}
	if g.Family() != wktcrs.FamilyGeodetic || g.IsDerived() || wktcrs.NameOf(g) != "WGS84" {
		t.Fatalf("unexpected classification")
	}
	if got := wktcrs.Serialize(c, "", ""); got != wgs84 {
		t.Fatalf("round trip mismatch:\n got: %s\nwant: %s", got, wgs84)
	}
}

func TestParse_MissingClosingBracket(t *testing.T) {
	it := expectCode(t, `GEODCRS["X",DATUM["X",ELLIPSOID["X",1,1]]`, wktcrs.CodeUnmatchedBracket)
	if it.Offset != 7 {
		t.Fatalf("expected the root bracket offset 7, got %d", it.Offset)
	}
}

func TestParse_UnrecognizedAxisKeyword(t *testing.T) {
	text := `GEODCRS["WGS84",DATUM["WGS84",ELLIPSOID["WGS84",6378137,298.257223563]],CS[ellipsoidal,2],AXSI["lat",north]]`
	it := expectCode(t, text, wktcrs.CodeUnrecognizedElement)
	if it.Keyword != "AXSI" || !strings.Contains(it.Message, "AXSI") {
		t.Fatalf("issue must name the keyword: %+v", it)
	}
	if it.Path != "/GEODCRS/AXSI" || it.Offset != strings.Index(text, "AXSI") {
		t.Fatalf("unexpected location: %s @%d", it.Path, it.Offset)
	}
}

func TestParse_QuoteImmunity(t *testing.T) {
	c := mustParse(t, `ENGCRS["a,b]",EDATUM["[x]"],CS[Cartesian,1],AXIS["x, the first",east]]`)
	e := c.(*wktcrs.EngineeringCRS)
	if e.Name != "a,b]" || e.Datum.Name != "[x]" || e.CoordinateSystem.Axes[0].Name != "x, the first" {
		t.Fatalf("quoted separators leaked: %+v", e)
	}
}

func TestParse_KeywordSynonyms(t *testing.T) {
	pairs := [][2]string{
		{wgs84, `GeodeticCRS["WGS84",GEODETICDATUM["WGS84",SPHEROID["WGS84",6378137,298.257223563]],cs[ellipsoidal,2],axis["lat",north],Axis["lon",east]]`},
		{wgs84, `GEODCRS["WGS84",TRF["WGS84",ELLIPSOID["WGS84",6378137,298.257223563]],CS[ellipsoidal,2],AXIS["lat",north],AXIS["lon",east]]`},
		{
			`VERTCRS["h",VDATUM["d",ID["EPSG",5103]],CS[vertical,1],AXIS["H",up],LENGTHUNIT["metre",1]]`,
			`VERTICALCRS["h",VERTICALDATUM["d",AUTHORITY["EPSG",5103]],CS[vertical,1],AXIS["H",up],LENGTHUNIT["metre",1]]`,
		},
		{
			`PROJCRS["p",BASEGEODCRS["b",DATUM["d",ELLIPSOID["e",1,1]]],CONVERSION["c",METHOD["m"]],CS[Cartesian,2],AXIS["x",east],AXIS["y",north]]`,
			`PROJECTEDCRS["p",BASEGEODCRS["b",DATUM["d",ELLIPSOID["e",1,1]]],CONVERSION["c",PROJECTION["m"]],CS[Cartesian,2],AXIS["x",east],AXIS["y",north]]`,
		},
		{
			`TIMECRS["t",TDATUM["d"],CS[temporal,1],AXIS["time",future],TIMEUNIT["day",86400]]`,
			`TIMECRS["t",TIMEDATUM["d"],CS[temporal,1],AXIS["time",future],TEMPORALQUANTITY["day",86400]]`,
		},
	}
	for _, p := range pairs {
		a, b := mustParse(t, p[0]), mustParse(t, p[1])
		if !reflect.DeepEqual(a, b) {
			t.Fatalf("synonyms produced different models:\n%s\n%s", p[0], p[1])
		}
		if got := wktcrs.Compact(b); got != p[0] {
			t.Fatalf("synonym not normalized:\n got: %s\nwant: %s", got, p[0])
		}
	}
}

func TestParse_GeographicKeepsKeyword(t *testing.T) {
	c := mustParse(t, strings.Replace(wgs84, "GEODCRS", "GEOGRAPHICCRS", 1))
	g := c.(*wktcrs.GeodeticCRS)
	if !g.Geographic {
		t.Fatalf("GEOGRAPHICCRS must set Geographic")
	}
	if got := wktcrs.Compact(g); !strings.HasPrefix(got, `GEOGCRS["WGS84"`) {
		t.Fatalf("unexpected keyword: %s", got)
	}
}

func TestParse_DerivedDisambiguation(t *testing.T) {
	plain := mustParse(t, wgs84)
	if _, ok := plain.(*wktcrs.GeodeticCRS); !ok {
		t.Fatalf("plain body must resolve to *GeodeticCRS, got %T", plain)
	}

	derived := mustParse(t, `GEODCRS["Rotated",BASEGEODCRS["WGS84",DATUM["WGS84",ELLIPSOID["WGS84",6378137,298.257223563]]],DERIVINGCONVERSION["Pole rotation",METHOD["Pole rotation"],PARAMETER["Latitude of rotated pole",52,ANGLEUNIT["degree",0.0174532925199433]]],CS[ellipsoidal,2],AXIS["lat",north],AXIS["lon",east]]`)
	d, ok := derived.(*wktcrs.DerivedCRS)
	if !ok {
		t.Fatalf("derived body must resolve to *DerivedCRS, got %T", derived)
	}
	if d.Family() != wktcrs.FamilyGeodetic || !d.IsDerived() || d.Base.Name != "WGS84" {
		t.Fatalf("unexpected derived CRS: %+v", d)
	}
	p, ok := d.Conversion.Parameter("Latitude of rotated pole")
	if !ok || p.Value.Value != 52 || p.Unit.Kind != wktcrs.UnitAngle {
		t.Fatalf("unexpected parameter: %+v", p)
	}

	vert := mustParse(t, `VERTCRS["dh",BASEVERTCRS["NAVD88",VDATUM["NAVD88"]],DERIVINGCONVERSION["Offset",METHOD["Vertical offset"]],CS[vertical,1],AXIS["h",up]]`)
	if dv, ok := vert.(*wktcrs.DerivedCRS); !ok || dv.Family() != wktcrs.FamilyVertical {
		t.Fatalf("expected derived vertical CRS, got %T", vert)
	}
}

func TestParse_CompoundComponentsUseOwnFlags(t *testing.T) {
	text := `COMPOUNDCRS["UTM + height",` +
		`PROJCRS["UTM",BASEGEODCRS["WGS84",DATUM["WGS84",ELLIPSOID["WGS84",6378137,298.257223563]]],CONVERSION["UTM",METHOD["TM"]],CS[Cartesian,2],AXIS["E",east],AXIS["N",north]],` +
		`VERTCRS["h",VDATUM["d"],CS[vertical,1],AXIS["H",up]]]`
	c := mustParse(t, text)
	cc, ok := c.(*wktcrs.CompoundCRS)
	if !ok || len(cc.Components) != 2 {
		t.Fatalf("unexpected compound: %T %+v", c, c)
	}
	if _, ok := cc.Components[0].(*wktcrs.ProjectedCRS); !ok {
		t.Fatalf("first component must be projected, got %T", cc.Components[0])
	}
	if _, ok := cc.Components[1].(*wktcrs.VerticalCRS); !ok {
		t.Fatalf("second component must stay plain, got %T", cc.Components[1])
	}
	if got := wktcrs.Compact(c); got != text {
		t.Fatalf("round trip mismatch:\n got: %s\nwant: %s", got, text)
	}
}

func TestParse_Errors(t *testing.T) {
	const datum = `DATUM["X",ELLIPSOID["X",1,1]]`
	cases := []struct {
		name string
		text string
		code string
	}{
		{"unterminated text", `GEODCRS["X]`, wktcrs.CodeUnterminatedText},
		{"trailing text", wgs84 + `x`, wktcrs.CodeSyntax},
		{"unknown root", `FOO["x"]`, wktcrs.CodeUnrecognizedElement},
		{"missing attribute", `GEODCRS["X",DATUM["X",ELLIPSOID["X",1]],CS[ellipsoidal,2]]`, wktcrs.CodeMissingAttribute},
		{"missing name", `GEODCRS[` + datum + `,CS[ellipsoidal,2]]`, wktcrs.CodeMissingAttribute},
		{"extra attribute", `GEODCRS["X",DATUM["X",ELLIPSOID["X",1,1,1]],CS[ellipsoidal,2]]`, wktcrs.CodeUnexpectedAttribute},
		{"quoted number", `GEODCRS["X",DATUM["X",ELLIPSOID["X","1",1]],CS[ellipsoidal,2]]`, wktcrs.CodeInvalidLiteral},
		{"bare name", `GEODCRS[X,` + datum + `,CS[ellipsoidal,2]]`, wktcrs.CodeInvalidLiteral},
		{"quoted token", `GEODCRS["X",` + datum + `,CS["ellipsoidal",2]]`, wktcrs.CodeInvalidLiteral},
		{"fractional dimension", `GEODCRS["X",` + datum + `,CS[ellipsoidal,2.5]]`, wktcrs.CodeInvalidLiteral},
		{"bad temporal", `TIMECRS["t",TDATUM["d",TIMEORIGIN[yesterday]],CS[temporal,1]]`, wktcrs.CodeInvalidLiteral},
		{"missing cs", `GEODCRS["X",` + datum + `]`, wktcrs.CodeMissingElement},
		{"missing datum", `GEODCRS["X",CS[ellipsoidal,2]]`, wktcrs.CodeMissingElement},
		{"missing ellipsoid", `GEODCRS["X",DATUM["X"],CS[ellipsoidal,2]]`, wktcrs.CodeMissingElement},
		{"axis before cs", `GEODCRS["X",` + datum + `,AXIS["lat",north],CS[ellipsoidal,2]]`, wktcrs.CodeMissingElement},
		{"usage without scope", wgs84[:len(wgs84)-1] + `,USAGE[AREA["World"]]]`, wktcrs.CodeMissingElement},
		{"derived without base", `GEODCRS["X",DERIVINGCONVERSION["c",METHOD["m"]],CS[ellipsoidal,2]]`, wktcrs.CodeMissingElement},
		{"duplicate datum", `GEODCRS["X",` + datum + `,` + datum + `,CS[ellipsoidal,2]]`, wktcrs.CodeDuplicateElement},
		{"duplicate cs", `GEODCRS["X",` + datum + `,CS[ellipsoidal,2],CS[ellipsoidal,2]]`, wktcrs.CodeDuplicateElement},
		{"wrong unit kind", `GEODCRS["X",DATUM["X",ELLIPSOID["X",1,1,ANGLEUNIT["degree",1]]],CS[ellipsoidal,2]]`, wktcrs.CodeUnrecognizedElement},
		{"wrong datum family", `VERTCRS["v",DATUM["X",ELLIPSOID["X",1,1]],CS[vertical,1]]`, wktcrs.CodeUnrecognizedElement},
		{"nested compound", `COMPOUNDCRS["a",COMPOUNDCRS["b",` + strings.TrimSuffix(wgs84, "]") + `]]]`, wktcrs.CodeUnrecognizedElement},
		{"projected without conversion", `PROJCRS["p",BASEGEODCRS["b",` + datum + `],CS[Cartesian,2]]`, wktcrs.CodeAmbiguousRoot},
		{"missing separator", `GEODCRS["X",` + datum + `CS[ellipsoidal,2]]`, wktcrs.CodeSyntax},
		{"empty value", `GEODCRS["X",DATUM["X",ELLIPSOID["X",1,,1]],CS[ellipsoidal,2]]`, wktcrs.CodeSyntax},
		{"trailing separator", `GEODCRS["X",` + datum + `,CS[ellipsoidal,2],AXIS["lat",north,]]`, wktcrs.CodeSyntax},
		{"infinite number", `GEODCRS["X",DATUM["X",ELLIPSOID["X",Inf,NaN]],CS[ellipsoidal,2]]`, wktcrs.CodeInvalidLiteral},
		{"hex number", `GEODCRS["X",DATUM["X",ELLIPSOID["X",0x1p3,1]],CS[ellipsoidal,2]]`, wktcrs.CodeInvalidLiteral},
		{"non-numeric code", wgs84[:len(wgs84)-1] + `,ID["EPSG",infinity]]`, wktcrs.CodeInvalidLiteral},
		{"duplicate empty remark", wgs84[:len(wgs84)-1] + `,REMARK[""],REMARK["x"]]`, wktcrs.CodeDuplicateElement},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			expectCode(t, tc.text, tc.code)
		})
	}
}

func TestParse_EmptyTextLeaves(t *testing.T) {
	c := mustParse(t, wgs84[:len(wgs84)-1]+`,USAGE[SCOPE[""]],REMARK[""]]`)
	m := c.Meta()
	if len(m.Usages) != 1 || m.Usages[0].Scope == nil || *m.Usages[0].Scope != "" {
		t.Fatalf("empty SCOPE must be present: %+v", m.Usages)
	}
	if m.Remark == nil || *m.Remark != "" {
		t.Fatalf("empty REMARK must be present")
	}
	if m.Scope != nil {
		t.Fatalf("absent SCOPE must stay nil")
	}
	if got := wktcrs.Compact(c); !strings.HasSuffix(got, `,USAGE[SCOPE[""]],REMARK[""]]`) {
		t.Fatalf("empty leaves dropped on output: %s", got)
	}
}

func TestParse_Limits(t *testing.T) {
	if _, err := wktcrs.Parse(wgs84, wktcrs.ParseOpt{MaxDepth: 2}); !wktcrs.HasCode(err, wktcrs.CodeTooDeep) {
		t.Fatalf("expected too_deep, got %v", err)
	}
	_, err := wktcrs.ParseReader(strings.NewReader(wgs84), wktcrs.ParseOpt{MaxBytes: 32})
	if !wktcrs.HasCode(err, wktcrs.CodeTruncated) {
		t.Fatalf("expected truncated, got %v", err)
	}
	c, err := wktcrs.ParseReader(strings.NewReader(wgs84), wktcrs.ParseOpt{MaxBytes: int64(len(wgs84))})
	if err != nil || wktcrs.NameOf(c) != "WGS84" {
		t.Fatalf("exact-size input must parse: %v", err)
	}
}

func TestIssues_ErrorsAs(t *testing.T) {
	_, err := wktcrs.Parse(`GEODCRS["X"`)
	var iss wktcrs.Issues
	if !errors.As(err, &iss) {
		t.Fatalf("expected errors.As to extract Issues, got: %v", err)
	}
	if !strings.HasPrefix(err.Error(), "unmatched_bracket (offset 7)") {
		t.Fatalf("unexpected error text: %s", err)
	}
	if len(iss.Unwrap()) != 1 {
		t.Fatalf("scanner issues keep their cause")
	}
}

func TestParse_Concurrent(t *testing.T) {
	inputs := []string{
		wgs84,
		`VERTCRS["h",VDATUM["d"],CS[vertical,1],AXIS["H",up],LENGTHUNIT["metre",1]]`,
		`GEODCRS["X",DATUM["X",ELLIPSOID["X",1,1]]`,
	}
	var wg sync.WaitGroup
	errs := make(chan string, 128)
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func(text string) {
			defer wg.Done()
			c, err := wktcrs.Parse(text)
			if err != nil {
				if !wktcrs.HasCode(err, wktcrs.CodeUnmatchedBracket) {
					errs <- err.Error()
				}
				return
			}
			if got := wktcrs.Compact(c); got != text {
				errs <- "round trip mismatch: " + got
			}
		}(inputs[i%len(inputs)])
	}
	wg.Wait()
	close(errs)
	for msg := range errs {
		t.Fatal(msg)
	}
}
