package wktcrs

import (
	"fmt"

	eng "github.com/reoring/wktcrs/internal/engine"
)

type crsParser func(*eng.Document, eng.Element) (CRS, error)

// crsFamilies is the top-level dispatch table. A root keyword selects a row;
// the element's derived flag then selects the plain or the derived parser.
// A nil parser means the family has no variant for that flag.
var crsFamilies []crsFamily

type crsFamily struct {
	family   Family
	keywords []keywordSet
	plain    crsParser
	derived  crsParser
}

func init() {
	crsFamilies = []crsFamily{
		{FamilyGeodetic, []keywordSet{kwGeodCRS, kwGeogCRS}, parseGeodeticCRS, parseDerivedCRS(FamilyGeodetic)},
		{FamilyProjected, []keywordSet{kwProjCRS}, nil, parseProjectedCRS},
		{FamilyVertical, []keywordSet{kwVertCRS}, parseVerticalCRS, parseDerivedCRS(FamilyVertical)},
		{FamilyEngineering, []keywordSet{kwEngCRS}, parseEngineeringCRS, parseDerivedCRS(FamilyEngineering)},
		{FamilyParametric, []keywordSet{kwParametricCRS}, parseParametricCRS, parseDerivedCRS(FamilyParametric)},
		{FamilyTemporal, []keywordSet{kwTimeCRS}, parseTemporalCRS, parseDerivedCRS(FamilyTemporal)},
		{FamilyCompound, []keywordSet{kwCompoundCRS}, parseCompoundCRS, parseCompoundCRS},
	}
}

func familyOf(kw string) (crsFamily, bool) {
	for _, f := range crsFamilies {
		for _, set := range f.keywords {
			if set.has(kw) {
				return f, true
			}
		}
	}
	return crsFamily{}, false
}

// isComponentKeyword reports whether kw may appear as a component of a
// compound CRS. Compound CRSs do not nest.
func isComponentKeyword(kw string) bool {
	f, ok := familyOf(kw)
	return ok && f.family != FamilyCompound
}

// resolveCRS builds the CRS variant selected by el's keyword and derived
// flag. The flag covers el's own subtree, so components of a compound CRS
// are resolved independently of their siblings.
func resolveCRS(d *eng.Document, el eng.Element) (CRS, error) {
	f, ok := familyOf(el.Keyword)
	if !ok {
		return nil, unrecognized(d, el)
	}
	parse := f.plain
	if el.Derived {
		parse = f.derived
	}
	if parse == nil {
		return nil, newIssue(CodeAmbiguousRoot, d.Path(el), el.Text, el.Offset,
			fmt.Sprintf("no %s variant with derived=%t", f.family, el.Derived))
	}
	return parse(d, el)
}
