package wktcrs

import "github.com/samber/lo"

// keywordSet lists the accepted spellings of one construct. The first entry
// is the spelling the writer emits.
type keywordSet []string

func (s keywordSet) has(kw string) bool { return lo.Contains(s, kw) }

func (s keywordSet) canonical() string { return s[0] }

func keywords(spellings ...string) keywordSet { return keywordSet(spellings) }

// CRS selectors.
var (
	kwGeodCRS        = keywords("GEODCRS", "GEODETICCRS")
	kwGeogCRS        = keywords("GEOGCRS", "GEOGRAPHICCRS")
	kwProjCRS        = keywords("PROJCRS", "PROJECTEDCRS")
	kwVertCRS        = keywords("VERTCRS", "VERTICALCRS")
	kwEngCRS         = keywords("ENGCRS", "ENGINEERINGCRS")
	kwParametricCRS  = keywords("PARAMETRICCRS")
	kwTimeCRS        = keywords("TIMECRS")
	kwCompoundCRS    = keywords("COMPOUNDCRS")
	kwBaseGeodCRS    = keywords("BASEGEODCRS")
	kwBaseGeogCRS    = keywords("BASEGEOGCRS")
	kwBaseVertCRS    = keywords("BASEVERTCRS")
	kwBaseEngCRS     = keywords("BASEENGCRS")
	kwBaseParamCRS   = keywords("BASEPARAMCRS")
	kwBaseTimeCRS    = keywords("BASETIMECRS")
	kwConversion     = keywords("CONVERSION")
	kwDerivingConv   = keywords("DERIVINGCONVERSION")
	kwMethod         = keywords("METHOD", "PROJECTION")
	kwParameter      = keywords("PARAMETER")
	kwParameterFile  = keywords("PARAMETERFILE")
	kwGeodeticDatum  = keywords("DATUM", "GEODETICDATUM", "TRF")
	kwVerticalDatum  = keywords("VDATUM", "VERTICALDATUM", "VRF")
	kwEngDatum       = keywords("EDATUM", "ENGINEERINGDATUM")
	kwParamDatum     = keywords("PDATUM", "PARAMETRICDATUM")
	kwTimeDatum      = keywords("TDATUM", "TIMEDATUM")
	kwAnchor         = keywords("ANCHOR")
	kwCalendar       = keywords("CALENDAR")
	kwTimeOrigin     = keywords("TIMEORIGIN")
	kwEllipsoid      = keywords("ELLIPSOID", "SPHEROID")
	kwPrimeMeridian  = keywords("PRIMEM", "PRIMEMERIDIAN")
	kwCS             = keywords("CS")
	kwAxis           = keywords("AXIS")
	kwMeridian       = keywords("MERIDIAN")
	kwBearing        = keywords("BEARING")
	kwOrder          = keywords("ORDER")
	kwAngleUnit      = keywords("ANGLEUNIT")
	kwLengthUnit     = keywords("LENGTHUNIT")
	kwScaleUnit      = keywords("SCALEUNIT")
	kwParametricUnit = keywords("PARAMETRICUNIT")
	kwTimeUnit       = keywords("TIMEUNIT", "TEMPORALQUANTITY")
	kwID             = keywords("ID", "AUTHORITY")
	kwCitation       = keywords("CITATION")
	kwURI            = keywords("URI")
	kwUsage          = keywords("USAGE")
	kwScope          = keywords("SCOPE")
	kwArea           = keywords("AREA")
	kwBBox           = keywords("BBOX")
	kwVerticalExtent = keywords("VERTICALEXTENT")
	kwTimeExtent     = keywords("TIMEEXTENT")
	kwRemark         = keywords("REMARK")
)

// unitKeywords maps each unit kind to its selector.
var unitKeywords = map[UnitKind]keywordSet{
	UnitAngle:      kwAngleUnit,
	UnitLength:     kwLengthUnit,
	UnitScale:      kwScaleUnit,
	UnitParametric: kwParametricUnit,
	UnitTime:       kwTimeUnit,
}

// unitKindOf resolves a unit keyword; ok is false for anything else.
func unitKindOf(kw string) (UnitKind, bool) {
	for _, k := range []UnitKind{UnitAngle, UnitLength, UnitScale, UnitParametric, UnitTime} {
		if unitKeywords[k].has(kw) {
			return k, true
		}
	}
	return 0, false
}
