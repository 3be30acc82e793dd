package wktcrs

import (
	"fmt"

	eng "github.com/reoring/wktcrs/internal/engine"
)

// Datum is implemented by the datum variants. Each embeds DatumBase.
type Datum interface {
	Node
	Base() *DatumBase
	Family() Family
}

// DatumBase holds the fields shared by every datum kind.
type DatumBase struct {
	Name        string
	Anchor      *string
	Identifiers []*Identifier
}

// Base returns the shared fields.
func (b *DatumBase) Base() *DatumBase { return b }

// datumHook handles the sub-nodes a specific datum kind adds to the shared
// shape. It reports an error for keywords it does not know either.
type datumHook func(d *eng.Document, sub eng.Element) error

// parseDatumBase reads the name, ANCHOR and ID sub-nodes and hands every
// other keyword to hook.
func parseDatumBase(d *eng.Document, el eng.Element, b *DatumBase, hook datumHook) error {
	a := attributesOf(d, el)
	if err := a.expect(1, 1); err != nil {
		return err
	}
	var err error
	if b.Name, err = a.text(0); err != nil {
		return err
	}
	return subNodes(d, el, func(sub eng.Element) error {
		switch {
		case kwAnchor.has(sub.Keyword):
			return onceText(d, sub, &b.Anchor)
		case kwID.has(sub.Keyword):
			return appendIdentifier(d, sub, &b.Identifiers)
		case hook != nil:
			return hook(d, sub)
		default:
			return unrecognized(d, sub)
		}
	})
}

// GeodeticDatum is DATUM[name,ELLIPSOID[...],ANCHOR?,PRIMEM?,ID*].
type GeodeticDatum struct {
	DatumBase
	Ellipsoid     *Ellipsoid
	PrimeMeridian *PrimeMeridian
}

func (*GeodeticDatum) Family() Family { return FamilyGeodetic }

func parseGeodeticDatum(d *eng.Document, el eng.Element) (*GeodeticDatum, error) {
	gd := &GeodeticDatum{}
	err := parseDatumBase(d, el, &gd.DatumBase, func(d *eng.Document, sub eng.Element) error {
		switch {
		case kwEllipsoid.has(sub.Keyword):
			return once(d, sub, &gd.Ellipsoid, parseEllipsoid)
		case kwPrimeMeridian.has(sub.Keyword):
			return once(d, sub, &gd.PrimeMeridian, parsePrimeMeridian)
		default:
			return unrecognized(d, sub)
		}
	})
	if err != nil {
		return nil, err
	}
	if gd.Ellipsoid == nil {
		return nil, missing(d, el, "ELLIPSOID")
	}
	return gd, nil
}

func (gd *GeodeticDatum) emit(e emitter) {
	e.begin(kwGeodeticDatum.canonical())
	e.text(gd.Name)
	if gd.Ellipsoid != nil {
		gd.Ellipsoid.emit(e)
	}
	textLeaf(e, kwAnchor.canonical(), gd.Anchor)
	if gd.PrimeMeridian != nil {
		gd.PrimeMeridian.emit(e)
	}
	emitAll(e, gd.Identifiers)
	e.end()
}

// VerticalDatum is VDATUM[name,ANCHOR?,ID*].
type VerticalDatum struct{ DatumBase }

// EngineeringDatum is EDATUM[name,ANCHOR?,ID*].
type EngineeringDatum struct{ DatumBase }

// ParametricDatum is PDATUM[name,ANCHOR?,ID*].
type ParametricDatum struct{ DatumBase }

func (*VerticalDatum) Family() Family    { return FamilyVertical }
func (*EngineeringDatum) Family() Family { return FamilyEngineering }
func (*ParametricDatum) Family() Family  { return FamilyParametric }

func (vd *VerticalDatum) emit(e emitter)    { vd.emitPlain(e, kwVerticalDatum) }
func (ed *EngineeringDatum) emit(e emitter) { ed.emitPlain(e, kwEngDatum) }
func (pd *ParametricDatum) emit(e emitter)  { pd.emitPlain(e, kwParamDatum) }

func (b *DatumBase) emitPlain(e emitter, kw keywordSet) {
	e.begin(kw.canonical())
	e.text(b.Name)
	textLeaf(e, kwAnchor.canonical(), b.Anchor)
	emitAll(e, b.Identifiers)
	e.end()
}

func parseVerticalDatum(d *eng.Document, el eng.Element) (*VerticalDatum, error) {
	vd := &VerticalDatum{}
	if err := parseDatumBase(d, el, &vd.DatumBase, nil); err != nil {
		return nil, err
	}
	return vd, nil
}

func parseEngineeringDatum(d *eng.Document, el eng.Element) (*EngineeringDatum, error) {
	ed := &EngineeringDatum{}
	if err := parseDatumBase(d, el, &ed.DatumBase, nil); err != nil {
		return nil, err
	}
	return ed, nil
}

func parseParametricDatum(d *eng.Document, el eng.Element) (*ParametricDatum, error) {
	pd := &ParametricDatum{}
	if err := parseDatumBase(d, el, &pd.DatumBase, nil); err != nil {
		return nil, err
	}
	return pd, nil
}

// TemporalDatum is TDATUM[name,CALENDAR?,TIMEORIGIN?,ANCHOR?,ID*]. Origin is
// an ISO 8601 date/time or free text.
type TemporalDatum struct {
	DatumBase
	Calendar *string
	Origin   *string
}

func (*TemporalDatum) Family() Family { return FamilyTemporal }

func parseTemporalDatum(d *eng.Document, el eng.Element) (*TemporalDatum, error) {
	td := &TemporalDatum{}
	err := parseDatumBase(d, el, &td.DatumBase, func(d *eng.Document, sub eng.Element) error {
		switch {
		case kwCalendar.has(sub.Keyword):
			return onceText(d, sub, &td.Calendar)
		case kwTimeOrigin.has(sub.Keyword):
			return once(d, sub, &td.Origin, parseTimeOrigin)
		default:
			return unrecognized(d, sub)
		}
	})
	if err != nil {
		return nil, err
	}
	return td, nil
}

func parseTimeOrigin(d *eng.Document, el eng.Element) (*string, error) {
	a := attributesOf(d, el)
	if err := a.expect(1, 1); err != nil {
		return nil, err
	}
	if err := noSubNodes(d, el); err != nil {
		return nil, err
	}
	s, err := a.temporal(0)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (td *TemporalDatum) emit(e emitter) {
	e.begin(kwTimeDatum.canonical())
	e.text(td.Name)
	textLeaf(e, kwCalendar.canonical(), td.Calendar)
	if td.Origin != nil {
		e.begin(kwTimeOrigin.canonical())
		temporal(e, *td.Origin)
		e.end()
	}
	textLeaf(e, kwAnchor.canonical(), td.Anchor)
	emitAll(e, td.Identifiers)
	e.end()
}

// datumParsers lists the datum selectors per family.
var datumParsers = []struct {
	keywords keywordSet
	family   Family
	parse    func(*eng.Document, eng.Element) (Datum, error)
}{
	{kwGeodeticDatum, FamilyGeodetic, asDatum(parseGeodeticDatum)},
	{kwVerticalDatum, FamilyVertical, asDatum(parseVerticalDatum)},
	{kwEngDatum, FamilyEngineering, asDatum(parseEngineeringDatum)},
	{kwParamDatum, FamilyParametric, asDatum(parseParametricDatum)},
	{kwTimeDatum, FamilyTemporal, asDatum(parseTemporalDatum)},
}

func asDatum[T Datum](parse func(*eng.Document, eng.Element) (T, error)) func(*eng.Document, eng.Element) (Datum, error) {
	return func(d *eng.Document, el eng.Element) (Datum, error) {
		v, err := parse(d, el)
		if err != nil {
			return nil, err
		}
		return v, nil
	}
}

// isDatumKeyword reports whether kw names a datum of the given family.
func isDatumKeyword(family Family, kw string) bool {
	for _, p := range datumParsers {
		if p.family == family && p.keywords.has(kw) {
			return true
		}
	}
	return false
}

// parseDatumOf returns a parser accepting only datums of family.
func parseDatumOf(family Family) func(*eng.Document, eng.Element) (Datum, error) {
	return func(d *eng.Document, el eng.Element) (Datum, error) {
		for _, p := range datumParsers {
			if p.family == family && p.keywords.has(el.Keyword) {
				return p.parse(d, el)
			}
		}
		return nil, newIssue(CodeUnrecognizedElement, d.Path(el), el.Text, el.Offset,
			fmt.Sprintf("want a %s datum", family))
	}
}
