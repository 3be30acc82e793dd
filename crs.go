package wktcrs

import (
	"fmt"

	eng "github.com/reoring/wktcrs/internal/engine"
)

// CRS is implemented by every coordinate reference system variant:
// *GeodeticCRS, *ProjectedCRS, *VerticalCRS, *EngineeringCRS,
// *ParametricCRS, *TemporalCRS, *DerivedCRS and *CompoundCRS.
type CRS interface {
	Node
	Family() Family
	IsDerived() bool
	Meta() *Metadata
	crsName() string
}

// NameOf returns the name of any CRS.
func NameOf(c CRS) string {
	if c == nil {
		return ""
	}
	return c.crsName()
}

// crsKeyword returns the selector written for a CRS of the given family.
func crsKeyword(family Family, geographic bool) keywordSet {
	switch family {
	case FamilyGeodetic:
		if geographic {
			return kwGeogCRS
		}
		return kwGeodCRS
	case FamilyProjected:
		return kwProjCRS
	case FamilyVertical:
		return kwVertCRS
	case FamilyEngineering:
		return kwEngCRS
	case FamilyParametric:
		return kwParametricCRS
	case FamilyTemporal:
		return kwTimeCRS
	default:
		return kwCompoundCRS
	}
}

// walkCRS reads the name of a CRS and dispatches its sub-nodes: own gets
// the first look, then the coordinate system and the metadata block.
func walkCRS(d *eng.Document, el eng.Element, name *string, cs *csParts, m *Metadata, own func(sub eng.Element) (bool, error)) error {
	a := attributesOf(d, el)
	if err := a.expect(1, 1); err != nil {
		return err
	}
	var err error
	if *name, err = a.text(0); err != nil {
		return err
	}
	return subNodes(d, el, func(sub eng.Element) error {
		if ok, err := own(sub); ok || err != nil {
			return err
		}
		if cs != nil {
			if ok, err := cs.take(d, sub); ok || err != nil {
				return err
			}
		}
		if ok, err := m.take(d, sub); ok || err != nil {
			return err
		}
		return unrecognized(d, sub)
	})
}

// GeodeticCRS is GEODCRS or GEOGCRS with a geodetic datum and a coordinate
// system. PrimeMeridian holds a PRIMEM written at CRS level; one written
// inside the datum stays on the datum.
type GeodeticCRS struct {
	Geographic       bool
	Name             string
	Datum            *GeodeticDatum
	PrimeMeridian    *PrimeMeridian
	CoordinateSystem *CoordinateSystem
	Metadata
}

func parseGeodeticCRS(d *eng.Document, el eng.Element) (CRS, error) {
	c := &GeodeticCRS{Geographic: kwGeogCRS.has(el.Keyword)}
	var cs csParts
	err := walkCRS(d, el, &c.Name, &cs, &c.Metadata, func(sub eng.Element) (bool, error) {
		switch {
		case kwGeodeticDatum.has(sub.Keyword):
			return true, once(d, sub, &c.Datum, parseGeodeticDatum)
		case kwPrimeMeridian.has(sub.Keyword):
			return true, once(d, sub, &c.PrimeMeridian, parsePrimeMeridian)
		default:
			return false, nil
		}
	})
	if err != nil {
		return nil, err
	}
	if c.Datum == nil {
		return nil, missing(d, el, "DATUM")
	}
	if cs.cs == nil {
		return nil, missing(d, el, "CS")
	}
	c.CoordinateSystem = cs.cs
	return c, nil
}

func (c *GeodeticCRS) emit(e emitter) {
	e.begin(crsKeyword(FamilyGeodetic, c.Geographic).canonical())
	e.text(c.Name)
	if c.Datum != nil {
		c.Datum.emit(e)
	}
	if c.PrimeMeridian != nil {
		c.PrimeMeridian.emit(e)
	}
	if c.CoordinateSystem != nil {
		c.CoordinateSystem.emit(e)
	}
	c.Metadata.emit(e)
	e.end()
}

// ProjectedCRS is PROJCRS[name,BASEGEODCRS[...],CONVERSION[...],CS...].
type ProjectedCRS struct {
	Name             string
	Base             *BaseCRS
	Conversion       *Conversion
	CoordinateSystem *CoordinateSystem
	Metadata
}

func parseProjectedCRS(d *eng.Document, el eng.Element) (CRS, error) {
	c := &ProjectedCRS{}
	var cs csParts
	err := walkCRS(d, el, &c.Name, &cs, &c.Metadata, func(sub eng.Element) (bool, error) {
		switch {
		case isBaseKeyword(FamilyGeodetic, sub.Keyword):
			return true, once(d, sub, &c.Base, parseBaseCRS(FamilyGeodetic))
		case kwConversion.has(sub.Keyword):
			return true, once(d, sub, &c.Conversion, parseConversion)
		default:
			return false, nil
		}
	})
	if err != nil {
		return nil, err
	}
	switch {
	case c.Base == nil:
		return nil, missing(d, el, "BASEGEODCRS")
	case c.Conversion == nil:
		return nil, missing(d, el, "CONVERSION")
	case cs.cs == nil:
		return nil, missing(d, el, "CS")
	}
	c.CoordinateSystem = cs.cs
	return c, nil
}

func (c *ProjectedCRS) emit(e emitter) {
	e.begin(kwProjCRS.canonical())
	e.text(c.Name)
	if c.Base != nil {
		c.Base.emit(e)
	}
	if c.Conversion != nil {
		c.Conversion.emitAs(e, kwConversion.canonical())
	}
	if c.CoordinateSystem != nil {
		c.CoordinateSystem.emit(e)
	}
	c.Metadata.emit(e)
	e.end()
}

// VerticalCRS is VERTCRS[name,VDATUM[...],CS...].
type VerticalCRS struct {
	Name             string
	Datum            *VerticalDatum
	CoordinateSystem *CoordinateSystem
	Metadata
}

// EngineeringCRS is ENGCRS[name,EDATUM[...],CS...].
type EngineeringCRS struct {
	Name             string
	Datum            *EngineeringDatum
	CoordinateSystem *CoordinateSystem
	Metadata
}

// ParametricCRS is PARAMETRICCRS[name,PDATUM[...],CS...].
type ParametricCRS struct {
	Name             string
	Datum            *ParametricDatum
	CoordinateSystem *CoordinateSystem
	Metadata
}

// TemporalCRS is TIMECRS[name,TDATUM[...],CS...].
type TemporalCRS struct {
	Name             string
	Datum            *TemporalDatum
	CoordinateSystem *CoordinateSystem
	Metadata
}

// parseDatumCRS reads the body shared by the single-datum CRS kinds.
func parseDatumCRS[T comparable](d *eng.Document, el eng.Element, datumKw keywordSet, parse func(*eng.Document, eng.Element) (T, error),
	name *string, datum *T, m *Metadata) (*CoordinateSystem, error) {
	var cs csParts
	err := walkCRS(d, el, name, &cs, m, func(sub eng.Element) (bool, error) {
		if datumKw.has(sub.Keyword) {
			return true, once(d, sub, datum, parse)
		}
		return false, nil
	})
	if err != nil {
		return nil, err
	}
	var zero T
	if *datum == zero {
		return nil, missing(d, el, datumKw.canonical())
	}
	if cs.cs == nil {
		return nil, missing(d, el, "CS")
	}
	return cs.cs, nil
}

func parseVerticalCRS(d *eng.Document, el eng.Element) (CRS, error) {
	c := &VerticalCRS{}
	cs, err := parseDatumCRS(d, el, kwVerticalDatum, parseVerticalDatum, &c.Name, &c.Datum, &c.Metadata)
	if err != nil {
		return nil, err
	}
	c.CoordinateSystem = cs
	return c, nil
}

func parseEngineeringCRS(d *eng.Document, el eng.Element) (CRS, error) {
	c := &EngineeringCRS{}
	cs, err := parseDatumCRS(d, el, kwEngDatum, parseEngineeringDatum, &c.Name, &c.Datum, &c.Metadata)
	if err != nil {
		return nil, err
	}
	c.CoordinateSystem = cs
	return c, nil
}

func parseParametricCRS(d *eng.Document, el eng.Element) (CRS, error) {
	c := &ParametricCRS{}
	cs, err := parseDatumCRS(d, el, kwParamDatum, parseParametricDatum, &c.Name, &c.Datum, &c.Metadata)
	if err != nil {
		return nil, err
	}
	c.CoordinateSystem = cs
	return c, nil
}

func parseTemporalCRS(d *eng.Document, el eng.Element) (CRS, error) {
	c := &TemporalCRS{}
	cs, err := parseDatumCRS(d, el, kwTimeDatum, parseTemporalDatum, &c.Name, &c.Datum, &c.Metadata)
	if err != nil {
		return nil, err
	}
	c.CoordinateSystem = cs
	return c, nil
}

// emitDatumCRS writes the body shared by the single-datum CRS kinds.
func emitDatumCRS(e emitter, family Family, name string, datum Datum, cs *CoordinateSystem, m *Metadata) {
	e.begin(crsKeyword(family, false).canonical())
	e.text(name)
	if datum != nil {
		datum.emit(e)
	}
	if cs != nil {
		cs.emit(e)
	}
	m.emit(e)
	e.end()
}

func (c *VerticalCRS) emit(e emitter) {
	var dt Datum
	if c.Datum != nil {
		dt = c.Datum
	}
	emitDatumCRS(e, FamilyVertical, c.Name, dt, c.CoordinateSystem, &c.Metadata)
}

func (c *EngineeringCRS) emit(e emitter) {
	var dt Datum
	if c.Datum != nil {
		dt = c.Datum
	}
	emitDatumCRS(e, FamilyEngineering, c.Name, dt, c.CoordinateSystem, &c.Metadata)
}

func (c *ParametricCRS) emit(e emitter) {
	var dt Datum
	if c.Datum != nil {
		dt = c.Datum
	}
	emitDatumCRS(e, FamilyParametric, c.Name, dt, c.CoordinateSystem, &c.Metadata)
}

func (c *TemporalCRS) emit(e emitter) {
	var dt Datum
	if c.Datum != nil {
		dt = c.Datum
	}
	emitDatumCRS(e, FamilyTemporal, c.Name, dt, c.CoordinateSystem, &c.Metadata)
}

// DerivedCRS is a CRS of Family defined by applying Conversion to Base. It
// is written with the family's own keyword and a DERIVINGCONVERSION.
type DerivedCRS struct {
	Kind             Family
	Geographic       bool
	Name             string
	Base             *BaseCRS
	Conversion       *Conversion
	CoordinateSystem *CoordinateSystem
	Metadata
}

func parseDerivedCRS(family Family) func(*eng.Document, eng.Element) (CRS, error) {
	return func(d *eng.Document, el eng.Element) (CRS, error) {
		c := &DerivedCRS{Kind: family, Geographic: kwGeogCRS.has(el.Keyword)}
		var cs csParts
		err := walkCRS(d, el, &c.Name, &cs, &c.Metadata, func(sub eng.Element) (bool, error) {
			switch {
			case isBaseKeyword(family, sub.Keyword):
				return true, once(d, sub, &c.Base, parseBaseCRS(family))
			case kwDerivingConv.has(sub.Keyword):
				return true, once(d, sub, &c.Conversion, parseConversion)
			default:
				return false, nil
			}
		})
		if err != nil {
			return nil, err
		}
		switch {
		case c.Base == nil:
			return nil, missing(d, el, baseKeywords(family)[0].canonical())
		case c.Conversion == nil:
			return nil, missing(d, el, "DERIVINGCONVERSION")
		case cs.cs == nil:
			return nil, missing(d, el, "CS")
		}
		c.CoordinateSystem = cs.cs
		return c, nil
	}
}

func (c *DerivedCRS) emit(e emitter) {
	e.begin(crsKeyword(c.Kind, c.Geographic).canonical())
	e.text(c.Name)
	if c.Base != nil {
		c.Base.emit(e)
	}
	if c.Conversion != nil {
		c.Conversion.emitAs(e, kwDerivingConv.canonical())
	}
	if c.CoordinateSystem != nil {
		c.CoordinateSystem.emit(e)
	}
	c.Metadata.emit(e)
	e.end()
}

// BaseCRS is the abbreviated CRS a derived or projected CRS starts from:
// name, datum, an optional prime meridian for geodetic bases, an optional
// unit and identifiers.
type BaseCRS struct {
	Kind          Family
	Geographic    bool
	Name          string
	Datum         Datum
	PrimeMeridian *PrimeMeridian
	Unit          *Unit
	Identifiers   []*Identifier
}

// baseKeywords returns the base selectors allowed for family.
func baseKeywords(family Family) []keywordSet {
	switch family {
	case FamilyGeodetic:
		return []keywordSet{kwBaseGeodCRS, kwBaseGeogCRS}
	case FamilyVertical:
		return []keywordSet{kwBaseVertCRS}
	case FamilyEngineering:
		return []keywordSet{kwBaseEngCRS}
	case FamilyParametric:
		return []keywordSet{kwBaseParamCRS}
	case FamilyTemporal:
		return []keywordSet{kwBaseTimeCRS}
	default:
		return nil
	}
}

func isBaseKeyword(family Family, kw string) bool {
	for _, set := range baseKeywords(family) {
		if set.has(kw) {
			return true
		}
	}
	return false
}

func parseBaseCRS(family Family) func(*eng.Document, eng.Element) (*BaseCRS, error) {
	return func(d *eng.Document, el eng.Element) (*BaseCRS, error) {
		if !isBaseKeyword(family, el.Keyword) {
			return nil, newIssue(CodeUnrecognizedElement, d.Path(el), el.Text, el.Offset,
				fmt.Sprintf("want a base %s CRS", family))
		}
		a := attributesOf(d, el)
		if err := a.expect(1, 1); err != nil {
			return nil, err
		}
		b := &BaseCRS{Kind: family, Geographic: kwBaseGeogCRS.has(el.Keyword)}
		var err error
		if b.Name, err = a.text(0); err != nil {
			return nil, err
		}
		err = subNodes(d, el, func(sub eng.Element) error {
			switch {
			case isDatumKeyword(family, sub.Keyword):
				return once(d, sub, &b.Datum, parseDatumOf(family))
			case family == FamilyGeodetic && kwPrimeMeridian.has(sub.Keyword):
				return once(d, sub, &b.PrimeMeridian, parsePrimeMeridian)
			case kwID.has(sub.Keyword):
				return appendIdentifier(d, sub, &b.Identifiers)
			}
			if _, ok := unitKindOf(sub.Keyword); ok {
				return once(d, sub, &b.Unit, parseUnit)
			}
			return unrecognized(d, sub)
		})
		if err != nil {
			return nil, err
		}
		if b.Datum == nil {
			return nil, missing(d, el, "datum")
		}
		return b, nil
	}
}

func (b *BaseCRS) emit(e emitter) {
	sets := baseKeywords(b.Kind)
	kw := sets[0]
	if b.Geographic {
		kw = kwBaseGeogCRS
	}
	e.begin(kw.canonical())
	e.text(b.Name)
	if b.Datum != nil {
		b.Datum.emit(e)
	}
	if b.PrimeMeridian != nil {
		b.PrimeMeridian.emit(e)
	}
	if b.Unit != nil {
		b.Unit.emit(e)
	}
	emitAll(e, b.Identifiers)
	e.end()
}

// CompoundCRS is COMPOUNDCRS[name,component CRS...]. Components keep their
// declaration order.
type CompoundCRS struct {
	Name       string
	Components []CRS
	Metadata
}

// NewCompoundCRS returns an empty compound CRS; add components with Append.
func NewCompoundCRS(name string) *CompoundCRS {
	return &CompoundCRS{Name: name}
}

// Append adds a component and returns the receiver.
func (c *CompoundCRS) Append(component CRS) *CompoundCRS {
	c.Components = append(c.Components, component)
	return c
}

func parseCompoundCRS(d *eng.Document, el eng.Element) (CRS, error) {
	c := &CompoundCRS{}
	err := walkCRS(d, el, &c.Name, nil, &c.Metadata, func(sub eng.Element) (bool, error) {
		if !isComponentKeyword(sub.Keyword) {
			return false, nil
		}
		component, err := resolveCRS(d, sub)
		if err != nil {
			return true, err
		}
		c.Components = append(c.Components, component)
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	if len(c.Components) == 0 {
		return nil, missing(d, el, "component CRS")
	}
	return c, nil
}

func (c *CompoundCRS) emit(e emitter) {
	e.begin(kwCompoundCRS.canonical())
	e.text(c.Name)
	emitAll(e, c.Components)
	c.Metadata.emit(e)
	e.end()
}

func (c *GeodeticCRS) Family() Family    { return FamilyGeodetic }
func (c *ProjectedCRS) Family() Family   { return FamilyProjected }
func (c *VerticalCRS) Family() Family    { return FamilyVertical }
func (c *EngineeringCRS) Family() Family { return FamilyEngineering }
func (c *ParametricCRS) Family() Family  { return FamilyParametric }
func (c *TemporalCRS) Family() Family    { return FamilyTemporal }
func (c *DerivedCRS) Family() Family     { return c.Kind }
func (c *CompoundCRS) Family() Family    { return FamilyCompound }

func (c *GeodeticCRS) IsDerived() bool    { return false }
func (c *ProjectedCRS) IsDerived() bool   { return true }
func (c *VerticalCRS) IsDerived() bool    { return false }
func (c *EngineeringCRS) IsDerived() bool { return false }
func (c *ParametricCRS) IsDerived() bool  { return false }
func (c *TemporalCRS) IsDerived() bool    { return false }
func (c *DerivedCRS) IsDerived() bool     { return true }
func (c *CompoundCRS) IsDerived() bool    { return false }

func (c *GeodeticCRS) Meta() *Metadata    { return &c.Metadata }
func (c *ProjectedCRS) Meta() *Metadata   { return &c.Metadata }
func (c *VerticalCRS) Meta() *Metadata    { return &c.Metadata }
func (c *EngineeringCRS) Meta() *Metadata { return &c.Metadata }
func (c *ParametricCRS) Meta() *Metadata  { return &c.Metadata }
func (c *TemporalCRS) Meta() *Metadata    { return &c.Metadata }
func (c *DerivedCRS) Meta() *Metadata     { return &c.Metadata }
func (c *CompoundCRS) Meta() *Metadata    { return &c.Metadata }

func (c *GeodeticCRS) crsName() string    { return c.Name }
func (c *ProjectedCRS) crsName() string   { return c.Name }
func (c *VerticalCRS) crsName() string    { return c.Name }
func (c *EngineeringCRS) crsName() string { return c.Name }
func (c *ParametricCRS) crsName() string  { return c.Name }
func (c *TemporalCRS) crsName() string    { return c.Name }
func (c *DerivedCRS) crsName() string     { return c.Name }
func (c *CompoundCRS) crsName() string    { return c.Name }
