package wktcrs

import eng "github.com/reoring/wktcrs/internal/engine"

// Ellipsoid is ELLIPSOID[name,semi-major axis,inverse flattening,unit?,ID*].
type Ellipsoid struct {
	Name              string
	SemiMajorAxis     Number
	InverseFlattening Number
	Unit              *Unit
	Identifiers       []*Identifier
}

func parseEllipsoid(d *eng.Document, el eng.Element) (*Ellipsoid, error) {
	a := attributesOf(d, el)
	if err := a.expect(3, 3); err != nil {
		return nil, err
	}
	ell := &Ellipsoid{}
	var err error
	if ell.Name, err = a.text(0); err != nil {
		return nil, err
	}
	if ell.SemiMajorAxis, err = a.number(1); err != nil {
		return nil, err
	}
	if ell.InverseFlattening, err = a.number(2); err != nil {
		return nil, err
	}
	err = subNodes(d, el, func(sub eng.Element) error {
		switch {
		case kwLengthUnit.has(sub.Keyword):
			return once(d, sub, &ell.Unit, parseUnitOf(UnitLength))
		case kwID.has(sub.Keyword):
			return appendIdentifier(d, sub, &ell.Identifiers)
		default:
			return unrecognized(d, sub)
		}
	})
	if err != nil {
		return nil, err
	}
	return ell, nil
}

func (ell *Ellipsoid) emit(e emitter) {
	e.begin(kwEllipsoid.canonical())
	e.text(ell.Name)
	e.number(ell.SemiMajorAxis)
	e.number(ell.InverseFlattening)
	if ell.Unit != nil {
		ell.Unit.emit(e)
	}
	emitAll(e, ell.Identifiers)
	e.end()
}

// PrimeMeridian is PRIMEM[name,longitude,unit?,ID*].
type PrimeMeridian struct {
	Name        string
	Longitude   Number
	Unit        *Unit
	Identifiers []*Identifier
}

func parsePrimeMeridian(d *eng.Document, el eng.Element) (*PrimeMeridian, error) {
	a := attributesOf(d, el)
	if err := a.expect(2, 2); err != nil {
		return nil, err
	}
	pm := &PrimeMeridian{}
	var err error
	if pm.Name, err = a.text(0); err != nil {
		return nil, err
	}
	if pm.Longitude, err = a.number(1); err != nil {
		return nil, err
	}
	err = subNodes(d, el, func(sub eng.Element) error {
		switch {
		case kwAngleUnit.has(sub.Keyword):
			return once(d, sub, &pm.Unit, parseUnitOf(UnitAngle))
		case kwID.has(sub.Keyword):
			return appendIdentifier(d, sub, &pm.Identifiers)
		default:
			return unrecognized(d, sub)
		}
	})
	if err != nil {
		return nil, err
	}
	return pm, nil
}

func (pm *PrimeMeridian) emit(e emitter) {
	e.begin(kwPrimeMeridian.canonical())
	e.text(pm.Name)
	e.number(pm.Longitude)
	if pm.Unit != nil {
		pm.Unit.emit(e)
	}
	emitAll(e, pm.Identifiers)
	e.end()
}
