package wktcrs

import (
	"fmt"

	eng "github.com/reoring/wktcrs/internal/engine"
)

// CoordinateSystem is CS[type,dimension,ID*]. Its axes and unit are written
// after it as siblings within the owning CRS, so they are held here and
// emitted together.
type CoordinateSystem struct {
	Type        string
	Dimension   int
	Identifiers []*Identifier
	Axes        []*Axis
	Unit        *Unit
}

// NewCS returns a coordinate system whose dimension matches axes.
func NewCS(typ string, unit *Unit, axes ...*Axis) *CoordinateSystem {
	return &CoordinateSystem{Type: typ, Dimension: len(axes), Axes: axes, Unit: unit}
}

func parseCS(d *eng.Document, el eng.Element) (*CoordinateSystem, error) {
	a := attributesOf(d, el)
	if err := a.expect(2, 2); err != nil {
		return nil, err
	}
	cs := &CoordinateSystem{}
	var err error
	if cs.Type, err = a.token(0); err != nil {
		return nil, err
	}
	if cs.Dimension, err = a.integer(1); err != nil {
		return nil, err
	}
	err = subNodes(d, el, func(sub eng.Element) error {
		if kwID.has(sub.Keyword) {
			return appendIdentifier(d, sub, &cs.Identifiers)
		}
		return unrecognized(d, sub)
	})
	if err != nil {
		return nil, err
	}
	return cs, nil
}

func (cs *CoordinateSystem) emit(e emitter) {
	e.begin(kwCS.canonical())
	e.token(cs.Type)
	e.number(Num(float64(cs.Dimension)))
	emitAll(e, cs.Identifiers)
	e.end()
	emitAll(e, cs.Axes)
	if cs.Unit != nil {
		cs.Unit.emit(e)
	}
}

// csParts collects CS, AXIS and unit siblings inside a CRS.
type csParts struct {
	cs *CoordinateSystem
}

// take consumes sub if it belongs to the coordinate system.
func (p *csParts) take(d *eng.Document, sub eng.Element) (bool, error) {
	switch {
	case kwCS.has(sub.Keyword):
		return true, once(d, sub, &p.cs, parseCS)
	case kwAxis.has(sub.Keyword):
		if err := p.requireCS(d, sub); err != nil {
			return true, err
		}
		ax, err := parseAxis(d, sub)
		if err != nil {
			return true, err
		}
		p.cs.Axes = append(p.cs.Axes, ax)
		return true, nil
	default:
		if _, ok := unitKindOf(sub.Keyword); !ok {
			return false, nil
		}
		if err := p.requireCS(d, sub); err != nil {
			return true, err
		}
		return true, once(d, sub, &p.cs.Unit, parseUnit)
	}
}

func (p *csParts) requireCS(d *eng.Document, sub eng.Element) error {
	if p.cs != nil {
		return nil
	}
	return newIssue(CodeMissingElement, d.Path(sub), sub.Text, sub.Offset,
		fmt.Sprintf("CS must precede %s", sub.Text))
}

// Axis is AXIS[name,direction,MERIDIAN?,BEARING?,ORDER?,unit?,ID*].
type Axis struct {
	Name        string
	Direction   string
	Meridian    *Meridian
	Bearing     *Number
	Order       *int
	Unit        *Unit
	Identifiers []*Identifier
}

// NewAxis returns an axis with a name and direction token.
func NewAxis(name, direction string) *Axis {
	return &Axis{Name: name, Direction: direction}
}

func parseAxis(d *eng.Document, el eng.Element) (*Axis, error) {
	a := attributesOf(d, el)
	if err := a.expect(2, 2); err != nil {
		return nil, err
	}
	ax := &Axis{}
	var err error
	if ax.Name, err = a.text(0); err != nil {
		return nil, err
	}
	if ax.Direction, err = a.token(1); err != nil {
		return nil, err
	}
	err = subNodes(d, el, func(sub eng.Element) error {
		switch {
		case kwMeridian.has(sub.Keyword):
			return once(d, sub, &ax.Meridian, parseMeridian)
		case kwBearing.has(sub.Keyword):
			return once(d, sub, &ax.Bearing, parseBearing)
		case kwOrder.has(sub.Keyword):
			return once(d, sub, &ax.Order, parseOrder)
		case kwID.has(sub.Keyword):
			return appendIdentifier(d, sub, &ax.Identifiers)
		}
		if _, ok := unitKindOf(sub.Keyword); ok {
			return once(d, sub, &ax.Unit, parseUnit)
		}
		return unrecognized(d, sub)
	})
	if err != nil {
		return nil, err
	}
	return ax, nil
}

func (ax *Axis) emit(e emitter) {
	e.begin(kwAxis.canonical())
	e.text(ax.Name)
	e.token(ax.Direction)
	if ax.Meridian != nil {
		ax.Meridian.emit(e)
	}
	if ax.Bearing != nil {
		e.begin(kwBearing.canonical())
		e.number(*ax.Bearing)
		e.end()
	}
	if ax.Order != nil {
		e.begin(kwOrder.canonical())
		e.number(Num(float64(*ax.Order)))
		e.end()
	}
	if ax.Unit != nil {
		ax.Unit.emit(e)
	}
	emitAll(e, ax.Identifiers)
	e.end()
}

// Meridian is MERIDIAN[longitude,ANGLEUNIT[...]], used by polar axes.
type Meridian struct {
	Longitude Number
	Unit      *Unit
}

func parseMeridian(d *eng.Document, el eng.Element) (*Meridian, error) {
	a := attributesOf(d, el)
	if err := a.expect(1, 1); err != nil {
		return nil, err
	}
	m := &Meridian{}
	var err error
	if m.Longitude, err = a.number(0); err != nil {
		return nil, err
	}
	err = subNodes(d, el, func(sub eng.Element) error {
		if kwAngleUnit.has(sub.Keyword) {
			return once(d, sub, &m.Unit, parseUnitOf(UnitAngle))
		}
		return unrecognized(d, sub)
	})
	if err != nil {
		return nil, err
	}
	if m.Unit == nil {
		return nil, missing(d, el, "ANGLEUNIT")
	}
	return m, nil
}

func (m *Meridian) emit(e emitter) {
	e.begin(kwMeridian.canonical())
	e.number(m.Longitude)
	if m.Unit != nil {
		m.Unit.emit(e)
	}
	e.end()
}

func parseBearing(d *eng.Document, el eng.Element) (*Number, error) {
	a := attributesOf(d, el)
	if err := a.expect(1, 1); err != nil {
		return nil, err
	}
	if err := noSubNodes(d, el); err != nil {
		return nil, err
	}
	n, err := a.number(0)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func parseOrder(d *eng.Document, el eng.Element) (*int, error) {
	a := attributesOf(d, el)
	if err := a.expect(1, 1); err != nil {
		return nil, err
	}
	if err := noSubNodes(d, el); err != nil {
		return nil, err
	}
	n, err := a.integer(0)
	if err != nil {
		return nil, err
	}
	return &n, nil
}
