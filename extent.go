package wktcrs

import eng "github.com/reoring/wktcrs/internal/engine"

// Extent is one of Area, BBox, VerticalExtent or TemporalExtent.
type Extent interface {
	Node
	extent()
}

// Area is AREA["description"].
type Area struct {
	Text string
}

// BBox is BBOX[south,west,north,east] in decimal degrees.
type BBox struct {
	South, West, North, East Number
}

// VerticalExtent is VERTICALEXTENT[min,max,LENGTHUNIT?].
type VerticalExtent struct {
	Min, Max Number
	Unit     *Unit
}

// TemporalExtent is TIMEEXTENT[start,end]. Each end is an ISO 8601
// date/time or free text.
type TemporalExtent struct {
	Start, End string
}

func (*Area) extent()           {}
func (*BBox) extent()           {}
func (*VerticalExtent) extent() {}
func (*TemporalExtent) extent() {}

// isExtentKeyword reports whether kw selects an extent.
func isExtentKeyword(kw string) bool {
	return kwArea.has(kw) || kwBBox.has(kw) || kwVerticalExtent.has(kw) || kwTimeExtent.has(kw)
}

func parseExtent(d *eng.Document, el eng.Element) (Extent, error) {
	switch {
	case kwArea.has(el.Keyword):
		s, err := textLeafOf(d, el)
		if err != nil {
			return nil, err
		}
		return &Area{Text: s}, nil
	case kwBBox.has(el.Keyword):
		return parseBBox(d, el)
	case kwVerticalExtent.has(el.Keyword):
		return parseVerticalExtent(d, el)
	case kwTimeExtent.has(el.Keyword):
		return parseTemporalExtent(d, el)
	default:
		return nil, unrecognized(d, el)
	}
}

func parseBBox(d *eng.Document, el eng.Element) (*BBox, error) {
	a := attributesOf(d, el)
	if err := a.expect(4, 4); err != nil {
		return nil, err
	}
	if err := noSubNodes(d, el); err != nil {
		return nil, err
	}
	b := &BBox{}
	for i, slot := range []*Number{&b.South, &b.West, &b.North, &b.East} {
		n, err := a.number(i)
		if err != nil {
			return nil, err
		}
		*slot = n
	}
	return b, nil
}

func parseVerticalExtent(d *eng.Document, el eng.Element) (*VerticalExtent, error) {
	a := attributesOf(d, el)
	if err := a.expect(2, 2); err != nil {
		return nil, err
	}
	v := &VerticalExtent{}
	var err error
	if v.Min, err = a.number(0); err != nil {
		return nil, err
	}
	if v.Max, err = a.number(1); err != nil {
		return nil, err
	}
	err = subNodes(d, el, func(sub eng.Element) error {
		if kwLengthUnit.has(sub.Keyword) {
			return once(d, sub, &v.Unit, parseUnitOf(UnitLength))
		}
		return unrecognized(d, sub)
	})
	if err != nil {
		return nil, err
	}
	return v, nil
}

func parseTemporalExtent(d *eng.Document, el eng.Element) (*TemporalExtent, error) {
	a := attributesOf(d, el)
	if err := a.expect(2, 2); err != nil {
		return nil, err
	}
	if err := noSubNodes(d, el); err != nil {
		return nil, err
	}
	t := &TemporalExtent{}
	var err error
	if t.Start, err = a.temporal(0); err != nil {
		return nil, err
	}
	if t.End, err = a.temporal(1); err != nil {
		return nil, err
	}
	return t, nil
}

func (ar *Area) emit(e emitter) {
	e.begin(kwArea.canonical())
	e.text(ar.Text)
	e.end()
}

func (b *BBox) emit(e emitter) {
	e.begin(kwBBox.canonical())
	e.number(b.South)
	e.number(b.West)
	e.number(b.North)
	e.number(b.East)
	e.end()
}

func (v *VerticalExtent) emit(e emitter) {
	e.begin(kwVerticalExtent.canonical())
	e.number(v.Min)
	e.number(v.Max)
	if v.Unit != nil {
		v.Unit.emit(e)
	}
	e.end()
}

func (t *TemporalExtent) emit(e emitter) {
	e.begin(kwTimeExtent.canonical())
	temporal(e, t.Start)
	temporal(e, t.End)
	e.end()
}
