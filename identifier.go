package wktcrs

import eng "github.com/reoring/wktcrs/internal/engine"

// Identifier references an object in an external registry, e.g.
// ID["EPSG",4326]. The code and version keep their quoted or numeric form.
type Identifier struct {
	Authority string
	Code      Value
	Version   *Value
	Citation  *string
	URI       *string
}

// NewIdentifier returns an identifier with a numeric code.
func NewIdentifier(authority string, code int) *Identifier {
	return &Identifier{Authority: authority, Code: Code(code)}
}

func parseIdentifier(d *eng.Document, el eng.Element) (*Identifier, error) {
	a := attributesOf(d, el)
	if err := a.expect(2, 3); err != nil {
		return nil, err
	}
	id := &Identifier{}
	var err error
	if id.Authority, err = a.text(0); err != nil {
		return nil, err
	}
	if id.Code, err = a.value(1); err != nil {
		return nil, err
	}
	if a.has(2) {
		v, err := a.value(2)
		if err != nil {
			return nil, err
		}
		id.Version = &v
	}
	err = subNodes(d, el, func(sub eng.Element) error {
		switch {
		case kwCitation.has(sub.Keyword):
			return onceText(d, sub, &id.Citation)
		case kwURI.has(sub.Keyword):
			return onceText(d, sub, &id.URI)
		default:
			return unrecognized(d, sub)
		}
	})
	if err != nil {
		return nil, err
	}
	return id, nil
}

func (id *Identifier) emit(e emitter) {
	e.begin(kwID.canonical())
	e.text(id.Authority)
	e.value(id.Code)
	if id.Version != nil {
		e.value(*id.Version)
	}
	textLeaf(e, kwCitation.canonical(), id.Citation)
	textLeaf(e, kwURI.canonical(), id.URI)
	e.end()
}

// appendIdentifier parses sub as an identifier and appends it to list.
func appendIdentifier(d *eng.Document, sub eng.Element, list *[]*Identifier) error {
	id, err := parseIdentifier(d, sub)
	if err != nil {
		return err
	}
	*list = append(*list, id)
	return nil
}
