package wktcrs

import eng "github.com/reoring/wktcrs/internal/engine"

// Metadata is the block every CRS may carry after its body:
// SCOPE?, extents, USAGE*, ID*, REMARK?. Nil text leaves are absent.
type Metadata struct {
	Scope       *string
	Extents     []Extent
	Usages      []*Usage
	Identifiers []*Identifier
	Remark      *string
}

// AddIdentifier appends an identifier and returns the receiver.
func (m *Metadata) AddIdentifier(id *Identifier) *Metadata {
	m.Identifiers = append(m.Identifiers, id)
	return m
}

// take consumes sub if it belongs to the metadata block.
func (m *Metadata) take(d *eng.Document, sub eng.Element) (bool, error) {
	switch {
	case kwScope.has(sub.Keyword):
		return true, onceText(d, sub, &m.Scope)
	case isExtentKeyword(sub.Keyword):
		ext, err := parseExtent(d, sub)
		if err != nil {
			return true, err
		}
		m.Extents = append(m.Extents, ext)
		return true, nil
	case kwUsage.has(sub.Keyword):
		u, err := parseUsage(d, sub)
		if err != nil {
			return true, err
		}
		m.Usages = append(m.Usages, u)
		return true, nil
	case kwID.has(sub.Keyword):
		return true, appendIdentifier(d, sub, &m.Identifiers)
	case kwRemark.has(sub.Keyword):
		return true, onceText(d, sub, &m.Remark)
	default:
		return false, nil
	}
}

func (m *Metadata) emit(e emitter) {
	textLeaf(e, kwScope.canonical(), m.Scope)
	emitAll(e, m.Extents)
	emitAll(e, m.Usages)
	emitAll(e, m.Identifiers)
	textLeaf(e, kwRemark.canonical(), m.Remark)
}

// Usage is USAGE[SCOPE[...],extent*].
type Usage struct {
	Scope   *string
	Extents []Extent
}

func parseUsage(d *eng.Document, el eng.Element) (*Usage, error) {
	a := attributesOf(d, el)
	if err := a.expect(0, 0); err != nil {
		return nil, err
	}
	u := &Usage{}
	err := subNodes(d, el, func(sub eng.Element) error {
		switch {
		case kwScope.has(sub.Keyword):
			return onceText(d, sub, &u.Scope)
		case isExtentKeyword(sub.Keyword):
			ext, err := parseExtent(d, sub)
			if err != nil {
				return err
			}
			u.Extents = append(u.Extents, ext)
			return nil
		default:
			return unrecognized(d, sub)
		}
	})
	if err != nil {
		return nil, err
	}
	if u.Scope == nil {
		return nil, missing(d, el, "SCOPE")
	}
	return u, nil
}

func (u *Usage) emit(e emitter) {
	e.begin(kwUsage.canonical())
	textLeaf(e, kwScope.canonical(), u.Scope)
	emitAll(e, u.Extents)
	e.end()
}
