package wktcrs

import eng "github.com/reoring/wktcrs/internal/engine"

// Conversion is the operation that derives a CRS from its base. The same
// shape is written as CONVERSION inside a projected CRS and as
// DERIVINGCONVERSION inside any other derived CRS.
type Conversion struct {
	Name           string
	Method         *Method
	Parameters     []*Parameter
	ParameterFiles []*ParameterFile
	Identifiers    []*Identifier
}

func parseConversion(d *eng.Document, el eng.Element) (*Conversion, error) {
	a := attributesOf(d, el)
	if err := a.expect(1, 1); err != nil {
		return nil, err
	}
	c := &Conversion{}
	var err error
	if c.Name, err = a.text(0); err != nil {
		return nil, err
	}
	err = subNodes(d, el, func(sub eng.Element) error {
		switch {
		case kwMethod.has(sub.Keyword):
			return once(d, sub, &c.Method, parseMethod)
		case kwParameter.has(sub.Keyword):
			p, err := parseParameter(d, sub)
			if err != nil {
				return err
			}
			c.Parameters = append(c.Parameters, p)
			return nil
		case kwParameterFile.has(sub.Keyword):
			pf, err := parseParameterFile(d, sub)
			if err != nil {
				return err
			}
			c.ParameterFiles = append(c.ParameterFiles, pf)
			return nil
		case kwID.has(sub.Keyword):
			return appendIdentifier(d, sub, &c.Identifiers)
		default:
			return unrecognized(d, sub)
		}
	})
	if err != nil {
		return nil, err
	}
	if c.Method == nil {
		return nil, missing(d, el, "METHOD")
	}
	return c, nil
}

// emitAs writes the conversion under the keyword chosen by its owner.
func (c *Conversion) emitAs(e emitter, keyword string) {
	e.begin(keyword)
	e.text(c.Name)
	if c.Method != nil {
		c.Method.emit(e)
	}
	emitAll(e, c.Parameters)
	emitAll(e, c.ParameterFiles)
	emitAll(e, c.Identifiers)
	e.end()
}

// Parameter looks up a parameter by name.
func (c *Conversion) Parameter(name string) (*Parameter, bool) {
	for _, p := range c.Parameters {
		if p.Name == name {
			return p, true
		}
	}
	return nil, false
}

// Method is METHOD[name,ID*]; PROJECTION is accepted as a synonym.
type Method struct {
	Name        string
	Identifiers []*Identifier
}

func parseMethod(d *eng.Document, el eng.Element) (*Method, error) {
	a := attributesOf(d, el)
	if err := a.expect(1, 1); err != nil {
		return nil, err
	}
	m := &Method{}
	var err error
	if m.Name, err = a.text(0); err != nil {
		return nil, err
	}
	err = subNodes(d, el, func(sub eng.Element) error {
		if kwID.has(sub.Keyword) {
			return appendIdentifier(d, sub, &m.Identifiers)
		}
		return unrecognized(d, sub)
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Method) emit(e emitter) {
	e.begin(kwMethod.canonical())
	e.text(m.Name)
	emitAll(e, m.Identifiers)
	e.end()
}

// Parameter is PARAMETER[name,value,unit?,ID*]. The unit may be of any kind.
type Parameter struct {
	Name        string
	Value       Number
	Unit        *Unit
	Identifiers []*Identifier
}

func parseParameter(d *eng.Document, el eng.Element) (*Parameter, error) {
	a := attributesOf(d, el)
	if err := a.expect(2, 2); err != nil {
		return nil, err
	}
	p := &Parameter{}
	var err error
	if p.Name, err = a.text(0); err != nil {
		return nil, err
	}
	if p.Value, err = a.number(1); err != nil {
		return nil, err
	}
	err = subNodes(d, el, func(sub eng.Element) error {
		if _, ok := unitKindOf(sub.Keyword); ok {
			return once(d, sub, &p.Unit, parseUnit)
		}
		if kwID.has(sub.Keyword) {
			return appendIdentifier(d, sub, &p.Identifiers)
		}
		return unrecognized(d, sub)
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Parameter) emit(e emitter) {
	e.begin(kwParameter.canonical())
	e.text(p.Name)
	e.number(p.Value)
	if p.Unit != nil {
		p.Unit.emit(e)
	}
	emitAll(e, p.Identifiers)
	e.end()
}

// ParameterFile is PARAMETERFILE[name,file name,ID*].
type ParameterFile struct {
	Name        string
	FileName    string
	Identifiers []*Identifier
}

func parseParameterFile(d *eng.Document, el eng.Element) (*ParameterFile, error) {
	a := attributesOf(d, el)
	if err := a.expect(2, 2); err != nil {
		return nil, err
	}
	pf := &ParameterFile{}
	var err error
	if pf.Name, err = a.text(0); err != nil {
		return nil, err
	}
	if pf.FileName, err = a.text(1); err != nil {
		return nil, err
	}
	err = subNodes(d, el, func(sub eng.Element) error {
		if kwID.has(sub.Keyword) {
			return appendIdentifier(d, sub, &pf.Identifiers)
		}
		return unrecognized(d, sub)
	})
	if err != nil {
		return nil, err
	}
	return pf, nil
}

func (pf *ParameterFile) emit(e emitter) {
	e.begin(kwParameterFile.canonical())
	e.text(pf.Name)
	e.text(pf.FileName)
	emitAll(e, pf.Identifiers)
	e.end()
}
