package engine

import (
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// Root returns the root element. It panics on an empty document, which
// Parse never returns.
func (d *Document) Root() Element { return d.Elements[0] }

// Attributes returns the literals owned directly by owner, in declaration
// order.
func (d *Document) Attributes(owner Element) []Element {
	return lo.Filter(d.Elements, func(e Element, _ int) bool {
		return e.Kind == KindLiteral && e.Parent == owner.Index
	})
}

// SubNodes returns the nodes owned directly by owner, in declaration order.
func (d *Document) SubNodes(owner Element) []Element {
	return lo.Filter(d.Elements, func(e Element, _ int) bool {
		return e.Kind == KindNode && e.Parent == owner.Index
	})
}

// Ancestors returns the chain of owners of e, root first.
func (d *Document) Ancestors(e Element) []Element {
	var chain []Element
	for p := e.Parent; p >= 0; p = d.Elements[p].Parent {
		chain = append(chain, d.Elements[p])
	}
	return lo.Reverse(chain)
}

// Path renders the keyword path of e, e.g. /GEODCRS/DATUM/ELLIPSOID. A
// literal is addressed by its position among its owner's attributes.
func (d *Document) Path(e Element) string {
	parts := lo.Map(d.Ancestors(e), func(a Element, _ int) string { return a.Keyword })
	if e.Kind == KindNode {
		parts = append(parts, e.Keyword)
	} else if e.Parent >= 0 {
		pos := lo.IndexOf(lo.Map(d.Attributes(d.Elements[e.Parent]), func(a Element, _ int) int { return a.Index }), e.Index)
		parts = append(parts, strconv.Itoa(pos))
	}
	return "/" + strings.Join(parts, "/")
}
