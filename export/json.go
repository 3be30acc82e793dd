package export

import (
	j "github.com/goccy/go-json"

	wktcrs "github.com/reoring/wktcrs"
)

// jsonNode mirrors wktcrs.TreeNode with stable field names.
type jsonNode struct {
	Keyword  string      `json:"keyword,omitempty"`
	Values   []jsonValue `json:"values,omitempty"`
	Children []*jsonNode `json:"children,omitempty"`
}

// jsonValue writes text as a string, a number as its literal and a token
// as {"token":...}.
type jsonValue wktcrs.TreeValue

func (v jsonValue) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case wktcrs.ValueNumber:
		if isJSONNumber(v.Text) {
			return []byte(v.Text), nil
		}
		return j.Marshal(v.Text)
	case wktcrs.ValueToken:
		return j.Marshal(map[string]string{"token": v.Text})
	default:
		return j.Marshal(v.Text)
	}
}

// isJSONNumber reports whether a WKT literal is also a JSON number. WKT
// allows forms such as +5 or .5 that JSON does not.
func isJSONNumber(lit string) bool {
	if lit == "" {
		return false
	}
	c := lit[0]
	if c != '-' && (c < '0' || c > '9') {
		return false
	}
	return j.Valid([]byte(lit))
}

func toJSONNode(t *wktcrs.TreeNode) *jsonNode {
	if t == nil {
		return nil
	}
	n := &jsonNode{Keyword: t.Keyword}
	for _, v := range t.Values {
		n.Values = append(n.Values, jsonValue(v))
	}
	for _, c := range t.Children {
		n.Children = append(n.Children, toJSONNode(c))
	}
	return n
}

// JSON encodes n. An empty indent yields compact output.
func JSON(n wktcrs.Node, indent string) ([]byte, error) {
	doc := toJSONNode(wktcrs.ToTree(n))
	if indent == "" {
		return j.Marshal(doc)
	}
	return j.MarshalIndent(doc, "", indent)
}
