package export

import (
	"bytes"
	"strconv"

	"gopkg.in/yaml.v3"

	wktcrs "github.com/reoring/wktcrs"
)

// TokenTag marks bare WKT tokens such as north or 2013-01-01 in YAML
// output.
const TokenTag = "!token"

// YAML encodes n as a YAML mapping with keyword, values and children keys.
func YAML(n wktcrs.Node) ([]byte, error) {
	doc := toYAMLNode(wktcrs.ToTree(n))
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func toYAMLNode(t *wktcrs.TreeNode) *yaml.Node {
	m := &yaml.Node{Kind: yaml.MappingNode}
	if t == nil {
		return m
	}
	if t.Keyword != "" {
		m.Content = append(m.Content, str("keyword"), str(t.Keyword))
	}
	if len(t.Values) > 0 {
		seq := &yaml.Node{Kind: yaml.SequenceNode}
		for _, v := range t.Values {
			seq.Content = append(seq.Content, yamlScalar(v))
		}
		m.Content = append(m.Content, str("values"), seq)
	}
	if len(t.Children) > 0 {
		seq := &yaml.Node{Kind: yaml.SequenceNode}
		for _, c := range t.Children {
			seq.Content = append(seq.Content, toYAMLNode(c))
		}
		m.Content = append(m.Content, str("children"), seq)
	}
	return m
}

func str(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

func yamlScalar(v wktcrs.TreeValue) *yaml.Node {
	switch v.Kind {
	case wktcrs.ValueNumber:
		tag := "!!float"
		if _, err := strconv.ParseInt(v.Text, 10, 64); err == nil {
			tag = "!!int"
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: v.Text}
	case wktcrs.ValueToken:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: TokenTag, Value: v.Text}
	default:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v.Text, Style: yaml.DoubleQuotedStyle}
	}
}
