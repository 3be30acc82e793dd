// Package export renders WKT model nodes as JSON or YAML documents. Both
// formats are built from wktcrs.ToTree and keep numeric literals verbatim.
package export

import (
	"fmt"
	"strings"

	wktcrs "github.com/reoring/wktcrs"
)

// Format selects an output encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat accepts a format name in any letter case.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("export: unknown format %q", s)
	}
}

// Render encodes n in the given format. indent only applies to JSON.
func Render(n wktcrs.Node, f Format, indent string) ([]byte, error) {
	switch f {
	case FormatJSON:
		return JSON(n, indent)
	case FormatYAML:
		return YAML(n)
	default:
		return nil, fmt.Errorf("export: unknown format %q", f)
	}
}
