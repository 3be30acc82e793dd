package engine

// Kind distinguishes bracketed nodes from bare positional values.
type Kind int

const (
	KindNode Kind = iota
	KindLiteral
)

func (k Kind) String() string {
	switch k {
	case KindNode:
		return "node"
	case KindLiteral:
		return "literal"
	default:
		return "unknown"
	}
}

// OwnerRoot is the owner tag carried by the root element.
const OwnerRoot = "root"

// Element is one entry of the flat list produced by Scan. Nodes span the
// text between their brackets; literals span the trimmed value between two
// separators.
type Element struct {
	Index   int
	Kind    Kind
	Keyword string // folded keyword; empty for literals
	Text    string // source spelling of the keyword or the literal
	Start   int    // first byte inside the span
	Stop    int    // one past the last byte of the span
	Offset  int    // byte offset of the keyword or literal in the input
	Parent  int    // index of the owning node, -1 for the root
	Owner   string // keyword of the owning node, OwnerRoot for the root
	Derived bool   // subtree contains a deriving conversion
}

// IsNode reports whether the element has its own bracket pair.
func (e Element) IsNode() bool { return e.Kind == KindNode }

// Contains reports whether o lies strictly inside the span of e.
func (e Element) Contains(o Element) bool {
	return e.Kind == KindNode && e.Index != o.Index && o.Start >= e.Start && o.Stop <= e.Stop
}

// Options bounds a single scan.
type Options struct {
	MaxDepth int   // maximum bracket nesting, 0 for unlimited
	MaxBytes int64 // maximum input size, 0 for unlimited
}

// Parse runs the scanner and the indexer over text and returns the indexed
// document. Each call owns its element list.
func Parse(text string, opt Options) (*Document, error) {
	elems, err := Scan(text, opt)
	if err != nil {
		return nil, err
	}
	return Index(text, elems), nil
}
