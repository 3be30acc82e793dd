package wktcrs

// ValueKind tells how a TreeValue is written in WKT.
type ValueKind int

const (
	ValueText   ValueKind = iota // quoted free text
	ValueNumber                  // bare numeric literal
	ValueToken                   // bare enumerated token or date/time
)

func (k ValueKind) String() string {
	switch k {
	case ValueText:
		return "text"
	case ValueNumber:
		return "number"
	case ValueToken:
		return "token"
	default:
		return "unknown"
	}
}

// TreeValue is one attribute of a TreeNode. Numbers keep their literal.
type TreeValue struct {
	Kind ValueKind
	Text string
}

// TreeNode is a generic view of a model node: its canonical keyword, its
// attributes and its sub-nodes, in writing order.
type TreeNode struct {
	Keyword  string
	Values   []TreeValue
	Children []*TreeNode
}

// ToTree renders n into a generic tree. A node that writes several
// siblings, such as a CoordinateSystem with its axes, is returned under a
// node with an empty keyword.
func ToTree(n Node) *TreeNode {
	if n == nil {
		return nil
	}
	w := &treeEmitter{}
	n.emit(w)
	if len(w.roots) == 1 {
		return w.roots[0]
	}
	return &TreeNode{Children: w.roots}
}

// treeEmitter builds TreeNodes from the same emit calls that drive the
// text writer.
type treeEmitter struct {
	stack []*TreeNode
	roots []*TreeNode
}

func (w *treeEmitter) begin(keyword string) {
	n := &TreeNode{Keyword: keyword}
	if len(w.stack) == 0 {
		w.roots = append(w.roots, n)
	} else {
		top := w.stack[len(w.stack)-1]
		top.Children = append(top.Children, n)
	}
	w.stack = append(w.stack, n)
}

func (w *treeEmitter) end() { w.stack = w.stack[:len(w.stack)-1] }

func (w *treeEmitter) add(v TreeValue) {
	top := w.stack[len(w.stack)-1]
	top.Values = append(top.Values, v)
}

func (w *treeEmitter) text(s string)   { w.add(TreeValue{Kind: ValueText, Text: s}) }
func (w *treeEmitter) number(n Number) { w.add(TreeValue{Kind: ValueNumber, Text: n.String()}) }
func (w *treeEmitter) token(s string)  { w.add(TreeValue{Kind: ValueToken, Text: s}) }

func (w *treeEmitter) value(v Value) {
	if v.Quoted {
		w.text(v.Text)
		return
	}
	w.add(TreeValue{Kind: ValueNumber, Text: v.Text})
}

// Find returns the first descendant (depth first, n included) with the
// given keyword.
func (n *TreeNode) Find(keyword string) *TreeNode {
	if n == nil {
		return nil
	}
	if n.Keyword == keyword {
		return n
	}
	for _, c := range n.Children {
		if f := c.Find(keyword); f != nil {
			return f
		}
	}
	return nil
}
