package wktcrs

import "strings"

// Default layout used by Pretty.
const (
	DefaultNewline = "\n"
	DefaultIndent  = "    "
)

// Node is implemented by every model type that can be written as WKT.
type Node interface {
	emit(e emitter)
}

// emitter receives a node tree in document order. Attributes of a node are
// always emitted before its sub-nodes.
type emitter interface {
	begin(keyword string)
	text(s string)
	number(n Number)
	token(s string)
	value(v Value)
	end()
}

// Serialize renders n as WKT. Every sub-node starts on a new line made of
// newline followed by indent repeated once per nesting level; attributes
// stay on their node's line. Serialize(n, "", "") yields the compact form.
func Serialize(n Node, newline, indent string) string {
	if n == nil {
		return ""
	}
	w := &textWriter{newline: newline, indent: indent}
	n.emit(w)
	return w.b.String()
}

// Pretty renders n with DefaultNewline and DefaultIndent.
func Pretty(n Node) string { return Serialize(n, DefaultNewline, DefaultIndent) }

// Compact renders n on a single line without padding.
func Compact(n Node) string { return Serialize(n, "", "") }

// textWriter is the emitter behind Serialize. The layout tokens travel with
// it through every nested emit call.
type textWriter struct {
	b       strings.Builder
	newline string
	indent  string
	open    []bool // per open node: no item written yet
	roots   int
}

func (w *textWriter) item(node bool) {
	n := len(w.open)
	if n == 0 {
		if w.roots > 0 {
			w.b.WriteByte(',')
		}
		w.roots++
		return
	}
	if !w.open[n-1] {
		w.b.WriteByte(',')
	}
	w.open[n-1] = false
	if node {
		w.b.WriteString(w.newline)
		for i := 0; i < n; i++ {
			w.b.WriteString(w.indent)
		}
	}
}

func (w *textWriter) begin(keyword string) {
	w.item(true)
	w.b.WriteString(keyword)
	w.b.WriteByte('[')
	w.open = append(w.open, true)
}

func (w *textWriter) end() {
	w.b.WriteByte(']')
	w.open = w.open[:len(w.open)-1]
}

func (w *textWriter) text(s string) {
	w.item(false)
	w.b.WriteString(quote(s))
}

func (w *textWriter) number(n Number) {
	w.item(false)
	w.b.WriteString(n.String())
}

func (w *textWriter) token(s string) {
	w.item(false)
	w.b.WriteString(s)
}

func (w *textWriter) value(v Value) {
	w.item(false)
	w.b.WriteString(v.String())
}

// temporal writes a date/time shaped value bare and anything else quoted.
func temporal(e emitter, s string) {
	if IsDateTime(s) {
		e.token(s)
		return
	}
	e.text(s)
}

// textLeaf writes KEYWORD["text"] when s is set, even to the empty string.
func textLeaf(e emitter, keyword string, s *string) {
	if s == nil {
		return
	}
	e.begin(keyword)
	e.text(*s)
	e.end()
}

func emitAll[T Node](e emitter, nodes []T) {
	for _, n := range nodes {
		n.emit(e)
	}
}
