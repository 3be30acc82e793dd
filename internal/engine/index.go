package engine

// Document is one indexed parse: the input text and its element list with
// owners assigned. It is never shared between parses.
type Document struct {
	Text     string
	Elements []Element
}

// Index assigns every element its owner: the nearest preceding node whose
// span contains it. The root is tagged OwnerRoot. Derived flags are then
// propagated from each deriving keyword to all of its ancestors.
func Index(text string, elems []Element) *Document {
	if len(elems) == 0 {
		return &Document{Text: text}
	}
	elems[0].Parent = -1
	elems[0].Owner = OwnerRoot
	for i := 1; i < len(elems); i++ {
		for j := i - 1; j >= 0; j-- {
			if elems[j].Contains(elems[i]) {
				elems[i].Parent = j
				elems[i].Owner = elems[j].Keyword
				break
			}
		}
	}
	for i := range elems {
		if elems[i].Kind != KindNode || !IsDerivingKeyword(elems[i].Keyword) {
			continue
		}
		for p := elems[i].Parent; p >= 0 && !elems[p].Derived; p = elems[p].Parent {
			elems[p].Derived = true
		}
	}
	return &Document{Text: text, Elements: elems}
}
