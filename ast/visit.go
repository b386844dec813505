package ast

// VisitMut walks the subtree rooted at e in pre-order. Every element for which
// match returns true is passed to modify before its children are visited.
// It reports whether any element matched.
//
// match and modify receive the live element. modify may change the element's
// own fields, but must not move children between elements.
//
// The walk uses an explicit stack, so nesting depth is bounded only by memory.
func VisitMut(e Element, match func(Element) bool, modify func(Element)) bool {
	modified := false
	stack := []Element{e}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if cur == nil {
			continue
		}
		if match(cur) {
			modify(cur)
			modified = true
		}
		if c, ok := cur.(Container); ok {
			children := c.ChildNodes()
			for i := len(children) - 1; i >= 0; i-- {
				stack = append(stack, children[i])
			}
		}
	}
	return modified
}

// VisitMut applies VisitMut to every top-level element of the document in order.
func (d *Document) VisitMut(match func(Element) bool, modify func(Element)) bool {
	modified := false
	for _, e := range d.Elements {
		if VisitMut(e, match, modify) {
			modified = true
		}
	}
	return modified
}

// FindAndModify applies modify to every element of kind k in the document.
func FindAndModify(d *Document, k Kind, modify func(Element)) bool {
	return d.VisitMut(func(e Element) bool { return e.Kind() == k }, modify)
}

// ModifyAll applies modify to every element of type T in the document,
// e.g. ModifyAll(doc, func(b *Break) { ... }).
func ModifyAll[T Element](d *Document, modify func(T)) bool {
	return d.VisitMut(
		func(e Element) bool {
			_, ok := e.(T)
			return ok
		},
		func(e Element) { modify(e.(T)) },
	)
}

// Equal reports whether a and b are structurally equal: same kind, same
// field values and pairwise equal children. A nil child list equals an
// empty one.
func Equal(a, b Element) bool {
	type pair struct{ a, b Element }
	stack := []pair{{a, b}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if p.a == nil || p.b == nil {
			if p.a != p.b {
				return false
			}
			continue
		}
		if p.a.Kind() != p.b.Kind() || !equalAttrs(p.a.Attrs(), p.b.Attrs()) {
			return false
		}
		if ta, ok := p.a.(*Text); ok {
			if ta.Value != p.b.(*Text).Value {
				return false
			}
			continue
		}
		ca, aok := p.a.(Container)
		cb, bok := p.b.(Container)
		if aok != bok {
			return false
		}
		if !aok {
			continue
		}
		na, nb := ca.ChildNodes(), cb.ChildNodes()
		if len(na) != len(nb) {
			return false
		}
		for i := range na {
			stack = append(stack, pair{na[i], nb[i]})
		}
	}
	return true
}

// Equal reports whether both documents hold structurally equal element sequences.
func (d *Document) Equal(o *Document) bool {
	if d == nil || o == nil {
		return d == o
	}
	if len(d.Elements) != len(o.Elements) {
		return false
	}
	for i := range d.Elements {
		if !Equal(d.Elements[i], o.Elements[i]) {
			return false
		}
	}
	return true
}

func equalAttrs(a, b []Attr) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
