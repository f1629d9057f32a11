package asn1der

// walker drives a depth first traversal of a tree without recursion.
//
// enter is called before a node's children and reports whether to descend
// into them.  next returns the child of parent which follows prev, or the first
// child when prev is nil, and nil when the children are exhausted.  leave is called
// once the children are done, and also right after enter for nodes which were
// not descended into.  Nil callbacks descend everywhere and visit every component.
type walker struct {
	enter func(n *Node) (descend bool, err error)
	next  func(parent, prev *Node) (*Node, error)
	leave func(n *Node) error
}

func nextComponent(parent, prev *Node) (*Node, error) {
	if prev == nil {
		return parent.firstComponent(), nil
	}
	return prev.nextComponent(), nil
}

func (w walker) walk(root *Node) error {
	enter, next, leave := w.enter, w.next, w.leave
	if enter == nil {
		enter = func(*Node) (bool, error) { return true, nil }
	}
	if next == nil {
		next = nextComponent
	}
	if leave == nil {
		leave = func(*Node) error { return nil }
	}

	type frame struct {
		n, cur *Node
	}

	descend, err := enter(root)
	if err != nil {
		return err
	}
	if !descend {
		return leave(root)
	}
	stack := []frame{{n: root}}
	for len(stack) > 0 {
		top := len(stack) - 1
		c, err := next(stack[top].n, stack[top].cur)
		if err != nil {
			return err
		}
		if c == nil {
			if err := leave(stack[top].n); err != nil {
				return err
			}
			stack = stack[:top]
			continue
		}
		stack[top].cur = c
		descend, err := enter(c)
		if err != nil {
			return err
		}
		if descend {
			stack = append(stack, frame{n: c})
			continue
		}
		if err := leave(c); err != nil {
			return err
		}
	}
	return nil
}
