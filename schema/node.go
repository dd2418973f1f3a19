package schema

import "github.com/andaru/discogs/xmlutil"

type (
	// StartFn is called with the attributes of an element when it opens.
	StartFn func(attrs xmlutil.Attrs) error
	// TextFn is called with the converted text of an element when it
	// closes. text is only valid for the duration of the call.
	TextFn func(text []byte, ok bool) error
	// EndFn is called after TextFn when an element closes.
	EndFn func() error
)

// Node is a schema node: an element name and the hooks run for it.
type Node struct {
	Name string

	begin    []func()
	start    []StartFn
	text     TextFn
	end      []EndFn
	commit   []EndFn
	children map[string]*Node
}

// NodeOption is a constructor option function for the Node type.
type NodeOption func(*Node)

// Element returns a new element node named name.
func Element(name string, opts ...NodeOption) *Node {
	n := &Node{Name: name}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// OnStart adds start hooks, run in order when the element opens.
func OnStart(fns ...StartFn) NodeOption {
	return func(n *Node) { n.start = append(n.start, fns...) }
}

// OnText sets the text hook, making the node collect character data.
func OnText(fn TextFn) NodeOption { return func(n *Node) { n.text = fn } }

// OnEnd adds end hooks, run in order when the element closes.
func OnEnd(fns ...EndFn) NodeOption {
	return func(n *Node) { n.end = append(n.end, fns...) }
}

// Collect makes the node a repeated sub-structure: *scratch is zeroed
// when the element opens, before any start hook, and appended to *list
// when it closes, after every other end hook.
func Collect[T any](scratch *T, list *[]T) NodeOption {
	return func(n *Node) {
		n.begin = append(n.begin, func() {
			var zero T
			*scratch = zero
		})
		n.commit = append(n.commit, func() error {
			*list = append(*list, *scratch)
			return nil
		})
	}
}

// Append adds child to n and returns the child. A child with the same
// name as an existing one replaces it.
func (n *Node) Append(child *Node) *Node {
	if n.children == nil {
		n.children = make(map[string]*Node)
	}
	n.children[child.Name] = child
	return child
}

// Children appends each of children to n and returns n.
func (n *Node) Children(children ...*Node) *Node {
	for _, child := range children {
		n.Append(child)
	}
	return n
}

// Child returns the child node named name, or nil.
func (n *Node) Child(name string) *Node {
	if n == nil {
		return nil
	}
	return n.children[name]
}

// collectsText reports whether character data inside n is kept.
func (n *Node) collectsText() bool { return n != nil && n.text != nil }
