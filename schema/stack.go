package schema

import (
	"strings"

	"github.com/andaru/discogs/dumperr"
	"github.com/andaru/discogs/xmlutil"
)

// DefaultMaxDepth is the default limit on element nesting within a
// record, counting ignored subtrees.
const DefaultMaxDepth = 64

// maxRetainedText is the largest text buffer kept between records.
const maxRetainedText = 64 << 10

// Frame is one open element.
type Frame struct {
	Name  string
	Attrs xmlutil.Attrs

	// node is nil for an ignored element
	node *Node
	// text is the offset of this frame's text in the shared buffer
	text int
}

// Known reports whether the frame's element is part of the schema.
func (f *Frame) Known() bool { return f.node != nil }

// Stack is the context stack of open elements for one record.
//
// Frames share one text buffer; each frame owns the tail of the buffer
// starting at its offset, so closing a frame truncates the buffer back
// to where the frame began.
//
// Only the outermost element of an ignored subtree gets a frame. The
// elements nested inside it are counted in skip, so unknown content of
// any depth costs no memory and never reaches the depth limit.
type Stack struct {
	doc    *Node
	frames []Frame
	buf    []byte
	max    int
	skip   int
}

// NewStack returns a stack for records rooted at root. maxDepth values
// below one select DefaultMaxDepth.
func NewStack(root *Node, maxDepth int) *Stack {
	if maxDepth < 1 {
		maxDepth = DefaultMaxDepth
	}
	doc := &Node{children: map[string]*Node{root.Name: root}}
	return &Stack{doc: doc, frames: make([]Frame, 0, 16), max: maxDepth}
}

// Depth returns the number of open frames.
func (s *Stack) Depth() int { return len(s.frames) }

// Top returns the innermost open frame, or nil when the stack is empty.
func (s *Stack) Top() *Frame {
	if len(s.frames) == 0 {
		return nil
	}
	return &s.frames[len(s.frames)-1]
}

// Push opens an element. The schema node is the child named name of
// the top frame's node; at depth zero only the record root is known.
func (s *Stack) Push(name string, attrs xmlutil.Attrs) error {
	parent := s.doc
	if top := s.Top(); top != nil {
		if !top.Known() {
			s.skip++
			return nil
		}
		parent = top.node
	}
	if len(s.frames) >= s.max {
		return dumperr.TooDeep(name, s.max)
	}
	n := parent.Child(name)
	s.frames = append(s.frames, Frame{Name: name, Attrs: attrs, node: n, text: len(s.buf)})
	if n == nil {
		return nil
	}
	for _, fn := range n.begin {
		fn()
	}
	for _, fn := range n.start {
		if err := fn(attrs); err != nil {
			return locate(err, name)
		}
	}
	return nil
}

// Text adds character data to the top frame. It is dropped unless the
// frame's node collects text.
func (s *Stack) Text(data []byte) {
	if top := s.Top(); top != nil && top.node.collectsText() {
		s.buf = append(s.buf, data...)
	}
}

// Pop closes the top frame, which must be named name. It returns true
// when the closed frame was the record root. End tags inside an
// ignored subtree are counted, not matched; the end tag closing the
// subtree is matched against its outermost element.
func (s *Stack) Pop(name string) (bool, error) {
	if s.skip > 0 {
		s.skip--
		return false, nil
	}
	top := s.Top()
	if top == nil {
		return false, dumperr.Unbalanced("", name)
	}
	if top.Name != name {
		return false, dumperr.Unbalanced(top.Name, name)
	}
	f := *top
	s.frames = s.frames[:len(s.frames)-1]
	defer s.release(f.text)

	n := f.node
	if n == nil {
		return false, nil
	}
	if n.text != nil {
		text, ok := Text(s.buf[f.text:])
		if err := n.text(text, ok); err != nil {
			return false, locate(err, name)
		}
	}
	for _, hooks := range [][]EndFn{n.end, n.commit} {
		for _, fn := range hooks {
			if err := fn(); err != nil {
				return false, locate(err, name)
			}
		}
	}
	return len(s.frames) == 0, nil
}

// Reset discards all open frames.
func (s *Stack) Reset() {
	s.frames = s.frames[:0]
	s.skip = 0
	s.release(0)
}

// path returns the names of the open frames, e.g. "release/tracklist".
func (s *Stack) path() string {
	var b strings.Builder
	for i := range s.frames {
		if i > 0 {
			b.WriteByte('/')
		}
		b.WriteString(s.frames[i].Name)
	}
	return b.String()
}

func (s *Stack) release(offset int) {
	s.buf = s.buf[:offset]
	if offset == 0 && cap(s.buf) > maxRetainedText {
		s.buf = nil
	}
}

// locate attaches the element name to an error raised by a hook.
func locate(err error, name string) error {
	e := dumperr.As(err)
	if e == nil {
		return dumperr.BadElement(name, dumperr.WithCause(err))
	}
	if e.Element == "" {
		e.Element = name
	}
	return err
}
