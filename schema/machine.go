package schema

import (
	"encoding/xml"
	"fmt"
	"io"

	"github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/andaru/discogs/dumperr"
	"github.com/andaru/discogs/xmlutil"
)

// TokenSource is a pull tokenizer, such as *xml.Decoder.
type TokenSource interface {
	RawToken() (xml.Token, error)
}

// positioner is implemented by token sources that report the input
// position of the most recent token.
type positioner interface {
	InputPos() (line, column int)
}

// Builder accumulates one record of type R from schema hooks.
type Builder[R any] interface {
	// Root returns the schema tree for the record element.
	Root() *Node
	// Reset clears all record and scratch state.
	Reset()
	// Take validates and returns the completed record.
	Take() (R, error)
	// Kind returns the record element name, for error context.
	Kind() string
	// ID returns the identifier of the record being built, if seen.
	ID() (uint32, bool)
}

// State is the state of a Machine.
type State int

const (
	// AwaitingRecord is between records, with no element open
	AwaitingRecord State = iota
	// InRecord is inside a record element
	InRecord
	// RecordReady is set when the record element has closed, until
	// the record is handed to the caller
	RecordReady
	// Exhausted is after the end of input
	Exhausted
	// Failed is after a terminal error
	Failed
)

func (s State) String() string {
	switch s {
	case AwaitingRecord:
		return "awaiting-record"
	case InRecord:
		return "in-record"
	case RecordReady:
		return "record-ready"
	case Exhausted:
		return "exhausted"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Stats counts the work done by a Machine.
type Stats struct {
	Records int64
	Tokens  int64
}

// Machine reads records of type R from a token source, one per call
// to Next.
type Machine[R any] struct {
	src   TokenSource
	b     Builder[R]
	stack *Stack
	state State
	err   error
	stats Stats

	container string
	closed    bool
	file      string
}

// MachineOption is a constructor option function for Machine.
type MachineOption func(*machineOptions)

type machineOptions struct {
	maxDepth  int
	container string
	file      string
}

// WithMaxDepth sets the element nesting limit.
func WithMaxDepth(n int) MachineOption { return func(o *machineOptions) { o.maxDepth = n } }

// WithContainer sets the name of the container element whose end tag
// is accepted once between records. Input ending before that end tag
// is truncated, and no record may follow it.
func WithContainer(name string) MachineOption {
	return func(o *machineOptions) { o.container = name }
}

// WithFile sets the file name reported in errors.
func WithFile(name string) MachineOption { return func(o *machineOptions) { o.file = name } }

// NewMachine returns a machine reading records built by b from src.
func NewMachine[R any](src TokenSource, b Builder[R], opts ...MachineOption) *Machine[R] {
	var o machineOptions
	for _, opt := range opts {
		opt(&o)
	}
	b.Reset()
	return &Machine[R]{
		src:       src,
		b:         b,
		stack:     NewStack(b.Root(), o.maxDepth),
		container: o.container,
		file:      o.file,
	}
}

// State returns the current machine state.
func (m *Machine[R]) State() State { return m.state }

// Err returns the terminal error, if the machine has failed.
func (m *Machine[R]) Err() error { return m.err }

// Stats returns the records yielded and tokens consumed so far.
func (m *Machine[R]) Stats() Stats { return m.stats }

// Begin feeds a start element read by the caller before the machine
// took over the token source, such as the first record of a dump that
// has no container element.
func (m *Machine[R]) Begin(se xml.StartElement) error {
	if m.state == Failed {
		return m.err
	}
	m.stats.Tokens++
	if err := m.handle(se); err != nil {
		return m.fail(err)
	}
	return nil
}

// Fail moves the machine to the Failed state with err, unless it has
// already failed. Later calls to Next return err.
func (m *Machine[R]) Fail(err error) {
	if m.state != Failed {
		m.state, m.err = Failed, err
	}
}

// Next returns the next record. It returns io.EOF after the last
// record, and the same terminal error on every call once failed.
func (m *Machine[R]) Next() (rec R, err error) {
	switch m.state {
	case Failed:
		return rec, m.err
	case Exhausted:
		return rec, io.EOF
	}
	for {
		tok, err := m.src.RawToken()
		if err == io.EOF {
			if top := m.stack.Top(); top != nil {
				return rec, m.fail(dumperr.Malformed(io.ErrUnexpectedEOF,
					dumperr.WithMessage(fmt.Sprintf("input ended inside <%s>", top.Name))))
			}
			if m.container != "" && !m.closed {
				return rec, m.fail(dumperr.Malformed(io.ErrUnexpectedEOF,
					dumperr.WithMessage(fmt.Sprintf("input ended before </%s>", m.container))))
			}
			m.state = Exhausted
			glog.V(1).Infof("%s: end of input after %d records", m.b.Kind(), m.stats.Records)
			return rec, io.EOF
		}
		if err != nil {
			return rec, m.fail(TokenError(err))
		}
		m.stats.Tokens++
		if err := m.handle(tok); err != nil {
			return rec, m.fail(err)
		}
		if m.state != RecordReady {
			continue
		}
		rec, err = m.b.Take()
		if err != nil {
			return rec, m.fail(err)
		}
		m.b.Reset()
		m.stats.Records++
		m.state = AwaitingRecord
		return rec, nil
	}
}

func (m *Machine[R]) handle(tok xml.Token) error {
	switch t := tok.(type) {
	case xml.StartElement:
		// prefixed names never match the schema
		name := xmlutil.QualifiedName(t.Name)
		topLevel := m.stack.Depth() == 0
		if topLevel && m.closed {
			return dumperr.Malformed(nil, dumperr.WithMessage(
				fmt.Sprintf("element <%s> after </%s>", name, m.container)))
		}
		if err := m.stack.Push(name, xmlutil.Attrs(t.Attr)); err != nil {
			return err
		}
		if topLevel && m.state == AwaitingRecord {
			if m.stack.Top().Known() {
				m.state = InRecord
				if glog.V(2) {
					glog.Infof("%s: record start at token %d", m.b.Kind(), m.stats.Tokens)
				}
			} else if glog.V(1) {
				glog.Infof("%s: ignoring top level element <%s>", m.b.Kind(), name)
			}
		}
	case xml.EndElement:
		name := xmlutil.QualifiedName(t.Name)
		if m.stack.Depth() == 0 {
			if m.container != "" && !m.closed && name == m.container {
				glog.V(1).Infof("%s: container <%s> closed", m.b.Kind(), m.container)
				m.closed = true
				return nil
			}
			return dumperr.Unbalanced("", name)
		}
		done, err := m.stack.Pop(name)
		if err != nil {
			return err
		}
		if done {
			m.state = RecordReady
		}
	case xml.CharData:
		m.stack.Text(t)
	}
	return nil
}

// fail records err, annotated with the record and input position, as
// the terminal error.
func (m *Machine[R]) fail(err error) error {
	if dumperr.As(err) == nil {
		err = dumperr.BadElement("", dumperr.WithCause(err))
	}
	opts := []dumperr.Option{dumperr.WithFile(m.file)}
	if m.inRecord() {
		opts = append(opts, dumperr.WithRecord(m.b.Kind()))
		if id, ok := m.b.ID(); ok {
			opts = append(opts, dumperr.WithID(id))
		}
	}
	if p, ok := m.src.(positioner); ok {
		line, col := p.InputPos()
		opts = append(opts, dumperr.WithPosition(line, col))
	}
	dumperr.Annotate(err, opts...)
	path := m.stack.path()
	m.stack.Reset()
	m.Fail(errors.WithStack(err))
	glog.V(1).Infof("%s: failed in <%s>: %v", m.b.Kind(), path, err)
	return m.err
}

// inRecord reports whether a record element is open or just closed.
func (m *Machine[R]) inRecord() bool {
	if m.state == InRecord || m.state == RecordReady {
		return true
	}
	return m.stack.Depth() > 0 && m.stack.frames[0].Known()
}

// TokenError classifies an error returned by a token source: syntax
// errors are malformed tokens, anything else is an I/O failure.
func TokenError(err error) error {
	if dumperr.As(err) != nil {
		return err
	}
	var syntax *xml.SyntaxError
	if errors.As(err, &syntax) {
		return dumperr.Malformed(err, dumperr.WithPosition(syntax.Line, 0))
	}
	return dumperr.IO(err)
}
