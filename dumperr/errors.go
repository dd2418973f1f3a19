package dumperr

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
)

// Kind represents the class of a dump reading error
type Kind int

const (
	// KindIOFailure is a failure to open or read the byte source
	KindIOFailure Kind = iota
	// KindUnknownContainer is a document whose outer element names no known record kind
	KindUnknownContainer
	// KindMalformedToken is invalid lexical structure reported by the tokenizer
	KindMalformedToken
	// KindSchemaViolation is a missing or invalid required field, or unbalanced nesting
	KindSchemaViolation
)

func (k Kind) String() string {
	switch k {
	case KindIOFailure:
		return "io-failure"
	case KindUnknownContainer:
		return "unknown-container"
	case KindMalformedToken:
		return "malformed-token"
	case KindSchemaViolation:
		return "schema-violation"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

func (k *Kind) UnmarshalText(b []byte) error {
	b = bytes.TrimSpace(b)
	switch string(b) {
	case "io-failure":
		*k = KindIOFailure
	case "unknown-container":
		*k = KindUnknownContainer
	case "malformed-token":
		*k = KindMalformedToken
	case "schema-violation":
		*k = KindSchemaViolation
	default:
		return errors.New("unknown value")
	}
	return nil
}

func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// Error is a dump reading error.
//
// Only Kind is always set. The remaining fields locate the failure as
// precisely as the failing layer knows it: the file, the record being
// built, and the element or attribute that could not be used.
type Error struct {
	Kind      Kind   `json:"kind"`
	File      string `json:"file,omitempty"`
	Record    string `json:"record,omitempty"`
	ID        uint32 `json:"id,omitempty"`
	Element   string `json:"element,omitempty"`
	Attribute string `json:"attribute,omitempty"`
	Line      int    `json:"line,omitempty"`
	Column    int    `json:"column,omitempty"`
	Message   string `json:"message,omitempty"`
	Cause     error  `json:"-"`
}

func (e *Error) Error() string {
	s := e.Kind.String() + " error"
	if e.Element != "" {
		s += " element:" + e.Element
	}
	if e.Attribute != "" {
		s += " attribute:" + e.Attribute
	}
	if e.Record != "" {
		s += " record:" + e.Record
		if e.ID != 0 {
			s += "/" + strconv.FormatUint(uint64(e.ID), 10)
		}
	}
	if e.File != "" {
		s += " file:" + e.File
	}
	if e.Line > 0 {
		s += fmt.Sprintf(" line:%d:%d", e.Line, e.Column)
	}
	if e.Message != "" {
		s += " " + e.Message
	}
	if e.Cause != nil {
		s += ": " + e.Cause.Error()
	}
	return s
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error { return e.Cause }

// Is reports whether target is the sentinel for e's kind, so that
// errors.Is(err, ErrSchemaViolation) matches any schema violation.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || t == nil {
		return false
	}
	if t == e {
		return true
	}
	return isSentinel(t) && t.Kind == e.Kind
}

var (
	ErrIOFailure        = &Error{Kind: KindIOFailure}
	ErrUnknownContainer = &Error{Kind: KindUnknownContainer}
	ErrMalformedToken   = &Error{Kind: KindMalformedToken}
	ErrSchemaViolation  = &Error{Kind: KindSchemaViolation}

	// ErrClosed is returned by iterators used after Close.
	ErrClosed = &Error{Kind: KindIOFailure, Message: "reader closed"}
)

func isSentinel(e *Error) bool {
	return e == ErrIOFailure || e == ErrUnknownContainer || e == ErrMalformedToken || e == ErrSchemaViolation
}

// KindOf returns the Kind of the first *Error in err's chain.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

// As returns the first *Error in err's chain, or nil.
func As(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return nil
}

func newError(k Kind, opts []Option) *Error {
	e := &Error{Kind: k}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func IO(cause error, opts ...Option) *Error {
	e := newError(KindIOFailure, opts)
	if e.Cause == nil {
		e.Cause = cause
	}
	return e
}

func UnknownContainer(elementName string, opts ...Option) *Error {
	e := newError(KindUnknownContainer, opts)
	e.Element = elementName
	return e
}

func Malformed(cause error, opts ...Option) *Error {
	e := newError(KindMalformedToken, opts)
	if e.Cause == nil {
		e.Cause = cause
	}
	return e
}

func MissingElement(elementName string, opts ...Option) *Error {
	e := newError(KindSchemaViolation, opts)
	e.Element = elementName
	if e.Message == "" {
		e.Message = "missing required element"
	}
	return e
}

func MissingAttribute(attributeName, elementName string, opts ...Option) *Error {
	e := newError(KindSchemaViolation, opts)
	e.Element, e.Attribute = elementName, attributeName
	if e.Message == "" {
		e.Message = "missing required attribute"
	}
	return e
}

func BadElement(elementName string, opts ...Option) *Error {
	e := newError(KindSchemaViolation, opts)
	e.Element = elementName
	return e
}

func BadAttribute(attributeName, elementName string, opts ...Option) *Error {
	e := newError(KindSchemaViolation, opts)
	e.Element, e.Attribute = elementName, attributeName
	return e
}

// Unbalanced reports an end tag that does not close the open element.
// want is empty when no element is open.
func Unbalanced(want, got string, opts ...Option) *Error {
	e := newError(KindSchemaViolation, opts)
	e.Element = got
	if e.Message == "" {
		if want == "" {
			e.Message = fmt.Sprintf("unexpected end tag </%s>", got)
		} else {
			e.Message = fmt.Sprintf("element <%s> closed by </%s>", want, got)
		}
	}
	return e
}

// TooDeep reports nesting beyond the configured stack limit.
func TooDeep(elementName string, limit int, opts ...Option) *Error {
	e := newError(KindSchemaViolation, opts)
	e.Element = elementName
	if e.Message == "" {
		e.Message = fmt.Sprintf("nesting deeper than %d elements", limit)
	}
	return e
}
