package schema

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/andaru/discogs/dumperr"
	"github.com/andaru/discogs/xmlutil"
)

// Text is the conversion applied to all element text: surrounding
// whitespace is trimmed and empty text is absent.
func Text(raw []byte) ([]byte, bool) {
	t := bytes.TrimSpace(raw)
	return t, len(t) > 0
}

// AttrText applies the same conversion as Text to the named attribute.
func AttrText(attrs xmlutil.Attrs, name string) (string, bool) {
	v, ok := attrs.Get(name)
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	return v, v != ""
}

// ParseID parses an identifier: a base 10 unsigned 32 bit integer.
func ParseID(text string) (uint32, error) {
	if text == "" {
		return 0, errors.New("empty identifier")
	}
	v, err := strconv.ParseUint(text, 10, 32)
	if err != nil {
		return 0, errors.Errorf("invalid identifier %q", text)
	}
	return uint32(v), nil
}

// ParseOptionalID is ParseID where empty text is absent.
func ParseOptionalID(text string) (*uint32, error) {
	if text == "" {
		return nil, nil
	}
	v, err := ParseID(text)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// ParseInt parses a base 10 int.
func ParseInt(text string) (int, error) {
	v, err := strconv.Atoi(text)
	if err != nil {
		return 0, errors.Errorf("invalid integer %q", text)
	}
	return v, nil
}

// ParseBool parses a boolean as accepted by strconv.ParseBool.
func ParseBool(text string) (bool, error) {
	v, err := strconv.ParseBool(text)
	if err != nil {
		return false, errors.Errorf("invalid boolean %q", text)
	}
	return v, nil
}

// tolerate logs a value that could not be coerced into an optional
// field. The field is left absent.
func tolerate(field string, err error) {
	glog.Warningf("discarding %s: %v", field, err)
}

// Element text setters.

// SetString stores present text in *p.
func SetString(p **string) TextFn {
	return func(text []byte, ok bool) error {
		if ok {
			s := string(text)
			*p = &s
		}
		return nil
	}
}

// AppendString appends present text to *p. Absent items are skipped.
func AppendString(p *[]string) TextFn {
	return func(text []byte, ok bool) error {
		if ok {
			*p = append(*p, string(text))
		}
		return nil
	}
}

// SetID stores a required record identifier in *p and sets *seen.
func SetID(p *uint32, seen *bool) TextFn {
	return func(text []byte, _ bool) error {
		v, err := ParseID(string(text))
		if err != nil {
			return dumperr.BadElement("", dumperr.WithMessage(err.Error()))
		}
		*p, *seen = v, true
		return nil
	}
}

// SetRef stores a reference to another record in *p. Absent text
// leaves *p unchanged; text that is not an identifier is an error.
func SetRef(p *uint32) TextFn {
	return func(text []byte, ok bool) error {
		if !ok {
			return nil
		}
		v, err := ParseID(string(text))
		if err != nil {
			return dumperr.BadElement("", dumperr.WithMessage(err.Error()))
		}
		*p = v
		return nil
	}
}

// SetOptionalID is SetRef for an optional reference.
func SetOptionalID(p **uint32) TextFn {
	return func(text []byte, ok bool) error {
		if !ok {
			return nil
		}
		v, err := ParseOptionalID(string(text))
		if err != nil {
			return dumperr.BadElement("", dumperr.WithMessage(err.Error()))
		}
		*p = v
		return nil
	}
}

// SetInt stores an optional integer in *p. Invalid text is logged and
// leaves the field absent.
func SetInt(p **int) TextFn {
	return func(text []byte, ok bool) error {
		if !ok {
			return nil
		}
		v, err := ParseInt(string(text))
		if err != nil {
			tolerate("element text", err)
			return nil
		}
		*p = &v
		return nil
	}
}

// Attribute setters, for use with OnStart.

// AttrString stores the present attribute name in *p.
func AttrString(name string, p **string) StartFn {
	return func(attrs xmlutil.Attrs) error {
		if v, ok := AttrText(attrs, name); ok {
			*p = &v
		}
		return nil
	}
}

// AttrID stores the required identifier attribute name in *p and sets
// *seen.
func AttrID(name string, p *uint32, seen *bool) StartFn {
	return func(attrs xmlutil.Attrs) error {
		v, ok := AttrText(attrs, name)
		if !ok {
			return dumperr.MissingAttribute(name, "")
		}
		id, err := ParseID(v)
		if err != nil {
			return dumperr.BadAttribute(name, "", dumperr.WithMessage(err.Error()))
		}
		*p, *seen = id, true
		return nil
	}
}

// AttrRef stores the reference attribute name in *p when present.
func AttrRef(name string, p *uint32) StartFn {
	return func(attrs xmlutil.Attrs) error {
		v, ok := AttrText(attrs, name)
		if !ok {
			return nil
		}
		id, err := ParseID(v)
		if err != nil {
			return dumperr.BadAttribute(name, "", dumperr.WithMessage(err.Error()))
		}
		*p = id
		return nil
	}
}

// AttrOptionalID is AttrRef for an optional reference.
func AttrOptionalID(name string, p **uint32) StartFn {
	return func(attrs xmlutil.Attrs) error {
		v, _ := AttrText(attrs, name)
		id, err := ParseOptionalID(v)
		if err != nil {
			return dumperr.BadAttribute(name, "", dumperr.WithMessage(err.Error()))
		}
		if id != nil {
			*p = id
		}
		return nil
	}
}

// AttrInt stores the optional integer attribute name in *p.
func AttrInt(name string, p **int) StartFn {
	return func(attrs xmlutil.Attrs) error {
		v, ok := AttrText(attrs, name)
		if !ok {
			return nil
		}
		n, err := ParseInt(v)
		if err != nil {
			tolerate(attrField(name), err)
			return nil
		}
		*p = &n
		return nil
	}
}

// AttrUint stores the optional unsigned attribute name in *p.
func AttrUint(name string, p **uint32) StartFn {
	return func(attrs xmlutil.Attrs) error {
		v, ok := AttrText(attrs, name)
		if !ok {
			return nil
		}
		n, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			tolerate(attrField(name), errors.Errorf("invalid unsigned integer %q", v))
			return nil
		}
		u := uint32(n)
		*p = &u
		return nil
	}
}

// AttrBool stores the optional boolean attribute name in *p.
func AttrBool(name string, p **bool) StartFn {
	return func(attrs xmlutil.Attrs) error {
		v, ok := AttrText(attrs, name)
		if !ok {
			return nil
		}
		b, err := ParseBool(v)
		if err != nil {
			tolerate(attrField(name), err)
			return nil
		}
		*p = &b
		return nil
	}
}

func attrField(name string) string { return fmt.Sprintf("attribute %q", name) }
