package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/andaru/discogs/dumperr"
	"github.com/andaru/discogs/xmlutil"
)

func TestText(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want string
		ok   bool
	}{
		{in: "", ok: false},
		{in: " \n\t ", ok: false},
		{in: "Aphex Twin", want: "Aphex Twin", ok: true},
		{in: "\n  Line one\nLine two  \n", want: "Line one\nLine two", ok: true},
	} {
		got, ok := Text([]byte(tc.in))
		assert.Equal(t, tc.ok, ok, "%q", tc.in)
		assert.Equal(t, tc.want, string(got), "%q", tc.in)
	}
}

func TestParseID(t *testing.T) {
	for _, tc := range []struct {
		in      string
		want    uint32
		wantErr string
	}{
		{in: "1", want: 1},
		{in: "0", want: 0},
		{in: "4294967295", want: 4294967295},
		{in: "4294967296", wantErr: `invalid identifier "4294967296"`},
		{in: "-1", wantErr: `invalid identifier "-1"`},
		{in: "+1", wantErr: `invalid identifier "+1"`},
		{in: "12a", wantErr: `invalid identifier "12a"`},
		{in: "", wantErr: "empty identifier"},
	} {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseID(tc.in)
			if tc.wantErr != "" {
				assert.EqualError(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	v, err := ParseOptionalID("")
	assert.NoError(t, err)
	assert.Nil(t, v)
	v, err = ParseOptionalID("42")
	assert.NoError(t, err)
	assert.Equal(t, uint32(42), *v)
	_, err = ParseOptionalID("x")
	assert.Error(t, err)
}

func TestParseScalars(t *testing.T) {
	a := assert.New(t)
	n, err := ParseInt("-3")
	a.NoError(err)
	a.Equal(-3, n)
	_, err = ParseInt("3.5")
	a.EqualError(err, `invalid integer "3.5"`)

	b, err := ParseBool("true")
	a.NoError(err)
	a.True(b)
	b, err = ParseBool("false")
	a.NoError(err)
	a.False(b)
	_, err = ParseBool("yes")
	a.EqualError(err, `invalid boolean "yes"`)
}

func TestTextSetters(t *testing.T) {
	a := assert.New(t)
	present := func(s string) ([]byte, bool) { return Text([]byte(s)) }

	var s *string
	a.NoError(SetString(&s)(present("")))
	a.Nil(s)
	a.NoError(SetString(&s)(present("x")))
	a.Equal("x", *s)

	var list []string
	a.NoError(AppendString(&list)(present("a")))
	a.NoError(AppendString(&list)(present(" ")))
	a.NoError(AppendString(&list)(present("b")))
	a.Equal([]string{"a", "b"}, list)

	var id uint32
	var seen bool
	err := SetID(&id, &seen)(present(""))
	a.Equal(dumperr.KindSchemaViolation, dumperr.As(err).Kind)
	a.False(seen)
	err = SetID(&id, &seen)(present("abc"))
	a.Equal(`invalid identifier "abc"`, dumperr.As(err).Message)
	a.NoError(SetID(&id, &seen)(present(" 77 ")))
	a.True(seen)
	a.Equal(uint32(77), id)

	var ref uint32
	a.NoError(SetRef(&ref)(present("")))
	a.Zero(ref)
	a.NoError(SetRef(&ref)(present("5")))
	a.Equal(uint32(5), ref)
	a.Error(SetRef(&ref)(present("five")))

	var opt *uint32
	a.NoError(SetOptionalID(&opt)(present("")))
	a.Nil(opt)
	a.NoError(SetOptionalID(&opt)(present("9")))
	a.Equal(uint32(9), *opt)
	a.Error(SetOptionalID(&opt)(present("-9")))

	var year *int
	a.NoError(SetInt(&year)(present("1999")))
	a.Equal(1999, *year)
	year = nil
	a.NoError(SetInt(&year)(present("199?")), "invalid optional numbers are tolerated")
	a.Nil(year)
}

func TestAttrSetters(t *testing.T) {
	a := assert.New(t)
	start := xmlutil.StartElement("video",
		"src", " http://example.com/v ",
		"duration", "95",
		"embed", "true",
		"width", "wide",
		"id", "",
	)
	attrs := xmlutil.Attrs(start.Attr)

	var src, missing *string
	a.NoError(AttrString("src", &src)(attrs))
	a.NoError(AttrString("title", &missing)(attrs))
	a.Equal("http://example.com/v", *src)
	a.Nil(missing)

	var dur, bad *uint32
	a.NoError(AttrUint("duration", &dur)(attrs))
	a.Equal(uint32(95), *dur)
	a.NoError(AttrUint("embed", &bad)(attrs))
	a.Nil(bad)

	var embed *bool
	a.NoError(AttrBool("embed", &embed)(attrs))
	a.True(*embed)

	var width *int
	a.NoError(AttrInt("width", &width)(attrs))
	a.Nil(width)
	a.NoError(AttrInt("duration", &width)(attrs))
	a.Equal(95, *width)

	var id uint32
	var seen bool
	err := AttrID("id", &id, &seen)(attrs)
	e := dumperr.As(err)
	if a.NotNil(e) {
		a.Equal("id", e.Attribute)
		a.Equal("missing required attribute", e.Message, "empty attributes are absent")
	}
	err = AttrID("duration", &id, &seen)(attrs)
	a.NoError(err)
	a.True(seen)
	err = AttrID("src", &id, &seen)(attrs)
	a.Equal(dumperr.KindSchemaViolation, dumperr.As(err).Kind)

	var ref uint32
	a.NoError(AttrRef("id", &ref)(attrs))
	a.Zero(ref)
	a.Error(AttrRef("src", &ref)(attrs))

	var opt *uint32
	a.NoError(AttrOptionalID("id", &opt)(attrs))
	a.Nil(opt)
	a.NoError(AttrOptionalID("duration", &opt)(attrs))
	a.Equal(uint32(95), *opt)
	a.Error(AttrOptionalID("embed", &opt)(attrs))
}
