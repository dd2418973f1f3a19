package xmlutil

import (
	"encoding/xml"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAttrs(t *testing.T) {
	prefixed := xml.Attr{Name: XMLName("id", "ext"), Value: "99"}
	label := StartElement("label", "name", "Warp", "catno", "", "id", "23").Attr
	for _, tc := range []struct {
		name  string
		attrs Attrs
	}{
		{name: "source order", attrs: Attrs(label)},
		{name: "permuted", attrs: Attrs(StartElement("label", "id", "23", "name", "Warp", "catno", "").Attr)},
		{name: "with unknown", attrs: Attrs(StartElement("label", "resource_url", "x", "id", "23", "catno", "", "name", "Warp").Attr)},
		{name: "prefixed first", attrs: append(Attrs{prefixed}, label...)},
		{name: "prefixed last", attrs: append(append(Attrs{}, label...), prefixed)},
	} {
		t.Run(tc.name, func(t *testing.T) {
			a := assert.New(t)
			v, ok := tc.attrs.Get("id")
			a.True(ok)
			a.Equal("23", v)
			v, _ = tc.attrs.Get("name")
			a.Equal("Warp", v)

			v, ok = tc.attrs.Get("catno")
			a.True(ok, "empty attributes are present")
			a.Equal("", v)

			_, ok = tc.attrs.Get("missing")
			a.False(ok)
		})
	}

	_, ok := Attrs{prefixed}.Get("id")
	assert.False(t, ok, "prefixed attributes never match")
}
