package xmlutil

import "encoding/xml"

// Attrs is the attribute list of a start element, looked up by local
// name. Source order is kept but never relied upon.
type Attrs []xml.Attr

// Get returns the value of the first unprefixed attribute with the
// given local name and whether it was present at all. Prefixed
// attributes such as ext:id never match.
func (a Attrs) Get(local string) (string, bool) {
	for i := range a {
		if a[i].Name.Space == "" && a[i].Name.Local == local {
			return a[i].Value, true
		}
	}
	return "", false
}
