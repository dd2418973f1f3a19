package xmlutil

import "encoding/xml"

// XMLName is a shortcut for creating xml.Name, where typically you want at least
// a local name, and perhaps a namespace value as well.
func XMLName(local string, spaces ...string) xml.Name {
	n := xml.Name{Local: local}
	if len(spaces) > 0 {
		n.Space = spaces[0]
	}
	return n
}

// StartElement returns a start element token named local with the given
// attributes, given as alternating name and value strings.
func StartElement(local string, attrs ...string) xml.StartElement {
	se := xml.StartElement{Name: XMLName(local)}
	for i := 0; i+1 < len(attrs); i += 2 {
		se.Attr = append(se.Attr, xml.Attr{Name: XMLName(attrs[i]), Value: attrs[i+1]})
	}
	return se
}

// QualifiedName returns the name as written in the document, e.g.
// "ext:title" for a prefixed name read without namespace translation.
func QualifiedName(n xml.Name) string {
	if n.Space == "" {
		return n.Local
	}
	return n.Space + ":" + n.Local
}
