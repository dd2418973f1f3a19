// Copyright 2018 Andrew Fort

// Package schema provides the streaming record state machine used to
// read dump files, and the schema objects that drive it.
//
// Schema objects are trees of Node values built once per reader. Each
// record kind has one tree whose root is the record element (e.g.
// <artist>). Nodes carry hooks, set with node options, which write
// into a concrete record builder owned by the reader.
//
// Schema processing
//
// Each XML token read from the input by the Machine drives the Stack:
//
//   xml.StartElement
//       The child node matching the element's name is looked up in the
//       context node's child table and a frame is pushed for it. Start
//       hooks run with the element's attributes. An element with no
//       matching child, including any prefixed element such as
//       <ext:title>, is pushed as an ignored frame; elements below it
//       are only counted.
//
//   xml.CharData
//       Appended to the text buffer when the context node accepts text,
//       dropped otherwise.
//
//   xml.EndElement
//       The end tag must close the top frame. The frame's text goes
//       through the uniform conversion (see Text) to the node's text
//       hook, then the end hooks run and the frame is discarded. When
//       the record root is popped the record is complete.
//
// Memory use is proportional to nesting depth plus the longest text
// value, never to the number of records read.
package schema
