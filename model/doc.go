// Copyright 2018 Andrew Fort

// Package model defines the records found in Discogs data dumps.
//
// A dump file holds a single kind of record (artists, labels, masters
// or releases) inside one container element. Records cross-reference
// each other by identifier: a Release names its artists and labels by
// id, and optionally its Master.
//
// Optional values
//
// Every field other than a record's ID is optional. Optional scalars
// are pointers; nil means the element or attribute was absent or held
// only whitespace. An empty element is therefore indistinguishable from
// an omitted one. Lists are never nil on a record produced by the dump
// package, but may be empty.
package model
