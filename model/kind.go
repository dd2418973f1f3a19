package model

import (
	"bytes"
	"errors"
	"fmt"
)

// Kind is the kind of record a dump file contains.
type Kind int

const (
	KindArtist Kind = iota
	KindLabel
	KindMaster
	KindRelease
)

// Kinds lists all record kinds.
var Kinds = []Kind{KindArtist, KindLabel, KindMaster, KindRelease}

var kindElements = [...]string{"artist", "label", "master", "release"}

// Element returns the name of a single record's element, e.g. "artist".
func (k Kind) Element() string {
	if k < 0 || int(k) >= len(kindElements) {
		return ""
	}
	return kindElements[k]
}

// Container returns the name of the dump's outer element, e.g. "artists".
func (k Kind) Container() string {
	if e := k.Element(); e != "" {
		return e + "s"
	}
	return ""
}

func (k Kind) String() string {
	if c := k.Container(); c != "" {
		return c
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

func (k *Kind) UnmarshalText(b []byte) error {
	v, ok := ParseKind(string(bytes.TrimSpace(b)))
	if !ok {
		return errors.New("unknown value")
	}
	*k = v
	return nil
}

// ParseKind returns the kind named by a container ("artists") or
// record ("artist") element name.
func ParseKind(name string) (Kind, bool) {
	for _, k := range Kinds {
		if name == k.Container() || name == k.Element() {
			return k, true
		}
	}
	return 0, false
}
