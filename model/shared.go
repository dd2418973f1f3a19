package model

import "strings"

// Image describes one image attached to a record. All of its data is
// carried in attributes of an <image/> element.
type Image struct {
	Type   *string `json:"type,omitempty"`
	URI    *string `json:"uri,omitempty"`
	URI150 *string `json:"uri150,omitempty"`
	Width  *int    `json:"width,omitempty"`
	Height *int    `json:"height,omitempty"`
}

// Video is a video link on a master or release.
type Video struct {
	Src         *string `json:"src,omitempty"`
	Duration    *uint32 `json:"duration,omitempty"`
	Embed       *bool   `json:"embed,omitempty"`
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
}

// ArtistCredit credits an artist on a master, release or track.
type ArtistCredit struct {
	ID     uint32  `json:"id"`
	Name   *string `json:"name,omitempty"`
	ANV    *string `json:"anv,omitempty"`
	Join   *string `json:"join,omitempty"`
	Role   *string `json:"role,omitempty"`
	Tracks *string `json:"tracks,omitempty"`
}

// CreditString renders credits the way they are displayed on Discogs,
// e.g. "Artist A & Artist B" or "A, B".
func CreditString(credits []ArtistCredit) string {
	if len(credits) == 1 {
		return Deref(credits[0].Name)
	}
	var b strings.Builder
	for _, c := range credits {
		b.WriteString(Deref(c.Name))
		if c.Join == nil {
			continue
		}
		if *c.Join != "," {
			b.WriteByte(' ')
		}
		b.WriteString(*c.Join)
		b.WriteByte(' ')
	}
	return strings.TrimSpace(b.String())
}
