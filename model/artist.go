package model

// Artist is a record of the artists dump.
type Artist struct {
	ID             uint32       `json:"id"`
	Name           *string      `json:"name,omitempty"`
	RealName       *string      `json:"realname,omitempty"`
	Profile        *string      `json:"profile,omitempty"`
	DataQuality    *string      `json:"data_quality,omitempty"`
	NameVariations []string     `json:"namevariations"`
	URLs           []string     `json:"urls"`
	Aliases        []ArtistInfo `json:"aliases"`
	Members        []ArtistInfo `json:"members"`
	Groups         []ArtistInfo `json:"groups"`
	Images         []Image      `json:"images"`
}

// ArtistInfo references another artist by id and name.
type ArtistInfo struct {
	ID   uint32  `json:"id"`
	Name *string `json:"name,omitempty"`
}

func (a Artist) RecordID() uint32 { return a.ID }
func (a Artist) RecordKind() Kind { return KindArtist }
func (a Artist) String() string   { return Deref(a.Name) }
