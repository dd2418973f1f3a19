package model

// Master is a record of the masters dump: the release group that ties
// together the versions of a release.
type Master struct {
	ID          uint32         `json:"id"`
	MainRelease *uint32        `json:"main_release,omitempty"`
	Title       *string        `json:"title,omitempty"`
	Year        *int           `json:"year,omitempty"`
	Notes       *string        `json:"notes,omitempty"`
	DataQuality *string        `json:"data_quality,omitempty"`
	Genres      []string       `json:"genres"`
	Styles      []string       `json:"styles"`
	Artists     []ArtistCredit `json:"artists"`
	Images      []Image        `json:"images"`
	Videos      []Video        `json:"videos"`
}

func (m Master) RecordID() uint32 { return m.ID }
func (m Master) RecordKind() Kind { return KindMaster }

func (m Master) String() string {
	return CreditString(m.Artists) + " - " + Deref(m.Title)
}
