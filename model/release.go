package model

// Release is a record of the releases dump.
type Release struct {
	ID            uint32         `json:"id"`
	Status        *string        `json:"status,omitempty"`
	Title         *string        `json:"title,omitempty"`
	Country       *string        `json:"country,omitempty"`
	Released      *string        `json:"released,omitempty"`
	Notes         *string        `json:"notes,omitempty"`
	DataQuality   *string        `json:"data_quality,omitempty"`
	MasterID      *uint32        `json:"master_id,omitempty"`
	IsMainRelease *bool          `json:"is_main_release,omitempty"`
	Artists       []ArtistCredit `json:"artists"`
	ExtraArtists  []ArtistCredit `json:"extraartists"`
	Labels        []ReleaseLabel `json:"labels"`
	Series        []ReleaseLabel `json:"series"`
	Formats       []Format       `json:"formats"`
	Genres        []string       `json:"genres"`
	Styles        []string       `json:"styles"`
	Tracklist     []Track        `json:"tracklist"`
	Identifiers   []Identifier   `json:"identifiers"`
	Videos        []Video        `json:"videos"`
	Companies     []Company      `json:"companies"`
	Images        []Image        `json:"images"`
}

// ReleaseLabel is a label or series entry of a release, with the
// catalog number it was issued under.
type ReleaseLabel struct {
	ID    *uint32 `json:"id,omitempty"`
	Name  *string `json:"name,omitempty"`
	CatNo *string `json:"catno,omitempty"`
}

// Format is a physical or digital format of a release, e.g. 2 x Vinyl, LP.
type Format struct {
	Name         *string  `json:"name,omitempty"`
	Qty          *string  `json:"qty,omitempty"`
	Text         *string  `json:"text,omitempty"`
	Descriptions []string `json:"descriptions"`
}

// Identifier is a barcode, matrix number or other identifier printed
// on a release.
type Identifier struct {
	Type        *string `json:"type,omitempty"`
	Description *string `json:"description,omitempty"`
	Value       *string `json:"value,omitempty"`
}

// Company is a company credited on a release (pressing plant,
// distributor, ...).
type Company struct {
	ID             *uint32 `json:"id,omitempty"`
	Name           *string `json:"name,omitempty"`
	CatNo          *string `json:"catno,omitempty"`
	EntityType     *int    `json:"entity_type,omitempty"`
	EntityTypeName *string `json:"entity_type_name,omitempty"`
	ResourceURL    *string `json:"resource_url,omitempty"`
}

// Track is one entry of a release's tracklist. Index tracks hold their
// parts in SubTracks.
type Track struct {
	Position     *string        `json:"position,omitempty"`
	Title        *string        `json:"title,omitempty"`
	Duration     *string        `json:"duration,omitempty"`
	Artists      []ArtistCredit `json:"artists"`
	ExtraArtists []ArtistCredit `json:"extraartists"`
	SubTracks    []Track        `json:"sub_tracks,omitempty"`
}

func (r Release) RecordID() uint32 { return r.ID }
func (r Release) RecordKind() Kind { return KindRelease }

func (r Release) String() string {
	return CreditString(r.Artists) + " - " + Deref(r.Title)
}
