package model

// Label is a record of the labels dump.
type Label struct {
	ID          uint32      `json:"id"`
	Name        *string     `json:"name,omitempty"`
	ContactInfo *string     `json:"contactinfo,omitempty"`
	Profile     *string     `json:"profile,omitempty"`
	DataQuality *string     `json:"data_quality,omitempty"`
	ParentLabel *LabelInfo  `json:"parent_label,omitempty"`
	Sublabels   []LabelInfo `json:"sublabels"`
	URLs        []string    `json:"urls"`
	Images      []Image     `json:"images"`
}

// LabelInfo references another label by id and name.
type LabelInfo struct {
	ID   uint32  `json:"id"`
	Name *string `json:"name,omitempty"`
}

func (l Label) RecordID() uint32 { return l.ID }
func (l Label) RecordKind() Kind { return KindLabel }
func (l Label) String() string   { return Deref(l.Name) }
