package dump

import (
	"github.com/andaru/discogs/dumperr"
	"github.com/andaru/discogs/model"
	"github.com/andaru/discogs/schema"
	"github.com/andaru/discogs/xmlutil"
)

// labelBuilder builds model.Label records from <label> elements.
type labelBuilder struct {
	rec  model.Label
	seen bool
	info model.LabelInfo
	img  model.Image
	root *schema.Node
}

func newLabelBuilder() *labelBuilder {
	b := &labelBuilder{}
	r := &b.rec
	b.root = schema.Element("label").Children(
		schema.Element("id", schema.OnText(schema.SetID(&r.ID, &b.seen))),
		field("name", &r.Name),
		field("contactinfo", &r.ContactInfo),
		field("profile", &r.Profile),
		field("data_quality", &r.DataQuality),
		b.labelInfo("parentLabel", schema.OnEnd(func() error {
			parent := b.info
			r.ParentLabel = &parent
			return nil
		})),
		schema.Element("sublabels").Children(
			b.labelInfo("label", schema.Collect(&b.info, &r.Sublabels)),
		),
		textList("urls", "url", &r.URLs),
		imageList(&b.img, &r.Images),
	)
	return b
}

// labelInfo is a <name id="n">x</name> style label reference.
func (b *labelBuilder) labelInfo(name string, opt schema.NodeOption) *schema.Node {
	return schema.Element(name,
		opt,
		schema.OnStart(func(attrs xmlutil.Attrs) error {
			b.info = model.LabelInfo{}
			return schema.AttrRef("id", &b.info.ID)(attrs)
		}),
		schema.OnText(schema.SetString(&b.info.Name)))
}

func (b *labelBuilder) Root() *schema.Node { return b.root }
func (b *labelBuilder) Kind() string       { return model.KindLabel.Element() }
func (b *labelBuilder) ID() (uint32, bool) { return b.rec.ID, b.seen }
func (b *labelBuilder) Reset()             { b.rec, b.seen = model.Label{}, false }

func (b *labelBuilder) Take() (model.Label, error) {
	if !b.seen {
		return model.Label{}, dumperr.MissingElement("id")
	}
	r := b.rec
	r.Sublabels = nonNil(r.Sublabels)
	r.URLs = nonNil(r.URLs)
	r.Images = nonNil(r.Images)
	return r, nil
}
