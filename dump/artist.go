package dump

import (
	"github.com/andaru/discogs/dumperr"
	"github.com/andaru/discogs/model"
	"github.com/andaru/discogs/schema"
	"github.com/andaru/discogs/xmlutil"
)

// artistBuilder builds model.Artist records from <artist> elements.
type artistBuilder struct {
	rec  model.Artist
	seen bool
	info model.ArtistInfo
	img  model.Image

	// members may be listed as <id>n</id><name>x</name> pairs
	member    uint32
	hasMember bool

	root *schema.Node
}

func newArtistBuilder() *artistBuilder {
	b := &artistBuilder{}
	r := &b.rec
	b.root = schema.Element("artist").Children(
		schema.Element("id", schema.OnText(schema.SetID(&r.ID, &b.seen))),
		field("name", &r.Name),
		field("realname", &r.RealName),
		field("profile", &r.Profile),
		field("data_quality", &r.DataQuality),
		textList("namevariations", "name", &r.NameVariations),
		textList("urls", "url", &r.URLs),
		b.infoList("aliases", &r.Aliases),
		b.infoList("groups", &r.Groups),
		b.members(),
		imageList(&b.img, &r.Images),
	)
	return b
}

// infoList is a list of <name id="n">x</name> artist references.
func (b *artistBuilder) infoList(container string, list *[]model.ArtistInfo) *schema.Node {
	return schema.Element(container).Children(
		schema.Element("name",
			schema.Collect(&b.info, list),
			schema.OnStart(schema.AttrRef("id", &b.info.ID)),
			schema.OnText(schema.SetString(&b.info.Name))),
	)
}

func (b *artistBuilder) members() *schema.Node {
	setID := schema.SetRef(&b.member)
	return schema.Element("members", schema.OnEnd(b.flushMember)).Children(
		schema.Element("id",
			schema.OnStart(func(xmlutil.Attrs) error { return b.flushMember() }),
			schema.OnText(func(text []byte, ok bool) error {
				b.hasMember = ok
				return setID(text, ok)
			})),
		schema.Element("name",
			schema.Collect(&b.info, &b.rec.Members),
			schema.OnStart(
				func(xmlutil.Attrs) error {
					b.info.ID = b.member
					b.member, b.hasMember = 0, false
					return nil
				},
				schema.AttrRef("id", &b.info.ID)),
			schema.OnText(schema.SetString(&b.info.Name))),
	)
}

// flushMember adds a member seen only as an <id>.
func (b *artistBuilder) flushMember() error {
	if b.hasMember {
		b.rec.Members = append(b.rec.Members, model.ArtistInfo{ID: b.member})
	}
	b.member, b.hasMember = 0, false
	return nil
}

func (b *artistBuilder) Root() *schema.Node { return b.root }
func (b *artistBuilder) Kind() string       { return model.KindArtist.Element() }
func (b *artistBuilder) ID() (uint32, bool) { return b.rec.ID, b.seen }

func (b *artistBuilder) Reset() {
	b.rec, b.seen = model.Artist{}, false
	b.member, b.hasMember = 0, false
}

func (b *artistBuilder) Take() (model.Artist, error) {
	if !b.seen {
		return model.Artist{}, dumperr.MissingElement("id")
	}
	r := b.rec
	r.NameVariations = nonNil(r.NameVariations)
	r.URLs = nonNil(r.URLs)
	r.Aliases = nonNil(r.Aliases)
	r.Members = nonNil(r.Members)
	r.Groups = nonNil(r.Groups)
	r.Images = nonNil(r.Images)
	return r, nil
}
