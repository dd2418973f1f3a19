package dump

import (
	"github.com/andaru/discogs/dumperr"
	"github.com/andaru/discogs/model"
	"github.com/andaru/discogs/schema"
)

// masterBuilder builds model.Master records from <master> elements.
type masterBuilder struct {
	rec    model.Master
	seen   bool
	credit model.ArtistCredit
	img    model.Image
	video  model.Video
	root   *schema.Node
}

func newMasterBuilder() *masterBuilder {
	b := &masterBuilder{}
	r := &b.rec
	b.root = schema.Element("master", schema.OnStart(schema.AttrID("id", &r.ID, &b.seen))).Children(
		schema.Element("main_release", schema.OnText(schema.SetOptionalID(&r.MainRelease))),
		field("title", &r.Title),
		schema.Element("year", schema.OnText(schema.SetInt(&r.Year))),
		field("notes", &r.Notes),
		field("data_quality", &r.DataQuality),
		textList("genres", "genre", &r.Genres),
		textList("styles", "style", &r.Styles),
		creditList("artists", &b.credit, &r.Artists),
		imageList(&b.img, &r.Images),
		videoList(&b.video, &r.Videos),
	)
	return b
}

func (b *masterBuilder) Root() *schema.Node { return b.root }
func (b *masterBuilder) Kind() string       { return model.KindMaster.Element() }
func (b *masterBuilder) ID() (uint32, bool) { return b.rec.ID, b.seen }
func (b *masterBuilder) Reset()             { b.rec, b.seen = model.Master{}, false }

func (b *masterBuilder) Take() (model.Master, error) {
	if !b.seen {
		return model.Master{}, dumperr.MissingAttribute("id", "master")
	}
	r := b.rec
	r.Genres = nonNil(r.Genres)
	r.Styles = nonNil(r.Styles)
	r.Artists = nonNil(r.Artists)
	r.Images = nonNil(r.Images)
	r.Videos = nonNil(r.Videos)
	return r, nil
}
