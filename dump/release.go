package dump

import (
	"github.com/andaru/discogs/dumperr"
	"github.com/andaru/discogs/model"
	"github.com/andaru/discogs/schema"
)

// releaseBuilder builds model.Release records from <release> elements.
type releaseBuilder struct {
	rec     model.Release
	seen    bool
	credit  model.ArtistCredit
	label   model.ReleaseLabel
	format  model.Format
	track   model.Track
	sub     model.Track
	ident   model.Identifier
	video   model.Video
	company model.Company
	img     model.Image
	root    *schema.Node
}

func newReleaseBuilder() *releaseBuilder {
	b := &releaseBuilder{}
	r := &b.rec
	b.root = schema.Element("release", schema.OnStart(
		schema.AttrID("id", &r.ID, &b.seen),
		schema.AttrString("status", &r.Status),
	)).Children(
		field("title", &r.Title),
		field("country", &r.Country),
		field("released", &r.Released),
		field("notes", &r.Notes),
		field("data_quality", &r.DataQuality),
		schema.Element("master_id",
			schema.OnStart(schema.AttrBool("is_main_release", &r.IsMainRelease)),
			schema.OnText(schema.SetOptionalID(&r.MasterID))),
		creditList("artists", &b.credit, &r.Artists),
		creditList("extraartists", &b.credit, &r.ExtraArtists),
		b.labelList("labels", "label", &r.Labels),
		b.labelList("series", "series", &r.Series),
		b.formats(),
		textList("genres", "genre", &r.Genres),
		textList("styles", "style", &r.Styles),
		schema.Element("tracklist").Children(b.trackNode(&b.track, &r.Tracklist)),
		b.identifiers(),
		videoList(&b.video, &r.Videos),
		b.companies(),
		imageList(&b.img, &r.Images),
	)
	return b
}

// labelList is a list of <label name catno id/> entries.
func (b *releaseBuilder) labelList(container, item string, list *[]model.ReleaseLabel) *schema.Node {
	l := &b.label
	return schema.Element(container).Children(
		schema.Element(item,
			schema.Collect(l, list),
			schema.OnStart(
				schema.AttrOptionalID("id", &l.ID),
				schema.AttrString("name", &l.Name),
				schema.AttrString("catno", &l.CatNo),
			)),
	)
}

func (b *releaseBuilder) formats() *schema.Node {
	f := &b.format
	format := schema.Element("format",
		schema.Collect(f, &b.rec.Formats),
		schema.OnStart(
			schema.AttrString("name", &f.Name),
			schema.AttrString("qty", &f.Qty),
			schema.AttrString("text", &f.Text),
		),
		schema.OnEnd(func() error {
			f.Descriptions = nonNil(f.Descriptions)
			return nil
		}))
	format.Append(textList("descriptions", "description", &f.Descriptions))
	return schema.Element("formats").Children(format)
}

// trackNode is a <track> collected into list using t as scratch.
// Top level tracks may hold index sub-tracks, one level deep.
func (b *releaseBuilder) trackNode(t *model.Track, list *[]model.Track) *schema.Node {
	track := schema.Element("track",
		schema.Collect(t, list),
		schema.OnEnd(func() error {
			t.Artists = nonNil(t.Artists)
			t.ExtraArtists = nonNil(t.ExtraArtists)
			return nil
		}))
	track.Children(
		field("position", &t.Position),
		field("title", &t.Title),
		field("duration", &t.Duration),
		creditList("artists", &b.credit, &t.Artists),
		creditList("extraartists", &b.credit, &t.ExtraArtists),
	)
	if t == &b.track {
		track.Append(schema.Element("sub_tracks")).Append(b.trackNode(&b.sub, &t.SubTracks))
	}
	return track
}

func (b *releaseBuilder) identifiers() *schema.Node {
	id := &b.ident
	return schema.Element("identifiers").Children(
		schema.Element("identifier",
			schema.Collect(id, &b.rec.Identifiers),
			schema.OnStart(
				schema.AttrString("type", &id.Type),
				schema.AttrString("description", &id.Description),
				schema.AttrString("value", &id.Value),
			)),
	)
}

func (b *releaseBuilder) companies() *schema.Node {
	c := &b.company
	return schema.Element("companies").Children(
		schema.Element("company", schema.Collect(c, &b.rec.Companies)).Children(
			schema.Element("id", schema.OnText(schema.SetOptionalID(&c.ID))),
			field("name", &c.Name),
			field("catno", &c.CatNo),
			schema.Element("entity_type", schema.OnText(schema.SetInt(&c.EntityType))),
			field("entity_type_name", &c.EntityTypeName),
			field("resource_url", &c.ResourceURL),
		),
	)
}

func (b *releaseBuilder) Root() *schema.Node { return b.root }
func (b *releaseBuilder) Kind() string       { return model.KindRelease.Element() }
func (b *releaseBuilder) ID() (uint32, bool) { return b.rec.ID, b.seen }
func (b *releaseBuilder) Reset()             { b.rec, b.seen = model.Release{}, false }

func (b *releaseBuilder) Take() (model.Release, error) {
	if !b.seen {
		return model.Release{}, dumperr.MissingAttribute("id", "release")
	}
	r := b.rec
	r.Artists = nonNil(r.Artists)
	r.ExtraArtists = nonNil(r.ExtraArtists)
	r.Labels = nonNil(r.Labels)
	r.Series = nonNil(r.Series)
	r.Formats = nonNil(r.Formats)
	r.Genres = nonNil(r.Genres)
	r.Styles = nonNil(r.Styles)
	r.Tracklist = nonNil(r.Tracklist)
	r.Identifiers = nonNil(r.Identifiers)
	r.Videos = nonNil(r.Videos)
	r.Companies = nonNil(r.Companies)
	r.Images = nonNil(r.Images)
	return r, nil
}
