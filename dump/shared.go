package dump

import (
	"github.com/andaru/discogs/model"
	"github.com/andaru/discogs/schema"
)

// Schema fragments shared by more than one record kind. Each takes
// the scratch value its items are built in and the list they are
// collected into.

// field is a text element stored in *p.
func field(name string, p **string) *schema.Node {
	return schema.Element(name, schema.OnText(schema.SetString(p)))
}

// textList is <container><item>text</item>...</container>.
func textList(container, item string, list *[]string) *schema.Node {
	return schema.Element(container).Children(
		schema.Element(item, schema.OnText(schema.AppendString(list))),
	)
}

func imageList(img *model.Image, list *[]model.Image) *schema.Node {
	return schema.Element("images").Children(
		schema.Element("image",
			schema.Collect(img, list),
			schema.OnStart(
				schema.AttrString("type", &img.Type),
				schema.AttrString("uri", &img.URI),
				schema.AttrString("uri150", &img.URI150),
				schema.AttrInt("width", &img.Width),
				schema.AttrInt("height", &img.Height),
			)),
	)
}

func videoList(v *model.Video, list *[]model.Video) *schema.Node {
	video := schema.Element("video",
		schema.Collect(v, list),
		schema.OnStart(
			schema.AttrString("src", &v.Src),
			schema.AttrUint("duration", &v.Duration),
			schema.AttrBool("embed", &v.Embed),
		))
	video.Children(
		field("title", &v.Title),
		field("description", &v.Description),
	)
	return schema.Element("videos").Children(video)
}

// creditList is a list of <artist> credits, under artists or
// extraartists.
func creditList(container string, c *model.ArtistCredit, list *[]model.ArtistCredit) *schema.Node {
	return schema.Element(container).Children(
		schema.Element("artist", schema.Collect(c, list)).Children(
			schema.Element("id", schema.OnText(schema.SetRef(&c.ID))),
			field("name", &c.Name),
			field("anv", &c.ANV),
			field("join", &c.Join),
			field("role", &c.Role),
			field("tracks", &c.Tracks),
		),
	)
}

// nonNil returns s, or an empty slice if s is nil.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
