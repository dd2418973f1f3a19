package dump

import (
	"encoding/xml"
	"io"

	"github.com/andaru/discogs/schema"
	"github.com/andaru/discogs/source"
)

// Option is a Reader option function.
type Option func(*options)

type options struct {
	bufferSize   int
	maxDepth     int
	fileName     string
	strict       bool
	htmlEntities bool
}

func newOptions(opts []Option) options {
	o := options{
		bufferSize:   source.DefaultBufferSize,
		maxDepth:     schema.DefaultMaxDepth,
		strict:       true,
		htmlEntities: true,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithBufferSize sets the size of the read buffer.
func WithBufferSize(n int) Option { return func(o *options) { o.bufferSize = n } }

// WithMaxDepth sets the limit on element nesting within a record.
func WithMaxDepth(n int) Option { return func(o *options) { o.maxDepth = n } }

// WithFileName sets the file name reported in errors. Open uses the
// path by default.
func WithFileName(name string) Option { return func(o *options) { o.fileName = name } }

// WithStrict sets the tokenizer's strict mode. Non-strict mode accepts
// unknown entities and unquoted attribute values. The default is true.
func WithStrict(strict bool) Option { return func(o *options) { o.strict = strict } }

// WithHTMLEntities enables the HTML character entities (&nbsp; and
// friends) in addition to the XML predefined ones. The default is true.
func WithHTMLEntities(enable bool) Option { return func(o *options) { o.htmlEntities = enable } }

func (o options) decoder(r io.Reader) *xml.Decoder {
	d := xml.NewDecoder(r)
	d.Strict = o.strict
	if o.htmlEntities {
		d.Entity = xml.HTMLEntity
	}
	return d
}

func (o options) source() []source.Option {
	return []source.Option{source.WithBufferSize(o.bufferSize), source.WithName(o.fileName)}
}
