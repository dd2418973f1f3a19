package dump

import (
	"encoding/xml"
	"io"

	"github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/andaru/discogs/dumperr"
	"github.com/andaru/discogs/model"
	"github.com/andaru/discogs/schema"
	"github.com/andaru/discogs/source"
	"github.com/andaru/discogs/xmlutil"
)

// Reader reads one dump file. Exactly one of the kind specific
// iterators, chosen by Kind, is non-nil.
type Reader struct {
	Kind model.Kind

	artists  *Iterator[model.Artist]
	labels   *Iterator[model.Label]
	masters  *Iterator[model.Master]
	releases *Iterator[model.Release]

	it  records
	src *source.Reader
}

// records is the kind independent view of an Iterator.
type records interface {
	next() (model.Record, error)
	Close() error
	Stats() Stats
}

// Open opens the dump file at path, which may be gzip compressed.
func Open(path string, opts ...Option) (*Reader, error) {
	o := newOptions(opts)
	if o.fileName == "" {
		o.fileName = path
	}
	src, err := source.Open(path, o.source()...)
	if err != nil {
		return nil, err
	}
	return newReader(src, o)
}

// NewReader returns a Reader for the dump read from r, which may be
// gzip compressed. Closing the Reader closes r if it is an io.Closer.
func NewReader(r io.Reader, opts ...Option) (*Reader, error) {
	o := newOptions(opts)
	src, err := source.NewReader(r, o.source()...)
	if err != nil {
		if c, ok := r.(io.Closer); ok {
			c.Close()
		}
		return nil, err
	}
	return newReader(src, o)
}

// Detect returns the kind of records in the dump file at path, reading
// no further than its first element.
func Detect(path string, opts ...Option) (model.Kind, error) {
	o := newOptions(opts)
	if o.fileName == "" {
		o.fileName = path
	}
	src, err := source.Open(path, o.source()...)
	if err != nil {
		return 0, err
	}
	defer src.Close()
	kind, _, err := dispatch(o.decoder(src), src.Name())
	return kind, err
}

func newReader(src *source.Reader, o options) (*Reader, error) {
	d := o.decoder(src)
	kind, first, err := dispatch(d, src.Name())
	if err != nil {
		src.Close()
		return nil, err
	}
	r := &Reader{Kind: kind, src: src}
	switch kind {
	case model.KindArtist:
		r.artists = newIterator[model.Artist](d, src, newArtistBuilder(), kind, first, o)
		r.it = r.artists
	case model.KindLabel:
		r.labels = newIterator[model.Label](d, src, newLabelBuilder(), kind, first, o)
		r.it = r.labels
	case model.KindMaster:
		r.masters = newIterator[model.Master](d, src, newMasterBuilder(), kind, first, o)
		r.it = r.masters
	case model.KindRelease:
		r.releases = newIterator[model.Release](d, src, newReleaseBuilder(), kind, first, o)
		r.it = r.releases
	}
	return r, nil
}

// dispatch reads up to the first element and returns the kind of
// records it names. For a dump without a container element the first
// element is a record, and is returned for the record machine.
func dispatch(d *xml.Decoder, file string) (model.Kind, *xml.StartElement, error) {
	fail := func(err error) (model.Kind, *xml.StartElement, error) {
		line, col := d.InputPos()
		dumperr.Annotate(err, dumperr.WithFile(file), dumperr.WithPosition(line, col))
		return 0, nil, errors.WithStack(err)
	}
	for {
		tok, err := d.RawToken()
		if err == io.EOF {
			return fail(dumperr.UnknownContainer("", dumperr.WithMessage("no root element")))
		}
		if err != nil {
			return fail(schema.TokenError(err))
		}
		switch t := tok.(type) {
		case xml.StartElement:
			name := xmlutil.QualifiedName(t.Name)
			kind, ok := model.ParseKind(name)
			if !ok {
				return fail(dumperr.UnknownContainer(name))
			}
			glog.V(1).Infof("dump %q: reading %s from <%s>", file, kind, name)
			if name == kind.Element() {
				first := t.Copy()
				return kind, &first, nil
			}
			return kind, nil, nil
		case xml.EndElement:
			return fail(dumperr.Unbalanced("", xmlutil.QualifiedName(t.Name)))
		}
	}
}

// Artists returns the artist iterator, or nil if the dump holds
// another kind of record.
func (r *Reader) Artists() *Iterator[model.Artist] { return r.artists }

// Labels returns the label iterator, or nil.
func (r *Reader) Labels() *Iterator[model.Label] { return r.labels }

// Masters returns the master iterator, or nil.
func (r *Reader) Masters() *Iterator[model.Master] { return r.masters }

// Releases returns the release iterator, or nil.
func (r *Reader) Releases() *Iterator[model.Release] { return r.releases }

// Next returns the next record of whichever kind the dump holds.
func (r *Reader) Next() (model.Record, error) { return r.it.next() }

// Count reads the remaining records and returns how many there were.
func (r *Reader) Count() (int, error) {
	n := 0
	for {
		_, err := r.it.next()
		if err == io.EOF {
			return n, nil
		}
		if err != nil {
			return n, err
		}
		n++
	}
}

// Compressed reports whether the dump is gzip compressed.
func (r *Reader) Compressed() bool { return r.src.Compressed() }

// Stats returns the reader's progress.
func (r *Reader) Stats() Stats { return r.it.Stats() }

// Close releases the file.
func (r *Reader) Close() error { return r.it.Close() }

// String returns the dump's container element name, e.g. "releases".
func (r *Reader) String() string { return r.Kind.Container() }
