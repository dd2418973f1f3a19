package dump

import (
	"encoding/xml"
	"io"

	"github.com/golang/glog"

	"github.com/andaru/discogs/dumperr"
	"github.com/andaru/discogs/model"
	"github.com/andaru/discogs/schema"
)

// Stats counts the work done by an iterator.
type Stats struct {
	// Records is the number of records returned.
	Records int64
	// Tokens is the number of XML tokens read.
	Tokens int64
	// Bytes is the number of bytes read from the file, before
	// decompression.
	Bytes int64
}

type byteCounter interface {
	BytesRead() int64
}

// Iterator returns records of one kind from a dump, in document order.
// An Iterator is not safe for concurrent use.
type Iterator[R model.Record] struct {
	m      *schema.Machine[R]
	src    io.Closer
	first  *xml.StartElement
	closed bool
}

func newIterator[R model.Record](d *xml.Decoder, src io.Closer, b schema.Builder[R], kind model.Kind, first *xml.StartElement, o options) *Iterator[R] {
	opts := []schema.MachineOption{schema.WithMaxDepth(o.maxDepth), schema.WithFile(o.fileName)}
	if first == nil {
		opts = append(opts, schema.WithContainer(kind.Container()))
	}
	return &Iterator[R]{
		m:     schema.NewMachine[R](d, b, opts...),
		src:   src,
		first: first,
	}
}

// Next returns the next record. It returns io.EOF after the last
// record. Any other error is terminal and is returned again by every
// later call.
func (it *Iterator[R]) Next() (R, error) {
	var zero R
	if it.closed {
		return zero, dumperr.ErrClosed
	}
	if it.first != nil {
		se := *it.first
		it.first = nil
		if err := it.m.Begin(se); err != nil {
			return zero, err
		}
	}
	return it.m.Next()
}

// Close releases the file. It may be called at any time, and more than
// once. Next returns dumperr.ErrClosed after Close.
func (it *Iterator[R]) Close() error {
	if it.closed {
		return nil
	}
	it.closed = true
	it.m.Fail(dumperr.ErrClosed)
	glog.V(1).Infof("iterator closed after %d records", it.m.Stats().Records)
	if it.src == nil {
		return nil
	}
	return it.src.Close()
}

// Count reads the remaining records and returns how many there were.
func (it *Iterator[R]) Count() (int, error) {
	n := 0
	err := it.Each(func(R) error {
		n++
		return nil
	})
	return n, err
}

// Each calls fn with each remaining record, stopping at the end of the
// dump or at the first error returned by Next or fn.
func (it *Iterator[R]) Each(fn func(R) error) error {
	for {
		rec, err := it.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if err := fn(rec); err != nil {
			return err
		}
	}
}

// Stats returns the iterator's progress.
func (it *Iterator[R]) Stats() Stats {
	ms := it.m.Stats()
	s := Stats{Records: ms.Records, Tokens: ms.Tokens}
	if bc, ok := it.src.(byteCounter); ok {
		s.Bytes = bc.BytesRead()
	}
	return s
}

// next is Next for a Reader of any kind.
func (it *Iterator[R]) next() (model.Record, error) {
	rec, err := it.Next()
	if err != nil {
		return nil, err
	}
	return rec, nil
}
