package source

import (
	"bufio"
	"bytes"
	"io"
	"os"

	"github.com/golang/glog"
	"github.com/klauspost/compress/gzip"
	"github.com/pkg/errors"

	"github.com/andaru/discogs/dumperr"
)

// DefaultBufferSize is the default read buffer size.
const DefaultBufferSize = 256 * 1024

var gzipMagic = []byte{0x1f, 0x8b}

// Reader is a buffered dump byte source. It implements io.ReadCloser
// and io.ByteReader.
type Reader struct {
	name   string
	raw    *countFilter
	closer io.Closer
	gz     *gzip.Reader
	buf    *bufio.Reader
	closed bool
}

// Option is a Reader option function.
type Option func(*options)

type options struct {
	size int
	name string
}

// WithBufferSize sets the read buffer size.
func WithBufferSize(n int) Option { return func(o *options) { o.size = n } }

// WithName sets the name reported in errors, for readers not opened
// from a path.
func WithName(name string) Option { return func(o *options) { o.name = name } }

// Open opens the dump file at path.
func Open(path string, opts ...Option) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WithStack(dumperr.IO(err, dumperr.WithFile(path)))
	}
	r, err := newReader(f, f, append([]Option{WithName(path)}, opts...))
	if err != nil {
		f.Close()
		return nil, err
	}
	return r, nil
}

// NewReader returns a Reader for src. Closing the Reader closes src if
// it is an io.Closer.
func NewReader(src io.Reader, opts ...Option) (*Reader, error) {
	c, _ := src.(io.Closer)
	return newReader(src, c, opts)
}

func newReader(src io.Reader, c io.Closer, opts []Option) (*Reader, error) {
	o := options{size: DefaultBufferSize}
	for _, opt := range opts {
		opt(&o)
	}
	if o.size < 16 {
		o.size = DefaultBufferSize
	}
	r := &Reader{name: o.name, raw: &countFilter{src: src}, closer: c}
	r.buf = bufio.NewReaderSize(r.raw, o.size)

	magic, err := r.buf.Peek(len(gzipMagic))
	switch {
	case err == io.EOF:
		// too short to be gzip
	case err != nil:
		return nil, r.ioError(err)
	case bytes.Equal(magic, gzipMagic):
		if r.gz, err = gzip.NewReader(r.buf); err != nil {
			return nil, r.ioError(err)
		}
		r.buf = bufio.NewReaderSize(r.gz, o.size)
	}
	glog.V(1).Infof("source %q: opened, gzip=%v", r.name, r.gz != nil)
	return r, nil
}

func (r *Reader) ioError(err error) error {
	return errors.WithStack(dumperr.IO(err, dumperr.WithFile(r.name)))
}

// Name returns the name of the source.
func (r *Reader) Name() string { return r.name }

// Compressed reports whether the source is gzip compressed.
func (r *Reader) Compressed() bool { return r.gz != nil }

// BytesRead returns the number of bytes read from the underlying
// source, before decompression.
func (r *Reader) BytesRead() int64 { return r.raw.n }

func (r *Reader) Read(p []byte) (int, error) {
	if r.closed {
		return 0, dumperr.ErrClosed
	}
	return r.buf.Read(p)
}

// ReadByte implements io.ByteReader, so that xml.Decoder reads
// without adding its own buffer.
func (r *Reader) ReadByte() (byte, error) {
	if r.closed {
		return 0, dumperr.ErrClosed
	}
	return r.buf.ReadByte()
}

// Close releases the source. It may be called more than once.
func (r *Reader) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	var err error
	if r.gz != nil {
		err = r.gz.Close()
	}
	if r.closer != nil {
		if cerr := r.closer.Close(); err == nil {
			err = cerr
		}
	}
	if err != nil {
		return r.ioError(err)
	}
	return nil
}
