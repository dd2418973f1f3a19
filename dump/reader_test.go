package dump

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andaru/discogs/dumperr"
	"github.com/andaru/discogs/model"
)

func TestDispatch(t *testing.T) {
	for _, tc := range []struct {
		doc   string
		kind  model.Kind
		count int
	}{
		{doc: `<artists><artist><id>1</id></artist></artists>`, kind: model.KindArtist, count: 1},
		{doc: `<labels></labels>`, kind: model.KindLabel},
		{doc: `<masters><master id="1"/><master id="2"/></masters>`, kind: model.KindMaster, count: 2},
		{doc: `<releases><release id="1"/></releases>`, kind: model.KindRelease, count: 1},
		{doc: "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n<!-- dump -->\n<labels><label><id>4</id></label></labels>\n", kind: model.KindLabel, count: 1},
		{doc: `<release id="1"><title>Old</title></release><release id="2"/>`, kind: model.KindRelease, count: 2},
		{doc: `<artist><id>1</id></artist>`, kind: model.KindArtist, count: 1},
	} {
		t.Run(tc.doc, func(t *testing.T) {
			a := assert.New(t)
			r := newTestReader(t, tc.doc)
			a.Equal(tc.kind, r.Kind)
			a.Equal(tc.kind.Container(), r.String())
			a.Equal(tc.kind == model.KindArtist, r.Artists() != nil)
			a.Equal(tc.kind == model.KindLabel, r.Labels() != nil)
			a.Equal(tc.kind == model.KindMaster, r.Masters() != nil)
			a.Equal(tc.kind == model.KindRelease, r.Releases() != nil)
			n, err := r.Count()
			a.NoError(err)
			a.Equal(tc.count, n)
			a.Equal(int64(tc.count), r.Stats().Records)
		})
	}
}

func TestDispatchErrors(t *testing.T) {
	for _, tc := range []struct {
		name    string
		doc     string
		kind    dumperr.Kind
		element string
		message string
	}{
		{
			name:    "unknown container",
			doc:     `<widgets><widget id="1"/></widgets>`,
			kind:    dumperr.KindUnknownContainer,
			element: "widgets",
		},
		{
			name:    "empty",
			doc:     ``,
			kind:    dumperr.KindUnknownContainer,
			message: "no root element",
		},
		{
			name:    "prolog only",
			doc:     "<?xml version=\"1.0\"?>\n<!-- nothing -->\n",
			kind:    dumperr.KindUnknownContainer,
			message: "no root element",
		},
		{
			name:    "prefixed container",
			doc:     `<ext:artists xmlns:ext="urn:x"><artist><id>1</id></artist></ext:artists>`,
			kind:    dumperr.KindUnknownContainer,
			element: "ext:artists",
		},
		{
			name: "malformed",
			doc:  `<<artists>`,
			kind: dumperr.KindMalformedToken,
		},
		{
			name:    "end tag first",
			doc:     `</artists>`,
			kind:    dumperr.KindSchemaViolation,
			element: "artists",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			a := assert.New(t)
			src := &closeRecorder{Reader: strings.NewReader(tc.doc)}
			r, err := NewReader(src, WithFileName("dump.xml"))
			a.Nil(r)
			require.Error(t, err)
			e := dumperr.As(err)
			require.NotNil(t, e)
			a.Equal(tc.kind, e.Kind)
			a.Equal("dump.xml", e.File)
			a.Equal(tc.element, e.Element)
			if tc.message != "" {
				a.Equal(tc.message, e.Message)
			}
			a.True(src.closed, "the source is closed on failure")
		})
	}
}

type closeRecorder struct {
	io.Reader
	closed bool
}

func (c *closeRecorder) Close() error { c.closed = true; return nil }

func TestIteratorClose(t *testing.T) {
	a := assert.New(t)
	src := &closeRecorder{Reader: strings.NewReader(`<masters><master id="1"/><master id="2"/></masters>`)}
	r, err := NewReader(src)
	require.NoError(t, err)
	it := r.Masters()
	m, err := it.Next()
	a.NoError(err)
	a.Equal(uint32(1), m.ID)

	a.NoError(r.Close())
	a.True(src.closed)
	a.NoError(it.Close(), "close is idempotent")
	for i := 0; i < 2; i++ {
		_, err = it.Next()
		a.Equal(dumperr.ErrClosed, err)
		_, err = r.Next()
		a.Equal(dumperr.ErrClosed, err)
	}
}

func TestIteratorStickyFailure(t *testing.T) {
	a := assert.New(t)
	r := newTestReader(t, `<labels><label><id>1</id></label><label><id>2</id><name>Broken</label></labels>`)
	it := r.Labels()
	l, err := it.Next()
	a.NoError(err)
	a.Equal(uint32(1), l.ID)

	_, err = it.Next()
	a.True(errors.Is(err, dumperr.ErrSchemaViolation))
	e := dumperr.As(err)
	if a.NotNil(e) {
		a.Equal("label", e.Record)
		a.Equal(uint32(2), e.ID)
		a.Equal("label", e.Element)
		a.Equal("element <name> closed by </label>", e.Message)
	}
	for i := 0; i < 3; i++ {
		rec, again := it.Next()
		a.Equal(model.Label{}, rec)
		a.True(again == err, "the same error is returned")
	}
	n, cerr := it.Count()
	a.Zero(n)
	a.True(cerr == err)
}

func TestIteratorTruncated(t *testing.T) {
	doc := `<artists><artist><id>1</id></artist><artist><id>2</id><name>Cut`
	it := newTestReader(t, doc).Artists()
	_, err := it.Next()
	require.NoError(t, err)
	_, err = it.Next()
	assert.True(t, errors.Is(err, dumperr.ErrMalformedToken), "%v", err)
	assert.True(t, errors.Is(err, io.ErrUnexpectedEOF))
}

func TestIteratorUnclosedContainer(t *testing.T) {
	for _, tc := range []struct {
		name    string
		doc     string
		message string
	}{
		{
			name:    "cut between records",
			doc:     `<artists><artist><id>1</id></artist>`,
			message: "input ended before </artists>",
		},
		{
			name:    "record after container",
			doc:     `<artists><artist><id>1</id></artist></artists><artist><id>9</id></artist>`,
			message: "element <artist> after </artists>",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			it := newTestReader(t, tc.doc).Artists()
			a, err := it.Next()
			require.NoError(t, err)
			assert.Equal(t, uint32(1), a.ID)

			_, err = it.Next()
			assert.True(t, errors.Is(err, dumperr.ErrMalformedToken), "%v", err)
			if e := dumperr.As(err); assert.NotNil(t, e) {
				assert.Equal(t, tc.message, e.Message)
				assert.Empty(t, e.Record, "no record was open")
			}
		})
	}
}

func TestIteratorEach(t *testing.T) {
	it := newTestReader(t, `<labels><label><id>1</id></label><label><id>2</id></label><label><id>3</id></label></labels>`).Labels()
	stop := errors.New("stop")
	var seen []uint32
	err := it.Each(func(l model.Label) error {
		seen = append(seen, l.ID)
		if l.ID == 2 {
			return stop
		}
		return nil
	})
	assert.Equal(t, stop, err)
	assert.Equal(t, []uint32{1, 2}, seen)

	n, err := it.Count()
	assert.NoError(t, err)
	assert.Equal(t, 1, n, "iteration resumes after the callback error")
	stats := it.Stats()
	assert.Equal(t, int64(3), stats.Records)
	assert.NotZero(t, stats.Tokens)
	assert.NotZero(t, stats.Bytes)
}

func TestReaderNext(t *testing.T) {
	r := newTestReader(t, `<releases><release id="5"><title>T</title></release></releases>`)
	rec, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, model.KindRelease, rec.RecordKind())
	assert.Equal(t, uint32(5), rec.RecordID())
	rel, ok := rec.(model.Release)
	require.True(t, ok)
	assert.Equal(t, "T", *rel.Title)
	_, err = r.Next()
	assert.Equal(t, io.EOF, err)
}

func TestGzip(t *testing.T) {
	var b bytes.Buffer
	w := gzip.NewWriter(&b)
	_, err := w.Write([]byte(labelsDump))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	pr := newTestReader(t, labelsDump)
	gr := newTestReader(t, b.String())
	assert.False(t, pr.Compressed())
	assert.True(t, gr.Compressed())
	requireDiff(t, collect(t, pr.Labels()), collect(t, gr.Labels()))
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "discogs_masters.xml.gz")
	f, err := os.Create(path)
	require.NoError(t, err)
	w := gzip.NewWriter(f)
	_, err = w.Write([]byte(mastersDump))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.NoError(t, f.Close())

	kind, err := Detect(path)
	require.NoError(t, err)
	assert.Equal(t, model.KindMaster, kind)

	r, err := Open(path, WithBufferSize(4096))
	require.NoError(t, err)
	defer r.Close()
	assert.True(t, r.Compressed())
	n, err := r.Count()
	assert.NoError(t, err)
	assert.Equal(t, 2, n)

	_, err = Open(filepath.Join(dir, "missing.xml"))
	assert.True(t, errors.Is(err, dumperr.ErrIOFailure))
	_, err = Detect(filepath.Join(dir, "missing.xml"))
	assert.True(t, errors.Is(err, dumperr.ErrIOFailure))

	bad := filepath.Join(dir, "widgets.xml")
	require.NoError(t, os.WriteFile(bad, []byte(`<widgets/>`), 0o600))
	_, err = Open(bad)
	assert.True(t, errors.Is(err, dumperr.ErrUnknownContainer))
	if e := dumperr.As(err); assert.NotNil(t, e) {
		assert.Equal(t, bad, e.File)
	}
}

func TestOptions(t *testing.T) {
	doc := `<labels><label><id>1</id><name>Caf&eacute; del Mar</name></label></labels>`
	l, err := newTestReader(t, doc).Labels().Next()
	require.NoError(t, err)
	assert.Equal(t, "Café del Mar", *l.Name)

	_, err = newTestReader(t, doc, WithHTMLEntities(false)).Labels().Next()
	assert.True(t, errors.Is(err, dumperr.ErrMalformedToken), "%v", err)

	l, err = newTestReader(t, doc, WithHTMLEntities(false), WithStrict(false)).Labels().Next()
	require.NoError(t, err)
	assert.Equal(t, "Caf&eacute; del Mar", *l.Name)

	deep := `<labels><label><id>1</id><profile><a><b><c>x</c></b></a></profile></label></labels>`
	_, err = newTestReader(t, deep, WithMaxDepth(4)).Labels().Next()
	assert.True(t, errors.Is(err, dumperr.ErrSchemaViolation))
	_, err = newTestReader(t, deep, WithMaxDepth(5)).Labels().Next()
	assert.NoError(t, err)
}
