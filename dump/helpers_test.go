package dump

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/andaru/discogs/model"
)

var (
	str = model.Ptr[string]
	num = model.Ptr[int]
	ref = model.Ptr[uint32]
	yes = model.Ptr(true)
)

func credit(id uint32, name string) model.ArtistCredit {
	return model.ArtistCredit{ID: id, Name: str(name)}
}

func image(typ string, width, height int) model.Image {
	return model.Image{Type: str(typ), Width: num(width), Height: num(height)}
}

func newTestReader(t *testing.T, doc string, opts ...Option) *Reader {
	t.Helper()
	r, err := NewReader(strings.NewReader(doc), append([]Option{WithFileName(t.Name())}, opts...)...)
	require.NoError(t, err)
	t.Cleanup(func() { r.Close() })
	return r
}

func collect[R model.Record](t *testing.T, it *Iterator[R]) []R {
	t.Helper()
	require.NotNil(t, it)
	var out []R
	require.NoError(t, it.Each(func(rec R) error {
		out = append(out, rec)
		return nil
	}))
	return out
}

func requireDiff(t *testing.T, want, got interface{}) {
	t.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("records mismatch (-want +got):\n%s", diff)
	}
}
