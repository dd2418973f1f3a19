package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKind(t *testing.T) {
	for _, tc := range []struct {
		kind      Kind
		element   string
		container string
	}{
		{KindArtist, "artist", "artists"},
		{KindLabel, "label", "labels"},
		{KindMaster, "master", "masters"},
		{KindRelease, "release", "releases"},
	} {
		t.Run(tc.container, func(t *testing.T) {
			a := assert.New(t)
			a.Equal(tc.element, tc.kind.Element())
			a.Equal(tc.container, tc.kind.Container())
			a.Equal(tc.container, tc.kind.String())

			for _, name := range []string{tc.element, tc.container} {
				k, ok := ParseKind(name)
				a.True(ok)
				a.Equal(tc.kind, k)
			}

			b, err := tc.kind.MarshalText()
			a.NoError(err)
			var k Kind
			a.NoError(k.UnmarshalText(b))
			a.Equal(tc.kind, k)
		})
	}

	_, ok := ParseKind("widgets")
	assert.False(t, ok)
	assert.Equal(t, "Kind(7)", Kind(7).String())
	assert.Equal(t, "", Kind(-1).Container())
	var k Kind
	assert.Error(t, k.UnmarshalText([]byte("widgets")))
}

func TestCreditString(t *testing.T) {
	for _, tc := range []struct {
		name    string
		credits []ArtistCredit
		want    string
	}{
		{name: "none"},
		{name: "single", credits: []ArtistCredit{{Name: Ptr("Aphex Twin"), Join: Ptr("&")}}, want: "Aphex Twin"},
		{
			name: "ampersand",
			credits: []ArtistCredit{
				{Name: Ptr("Simon"), Join: Ptr("&")},
				{Name: Ptr("Garfunkel")},
			},
			want: "Simon & Garfunkel",
		},
		{
			name: "comma",
			credits: []ArtistCredit{
				{Name: Ptr("A"), Join: Ptr(",")},
				{Name: Ptr("B"), Join: Ptr("And")},
				{Name: Ptr("C")},
			},
			want: "A, B And C",
		},
	} {
		t.Run(tc.name, func(t *testing.T) { assert.Equal(t, tc.want, CreditString(tc.credits)) })
	}
}

func TestRecordString(t *testing.T) {
	a := assert.New(t)
	var records = []Record{
		Artist{ID: 1, Name: Ptr("The Persuader")},
		Label{ID: 2, Name: Ptr("Svek")},
		Master{ID: 3, Title: Ptr("Stockholm"), Artists: []ArtistCredit{{Name: Ptr("The Persuader")}}},
		Release{ID: 4, Title: Ptr("Stockholm"), Artists: []ArtistCredit{{Name: Ptr("The Persuader")}}},
	}
	a.Equal("The Persuader", records[0].String())
	a.Equal("Svek", records[1].String())
	a.Equal("The Persuader - Stockholm", records[2].String())
	a.Equal("The Persuader - Stockholm", records[3].String())
	for i, r := range records {
		a.Equal(uint32(i+1), r.RecordID())
		a.Equal(Kinds[i], r.RecordKind())
	}
	a.Equal("", Artist{ID: 5}.String())
}

func TestJSONOmitsAbsent(t *testing.T) {
	b, err := json.Marshal(Label{ID: 9, Name: Ptr("Warp"), Sublabels: []LabelInfo{}, URLs: []string{}, Images: []Image{}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":9,"name":"Warp","sublabels":[],"urls":[],"images":[]}`, string(b))
}

func TestDeref(t *testing.T) {
	assert.Equal(t, "", Deref[string](nil))
	assert.Equal(t, 3, Deref(Ptr(3)))
}
