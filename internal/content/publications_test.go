package content

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmogib/classwork-v2/internal/store"
	"github.com/mmogib/classwork-v2/internal/store/storetest"
)

func publicationsFake() *storetest.Fake {
	fake := storetest.NewFake()
	fake.Add("content", "papers",
		store.Row{store.IDKey: "p2020", "key": "mogib2020", "title": "On Fractional Operators",
			"authors": []any{"M. Mogib", "A. Khan"}, "journal": "J. Math. Anal.",
			"year": int64(2020), "published": true, "accepted": true, "doi": "10.1/abc"},
		store.Row{store.IDKey: "p2024", "key": "mogib2024", "title": "Spectral Collocation",
			"authors": []any{"M. Mogib"}, "journal": "Numer. Algorithms",
			"year": int64(2024), "published": false, "accepted": true},
	)
	return fake
}

func TestPublicationsFilters(t *testing.T) {
	svc := NewService(publicationsFake(), "content", time.Minute, time.Second)

	all, err := svc.Publications(context.Background(), PublicationFilter{SortBy: "year", Desc: true})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "mogib2024", all[0].Key)

	published := true
	onlyPublished, err := svc.Publications(context.Background(), PublicationFilter{Published: &published})
	require.NoError(t, err)
	require.Len(t, onlyPublished, 1)
	assert.Equal(t, "mogib2020", onlyPublished[0].Key)

	byAuthor, err := svc.Publications(context.Background(), PublicationFilter{Author: "khan"})
	require.NoError(t, err)
	require.Len(t, byAuthor, 1)

	byJournal, err := svc.Publications(context.Background(), PublicationFilter{Journal: "numer"})
	require.NoError(t, err)
	require.Len(t, byJournal, 1)

	byYear, err := svc.Publications(context.Background(), PublicationFilter{Year: 2020})
	require.NoError(t, err)
	require.Len(t, byYear, 1)
}

func TestPublicationByID(t *testing.T) {
	svc := NewService(publicationsFake(), "content", time.Minute, time.Second)

	publication, err := svc.Publication(context.Background(), "p2020")
	require.NoError(t, err)
	assert.Equal(t, "On Fractional Operators", publication.Title)
	assert.Equal(t, []string{"M. Mogib", "A. Khan"}, publication.Authors)

	_, err = svc.Publication(context.Background(), "nope")
	assert.ErrorIs(t, err, store.ErrNotFound)
}
