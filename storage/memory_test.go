package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Aalzard/DRUNKPENGUINS/rating"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStorageLoadAbsent(t *testing.T) {
	s := &MemoryCatalogStorage{}

	_, err := s.Load(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCatalogNotFound))
}

func TestMemoryStorageRoundTrip(t *testing.T) {
	s := &MemoryCatalogStorage{}
	ctx := context.Background()

	catalog := &rating.Catalog{Games: []rating.Game{
		{
			ID:       "g1",
			Name:     "Hades",
			ImageURL: "https://picsum.photos/400/600",
			Ratings: map[string]rating.Record{
				"u3": {
					UserID: "u3",
					Ratings: map[rating.Category]rating.CategoryRating{
						rating.CategoryGameplay:    {Score: 2, Comment: "perfect loop"},
						rating.CategoryStory:       {Score: 2},
						rating.CategoryGraphics:    {Score: 2},
						rating.CategoryAudio:       {Score: 2},
						rating.CategoryPerformance: {Score: 2},
					},
					TotalScore: 10,
					Timestamp:  time.Date(2024, 3, 9, 20, 0, 0, 0, time.UTC),
				},
			},
		},
	}}

	require.NoError(t, s.Save(ctx, catalog))

	loaded, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, catalog, loaded)
}

func TestMemoryStorageEmptyCatalogIsNotAbsent(t *testing.T) {
	s := &MemoryCatalogStorage{}
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, &rating.Catalog{Games: []rating.Game{}}))

	loaded, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, loaded.Games)
}

func TestMemoryStorageHandsOutIndependentCopies(t *testing.T) {
	s := &MemoryCatalogStorage{}
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, &rating.Catalog{Games: []rating.Game{
		{ID: "g1", Name: "Hades", Ratings: map[string]rating.Record{}},
	}}))

	first, err := s.Load(ctx)
	require.NoError(t, err)
	first.Games[0].Name = "mutated"

	second, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Hades", second.Games[0].Name)
}
