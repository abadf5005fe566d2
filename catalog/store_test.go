package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/Aalzard/DRUNKPENGUINS/logging"
	"github.com/Aalzard/DRUNKPENGUINS/rating"
	"github.com/Aalzard/DRUNKPENGUINS/storage"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// flakyStorage wraps the in-memory adapter so tests can make saves fail.
type flakyStorage struct {
	inner     storage.MemoryCatalogStorage
	failSaves bool
}

func (s *flakyStorage) Load(ctx context.Context) (*rating.Catalog, error) {
	return s.inner.Load(ctx)
}

func (s *flakyStorage) Save(ctx context.Context, catalog *rating.Catalog) error {
	if s.failSaves {
		return errors.New("storage offline")
	}
	return s.inner.Save(ctx, catalog)
}

func newTestStore(t *testing.T) (*Store, *flakyStorage) {
	t.Helper()
	logging.Log = logrus.New()

	fs := &flakyStorage{}
	return NewStore(fs, rating.DefaultDirectory()), fs
}

func mustRecord(t *testing.T, userID string, score int) rating.Record {
	t.Helper()
	input := map[rating.Category]rating.CategoryRating{}
	for _, c := range rating.DefaultScale() {
		input[c] = rating.CategoryRating{Score: score}
	}
	record, err := rating.BuildRecord(rating.DefaultScale(), userID, input)
	require.NoError(t, err)
	return record
}

func TestStoreSeedsWhenNothingStored(t *testing.T) {
	store, fs := newTestStore(t)
	ctx := context.Background()

	store.Load(ctx)

	games := store.Games()
	require.Len(t, games, 1)
	assert.Equal(t, "Cyberpunk 2077", games[0].Name)
	assert.Empty(t, games[0].Ratings)

	// the seed must have been persisted
	persisted, err := fs.inner.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, persisted.Games, 1)
}

func TestStoreKeepsExplicitlyEmptyCatalog(t *testing.T) {
	store, fs := newTestStore(t)
	ctx := context.Background()

	// an emptied catalog is a legitimate state, not "never initialized"
	require.NoError(t, fs.inner.Save(ctx, &rating.Catalog{Games: []rating.Game{}}))

	store.Load(ctx)
	assert.Empty(t, store.Games())
}

func TestStoreFallsBackToSeedOnLoadError(t *testing.T) {
	logging.Log = logrus.New()

	s := NewStore(&failingLoadStorage{}, rating.DefaultDirectory())
	s.Load(context.Background())

	games := s.Games()
	require.Len(t, games, 1)
	assert.Equal(t, "Cyberpunk 2077", games[0].Name)
}

type failingLoadStorage struct{}

func (s *failingLoadStorage) Load(context.Context) (*rating.Catalog, error) {
	return nil, errors.New("storage unavailable")
}

func (s *failingLoadStorage) Save(context.Context, *rating.Catalog) error {
	return errors.New("storage unavailable")
}

func TestStoreAddGamePrependsAndAppliesDefaults(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()
	store.Load(ctx)

	game, persisted := store.AddGame(ctx, "Elden Ring", "", "")

	assert.True(t, persisted)
	assert.NotEmpty(t, game.ID)
	assert.Contains(t, game.ImageURL, "picsum.photos")
	assert.Equal(t, "No description provided.", game.Description)
	assert.Empty(t, game.Ratings)

	games := store.Games()
	require.Len(t, games, 2)
	assert.Equal(t, "Elden Ring", games[0].Name)
	assert.Equal(t, "Cyberpunk 2077", games[1].Name)
}

func TestStoreApplyRating(t *testing.T) {
	store, fs := newTestStore(t)
	ctx := context.Background()
	store.Load(ctx)

	game, persisted, err := store.ApplyRating(ctx, "1", mustRecord(t, "u1", 2))
	require.NoError(t, err)
	assert.True(t, persisted)
	assert.Equal(t, 10, game.Ratings["u1"].TotalScore)

	// persisted catalog carries the rating too
	stored, err := fs.inner.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 10, stored.Games[0].Ratings["u1"].TotalScore)
}

func TestStoreApplyRatingUnknownGame(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()
	store.Load(ctx)

	_, _, err := store.ApplyRating(ctx, "nope", mustRecord(t, "u1", 1))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrGameNotFound))
}

func TestStoreApplyRatingUnknownUser(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()
	store.Load(ctx)

	record := mustRecord(t, "u1", 1)
	record.UserID = "u99"

	_, _, err := store.ApplyRating(ctx, "1", record)
	require.Error(t, err)
	assert.True(t, errors.Is(err, rating.ErrUnknownUser))

	// the game must be untouched
	game, ok := store.Game("1")
	require.True(t, ok)
	assert.Empty(t, game.Ratings)
}

func TestStoreKeepsStateWhenSaveFails(t *testing.T) {
	store, fs := newTestStore(t)
	ctx := context.Background()
	store.Load(ctx)

	fs.failSaves = true
	game, persisted := store.AddGame(ctx, "Elden Ring", "", "")
	assert.False(t, persisted)

	// in-memory catalog stays authoritative for the session
	_, ok := store.Game(game.ID)
	assert.True(t, ok)

	// next successful whole-catalog save flushes the missed state
	fs.failSaves = false
	_, persisted, err := store.ApplyRating(ctx, game.ID, mustRecord(t, "u2", 1))
	require.NoError(t, err)
	assert.True(t, persisted)

	stored, err := fs.inner.Load(ctx)
	require.NoError(t, err)
	require.Len(t, stored.Games, 2)
	assert.Equal(t, "Elden Ring", stored.Games[0].Name)
}

func TestStoreReset(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()
	store.Load(ctx)

	store.AddGame(ctx, "Elden Ring", "", "")
	require.Len(t, store.Games(), 2)

	assert.True(t, store.Reset(ctx))

	games := store.Games()
	require.Len(t, games, 1)
	assert.Equal(t, "Cyberpunk 2077", games[0].Name)
}
