package catalog

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Aalzard/DRUNKPENGUINS/logging"
	"github.com/Aalzard/DRUNKPENGUINS/rating"
	"github.com/Aalzard/DRUNKPENGUINS/storage"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

var ErrGameNotFound = errors.New("game not found in catalog")

const idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// Store owns the shared in-memory catalog. It is loaded once at startup and
// written through to storage after every mutation. When a save fails the
// in-memory catalog stays authoritative for the session and the next
// whole-catalog save flushes the missed state too.
//
// The squad model has a single logical writer, but gin serves requests
// concurrently, so access goes through a mutex.
type Store struct {
	mu        sync.Mutex
	storage   storage.CatalogStorage
	directory rating.Directory
	games     []rating.Game
	dirty     bool
}

func NewStore(s storage.CatalogStorage, directory rating.Directory) *Store {
	return &Store{storage: s, directory: directory}
}

// Load reads the persisted catalog. An absent key means the squad never
// initialized storage, so the seed catalog is written; a load error falls
// back to the seed without persisting over whatever is stored. A catalog
// that is present but empty was emptied on purpose and stays empty.
func (s *Store) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	catalog, err := s.storage.Load(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrCatalogNotFound) {
			logging.Log.Info("CATALOG: nothing stored yet, seeding")
			s.games = seedGames()
			s.persistLocked(ctx)
			return
		}
		logging.Log.Warnf("CATALOG: load failed, falling back to seed data: %v", err)
		s.games = seedGames()
		s.dirty = true
		return
	}

	s.games = catalog.Games
	logging.Log.Infof("CATALOG: loaded %d games", len(s.games))
}

// Games returns a snapshot of the catalog, newest first.
func (s *Store) Games() []rating.Game {
	s.mu.Lock()
	defer s.mu.Unlock()

	games := make([]rating.Game, len(s.games))
	copy(games, s.games)
	return games
}

func (s *Store) Game(id string) (rating.Game, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, g := range s.games {
		if g.ID == id {
			return g, true
		}
	}
	return rating.Game{}, false
}

// Catalog returns the full catalog value, for summary stats and admin dumps.
func (s *Store) Catalog() rating.Catalog {
	return rating.Catalog{Games: s.Games()}
}

// AddGame creates a game with an empty ratings map and prepends it to the
// catalog. The returned bool reports whether the catalog was persisted.
func (s *Store) AddGame(ctx context.Context, name, imageURL, description string) (rating.Game, bool) {
	id, err := gonanoid.Generate(idAlphabet, 12)
	if err != nil {
		logging.Log.Errorf("CATALOG: id generation failed: %v", err)
		id = fmt.Sprintf("%d", time.Now().UnixNano())
	}
	if imageURL == "" {
		imageURL = fmt.Sprintf("https://picsum.photos/400/600?random=%s", id)
	}
	if description == "" {
		description = "No description provided."
	}

	game := rating.Game{
		ID:          id,
		Name:        name,
		ImageURL:    imageURL,
		Description: description,
		Ratings:     map[string]rating.Record{},
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	games := make([]rating.Game, 0, len(s.games)+1)
	games = append(games, game)
	games = append(games, s.games...)
	s.games = games

	return game, s.persistLocked(ctx)
}

// ApplyRating writes one user's record into the given game and persists the
// catalog. Other games and other users' entries are untouched.
func (s *Store) ApplyRating(ctx context.Context, gameID string, record rating.Record) (rating.Game, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, g := range s.games {
		if g.ID != gameID {
			continue
		}
		updated, err := rating.ApplyRating(g, s.directory, record)
		if err != nil {
			return rating.Game{}, false, err
		}

		games := make([]rating.Game, len(s.games))
		copy(games, s.games)
		games[i] = updated
		s.games = games

		return updated, s.persistLocked(ctx), nil
	}
	return rating.Game{}, false, fmt.Errorf("%w: %s", ErrGameNotFound, gameID)
}

// Reset replaces the catalog with the seed data.
func (s *Store) Reset(ctx context.Context) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.games = seedGames()
	return s.persistLocked(ctx)
}

func (s *Store) persistLocked(ctx context.Context) bool {
	catalog := &rating.Catalog{Games: s.games}
	if err := s.storage.Save(ctx, catalog); err != nil {
		logging.Log.Errorf("CATALOG: save failed, in-memory state kept for this session: %v", err)
		s.dirty = true
		return false
	}
	if s.dirty {
		logging.Log.Info("CATALOG: save recovered, pending state flushed")
		s.dirty = false
	}
	return true
}
