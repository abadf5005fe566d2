package rating

import "fmt"

// Game is one rateable item. Ratings is keyed by user id with at most one
// entry per known user; an entry's UserID always equals its key.
type Game struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	ImageURL    string            `json:"imageUrl"`
	Description string            `json:"description,omitempty"`
	Ratings     map[string]Record `json:"ratings"`
}

// ApplyRating returns a new game whose ratings map equals the old one with
// the entry for record.UserID replaced (inserted if absent). The input
// game's map is never mutated, and no other user's entry is touched.
// Applying the same record twice yields the same result.
func ApplyRating(game Game, directory Directory, record Record) (Game, error) {
	if !directory.Contains(record.UserID) {
		return Game{}, fmt.Errorf("%w: %s", ErrUnknownUser, record.UserID)
	}

	ratings := make(map[string]Record, len(game.Ratings)+1)
	for id, r := range game.Ratings {
		ratings[id] = r
	}
	ratings[record.UserID] = record

	game.Ratings = ratings
	return game, nil
}

// Completeness of a game's squad coverage, derived from catalog contents
// and never stored separately.
type Completeness string

const (
	NotStarted Completeness = "NOT_STARTED"
	InProgress Completeness = "IN_PROGRESS"
	Complete   Completeness = "COMPLETE"
)

// Completion reports how far the squad has got with a game. Ratings only
// ever get added, so a game never moves backwards.
func Completion(game Game, directory Directory) Completeness {
	switch n := len(game.Ratings); {
	case n == 0:
		return NotStarted
	case n < len(directory):
		return InProgress
	default:
		return Complete
	}
}
