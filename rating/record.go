package rating

import (
	"fmt"
	"time"
)

// CategoryRating is one user's score and comment for a single category.
type CategoryRating struct {
	Score   int    `json:"score"`
	Comment string `json:"comment"`
}

// Record is one user's complete rating of one game: a score and comment for
// every category on the scale, plus the derived total.
//
// TotalScore always equals the sum of the per-category scores. It is a
// cached derived value recomputed at construction, never edited on its own.
type Record struct {
	UserID     string                      `json:"userId"`
	Ratings    map[Category]CategoryRating `json:"ratings"`
	TotalScore int                         `json:"totalScore"`
	Timestamp  time.Time                   `json:"timestamp"`
}

// BuildRecord validates the per-category input against the scale and returns
// a complete record stamped with the current time. A missing category or a
// score outside [MinScore, MaxScore] is rejected with ErrInvalidScore; a
// partial rating is not a valid state. Pure apart from the timestamp; the
// caller writes the result into a game via ApplyRating.
func BuildRecord(scale Scale, userID string, input map[Category]CategoryRating) (Record, error) {
	ratings := make(map[Category]CategoryRating, len(scale))
	total := 0
	for _, c := range scale {
		cr, ok := input[c]
		if !ok {
			return Record{}, fmt.Errorf("%w: missing category %s", ErrInvalidScore, c)
		}
		if cr.Score < MinScore || cr.Score > MaxScore {
			return Record{}, fmt.Errorf("%w: %s score %d outside [%d,%d]", ErrInvalidScore, c, cr.Score, MinScore, MaxScore)
		}
		ratings[c] = cr
		total += cr.Score
	}

	return Record{
		UserID:     userID,
		Ratings:    ratings,
		TotalScore: total,
		Timestamp:  time.Now().UTC(),
	}, nil
}

// Breakdown returns the category rating for one category, defaulting to a
// zero score and empty comment when the category is absent. Well-formed
// records always carry every category; this keeps readers resilient to
// malformed stored data without raising.
func Breakdown(r Record, c Category) CategoryRating {
	if cr, ok := r.Ratings[c]; ok {
		return cr
	}
	return CategoryRating{}
}
