package models

import (
	"time"

	"github.com/Aalzard/DRUNKPENGUINS/rating"
)

type CategoryRatingEntry struct {
	Score   int    `json:"score"`
	Comment string `json:"comment"`
}

// RegisterRatingRequest carries one user's complete rating submission,
// keyed by category name. Every category on the scale must be present.
type RegisterRatingRequest struct {
	Ratings map[string]CategoryRatingEntry `json:"ratings"`
}

type RatingResponse struct {
	UserID     string                         `json:"userId"`
	Ratings    map[string]CategoryRatingEntry `json:"ratings"`
	TotalScore int                            `json:"totalScore"`
	Timestamp  time.Time                      `json:"timestamp"`
}

type RegisterRatingResponse struct {
	Message   string       `json:"message"`
	Game      GameResponse `json:"game"`
	Persisted bool         `json:"persisted"`
	Warning   string       `json:"warning,omitempty"`
}

func TransformRecord(r rating.Record) RatingResponse {
	entries := make(map[string]CategoryRatingEntry, len(r.Ratings))
	for c, cr := range r.Ratings {
		entries[string(c)] = CategoryRatingEntry{Score: cr.Score, Comment: cr.Comment}
	}
	return RatingResponse{
		UserID:     r.UserID,
		Ratings:    entries,
		TotalScore: r.TotalScore,
		Timestamp:  r.Timestamp,
	}
}

// TransformRatingInput maps the request body onto scale categories for
// BuildRecord, which does the validation.
func TransformRatingInput(req RegisterRatingRequest) map[rating.Category]rating.CategoryRating {
	input := make(map[rating.Category]rating.CategoryRating, len(req.Ratings))
	for name, entry := range req.Ratings {
		input[rating.Category(name)] = rating.CategoryRating{Score: entry.Score, Comment: entry.Comment}
	}
	return input
}
