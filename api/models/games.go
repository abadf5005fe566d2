package models

import (
	"github.com/Aalzard/DRUNKPENGUINS/rating"
)

type CreateGameRequest struct {
	Name        string `json:"name"`
	ImageURL    string `json:"imageUrl"`
	Description string `json:"description"`
}

type GameResponse struct {
	ID              string                    `json:"id"`
	Name            string                    `json:"name"`
	ImageURL        string                    `json:"imageUrl"`
	Description     string                    `json:"description,omitempty"`
	AverageScore    float64                   `json:"averageScore"`
	CompletionCount int                       `json:"completionCount"`
	State           string                    `json:"state"`
	Coverage        map[string]bool           `json:"coverage"`
	Ratings         map[string]RatingResponse `json:"ratings"`
}

type CreateGameResponse struct {
	Game      GameResponse `json:"game"`
	Persisted bool         `json:"persisted"`
	Warning   string       `json:"warning,omitempty"`
}

type SummaryResponse struct {
	GamesTracked int `json:"gamesTracked"`
	TotalReviews int `json:"totalReviews"`
}

// TransformGameFromCatalog derives all group statistics on read; only the
// per-record total is stored.
func TransformGameFromCatalog(g rating.Game, directory rating.Directory) GameResponse {
	ratings := make(map[string]RatingResponse, len(g.Ratings))
	for userID, r := range g.Ratings {
		ratings[userID] = TransformRecord(r)
	}

	return GameResponse{
		ID:              g.ID,
		Name:            g.Name,
		ImageURL:        g.ImageURL,
		Description:     g.Description,
		AverageScore:    rating.AverageScore(g),
		CompletionCount: rating.CompletionCount(g),
		State:           string(rating.Completion(g, directory)),
		Coverage:        rating.Coverage(g, directory),
		Ratings:         ratings,
	}
}
