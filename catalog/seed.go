package catalog

import "github.com/Aalzard/DRUNKPENGUINS/rating"

// seedGames is the catalog a fresh squad starts with: one example game
// waiting for its first rating.
func seedGames() []rating.Game {
	return []rating.Game{
		{
			ID:          "1",
			Name:        "Cyberpunk 2077",
			ImageURL:    "https://picsum.photos/400/600",
			Description: "A futuristic open world RPG set in Night City.",
			Ratings:     map[string]rating.Record{},
		},
	}
}
