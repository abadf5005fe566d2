package rating

// Group statistics are re-derived from the ratings map on every read;
// nothing here is cached beyond the per-record total.

// AverageScore is the arithmetic mean of the total scores of all ratings a
// game has collected, 0 when nobody has rated it yet. Not rounded; the
// presentation layer rounds for display.
func AverageScore(game Game) float64 {
	if len(game.Ratings) == 0 {
		return 0
	}
	sum := 0
	for _, r := range game.Ratings {
		sum += r.TotalScore
	}
	return float64(sum) / float64(len(game.Ratings))
}

// CompletionCount is how many of the squad have rated the game.
func CompletionCount(game Game) int {
	return len(game.Ratings)
}

// Coverage reports, for every user in the directory, whether they have
// rated the game. The result always has exactly one entry per known user.
func Coverage(game Game, directory Directory) map[string]bool {
	covered := make(map[string]bool, len(directory))
	for _, u := range directory {
		_, ok := game.Ratings[u.ID]
		covered[u.ID] = ok
	}
	return covered
}
