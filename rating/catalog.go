package rating

// Catalog is the full set of games, newest first. It is the unit of
// persistence: the whole catalog is loaded once at startup and written back
// after every mutation.
type Catalog struct {
	Games []Game `json:"games"`
}

// TotalReviews is the number of ratings across every game in the catalog.
func TotalReviews(catalog Catalog) int {
	total := 0
	for _, g := range catalog.Games {
		total += len(g.Ratings)
	}
	return total
}
