package rating

// Category is one fixed dimension of evaluation, e.g. Gameplay.
type Category string

const (
	CategoryGameplay    Category = "Gameplay"
	CategoryStory       Category = "Story"
	CategoryGraphics    Category = "Graphics"
	CategoryAudio       Category = "Audio"
	CategoryPerformance Category = "Performance"
)

// Score bounds for a single category.
const (
	MinScore = 0
	MaxScore = 2
)

// Scale is the ordered, closed set of categories. Every rating must cover
// all of them; components that need "all categories" iterate this exact
// slice, never the keys observed on existing data.
type Scale []Category

// DefaultScale returns the scale the squad rates on.
func DefaultScale() Scale {
	return Scale{
		CategoryGameplay,
		CategoryStory,
		CategoryGraphics,
		CategoryAudio,
		CategoryPerformance,
	}
}

// MaxTotal is the highest total score a single record can reach.
func (s Scale) MaxTotal() int {
	return MaxScore * len(s)
}

func (s Scale) Contains(c Category) bool {
	for _, sc := range s {
		if sc == c {
			return true
		}
	}
	return false
}
