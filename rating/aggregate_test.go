package rating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAverageScoreEmptyIsZero(t *testing.T) {
	assert.Equal(t, 0.0, AverageScore(testGame()))
}

func TestAverageScoreSingleRating(t *testing.T) {
	game := testGame(mustRecord(t, "u1", 2, 1, 2, 0, 1))
	assert.Equal(t, 6.0, AverageScore(game))
}

func TestAverageScoreIsMeanOfTotals(t *testing.T) {
	game := testGame(
		mustRecord(t, "u1", 2, 1, 2, 0, 1), // 6
		mustRecord(t, "u2", 2, 2, 2, 1, 1), // 8
		mustRecord(t, "u3", 1, 1, 1, 1, 0), // 4
		mustRecord(t, "u4", 2, 2, 2, 2, 2), // 10
	)

	assert.Equal(t, 7.0, AverageScore(game))
	assert.Equal(t, 4, CompletionCount(game))
	assert.Equal(t, Complete, Completion(game, DefaultDirectory()))
}

func TestCoverageAlwaysCoversFullDirectory(t *testing.T) {
	directory := DefaultDirectory()

	covered := Coverage(testGame(), directory)
	require.Len(t, covered, len(directory))
	for _, u := range directory {
		assert.False(t, covered[u.ID])
	}

	covered = Coverage(testGame(mustRecord(t, "u2", 1, 1, 1, 1, 1)), directory)
	require.Len(t, covered, len(directory))
	assert.True(t, covered["u2"])
	assert.False(t, covered["u1"])
	assert.False(t, covered["u3"])
	assert.False(t, covered["u4"])
}

func TestTotalReviewsFoldsOverCatalog(t *testing.T) {
	catalog := Catalog{Games: []Game{
		testGame(mustRecord(t, "u1", 1, 1, 1, 1, 1), mustRecord(t, "u2", 2, 2, 2, 2, 2)),
		testGame(),
		testGame(mustRecord(t, "u4", 0, 0, 0, 0, 0)),
	}}

	assert.Equal(t, 3, TotalReviews(catalog))
	assert.Equal(t, 0, TotalReviews(Catalog{}))
}

// Walks the squad scenario: a fresh game collects ratings one by one until
// everyone has weighed in.
func TestSquadScenario(t *testing.T) {
	directory := DefaultDirectory()
	scale := DefaultScale()
	game := testGame()

	require.Equal(t, 0, CompletionCount(game))
	require.Equal(t, NotStarted, Completion(game, directory))

	record, err := BuildRecord(scale, "u1", fullInput(2, 1, 2, 0, 1))
	require.NoError(t, err)
	require.Equal(t, 6, record.TotalScore)

	game, err = ApplyRating(game, directory, record)
	require.NoError(t, err)
	assert.Equal(t, 1, CompletionCount(game))
	assert.Equal(t, InProgress, Completion(game, directory))

	for _, next := range []Record{
		mustRecord(t, "u2", 2, 2, 2, 1, 1), // 8
		mustRecord(t, "u3", 1, 1, 1, 1, 0), // 4
		mustRecord(t, "u4", 2, 2, 2, 2, 2), // 10
	} {
		game, err = ApplyRating(game, directory, next)
		require.NoError(t, err)
	}

	assert.Equal(t, 7.0, AverageScore(game))
	assert.Equal(t, 4, CompletionCount(game))
	assert.Equal(t, Complete, Completion(game, directory))
}
