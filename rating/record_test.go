package rating

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullInput(gameplay, story, graphics, audio, performance int) map[Category]CategoryRating {
	return map[Category]CategoryRating{
		CategoryGameplay:    {Score: gameplay},
		CategoryStory:       {Score: story},
		CategoryGraphics:    {Score: graphics},
		CategoryAudio:       {Score: audio},
		CategoryPerformance: {Score: performance},
	}
}

func TestBuildRecordTotalIsSumOfScores(t *testing.T) {
	scale := DefaultScale()

	tests := []struct {
		name  string
		input map[Category]CategoryRating
		total int
	}{
		{"all zeros", fullInput(0, 0, 0, 0, 0), 0},
		{"all twos", fullInput(2, 2, 2, 2, 2), 10},
		{"mixed", fullInput(2, 1, 2, 0, 1), 6},
		{"single point", fullInput(0, 0, 1, 0, 0), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record, err := BuildRecord(scale, "u1", tt.input)
			require.NoError(t, err)

			assert.Equal(t, tt.total, record.TotalScore)
			assert.GreaterOrEqual(t, record.TotalScore, 0)
			assert.LessOrEqual(t, record.TotalScore, scale.MaxTotal())

			// the cached total must match a fresh sum over the record itself
			sum := 0
			for _, c := range scale {
				sum += record.Ratings[c].Score
			}
			assert.Equal(t, sum, record.TotalScore)
		})
	}
}

func TestBuildRecordKeepsCommentsAndStampsTime(t *testing.T) {
	input := fullInput(2, 1, 2, 0, 1)
	input[CategoryAudio] = CategoryRating{Score: 0, Comment: "sound kept cutting out"}

	record, err := BuildRecord(DefaultScale(), "u2", input)
	require.NoError(t, err)

	assert.Equal(t, "u2", record.UserID)
	assert.Equal(t, "sound kept cutting out", record.Ratings[CategoryAudio].Comment)
	assert.False(t, record.Timestamp.IsZero())
	assert.Len(t, record.Ratings, len(DefaultScale()))
}

func TestBuildRecordRejectsOutOfRangeScore(t *testing.T) {
	scale := DefaultScale()

	tooHigh := fullInput(2, 1, 3, 0, 1)
	_, err := BuildRecord(scale, "u1", tooHigh)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidScore))

	negative := fullInput(2, 1, 2, -1, 1)
	_, err = BuildRecord(scale, "u1", negative)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidScore))
}

func TestBuildRecordRejectsMissingCategory(t *testing.T) {
	input := fullInput(2, 1, 2, 0, 1)
	delete(input, CategoryAudio)

	_, err := BuildRecord(DefaultScale(), "u1", input)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidScore))
	assert.Contains(t, err.Error(), "Audio")
}

func TestBreakdownDefaultsOnMalformedRecord(t *testing.T) {
	partial := Record{
		UserID:  "u1",
		Ratings: map[Category]CategoryRating{CategoryGameplay: {Score: 2, Comment: "great"}},
	}

	assert.Equal(t, CategoryRating{Score: 2, Comment: "great"}, Breakdown(partial, CategoryGameplay))
	assert.Equal(t, CategoryRating{}, Breakdown(partial, CategoryAudio))
}
