package rating

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func participant(name string) Participant {
	return Participant{UUID: uuid.NewSHA1(uuid.NameSpaceOID, []byte(name)), Name: name}
}

func TestToLeaderboardSumsAllRatingsPerAuthor(t *testing.T) {
	alice := participant("Alice")
	bob := participant("Bob")

	// Alice authored two entries, Bob one; all rating values count
	board := toLeaderboard([]EntryRatings{
		{Author: alice, RatingValues: []int{5, 3, 2}},
		{Author: alice, RatingValues: []int{4}},
		{Author: bob, RatingValues: []int{5, 5}},
	})

	require.Len(t, board, 2)
	assert.Equal(t, alice.UUID, board[0].UUID)
	assert.Equal(t, 14, board[0].Score)
	assert.Equal(t, bob.UUID, board[1].UUID)
	assert.Equal(t, 10, board[1].Score)
}

func TestToLeaderboardUnratedAuthorAppearsWithZero(t *testing.T) {
	alice := participant("Alice")
	bob := participant("Bob")

	board := toLeaderboard([]EntryRatings{
		{Author: alice, RatingValues: []int{3}},
		{Author: bob}, // entered, but nobody rated
	})

	require.Len(t, board, 2)
	assert.Equal(t, bob.UUID, board[1].UUID)
	assert.Equal(t, 0, board[1].Score)
}

func TestToLeaderboardSumInvariant(t *testing.T) {
	entries := []EntryRatings{
		{Author: participant("Alice"), RatingValues: []int{5, 4, 1}},
		{Author: participant("Bob"), RatingValues: []int{2, 2}},
		{Author: participant("Carol"), RatingValues: []int{3}},
		{Author: participant("Carol"), RatingValues: []int{1, 1, 1}},
	}

	allValues := 0
	for _, entry := range entries {
		for _, value := range entry.RatingValues {
			allValues += value
		}
	}

	boardTotal := 0
	for _, row := range toLeaderboard(entries) {
		boardTotal += row.Score
	}

	assert.Equal(t, allValues, boardTotal)
}

func TestToLeaderboardSortedDescending(t *testing.T) {
	board := toLeaderboard([]EntryRatings{
		{Author: participant("Low"), RatingValues: []int{1}},
		{Author: participant("High"), RatingValues: []int{5, 5}},
		{Author: participant("Mid"), RatingValues: []int{4}},
	})

	require.Len(t, board, 3)
	for i := 1; i < len(board); i++ {
		assert.GreaterOrEqual(t, board[i-1].Score, board[i].Score)
	}
	assert.Equal(t, "High", board[0].Name)
}

func TestToGlobalStandingAccumulatesAcrossCompetitions(t *testing.T) {
	alice := participant("Alice")
	bob := participant("Bob")
	carol := participant("Carol")

	competitions := []CompetitionEntries{
		// Alice first, Bob second, Carol third
		{Entries: []EntryRatings{
			{Author: alice, RatingValues: []int{5, 5}},
			{Author: bob, RatingValues: []int{5}},
			{Author: carol, RatingValues: []int{1}},
		}},
		// Bob first, Alice second; Carol entered but got nothing
		{Entries: []EntryRatings{
			{Author: bob, RatingValues: []int{5, 4}},
			{Author: alice, RatingValues: []int{3}},
			{Author: carol},
		}},
	}

	standing := toGlobalStanding(competitions, []int{3, 2, 1})

	points := make(map[string]int)
	for _, row := range standing {
		points[row.Name] = row.Score
	}

	assert.Equal(t, 3+2, points["Alice"])
	assert.Equal(t, 2+3, points["Bob"])
	assert.Equal(t, 1+1, points["Carol"])
}

func TestToGlobalStandingTiedPlacementBothGetFullPoints(t *testing.T) {
	alice := participant("Alice")
	bob := participant("Bob")
	carol := participant("Carol")

	standing := toGlobalStanding([]CompetitionEntries{
		{Entries: []EntryRatings{
			{Author: alice, RatingValues: []int{5, 5}},
			{Author: bob, RatingValues: []int{5, 5}},
			{Author: carol, RatingValues: []int{5}},
		}},
	}, []int{3, 2, 1})

	points := make(map[string]int)
	for _, row := range standing {
		points[row.Name] = row.Score
	}

	// Alice and Bob tie for first and both get 3; Carol is second, not third
	assert.Equal(t, 3, points["Alice"])
	assert.Equal(t, 3, points["Bob"])
	assert.Equal(t, 2, points["Carol"])
}

func TestToGlobalStandingZeroTotalsIncluded(t *testing.T) {
	// four participants, only three placements pay out
	standing := toGlobalStanding([]CompetitionEntries{
		{Entries: []EntryRatings{
			{Author: participant("a"), RatingValues: []int{5}},
			{Author: participant("b"), RatingValues: []int{4}},
			{Author: participant("c"), RatingValues: []int{3}},
			{Author: participant("d"), RatingValues: []int{2}},
		}},
	}, []int{3, 2, 1})

	require.Len(t, standing, 4)
	assert.Equal(t, "d", standing[3].Name)
	assert.Equal(t, 0, standing[3].Score)
}

func TestToGlobalStandingEmpty(t *testing.T) {
	assert.Empty(t, toGlobalStanding(nil, []int{3, 2, 1}))
}

func TestValidateRating(t *testing.T) {
	assert.NoError(t, validateRating(CategoryTaste, 1))
	assert.NoError(t, validateRating(CategoryTaste, 5))
	assert.Error(t, validateRating(CategoryTaste, 6))
	assert.Error(t, validateRating(CategoryTaste, 0))
	assert.NoError(t, validateRating(CategoryAppearance, 3))
	assert.Error(t, validateRating(CategoryAppearance, 4))
	assert.NoError(t, validateRating(CategoryNutrition, 2))
	assert.Error(t, validateRating(CategoryNutrition, 3))
	assert.Error(t, validateRating(Category("SMELL"), 1))
}
