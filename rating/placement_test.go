package rating

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func score(name string, value int) ParticipantScore {
	return ParticipantScore{
		Participant: Participant{UUID: uuid.NewSHA1(uuid.NameSpaceOID, []byte(name)), Name: name},
		Score:       value,
	}
}

func TestToPlacementsEmpty(t *testing.T) {
	assert.Empty(t, ToPlacements(nil))
	assert.Empty(t, ToPlacements([]ParticipantScore{}))
}

func TestToPlacementsSingle(t *testing.T) {
	groups := ToPlacements([]ParticipantScore{score("Alice", 10)})

	require.Len(t, groups, 1)
	assert.Equal(t, 0, groups[0].PlaceIndex)
	require.Len(t, groups[0].Members, 1)
	assert.Equal(t, "Alice", groups[0].Members[0].Name)
}

func TestToPlacementsAllTied(t *testing.T) {
	groups := ToPlacements([]ParticipantScore{
		score("Alice", 7),
		score("Bob", 7),
		score("Carol", 7),
	})

	require.Len(t, groups, 1)
	assert.Equal(t, 0, groups[0].PlaceIndex)
	assert.Len(t, groups[0].Members, 3)
}

func TestToPlacementsTiesDontSkipIndices(t *testing.T) {
	// two tied for first, the next distinct score gets index 1, not 2
	groups := ToPlacements([]ParticipantScore{
		score("Alice", 10),
		score("Bob", 10),
		score("Carol", 5),
	})

	require.Len(t, groups, 2)
	assert.Equal(t, 0, groups[0].PlaceIndex)
	assert.Len(t, groups[0].Members, 2)
	assert.Equal(t, 1, groups[1].PlaceIndex)
	require.Len(t, groups[1].Members, 1)
	assert.Equal(t, "Carol", groups[1].Members[0].Name)
}

func TestToPlacementsIndicesConsecutive(t *testing.T) {
	scores := []ParticipantScore{
		score("a", 30), score("b", 30),
		score("c", 20),
		score("d", 10), score("e", 10), score("f", 10),
		score("g", 5),
		score("h", 0),
	}

	groups := ToPlacements(scores)

	scoreByUuid := make(map[uuid.UUID]int)
	for _, row := range scores {
		scoreByUuid[row.UUID] = row.Score
	}

	for i, group := range groups {
		// indices are consecutive integers starting at 0
		assert.Equal(t, i, group.PlaceIndex)
		// everyone in a group shares the same score
		require.NotEmpty(t, group.Members)
		groupScore := scoreByUuid[group.Members[0].UUID]
		for _, member := range group.Members {
			assert.Equal(t, groupScore, scoreByUuid[member.UUID])
		}
		// distinct groups hold distinct scores
		if i > 0 {
			prevScore := scoreByUuid[groups[i-1].Members[0].UUID]
			assert.Less(t, groupScore, prevScore)
		}
	}
}

func TestToPlacementPointsTiedGroupGetsFullPoints(t *testing.T) {
	// Alice and Bob tie for first; both get the full first-place award
	awards := ToPlacementPoints([]ParticipantScore{
		score("Alice", 10),
		score("Bob", 10),
		score("Carol", 5),
	}, []int{3, 2, 1})

	require.Len(t, awards, 2)
	assert.Equal(t, 3, awards[0].Points)
	assert.Len(t, awards[0].Members, 2)
	assert.Equal(t, 2, awards[1].Points)
	require.Len(t, awards[1].Members, 1)
	assert.Equal(t, "Carol", awards[1].Members[0].Name)
}

func TestToPlacementPointsBeyondTableOmitted(t *testing.T) {
	awards := ToPlacementPoints([]ParticipantScore{
		score("a", 40),
		score("b", 30),
		score("c", 20),
		score("d", 10),
	}, []int{3, 2, 1})

	require.Len(t, awards, 3)
	for _, award := range awards {
		for _, member := range award.Members {
			assert.NotEqual(t, "d", member.Name)
		}
	}
}

func TestToPlacementPointsEmptyBoard(t *testing.T) {
	assert.Empty(t, ToPlacementPoints(nil, []int{3, 2, 1}))
}

func TestToPlacementPointsConservation(t *testing.T) {
	// awarded points never exceed the sum of the table, no matter the ties
	boards := [][]ParticipantScore{
		{score("a", 5)},
		{score("a", 5), score("b", 5)},
		{score("a", 5), score("b", 5), score("c", 5), score("d", 5)},
		{score("a", 9), score("b", 8), score("c", 7), score("d", 6), score("e", 5)},
	}
	table := []int{3, 2, 1}

	for _, board := range boards {
		total := 0
		for _, award := range ToPlacementPoints(board, table) {
			// per-participant totals can exceed the table on ties, but
			// each placement slot pays out its value at most once per member
			assert.Contains(t, table, award.Points)
			total += award.Points
		}
		assert.LessOrEqual(t, total, 3+2+1)
	}
}
