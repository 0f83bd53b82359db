package rating

import "github.com/google/uuid"

// Participant identifies a member on a leaderboard. Aggregation is
// keyed by UUID; the display name is carried along for presentation
// only, so members sharing a name can't swallow each other's scores.
type Participant struct {
	UUID uuid.UUID
	Name string
}

// ParticipantScore is one leaderboard row: a participant and their
// total score within one competition.
type ParticipantScore struct {
	Participant
	Score int
}

// PlacementGroup holds every participant sharing one placement index.
type PlacementGroup struct {
	PlaceIndex int
	Members    []Participant
}

// ToPlacements walks a score-descending leaderboard and groups it into
// 0-based placements. Participants with equal scores share a placement
// index; the next distinct score gets the next consecutive index, no
// matter how large the tied group was (two tied for first place are
// both at index 0 and the next score is at index 1, not 2).
//
// The caller guarantees the descending order; ToPlacements does not sort.
func ToPlacements(scores []ParticipantScore) []PlacementGroup {
	var groups []PlacementGroup
	groupScore := 0

	for _, row := range scores {
		if len(groups) == 0 || row.Score != groupScore {
			groups = append(groups, PlacementGroup{
				PlaceIndex: len(groups),
				Members:    []Participant{row.Participant},
			})
			groupScore = row.Score
			continue
		}

		last := &groups[len(groups)-1]
		last.Members = append(last.Members, row.Participant)
	}

	return groups
}

// PlacementPoints is the award for one placement group: every member
// of the group receives the full points value, never a split.
type PlacementPoints struct {
	Points  int
	Members []Participant
}

// ToPlacementPoints converts a score-descending leaderboard into award
// points using the given table (index 0 = first place). Placements
// beyond the table earn nothing and are omitted.
func ToPlacementPoints(scores []ParticipantScore, pointsTable []int) []PlacementPoints {
	var awards []PlacementPoints
	for _, group := range ToPlacements(scores) {
		if group.PlaceIndex >= len(pointsTable) {
			continue
		}
		awards = append(awards, PlacementPoints{
			Points:  pointsTable[group.PlaceIndex],
			Members: group.Members,
		})
	}
	return awards
}
