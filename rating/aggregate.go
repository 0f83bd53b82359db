package rating

import "sort"

// EntryRatings is one entry of a competition reduced to what scoring
// needs: who baked it and the raw values of every rating it received,
// from all raters and all categories.
type EntryRatings struct {
	Author       Participant
	RatingValues []int
}

// CompetitionEntries is one competition's entries as fetched for the
// global standing.
type CompetitionEntries struct {
	Entries []EntryRatings
}

// toLeaderboard merges a competition's entries into one row per
// participant: the sum of every rating value across every entry the
// participant authored. Authors whose entries received no ratings stay
// on the board with score 0. The result is sorted by score descending;
// ties are ordered by participant UUID so the output is stable across
// runs.
func toLeaderboard(entries []EntryRatings) []ParticipantScore {
	totals := make(map[Participant]int)
	var order []Participant

	for _, entry := range entries {
		if _, seen := totals[entry.Author]; !seen {
			totals[entry.Author] = 0
			order = append(order, entry.Author)
		}
		for _, value := range entry.RatingValues {
			totals[entry.Author] += value
		}
	}

	board := make([]ParticipantScore, 0, len(order))
	for _, participant := range order {
		board = append(board, ParticipantScore{
			Participant: participant,
			Score:       totals[participant],
		})
	}

	sortLeaderboard(board)
	return board
}

// toGlobalStanding computes the all-time points table: every
// competition is ranked on its own, placements are converted to award
// points, and the points accumulate per participant. Everyone who ever
// authored an entry appears, zero totals included.
func toGlobalStanding(competitions []CompetitionEntries, pointsTable []int) []ParticipantScore {
	totals := make(map[Participant]int)
	var order []Participant

	for _, comp := range competitions {
		for _, entry := range comp.Entries {
			if _, seen := totals[entry.Author]; !seen {
				totals[entry.Author] = 0
				order = append(order, entry.Author)
			}
		}
	}

	for _, comp := range competitions {
		board := toLeaderboard(comp.Entries)
		for _, award := range ToPlacementPoints(board, pointsTable) {
			for _, member := range award.Members {
				totals[member] += award.Points
			}
		}
	}

	standing := make([]ParticipantScore, 0, len(order))
	for _, participant := range order {
		standing = append(standing, ParticipantScore{
			Participant: participant,
			Score:       totals[participant],
		})
	}

	sortLeaderboard(standing)
	return standing
}

func sortLeaderboard(board []ParticipantScore) {
	sort.Slice(board, func(i, j int) bool {
		if board[i].Score != board[j].Score {
			return board[i].Score > board[j].Score
		}
		return board[i].UUID.String() < board[j].UUID.String()
	})
}
