package rating

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"
)

// DefaultPointsTable awards 3/2/1 points to the first three placements.
var DefaultPointsTable = []int{3, 2, 1}

type RatingSrvc struct {
	postgres    *pgxpool.Pool
	pointsTable []int
}

// NewRatingService constructs the scoring service. pointsTable maps
// placement index to award points (index 0 = first place); nil falls
// back to DefaultPointsTable.
func NewRatingService(pg *pgxpool.Pool, pointsTable []int) *RatingSrvc {
	if pointsTable == nil {
		pointsTable = DefaultPointsTable
	}
	return &RatingSrvc{
		postgres:    pg,
		pointsTable: pointsTable,
	}
}

// RankedScore is one row of a competition ranking: the participant,
// their total score and their 0-based placement index.
type RankedScore struct {
	ParticipantScore
	PlaceIndex int
}

// GetCompetitionRanking computes the leaderboard of one competition.
// Unknown competition is NotFound. A competition that has not started
// yet returns an empty ranking so scores don't leak early. A storage
// failure surfaces as an internal error, never as an empty board.
func (s *RatingSrvc) GetCompetitionRanking(ctx context.Context, compUuid uuid.UUID) ([]RankedScore, error) {
	comp, err := selectCompetitionPeriod(ctx, s.postgres, compUuid)
	if err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}
	if comp == nil {
		return nil, newErrCompetitionNotFound()
	}

	if comp.StartsAt.After(time.Now()) {
		return []RankedScore{}, nil
	}

	// the two reads are independent, issue them concurrently
	var authors []entryAuthorRow
	var values []ratingValueRow
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		authors, err = selectEntryAuthors(gctx, s.postgres, compUuid)
		return err
	})
	g.Go(func() error {
		var err error
		values, err = selectRatingValues(gctx, s.postgres, compUuid)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}

	board := toLeaderboard(groupEntryRatings(authors, values))

	placeByUuid := make(map[uuid.UUID]int, len(board))
	for _, group := range ToPlacements(board) {
		for _, member := range group.Members {
			placeByUuid[member.UUID] = group.PlaceIndex
		}
	}

	ranked := make([]RankedScore, 0, len(board))
	for _, row := range board {
		ranked = append(ranked, RankedScore{
			ParticipantScore: row,
			PlaceIndex:       placeByUuid[row.UUID],
		})
	}

	return ranked, nil
}

// GetGlobalRanking computes the all-time standing over every
// competition, whatever its temporal state.
func (s *RatingSrvc) GetGlobalRanking(ctx context.Context) ([]ParticipantScore, error) {
	competitions, err := selectAllCompetitionEntries(ctx, s.postgres)
	if err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}

	return toGlobalStanding(competitions, s.pointsTable), nil
}

type SubmitRatingParams struct {
	EntryUUID uuid.UUID
	RaterUUID uuid.UUID
	Category  Category
	Value     int
}

// SubmitRating stores a member's rating of an entry in one category.
// A rating already present for the same (entry, rater, category) slot
// is overwritten in place; other categories are untouched. Returns the
// competition the entry belongs to so callers can drop cached
// leaderboards.
func (s *RatingSrvc) SubmitRating(ctx context.Context, p SubmitRatingParams) (uuid.UUID, error) {
	if err := validateRating(p.Category, p.Value); err != nil {
		return uuid.Nil, err
	}

	compUuid, err := selectEntryCompetition(ctx, s.postgres, p.EntryUUID)
	if err != nil {
		return uuid.Nil, newErrInternalSE().SetDebug(err)
	}
	if compUuid == nil {
		return uuid.Nil, newErrEntryNotFound()
	}

	err = upsertRating(ctx, s.postgres, p.EntryUUID, p.RaterUUID, p.Category, p.Value)
	if err != nil {
		return uuid.Nil, newErrInternalSE().SetDebug(err)
	}

	return *compUuid, nil
}
