package competition

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CreateCompetitionParams struct {
	Name     string
	ImageUrl string
	StartsAt time.Time
	EndsAt   time.Time
}

func (s *CompSrvc) CreateCompetition(ctx context.Context, p CreateCompetitionParams) (*Competition, error) {
	if p.Name == "" {
		return nil, newErrCompetitionNameEmpty()
	}
	if !p.EndsAt.After(p.StartsAt) {
		return nil, newErrInvalidTimeRange()
	}

	conflicting, err := selectOverlappingCompetition(ctx, s.postgres, p.StartsAt, p.EndsAt)
	if err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}
	if conflicting != nil {
		return nil, newErrOverlappingCompetition()
	}

	row := &dbCompetition{
		Uuid:     uuid.New(),
		Name:     p.Name,
		ImageUrl: p.ImageUrl,
		StartsAt: p.StartsAt,
		EndsAt:   p.EndsAt,
	}

	err = insertCompetition(ctx, s.postgres, row)
	if err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}

	return &Competition{
		UUID:     row.Uuid,
		Name:     row.Name,
		ImageUrl: row.ImageUrl,
		StartsAt: row.StartsAt,
		EndsAt:   row.EndsAt,
	}, nil
}

type dbCompetition struct {
	Uuid     uuid.UUID
	Name     string
	ImageUrl string
	StartsAt time.Time
	EndsAt   time.Time
}

// selectOverlappingCompetition finds a competition whose [starts_at, ends_at]
// range intersects the given range. Three cases as in the competition
// creation form: an end inside the range, a start inside the range, or a
// competition that fully contains the range.
func selectOverlappingCompetition(ctx context.Context, pg *pgxpool.Pool, startsAt, endsAt time.Time) (*dbCompetition, error) {
	rows, err := pg.Query(ctx, `
		SELECT uuid, name, image_url, starts_at, ends_at
		FROM competitions
		WHERE (ends_at >= $1 AND ends_at <= $2)
		   OR (starts_at >= $1 AND starts_at <= $2)
		   OR (starts_at <= $1 AND ends_at >= $2)
		LIMIT 1
	`, startsAt, endsAt)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}

	var comp dbCompetition
	err = rows.Scan(&comp.Uuid, &comp.Name, &comp.ImageUrl, &comp.StartsAt, &comp.EndsAt)
	if err != nil {
		return nil, err
	}

	return &comp, nil
}

func insertCompetition(ctx context.Context, pg *pgxpool.Pool, comp *dbCompetition) error {
	_, err := pg.Exec(ctx, `
		INSERT INTO competitions (uuid, name, image_url, starts_at, ends_at)
		VALUES ($1, $2, $3, $4, $5)
	`,
		comp.Uuid,
		comp.Name,
		comp.ImageUrl,
		comp.StartsAt,
		comp.EndsAt,
	)
	return err
}
