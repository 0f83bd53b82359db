package competition

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

func (s *CompSrvc) ListCompetitions(ctx context.Context) ([]Competition, error) {
	rows, err := selectCompetitions(ctx, s.postgres)
	if err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}

	comps := make([]Competition, 0, len(rows))
	for _, row := range rows {
		comps = append(comps, Competition{
			UUID:     row.Uuid,
			Name:     row.Name,
			ImageUrl: row.ImageUrl,
			StartsAt: row.StartsAt,
			EndsAt:   row.EndsAt,
		})
	}

	return comps, nil
}

func (s *CompSrvc) GetCompetitionByUUID(ctx context.Context, compUuid uuid.UUID) (*Competition, error) {
	row, err := selectCompetitionByUuid(ctx, s.postgres, compUuid)
	if err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}
	if row == nil {
		return nil, newErrCompetitionNotFound()
	}

	return &Competition{
		UUID:     row.Uuid,
		Name:     row.Name,
		ImageUrl: row.ImageUrl,
		StartsAt: row.StartsAt,
		EndsAt:   row.EndsAt,
	}, nil
}

// GetActiveCompetition returns the competition whose range contains now,
// or nil when none is running.
func (s *CompSrvc) GetActiveCompetition(ctx context.Context, now time.Time) (*Competition, error) {
	rows, err := pgQueryCompetitions(ctx, s.postgres, `
		SELECT uuid, name, image_url, starts_at, ends_at
		FROM competitions
		WHERE starts_at <= $1 AND ends_at >= $1
		LIMIT 1
	`, now)
	if err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	row := rows[0]
	return &Competition{
		UUID:     row.Uuid,
		Name:     row.Name,
		ImageUrl: row.ImageUrl,
		StartsAt: row.StartsAt,
		EndsAt:   row.EndsAt,
	}, nil
}

func selectCompetitions(ctx context.Context, pg *pgxpool.Pool) ([]dbCompetition, error) {
	return pgQueryCompetitions(ctx, pg, `
		SELECT uuid, name, image_url, starts_at, ends_at
		FROM competitions
		ORDER BY starts_at DESC
		LIMIT 100
	`)
}

func selectCompetitionByUuid(ctx context.Context, pg *pgxpool.Pool, compUuid uuid.UUID) (*dbCompetition, error) {
	rows, err := pgQueryCompetitions(ctx, pg, `
		SELECT uuid, name, image_url, starts_at, ends_at
		FROM competitions
		WHERE uuid = $1
	`, compUuid)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

func pgQueryCompetitions(ctx context.Context, pg *pgxpool.Pool, sql string, args ...any) ([]dbCompetition, error) {
	rows, err := pg.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comps []dbCompetition
	for rows.Next() {
		var comp dbCompetition
		err := rows.Scan(&comp.Uuid, &comp.Name, &comp.ImageUrl, &comp.StartsAt, &comp.EndsAt)
		if err != nil {
			return nil, err
		}
		comps = append(comps, comp)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return comps, nil
}
