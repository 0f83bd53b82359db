package entry

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ListEntries returns all entries of a competition with their authors.
// When viewerUuid is non-nil, each entry also carries the viewer's own
// ratings so the rating form can be pre-filled.
func (s *EntrySrvc) ListEntries(ctx context.Context, compUuid uuid.UUID, viewerUuid *uuid.UUID) ([]Entry, error) {
	// make sure the competition exists; propagates NotFound
	_, err := s.compSrvc.GetCompetitionByUUID(ctx, compUuid)
	if err != nil {
		return nil, err
	}

	rows, err := selectEntriesWithAuthors(ctx, s.postgres, compUuid)
	if err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}

	entries := make([]Entry, 0, len(rows))
	byUuid := make(map[uuid.UUID]int, len(rows))
	for _, row := range rows {
		byUuid[row.entry.Uuid] = len(entries)
		entries = append(entries, Entry{
			UUID:            row.entry.Uuid,
			CompetitionUUID: row.entry.CompetitionUuid,
			Title:           row.entry.Title,
			Description:     row.entry.Description,
			ImageUrl:        row.entry.ImageUrl,
			ThumbUrl:        row.entry.ThumbUrl,
			Author:          row.author,
		})
	}

	if viewerUuid != nil {
		ownRatings, err := selectViewerRatings(ctx, s.postgres, compUuid, *viewerUuid)
		if err != nil {
			return nil, newErrInternalSE().SetDebug(err)
		}
		for _, rating := range ownRatings {
			idx, ok := byUuid[rating.EntryUuid]
			if !ok {
				continue
			}
			entries[idx].OwnRatings = append(entries[idx].OwnRatings, OwnRating{
				Category: rating.Category,
				Value:    rating.Value,
			})
		}
	}

	return entries, nil
}

type entryWithAuthor struct {
	entry  dbEntry
	author Author
}

func selectEntriesWithAuthors(ctx context.Context, pg *pgxpool.Pool, compUuid uuid.UUID) ([]entryWithAuthor, error) {
	rows, err := pg.Query(ctx, `
		SELECT e.uuid, e.competition_uuid, e.author_uuid, e.title, e.description,
		       e.image_url, e.thumb_url, e.created_at,
		       u.firstname, u.lastname
		FROM entries e
		JOIN users u ON u.uuid = e.author_uuid
		WHERE e.competition_uuid = $1
		ORDER BY e.created_at
		LIMIT 100
	`, compUuid)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []entryWithAuthor
	for rows.Next() {
		var row entryWithAuthor
		err := rows.Scan(
			&row.entry.Uuid,
			&row.entry.CompetitionUuid,
			&row.entry.AuthorUuid,
			&row.entry.Title,
			&row.entry.Description,
			&row.entry.ImageUrl,
			&row.entry.ThumbUrl,
			&row.entry.CreatedAt,
			&row.author.Firstname,
			&row.author.Lastname,
		)
		if err != nil {
			return nil, err
		}
		row.author.UUID = row.entry.AuthorUuid
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

type viewerRating struct {
	EntryUuid uuid.UUID
	Category  string
	Value     int
}

func selectViewerRatings(ctx context.Context, pg *pgxpool.Pool, compUuid uuid.UUID, viewerUuid uuid.UUID) ([]viewerRating, error) {
	rows, err := pg.Query(ctx, `
		SELECT r.entry_uuid, r.category, r.value
		FROM ratings r
		JOIN entries e ON e.uuid = r.entry_uuid
		WHERE e.competition_uuid = $1 AND r.rater_uuid = $2
	`, compUuid, viewerUuid)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []viewerRating
	for rows.Next() {
		var row viewerRating
		err := rows.Scan(&row.EntryUuid, &row.Category, &row.Value)
		if err != nil {
			return nil, err
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}
