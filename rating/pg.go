package rating

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type competitionPeriod struct {
	StartsAt time.Time
	EndsAt   time.Time
}

func selectCompetitionPeriod(ctx context.Context, pg *pgxpool.Pool, compUuid uuid.UUID) (*competitionPeriod, error) {
	rows, err := pg.Query(ctx, `
		SELECT starts_at, ends_at
		FROM competitions
		WHERE uuid = $1
	`, compUuid)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}

	var period competitionPeriod
	err = rows.Scan(&period.StartsAt, &period.EndsAt)
	if err != nil {
		return nil, err
	}

	return &period, nil
}

type entryAuthorRow struct {
	EntryUuid  uuid.UUID
	AuthorUuid uuid.UUID
	Firstname  string
	Lastname   string
}

func selectEntryAuthors(ctx context.Context, pg *pgxpool.Pool, compUuid uuid.UUID) ([]entryAuthorRow, error) {
	rows, err := pg.Query(ctx, `
		SELECT e.uuid, e.author_uuid, u.firstname, u.lastname
		FROM entries e
		JOIN users u ON u.uuid = e.author_uuid
		WHERE e.competition_uuid = $1
	`, compUuid)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []entryAuthorRow
	for rows.Next() {
		var row entryAuthorRow
		err := rows.Scan(&row.EntryUuid, &row.AuthorUuid, &row.Firstname, &row.Lastname)
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

type ratingValueRow struct {
	EntryUuid uuid.UUID
	Value     int
}

func selectRatingValues(ctx context.Context, pg *pgxpool.Pool, compUuid uuid.UUID) ([]ratingValueRow, error) {
	rows, err := pg.Query(ctx, `
		SELECT r.entry_uuid, r.value
		FROM ratings r
		JOIN entries e ON e.uuid = r.entry_uuid
		WHERE e.competition_uuid = $1
	`, compUuid)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []ratingValueRow
	for rows.Next() {
		var row ratingValueRow
		err := rows.Scan(&row.EntryUuid, &row.Value)
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

// groupEntryRatings joins the two independent reads of the competition
// ranking path into per-entry rating bundles.
func groupEntryRatings(authors []entryAuthorRow, values []ratingValueRow) []EntryRatings {
	valuesByEntry := make(map[uuid.UUID][]int, len(authors))
	for _, value := range values {
		valuesByEntry[value.EntryUuid] = append(valuesByEntry[value.EntryUuid], value.Value)
	}

	entries := make([]EntryRatings, 0, len(authors))
	for _, author := range authors {
		entries = append(entries, EntryRatings{
			Author: Participant{
				UUID: author.AuthorUuid,
				Name: author.Firstname + " " + author.Lastname,
			},
			RatingValues: valuesByEntry[author.EntryUuid],
		})
	}

	return entries
}

// selectAllCompetitionEntries fetches every competition with its
// entries and their raw rating values in one pass, for the global
// standing. Competitions without entries contribute nothing.
func selectAllCompetitionEntries(ctx context.Context, pg *pgxpool.Pool) ([]CompetitionEntries, error) {
	rows, err := pg.Query(ctx, `
		SELECT e.competition_uuid, e.uuid, e.author_uuid, u.firstname, u.lastname, r.value
		FROM entries e
		JOIN users u ON u.uuid = e.author_uuid
		LEFT JOIN ratings r ON r.entry_uuid = e.uuid
		ORDER BY e.competition_uuid, e.uuid
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var competitions []CompetitionEntries
	var currentComp uuid.UUID
	var currentEntry uuid.UUID

	for rows.Next() {
		var compUuid, entryUuid, authorUuid uuid.UUID
		var firstname, lastname string
		var value *int
		err := rows.Scan(&compUuid, &entryUuid, &authorUuid, &firstname, &lastname, &value)
		if err != nil {
			return nil, err
		}

		if len(competitions) == 0 || compUuid != currentComp {
			competitions = append(competitions, CompetitionEntries{})
			currentComp = compUuid
			currentEntry = uuid.Nil
		}
		comp := &competitions[len(competitions)-1]

		if len(comp.Entries) == 0 || entryUuid != currentEntry {
			comp.Entries = append(comp.Entries, EntryRatings{
				Author: Participant{
					UUID: authorUuid,
					Name: firstname + " " + lastname,
				},
			})
			currentEntry = entryUuid
		}

		if value != nil {
			entry := &comp.Entries[len(comp.Entries)-1]
			entry.RatingValues = append(entry.RatingValues, *value)
		}
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return competitions, nil
}

func selectEntryCompetition(ctx context.Context, pg *pgxpool.Pool, entryUuid uuid.UUID) (*uuid.UUID, error) {
	rows, err := pg.Query(ctx, `
		SELECT competition_uuid
		FROM entries
		WHERE uuid = $1
	`, entryUuid)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}

	var compUuid uuid.UUID
	err = rows.Scan(&compUuid)
	if err != nil {
		return nil, err
	}

	return &compUuid, nil
}

// upsertRating writes the single (entry, rater, category) slot. The
// unique constraint makes the create-or-update atomic; the last writer
// wins on a same-slot race.
func upsertRating(ctx context.Context, pg *pgxpool.Pool, entryUuid, raterUuid uuid.UUID, category Category, value int) error {
	_, err := pg.Exec(ctx, `
		INSERT INTO ratings (uuid, entry_uuid, rater_uuid, category, value, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (entry_uuid, rater_uuid, category)
		DO UPDATE SET value = EXCLUDED.value
	`,
		uuid.New(),
		entryUuid,
		raterUuid,
		string(category),
		value,
		time.Now(),
	)
	return err
}
