package repositories

import (
	"context"

	"github.com/xdoubleu/essentia/v2/pkg/database/postgres"

	"calendra.dev/internal/models"
)

type CalendarRepository struct {
	db postgres.DB
}

func (repo *CalendarRepository) Insert(
	ctx context.Context,
	calendar models.Calendar,
) error {
	query := `
		INSERT INTO calendars (id, name, owner_id)
		VALUES ($1, $2, $3)
	`

	_, err := repo.db.Exec(
		ctx,
		query,
		calendar.ID,
		calendar.Name,
		calendar.OwnerID,
	)
	if err != nil {
		return postgres.PgxErrorToHTTPError(err)
	}

	return nil
}

func (repo *CalendarRepository) GetByOwner(
	ctx context.Context,
	ownerID string,
) ([]models.Calendar, error) {
	query := `
		SELECT id, name
		FROM calendars
		WHERE owner_id = $1
		ORDER BY name asc
	`

	rows, err := repo.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, postgres.PgxErrorToHTTPError(err)
	}
	defer rows.Close()

	calendars := []models.Calendar{}
	for rows.Next() {
		calendar := models.Calendar{OwnerID: ownerID}

		err = rows.Scan(&calendar.ID, &calendar.Name)
		if err != nil {
			return nil, postgres.PgxErrorToHTTPError(err)
		}

		calendars = append(calendars, calendar)
	}

	if err = rows.Err(); err != nil {
		return nil, postgres.PgxErrorToHTTPError(err)
	}

	return calendars, nil
}
