package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/abdelmoulehnajeh/redcastle-sub001/internal/domain/location"
	"github.com/abdelmoulehnajeh/redcastle-sub001/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type locationRepositoryImpl struct {
	db *database.DB
}

func NewLocationRepository(db *database.DB) location.LocationRepository {
	return &locationRepositoryImpl{db: db}
}

// Create implements location.LocationRepository.
func (l *locationRepositoryImpl) Create(ctx context.Context, loc location.Location) (location.Location, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		INSERT INTO locations (id, name, address, phone)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, address, phone, created_at, updated_at
	`

	var created location.Location
	err := q.QueryRow(ctx, query, uuid.NewString(), loc.Name, loc.Address, loc.Phone).Scan(
		&created.ID, &created.Name, &created.Address, &created.Phone,
		&created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return location.Location{}, location.ErrLocationNameExists
		}
		return location.Location{}, fmt.Errorf("failed to create location: %w", err)
	}

	return created, nil
}

// GetByID implements location.LocationRepository.
func (l *locationRepositoryImpl) GetByID(ctx context.Context, id string) (location.Location, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		SELECT id, name, address, phone, created_at, updated_at
		FROM locations
		WHERE id = $1
	`

	var loc location.Location
	err := q.QueryRow(ctx, query, id).Scan(
		&loc.ID, &loc.Name, &loc.Address, &loc.Phone, &loc.CreatedAt, &loc.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return location.Location{}, location.ErrLocationNotFound
		}
		return location.Location{}, fmt.Errorf("failed to get location with id %s: %w", id, err)
	}

	return loc, nil
}

// List implements location.LocationRepository.
func (l *locationRepositoryImpl) List(ctx context.Context) ([]location.Location, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		SELECT id, name, address, phone, created_at, updated_at
		FROM locations
		ORDER BY name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}
	defer rows.Close()

	var locations []location.Location
	for rows.Next() {
		var loc location.Location
		if err := rows.Scan(&loc.ID, &loc.Name, &loc.Address, &loc.Phone, &loc.CreatedAt, &loc.UpdatedAt); err != nil {
			return nil, err
		}
		locations = append(locations, loc)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return locations, nil
}
