package postgresql

import (
	"context"
	"fmt"

	"github.com/abdelmoulehnajeh/redcastle-sub001/internal/domain/user"
	"github.com/abdelmoulehnajeh/redcastle-sub001/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type userRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepositoryImpl{db: db}
}

// GetByID implements user.UserRepository.
func (u *userRepositoryImpl) GetByID(ctx context.Context, id string) (user.User, error) {
	q := GetQuerier(ctx, u.db)

	query := `
		SELECT id, username, password_hash, role, employee_id, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	var usr user.User
	err := q.QueryRow(ctx, query, id).Scan(
		&usr.ID, &usr.Username, &usr.PasswordHash, &usr.Role, &usr.EmployeeID,
		&usr.CreatedAt, &usr.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user with id %s: %w", id, err)
	}

	return usr, nil
}

// GetByUsername implements user.UserRepository.
func (u *userRepositoryImpl) GetByUsername(ctx context.Context, username string) (user.User, error) {
	q := GetQuerier(ctx, u.db)

	query := `
		SELECT id, username, password_hash, role, employee_id, created_at, updated_at
		FROM users
		WHERE username = $1
	`

	var usr user.User
	err := q.QueryRow(ctx, query, username).Scan(
		&usr.ID, &usr.Username, &usr.PasswordHash, &usr.Role, &usr.EmployeeID,
		&usr.CreatedAt, &usr.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user %s: %w", username, err)
	}

	return usr, nil
}

// Create implements user.UserRepository.
func (u *userRepositoryImpl) Create(ctx context.Context, newUser user.User) (user.User, error) {
	q := GetQuerier(ctx, u.db)

	query := `
		INSERT INTO users (id, username, password_hash, role, employee_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, username, password_hash, role, employee_id, created_at, updated_at
	`

	var created user.User
	err := q.QueryRow(ctx, query, uuid.NewString(), newUser.Username, newUser.PasswordHash, newUser.Role, newUser.EmployeeID).Scan(
		&created.ID, &created.Username, &created.PasswordHash, &created.Role, &created.EmployeeID,
		&created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return user.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return created, nil
}
