package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/etorres/go-api-scaffold/internal/logger"
	"github.com/etorres/go-api-scaffold/models"
	"github.com/jackc/pgerrcode"
)

var userSchema = &Schema{
	Table:   "users",
	IDField: "user_id",
	Columns: map[string]string{
		"user_id":       "users.user_id",
		"login":         "users.login",
		"password_hash": "users.password_hash",
		"created_at":    "users.created_at",
	},
	SelectColumns: []string{
		"users.user_id",
		"users.login",
		"users.password_hash",
		"users.created_at",
	},
}

var userMapper = RowMapper[models.User]{
	Scan: func(row RowScanner) (models.User, error) {
		var user models.User
		err := row.Scan(&user.UserID, &user.Login, &user.PasswordHash, &user.Created)
		return user, err
	},
	ID: func(user models.User) any {
		return user.UserID
	},
	Values: func(user models.User) map[string]any {
		return map[string]any{
			"login":         user.Login,
			"password_hash": user.PasswordHash,
		}
	},
}

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles user account creation and lookup against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	repo *Repository[models.User]
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, log *logger.Logger) UserRepository {
	return &userRepository{
		repo: NewRepository(db, userSchema, userMapper, log),
	}
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] with server-assigned fields (UserID, Created).
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrLoginAlreadyExists].
//   - Any other failure → wrapped repository error.
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	created, err := r.repo.Create(ctx, user)
	if err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			log.Debug().Str("func", "*userRepository.CreateUser").Msg("login already taken")
			return models.User{}, ErrLoginAlreadyExists
		}

		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error creating user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// FindUserByLogin retrieves the user record whose login matches the given
// value.
//
// Error handling:
//   - No matching row → [ErrNoUserWasFound].
//   - Any other failure → wrapped repository error.
func (r *userRepository) FindUserByLogin(ctx context.Context, login string) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := r.repo.GetOneByField(ctx, "login", login)
	if err != nil {
		if errors.Is(err, ErrElementNotFound) {
			log.Debug().Str("func", "*userRepository.FindUserByLogin").Msg("no user with given login")
			return models.User{}, ErrNoUserWasFound
		}

		log.Err(err).Str("func", "*userRepository.FindUserByLogin").Msg("error finding user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return user, nil
}
