package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

// userRepository is the SQLite-backed implementation of [UserRepository].
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new account via the conditional [createUser]
// insert and returns the input user populated with the store-assigned
// UserID.
//
// Error handling:
//   - zero affected rows → [ErrUserAlreadyExists] (username taken);
//   - any driver-level error → wrapped [ErrExecutingStatement].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, createUser, user.Username, user.Salt, user.Credential, user.CreatedAt)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error executing conditional insert")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error reading affected rows")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return models.User{}, ErrUserAlreadyExists
	}

	id, err := res.LastInsertId()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error reading inserted id")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	user.UserID = id
	return user, nil
}

// FindByUsername retrieves the account row whose username matches exactly.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrUserNotFound];
//   - scan failure → wrapped [ErrScanningRow].
func (r *userRepository) FindByUsername(ctx context.Context, username string) (models.User, error) {
	return r.findOne(ctx, findUserByUsername, username)
}

// FindByID retrieves the account row for the given store-assigned id.
//
// Error handling matches [userRepository.FindByUsername].
func (r *userRepository) FindByID(ctx context.Context, id int64) (models.User, error) {
	return r.findOne(ctx, findUserByID, id)
}

func (r *userRepository) findOne(ctx context.Context, query string, arg any) (models.User, error) {
	log := logger.FromContext(ctx)

	var user models.User
	row := r.db.QueryRowContext(ctx, query, arg)
	if err := row.Scan(&user.UserID, &user.Username, &user.Salt, &user.Credential, &user.Suspend, &user.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("func", "*userRepository.findOne").Msg("error scanning user row")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return user, nil
}

// UpdateSuspend writes the login-throttle column for the given account.
func (r *userRepository) UpdateSuspend(ctx context.Context, id int64, suspend int64) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, updateUserSuspend, suspend, id); err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateSuspend").Int64("user_id", id).Msg("error updating suspend state")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// UpdateCredential replaces the KDF salt and the wrapped credential of an
// account in a single statement.
func (r *userRepository) UpdateCredential(ctx context.Context, id int64, salt, credential []byte) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, updateUserCredential, salt, credential, id); err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateCredential").Int64("user_id", id).Msg("error updating credential")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
