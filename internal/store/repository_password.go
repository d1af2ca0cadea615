package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

// passwordRepository is the SQLite-backed implementation of
// [PasswordRepository]. Every statement carries the (id, user_id) scope in
// its WHERE clause; ownership is enforced here, not above.
type passwordRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewPasswordRepository constructs a [PasswordRepository] backed by the
// provided database connection and logger.
func NewPasswordRepository(db *DB, logger *logger.Logger) PasswordRepository {
	logger.Debug().Msg("creating password repository")
	return &passwordRepository{
		db:     db,
		logger: logger,
	}
}

// List returns the plaintext projections of all entries owned by userID,
// ordered by updated_at descending.
func (r *passwordRepository) List(ctx context.Context, userID int64) ([]models.PasswordListItem, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Select("id", "name", "updated_at").
		From(models.Password{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("updated_at DESC").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*passwordRepository.List").Int64("user_id", userID).Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*passwordRepository.List").Int64("user_id", userID).Msg("failed to execute list query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]models.PasswordListItem, 0, 16)
	for rows.Next() {
		var item models.PasswordListItem
		if scanErr := rows.Scan(&item.ID, &item.Name, &item.UpdatedAt); scanErr != nil {
			log.Err(scanErr).Str("func", "*passwordRepository.List").Int64("user_id", userID).Msg("failed to scan list row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		items = append(items, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*passwordRepository.List").Int64("user_id", userID).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return items, nil
}

// Find returns the full entry row matching (id, userID).
//
// Error handling:
//   - no matching row → [ErrPasswordNotFound];
//   - scan failure → wrapped [ErrScanningRow].
func (r *passwordRepository) Find(ctx context.Context, id, userID int64) (models.Password, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Select("id", "user_id", "name", "username", "password", "attachment", "updated_at", "created_at").
		From(models.Password{}.TableName()).
		Where(sq.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*passwordRepository.Find").Int64("user_id", userID).Msg("failed to build query")
		return models.Password{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var p models.Password
	row := r.db.QueryRowContext(ctx, query, args...)
	if scanErr := row.Scan(&p.ID, &p.UserID, &p.Name, &p.Username, &p.Password, &p.Attachment, &p.UpdatedAt, &p.CreatedAt); scanErr != nil {
		if errors.Is(scanErr, sql.ErrNoRows) {
			return models.Password{}, ErrPasswordNotFound
		}
		log.Err(scanErr).Str("func", "*passwordRepository.Find").Int64("user_id", userID).Int64("id", id).Msg("failed to scan password row")
		return models.Password{}, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
	}

	return p, nil
}

// Create inserts a new entry row.
func (r *passwordRepository) Create(ctx context.Context, password models.Password) error {
	log := logger.FromContext(ctx)

	// A missing attachment is bound as an explicit SQL NULL.
	var attachment any
	if password.Attachment != nil {
		attachment = password.Attachment
	}

	query, args, err := sq.Insert(models.Password{}.TableName()).
		Columns("user_id", "name", "username", "password", "attachment", "updated_at", "created_at").
		Values(password.UserID, password.Name, password.Username, password.Password, attachment, password.UpdatedAt, password.CreatedAt).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*passwordRepository.Create").Int64("user_id", password.UserID).Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*passwordRepository.Create").Int64("user_id", password.UserID).Msg("failed to insert password entry")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// Update rewrites name, the three ciphertext fields, and updated_at of the
// row matching (password.ID, password.UserID). An id belonging to another
// user matches nothing and the statement is a no-op.
func (r *passwordRepository) Update(ctx context.Context, password models.Password) error {
	log := logger.FromContext(ctx)

	query, args, err := sq.Update(models.Password{}.TableName()).
		Set("name", password.Name).
		Set("username", password.Username).
		Set("password", password.Password).
		Set("attachment", password.Attachment).
		Set("updated_at", password.UpdatedAt).
		Where(sq.Eq{"id": password.ID, "user_id": password.UserID}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*passwordRepository.Update").Int64("user_id", password.UserID).Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*passwordRepository.Update").Int64("user_id", password.UserID).Int64("id", password.ID).Msg("failed to update password entry")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// Delete removes the row matching (id, userID). An id belonging to another
// user matches nothing and the statement is a no-op.
func (r *passwordRepository) Delete(ctx context.Context, id, userID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := sq.Delete(models.Password{}.TableName()).
		Where(sq.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*passwordRepository.Delete").Int64("user_id", userID).Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*passwordRepository.Delete").Int64("user_id", userID).Int64("id", id).Msg("failed to delete password entry")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
