package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

// tokenRepository is the SQLite-backed implementation of [TokenRepository].
type tokenRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewTokenRepository constructs a [TokenRepository] backed by the provided
// database connection and logger.
func NewTokenRepository(db *DB, logger *logger.Logger) TokenRepository {
	logger.Debug().Msg("creating token repository")
	return &tokenRepository{
		db:     db,
		logger: logger,
	}
}

// CreateToken inserts a new session row and returns it with the
// store-assigned TokenID.
func (r *tokenRepository) CreateToken(ctx context.Context, token models.Token) (models.Token, error) {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, createToken, token.UserID, token.Credential, token.LastActive, token.CreatedAt)
	if err != nil {
		log.Err(err).Str("func", "*tokenRepository.CreateToken").Int64("user_id", token.UserID).Msg("error inserting token")
		return models.Token{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		log.Err(err).Str("func", "*tokenRepository.CreateToken").Msg("error reading inserted id")
		return models.Token{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	token.TokenID = id
	return token, nil
}

// FindByID retrieves a session row by its store-assigned id.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrTokenNotFound];
//   - scan failure → wrapped [ErrScanningRow].
func (r *tokenRepository) FindByID(ctx context.Context, id int64) (models.Token, error) {
	log := logger.FromContext(ctx)

	var token models.Token
	row := r.db.QueryRowContext(ctx, findTokenByID, id)
	if err := row.Scan(&token.TokenID, &token.UserID, &token.Credential, &token.LastActive, &token.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Token{}, ErrTokenNotFound
		}
		log.Err(err).Str("func", "*tokenRepository.FindByID").Int64("token_id", id).Msg("error scanning token row")
		return models.Token{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return token, nil
}

// UpdateLastActive refreshes the idle-timeout anchor of a session row.
func (r *tokenRepository) UpdateLastActive(ctx context.Context, id int64, lastActive int64) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, updateTokenLastActive, lastActive, id); err != nil {
		log.Err(err).Str("func", "*tokenRepository.UpdateLastActive").Int64("token_id", id).Msg("error refreshing last_active")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// Delete removes a session row, invalidating every token string bound to it.
func (r *tokenRepository) Delete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, deleteToken, id); err != nil {
		log.Err(err).Str("func", "*tokenRepository.Delete").Int64("token_id", id).Msg("error deleting token")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// DeleteIdleBefore removes all session rows with LastActive at or before
// cutoff and reports how many rows were removed.
func (r *tokenRepository) DeleteIdleBefore(ctx context.Context, cutoff int64) (int64, error) {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, deleteIdleTokens, cutoff)
	if err != nil {
		log.Err(err).Str("func", "*tokenRepository.DeleteIdleBefore").Int64("cutoff", cutoff).Msg("error deleting idle tokens")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected, nil
}
