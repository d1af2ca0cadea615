package service

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
)

// Login-throttle and session-lifetime parameters, in attempts and Unix
// seconds.
const (
	// MaxLoginAttempt is the number of consecutive failures after which an
	// account is suspended instead of merely counted.
	MaxLoginAttempt = 5

	// LoginSuspendSeconds is how long a suspended account stays locked.
	LoginSuspendSeconds = 300

	// TokenIdleSeconds is the session idle timeout: a token whose row sat
	// unvalidated this long is rejected and eligible for sweeping.
	TokenIdleSeconds = 300
)

// Token string layout: 32-byte token data key, 32-byte token salt, 8-byte
// little-endian row id, 32-byte SHA-256 binding tag.
const (
	userSaltSize    = 32
	tokenIDOffset   = crypto.CredentialSize
	tokenPrefixSize = tokenIDOffset + 8
	tokenSize       = tokenPrefixSize + sha256.Size
)

// authService is the concrete implementation of [AuthService].
//
// It owns every flow that touches credential material: account creation,
// login with throttling, token minting and validation, password rotation,
// and logout. All persistence goes through the user and token
// repositories; all cryptography goes through the envelope [crypto.Manager].
type authService struct {
	// users is the data-access layer for account rows.
	users store.UserRepository

	// tokens is the data-access layer for session rows.
	tokens store.TokenRepository

	// encryption is the cipher registry and KDF used to wrap and unwrap
	// credentials.
	encryption *crypto.Manager

	// clock supplies Unix-second timestamps for throttle and idle math.
	clock utils.Clock

	// logger is the structured logger used for diagnostic output.
	logger *logger.Logger
}

// NewAuthService constructs an [AuthService] wired to the given
// repositories, envelope manager, and clock.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(users store.UserRepository, tokens store.TokenRepository, encryption *crypto.Manager, clock utils.Clock, logger *logger.Logger) AuthService {
	return &authService{
		users:      users,
		tokens:     tokens,
		encryption: encryption,
		clock:      clock,
		logger:     logger,
	}
}

// CreateUser implements [AuthService].
func (a *authService) CreateUser(ctx context.Context, username, password string) (*User, error) {
	log := logger.FromContext(ctx)

	if username == "" || password == "" {
		log.Error().Str("username", username).Msg("invalid user data provided")
		return nil, ErrInvalidDataProvided
	}

	credential, err := crypto.GenerateCredential()
	if err != nil {
		return nil, fmt.Errorf("generate credential: %w", err)
	}

	salt, err := utils.RandomBytes(userSaltSize)
	if err != nil {
		return nil, fmt.Errorf("generate user salt: %w", err)
	}

	wrapped, err := a.encryption.Encrypt(credential.Bytes(), []byte(password), salt)
	if err != nil {
		log.Err(err).Str("func", "*authService.CreateUser").Msg("wrapping credential failed")
		return nil, fmt.Errorf("wrap credential: %w", err)
	}

	user, err := a.users.CreateUser(ctx, models.User{
		Username:   username,
		Salt:       salt,
		Credential: wrapped,
		CreatedAt:  a.clock.Now(),
	})
	if err != nil {
		if !errors.Is(err, store.ErrUserAlreadyExists) {
			log.Err(err).Str("func", "*authService.CreateUser").Str("username", username).Msg("user creation ended with error")
		}
		return nil, fmt.Errorf("user creation ended with error: %w", err)
	}

	return &User{ID: user.UserID, Credential: credential}, nil
}

// Login implements [AuthService].
//
// Throttling is checked before any cryptography so suspended accounts do
// not leak timing information about the stored credential.
func (a *authService) Login(ctx context.Context, username, password string) (*User, error) {
	log := logger.FromContext(ctx)

	row, err := a.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return nil, ErrBadCredentials
		}
		log.Err(err).Str("func", "*authService.Login").Msg("user search by username failed")
		return nil, fmt.Errorf("user search by username failed: %w", err)
	}

	now := a.clock.Now()
	if row.Suspend > now {
		return nil, ErrLoginSuspended
	}

	plain, err := a.encryption.Decrypt(row.Credential, []byte(password), row.Salt)
	if err != nil {
		// The counter-vs-timestamp overload: below the attempt limit the
		// column counts failures, at or above it the column holds the
		// unlock time.
		suspend := row.Suspend + 1
		if suspend >= MaxLoginAttempt {
			suspend = now + LoginSuspendSeconds
		}
		if updateErr := a.users.UpdateSuspend(ctx, row.UserID, suspend); updateErr != nil {
			log.Err(updateErr).Str("func", "*authService.Login").Int64("user_id", row.UserID).Msg("failed to record login failure")
		}
		return nil, ErrBadCredentials
	}

	if err := a.users.UpdateSuspend(ctx, row.UserID, 0); err != nil {
		crypto.Zero(plain)
		log.Err(err).Str("func", "*authService.Login").Int64("user_id", row.UserID).Msg("failed to reset suspend state")
		return nil, fmt.Errorf("failed to reset suspend state: %w", err)
	}

	credential, err := crypto.CredentialFromBytes(plain)
	if err != nil {
		return nil, fmt.Errorf("stored credential is corrupt: %w", err)
	}

	return &User{ID: row.UserID, Credential: credential}, nil
}

// CreateToken implements [AuthService].
func (a *authService) CreateToken(ctx context.Context, user *User) (string, error) {
	log := logger.FromContext(ctx)

	tokenCredential, err := crypto.GenerateCredential()
	if err != nil {
		return "", fmt.Errorf("generate token credential: %w", err)
	}
	defer tokenCredential.Destroy()

	wrapped, err := a.encryption.Encrypt(user.Credential.Bytes(), tokenCredential.DataKey(), tokenCredential.Salt())
	if err != nil {
		log.Err(err).Str("func", "*authService.CreateToken").Int64("user_id", user.ID).Msg("wrapping credential under token failed")
		return "", fmt.Errorf("wrap credential under token: %w", err)
	}

	now := a.clock.Now()
	row, err := a.tokens.CreateToken(ctx, models.Token{
		UserID:     user.ID,
		Credential: wrapped,
		LastActive: now,
		CreatedAt:  now,
	})
	if err != nil {
		log.Err(err).Str("func", "*authService.CreateToken").Int64("user_id", user.ID).Msg("token insert failed")
		return "", fmt.Errorf("token insert failed: %w", err)
	}

	// token = data key ‖ salt ‖ id_le ‖ SHA-256(prefix ‖ wrapped)
	buf := make([]byte, 0, tokenSize)
	buf = append(buf, tokenCredential.Bytes()...)
	buf = binary.LittleEndian.AppendUint64(buf, uint64(row.TokenID))

	h := sha256.New()
	h.Write(buf)
	h.Write(wrapped)
	buf = h.Sum(buf)

	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// FindUser implements [AuthService].
//
// The token supplies both the identifier (row id) and the unwrapper (data
// key + salt); the stored row alone yields only opaque ciphertext.
func (a *authService) FindUser(ctx context.Context, token string) (*User, error) {
	log := logger.FromContext(ctx)

	raw, row, err := a.resolveToken(ctx, token)
	if err != nil {
		return nil, err
	}

	now := a.clock.Now()
	if row.LastActive+TokenIdleSeconds <= now {
		return nil, ErrInvalidToken
	}

	userRow, err := a.users.FindByID(ctx, row.UserID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return nil, ErrInvalidToken
		}
		log.Err(err).Str("func", "*authService.FindUser").Int64("user_id", row.UserID).Msg("user lookup failed")
		return nil, fmt.Errorf("user lookup failed: %w", err)
	}

	plain, err := a.encryption.Decrypt(row.Credential, raw[:32], raw[32:crypto.CredentialSize])
	if err != nil {
		// The tag already matched, so this row was written by us and
		// should always open. Failure here is server-side corruption, not
		// a client mistake.
		log.Err(err).Str("func", "*authService.FindUser").Int64("token_id", row.TokenID).Msg("stored token credential failed to open")
		return nil, fmt.Errorf("stored token credential failed to open: %w", err)
	}

	if err := a.tokens.UpdateLastActive(ctx, row.TokenID, now); err != nil {
		crypto.Zero(plain)
		log.Err(err).Str("func", "*authService.FindUser").Int64("token_id", row.TokenID).Msg("failed to refresh last_active")
		return nil, fmt.Errorf("failed to refresh last_active: %w", err)
	}

	credential, err := crypto.CredentialFromBytes(plain)
	if err != nil {
		return nil, fmt.Errorf("stored credential is corrupt: %w", err)
	}

	return &User{ID: userRow.UserID, Credential: credential}, nil
}

// ChangePassword implements [AuthService].
//
// The 64-byte Credential inside the envelope never changes, so existing
// records stay readable and outstanding tokens (which wrap the same
// Credential under their own key material) stay valid.
func (a *authService) ChangePassword(ctx context.Context, user *User, oldPassword, newPassword string) error {
	log := logger.FromContext(ctx)

	if oldPassword == "" || newPassword == "" {
		return ErrInvalidDataProvided
	}

	row, err := a.users.FindByID(ctx, user.ID)
	if err != nil {
		log.Err(err).Str("func", "*authService.ChangePassword").Int64("user_id", user.ID).Msg("user lookup failed")
		return fmt.Errorf("user lookup failed: %w", err)
	}

	plain, err := a.encryption.Decrypt(row.Credential, []byte(oldPassword), row.Salt)
	if err != nil {
		return ErrBadCredentials
	}
	defer crypto.Zero(plain)

	salt, err := utils.RandomBytes(userSaltSize)
	if err != nil {
		return fmt.Errorf("generate user salt: %w", err)
	}

	wrapped, err := a.encryption.Encrypt(plain, []byte(newPassword), salt)
	if err != nil {
		log.Err(err).Str("func", "*authService.ChangePassword").Int64("user_id", user.ID).Msg("re-wrapping credential failed")
		return fmt.Errorf("re-wrap credential: %w", err)
	}

	if err := a.users.UpdateCredential(ctx, row.UserID, salt, wrapped); err != nil {
		log.Err(err).Str("func", "*authService.ChangePassword").Int64("user_id", user.ID).Msg("credential update failed")
		return fmt.Errorf("credential update failed: %w", err)
	}

	return nil
}

// Logout implements [AuthService]. The binding tag is verified before the
// delete so a forged row id cannot revoke somebody else's session.
func (a *authService) Logout(ctx context.Context, token string) error {
	log := logger.FromContext(ctx)

	_, row, err := a.resolveToken(ctx, token)
	if err != nil {
		return err
	}

	if err := a.tokens.Delete(ctx, row.TokenID); err != nil {
		log.Err(err).Str("func", "*authService.Logout").Int64("token_id", row.TokenID).Msg("token delete failed")
		return fmt.Errorf("token delete failed: %w", err)
	}

	return nil
}

// resolveToken decodes a token string, fetches its row, and verifies the
// SHA-256 binding over (prefix ‖ stored wrapped credential). Every failure
// mode maps to [ErrInvalidToken].
func (a *authService) resolveToken(ctx context.Context, token string) ([]byte, models.Token, error) {
	log := logger.FromContext(ctx)

	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil || len(raw) != tokenSize {
		return nil, models.Token{}, ErrInvalidToken
	}

	id := int64(binary.LittleEndian.Uint64(raw[tokenIDOffset:tokenPrefixSize]))
	row, err := a.tokens.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrTokenNotFound) {
			return nil, models.Token{}, ErrInvalidToken
		}
		log.Err(err).Str("func", "*authService.resolveToken").Int64("token_id", id).Msg("token lookup failed")
		return nil, models.Token{}, fmt.Errorf("token lookup failed: %w", err)
	}

	h := sha256.New()
	h.Write(raw[:tokenPrefixSize])
	h.Write(row.Credential)
	if !hmac.Equal(h.Sum(nil), raw[tokenPrefixSize:]) {
		return nil, models.Token{}, ErrInvalidToken
	}

	return raw, row, nil
}
