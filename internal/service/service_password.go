package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
)

// passwordService is the concrete implementation of [PasswordService].
//
// Field keys are derived from the owner Credential's data key and salt —
// never from the login password — so rotation of the login password does
// not touch stored entries.
type passwordService struct {
	// passwords is the data-access layer for vault entry rows.
	passwords store.PasswordRepository

	// encryption is the cipher registry and KDF used for field envelopes.
	encryption *crypto.Manager

	// clock supplies Unix-second timestamps for created_at / updated_at.
	clock utils.Clock

	// logger is the structured logger used for diagnostic output.
	logger *logger.Logger
}

// NewPasswordService constructs a [PasswordService] wired to the given
// repository, envelope manager, and clock.
func NewPasswordService(passwords store.PasswordRepository, encryption *crypto.Manager, clock utils.Clock, logger *logger.Logger) PasswordService {
	return &passwordService{
		passwords:  passwords,
		encryption: encryption,
		clock:      clock,
		logger:     logger,
	}
}

// List implements [PasswordService].
func (p *passwordService) List(ctx context.Context, user *User) ([]models.PasswordListItem, error) {
	items, err := p.passwords.List(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("list password entries: %w", err)
	}

	return items, nil
}

// View implements [PasswordService]. Each secret field is decrypted
// independently; a missing attachment stays nil.
func (p *passwordService) View(ctx context.Context, user *User, id int64) (*models.PasswordView, error) {
	log := logger.FromContext(ctx)

	row, err := p.passwords.Find(ctx, id, user.ID)
	if err != nil {
		if errors.Is(err, store.ErrPasswordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("find password entry: %w", err)
	}

	username, err := p.decrypt(user, row.Username)
	if err != nil {
		log.Err(err).Str("func", "*passwordService.View").Int64("id", id).Msg("failed to open username field")
		return nil, fmt.Errorf("open username field: %w", err)
	}
	password, err := p.decrypt(user, row.Password)
	if err != nil {
		log.Err(err).Str("func", "*passwordService.View").Int64("id", id).Msg("failed to open password field")
		return nil, fmt.Errorf("open password field: %w", err)
	}

	view := &models.PasswordView{
		ID:       row.ID,
		Name:     row.Name,
		Username: string(username),
		Password: string(password),
	}

	if row.Attachment != nil {
		attachment, err := p.decrypt(user, row.Attachment)
		if err != nil {
			log.Err(err).Str("func", "*passwordService.View").Int64("id", id).Msg("failed to open attachment field")
			return nil, fmt.Errorf("open attachment field: %w", err)
		}
		s := string(attachment)
		view.Attachment = &s
	}

	return view, nil
}

// Create implements [PasswordService].
func (p *passwordService) Create(ctx context.Context, user *User, create models.PasswordCreate) error {
	row, err := p.sealFields(user, create)
	if err != nil {
		return err
	}

	now := p.clock.Now()
	row.UserID = user.ID
	row.Name = create.Name
	row.UpdatedAt = now
	row.CreatedAt = now

	if err := p.passwords.Create(ctx, row); err != nil {
		return fmt.Errorf("create password entry: %w", err)
	}

	return nil
}

// Update implements [PasswordService]. All three secret fields are sealed
// again even when semantically unchanged so the stored nonces differ
// between writes.
func (p *passwordService) Update(ctx context.Context, user *User, id int64, update models.PasswordUpdate) error {
	row, err := p.sealFields(user, update)
	if err != nil {
		return err
	}

	row.ID = id
	row.UserID = user.ID
	row.Name = update.Name
	row.UpdatedAt = p.clock.Now()

	if err := p.passwords.Update(ctx, row); err != nil {
		return fmt.Errorf("update password entry: %w", err)
	}

	return nil
}

// Delete implements [PasswordService].
func (p *passwordService) Delete(ctx context.Context, user *User, id int64) error {
	if err := p.passwords.Delete(ctx, id, user.ID); err != nil {
		return fmt.Errorf("delete password entry: %w", err)
	}

	return nil
}

// sealFields encrypts the secret fields of create under the owner's
// Credential and returns a partially populated row.
func (p *passwordService) sealFields(user *User, create models.PasswordCreate) (models.Password, error) {
	username, err := p.encrypt(user, []byte(create.Username))
	if err != nil {
		return models.Password{}, fmt.Errorf("seal username field: %w", err)
	}
	password, err := p.encrypt(user, []byte(create.Password))
	if err != nil {
		return models.Password{}, fmt.Errorf("seal password field: %w", err)
	}

	row := models.Password{
		Username: username,
		Password: password,
	}

	if create.Attachment != nil {
		attachment, err := p.encrypt(user, []byte(*create.Attachment))
		if err != nil {
			return models.Password{}, fmt.Errorf("seal attachment field: %w", err)
		}
		row.Attachment = attachment
	}

	return row, nil
}

func (p *passwordService) encrypt(user *User, data []byte) ([]byte, error) {
	return p.encryption.Encrypt(data, user.Credential.DataKey(), user.Credential.Salt())
}

func (p *passwordService) decrypt(user *User, data []byte) ([]byte, error) {
	return p.encryption.Decrypt(data, user.Credential.DataKey(), user.Credential.Salt())
}
