package rpc

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/models"
)

type tokenParams struct {
	Token string `json:"token"`
}

// listPasswords implements password.list.
func (h *Handler) listPasswords(ctx context.Context, params json.RawMessage) (any, error) {
	var p tokenParams
	if err := json.Unmarshal(params, &p); err != nil {
		return nil, fmt.Errorf("%w: %w", errInvalidParams, err)
	}

	user, err := h.services.AuthService.FindUser(ctx, p.Token)
	if err != nil {
		return nil, err
	}
	defer user.Destroy()

	items, err := h.services.PasswordService.List(ctx, user)
	if err != nil {
		return nil, err
	}

	return items, nil
}

type viewPasswordParams struct {
	Token string `json:"token"`
	ID    int64  `json:"id"`
}

// viewPassword implements password.view. A missing entry yields a null
// result, not an error.
func (h *Handler) viewPassword(ctx context.Context, params json.RawMessage) (any, error) {
	var p viewPasswordParams
	if err := json.Unmarshal(params, &p); err != nil {
		return nil, fmt.Errorf("%w: %w", errInvalidParams, err)
	}

	user, err := h.services.AuthService.FindUser(ctx, p.Token)
	if err != nil {
		return nil, err
	}
	defer user.Destroy()

	view, err := h.services.PasswordService.View(ctx, user, p.ID)
	if err != nil {
		return nil, err
	}
	if view == nil {
		return nil, nil
	}

	return view, nil
}

type createPasswordParams struct {
	Token      string  `json:"token"`
	Name       string  `json:"name"`
	Username   string  `json:"username"`
	Password   string  `json:"password"`
	Attachment *string `json:"attachment"`
}

// createPassword implements password.create.
func (h *Handler) createPassword(ctx context.Context, params json.RawMessage) (any, error) {
	var p createPasswordParams
	if err := json.Unmarshal(params, &p); err != nil {
		return nil, fmt.Errorf("%w: %w", errInvalidParams, err)
	}

	user, err := h.services.AuthService.FindUser(ctx, p.Token)
	if err != nil {
		return nil, err
	}
	defer user.Destroy()

	create := models.PasswordCreate{
		Name:       p.Name,
		Username:   p.Username,
		Password:   p.Password,
		Attachment: p.Attachment,
	}
	if err := h.services.PasswordService.Create(ctx, user, create); err != nil {
		return nil, err
	}

	return nil, nil
}

type updatePasswordParams struct {
	Token      string  `json:"token"`
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	Username   string  `json:"username"`
	Password   string  `json:"password"`
	Attachment *string `json:"attachment"`
}

// updatePassword implements password.update.
func (h *Handler) updatePassword(ctx context.Context, params json.RawMessage) (any, error) {
	var p updatePasswordParams
	if err := json.Unmarshal(params, &p); err != nil {
		return nil, fmt.Errorf("%w: %w", errInvalidParams, err)
	}

	user, err := h.services.AuthService.FindUser(ctx, p.Token)
	if err != nil {
		return nil, err
	}
	defer user.Destroy()

	update := models.PasswordUpdate{
		Name:       p.Name,
		Username:   p.Username,
		Password:   p.Password,
		Attachment: p.Attachment,
	}
	if err := h.services.PasswordService.Update(ctx, user, p.ID, update); err != nil {
		return nil, err
	}

	return nil, nil
}

type deletePasswordParams struct {
	Token string `json:"token"`
	ID    int64  `json:"id"`
}

// deletePassword implements password.delete.
func (h *Handler) deletePassword(ctx context.Context, params json.RawMessage) (any, error) {
	var p deletePasswordParams
	if err := json.Unmarshal(params, &p); err != nil {
		return nil, fmt.Errorf("%w: %w", errInvalidParams, err)
	}

	user, err := h.services.AuthService.FindUser(ctx, p.Token)
	if err != nil {
		return nil, err
	}
	defer user.Destroy()

	if err := h.services.PasswordService.Delete(ctx, user, p.ID); err != nil {
		return nil, err
	}

	return nil, nil
}
