package rpc

import (
	"context"
	"encoding/json"
	"fmt"
)

type loginParams struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// login implements user.login: authenticate and mint a session token. The
// result is the token string the client presents on every later call.
func (h *Handler) login(ctx context.Context, params json.RawMessage) (any, error) {
	var p loginParams
	if err := json.Unmarshal(params, &p); err != nil {
		return nil, fmt.Errorf("%w: %w", errInvalidParams, err)
	}

	user, err := h.services.AuthService.Login(ctx, p.Username, p.Password)
	if err != nil {
		return nil, err
	}
	defer user.Destroy()

	token, err := h.services.AuthService.CreateToken(ctx, user)
	if err != nil {
		return nil, err
	}

	return token, nil
}

type createUserParams struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// createUser implements user.create. The method is gated by the
// allow_create_user configuration flag; when disabled, existing accounts
// keep working but no new ones can be registered.
func (h *Handler) createUser(ctx context.Context, params json.RawMessage) (any, error) {
	if !h.allowCreateUser {
		return nil, errCreateUserDisabled
	}

	var p createUserParams
	if err := json.Unmarshal(params, &p); err != nil {
		return nil, fmt.Errorf("%w: %w", errInvalidParams, err)
	}

	user, err := h.services.AuthService.CreateUser(ctx, p.Username, p.Password)
	if err != nil {
		return nil, err
	}
	user.Destroy()

	return nil, nil
}

type changePasswordParams struct {
	Token string `json:"token"`
	Old   string `json:"old"`
	New   string `json:"new"`
}

// changePassword implements user.change_password: the token authenticates
// the session, the old password authorizes the rotation.
func (h *Handler) changePassword(ctx context.Context, params json.RawMessage) (any, error) {
	var p changePasswordParams
	if err := json.Unmarshal(params, &p); err != nil {
		return nil, fmt.Errorf("%w: %w", errInvalidParams, err)
	}

	user, err := h.services.AuthService.FindUser(ctx, p.Token)
	if err != nil {
		return nil, err
	}
	defer user.Destroy()

	if err := h.services.AuthService.ChangePassword(ctx, user, p.Old, p.New); err != nil {
		return nil, err
	}

	return nil, nil
}

type logoutParams struct {
	Token string `json:"token"`
}

// logout implements user.logout: delete the session row, invalidating
// every copy of the token string.
func (h *Handler) logout(ctx context.Context, params json.RawMessage) (any, error) {
	var p logoutParams
	if err := json.Unmarshal(params, &p); err != nil {
		return nil, fmt.Errorf("%w: %w", errInvalidParams, err)
	}

	if err := h.services.AuthService.Logout(ctx, p.Token); err != nil {
		return nil, err
	}

	return nil, nil
}
