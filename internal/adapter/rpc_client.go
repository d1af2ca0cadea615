package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-pass-vault/models"
)

// invalidTokenCode is the server's wire code for an expired or revoked
// session.
const invalidTokenCode = -2

// RPCClientConfig carries the connection settings for
// [NewRPCServerAdapter].
type RPCClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

// rpcServerAdapter is the resty-backed implementation of [ServerAdapter].
type rpcServerAdapter struct {
	client *resty.Client
	nextID atomic.Int64
}

// NewRPCServerAdapter constructs a [ServerAdapter] for the server at
// cfg.BaseURL. Zero-value fields fall back to localhost and a 15 second
// timeout.
func NewRPCServerAdapter(cfg RPCClientConfig) ServerAdapter {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &rpcServerAdapter{client: cli}
}

// rpcWireRequest and rpcWireResponse mirror the server's JSON-RPC framing.
type rpcWireRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      int64  `json:"id"`
	Method  string `json:"method"`
	Params  any    `json:"params"`
}

type rpcWireResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *RPCError       `json:"error"`
}

// call posts one JSON-RPC request and decodes the result into result when
// it is non-nil. Server-reported errors come back as *RPCError, except the
// invalid-token code which maps to [ErrUnauthorized].
func (a *rpcServerAdapter) call(ctx context.Context, method string, params any, result any) error {
	request := rpcWireRequest{
		JSONRPC: "2.0",
		ID:      a.nextID.Add(1),
		Method:  method,
		Params:  params,
	}

	resp, err := a.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		Post("/rpc")
	if err != nil {
		return fmt.Errorf("%s request: %w", method, err)
	}
	if resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("%s: unexpected HTTP status %d", method, resp.StatusCode())
	}

	var wire rpcWireResponse
	if err := json.Unmarshal(resp.Body(), &wire); err != nil {
		return fmt.Errorf("%s decode response: %w", method, err)
	}

	if wire.Error != nil {
		if wire.Error.Code == invalidTokenCode {
			return fmt.Errorf("%w: %s", ErrUnauthorized, wire.Error.Message)
		}
		return wire.Error
	}

	if result != nil && len(wire.Result) > 0 && string(wire.Result) != "null" {
		if err := json.Unmarshal(wire.Result, result); err != nil {
			return fmt.Errorf("%s decode result: %w", method, err)
		}
	}

	return nil
}

// Login implements [ServerAdapter].
func (a *rpcServerAdapter) Login(ctx context.Context, username, password string) (string, error) {
	var token string
	err := a.call(ctx, "user.login", map[string]string{
		"username": username,
		"password": password,
	}, &token)
	if err != nil {
		return "", err
	}

	return token, nil
}

// CreateUser implements [ServerAdapter].
func (a *rpcServerAdapter) CreateUser(ctx context.Context, username, password string) error {
	return a.call(ctx, "user.create", map[string]string{
		"username": username,
		"password": password,
	}, nil)
}

// ChangePassword implements [ServerAdapter].
func (a *rpcServerAdapter) ChangePassword(ctx context.Context, token, oldPassword, newPassword string) error {
	return a.call(ctx, "user.change_password", map[string]string{
		"token": token,
		"old":   oldPassword,
		"new":   newPassword,
	}, nil)
}

// Logout implements [ServerAdapter].
func (a *rpcServerAdapter) Logout(ctx context.Context, token string) error {
	return a.call(ctx, "user.logout", map[string]string{"token": token}, nil)
}

// ListPasswords implements [ServerAdapter].
func (a *rpcServerAdapter) ListPasswords(ctx context.Context, token string) ([]models.PasswordListItem, error) {
	var items []models.PasswordListItem
	if err := a.call(ctx, "password.list", map[string]string{"token": token}, &items); err != nil {
		return nil, err
	}

	return items, nil
}

// ViewPassword implements [ServerAdapter]. A null result decodes to nil.
func (a *rpcServerAdapter) ViewPassword(ctx context.Context, token string, id int64) (*models.PasswordView, error) {
	var view *models.PasswordView
	if err := a.call(ctx, "password.view", map[string]any{"token": token, "id": id}, &view); err != nil {
		return nil, err
	}

	return view, nil
}

// CreatePassword implements [ServerAdapter].
func (a *rpcServerAdapter) CreatePassword(ctx context.Context, token string, create models.PasswordCreate) error {
	return a.call(ctx, "password.create", map[string]any{
		"token":      token,
		"name":       create.Name,
		"username":   create.Username,
		"password":   create.Password,
		"attachment": create.Attachment,
	}, nil)
}

// UpdatePassword implements [ServerAdapter].
func (a *rpcServerAdapter) UpdatePassword(ctx context.Context, token string, id int64, update models.PasswordUpdate) error {
	return a.call(ctx, "password.update", map[string]any{
		"token":      token,
		"id":         id,
		"name":       update.Name,
		"username":   update.Username,
		"password":   update.Password,
		"attachment": update.Attachment,
	}, nil)
}

// DeletePassword implements [ServerAdapter].
func (a *rpcServerAdapter) DeletePassword(ctx context.Context, token string, id int64) error {
	return a.call(ctx, "password.delete", map[string]any{"token": token, "id": id}, nil)
}
