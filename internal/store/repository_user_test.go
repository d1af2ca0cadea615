package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &userRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func TestCreateUser_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{
		Username:   "alice",
		Salt:       []byte("salt-32-bytes"),
		Credential: []byte("wrapped"),
		CreatedAt:  1_700_000_000,
	}

	mock.ExpectExec("INSERT INTO user").
		WithArgs(user.Username, user.Salt, user.Credential, user.CreatedAt).
		WillReturnResult(sqlmock.NewResult(7, 1))

	created, err := repo.CreateUser(ctx, user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.UserID != 7 {
		t.Errorf("expected UserID=7, got %d", created.UserID)
	}
	if created.Username != user.Username {
		t.Errorf("expected username %s, got %s", user.Username, created.Username)
	}
}

func TestCreateUser_UsernameTaken(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	// The conditional insert affects zero rows when the username exists.
	mock.ExpectExec("INSERT INTO user").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := repo.CreateUser(ctx, models.User{Username: "alice"})
	if !errors.Is(err, ErrUserAlreadyExists) {
		t.Fatalf("expected ErrUserAlreadyExists, got %v", err)
	}
}

func TestCreateUser_DBError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("INSERT INTO user").
		WillReturnError(errors.New("disk I/O error"))

	_, err := repo.CreateUser(ctx, models.User{Username: "alice"})
	if !errors.Is(err, ErrExecutingStatement) {
		t.Fatalf("expected ErrExecutingStatement, got %v", err)
	}
}

func TestFindByUsername_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	rows := sqlmock.
		NewRows([]string{"id", "username", "salt", "credential", "suspend", "created_at"}).
		AddRow(3, "alice", []byte("salt"), []byte("wrapped"), 2, 1_700_000_000)

	mock.ExpectQuery("SELECT id, username, salt, credential, suspend, created_at").
		WithArgs("alice").
		WillReturnRows(rows)

	user, err := repo.FindByUsername(ctx, "alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.UserID != 3 || user.Suspend != 2 {
		t.Errorf("unexpected row: %+v", user)
	}
}

func TestFindByUsername_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT id, username, salt, credential, suspend, created_at").
		WithArgs("nobody").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByUsername(ctx, "nobody")
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUpdateSuspend(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("UPDATE user SET suspend").
		WithArgs(int64(0), int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.UpdateSuspend(ctx, 3, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUpdateCredential(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("UPDATE user SET salt").
		WithArgs([]byte("new-salt"), []byte("new-wrapped"), int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.UpdateCredential(ctx, 3, []byte("new-salt"), []byte("new-wrapped")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
