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

func newTestPasswordRepo(t *testing.T) (*passwordRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &passwordRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func TestPasswordList_OrderedNewestFirst(t *testing.T) {
	repo, mock, db := newTestPasswordRepo(t)
	defer db.Close()

	ctx := context.Background()

	rows := sqlmock.
		NewRows([]string{"id", "name", "updated_at"}).
		AddRow(2, "newer", 200).
		AddRow(1, "older", 100)

	mock.ExpectQuery("SELECT id, name, updated_at FROM password WHERE user_id = \\? ORDER BY updated_at DESC").
		WithArgs(int64(3)).
		WillReturnRows(rows)

	items, err := repo.List(ctx, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Name != "newer" || items[1].Name != "older" {
		t.Errorf("unexpected ordering: %+v", items)
	}
}

func TestPasswordFind_ScopedByUser(t *testing.T) {
	repo, mock, db := newTestPasswordRepo(t)
	defer db.Close()

	ctx := context.Background()

	// The predicate carries both id and user_id; which arg binds first is
	// squirrel's concern, so accept either.
	mock.ExpectQuery("SELECT id, user_id, name, username, password, attachment, updated_at, created_at FROM password").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Find(ctx, 5, 3)
	if !errors.Is(err, ErrPasswordNotFound) {
		t.Fatalf("expected ErrPasswordNotFound, got %v", err)
	}
}

func TestPasswordFind_Success(t *testing.T) {
	repo, mock, db := newTestPasswordRepo(t)
	defer db.Close()

	ctx := context.Background()

	rows := sqlmock.
		NewRows([]string{"id", "user_id", "name", "username", "password", "attachment", "updated_at", "created_at"}).
		AddRow(5, 3, "gh", []byte("enc-user"), []byte("enc-pass"), nil, 200, 100)

	mock.ExpectQuery("SELECT id, user_id, name, username, password, attachment, updated_at, created_at FROM password").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(rows)

	p, err := repo.Find(ctx, 5, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ID != 5 || p.UserID != 3 || p.Name != "gh" {
		t.Errorf("unexpected row: %+v", p)
	}
	if p.Attachment != nil {
		t.Errorf("expected nil attachment, got %v", p.Attachment)
	}
}

func TestPasswordCreate(t *testing.T) {
	repo, mock, db := newTestPasswordRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("INSERT INTO password").
		WithArgs(int64(3), "gh", []byte("enc-user"), []byte("enc-pass"), nil, int64(200), int64(200)).
		WillReturnResult(sqlmock.NewResult(5, 1))

	err := repo.Create(ctx, models.Password{
		UserID:    3,
		Name:      "gh",
		Username:  []byte("enc-user"),
		Password:  []byte("enc-pass"),
		UpdatedAt: 200,
		CreatedAt: 200,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestPasswordUpdate_ScopedByUser(t *testing.T) {
	repo, mock, db := newTestPasswordRepo(t)
	defer db.Close()

	ctx := context.Background()

	// Zero affected rows (another user's id) is not an error.
	mock.ExpectExec("UPDATE password SET").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(ctx, models.Password{
		ID:        5,
		UserID:    99,
		Name:      "gh",
		Username:  []byte("enc-user"),
		Password:  []byte("enc-pass"),
		UpdatedAt: 300,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestPasswordDelete_ScopedByUser(t *testing.T) {
	repo, mock, db := newTestPasswordRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM password").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.Delete(ctx, 5, 99); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
