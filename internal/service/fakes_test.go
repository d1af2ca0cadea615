package service

import (
	"context"
	"sort"
	"sync"

	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/models"
)

// fakeClock is a manually advanced [utils.Clock] so throttle and idle
// timeouts can be crossed without sleeping.
type fakeClock struct {
	now int64
}

func (c *fakeClock) Now() int64 {
	return c.now
}

func (c *fakeClock) Advance(seconds int64) {
	c.now += seconds
}

// fakeUserRepo is an in-memory [store.UserRepository].
type fakeUserRepo struct {
	mu     sync.Mutex
	nextID int64
	users  map[int64]models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]models.User)}
}

func (r *fakeUserRepo) CreateUser(_ context.Context, user models.User) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Username == user.Username {
			return models.User{}, store.ErrUserAlreadyExists
		}
	}

	r.nextID++
	user.UserID = r.nextID
	r.users[user.UserID] = user
	return user, nil
}

func (r *fakeUserRepo) FindByUsername(_ context.Context, username string) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.Username == username {
			return user, nil
		}
	}
	return models.User{}, store.ErrUserNotFound
}

func (r *fakeUserRepo) FindByID(_ context.Context, id int64) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return models.User{}, store.ErrUserNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) UpdateSuspend(_ context.Context, id int64, suspend int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user := r.users[id]
	user.Suspend = suspend
	r.users[id] = user
	return nil
}

func (r *fakeUserRepo) UpdateCredential(_ context.Context, id int64, salt, credential []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user := r.users[id]
	user.Salt = salt
	user.Credential = credential
	r.users[id] = user
	return nil
}

// fakeTokenRepo is an in-memory [store.TokenRepository].
type fakeTokenRepo struct {
	mu     sync.Mutex
	nextID int64
	tokens map[int64]models.Token
}

func newFakeTokenRepo() *fakeTokenRepo {
	return &fakeTokenRepo{tokens: make(map[int64]models.Token)}
}

func (r *fakeTokenRepo) CreateToken(_ context.Context, token models.Token) (models.Token, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	token.TokenID = r.nextID
	r.tokens[token.TokenID] = token
	return token, nil
}

func (r *fakeTokenRepo) FindByID(_ context.Context, id int64) (models.Token, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	token, ok := r.tokens[id]
	if !ok {
		return models.Token{}, store.ErrTokenNotFound
	}
	return token, nil
}

func (r *fakeTokenRepo) UpdateLastActive(_ context.Context, id int64, lastActive int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	token, ok := r.tokens[id]
	if !ok {
		return nil
	}
	token.LastActive = lastActive
	r.tokens[id] = token
	return nil
}

func (r *fakeTokenRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.tokens, id)
	return nil
}

func (r *fakeTokenRepo) DeleteIdleBefore(_ context.Context, cutoff int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var removed int64
	for id, token := range r.tokens {
		if token.LastActive <= cutoff {
			delete(r.tokens, id)
			removed++
		}
	}
	return removed, nil
}

// fakePasswordRepo is an in-memory [store.PasswordRepository]. Like the
// real repository, every read and mutation is scoped by (id, user_id).
type fakePasswordRepo struct {
	mu        sync.Mutex
	nextID    int64
	passwords map[int64]models.Password
}

func newFakePasswordRepo() *fakePasswordRepo {
	return &fakePasswordRepo{passwords: make(map[int64]models.Password)}
}

func (r *fakePasswordRepo) List(_ context.Context, userID int64) ([]models.PasswordListItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := make([]models.PasswordListItem, 0, len(r.passwords))
	for _, p := range r.passwords {
		if p.UserID == userID {
			items = append(items, models.PasswordListItem{ID: p.ID, Name: p.Name, UpdatedAt: p.UpdatedAt})
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].UpdatedAt > items[j].UpdatedAt })
	return items, nil
}

func (r *fakePasswordRepo) Find(_ context.Context, id, userID int64) (models.Password, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.passwords[id]
	if !ok || p.UserID != userID {
		return models.Password{}, store.ErrPasswordNotFound
	}
	return p, nil
}

func (r *fakePasswordRepo) Create(_ context.Context, password models.Password) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	password.ID = r.nextID
	r.passwords[password.ID] = password
	return nil
}

func (r *fakePasswordRepo) Update(_ context.Context, password models.Password) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.passwords[password.ID]
	if !ok || existing.UserID != password.UserID {
		return nil
	}
	password.CreatedAt = existing.CreatedAt
	r.passwords[password.ID] = password
	return nil
}

func (r *fakePasswordRepo) Delete(_ context.Context, id, userID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.passwords[id]
	if ok && p.UserID == userID {
		delete(r.passwords, id)
	}
	return nil
}
