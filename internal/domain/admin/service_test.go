package admin

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"mealpoll-go/pkg/validate"
)

type fakeAdminRepo struct {
	admins   map[uint]*Admin
	sessions map[string]*Session
	nextID   uint
}

func newFakeAdminRepo() *fakeAdminRepo {
	return &fakeAdminRepo{
		admins:   make(map[uint]*Admin),
		sessions: make(map[string]*Session),
	}
}

func (r *fakeAdminRepo) GetByEmail(ctx context.Context, email string) (*Admin, error) {
	for _, account := range r.admins {
		if account.Email == email {
			copied := *account
			return &copied, nil
		}
	}
	return nil, ErrAdminNotFound
}

func (r *fakeAdminRepo) GetByID(ctx context.Context, id uint) (*Admin, error) {
	account, ok := r.admins[id]
	if !ok {
		return nil, ErrAdminNotFound
	}
	copied := *account
	return &copied, nil
}

func (r *fakeAdminRepo) List(ctx context.Context) ([]Admin, error) {
	result := make([]Admin, 0, len(r.admins))
	for _, account := range r.admins {
		result = append(result, *account)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Email < result[j].Email })
	return result, nil
}

func (r *fakeAdminRepo) Create(ctx context.Context, account *Admin) error {
	r.nextID++
	account.ID = r.nextID
	r.admins[account.ID] = account
	return nil
}

func (r *fakeAdminRepo) EmailTaken(ctx context.Context, email string) (bool, error) {
	for _, account := range r.admins {
		if account.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeAdminRepo) CreateSession(ctx context.Context, session *Session) error {
	r.sessions[session.Token] = session
	return nil
}

func (r *fakeAdminRepo) GetSession(ctx context.Context, token string) (*Session, error) {
	session, ok := r.sessions[token]
	if !ok {
		return nil, ErrSessionNotFound
	}
	copied := *session
	return &copied, nil
}

func (r *fakeAdminRepo) DeleteSession(ctx context.Context, token string) error {
	delete(r.sessions, token)
	return nil
}

func (r *fakeAdminRepo) DeleteExpiredSessions(ctx context.Context, now time.Time) error {
	for token, session := range r.sessions {
		if session.Expired(now) {
			delete(r.sessions, token)
		}
	}
	return nil
}

func newTestService(t *testing.T) (*Service, *fakeAdminRepo) {
	t.Helper()
	repo := newFakeAdminRepo()
	return NewService(repo, time.Hour), repo
}

func createTestAdmin(t *testing.T, svc *Service) *Admin {
	t.Helper()
	account, err := svc.CreateAdmin(context.Background(), CreateInput{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "Ada@Example.com",
		Password:  "correct horse",
	})
	if err != nil {
		t.Fatalf("create admin: %v", err)
	}
	return account
}

func TestCreateAdminNormalizesEmail(t *testing.T) {
	svc, _ := newTestService(t)
	account := createTestAdmin(t, svc)
	if account.Email != "ada@example.com" {
		t.Fatalf("expected lowercased email, got %q", account.Email)
	}
	if account.PasswordHash == "" || account.PasswordHash == "correct horse" {
		t.Fatalf("expected hashed password, got %q", account.PasswordHash)
	}
}

func TestCreateAdminValidation(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.CreateAdmin(context.Background(), CreateInput{Email: "nope", Password: "short"})
	var errs validate.Errors
	if !errors.As(err, &errs) {
		t.Fatalf("expected validation error, got %v", err)
	}
	for _, field := range []string{"first_name", "last_name", "email", "password"} {
		if _, ok := errs[field]; !ok {
			t.Fatalf("expected %s error, got %v", field, errs)
		}
	}
}

func TestCreateAdminEmailTaken(t *testing.T) {
	svc, _ := newTestService(t)
	createTestAdmin(t, svc)
	_, err := svc.CreateAdmin(context.Background(), CreateInput{
		FirstName: "Second",
		LastName:  "Admin",
		Email:     "ada@example.com",
		Password:  "correct horse",
	})
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAuthenticate(t *testing.T) {
	svc, _ := newTestService(t)
	created := createTestAdmin(t, svc)
	ctx := context.Background()

	account, err := svc.Authenticate(ctx, "ADA@example.com", "correct horse")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if account.ID != created.ID {
		t.Fatalf("expected admin %d, got %d", created.ID, account.ID)
	}

	if _, err := svc.Authenticate(ctx, "ada@example.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for bad password, got %v", err)
	}
	if _, err := svc.Authenticate(ctx, "nobody@example.com", "correct horse"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
}

func TestLoginSessionRoundTrip(t *testing.T) {
	svc, repo := newTestService(t)
	created := createTestAdmin(t, svc)
	ctx := context.Background()

	session, err := svc.Login(ctx, "ada@example.com", "correct horse")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if len(session.Token) != 64 {
		t.Fatalf("expected 64 hex chars, got %d", len(session.Token))
	}
	if session.AdminID != created.ID {
		t.Fatalf("expected admin %d on session, got %d", created.ID, session.AdminID)
	}

	account, err := svc.AdminByToken(ctx, session.Token)
	if err != nil {
		t.Fatalf("admin by token: %v", err)
	}
	if account.ID != created.ID {
		t.Fatalf("expected admin %d, got %d", created.ID, account.ID)
	}

	if err := svc.Logout(ctx, session.Token); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, err := svc.AdminByToken(ctx, session.Token); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound after logout, got %v", err)
	}
	if len(repo.sessions) != 0 {
		t.Fatalf("expected session deleted, got %d left", len(repo.sessions))
	}
}

func TestExpiredSessionRejectedAndDeleted(t *testing.T) {
	svc, repo := newTestService(t)
	created := createTestAdmin(t, svc)
	ctx := context.Background()

	repo.sessions["stale"] = &Session{
		Token:     "stale",
		AdminID:   created.ID,
		ExpiresAt: time.Now().UTC().Add(-time.Minute),
	}

	if _, err := svc.AdminByToken(ctx, "stale"); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
	if _, ok := repo.sessions["stale"]; ok {
		t.Fatalf("expected expired session removed")
	}
}

func TestDeleteExpired(t *testing.T) {
	svc, repo := newTestService(t)
	created := createTestAdmin(t, svc)
	ctx := context.Background()

	repo.sessions["stale"] = &Session{Token: "stale", AdminID: created.ID, ExpiresAt: time.Now().UTC().Add(-time.Hour)}
	repo.sessions["fresh"] = &Session{Token: "fresh", AdminID: created.ID, ExpiresAt: time.Now().UTC().Add(time.Hour)}

	if err := svc.DeleteExpired(ctx); err != nil {
		t.Fatalf("delete expired: %v", err)
	}
	if _, ok := repo.sessions["stale"]; ok {
		t.Fatalf("expected stale session removed")
	}
	if _, ok := repo.sessions["fresh"]; !ok {
		t.Fatalf("expected fresh session kept")
	}
}
