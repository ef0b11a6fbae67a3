package admin

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"mealpoll-go/pkg/validate"
)

const (
	sessionTokenBytes = 32
	minPasswordLength = 8
)

type Service struct {
	repo       Repository
	sessionTTL time.Duration
}

func NewService(repo Repository, sessionTTL time.Duration) *Service {
	return &Service{repo: repo, sessionTTL: sessionTTL}
}

// Authenticate resolves the admin for a credential pair. Unknown email and
// wrong password are indistinguishable to the caller.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*Admin, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	account, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrAdminNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !account.CheckPassword(password) {
		return nil, ErrInvalidCredentials
	}
	return account, nil
}

func (s *Service) Login(ctx context.Context, email, password string) (*Session, error) {
	account, err := s.Authenticate(ctx, email, password)
	if err != nil {
		return nil, err
	}

	token, err := newToken()
	if err != nil {
		return nil, err
	}

	session := Session{
		Token:     token,
		AdminID:   account.ID,
		ExpiresAt: time.Now().UTC().Add(s.sessionTTL),
	}
	if err := s.repo.CreateSession(ctx, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *Service) Logout(ctx context.Context, token string) error {
	return s.repo.DeleteSession(ctx, token)
}

// AdminByToken resolves a session token to its admin, rejecting expired
// sessions as if they did not exist.
func (s *Service) AdminByToken(ctx context.Context, token string) (*Admin, error) {
	if token == "" {
		return nil, ErrSessionNotFound
	}

	session, err := s.repo.GetSession(ctx, token)
	if err != nil {
		return nil, err
	}
	if session.Expired(time.Now().UTC()) {
		_ = s.repo.DeleteSession(ctx, token)
		return nil, ErrSessionNotFound
	}

	return s.repo.GetByID(ctx, session.AdminID)
}

func (s *Service) DeleteExpired(ctx context.Context) error {
	return s.repo.DeleteExpiredSessions(ctx, time.Now().UTC())
}

func (s *Service) CreateAdmin(ctx context.Context, input CreateInput) (*Admin, error) {
	input.FirstName = strings.TrimSpace(input.FirstName)
	input.LastName = strings.TrimSpace(input.LastName)
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))

	errs := validate.Errors{}
	errs.Require("first_name", input.FirstName)
	errs.Require("last_name", input.LastName)
	errs.Require("email", input.Email)
	if input.Email != "" && !validate.ValidEmail(input.Email) {
		errs.Add("email", "is not a valid email address")
	}
	if len(input.Password) < minPasswordLength {
		errs.Add("password", "must be at least 8 characters")
	}
	if err := errs.OrNil(); err != nil {
		return nil, err
	}

	taken, err := s.repo.EmailTaken(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrEmailTaken
	}

	account := Admin{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
	}
	if err := account.SetPassword(input.Password); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

func (s *Service) ListAdmins(ctx context.Context) ([]Admin, error) {
	return s.repo.List(ctx)
}

func newToken() (string, error) {
	var b [sessionTokenBytes]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "", err
	}
	return hex.EncodeToString(b[:]), nil
}
