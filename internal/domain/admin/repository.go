package admin

import (
	"context"
	"time"
)

type Repository interface {
	GetByEmail(ctx context.Context, email string) (*Admin, error)
	GetByID(ctx context.Context, id uint) (*Admin, error)
	List(ctx context.Context) ([]Admin, error)
	Create(ctx context.Context, admin *Admin) error
	EmailTaken(ctx context.Context, email string) (bool, error)

	CreateSession(ctx context.Context, session *Session) error
	GetSession(ctx context.Context, token string) (*Session, error)
	DeleteSession(ctx context.Context, token string) error
	DeleteExpiredSessions(ctx context.Context, now time.Time) error
}
