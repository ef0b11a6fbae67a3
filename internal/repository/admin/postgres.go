package admin

import (
	"context"
	"errors"
	"time"

	admindomain "mealpoll-go/internal/domain/admin"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*admindomain.Admin, error) {
	var account admindomain.Admin
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, admindomain.ErrAdminNotFound
		}
		return nil, err
	}
	return &account, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id uint) (*admindomain.Admin, error) {
	var account admindomain.Admin
	if err := r.db.WithContext(ctx).First(&account, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, admindomain.ErrAdminNotFound
		}
		return nil, err
	}
	return &account, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]admindomain.Admin, error) {
	var accounts []admindomain.Admin
	if err := r.db.WithContext(ctx).Order("email asc").Find(&accounts).Error; err != nil {
		return nil, err
	}
	return accounts, nil
}

func (r *PostgresRepository) Create(ctx context.Context, account *admindomain.Admin) error {
	return r.db.WithContext(ctx).Create(account).Error
}

func (r *PostgresRepository) EmailTaken(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&admindomain.Admin{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *PostgresRepository) CreateSession(ctx context.Context, session *admindomain.Session) error {
	return r.db.WithContext(ctx).Create(session).Error
}

func (r *PostgresRepository) GetSession(ctx context.Context, token string) (*admindomain.Session, error) {
	var session admindomain.Session
	if err := r.db.WithContext(ctx).Where("token = ?", token).First(&session).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, admindomain.ErrSessionNotFound
		}
		return nil, err
	}
	return &session, nil
}

func (r *PostgresRepository) DeleteSession(ctx context.Context, token string) error {
	return r.db.WithContext(ctx).Delete(&admindomain.Session{}, "token = ?", token).Error
}

func (r *PostgresRepository) DeleteExpiredSessions(ctx context.Context, now time.Time) error {
	return r.db.WithContext(ctx).Where("expires_at < ?", now).Delete(&admindomain.Session{}).Error
}
