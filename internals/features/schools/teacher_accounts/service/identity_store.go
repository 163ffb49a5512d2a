package service

import (
	"context"

	"gorm.io/gorm"

	authRepo "supervisi_backend/internals/features/users/auth/repository"
	userModel "supervisi_backend/internals/features/users/user/model"
)

// IdentityStore mengabstraksi penyimpanan identity (tabel users) supaya
// alur provisioning bisa diuji tanpa database sungguhan.
type IdentityStore interface {
	// FindByEmail mengembalikan (nil, nil) kalau email belum terdaftar.
	FindByEmail(ctx context.Context, email string) (*userModel.UserModel, error)
	Create(ctx context.Context, user *userModel.UserModel) error
}

type gormIdentityStore struct {
	db *gorm.DB
}

func NewGormIdentityStore(db *gorm.DB) IdentityStore {
	return &gormIdentityStore{db: db}
}

func (s *gormIdentityStore) FindByEmail(ctx context.Context, email string) (*userModel.UserModel, error) {
	return authRepo.FindUserByEmailOrNil(s.db.WithContext(ctx), email)
}

func (s *gormIdentityStore) Create(ctx context.Context, user *userModel.UserModel) error {
	return authRepo.CreateUser(s.db.WithContext(ctx), user)
}
