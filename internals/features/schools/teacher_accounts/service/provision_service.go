package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	auditService "supervisi_backend/internals/features/audit/service"
	linkModel "supervisi_backend/internals/features/schools/teacher_accounts/model"
	teacherModel "supervisi_backend/internals/features/schools/teachers/model"
	authHelper "supervisi_backend/internals/features/users/auth/helper"
	userModel "supervisi_backend/internals/features/users/user/model"
)

// Error bisnis provisioning — controller yang memetakan ke status HTTP.
var (
	ErrTeacherNotFound      = errors.New("guru tidak ditemukan di sekolah Anda")
	ErrTeacherAlreadyLinked = errors.New("guru ini sudah memiliki akun")
	ErrEmailLinked          = errors.New("email ini sudah digunakan untuk akun guru lain")
)

// TeacherID opsional (uuid.Nil = tanpa link): identity tetap dibuat,
// baris teacher_accounts tidak.
type ProvisionInput struct {
	SchoolID  uuid.UUID
	TeacherID uuid.UUID
	Email     string
	Password  string // opsional; kosong → digenerate
	ActorID   uuid.UUID
}

type ProvisionResult struct {
	UserID            uuid.UUID
	TeacherAccountID  uuid.UUID // uuid.Nil kalau tidak ada link
	Email             string
	TemporaryPassword string // kosong kalau identity lama di-reuse
}

type ProvisionService struct {
	DB       *gorm.DB
	Identity IdentityStore
}

func NewProvisionService(db *gorm.DB) *ProvisionService {
	return &ProvisionService{DB: db, Identity: NewGormIdentityStore(db)}
}

// Provision membuat (atau me-reuse) identity untuk seorang guru, lalu
// menautkannya lewat teacher_accounts kalau TeacherID dikirim. Identity
// dibuat lebih dulu; kalau insert link gagal, identity yang sudah
// terlanjur dibuat TIDAK di-rollback — login guru tetap butuh baris
// link, jadi identity yatim tidak membuka akses apa pun.
func (s *ProvisionService) Provision(ctx context.Context, in ProvisionInput) (*ProvisionResult, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	withLink := in.TeacherID != uuid.Nil

	var teacher teacherModel.TeacherModel
	if withLink {
		// Guru harus milik sekolah pemanggil.
		err := s.DB.WithContext(ctx).
			Where("teacher_id = ? AND school_id = ?", in.TeacherID, in.SchoolID).
			First(&teacher).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrTeacherNotFound
			}
			return nil, err
		}

		// Guru yang sudah punya akun tidak boleh ditautkan dua kali.
		var linked int64
		if err := s.DB.WithContext(ctx).
			Model(&linkModel.TeacherAccountModel{}).
			Where("teacher_id = ?", in.TeacherID).
			Count(&linked).Error; err != nil {
			return nil, err
		}
		if linked > 0 {
			return nil, ErrTeacherAlreadyLinked
		}
	}

	user, err := s.Identity.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	tempPassword := ""
	if user != nil {
		// Identity lama: tolak kalau sudah dipakai guru lain.
		var used int64
		if err := s.DB.WithContext(ctx).
			Model(&linkModel.TeacherAccountModel{}).
			Where("user_id = ?", user.ID).
			Count(&used).Error; err != nil {
			return nil, err
		}
		if used > 0 {
			return nil, ErrEmailLinked
		}
	} else {
		// Password kiriman admin menang; kalau kosong, generate.
		tempPassword = in.Password
		if tempPassword == "" {
			tempPassword = authHelper.GenerateTempPassword()
		}
		hash, err := authHelper.HashPassword(tempPassword)
		if err != nil {
			return nil, fmt.Errorf("hash password sementara: %w", err)
		}
		name := email
		if withLink {
			name = teacher.Name
		}
		user = &userModel.UserModel{
			UserName: name,
			Email:    email,
			Password: hash,
			IsActive: true,
		}
		if err := s.Identity.Create(ctx, user); err != nil {
			return nil, err
		}
	}

	result := &ProvisionResult{
		UserID:            user.ID,
		Email:             email,
		TemporaryPassword: tempPassword,
	}

	if !withLink {
		auditService.Record(s.DB, in.ActorID, "teacher_account.provision_identity",
			[]byte(fmt.Sprintf(`{"user_id":%q,"email":%q}`, user.ID, email)))
		return result, nil
	}

	link := linkModel.TeacherAccountModel{
		TeacherID: in.TeacherID,
		UserID:    user.ID,
		Email:     email,
	}
	if err := s.DB.WithContext(ctx).Create(&link).Error; err != nil {
		return nil, err
	}
	result.TeacherAccountID = link.TeacherAccountID

	auditService.Record(s.DB, in.ActorID, "teacher_account.provision",
		[]byte(fmt.Sprintf(`{"teacher_id":%q,"user_id":%q,"email":%q}`,
			in.TeacherID, user.ID, email)))
	return result, nil
}

// Revoke melepas tautan akun guru. Identity-nya dibiarkan — bisa jadi
// dipakai lagi nanti, dan tanpa baris link ia tidak punya landing guru.
func (s *ProvisionService) Revoke(ctx context.Context, schoolID, teacherAccountID, actorID uuid.UUID) error {
	var link linkModel.TeacherAccountModel
	err := s.DB.WithContext(ctx).
		Joins("JOIN teachers ON teachers.teacher_id = teacher_accounts.teacher_id").
		Where("teacher_accounts.teacher_account_id = ? AND teachers.school_id = ?", teacherAccountID, schoolID).
		First(&link).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTeacherNotFound
		}
		return err
	}

	if err := s.DB.WithContext(ctx).Delete(&link).Error; err != nil {
		return err
	}

	auditService.Record(s.DB, actorID, "teacher_account.revoke",
		[]byte(fmt.Sprintf(`{"teacher_account_id":%q,"teacher_id":%q}`,
			link.TeacherAccountID, link.TeacherID)))
	return nil
}
