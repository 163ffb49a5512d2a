package service

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	authHelper "supervisi_backend/internals/features/users/auth/helper"
	userModel "supervisi_backend/internals/features/users/user/model"
)

func newTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(gormPostgres.New(gormPostgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	require.NoError(t, err)
	return db, mock
}

// fakeIdentityStore: pengganti tabel users untuk menguji alur provisioning.
type fakeIdentityStore struct {
	byEmail map[string]*userModel.UserModel
	created []*userModel.UserModel
	findErr error
}

func newFakeIdentityStore() *fakeIdentityStore {
	return &fakeIdentityStore{byEmail: map[string]*userModel.UserModel{}}
}

func (f *fakeIdentityStore) FindByEmail(_ context.Context, email string) (*userModel.UserModel, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.byEmail[email], nil
}

func (f *fakeIdentityStore) Create(_ context.Context, user *userModel.UserModel) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	f.byEmail[user.Email] = user
	f.created = append(f.created, user)
	return nil
}

func expectTeacherFound(mock sqlmock.Sqlmock, teacherID, schoolID uuid.UUID) {
	mock.ExpectQuery(`SELECT \* FROM "teachers"`).
		WillReturnRows(sqlmock.NewRows([]string{"teacher_id", "school_id", "name", "nip"}).
			AddRow(teacherID.String(), schoolID.String(), "Budi Santoso", "19800101"))
}

func expectLinkCount(mock sqlmock.Sqlmock, n int) {
	mock.ExpectQuery(`SELECT count\(\*\) FROM "teacher_accounts"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(n))
}

func expectLinkInsert(mock sqlmock.Sqlmock, linkID uuid.UUID) {
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "teacher_accounts"`).
		WillReturnRows(sqlmock.NewRows([]string{"teacher_account_id"}).AddRow(linkID.String()))
	mock.ExpectCommit()
}

func expectAuditInsert(mock sqlmock.Sqlmock) {
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "audit_logs"`).
		WillReturnRows(sqlmock.NewRows([]string{"audit_log_id"}).AddRow(uuid.NewString()))
	mock.ExpectCommit()
}

func TestProvision_NewIdentity(t *testing.T) {
	db, mock := newTestDB(t)
	store := newFakeIdentityStore()
	svc := &ProvisionService{DB: db, Identity: store}

	teacherID := uuid.New()
	schoolID := uuid.New()
	linkID := uuid.New()

	expectTeacherFound(mock, teacherID, schoolID)
	expectLinkCount(mock, 0)
	expectLinkInsert(mock, linkID)
	expectAuditInsert(mock)

	result, err := svc.Provision(context.Background(), ProvisionInput{
		SchoolID:  schoolID,
		TeacherID: teacherID,
		Email:     "Budi.Santoso@Sekolah.ID",
		ActorID:   uuid.New(),
	})
	require.NoError(t, err)

	// Satu identity baru, email dinormalisasi lowercase, nama ikut data guru
	require.Len(t, store.created, 1)
	assert.Equal(t, "budi.santoso@sekolah.id", store.created[0].Email)
	assert.Equal(t, "Budi Santoso", store.created[0].UserName)
	assert.True(t, store.created[0].IsActive)
	assert.NotEmpty(t, store.created[0].Password)
	assert.NotEqual(t, result.TemporaryPassword, store.created[0].Password, "password disimpan dalam bentuk hash")

	assert.Equal(t, store.created[0].ID, result.UserID)
	assert.Equal(t, linkID, result.TeacherAccountID)
	assert.Len(t, result.TemporaryPassword, 16)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProvision_IdentityOnlyWithoutTeacherID(t *testing.T) {
	db, mock := newTestDB(t)
	store := newFakeIdentityStore()
	svc := &ProvisionService{DB: db, Identity: store}

	// Tanpa teacher_id: tidak ada lookup guru, tidak ada insert link —
	// hanya identity + audit.
	expectAuditInsert(mock)

	result, err := svc.Provision(context.Background(), ProvisionInput{
		SchoolID: uuid.New(),
		Email:    "calon.guru@sekolah.id",
		ActorID:  uuid.New(),
	})
	require.NoError(t, err)

	require.Len(t, store.created, 1)
	assert.Equal(t, "calon.guru@sekolah.id", store.created[0].UserName)
	assert.Equal(t, store.created[0].ID, result.UserID)
	assert.Equal(t, uuid.Nil, result.TeacherAccountID)
	assert.Len(t, result.TemporaryPassword, 16)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProvision_CallerSuppliedPasswordWins(t *testing.T) {
	db, mock := newTestDB(t)
	store := newFakeIdentityStore()
	svc := &ProvisionService{DB: db, Identity: store}

	teacherID := uuid.New()
	schoolID := uuid.New()

	expectTeacherFound(mock, teacherID, schoolID)
	expectLinkCount(mock, 0)
	expectLinkInsert(mock, uuid.New())
	expectAuditInsert(mock)

	result, err := svc.Provision(context.Background(), ProvisionInput{
		SchoolID:  schoolID,
		TeacherID: teacherID,
		Email:     "guru@sekolah.id",
		Password:  "pilihan-admin",
		ActorID:   uuid.New(),
	})
	require.NoError(t, err)

	assert.Equal(t, "pilihan-admin", result.TemporaryPassword)
	require.Len(t, store.created, 1)
	assert.NoError(t, authHelper.CheckPasswordHash(store.created[0].Password, "pilihan-admin"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProvision_ReuseExistingIdentity(t *testing.T) {
	db, mock := newTestDB(t)
	store := newFakeIdentityStore()
	existing := &userModel.UserModel{ID: uuid.New(), Email: "guru@sekolah.id"}
	store.byEmail[existing.Email] = existing
	svc := &ProvisionService{DB: db, Identity: store}

	teacherID := uuid.New()
	schoolID := uuid.New()

	expectTeacherFound(mock, teacherID, schoolID)
	expectLinkCount(mock, 0) // guru belum punya akun
	expectLinkCount(mock, 0) // identity belum dipakai guru lain
	expectLinkInsert(mock, uuid.New())
	expectAuditInsert(mock)

	result, err := svc.Provision(context.Background(), ProvisionInput{
		SchoolID:  schoolID,
		TeacherID: teacherID,
		Email:     "guru@sekolah.id",
		ActorID:   uuid.New(),
	})
	require.NoError(t, err)

	assert.Empty(t, store.created, "tidak boleh membuat identity baru")
	assert.Equal(t, existing.ID, result.UserID)
	assert.Empty(t, result.TemporaryPassword, "identity lama memakai password miliknya sendiri")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProvision_TeacherNotInCallerSchool(t *testing.T) {
	db, mock := newTestDB(t)
	store := newFakeIdentityStore()
	svc := &ProvisionService{DB: db, Identity: store}

	mock.ExpectQuery(`SELECT \* FROM "teachers"`).
		WillReturnRows(sqlmock.NewRows([]string{"teacher_id"}))

	_, err := svc.Provision(context.Background(), ProvisionInput{
		SchoolID:  uuid.New(),
		TeacherID: uuid.New(),
		Email:     "guru@sekolah.id",
		ActorID:   uuid.New(),
	})
	assert.ErrorIs(t, err, ErrTeacherNotFound)
	assert.Empty(t, store.created)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProvision_TeacherAlreadyLinked(t *testing.T) {
	db, mock := newTestDB(t)
	store := newFakeIdentityStore()
	svc := &ProvisionService{DB: db, Identity: store}

	teacherID := uuid.New()
	schoolID := uuid.New()

	expectTeacherFound(mock, teacherID, schoolID)
	expectLinkCount(mock, 1)

	_, err := svc.Provision(context.Background(), ProvisionInput{
		SchoolID:  schoolID,
		TeacherID: teacherID,
		Email:     "guru@sekolah.id",
		ActorID:   uuid.New(),
	})
	assert.ErrorIs(t, err, ErrTeacherAlreadyLinked)
	assert.Empty(t, store.created, "konflik tidak boleh menulis apa pun")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProvision_EmailLinkedToOtherTeacher(t *testing.T) {
	db, mock := newTestDB(t)
	store := newFakeIdentityStore()
	existing := &userModel.UserModel{ID: uuid.New(), Email: "guru@sekolah.id"}
	store.byEmail[existing.Email] = existing
	svc := &ProvisionService{DB: db, Identity: store}

	teacherID := uuid.New()
	schoolID := uuid.New()

	expectTeacherFound(mock, teacherID, schoolID)
	expectLinkCount(mock, 0) // guru ini belum punya akun
	expectLinkCount(mock, 1) // tapi identity-nya sudah terpakai

	_, err := svc.Provision(context.Background(), ProvisionInput{
		SchoolID:  schoolID,
		TeacherID: teacherID,
		Email:     "guru@sekolah.id",
		ActorID:   uuid.New(),
	})
	assert.ErrorIs(t, err, ErrEmailLinked)
	assert.Empty(t, store.created)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProvision_LinkInsertFailureKeepsIdentity(t *testing.T) {
	db, mock := newTestDB(t)
	store := newFakeIdentityStore()
	svc := &ProvisionService{DB: db, Identity: store}

	teacherID := uuid.New()
	schoolID := uuid.New()

	expectTeacherFound(mock, teacherID, schoolID)
	expectLinkCount(mock, 0)
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "teacher_accounts"`).
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	_, err := svc.Provision(context.Background(), ProvisionInput{
		SchoolID:  schoolID,
		TeacherID: teacherID,
		Email:     "guru@sekolah.id",
		ActorID:   uuid.New(),
	})
	require.Error(t, err)

	// Identity yang terlanjur dibuat tidak di-rollback; tanpa baris link
	// ia tidak punya akses guru.
	assert.Len(t, store.created, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}
