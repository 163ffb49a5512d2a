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

func countRows(n int) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"count"}).AddRow(n)
}

func TestResolveLanding_TeacherLinkWins(t *testing.T) {
	db, mock := newTestDB(t)

	// Link guru ada — lookup sekolah tidak dijalankan sama sekali.
	mock.ExpectQuery(`SELECT count\(\*\) FROM "teacher_accounts"`).
		WillReturnRows(countRows(1))

	got := ResolveLanding(context.Background(), db, uuid.New())
	assert.Equal(t, LandingTeacherDashboard, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResolveLanding_SchoolOwner(t *testing.T) {
	db, mock := newTestDB(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "teacher_accounts"`).
		WillReturnRows(countRows(0))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "schools"`).
		WillReturnRows(countRows(1))

	got := ResolveLanding(context.Background(), db, uuid.New())
	assert.Equal(t, LandingAdminDashboard, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResolveLanding_NewUser(t *testing.T) {
	db, mock := newTestDB(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "teacher_accounts"`).
		WillReturnRows(countRows(0))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "schools"`).
		WillReturnRows(countRows(0))

	got := ResolveLanding(context.Background(), db, uuid.New())
	assert.Equal(t, LandingSetupSchool, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResolveLanding_LookupFailureFallsBack(t *testing.T) {
	db, mock := newTestDB(t)

	// Lookup gagal → fallback, bukan error ke pemanggil.
	mock.ExpectQuery(`SELECT count\(\*\) FROM "teacher_accounts"`).
		WillReturnError(assert.AnError)

	got := ResolveLanding(context.Background(), db, uuid.New())
	assert.Equal(t, LandingAdminDashboard, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResolveLanding_Idempotent(t *testing.T) {
	db, mock := newTestDB(t)
	userID := uuid.New()

	for i := 0; i < 2; i++ {
		mock.ExpectQuery(`SELECT count\(\*\) FROM "teacher_accounts"`).
			WillReturnRows(countRows(1))
	}

	first := ResolveLanding(context.Background(), db, userID)
	second := ResolveLanding(context.Background(), db, userID)
	assert.Equal(t, first, second)
	assert.NoError(t, mock.ExpectationsWereMet())
}
