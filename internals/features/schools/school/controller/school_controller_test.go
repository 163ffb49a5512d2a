package controller

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
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

func newSchoolApp(db *gorm.DB, userID uuid.UUID) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_id", userID.String())
		return c.Next()
	})
	ctrl := NewSchoolController(db)
	app.Put("/schools/:id", ctrl.UpdateSchool)
	return app
}

const updateBody = `{"name":"SDN 1 Cempaka","npsn":"20100001","principal_name":"Siti Aminah","principal_nip":"19750101"}`

func TestUpdateSchool_ParamUUIDNonCanonical(t *testing.T) {
	db, mock := newTestDB(t)
	userID := uuid.New()
	schoolID := uuid.New()
	app := newSchoolApp(db, userID)

	mock.ExpectQuery(`SELECT \* FROM "schools"`).
		WillReturnRows(sqlmock.NewRows([]string{"school_id", "owner_user_id"}).
			AddRow(schoolID.String(), userID.String()))
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "schools"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	// UUID sendiri tapi uppercase — harus tetap lolos, bukan 403.
	param := strings.ToUpper(schoolID.String())
	req := httptest.NewRequest("PUT", "/schools/"+param, strings.NewReader(updateBody))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateSchool_OtherSchoolID(t *testing.T) {
	db, mock := newTestDB(t)
	userID := uuid.New()
	app := newSchoolApp(db, userID)

	mock.ExpectQuery(`SELECT \* FROM "schools"`).
		WillReturnRows(sqlmock.NewRows([]string{"school_id", "owner_user_id"}).
			AddRow(uuid.NewString(), userID.String()))

	req := httptest.NewRequest("PUT", "/schools/"+uuid.NewString(), strings.NewReader(updateBody))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}
