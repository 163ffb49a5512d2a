package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"supervisi_backend/internals/configs"
	auditModel "supervisi_backend/internals/features/audit/model"
	schoolModel "supervisi_backend/internals/features/schools/school/model"
	supervisionModel "supervisi_backend/internals/features/schools/supervisions/model"
	teacherAccountModel "supervisi_backend/internals/features/schools/teacher_accounts/model"
	teacherModel "supervisi_backend/internals/features/schools/teachers/model"
	portalModel "supervisi_backend/internals/features/teachers/portal/model"
	userModel "supervisi_backend/internals/features/users/user/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("🔌 Koneksi ke PostgreSQL...")

	sslmode := getenv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=supervisi&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // 👍 cocok untuk PgBouncer (transaction pooling)
	}), &gorm.Config{
		Logger: configs.NewGormLogger(),
	})
	if err != nil {
		log.Fatalf("❌ Gagal konek DB: %v", err)
	}
	DB = db
	log.Println("✅ DB connected.")

	if err := DB.AutoMigrate(
		&userModel.UserModel{},
		&schoolModel.SchoolModel{},
		&teacherModel.TeacherModel{},
		&teacherAccountModel.TeacherAccountModel{},
		&supervisionModel.SupervisionModel{},
		&portalModel.TeachingAdministrationModel{},
		&auditModel.AuditLogModel{},
	); err != nil {
		log.Fatalf("❌ Auto migrate gagal: %v", err)
	}
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

func Ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
