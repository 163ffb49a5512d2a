package helper

import (
	"errors"
	"log"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// Pesan generik untuk error yang tidak dikenali.
const GenericErrorMessage = "Terjadi kesalahan. Silakan coba lagi"

// UserFriendlyDBError menerjemahkan error database/identity-store ke pesan
// Bahasa Indonesia yang aman untuk pengguna. Detail lengkap hanya dicatat di
// log server — raw error tidak pernah dikirim ke client.
func UserFriendlyDBError(err error) string {
	if err == nil {
		return ""
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return "Data sudah ada dalam sistem"
		case "23503":
			return "Data terkait tidak ditemukan"
		case "23514":
			return "Data tidak valid"
		case "42501":
			return "Anda tidak memiliki akses"
		}
	}

	// Fallback substring match (driver lama / error dari layer lain)
	low := strings.ToLower(err.Error())
	switch {
	case strings.Contains(low, "duplicate key"), strings.Contains(low, "unique constraint"):
		return "Data sudah ada dalam sistem"
	case strings.Contains(low, "foreign key"):
		return "Data terkait tidak ditemukan"
	}

	log.Printf("[ERROR] internal db error: %v", err)
	return GenericErrorMessage
}

// IsDuplicateKeyError: cek pelanggaran unique constraint.
func IsDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	low := strings.ToLower(err.Error())
	return strings.Contains(low, "duplicate key") || strings.Contains(low, "unique constraint")
}
