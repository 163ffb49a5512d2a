package helper

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

func IsValidEmail(email string) bool {
	return emailRe.MatchString(email)
}

func ValidateRegisterInput(name, email, password string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("nama wajib diisi")
	}
	if !IsValidEmail(email) || len(email) > 255 {
		return fmt.Errorf("format email tidak valid")
	}
	if len(password) < 6 {
		return fmt.Errorf("password minimal 6 karakter")
	}
	return nil
}

func ValidateLoginInput(email, password string) error {
	if strings.TrimSpace(email) == "" || password == "" {
		return fmt.Errorf("email dan password wajib diisi")
	}
	return nil
}

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func CheckPasswordHash(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

// GenerateTempPassword: 16 karakter hex dari UUID tanpa strip —
// cukup untuk kredensial sekali pakai yang langsung diganti guru.
func GenerateTempPassword() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")[:16]
}
