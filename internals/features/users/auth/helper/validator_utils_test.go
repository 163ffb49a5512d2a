package helper

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateTempPassword(t *testing.T) {
	first := GenerateTempPassword()
	second := GenerateTempPassword()

	assert.Len(t, first, 16)
	assert.NotContains(t, first, "-")
	assert.NotEqual(t, first, second)
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("rahasia123")
	require.NoError(t, err)
	assert.NotEqual(t, "rahasia123", hash)

	assert.NoError(t, CheckPasswordHash(hash, "rahasia123"))
	assert.Error(t, CheckPasswordHash(hash, "salah"))
}

func TestHashPassword_TooLongReturnsError(t *testing.T) {
	// bcrypt menolak input > 72 byte; error harus sampai ke pemanggil,
	// bukan diam-diam menghasilkan hash kosong.
	hash, err := HashPassword(strings.Repeat("a", 73))
	assert.Error(t, err)
	assert.Empty(t, hash)
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("guru@sekolah.sch.id"))
	assert.True(t, IsValidEmail("budi.santoso+tes@gmail.com"))
	assert.False(t, IsValidEmail("bukan-email"))
	assert.False(t, IsValidEmail("@sekolah.id"))
	assert.False(t, IsValidEmail("guru@"))
}

func TestValidateRegisterInput(t *testing.T) {
	assert.NoError(t, ValidateRegisterInput("Budi", "budi@sekolah.id", "rahasia"))
	assert.Error(t, ValidateRegisterInput("  ", "budi@sekolah.id", "rahasia"))
	assert.Error(t, ValidateRegisterInput("Budi", "bukan-email", "rahasia"))
	assert.Error(t, ValidateRegisterInput("Budi", "budi@sekolah.id", "12345"))
}

func TestValidateLoginInput(t *testing.T) {
	assert.NoError(t, ValidateLoginInput("budi@sekolah.id", "rahasia"))
	assert.Error(t, ValidateLoginInput("", "rahasia"))
	assert.Error(t, ValidateLoginInput("budi@sekolah.id", ""))
}
