package service

import (
	"strings"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"supervisi_backend/internals/configs"
	authHelper "supervisi_backend/internals/features/users/auth/helper"
	authRepo "supervisi_backend/internals/features/users/auth/repository"
	userModel "supervisi_backend/internals/features/users/user/model"
	helpers "supervisi_backend/internals/helpers"
)

const accessTTLDefault = 24 * time.Hour

func nowUTC() time.Time { return time.Now().UTC() }

/* ==========================
   REGISTER
========================== */

func Register(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		UserName string `json:"user_name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))

	if err := authHelper.ValidateRegisterInput(input.UserName, input.Email, input.Password); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	passwordHash, err := authHelper.HashPassword(input.Password)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Password hashing failed")
	}

	user := userModel.UserModel{
		UserName: input.UserName,
		Email:    input.Email,
		Password: passwordHash,
		IsActive: true,
	}
	if err := authRepo.CreateUser(db, &user); err != nil {
		if helpers.IsDuplicateKeyError(err) {
			return helpers.JsonError(c, fiber.StatusBadRequest, "Email sudah terdaftar")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, helpers.UserFriendlyDBError(err))
	}

	return helpers.JsonCreated(c, "Akun berhasil dibuat. Silakan login.", fiber.Map{"id": user.ID})
}

/* ==========================
   LOGIN (email + password)
========================== */

func Login(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))

	if err := authHelper.ValidateLoginInput(input.Email, input.Password); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	user, err := authRepo.FindUserByEmail(db, input.Email)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
	}
	if !user.IsActive {
		return helpers.JsonError(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan. Hubungi admin.")
	}
	if err := authHelper.CheckPasswordHash(user.Password, input.Password); err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
	}

	return issueAccessToken(db, c, *user)
}

/* ==========================
   LOGIN GOOGLE
========================== */

func LoginGoogle(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		IDToken string `json:"id_token"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(input.IDToken, []string{configs.GoogleClientID}); err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Invalid Google ID Token")
	}

	claimSet, err := googleAuthIDTokenVerifier.Decode(input.IDToken)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to decode ID Token")
	}
	email, name, googleID := claimSet.Email, claimSet.Name, claimSet.Sub

	user, err := authRepo.FindUserByGoogleID(db, googleID)
	if err != nil {
		// User belum ada -> buat baru
		passwordHash, err := authHelper.HashPassword(authHelper.GenerateTempPassword())
		if err != nil {
			return helpers.JsonError(c, fiber.StatusInternalServerError, "Password hashing failed")
		}
		newUser := userModel.UserModel{
			UserName: name,
			Email:    strings.ToLower(email),
			Password: passwordHash,
			GoogleID: &googleID,
			IsActive: true,
		}
		if err := authRepo.CreateUser(db, &newUser); err != nil {
			if helpers.IsDuplicateKeyError(err) {
				return helpers.JsonError(c, fiber.StatusBadRequest, "Email sudah terdaftar")
			}
			return helpers.JsonError(c, fiber.StatusInternalServerError, helpers.UserFriendlyDBError(err))
		}
		user = &newUser
	}

	if !user.IsActive {
		return helpers.JsonError(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan. Hubungi admin.")
	}

	return issueAccessToken(db, c, *user)
}

/* ==========================
   LOGOUT
========================== */

func Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    "",
		HTTPOnly: true,
		Secure:   true,
		SameSite: "None",
		Path:     "/",
		Expires:  nowUTC().Add(-time.Hour),
		MaxAge:   -1,
	})
	return helpers.JsonOK(c, "Logout successful", nil)
}

/* ==========================
   ISSUE TOKEN + Response
========================== */

func issueAccessToken(db *gorm.DB, c *fiber.Ctx, user userModel.UserModel) error {
	secret := strings.TrimSpace(configs.JWTSecret)
	if secret == "" {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "JWT_SECRET belum diset")
	}

	now := nowUTC()
	claims := jwt.MapClaims{
		"id":        user.ID.String(),
		"user_name": user.UserName,
		"iat":       now.Unix(),
		"exp":       now.Add(accessTTLDefault).Unix(),
	}

	accessToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat access token")
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    accessToken,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "None",
		Path:     "/",
		Expires:  now.Add(accessTTLDefault),
	})

	// Landing ikut di-response supaya frontend langsung tahu tujuan redirect.
	landing := ResolveLanding(c.UserContext(), db, user.ID)

	return helpers.JsonOK(c, "Login berhasil", fiber.Map{
		"user": fiber.Map{
			"id":        user.ID,
			"user_name": user.UserName,
			"email":     user.Email,
		},
		"access_token": accessToken,
		"landing":      landing,
	})
}
