// file: internals/features/users/controller/auth_controller.go
package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"kirimku_backend/internals/constants"
	clientModel "kirimku_backend/internals/features/clients/model"
	"kirimku_backend/internals/features/users/dto"
	"kirimku_backend/internals/features/users/model"
	"kirimku_backend/internals/features/users/service"
	helper "kirimku_backend/internals/helpers"
)

type AuthController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db, Validator: validator.New()}
}

/* ======================= REGISTER ======================= */
// POST /auth/register — public; always creates a client account.
func (h *AuthController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := h.Validator.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	email := strings.ToLower(strings.TrimSpace(req.UserEmail))

	var count int64
	if err := h.DB.WithContext(c.UserContext()).Model(&model.UserModel{}).
		Where("user_email = ?", email).Count(&count).Error; err != nil {
		log.Printf("[ERROR] check email: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to register")
	}
	if count > 0 {
		return fiber.NewError(fiber.StatusConflict, "Email is already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.UserPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("[ERROR] hash password: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to register")
	}

	user := model.UserModel{
		UserName:     strings.TrimSpace(req.UserName),
		UserEmail:    email,
		UserPassword: string(hash),
		UserRole:     constants.RoleClient,
		UserIsActive: true,
	}
	if err := h.DB.WithContext(c.UserContext()).Create(&user).Error; err != nil {
		log.Printf("[ERROR] create user: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to register")
	}

	return helper.JsonCreated(c, "Account registered", dto.FromUserModel(user))
}

/* ======================= LOGIN ======================= */
// POST /auth/login
func (h *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := h.Validator.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	email := strings.ToLower(strings.TrimSpace(req.UserEmail))

	var user model.UserModel
	if err := h.DB.WithContext(c.UserContext()).First(&user, "user_email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid email or password")
		}
		log.Printf("[ERROR] find user: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to log in")
	}
	if !user.UserIsActive {
		return fiber.NewError(fiber.StatusForbidden, "Account is disabled")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.UserPassword), []byte(req.UserPassword)); err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid email or password")
	}

	return h.issueTokens(c, user, "Logged in")
}

/* ======================= REFRESH ======================= */
// POST /auth/refresh — refresh token from cookie or body.
func (h *AuthController) Refresh(c *fiber.Ctx) error {
	raw := helper.GetRefreshTokenFromCookie(c)
	if raw == "" {
		var req dto.RefreshRequest
		if err := c.BodyParser(&req); err == nil {
			raw = strings.TrimSpace(req.RefreshToken)
		}
	}
	if raw == "" {
		return fiber.NewError(fiber.StatusUnauthorized, "Refresh token is required")
	}

	userID, err := service.ParseRefreshToken(raw)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid refresh token")
	}

	var user model.UserModel
	if err := h.DB.WithContext(c.UserContext()).First(&user, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid refresh token")
		}
		log.Printf("[ERROR] find user for refresh: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to refresh session")
	}
	if !user.UserIsActive {
		return fiber.NewError(fiber.StatusForbidden, "Account is disabled")
	}

	return h.issueTokens(c, user, "Session refreshed")
}

/* ======================= LOGOUT ======================= */
// POST /auth/logout — clears the session cookies.
func (h *AuthController) Logout(c *fiber.Ctx) error {
	expire := time.Now().Add(-time.Hour)
	c.Cookie(&fiber.Cookie{Name: "access_token", Value: "", Expires: expire, HTTPOnly: true})
	c.Cookie(&fiber.Cookie{Name: "refresh_token", Value: "", Expires: expire, HTTPOnly: true})
	return helper.JsonOK(c, "Logged out", nil)
}

/* ======================= ME ======================= */
// GET /auth/me
func (h *AuthController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var user model.UserModel
	if err := h.DB.WithContext(c.UserContext()).First(&user, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Account not found")
		}
		log.Printf("[ERROR] get account: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch account")
	}
	return helper.JsonOK(c, "Account fetched", dto.FromUserModel(user))
}

/* ======================= internals ======================= */

func (h *AuthController) issueTokens(c *fiber.Ctx, user model.UserModel, message string) error {
	var clientID *uuid.UUID
	var profile clientModel.ClientModel
	if err := h.DB.WithContext(c.UserContext()).
		First(&profile, "client_user_id = ?", user.UserID).Error; err == nil {
		clientID = &profile.ClientID
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("[ERROR] lookup client profile: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to log in")
	}

	access, err := service.IssueAccessToken(user, clientID)
	if err != nil {
		log.Printf("[ERROR] sign access token: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to log in")
	}
	refresh, err := service.IssueRefreshToken(user)
	if err != nil {
		log.Printf("[ERROR] sign refresh token: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to log in")
	}

	now := time.Now()
	c.Cookie(&fiber.Cookie{
		Name: "access_token", Value: access,
		Expires: now.Add(service.AccessTokenTTL), HTTPOnly: true, SameSite: "Lax",
	})
	c.Cookie(&fiber.Cookie{
		Name: "refresh_token", Value: refresh,
		Expires: now.Add(service.RefreshTokenTTL), HTTPOnly: true, SameSite: "Lax",
	})

	return helper.JsonOK(c, message, dto.TokenPairResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int64(service.AccessTokenTTL.Seconds()),
		User:         dto.FromUserModel(user),
	})
}
