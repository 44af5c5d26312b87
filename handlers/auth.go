// handlers/auth.go - Registration, login, JWT issuance
package handlers

import (
	"strings"
	"time"
	"unicode"

	"github.com/Maexgon/RoasterManager/config"
	"github.com/Maexgon/RoasterManager/models"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthHandler struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config) *AuthHandler {
	return &AuthHandler{db: db, cfg: cfg}
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Success bool            `json:"success"`
	Token   string          `json:"token,omitempty"`
	Profile *models.Profile `json:"profile,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// Register creates a staff or parent account.
// POST /api/auth/register
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(AuthResponse{Success: false, Error: "Invalid request body"})
	}

	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if req.Email == "" || req.FullName == "" {
		return c.Status(400).JSON(AuthResponse{Success: false, Error: "Email and full name are required"})
	}
	if msg := validatePassword(req.Password); msg != "" {
		return c.Status(400).JSON(AuthResponse{Success: false, Error: msg})
	}

	role := req.Role
	if role != models.RoleParent {
		role = models.RoleStaff
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(500).JSON(AuthResponse{Success: false, Error: "Failed to create account"})
	}

	profile := models.Profile{
		Email:    req.Email,
		Password: string(hashed),
		FullName: req.FullName,
		Role:     role,
		IsParent: role == models.RoleParent,
		Language: h.cfg.DefaultLanguage,
		Theme:    h.cfg.DefaultTheme,
	}
	if err := h.db.Create(&profile).Error; err != nil {
		return c.Status(409).JSON(AuthResponse{Success: false, Error: "An account with this email already exists"})
	}

	token, err := h.signToken(&profile)
	if err != nil {
		return c.Status(500).JSON(AuthResponse{Success: false, Error: "Failed to issue token"})
	}

	return c.Status(201).JSON(AuthResponse{Success: true, Token: token, Profile: &profile})
}

// Login verifies credentials and issues a JWT.
// POST /api/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(AuthResponse{Success: false, Error: "Invalid request body"})
	}

	var profile models.Profile
	err := h.db.Where("email = ?", strings.TrimSpace(strings.ToLower(req.Email))).First(&profile).Error
	if err != nil {
		return c.Status(401).JSON(AuthResponse{Success: false, Error: "Invalid email or password"})
	}

	if bcrypt.CompareHashAndPassword([]byte(profile.Password), []byte(req.Password)) != nil {
		return c.Status(401).JSON(AuthResponse{Success: false, Error: "Invalid email or password"})
	}

	h.db.Model(&profile).Update("last_login", time.Now().UTC())

	token, err := h.signToken(&profile)
	if err != nil {
		return c.Status(500).JSON(AuthResponse{Success: false, Error: "Failed to issue token"})
	}

	return c.JSON(AuthResponse{Success: true, Token: token, Profile: &profile})
}

func (h *AuthHandler) signToken(profile *models.Profile) (string, error) {
	claims := jwt.MapClaims{
		"user_id": profile.ID,
		"role":    profile.Role,
		"exp":     time.Now().Add(7 * 24 * time.Hour).Unix(),
		"iat":     time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.cfg.JWTSecret))
}

// validatePassword enforces the signup rules: at least 8 characters, one
// uppercase letter and one symbol. Returns "" when the password passes.
func validatePassword(password string) string {
	if len(password) < 8 {
		return "Password must be at least 8 characters"
	}
	hasUpper := false
	hasSymbol := false
	for _, r := range password {
		if unicode.IsUpper(r) {
			hasUpper = true
		}
		if unicode.IsPunct(r) || unicode.IsSymbol(r) {
			hasSymbol = true
		}
	}
	if !hasUpper {
		return "Password must contain an uppercase letter"
	}
	if !hasSymbol {
		return "Password must contain a symbol"
	}
	return ""
}
