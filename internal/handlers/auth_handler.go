package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/UpServices02/service-booking/internal/config"
	domain "github.com/UpServices02/service-booking/internal/domain/booking"
	"github.com/UpServices02/service-booking/internal/models"
	"github.com/UpServices02/service-booking/internal/validators"
)

type AuthHandler struct {
	db     *gorm.DB
	config *config.Config
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config) *AuthHandler {
	return &AuthHandler{db: db, config: cfg}
}

// --------- Requests ---------

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone"`
	City     string `json:"city"`

	// Só para prestadores
	Bio         string `json:"bio"`
	CategoryIDs []uint `json:"category_ids"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

// Register cadastra cliente ou prestador conforme o papel da rota
func (h *AuthHandler) Register(c *gin.Context) {
	role, ok := roleFromParam(c)
	if !ok {
		return
	}

	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !validators.IsEmailDomainValid(email) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_email_domain",
			"message": "O domínio do e-mail informado não parece ser válido.",
		})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_hash_password"})
		return
	}

	switch role {
	case domain.RoleClient:
		client := models.Client{
			Name:         req.Name,
			Email:        email,
			PasswordHash: string(hashed),
			Phone:        req.Phone,
			City:         req.City,
		}

		if err := h.db.Create(&client).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "email_already_registered"})
			return
		}

		h.respondWithToken(c, http.StatusCreated, client.ID, role, gin.H{
			"id":    client.ID,
			"name":  client.Name,
			"email": client.Email,
			"phone": client.Phone,
			"city":  client.City,
		})

	case domain.RoleProvider:
		var categories []models.Category
		if len(req.CategoryIDs) > 0 {
			if err := h.db.Find(&categories, req.CategoryIDs).Error; err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_categories"})
				return
			}
		}

		provider := models.Provider{
			Name:         req.Name,
			Email:        email,
			PasswordHash: string(hashed),
			Phone:        req.Phone,
			City:         req.City,
			Bio:          req.Bio,
			Categories:   categories,
		}

		if err := h.db.Create(&provider).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "email_already_registered"})
			return
		}

		h.respondWithToken(c, http.StatusCreated, provider.ID, role, gin.H{
			"id":    provider.ID,
			"name":  provider.Name,
			"email": provider.Email,
			"phone": provider.Phone,
			"city":  provider.City,
			"bio":   provider.Bio,
		})
	}
}

func (h *AuthHandler) Login(c *gin.Context) {
	role, ok := roleFromParam(c)
	if !ok {
		return
	}

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var (
		id     uint
		hash   string
		public gin.H
		err    error
	)

	switch role {
	case domain.RoleClient:
		var client models.Client
		err = h.db.Where("email = ?", email).First(&client).Error
		if err == nil {
			id, hash = client.ID, client.PasswordHash
			public = gin.H{
				"id":    client.ID,
				"name":  client.Name,
				"email": client.Email,
				"phone": client.Phone,
				"city":  client.City,
			}
		}

	case domain.RoleProvider:
		var provider models.Provider
		err = h.db.Where("email = ?", email).First(&provider).Error
		if err == nil {
			id, hash = provider.ID, provider.PasswordHash
			public = gin.H{
				"id":    provider.ID,
				"name":  provider.Name,
				"email": provider.Email,
				"phone": provider.Phone,
				"city":  provider.City,
				"bio":   provider.Bio,
			}
		}
	}

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_credentials"})
		return
	}

	h.respondWithToken(c, http.StatusOK, id, role, public)
}

// --------- JWT ---------

func (h *AuthHandler) respondWithToken(
	c *gin.Context,
	status int,
	id uint,
	role domain.Role,
	user gin.H,
) {
	token, err := h.generateToken(id, role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_generate_token"})
		return
	}

	c.JSON(status, gin.H{
		"user":  user,
		"role":  string(role),
		"token": token,
	})
}

func (h *AuthHandler) generateToken(id uint, role domain.Role) (string, error) {
	claims := jwt.MapClaims{
		"sub":  id,
		"role": string(role),
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
		"iat":  time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}

func roleFromParam(c *gin.Context) (domain.Role, bool) {
	role, err := domain.ParseRole(c.Param("role"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_role"})
		return "", false
	}
	return role, true
}
