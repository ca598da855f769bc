package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/UpServices02/service-booking/internal/domain/booking"
	"github.com/UpServices02/service-booking/internal/middleware"
	"github.com/UpServices02/service-booking/internal/models"
)

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextActorID).(uint)
	role := domain.Role(c.GetString(middleware.ContextActorRole))

	switch role {
	case domain.RoleClient:
		var client models.Client
		if err := h.db.First(&client, actorID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "client_not_found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"role": role, "user": client})

	case domain.RoleProvider:
		var provider models.Provider
		if err := h.db.Preload("Categories").First(&provider, actorID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "provider_not_found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"role": role, "user": provider})

	default:
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_role"})
	}
}
