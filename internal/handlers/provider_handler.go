package handlers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/UpServices02/service-booking/internal/cache"
	"github.com/UpServices02/service-booking/internal/httperr"
	"github.com/UpServices02/service-booking/internal/httpresp"
	"github.com/UpServices02/service-booking/internal/models"
)

type ProviderHandler struct {
	db      *gorm.DB
	ratings *cache.RatingCache
}

func NewProviderHandler(db *gorm.DB, ratings *cache.RatingCache) *ProviderHandler {
	return &ProviderHandler{db: db, ratings: ratings}
}

// ======================================================
// PERFIL PÚBLICO (com média corrente)
// ======================================================

func (h *ProviderHandler) Get(c *gin.Context) {
	id, ok := uintParam(c, "providerId")
	if !ok {
		return
	}

	var provider models.Provider
	if err := h.db.Preload("Categories").First(&provider, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "provider_not_found", "Prestador não encontrado.")
			return
		}
		httperr.Internal(c, "internal_error", "Erro interno.")
		return
	}

	rating, err := h.ratings.Get(c.Request.Context(), provider.ID)
	if err != nil {
		httperr.Internal(c, "internal_error", "Erro interno.")
		return
	}

	httpresp.OK(c, gin.H{
		"id":         provider.ID,
		"name":       provider.Name,
		"phone":      provider.Phone,
		"city":       provider.City,
		"bio":        provider.Bio,
		"categories": provider.Categories,
		"rating": gin.H{
			"average": rating.Average,
			"count":   rating.Count,
		},
	})
}

// ======================================================
// BUSCA (por categoria e/ou cidade)
// ======================================================

func (h *ProviderHandler) List(c *gin.Context) {
	q := h.db.Model(&models.Provider{}).Preload("Categories")

	if city := strings.ToLower(strings.TrimSpace(c.Query("city"))); city != "" {
		q = q.Where("LOWER(city) = ?", city)
	}

	if slug := strings.TrimSpace(c.Query("category")); slug != "" {
		q = q.Joins("JOIN provider_categories pc ON pc.provider_id = providers.id").
			Joins("JOIN categories ON categories.id = pc.category_id").
			Where("categories.slug = ?", slug)
	}

	var providers []models.Provider
	if err := q.Order("name ASC").Find(&providers).Error; err != nil {
		httperr.Internal(c, "failed_to_list_providers", "Erro ao listar prestadores.")
		return
	}

	httpresp.List(c, providers)
}
