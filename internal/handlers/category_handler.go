package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/UpServices02/service-booking/internal/cache"
	"github.com/UpServices02/service-booking/internal/httperr"
	"github.com/UpServices02/service-booking/internal/httpresp"
	"github.com/UpServices02/service-booking/internal/models"
)

type CategoryHandler struct {
	db      *gorm.DB
	catalog *cache.CatalogCache
}

func NewCategoryHandler(db *gorm.DB, catalog *cache.CatalogCache) *CategoryHandler {
	return &CategoryHandler{db: db, catalog: catalog}
}

// List serve o catálogo pelo cache (TTL + invalidate explícito)
func (h *CategoryHandler) List(c *gin.Context) {
	cats, err := h.catalog.List(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_categories", "Erro ao listar categorias.")
		return
	}

	httpresp.List(c, cats)
}

type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

func (h *CategoryHandler) Create(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	name := strings.TrimSpace(req.Name)
	cat := models.Category{
		Name: name,
		Slug: strings.ToLower(strings.ReplaceAll(name, " ", "-")),
	}

	if err := h.db.Create(&cat).Error; err != nil {
		httperr.BadRequest(c, "category_already_exists", "Categoria já cadastrada.")
		return
	}

	h.catalog.Invalidate(c.Request.Context())

	httpresp.Created(c, cat)
}
