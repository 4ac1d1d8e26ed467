// internal/interfaces/http/handlers/alien.go
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/beammart/backend/internal/config"
	"github.com/beammart/backend/internal/domain/alien"
	"github.com/beammart/backend/internal/domain/upload"
	"github.com/beammart/backend/internal/infrastructure/cache"
	"github.com/beammart/backend/internal/pkg/apperr"
	"github.com/beammart/backend/internal/pkg/response"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"gorm.io/gorm"
)

// AlienHandler handles catalog endpoints
type AlienHandler struct {
	alienService  *alien.Service
	uploadService *upload.Service
	cacheStore    *cache.Store
	config        *config.Config
}

// NewAlienHandler creates a new catalog handler
func NewAlienHandler(db *gorm.DB, cacheStore *cache.Store, cfg *config.Config) *AlienHandler {
	return &AlienHandler{
		alienService:  alien.NewService(db, cfg),
		uploadService: upload.NewService(cfg),
		cacheStore:    cacheStore,
		config:        cfg,
	}
}

// List handles GET /aliens
func (h *AlienHandler) List(c *gin.Context) {
	var req alien.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, apperr.Validation("Invalid query parameters").WithDetails(err.Error()))
		return
	}

	result, err := h.alienService.List(&req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, result, "Aliens retrieved successfully")
}

// Get handles GET /aliens/:id
func (h *AlienHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	result, err := h.alienService.GetByID(id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, result, "Alien retrieved successfully")
}

// GetRelated handles GET /aliens/:id/related
func (h *AlienHandler) GetRelated(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "4"))

	result, err := h.alienService.GetRelated(id, limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"aliens": result}, "Related aliens retrieved successfully")
}

// GetFeatured handles GET /aliens/featured
func (h *AlienHandler) GetFeatured(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "8"))

	result, err := h.alienService.GetFeatured(limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"aliens": result}, "Featured aliens retrieved successfully")
}

// GetFilterOptions handles GET /aliens/filter-options
func (h *AlienHandler) GetFilterOptions(c *gin.Context) {
	result, err := h.alienService.GetFilterOptions()
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, result, "Filter options retrieved successfully")
}

// Create handles POST /aliens (admin). Accepts a JSON body or a multipart
// form with an optional image file part.
func (h *AlienHandler) Create(c *gin.Context) {
	var req alien.CreateRequest
	if isMultipartForm(c) {
		if err := c.ShouldBindWith(&req, binding.FormMultipart); err != nil {
			response.Error(c, apperr.Validation("Invalid request data").WithDetails(err.Error()))
			return
		}
		url, err := h.saveImagePart(c)
		if err != nil {
			response.Error(c, err)
			return
		}
		if url != "" {
			req.Image = url
		}
	} else if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperr.Validation("Invalid request data").WithDetails(err.Error()))
		return
	}

	result, err := h.alienService.Create(&req)
	if err != nil {
		response.Error(c, err)
		return
	}

	h.invalidateCatalogCache(c, result.ID)
	response.Created(c, result, "Alien created successfully")
}

// Update handles PUT /aliens/:id (admin). Accepts a JSON body or a
// multipart form with an optional image file part.
func (h *AlienHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req alien.UpdateRequest
	if isMultipartForm(c) {
		if err := c.ShouldBindWith(&req, binding.FormMultipart); err != nil {
			response.Error(c, apperr.Validation("Invalid request data").WithDetails(err.Error()))
			return
		}
		url, err := h.saveImagePart(c)
		if err != nil {
			response.Error(c, err)
			return
		}
		if url != "" {
			req.Image = &url
		}
	} else if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperr.Validation("Invalid request data").WithDetails(err.Error()))
		return
	}

	result, err := h.alienService.Update(id, &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	h.invalidateCatalogCache(c, id)
	response.OK(c, result, "Alien updated successfully")
}

// Delete handles DELETE /aliens/:id (admin)
func (h *AlienHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.alienService.Delete(id); err != nil {
		response.Error(c, err)
		return
	}

	h.invalidateCatalogCache(c, id)
	response.OK(c, nil, "Alien deleted successfully")
}

// UploadImage handles POST /aliens/upload (admin, multipart)
func (h *AlienHandler) UploadImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		response.Error(c, apperr.Validation("Image file is required"))
		return
	}

	url, err := h.uploadService.SaveImage(file)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, gin.H{"url": url}, "Image uploaded successfully")
}

// isMultipartForm reports whether a catalog write carries a form body
// instead of JSON
func isMultipartForm(c *gin.Context) bool {
	return c.ContentType() == "multipart/form-data"
}

// saveImagePart stores the optional image file of a multipart catalog
// write. An absent part is not an error; the image field may carry a URL
// instead.
func (h *AlienHandler) saveImagePart(c *gin.Context) (string, error) {
	file, err := c.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return "", nil
		}
		return "", apperr.Validation("Invalid image file").WithDetails(err.Error())
	}
	return h.uploadService.SaveImage(file)
}

// invalidateCatalogCache drops cached list and detail responses after a
// catalog write
func (h *AlienHandler) invalidateCatalogCache(c *gin.Context, alienID uint) {
	if h.cacheStore == nil {
		return
	}
	ctx := c.Request.Context()
	h.cacheStore.FlushPattern(ctx, "/aliens*")
	h.cacheStore.FlushPattern(ctx, "/aliens/"+strconv.FormatUint(uint64(alienID), 10)+"*")
}

// parseIDParam parses a numeric path parameter, writing a validation error
// on failure
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		response.Error(c, apperr.Validation("Invalid "+name+" parameter"))
		return 0, false
	}
	return uint(id), true
}
