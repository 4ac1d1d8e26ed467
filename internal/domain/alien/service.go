// internal/domain/alien/service.go
package alien

import (
	"errors"
	"strings"

	"github.com/beammart/backend/internal/config"
	"github.com/beammart/backend/internal/pkg/apperr"
	"gorm.io/gorm"
)

// Service handles catalog business logic
type Service struct {
	db     *gorm.DB
	config *config.Config
}

// NewService creates a new catalog service
func NewService(db *gorm.DB, cfg *config.Config) *Service {
	return &Service{
		db:     db,
		config: cfg,
	}
}

// ListRequest represents catalog list query parameters
type ListRequest struct {
	Page      int      `form:"page,default=1"`
	Limit     int      `form:"limit,default=12"`
	Search    string   `form:"search"`
	Faction   string   `form:"faction"`
	Planet    string   `form:"planet"`
	Rarity    Rarity   `form:"rarity"`
	MinPrice  *float64 `form:"minPrice"`
	MaxPrice  *float64 `form:"maxPrice"`
	Featured  *bool    `form:"featured"`
	InStock   *bool    `form:"inStock"`
	SortBy    string   `form:"sortBy,default=created_at"`
	SortOrder string   `form:"sortOrder,default=desc"`
}

// CreateRequest represents catalog creation data. Binds from a JSON body or
// a multipart form; the form variant may carry the image as a file part.
type CreateRequest struct {
	Name      string   `json:"name" form:"name" binding:"required"`
	Faction   string   `json:"faction" form:"faction" binding:"required"`
	Planet    string   `json:"planet" form:"planet" binding:"required"`
	Rarity    Rarity   `json:"rarity" form:"rarity" binding:"required"`
	Price     float64  `json:"price" form:"price"`
	Image     string   `json:"image" form:"image"`
	Backstory string   `json:"backstory" form:"backstory"`
	Abilities []string `json:"abilities" form:"abilities"`
	Featured  bool     `json:"featured" form:"featured"`
	InStock   *bool    `json:"inStock" form:"inStock"`
}

// UpdateRequest represents catalog update data; nil fields are left untouched
type UpdateRequest struct {
	Name      *string   `json:"name" form:"name"`
	Faction   *string   `json:"faction" form:"faction"`
	Planet    *string   `json:"planet" form:"planet"`
	Rarity    *Rarity   `json:"rarity" form:"rarity"`
	Price     *float64  `json:"price" form:"price"`
	Image     *string   `json:"image" form:"image"`
	Backstory *string   `json:"backstory" form:"backstory"`
	Abilities *[]string `json:"abilities" form:"abilities"`
	Featured  *bool     `json:"featured" form:"featured"`
	InStock   *bool     `json:"inStock" form:"inStock"`
}

// ListResponse represents a catalog page with its pagination envelope
type ListResponse struct {
	Aliens     []Alien    `json:"aliens"`
	Pagination Pagination `json:"pagination"`
}

// FilterOptions represents the distinct values the storefront can filter on
type FilterOptions struct {
	Factions []string `json:"factions"`
	Planets  []string `json:"planets"`
	Rarities []Rarity `json:"rarities"`
	MinPrice float64  `json:"minPrice"`
	MaxPrice float64  `json:"maxPrice"`
}

// List retrieves aliens with filtering, sorting and pagination
func (s *Service) List(req *ListRequest) (*ListResponse, error) {
	var aliens []Alien
	var total int64

	if req.Page < 1 {
		req.Page = 1
	}
	if req.Limit < 1 || req.Limit > 100 {
		req.Limit = 12
	}

	query := s.db.Model(&Alien{})

	if req.Search != "" {
		search := "%" + strings.ToLower(req.Search) + "%"
		query = query.Where(
			"LOWER(name) LIKE ? OR LOWER(faction) LIKE ? OR LOWER(planet) LIKE ?",
			search, search, search,
		)
	}

	if req.Faction != "" {
		query = query.Where("LOWER(faction) = ?", strings.ToLower(req.Faction))
	}

	if req.Planet != "" {
		query = query.Where("LOWER(planet) = ?", strings.ToLower(req.Planet))
	}

	if req.Rarity != "" {
		query = query.Where("rarity = ?", req.Rarity)
	}

	if req.MinPrice != nil {
		query = query.Where("price >= ?", *req.MinPrice)
	}

	if req.MaxPrice != nil {
		query = query.Where("price <= ?", *req.MaxPrice)
	}

	if req.Featured != nil {
		query = query.Where("featured = ?", *req.Featured)
	}

	if req.InStock != nil {
		query = query.Where("in_stock = ?", *req.InStock)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, apperr.Internal(err)
	}

	query = query.Order(buildOrderClause(req.SortBy, req.SortOrder))

	offset := (req.Page - 1) * req.Limit
	if err := query.Offset(offset).Limit(req.Limit).Find(&aliens).Error; err != nil {
		return nil, apperr.Internal(err)
	}

	return &ListResponse{
		Aliens:     aliens,
		Pagination: NewPagination(req.Page, req.Limit, total),
	}, nil
}

// GetByID retrieves a single alien
func (s *Service) GetByID(id uint) (*Alien, error) {
	var a Alien
	if err := s.db.First(&a, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound(apperr.CodeAlienNotFound, "Alien not found")
		}
		return nil, apperr.Internal(err)
	}
	return &a, nil
}

// GetRelated retrieves aliens sharing a faction or planet with the given one
func (s *Service) GetRelated(id uint, limit int) ([]Alien, error) {
	a, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if limit < 1 || limit > 20 {
		limit = 4
	}

	var related []Alien
	err = s.db.
		Where("id <> ?", a.ID).
		Where("faction = ? OR planet = ?", a.Faction, a.Planet).
		Order("created_at DESC").
		Limit(limit).
		Find(&related).Error
	if err != nil {
		return nil, apperr.Internal(err)
	}

	return related, nil
}

// GetFeatured retrieves the featured aliens for the storefront landing page
func (s *Service) GetFeatured(limit int) ([]Alien, error) {
	if limit < 1 || limit > 20 {
		limit = 8
	}

	var featured []Alien
	err := s.db.
		Where("featured = ?", true).
		Order("created_at DESC").
		Limit(limit).
		Find(&featured).Error
	if err != nil {
		return nil, apperr.Internal(err)
	}

	return featured, nil
}

// GetFilterOptions retrieves distinct factions/planets and the price range
func (s *Service) GetFilterOptions() (*FilterOptions, error) {
	opts := &FilterOptions{Rarities: Rarities}

	if err := s.db.Model(&Alien{}).Distinct("faction").Order("faction").Pluck("faction", &opts.Factions).Error; err != nil {
		return nil, apperr.Internal(err)
	}

	if err := s.db.Model(&Alien{}).Distinct("planet").Order("planet").Pluck("planet", &opts.Planets).Error; err != nil {
		return nil, apperr.Internal(err)
	}

	var bounds struct {
		Min float64
		Max float64
	}
	if err := s.db.Model(&Alien{}).
		Select("COALESCE(MIN(price), 0) AS min, COALESCE(MAX(price), 0) AS max").
		Scan(&bounds).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	opts.MinPrice = bounds.Min
	opts.MaxPrice = bounds.Max

	return opts, nil
}

// Create adds a new alien to the catalog
func (s *Service) Create(req *CreateRequest) (*Alien, error) {
	if err := validateRarityAndPrice(req.Rarity, req.Price); err != nil {
		return nil, err
	}
	if err := validateImage(req.Image); err != nil {
		return nil, err
	}

	inStock := true
	if req.InStock != nil {
		inStock = *req.InStock
	}

	a := Alien{
		Name:      req.Name,
		Faction:   req.Faction,
		Planet:    req.Planet,
		Rarity:    req.Rarity,
		Price:     req.Price,
		Image:     req.Image,
		Backstory: req.Backstory,
		Abilities: req.Abilities,
		Featured:  req.Featured,
		InStock:   inStock,
	}

	if err := s.db.Create(&a).Error; err != nil {
		return nil, apperr.Internal(err)
	}

	return &a, nil
}

// Update modifies an existing alien; only non-nil fields are applied
func (s *Service) Update(id uint, req *UpdateRequest) (*Alien, error) {
	a, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.Rarity != nil && !req.Rarity.IsValid() {
		return nil, apperr.Validation("Invalid rarity value")
	}
	if req.Price != nil && *req.Price < 0 {
		return nil, apperr.Validation("Price must be non-negative")
	}
	if req.Image != nil {
		if err := validateImage(*req.Image); err != nil {
			return nil, err
		}
	}

	if req.Name != nil {
		a.Name = *req.Name
	}
	if req.Faction != nil {
		a.Faction = *req.Faction
	}
	if req.Planet != nil {
		a.Planet = *req.Planet
	}
	if req.Rarity != nil {
		a.Rarity = *req.Rarity
	}
	if req.Price != nil {
		a.Price = *req.Price
	}
	if req.Image != nil {
		a.Image = *req.Image
	}
	if req.Backstory != nil {
		a.Backstory = *req.Backstory
	}
	if req.Abilities != nil {
		a.Abilities = *req.Abilities
	}
	if req.Featured != nil {
		a.Featured = *req.Featured
	}
	if req.InStock != nil {
		a.InStock = *req.InStock
	}

	if err := s.db.Save(a).Error; err != nil {
		return nil, apperr.Internal(err)
	}

	return a, nil
}

// Delete removes an alien from the catalog. Existing cart and order lines
// keep their references; stale ones are tolerated downstream.
func (s *Service) Delete(id uint) error {
	a, err := s.GetByID(id)
	if err != nil {
		return err
	}

	if err := s.db.Delete(a).Error; err != nil {
		return apperr.Internal(err)
	}

	return nil
}

func validateRarityAndPrice(rarity Rarity, price float64) error {
	if !rarity.IsValid() {
		return apperr.Validation("Invalid rarity value")
	}
	if price < 0 {
		return apperr.Validation("Price must be non-negative")
	}
	return nil
}

// validateImage accepts an absolute URL, a local /uploads path, or empty.
func validateImage(image string) error {
	if image == "" {
		return nil
	}
	if strings.HasPrefix(image, "http://") || strings.HasPrefix(image, "https://") ||
		strings.HasPrefix(image, "/uploads/") {
		return nil
	}
	return apperr.Validation("Image must be a URL or an uploaded file path")
}

func buildOrderClause(sortBy, sortOrder string) string {
	validSortFields := map[string]bool{
		"name":       true,
		"price":      true,
		"rarity":     true,
		"created_at": true,
	}

	if !validSortFields[sortBy] {
		sortBy = "created_at"
	}

	if sortOrder != "asc" && sortOrder != "desc" {
		sortOrder = "desc"
	}

	return sortBy + " " + sortOrder
}
