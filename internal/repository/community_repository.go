package repository

import (
	"github.com/communiverse/community-api/internal/database"
	"github.com/communiverse/community-api/internal/models"
	"github.com/communiverse/community-api/internal/utils"
	"gorm.io/gorm"
)

// GormCommunityRepository is a GORM implementation of CommunityRepository
type GormCommunityRepository struct {
	db *gorm.DB
}

// NewCommunityRepository creates a new CommunityRepository
func NewCommunityRepository(db *gorm.DB) CommunityRepository {
	return &GormCommunityRepository{db: db}
}

// Create creates a new community
func (r *GormCommunityRepository) Create(community *models.Community) error {
	return r.db.Create(community).Error
}

// FindByID finds a community by ID
func (r *GormCommunityRepository) FindByID(id string) (*models.Community, error) {
	var community models.Community
	if err := r.db.Where("id = ?", id).First(&community).Error; err != nil {
		return nil, err
	}
	return &community, nil
}

// FindByNameAndSlug finds a community by its (name, slug) pair
func (r *GormCommunityRepository) FindByNameAndSlug(name, slug string) (*models.Community, error) {
	var community models.Community
	if err := r.db.Where("name = ? AND slug = ?", name, slug).First(&community).Error; err != nil {
		return nil, err
	}
	return &community, nil
}

// List retrieves a page of all communities and the total count
func (r *GormCommunityRepository) List(params utils.PaginationParams) ([]models.Community, int64, error) {
	var total int64
	if err := r.db.Model(&models.Community{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var communities []models.Community
	if err := r.db.Order("id").
		Scopes(database.Paginate(params)).
		Find(&communities).Error; err != nil {
		return nil, 0, err
	}

	return communities, total, nil
}

// ListByOwner retrieves a page of communities owned by the given user
func (r *GormCommunityRepository) ListByOwner(ownerID string, params utils.PaginationParams) ([]models.Community, int64, error) {
	query := r.db.Model(&models.Community{}).Where("owner_id = ?", ownerID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var communities []models.Community
	if err := query.Order("id").
		Scopes(database.Paginate(params)).
		Find(&communities).Error; err != nil {
		return nil, 0, err
	}

	return communities, total, nil
}

// ListByIDs retrieves a page of communities in the given ID set with owners preloaded
func (r *GormCommunityRepository) ListByIDs(ids []string, params utils.PaginationParams) ([]models.Community, int64, error) {
	if len(ids) == 0 {
		return []models.Community{}, 0, nil
	}

	query := r.db.Model(&models.Community{}).Where("id IN ?", ids)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var communities []models.Community
	if err := query.Preload("Owner").
		Order("id").
		Scopes(database.Paginate(params)).
		Find(&communities).Error; err != nil {
		return nil, 0, err
	}

	return communities, total, nil
}
