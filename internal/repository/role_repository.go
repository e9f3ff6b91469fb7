package repository

import (
	"github.com/communiverse/community-api/internal/database"
	"github.com/communiverse/community-api/internal/models"
	"github.com/communiverse/community-api/internal/utils"
	"gorm.io/gorm"
)

// GormRoleRepository is a GORM implementation of RoleRepository
type GormRoleRepository struct {
	db *gorm.DB
}

// NewRoleRepository creates a new RoleRepository
func NewRoleRepository(db *gorm.DB) RoleRepository {
	return &GormRoleRepository{db: db}
}

// Create creates a new role
func (r *GormRoleRepository) Create(role *models.Role) error {
	return r.db.Create(role).Error
}

// FindByID finds a role by ID
func (r *GormRoleRepository) FindByID(id string) (*models.Role, error) {
	var role models.Role
	if err := r.db.Where("id = ?", id).First(&role).Error; err != nil {
		return nil, err
	}
	return &role, nil
}

// FindByName finds a role by name
func (r *GormRoleRepository) FindByName(name string) (*models.Role, error) {
	var role models.Role
	if err := r.db.Where("name = ?", name).First(&role).Error; err != nil {
		return nil, err
	}
	return &role, nil
}

// List retrieves a page of roles in insertion order and the total count.
// IDs are time-sortable, so ordering by ID is stable across pages.
func (r *GormRoleRepository) List(params utils.PaginationParams) ([]models.Role, int64, error) {
	var total int64
	if err := r.db.Model(&models.Role{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var roles []models.Role
	if err := r.db.Order("id").
		Scopes(database.Paginate(params)).
		Find(&roles).Error; err != nil {
		return nil, 0, err
	}

	return roles, total, nil
}
