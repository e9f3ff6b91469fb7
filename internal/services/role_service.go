package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/communiverse/community-api/internal/models"
	"github.com/communiverse/community-api/internal/repository"
	"github.com/communiverse/community-api/internal/utils"
)

var (
	ErrRoleNameTaken   = errors.New("role already exists with this name")
	ErrInvalidRoleName = errors.New("role name cannot be empty")
)

// RoleService provides business logic for the role catalog. The role set is
// open: any name may be registered, uniqueness is the only constraint.
type RoleService struct {
	roleRepo repository.RoleRepository
}

// NewRoleService creates a new RoleService.
func NewRoleService(roleRepo repository.RoleRepository) *RoleService {
	return &RoleService{
		roleRepo: roleRepo,
	}
}

// CreateRole registers a new role name.
func (s *RoleService) CreateRole(name string) (*models.Role, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidRoleName
	}

	if _, err := s.roleRepo.FindByName(name); err == nil {
		return nil, ErrRoleNameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check role name: %w", err)
	}

	role := &models.Role{Name: name}
	if err := s.roleRepo.Create(role); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrRoleNameTaken
		}
		return nil, fmt.Errorf("failed to create role: %w", err)
	}

	return role, nil
}

// ListRoles returns a stable page of roles in insertion order.
func (s *RoleService) ListRoles(params utils.PaginationParams) ([]models.Role, int64, error) {
	roles, total, err := s.roleRepo.List(params)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list roles: %w", err)
	}
	return roles, total, nil
}
