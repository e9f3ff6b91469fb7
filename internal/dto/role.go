package dto

import (
	"time"

	"github.com/communiverse/community-api/internal/models"
)

// RoleDTO represents a role in API responses
type RoleDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// RoleSummaryDTO is the compact role shape embedded in member listings
type RoleSummaryDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ToRoleDTO converts a Role model to RoleDTO
func ToRoleDTO(role models.Role) RoleDTO {
	return RoleDTO{
		ID:        role.ID,
		Name:      role.Name,
		CreatedAt: role.CreatedAt,
	}
}

// ToRoleDTOs converts a slice of Role models
func ToRoleDTOs(roles []models.Role) []RoleDTO {
	dtos := make([]RoleDTO, len(roles))
	for i, role := range roles {
		dtos[i] = ToRoleDTO(role)
	}
	return dtos
}

// ToRoleSummaryDTO converts a Role model to its compact shape
func ToRoleSummaryDTO(role models.Role) RoleSummaryDTO {
	return RoleSummaryDTO{
		ID:   role.ID,
		Name: role.Name,
	}
}
