package dto

import (
	"time"

	"github.com/communiverse/community-api/internal/models"
)

// UserDTO represents a user in API responses. The password hash never leaves
// the service layer.
type UserDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// UserSummaryDTO is the compact user shape embedded in other resources
type UserSummaryDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}

// ToUserSummaryDTO converts a User model to its compact shape
func ToUserSummaryDTO(user models.User) UserSummaryDTO {
	return UserSummaryDTO{
		ID:   user.ID,
		Name: user.Name,
	}
}
