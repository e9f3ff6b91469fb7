package dto

import (
	"time"

	"github.com/communiverse/community-api/internal/models"
)

// CommunityDTO represents a community in API responses; the owner is the
// owning user's ID.
type CommunityDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	Owner     string    `json:"owner"`
	CreatedAt time.Time `json:"created_at"`
}

// CommunityWithOwnerDTO is a community augmented with its owner's identity,
// used for the joined-communities listing.
type CommunityWithOwnerDTO struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Slug      string         `json:"slug"`
	Owner     UserSummaryDTO `json:"owner"`
	CreatedAt time.Time      `json:"created_at"`
}

// ToCommunityDTO converts a Community model to CommunityDTO
func ToCommunityDTO(community models.Community) CommunityDTO {
	return CommunityDTO{
		ID:        community.ID,
		Name:      community.Name,
		Slug:      community.Slug,
		Owner:     community.OwnerID,
		CreatedAt: community.CreatedAt,
	}
}

// ToCommunityDTOs converts a slice of Community models
func ToCommunityDTOs(communities []models.Community) []CommunityDTO {
	dtos := make([]CommunityDTO, len(communities))
	for i, community := range communities {
		dtos[i] = ToCommunityDTO(community)
	}
	return dtos
}

// ToCommunityWithOwnerDTO converts a Community with its Owner preloaded
func ToCommunityWithOwnerDTO(community models.Community) CommunityWithOwnerDTO {
	return CommunityWithOwnerDTO{
		ID:        community.ID,
		Name:      community.Name,
		Slug:      community.Slug,
		Owner:     ToUserSummaryDTO(community.Owner),
		CreatedAt: community.CreatedAt,
	}
}

// ToCommunityWithOwnerDTOs converts a slice of Communities with owners preloaded
func ToCommunityWithOwnerDTOs(communities []models.Community) []CommunityWithOwnerDTO {
	dtos := make([]CommunityWithOwnerDTO, len(communities))
	for i, community := range communities {
		dtos[i] = ToCommunityWithOwnerDTO(community)
	}
	return dtos
}
