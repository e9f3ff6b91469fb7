package dto

import (
	"time"

	"github.com/communiverse/community-api/internal/models"
)

// MemberDTO represents a member row in API responses; references are IDs.
type MemberDTO struct {
	ID        string    `json:"id"`
	Community string    `json:"community"`
	User      string    `json:"user"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// MemberDetailDTO is a member row joined with its user and role identities,
// used for community member listings.
type MemberDetailDTO struct {
	ID        string         `json:"id"`
	Community string         `json:"community"`
	User      UserSummaryDTO `json:"user"`
	Role      RoleSummaryDTO `json:"role"`
	CreatedAt time.Time      `json:"created_at"`
}

// ToMemberDTO converts a Member model to MemberDTO
func ToMemberDTO(member models.Member) MemberDTO {
	return MemberDTO{
		ID:        member.ID,
		Community: member.CommunityID,
		User:      member.UserID,
		Role:      member.RoleID,
		CreatedAt: member.CreatedAt,
	}
}

// ToMemberDetailDTO converts a Member with User and Role preloaded
func ToMemberDetailDTO(member models.Member) MemberDetailDTO {
	return MemberDetailDTO{
		ID:        member.ID,
		Community: member.CommunityID,
		User:      ToUserSummaryDTO(member.User),
		Role:      ToRoleSummaryDTO(member.Role),
		CreatedAt: member.CreatedAt,
	}
}

// ToMemberDetailDTOs converts a slice of Members with relations preloaded
func ToMemberDetailDTOs(members []models.Member) []MemberDetailDTO {
	dtos := make([]MemberDetailDTO, len(members))
	for i, member := range members {
		dtos[i] = ToMemberDetailDTO(member)
	}
	return dtos
}
