package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/communiverse/community-api/internal/utils"
)

// Member links one user to one role within one community. The same user may
// hold several roles in a community, one row per role; the exact
// (user, community, role) triple is unique.
type Member struct {
	ID          string    `gorm:"type:varchar(36);primarykey" json:"id"`
	CommunityID string    `gorm:"type:varchar(36);not null;index;uniqueIndex:uk_members_user_community_role" json:"community"`
	UserID      string    `gorm:"type:varchar(36);not null;index;uniqueIndex:uk_members_user_community_role" json:"user"`
	RoleID      string    `gorm:"type:varchar(36);not null;uniqueIndex:uk_members_user_community_role" json:"role"`
	CreatedAt   time.Time `json:"created_at"`

	// Relations
	User      User      `gorm:"foreignKey:UserID" json:"-"`
	Role      Role      `gorm:"foreignKey:RoleID" json:"-"`
	Community Community `gorm:"foreignKey:CommunityID" json:"-"`
}

func (m *Member) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		id, err := utils.NewID()
		if err != nil {
			return err
		}
		m.ID = id
	}
	return nil
}
