package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/communiverse/community-api/internal/utils"
)

// Community is owned by a single user. Ownership does not imply membership;
// the two are tracked independently.
type Community struct {
	ID        string    `gorm:"type:varchar(36);primarykey" json:"id"`
	Name      string    `gorm:"type:varchar(128);not null;uniqueIndex:uk_communities_name_slug" json:"name"`
	Slug      string    `gorm:"type:varchar(255);not null;uniqueIndex:uk_communities_name_slug" json:"slug"`
	OwnerID   string    `gorm:"type:varchar(36);not null;index" json:"owner"`
	CreatedAt time.Time `json:"created_at"`

	// Relations
	Owner User `gorm:"foreignKey:OwnerID" json:"-"`
}

func (c *Community) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		id, err := utils.NewID()
		if err != nil {
			return err
		}
		c.ID = id
	}
	return nil
}
