package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/communiverse/community-api/internal/utils"
)

type Role struct {
	ID        string    `gorm:"type:varchar(36);primarykey" json:"id"`
	Name      string    `gorm:"type:varchar(64);uniqueIndex;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

func (r *Role) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		id, err := utils.NewID()
		if err != nil {
			return err
		}
		r.ID = id
	}
	return nil
}
