package repository

import (
	"github.com/communiverse/community-api/internal/database"
	"github.com/communiverse/community-api/internal/models"
	"github.com/communiverse/community-api/internal/utils"
	"gorm.io/gorm"
)

// GormMemberRepository is a GORM implementation of MemberRepository
type GormMemberRepository struct {
	db *gorm.DB
}

// NewMemberRepository creates a new MemberRepository
func NewMemberRepository(db *gorm.DB) MemberRepository {
	return &GormMemberRepository{db: db}
}

// Create creates a new member
func (r *GormMemberRepository) Create(member *models.Member) error {
	return r.db.Create(member).Error
}

// FindByID finds a member by ID
func (r *GormMemberRepository) FindByID(id string) (*models.Member, error) {
	var member models.Member
	if err := r.db.Where("id = ?", id).First(&member).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

// FindByTriple finds the member holding the exact (user, community, role) triple
func (r *GormMemberRepository) FindByTriple(userID, communityID, roleID string) (*models.Member, error) {
	var member models.Member
	if err := r.db.Where("user_id = ? AND community_id = ? AND role_id = ?", userID, communityID, roleID).
		First(&member).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

// ListByUserAndCommunity finds every member row linking a user to a
// community, one per role held, with roles preloaded for capability checks
func (r *GormMemberRepository) ListByUserAndCommunity(userID, communityID string) ([]models.Member, error) {
	var members []models.Member
	if err := r.db.Preload("Role").
		Where("user_id = ? AND community_id = ?", userID, communityID).
		Order("id").
		Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

// FindFirstByUser finds any member row held by the user
func (r *GormMemberRepository) FindFirstByUser(userID string) (*models.Member, error) {
	var member models.Member
	if err := r.db.Where("user_id = ?", userID).First(&member).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

// ListByCommunity retrieves a page of a community's members with user and role preloaded
func (r *GormMemberRepository) ListByCommunity(communityID string, params utils.PaginationParams) ([]models.Member, int64, error) {
	query := r.db.Model(&models.Member{}).Where("community_id = ?", communityID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var members []models.Member
	if err := query.Preload("User").Preload("Role").
		Order("id").
		Scopes(database.Paginate(params)).
		Find(&members).Error; err != nil {
		return nil, 0, err
	}

	return members, total, nil
}

// ListCommunityIDsByUser returns the distinct community IDs the user is a
// member of. A user holding several roles in one community appears once.
func (r *GormMemberRepository) ListCommunityIDsByUser(userID string) ([]string, error) {
	var ids []string
	if err := r.db.Model(&models.Member{}).
		Where("user_id = ?", userID).
		Distinct("community_id").
		Order("community_id").
		Pluck("community_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

// Delete removes a member row. The deletion is terminal; there is no
// soft-delete or undo.
func (r *GormMemberRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&models.Member{}).Error
}
