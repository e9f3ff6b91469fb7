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
	ErrCommunityExists      = errors.New("community already exists")
	ErrCommunityNotFound    = errors.New("community not found")
	ErrOwnerNotFound        = errors.New("owner not found")
	ErrInvalidCommunityName = errors.New("community name cannot be empty")
)

// CommunityService provides business logic for community operations.
type CommunityService struct {
	communityRepo repository.CommunityRepository
	memberRepo    repository.MemberRepository
	userRepo      repository.UserRepository
}

// NewCommunityService creates a new CommunityService.
func NewCommunityService(
	communityRepo repository.CommunityRepository,
	memberRepo repository.MemberRepository,
	userRepo repository.UserRepository,
) *CommunityService {
	return &CommunityService{
		communityRepo: communityRepo,
		memberRepo:    memberRepo,
		userRepo:      userRepo,
	}
}

// CreateCommunity derives the slug from the name and persists the community.
// The owner is recorded but not enrolled as a member: ownership and
// membership are independent.
func (s *CommunityService) CreateCommunity(name, ownerID string) (*models.Community, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidCommunityName
	}

	communitySlug := utils.Slugify(name)

	if _, err := s.communityRepo.FindByNameAndSlug(name, communitySlug); err == nil {
		return nil, ErrCommunityExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check community: %w", err)
	}

	if _, err := s.userRepo.FindByID(ownerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOwnerNotFound
		}
		return nil, fmt.Errorf("failed to find owner: %w", err)
	}

	community := &models.Community{
		Name:    name,
		Slug:    communitySlug,
		OwnerID: ownerID,
	}

	if err := s.communityRepo.Create(community); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrCommunityExists
		}
		return nil, fmt.Errorf("failed to create community: %w", err)
	}

	return community, nil
}

// ListCommunities returns a page of all communities.
func (s *CommunityService) ListCommunities(params utils.PaginationParams) ([]models.Community, int64, error) {
	communities, total, err := s.communityRepo.List(params)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list communities: %w", err)
	}
	return communities, total, nil
}

// ListOwnedCommunities returns a page of communities owned by the user.
func (s *CommunityService) ListOwnedCommunities(userID string, params utils.PaginationParams) ([]models.Community, int64, error) {
	communities, total, err := s.communityRepo.ListByOwner(userID, params)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list owned communities: %w", err)
	}
	return communities, total, nil
}

// ListJoinedCommunities returns a page of the distinct communities the user
// is a member of, owners preloaded. A user holding several roles in one
// community sees it once.
func (s *CommunityService) ListJoinedCommunities(userID string, params utils.PaginationParams) ([]models.Community, int64, error) {
	ids, err := s.memberRepo.ListCommunityIDsByUser(userID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to resolve joined communities: %w", err)
	}

	communities, total, err := s.communityRepo.ListByIDs(ids, params)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list joined communities: %w", err)
	}
	return communities, total, nil
}
