package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/communiverse/community-api/internal/models"
	"github.com/communiverse/community-api/internal/repository"
	"github.com/communiverse/community-api/internal/utils"
)

var (
	ErrMemberExists   = errors.New("member already exists")
	ErrMemberNotFound = errors.New("member not found")
	ErrRoleNotFound   = errors.New("role not found")
)

// MemberService provides business logic for the membership ledger.
type MemberService struct {
	memberRepo    repository.MemberRepository
	userRepo      repository.UserRepository
	communityRepo repository.CommunityRepository
	roleRepo      repository.RoleRepository
	authorizer    *Authorizer
}

// NewMemberService creates a new MemberService.
func NewMemberService(
	memberRepo repository.MemberRepository,
	userRepo repository.UserRepository,
	communityRepo repository.CommunityRepository,
	roleRepo repository.RoleRepository,
	authorizer *Authorizer,
) *MemberService {
	return &MemberService{
		memberRepo:    memberRepo,
		userRepo:      userRepo,
		communityRepo: communityRepo,
		roleRepo:      roleRepo,
		authorizer:    authorizer,
	}
}

// AddMemberInput identifies the community, user and role to link.
type AddMemberInput struct {
	CommunityID string
	UserID      string
	RoleID      string
}

// AddMember links a user to a community under a role. References are checked
// independently so the caller learns which one is missing; the composite
// unique index settles racing duplicates.
func (s *MemberService) AddMember(input AddMemberInput) (*models.Member, error) {
	if _, err := s.memberRepo.FindByTriple(input.UserID, input.CommunityID, input.RoleID); err == nil {
		return nil, ErrMemberExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check member: %w", err)
	}

	if _, err := s.userRepo.FindByID(input.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if _, err := s.communityRepo.FindByID(input.CommunityID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommunityNotFound
		}
		return nil, fmt.Errorf("failed to find community: %w", err)
	}

	if _, err := s.roleRepo.FindByID(input.RoleID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoleNotFound
		}
		return nil, fmt.Errorf("failed to find role: %w", err)
	}

	member := &models.Member{
		CommunityID: input.CommunityID,
		UserID:      input.UserID,
		RoleID:      input.RoleID,
	}

	if err := s.memberRepo.Create(member); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrMemberExists
		}
		return nil, fmt.Errorf("failed to create member: %w", err)
	}

	return member, nil
}

// RemoveMember deletes the target member if the acting user holds a
// privileged role in the target's community. The deletion is terminal.
func (s *MemberService) RemoveMember(actingUserID, targetMemberID string) error {
	target, err := s.memberRepo.FindByID(targetMemberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMemberNotFound
		}
		return fmt.Errorf("failed to find member: %w", err)
	}

	if err := s.authorizer.CanModifyMembership(actingUserID, target); err != nil {
		return err
	}

	if err := s.memberRepo.Delete(target.ID); err != nil {
		return fmt.Errorf("failed to remove member: %w", err)
	}

	return nil
}

// ListCommunityMembers returns a page of a community's members with their
// user and role loaded for display.
func (s *MemberService) ListCommunityMembers(communityID string, params utils.PaginationParams) ([]models.Member, int64, error) {
	members, total, err := s.memberRepo.ListByCommunity(communityID, params)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list members: %w", err)
	}
	return members, total, nil
}
