package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/communiverse/community-api/internal/models"
	"github.com/communiverse/community-api/internal/repository"
)

var (
	ErrActingMemberNotFound = errors.New("member not found")
	ErrCommunityMismatch    = errors.New("member does not belong to the same community")
	ErrInsufficientRole     = errors.New("role does not permit modifying membership")
)

// Authorizer decides whether a principal may perform a privileged mutation
// within a community. Capability = the acting member's role name belongs to
// a configured set; scope = acting member and target share a community.
type Authorizer struct {
	memberRepo  repository.MemberRepository
	modifyRoles map[string]struct{}
}

// NewAuthorizer creates an Authorizer. modifyRoles is the configured set of
// role names allowed to alter membership.
func NewAuthorizer(memberRepo repository.MemberRepository, modifyRoles []string) *Authorizer {
	set := make(map[string]struct{}, len(modifyRoles))
	for _, name := range modifyRoles {
		set[name] = struct{}{}
	}

	return &Authorizer{
		memberRepo:  memberRepo,
		modifyRoles: set,
	}
}

// CanModifyMembership reports whether the acting user may alter membership
// of the target member's community.
//
// The acting member rows are resolved scoped by the target's community,
// never by user ID alone: a principal holding roles in several communities
// acts as the member they are in the target's community. A user may hold
// several roles there, one row per role; holding any role in the configured
// set is enough. A principal who is a member elsewhere but not there is
// rejected for the community mismatch; a principal with no membership at
// all is not a member.
func (a *Authorizer) CanModifyMembership(actingUserID string, target *models.Member) error {
	acting, err := a.memberRepo.ListByUserAndCommunity(actingUserID, target.CommunityID)
	if err != nil {
		return fmt.Errorf("failed to resolve acting member: %w", err)
	}

	if len(acting) == 0 {
		if _, err := a.memberRepo.FindFirstByUser(actingUserID); err == nil {
			return ErrCommunityMismatch
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to resolve acting member: %w", err)
		}
		return ErrActingMemberNotFound
	}

	for _, member := range acting {
		if _, ok := a.modifyRoles[member.Role.Name]; ok {
			return nil
		}
	}

	return ErrInsufficientRole
}
