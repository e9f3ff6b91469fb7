package repository

import (
	"github.com/communiverse/community-api/internal/models"
	"github.com/communiverse/community-api/internal/utils"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id string) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(email string) (*models.User, error)
}

// RoleRepository defines the interface for role data access
type RoleRepository interface {
	// Create creates a new role
	Create(role *models.Role) error

	// FindByID finds a role by ID
	FindByID(id string) (*models.Role, error)

	// FindByName finds a role by name
	FindByName(name string) (*models.Role, error)

	// List retrieves a stable insertion-ordered page of roles and the total count
	List(params utils.PaginationParams) ([]models.Role, int64, error)
}

// CommunityRepository defines the interface for community data access
type CommunityRepository interface {
	// Create creates a new community
	Create(community *models.Community) error

	// FindByID finds a community by ID
	FindByID(id string) (*models.Community, error)

	// FindByNameAndSlug finds a community by its (name, slug) pair
	FindByNameAndSlug(name, slug string) (*models.Community, error)

	// List retrieves a page of all communities and the total count
	List(params utils.PaginationParams) ([]models.Community, int64, error)

	// ListByOwner retrieves a page of communities owned by the given user
	ListByOwner(ownerID string, params utils.PaginationParams) ([]models.Community, int64, error)

	// ListByIDs retrieves a page of communities whose ID is in the given set,
	// each with its owner preloaded
	ListByIDs(ids []string, params utils.PaginationParams) ([]models.Community, int64, error)
}

// MemberRepository defines the interface for member data access
type MemberRepository interface {
	// Create creates a new member
	Create(member *models.Member) error

	// FindByID finds a member by ID
	FindByID(id string) (*models.Member, error)

	// FindByTriple finds the member holding the exact (user, community, role) triple
	FindByTriple(userID, communityID, roleID string) (*models.Member, error)

	// ListByUserAndCommunity finds every member row linking a user to a
	// community, one per role held
	ListByUserAndCommunity(userID, communityID string) ([]models.Member, error)

	// FindFirstByUser finds any member row held by the user
	FindFirstByUser(userID string) (*models.Member, error)

	// ListByCommunity retrieves a page of a community's members with user and
	// role preloaded, and the total count
	ListByCommunity(communityID string, params utils.PaginationParams) ([]models.Member, int64, error)

	// ListCommunityIDsByUser returns the distinct community IDs the user is a member of
	ListCommunityIDsByUser(userID string) ([]string, error)

	// Delete removes a member row
	Delete(id string) error
}
