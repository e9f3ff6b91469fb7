package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/communiverse/community-api/internal/dto"
	apierrors "github.com/communiverse/community-api/internal/errors"
	"github.com/communiverse/community-api/internal/middleware"
	"github.com/communiverse/community-api/internal/services"
	"github.com/communiverse/community-api/internal/utils"
)

// CommunityHandler coordinates community HTTP handlers.
type CommunityHandler struct {
	communityService *services.CommunityService
	memberService    *services.MemberService
}

// NewCommunityHandler creates a new CommunityHandler.
func NewCommunityHandler(communityService *services.CommunityService, memberService *services.MemberService) *CommunityHandler {
	return &CommunityHandler{
		communityService: communityService,
		memberService:    memberService,
	}
}

// CreateCommunity creates a community owned by the authenticated user.
func (h *CommunityHandler) CreateCommunity(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type CreateCommunityRequest struct {
		Name string `json:"name" binding:"required,min=2"`
	}

	var req CreateCommunityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	community, err := h.communityService.CreateCommunity(req.Name, userID)
	if err != nil {
		respondCommunityError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"data": dto.ToCommunityDTO(*community),
	})
}

// ListCommunities returns a page of all communities.
func (h *CommunityHandler) ListCommunities(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	communities, total, err := h.communityService.ListCommunities(params)
	if err != nil {
		respondCommunityError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": dto.ToCommunityDTOs(communities),
		"meta": utils.NewPaginationMeta(params, total),
	})
}

// ListOwnedCommunities returns the communities owned by the authenticated user.
func (h *CommunityHandler) ListOwnedCommunities(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	params := utils.GetPaginationParams(c)

	communities, total, err := h.communityService.ListOwnedCommunities(userID, params)
	if err != nil {
		respondCommunityError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": dto.ToCommunityDTOs(communities),
		"meta": utils.NewPaginationMeta(params, total),
	})
}

// ListJoinedCommunities returns the distinct communities the authenticated
// user is a member of, each with its owner's identity.
func (h *CommunityHandler) ListJoinedCommunities(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	params := utils.GetPaginationParams(c)

	communities, total, err := h.communityService.ListJoinedCommunities(userID, params)
	if err != nil {
		respondCommunityError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": dto.ToCommunityWithOwnerDTOs(communities),
		"meta": utils.NewPaginationMeta(params, total),
	})
}

// ListMembers returns a page of a community's members with user and role
// identities for display.
func (h *CommunityHandler) ListMembers(c *gin.Context) {
	communityID := c.Param("id")
	if communityID == "" {
		apierrors.BadRequest(c, "Community ID is required")
		return
	}

	params := utils.GetPaginationParams(c)

	members, total, err := h.memberService.ListCommunityMembers(communityID, params)
	if err != nil {
		respondMemberError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": dto.ToMemberDetailDTOs(members),
		"meta": utils.NewPaginationMeta(params, total),
	})
}

func respondCommunityError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrCommunityExists):
		apierrors.Conflict(c, err.Error())
	case errors.Is(err, services.ErrInvalidCommunityName):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrOwnerNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrCommunityNotFound):
		apierrors.NotFound(c, err.Error())
	default:
		log.Printf("community handler: %v", err)
		apierrors.InternalError(c, "")
	}
}
