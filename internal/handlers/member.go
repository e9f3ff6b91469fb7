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
)

// MemberHandler coordinates membership ledger HTTP handlers.
type MemberHandler struct {
	memberService *services.MemberService
}

// NewMemberHandler creates a new MemberHandler.
func NewMemberHandler(memberService *services.MemberService) *MemberHandler {
	return &MemberHandler{
		memberService: memberService,
	}
}

// AddMember links a user to a community under a role.
func (h *MemberHandler) AddMember(c *gin.Context) {
	type AddMemberRequest struct {
		Community string `json:"community" binding:"required"`
		User      string `json:"user" binding:"required"`
		Role      string `json:"role" binding:"required"`
	}

	var req AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	member, err := h.memberService.AddMember(services.AddMemberInput{
		CommunityID: req.Community,
		UserID:      req.User,
		RoleID:      req.Role,
	})
	if err != nil {
		respondMemberError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"data": dto.ToMemberDTO(*member),
	})
}

// RemoveMember deletes a member, gated on the acting user's role within the
// target's community.
func (h *MemberHandler) RemoveMember(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	targetMemberID := c.Param("id")
	if targetMemberID == "" {
		apierrors.BadRequest(c, "Member ID is required")
		return
	}

	if err := h.memberService.RemoveMember(userID, targetMemberID); err != nil {
		respondMemberError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": true})
}

func respondMemberError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrMemberExists):
		apierrors.Conflict(c, err.Error())
	case errors.Is(err, services.ErrMemberNotFound),
		errors.Is(err, services.ErrActingMemberNotFound),
		errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrCommunityNotFound),
		errors.Is(err, services.ErrRoleNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrCommunityMismatch),
		errors.Is(err, services.ErrInsufficientRole):
		apierrors.Forbidden(c, err.Error())
	default:
		log.Printf("member handler: %v", err)
		apierrors.InternalError(c, "")
	}
}
