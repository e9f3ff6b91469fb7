package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/communiverse/community-api/internal/dto"
	apierrors "github.com/communiverse/community-api/internal/errors"
	"github.com/communiverse/community-api/internal/services"
	"github.com/communiverse/community-api/internal/utils"
)

// RoleHandler coordinates role catalog HTTP handlers.
type RoleHandler struct {
	roleService *services.RoleService
}

// NewRoleHandler creates a new RoleHandler.
func NewRoleHandler(roleService *services.RoleService) *RoleHandler {
	return &RoleHandler{
		roleService: roleService,
	}
}

// CreateRole registers a new role name.
func (h *RoleHandler) CreateRole(c *gin.Context) {
	type CreateRoleRequest struct {
		Name string `json:"name" binding:"required,min=2"`
	}

	var req CreateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	role, err := h.roleService.CreateRole(req.Name)
	if err != nil {
		respondRoleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"data": dto.ToRoleDTO(*role),
	})
}

// ListRoles returns a page of roles with pagination metadata.
func (h *RoleHandler) ListRoles(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	roles, total, err := h.roleService.ListRoles(params)
	if err != nil {
		respondRoleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": dto.ToRoleDTOs(roles),
		"meta": utils.NewPaginationMeta(params, total),
	})
}

func respondRoleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrRoleNameTaken):
		apierrors.Conflict(c, err.Error())
	case errors.Is(err, services.ErrInvalidRoleName):
		apierrors.BadRequest(c, err.Error())
	default:
		log.Printf("role handler: %v", err)
		apierrors.InternalError(c, "")
	}
}
