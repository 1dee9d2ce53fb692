package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"fitcore/internal/models/request_models"
	"fitcore/internal/services"
	"fitcore/pkg/utils"
)

// MemberAdminController is the back-office surface for member management.
type MemberAdminController struct {
	profileService services.ProfileServiceInterface
}

func NewMemberAdminController(profileService services.ProfileServiceInterface) *MemberAdminController {
	return &MemberAdminController{
		profileService: profileService,
	}
}

// ListMembers godoc
// @Summary List all members
// @Tags Admin
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /all-users [get]
func (m *MemberAdminController) ListMembers(c *gin.Context) {
	members, err := m.profileService.ListMembers(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, members, "")
}

// UpdateMember godoc
// @Summary Update a member's signup and profile fields atomically
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "Profile ID"
// @Param request body request_models.UpdateMemberRequest true "Member payload"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /update-user/{id} [put]
func (m *MemberAdminController) UpdateMember(c *gin.Context) {
	profileID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid member id")
		return
	}

	var req request_models.UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "All fields are required")
		return
	}

	if err := m.profileService.UpdateMember(c.Request.Context(), profileID, req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "User updated successfully")
}

// DeleteMember godoc
// @Summary Delete a member's profile
// @Tags Admin
// @Produce json
// @Param id path string true "Profile ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /delete-user/{id} [delete]
func (m *MemberAdminController) DeleteMember(c *gin.Context) {
	profileID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid member id")
		return
	}

	if err := m.profileService.DeleteMember(c.Request.Context(), profileID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "User deleted successfully")
}
