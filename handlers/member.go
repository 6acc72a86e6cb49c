package handlers

import (
	"net/http"

	"courtside/services/membership"
	"courtside/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// MemberHandler exposes club membership endpoints.
type MemberHandler struct {
	MembershipSvc membership.MembershipService
}

// JoinClubHandler handles POST /api/members. The caller asks to become
// a member; eligibility requires at least one approved booking. The
// call is idempotent: an existing member gets a 200 with joined=false.
func (h *MemberHandler) JoinClubHandler(c *gin.Context) {
	var input struct {
		Name  string `json:"name"`
		Image string `json:"image"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	email := requesterEmail(c)
	joined, err := h.MembershipSvc.JoinClub(email, input.Name, input.Image)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	utils.GetLogger().Info("Club join request processed",
		zap.String("email", email), zap.Bool("joined", joined))
	c.JSON(http.StatusOK, gin.H{"joined": joined})
}

// ListMembersHandler handles GET /api/members (admin).
func (h *MemberHandler) ListMembersHandler(c *gin.Context) {
	members, err := h.MembershipSvc.ListMembers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list members"})
		return
	}
	c.JSON(http.StatusOK, members)
}

// DeleteMemberHandler handles DELETE /api/members/:id (admin). Removes
// the member record and returns the user to the plain "user" role.
func (h *MemberHandler) DeleteMemberHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.MembershipSvc.Demote(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	utils.GetLogger().Info("Member removed", zap.String("memberID", id))
	c.JSON(http.StatusOK, gin.H{"message": "Member removed"})
}
