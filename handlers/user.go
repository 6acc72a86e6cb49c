package handlers

import (
	"net/http"

	"courtside/services/user"
	"courtside/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler exposes identity and role endpoints.
type UserHandler struct {
	UserSvc user.UserService
}

// UpsertUserHandler handles POST /api/users. Called on every sign-in:
// creates the user record on first contact, refreshes the profile
// fields afterwards. The email is always the authenticated caller's.
func (h *UserHandler) UpsertUserHandler(c *gin.Context) {
	var input struct {
		Name  string `json:"name"`
		Photo string `json:"photo"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	usr, err := h.UserSvc.UpsertUser(requesterEmail(c), input.Name, input.Photo)
	if err != nil {
		utils.GetLogger().Error("Failed to upsert user", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save user"})
		return
	}
	c.JSON(http.StatusOK, usr)
}

// GetRoleHandler handles GET /api/users/role/:email. Users may read
// their own role; admins may read anyone's. ?refresh=true bypasses the
// role cache after a known mutation.
func (h *UserHandler) GetRoleHandler(c *gin.Context) {
	email := c.Param("email")
	if !isAdmin(c) && email != requesterEmail(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "cannot read another user's role"})
		return
	}

	var role string
	if c.Query("refresh") == "true" {
		role = h.UserSvc.RefreshRole(email)
	} else {
		role = h.UserSvc.ResolveRole(email)
	}
	c.JSON(http.StatusOK, gin.H{"role": role})
}

// SearchUsersHandler handles GET /api/users/search?email= (admin).
// An empty query returns everyone.
func (h *UserHandler) SearchUsersHandler(c *gin.Context) {
	query := c.Query("email")

	var err error
	var users interface{}
	if query == "" {
		users, err = h.UserSvc.GetAllUsers()
	} else {
		users, err = h.UserSvc.SearchByEmail(query)
	}
	if err != nil {
		utils.GetLogger().Error("User search failed", zap.String("query", query), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "search failed"})
		return
	}
	c.JSON(http.StatusOK, users)
}

// UpdateUserRoleHandler handles PATCH /api/users/:id/role (admin).
func (h *UserHandler) UpdateUserRoleHandler(c *gin.Context) {
	var input struct {
		Role string `json:"role" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	usr, err := h.UserSvc.SetRole(c.Param("id"), input.Role)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	utils.GetLogger().Info("User role updated",
		zap.String("userID", usr.ID),
		zap.String("role", usr.Role))
	c.JSON(http.StatusOK, usr)
}
