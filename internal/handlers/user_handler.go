package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sajid-dev/doctors-portal-api/internal/middleware"
	"github.com/sajid-dev/doctors-portal-api/internal/models"
)

// GetUsers lists all users.
func (h *Handler) GetUsers(c *gin.Context) {
	users, err := h.Store.Users.All(c.Request.Context())
	if err != nil {
		h.serverError(c, "failed to load users", err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// GetIsAdmin reports whether the user with the given email holds the
// admin role. An unknown email is simply not an admin.
func (h *Handler) GetIsAdmin(c *gin.Context) {
	user, err := h.Store.Users.ByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		h.serverError(c, "failed to load user", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"isAdmin": user != nil && user.Role.IsAdmin()})
}

// CreateUser inserts a user document as given. Emails are not
// deduplicated here.
func (h *Handler) CreateUser(c *gin.Context) {
	var user models.User
	if err := c.ShouldBindJSON(&user); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	result, err := h.Store.Users.Insert(c.Request.Context(), &user)
	if err != nil {
		h.serverError(c, "failed to create user", err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// PromoteUser grants the admin role to the user with the given id.
// Only an existing admin may promote; the caller's identity comes from
// the verified token claim, never the request body. The update is an
// upsert, so an id matching no document creates one.
func (h *Handler) PromoteUser(c *gin.Context) {
	caller, err := h.Store.Users.ByEmail(c.Request.Context(), middleware.ClaimEmail(c))
	if err != nil {
		h.serverError(c, "failed to load user", err)
		return
	}
	if caller == nil || !caller.Role.IsAdmin() {
		c.JSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
		return
	}

	id, ok := pathID(c)
	if !ok {
		return
	}

	result, err := h.Store.Users.PromoteToAdmin(c.Request.Context(), id)
	if err != nil {
		h.serverError(c, "failed to promote user", err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// DeleteUser removes a user by id.
func (h *Handler) DeleteUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	result, err := h.Store.Users.Delete(c.Request.Context(), id)
	if err != nil {
		h.serverError(c, "failed to delete user", err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// IssueToken mints a one-hour access token for a known user email. An
// unknown email gets a 403 with an empty token rather than an error.
func (h *Handler) IssueToken(c *gin.Context) {
	email := c.Query("email")

	user, err := h.Store.Users.ByEmail(c.Request.Context(), email)
	if err != nil {
		h.serverError(c, "failed to load user", err)
		return
	}
	if user == nil {
		c.JSON(http.StatusForbidden, gin.H{"accessToken": ""})
		return
	}

	token, err := h.Tokens.Issue(email)
	if err != nil {
		h.serverError(c, "failed to issue token", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"accessToken": token})
}
