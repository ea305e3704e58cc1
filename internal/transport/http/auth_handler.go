package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"courseadmin/internal/application/usecase"
	"courseadmin/internal/middleware"
)

// Cookie lifetime tracks the token's one-day expiry.
const cookieMaxAge = 24 * 60 * 60

type AuthHandler struct {
	auth          *usecase.AuthUseCase
	secureCookies bool
}

func NewAuthHandler(auth *usecase.AuthUseCase, secureCookies bool) *AuthHandler {
	return &AuthHandler{auth: auth, secureCookies: secureCookies}
}

// POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
		return
	}

	token, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		fail(c, err, "login failed")
		return
	}

	c.SetCookie(middleware.TokenCookie, token, cookieMaxAge, "/", "", h.secureCookies, true)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// POST /auth/logout clears the cookie; the token itself stays valid
// until its natural expiry.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(middleware.TokenCookie, "", -1, "/", "", h.secureCookies, true)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
		IsAdmin  bool   `json:"isAdmin"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
		return
	}

	user, err := h.auth.Register(c.Request.Context(), req.Email, req.Password, req.IsAdmin)
	if err != nil {
		fail(c, err, "registration failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"id":      user.ID,
		"email":   user.Email,
		"isAdmin": user.IsAdmin,
	})
}

// GET /auth/user
func (h *AuthHandler) CurrentUser(c *gin.Context) {
	session, ok := middleware.SessionFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	user, err := h.auth.CurrentUser(c.Request.Context(), session.UserID)
	if err != nil {
		fail(c, err, "failed to load user")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"id":      user.ID,
		"email":   user.Email,
		"isAdmin": user.IsAdmin,
	})
}

// POST /auth/password
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	session, ok := middleware.SessionFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req struct {
		CurrentPassword string `json:"currentPassword" binding:"required"`
		NewPassword     string `json:"newPassword" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "current and new password are required"})
		return
	}

	if err := h.auth.ChangePassword(c.Request.Context(), session.UserID, req.CurrentPassword, req.NewPassword); err != nil {
		fail(c, err, "failed to update password")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "password updated successfully"})
}

// POST /auth/email
func (h *AuthHandler) ChangeEmail(c *gin.Context) {
	session, ok := middleware.SessionFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req struct {
		Email string `json:"email" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email is required"})
		return
	}

	if err := h.auth.ChangeEmail(c.Request.Context(), session.UserID, req.Email); err != nil {
		fail(c, err, "failed to update email")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "email updated successfully"})
}
