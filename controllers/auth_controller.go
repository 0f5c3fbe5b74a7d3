package controllers

import (
	"net/http"

	apperrors "pharmacy-store/common/errors"
	"pharmacy-store/middleware"

	"github.com/gin-gonic/gin"
)

// AuthController maps the login/logout/check-auth endpoints onto the auth
// service and manages the session cookie.
type AuthController struct {
	auth         IAuthService
	cookieMaxAge int
}

// NewAuthController creates the controller; cookieMaxAge is the session
// cookie lifetime in seconds and should match the session store TTL.
func NewAuthController(auth IAuthService, cookieMaxAge int) *AuthController {
	return &AuthController{auth: auth, cookieMaxAge: cookieMaxAge}
}

// Login handles POST /api/login.
func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid JSON body"})
		return
	}

	token, err := ac.auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.SetCookie(middleware.SessionCookie, token, ac.cookieMaxAge, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "Login successful", "username": req.Username})
}

// Logout handles POST /api/logout. The route is behind RequireAuth, so a
// missing cookie has already been rejected.
func (ac *AuthController) Logout(c *gin.Context) {
	token, err := c.Cookie(middleware.SessionCookie)
	if err != nil {
		apperrors.HandleError(c, apperrors.ErrUnauthorized)
		return
	}

	if err := ac.auth.Logout(token); err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

// CheckAuth handles GET /api/check-auth. It never fails.
func (ac *AuthController) CheckAuth(c *gin.Context) {
	token, err := c.Cookie(middleware.SessionCookie)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"authenticated": false})
		return
	}

	username, ok := ac.auth.Check(token)
	if !ok {
		c.JSON(http.StatusOK, gin.H{"authenticated": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"authenticated": true, "username": username})
}
