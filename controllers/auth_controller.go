package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DarkcodeQuan/WebProject/middleware"
	"github.com/DarkcodeQuan/WebProject/repository"
	"github.com/DarkcodeQuan/WebProject/services"
)

type AuthController struct {
	auth     *services.AuthService
	sessions repository.SessionRepo
}

func NewAuthController(auth *services.AuthService, sessions repository.SessionRepo) *AuthController {
	return &AuthController{
		auth:     auth,
		sessions: sessions,
	}
}

type credentialsRequest struct {
	Email    string `json:"email" form:"email" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

// Signup registers a new customer account.
func (ac *AuthController) Signup(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
		return
	}

	user, err := ac.auth.Signup(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

// Login verifies credentials and marks the session authenticated.
func (ac *AuthController) Login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
		return
	}

	user, err := ac.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	session := middleware.GetSession(c)
	session.UserID = user.ID.Hex()
	session.IsAdmin = user.IsAdmin
	if err := ac.sessions.Save(c.Request.Context(), session); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// Logout destroys the session, discarding the cart with it.
func (ac *AuthController) Logout(c *gin.Context) {
	if err := middleware.DestroySession(c, ac.sessions); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}
