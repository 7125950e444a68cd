package controllers

import (
	"net/http"

	"movie-discovery-backend/helper"
	"movie-discovery-backend/middleware"
	"movie-discovery-backend/models"
	"movie-discovery-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type AuthController struct {
	authService *services.AuthService
}

func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

func (c *AuthController) Register(ctx *gin.Context) {
	var req models.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": bindErrorMessage(err)})
		return
	}

	resp, err := c.authService.Register(ctx.Request.Context(), &req)
	if err != nil {
		helper.RespondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, resp)
}

func (c *AuthController) Login(ctx *gin.Context) {
	var req models.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": bindErrorMessage(err)})
		return
	}

	resp, err := c.authService.Login(ctx.Request.Context(), &req)
	if err != nil {
		helper.RespondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

func (c *AuthController) Logout(ctx *gin.Context) {
	// In a stateless JWT setup, client-side logout is sufficient
	ctx.JSON(http.StatusOK, gin.H{"message": "Successfully logged out"})
}

// Me returns the authenticated user's own record. The client uses this to
// validate a stored token on startup.
func (c *AuthController) Me(ctx *gin.Context) {
	userID := ctx.GetString(middleware.ContextUserID)

	user, err := c.authService.CurrentUser(ctx.Request.Context(), userID)
	if err != nil {
		helper.RespondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, user)
}

// bindErrorMessage turns binding failures into a single user-facing message,
// first validation error wins.
func bindErrorMessage(err error) string {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return "Invalid request format"
	}

	for _, e := range ve {
		switch e.Field() {
		case "Username":
			return "Username is required"
		case "Email":
			return "Please provide a valid email address"
		case "Password":
			return "Password is required"
		case "Score":
			return "Rating must be between 1 and 5"
		case "MovieID":
			return "Movie id is required"
		}
		break // Only show first error
	}
	return "Invalid input data"
}
