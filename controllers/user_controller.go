package controllers

import (
	"net/http"

	"movie-discovery-backend/helper"
	"movie-discovery-backend/middleware"
	"movie-discovery-backend/models"
	"movie-discovery-backend/services"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	userService *services.UserService
}

func NewUserController(userService *services.UserService) *UserController {
	return &UserController{
		userService: userService,
	}
}

func (c *UserController) GetProfile(ctx *gin.Context) {
	profile, err := c.userService.GetProfile(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		helper.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, profile)
}

func (c *UserController) DeleteAccount(ctx *gin.Context) {
	userID := ctx.GetString(middleware.ContextUserID)
	if err := c.userService.DeleteAccount(ctx.Request.Context(), userID); err != nil {
		helper.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Account deleted"})
}

func (c *UserController) ListFavorites(ctx *gin.Context) {
	userID := ctx.GetString(middleware.ContextUserID)
	favorites, err := c.userService.ListFavorites(ctx.Request.Context(), userID)
	if err != nil {
		helper.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"favorites": favorites})
}

func (c *UserController) AddFavorite(ctx *gin.Context) {
	var req models.AddMovieRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": bindErrorMessage(err)})
		return
	}

	userID := ctx.GetString(middleware.ContextUserID)
	if err := c.userService.AddFavorite(ctx.Request.Context(), userID, req.MovieID); err != nil {
		helper.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Added to favorites"})
}

func (c *UserController) RemoveFavorite(ctx *gin.Context) {
	movieID, ok := helper.MovieIDParam(ctx, "movieID")
	if !ok {
		return
	}

	userID := ctx.GetString(middleware.ContextUserID)
	if err := c.userService.RemoveFavorite(ctx.Request.Context(), userID, movieID); err != nil {
		helper.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Removed from favorites"})
}

func (c *UserController) ListWatchlist(ctx *gin.Context) {
	userID := ctx.GetString(middleware.ContextUserID)
	watchlist, err := c.userService.ListWatchlist(ctx.Request.Context(), userID)
	if err != nil {
		helper.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"watchlist": watchlist})
}

func (c *UserController) AddToWatchlist(ctx *gin.Context) {
	var req models.AddMovieRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": bindErrorMessage(err)})
		return
	}

	userID := ctx.GetString(middleware.ContextUserID)
	if err := c.userService.AddToWatchlist(ctx.Request.Context(), userID, req.MovieID); err != nil {
		helper.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Added to watchlist"})
}

func (c *UserController) RemoveFromWatchlist(ctx *gin.Context) {
	movieID, ok := helper.MovieIDParam(ctx, "movieID")
	if !ok {
		return
	}

	userID := ctx.GetString(middleware.ContextUserID)
	if err := c.userService.RemoveFromWatchlist(ctx.Request.Context(), userID, movieID); err != nil {
		helper.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Removed from watchlist"})
}

func (c *UserController) ListRatings(ctx *gin.Context) {
	userID := ctx.GetString(middleware.ContextUserID)
	ratings, err := c.userService.ListRatings(ctx.Request.Context(), userID)
	if err != nil {
		helper.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"ratings": ratings})
}

func (c *UserController) RateMovie(ctx *gin.Context) {
	var req models.RateMovieRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": bindErrorMessage(err)})
		return
	}

	userID := ctx.GetString(middleware.ContextUserID)
	if err := c.userService.RateMovie(ctx.Request.Context(), userID, req.MovieID, req.Score); err != nil {
		helper.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Rating saved"})
}

func (c *UserController) RemoveRating(ctx *gin.Context) {
	movieID, ok := helper.MovieIDParam(ctx, "movieID")
	if !ok {
		return
	}

	userID := ctx.GetString(middleware.ContextUserID)
	if err := c.userService.RemoveRating(ctx.Request.Context(), userID, movieID); err != nil {
		helper.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Rating removed"})
}

func (c *UserController) Follow(ctx *gin.Context) {
	userID := ctx.GetString(middleware.ContextUserID)
	if err := c.userService.Follow(ctx.Request.Context(), userID, ctx.Param("id")); err != nil {
		helper.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Now following"})
}

func (c *UserController) Unfollow(ctx *gin.Context) {
	userID := ctx.GetString(middleware.ContextUserID)
	if err := c.userService.Unfollow(ctx.Request.Context(), userID, ctx.Param("id")); err != nil {
		helper.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Unfollowed"})
}

func (c *UserController) ListFollowing(ctx *gin.Context) {
	userID := ctx.GetString(middleware.ContextUserID)
	following, err := c.userService.ListFollowing(ctx.Request.Context(), userID)
	if err != nil {
		helper.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"following": following})
}

func (c *UserController) ListFollowers(ctx *gin.Context) {
	userID := ctx.GetString(middleware.ContextUserID)
	followers, err := c.userService.ListFollowers(ctx.Request.Context(), userID)
	if err != nil {
		helper.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"followers": followers})
}
