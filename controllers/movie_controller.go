package controllers

import (
	"net/http"

	"movie-discovery-backend/helper"
	"movie-discovery-backend/services"

	"github.com/gin-gonic/gin"
)

// MovieController exposes the read-through proxies to the external metadata
// API. Responses are forwarded to the client unmodified.
type MovieController struct {
	movieService *services.MovieService
}

func NewMovieController(movieService *services.MovieService) *MovieController {
	return &MovieController{
		movieService: movieService,
	}
}

func (c *MovieController) Search(ctx *gin.Context) {
	query := ctx.Query("query")
	if query == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Search query is required"})
		return
	}

	page, err := c.movieService.Search(ctx.Request.Context(), query, helper.PageQuery(ctx))
	if err != nil {
		helper.RespondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, page)
}

func (c *MovieController) GetMovie(ctx *gin.Context) {
	movieID, ok := helper.MovieIDParam(ctx, "id")
	if !ok {
		return
	}

	movie, err := c.movieService.GetMovie(ctx.Request.Context(), movieID)
	if err != nil {
		helper.RespondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, movie)
}

func (c *MovieController) GetRecommendations(ctx *gin.Context) {
	movieID, ok := helper.MovieIDParam(ctx, "id")
	if !ok {
		return
	}

	page, err := c.movieService.GetRecommendations(ctx.Request.Context(), movieID, helper.PageQuery(ctx))
	if err != nil {
		helper.RespondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, page)
}

func (c *MovieController) GetTrailers(ctx *gin.Context) {
	movieID, ok := helper.MovieIDParam(ctx, "id")
	if !ok {
		return
	}

	trailers, err := c.movieService.GetTrailers(ctx.Request.Context(), movieID)
	if err != nil {
		helper.RespondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, trailers)
}
