package helper

import (
	"errors"
	"net/http"
	"strconv"

	"movie-discovery-backend/data_access"
	"movie-discovery-backend/services"

	"github.com/gin-gonic/gin"
)

// RespondError translates service errors into the HTTP error taxonomy:
// validation 400, authentication 401, not found 404, everything else 500
// with a generic message.
func RespondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrUserExists):
		c.JSON(http.StatusBadRequest, gin.H{"message": "User already exists"})
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
	case errors.Is(err, services.ErrInvalidRating):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Rating must be between 1 and 5"})
	case errors.Is(err, services.ErrSelfFollow):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Cannot follow yourself"})
	case errors.Is(err, services.ErrNotFound), errors.Is(err, data_access.ErrTMDBNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
	}
}

// MovieIDParam parses the :movieID path segment.
func MovieIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid movie id"})
		return 0, false
	}
	return id, true
}

// PageQuery parses the optional page query parameter, defaulting to 1.
func PageQuery(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}
