package client

import (
	"context"

	"movie-discovery-backend/data_access"
	"movie-discovery-backend/models"
)

// TMDB wraps direct calls to the external metadata API for clients that hold
// their own API key instead of going through the backend proxies.
type TMDB struct {
	inner *data_access.TMDBClient
}

func NewTMDB(apiKey, baseURL string) *TMDB {
	return &TMDB{inner: data_access.NewTMDBClient(apiKey, baseURL)}
}

func (t *TMDB) SearchMovies(ctx context.Context, query string, page int) (*models.TMDBPage, error) {
	return t.inner.SearchMovies(ctx, query, page)
}

func (t *TMDB) GetMovie(ctx context.Context, movieID int64) (*models.TMDBMovie, error) {
	return t.inner.GetMovie(ctx, movieID)
}

func (t *TMDB) GetRecommendations(ctx context.Context, movieID int64, page int) (*models.TMDBPage, error) {
	return t.inner.GetRecommendations(ctx, movieID, page)
}

func (t *TMDB) GetVideos(ctx context.Context, movieID int64) (*models.TMDBVideoList, error) {
	return t.inner.GetVideos(ctx, movieID)
}
