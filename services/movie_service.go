package services

import (
	"context"

	"movie-discovery-backend/models"
)

// MetadataClient is the external movie metadata surface. Implemented by
// data_access.TMDBClient.
type MetadataClient interface {
	SearchMovies(ctx context.Context, query string, page int) (*models.TMDBPage, error)
	GetMovie(ctx context.Context, movieID int64) (*models.TMDBMovie, error)
	GetRecommendations(ctx context.Context, movieID int64, page int) (*models.TMDBPage, error)
	GetVideos(ctx context.Context, movieID int64) (*models.TMDBVideoList, error)
}

// MovieService proxies search, detail, recommendation and trailer lookups to
// the external metadata API. Nothing is cached or merged locally.
type MovieService struct {
	metadata MetadataClient
}

func NewMovieService(metadata MetadataClient) *MovieService {
	return &MovieService{metadata: metadata}
}

func (s *MovieService) Search(ctx context.Context, query string, page int) (*models.TMDBPage, error) {
	return s.metadata.SearchMovies(ctx, query, page)
}

func (s *MovieService) GetMovie(ctx context.Context, movieID int64) (*models.TMDBMovie, error) {
	return s.metadata.GetMovie(ctx, movieID)
}

func (s *MovieService) GetRecommendations(ctx context.Context, movieID int64, page int) (*models.TMDBPage, error) {
	return s.metadata.GetRecommendations(ctx, movieID, page)
}

// GetTrailers returns only the trailer entries from the videos endpoint.
func (s *MovieService) GetTrailers(ctx context.Context, movieID int64) (*models.TMDBVideoList, error) {
	videos, err := s.metadata.GetVideos(ctx, movieID)
	if err != nil {
		return nil, err
	}

	trailers := make([]models.TMDBVideo, 0, len(videos.Results))
	for _, v := range videos.Results {
		if v.Type == "Trailer" {
			trailers = append(trailers, v)
		}
	}
	videos.Results = trailers
	return videos, nil
}
