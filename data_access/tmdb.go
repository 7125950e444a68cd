package data_access

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"movie-discovery-backend/models"
)

// ErrTMDBNotFound is returned when TMDB reports an unknown movie id.
var ErrTMDBNotFound = errors.New("movie not found")

type TMDBClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewTMDBClient(apiKey, baseURL string) *TMDBClient {
	return &TMDBClient{
		apiKey:  apiKey,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// SearchMovies queries TMDB's search endpoint. The response is passed through
// unmodified.
func (c *TMDBClient) SearchMovies(ctx context.Context, query string, page int) (*models.TMDBPage, error) {
	params := url.Values{}
	params.Set("query", query)
	if page > 0 {
		params.Set("page", strconv.Itoa(page))
	}

	var result models.TMDBPage
	if err := c.get(ctx, "/search/movie", params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *TMDBClient) GetMovie(ctx context.Context, movieID int64) (*models.TMDBMovie, error) {
	var result models.TMDBMovie
	if err := c.get(ctx, fmt.Sprintf("/movie/%d", movieID), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetRecommendations is a pass-through to TMDB's own recommendation endpoint.
func (c *TMDBClient) GetRecommendations(ctx context.Context, movieID int64, page int) (*models.TMDBPage, error) {
	params := url.Values{}
	if page > 0 {
		params.Set("page", strconv.Itoa(page))
	}

	var result models.TMDBPage
	if err := c.get(ctx, fmt.Sprintf("/movie/%d/recommendations", movieID), params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *TMDBClient) GetVideos(ctx context.Context, movieID int64) (*models.TMDBVideoList, error) {
	var result models.TMDBVideoList
	if err := c.get(ctx, fmt.Sprintf("/movie/%d/videos", movieID), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *TMDBClient) get(ctx context.Context, path string, params url.Values, out interface{}) error {
	if c.apiKey == "" {
		return fmt.Errorf("TMDB API key not found")
	}

	if params == nil {
		params = url.Values{}
	}
	params.Set("api_key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error making request to TMDB API: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrTMDBNotFound
	}
	if resp.StatusCode != http.StatusOK {
		var tmdbErr models.TMDBError
		if err := json.NewDecoder(resp.Body).Decode(&tmdbErr); err == nil && tmdbErr.StatusMessage != "" {
			return fmt.Errorf("TMDB API error: %s", tmdbErr.StatusMessage)
		}
		return fmt.Errorf("TMDB API returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("error decoding TMDB response: %v", err)
	}
	return nil
}
