// Package client is the Go client for the movie discovery backend: a thin
// API wrapper, a direct TMDB wrapper, and a session state container that
// persists the auth token between runs.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"movie-discovery-backend/models"
)

// APIError is a non-2xx response from the backend.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// API wraps HTTP calls to the backend. A token set via SetToken is attached
// as a Bearer credential on every request.
type API struct {
	baseURL    string
	httpClient *http.Client
	token      string
}

func NewAPI(baseURL string) *API {
	return &API{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

func (a *API) SetToken(token string) {
	a.token = token
}

func (a *API) Register(ctx context.Context, username, email, password string) (*models.AuthResponse, error) {
	body := models.RegisterRequest{Username: username, Email: email, Password: password}
	var resp models.AuthResponse
	if err := a.do(ctx, http.MethodPost, "/api/auth/register", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (a *API) Login(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	body := models.LoginRequest{Email: email, Password: password}
	var resp models.AuthResponse
	if err := a.do(ctx, http.MethodPost, "/api/auth/login", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Me fetches the authenticated user's record; used to validate a stored
// token on startup.
func (a *API) Me(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := a.do(ctx, http.MethodGet, "/api/auth/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (a *API) SearchMovies(ctx context.Context, query string, page int) (*models.TMDBPage, error) {
	var result models.TMDBPage
	path := fmt.Sprintf("/api/movies/search?query=%s&page=%d", url.QueryEscape(query), normalizePage(page))
	if err := a.do(ctx, http.MethodGet, path, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (a *API) GetMovie(ctx context.Context, movieID int64) (*models.TMDBMovie, error) {
	var result models.TMDBMovie
	if err := a.do(ctx, http.MethodGet, fmt.Sprintf("/api/movies/%d", movieID), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (a *API) GetRecommendations(ctx context.Context, movieID int64, page int) (*models.TMDBPage, error) {
	var result models.TMDBPage
	path := fmt.Sprintf("/api/movies/%d/recommendations?page=%d", movieID, normalizePage(page))
	if err := a.do(ctx, http.MethodGet, path, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (a *API) GetTrailers(ctx context.Context, movieID int64) (*models.TMDBVideoList, error) {
	var result models.TMDBVideoList
	if err := a.do(ctx, http.MethodGet, fmt.Sprintf("/api/movies/%d/trailers", movieID), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (a *API) ListFavorites(ctx context.Context) ([]int64, error) {
	var resp struct {
		Favorites []int64 `json:"favorites"`
	}
	if err := a.do(ctx, http.MethodGet, "/api/users/favorites", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Favorites, nil
}

func (a *API) AddFavorite(ctx context.Context, movieID int64) error {
	return a.do(ctx, http.MethodPost, "/api/users/favorites", models.AddMovieRequest{MovieID: movieID}, nil)
}

func (a *API) RemoveFavorite(ctx context.Context, movieID int64) error {
	return a.do(ctx, http.MethodDelete, fmt.Sprintf("/api/users/favorites/%d", movieID), nil, nil)
}

func (a *API) ListWatchlist(ctx context.Context) ([]models.WatchlistEntry, error) {
	var resp struct {
		Watchlist []models.WatchlistEntry `json:"watchlist"`
	}
	if err := a.do(ctx, http.MethodGet, "/api/users/watchlist", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Watchlist, nil
}

func (a *API) AddToWatchlist(ctx context.Context, movieID int64) error {
	return a.do(ctx, http.MethodPost, "/api/users/watchlist", models.AddMovieRequest{MovieID: movieID}, nil)
}

func (a *API) RemoveFromWatchlist(ctx context.Context, movieID int64) error {
	return a.do(ctx, http.MethodDelete, fmt.Sprintf("/api/users/watchlist/%d", movieID), nil, nil)
}

func (a *API) ListRatings(ctx context.Context) ([]models.RatingEntry, error) {
	var resp struct {
		Ratings []models.RatingEntry `json:"ratings"`
	}
	if err := a.do(ctx, http.MethodGet, "/api/users/ratings", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Ratings, nil
}

func (a *API) RateMovie(ctx context.Context, movieID int64, score int) error {
	return a.do(ctx, http.MethodPost, "/api/users/ratings", models.RateMovieRequest{MovieID: movieID, Score: score}, nil)
}

func (a *API) RemoveRating(ctx context.Context, movieID int64) error {
	return a.do(ctx, http.MethodDelete, fmt.Sprintf("/api/users/ratings/%d", movieID), nil, nil)
}

func (a *API) Follow(ctx context.Context, userID string) error {
	return a.do(ctx, http.MethodPost, "/api/users/"+userID+"/follow", nil, nil)
}

func (a *API) Unfollow(ctx context.Context, userID string) error {
	return a.do(ctx, http.MethodDelete, "/api/users/"+userID+"/follow", nil, nil)
}

func (a *API) GetUserProfile(ctx context.Context, userID string) (*models.PublicProfile, error) {
	var profile models.PublicProfile
	if err := a.do(ctx, http.MethodGet, "/api/users/"+userID, nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (a *API) do(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, a.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if a.token != "" {
		req.Header.Set("Authorization", "Bearer "+a.token)
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var errBody struct {
			Message string `json:"message"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&errBody); err != nil || errBody.Message == "" {
			errBody.Message = http.StatusText(resp.StatusCode)
		}
		return &APIError{StatusCode: resp.StatusCode, Message: errBody.Message}
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func normalizePage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}
