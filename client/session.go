package client

import (
	"context"
	"sync"

	"movie-discovery-backend/models"
)

// Session is an explicit state container holding the current token and user
// profile. It is constructed and injected by the caller rather than living
// as a package-level singleton.
type Session struct {
	api   *API
	store TokenStore

	mu      sync.Mutex
	user    *models.User
	loading bool
	once    sync.Once
}

func NewSession(api *API, store TokenStore) *Session {
	return &Session{
		api:   api,
		store: store,
	}
}

// Init validates a previously stored token by fetching the current user. A
// stale or invalid token clears the session. The check runs at most once per
// Session; the loading flag guards readers during the check.
func (s *Session) Init(ctx context.Context) error {
	var initErr error
	s.once.Do(func() {
		s.mu.Lock()
		s.loading = true
		s.mu.Unlock()

		defer func() {
			s.mu.Lock()
			s.loading = false
			s.mu.Unlock()
		}()

		token, err := s.store.Load()
		if err != nil {
			initErr = err
			return
		}
		if token == "" {
			return
		}

		s.api.SetToken(token)
		user, err := s.api.Me(ctx)
		if err != nil {
			// Stale token: clear everything and continue logged out
			initErr = s.Logout()
			return
		}

		s.mu.Lock()
		s.user = user
		s.mu.Unlock()
	})
	return initErr
}

// Login authenticates and stores token and user atomically.
func (s *Session) Login(ctx context.Context, email, password string) (*models.User, error) {
	resp, err := s.api.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	return s.establish(ctx, resp)
}

// Register creates the account and establishes the session in one step.
func (s *Session) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	resp, err := s.api.Register(ctx, username, email, password)
	if err != nil {
		return nil, err
	}
	return s.establish(ctx, resp)
}

// Logout clears the stored token and in-memory user regardless of prior
// state. The in-memory state is cleared even when removing the persisted
// token fails; the error is returned so the caller can surface it.
func (s *Session) Logout() error {
	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()

	s.api.SetToken("")
	return s.store.Clear()
}

// User returns the current profile, or nil when logged out.
func (s *Session) User() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

// Loading reports whether the startup token check is still in flight.
func (s *Session) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// LoggedIn reports whether a user is established.
func (s *Session) LoggedIn() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user != nil
}

func (s *Session) establish(ctx context.Context, resp *models.AuthResponse) (*models.User, error) {
	if err := s.store.Save(resp.Token); err != nil {
		return nil, err
	}
	s.api.SetToken(resp.Token)

	user, err := s.api.Me(ctx)
	if err != nil {
		// Profile fetch failed; fall back to the public fields from auth
		user = &models.User{
			ID:       resp.User.ID,
			Username: resp.User.Username,
			Email:    resp.User.Email,
		}
	}

	s.mu.Lock()
	s.user = user
	s.mu.Unlock()
	return user, nil
}
