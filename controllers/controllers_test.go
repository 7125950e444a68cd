package controllers

import (
	"context"
	"sync"
	"time"

	"movie-discovery-backend/middleware"
	"movie-discovery-backend/models"
	"movie-discovery-backend/services"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// memStore is an in-memory services.UserStore backing the HTTP-level tests.
type memStore struct {
	mu    sync.Mutex
	users map[primitive.ObjectID]*models.User
}

func newMemStore() *memStore {
	return &memStore{users: make(map[primitive.ObjectID]*models.User)}
}

func (m *memStore) CreateUser(_ context.Context, user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	copied := *user
	m.users[user.ID] = &copied
	return nil
}

func (m *memStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *memStore) FindByUsername(_ context.Context, username string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Username == username {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *memStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, nil
	}
	copied := *u
	return &copied, nil
}

func (m *memStore) DeleteUser(_ context.Context, id primitive.ObjectID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[id]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(m.users, id)
	return nil
}

func (m *memStore) AddFavorite(_ context.Context, userID primitive.ObjectID, movieID int64) error {
	return m.mutate(userID, func(u *models.User) {
		for _, id := range u.Favorites {
			if id == movieID {
				return
			}
		}
		u.Favorites = append(u.Favorites, movieID)
	})
}

func (m *memStore) RemoveFavorite(_ context.Context, userID primitive.ObjectID, movieID int64) error {
	return m.mutate(userID, func(u *models.User) {
		out := u.Favorites[:0]
		for _, id := range u.Favorites {
			if id != movieID {
				out = append(out, id)
			}
		}
		u.Favorites = out
	})
}

func (m *memStore) AddWatchlistEntry(_ context.Context, userID primitive.ObjectID, entry models.WatchlistEntry) error {
	return m.mutate(userID, func(u *models.User) {
		for _, e := range u.Watchlist {
			if e.MovieID == entry.MovieID {
				return
			}
		}
		u.Watchlist = append(u.Watchlist, entry)
	})
}

func (m *memStore) RemoveWatchlistEntry(_ context.Context, userID primitive.ObjectID, movieID int64) error {
	return m.mutate(userID, func(u *models.User) {
		out := u.Watchlist[:0]
		for _, e := range u.Watchlist {
			if e.MovieID != movieID {
				out = append(out, e)
			}
		}
		u.Watchlist = out
	})
}

func (m *memStore) UpsertRating(_ context.Context, userID primitive.ObjectID, entry models.RatingEntry) error {
	return m.mutate(userID, func(u *models.User) {
		for i, e := range u.Ratings {
			if e.MovieID == entry.MovieID {
				u.Ratings[i] = entry
				return
			}
		}
		u.Ratings = append(u.Ratings, entry)
	})
}

func (m *memStore) RemoveRating(_ context.Context, userID primitive.ObjectID, movieID int64) error {
	return m.mutate(userID, func(u *models.User) {
		out := u.Ratings[:0]
		for _, e := range u.Ratings {
			if e.MovieID != movieID {
				out = append(out, e)
			}
		}
		u.Ratings = out
	})
}

func (m *memStore) Follow(_ context.Context, followerID, followeeID primitive.ObjectID) error {
	if err := m.mutate(followerID, func(u *models.User) {
		u.Following = append(u.Following, followeeID)
	}); err != nil {
		return err
	}
	return m.mutate(followeeID, func(u *models.User) {
		u.Followers = append(u.Followers, followerID)
	})
}

func (m *memStore) Unfollow(_ context.Context, followerID, followeeID primitive.ObjectID) error {
	if err := m.mutate(followerID, func(u *models.User) {
		out := u.Following[:0]
		for _, id := range u.Following {
			if id != followeeID {
				out = append(out, id)
			}
		}
		u.Following = out
	}); err != nil {
		return err
	}
	return m.mutate(followeeID, func(u *models.User) {
		out := u.Followers[:0]
		for _, id := range u.Followers {
			if id != followerID {
				out = append(out, id)
			}
		}
		u.Followers = out
	})
}

func (m *memStore) FindProfiles(_ context.Context, ids []primitive.ObjectID) ([]models.PublicProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	profiles := make([]models.PublicProfile, 0, len(ids))
	for _, id := range ids {
		if u, ok := m.users[id]; ok {
			profiles = append(profiles, u.Public())
		}
	}
	return profiles, nil
}

func (m *memStore) mutate(userID primitive.ObjectID, fn func(*models.User)) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[userID]
	if !ok {
		return mongo.ErrNoDocuments
	}
	fn(u)
	return nil
}

// testRouter wires the real services and controllers over the fake store,
// mirroring the route setup in main.
func testRouter(store services.UserStore) (*gin.Engine, *services.TokenManager) {
	gin.SetMode(gin.TestMode)

	tokens := services.NewTokenManager("test-secret", time.Hour)
	authService := services.NewAuthService(store, tokens)
	userService := services.NewUserService(store)

	authController := NewAuthController(authService)
	userController := NewUserController(userService)

	r := gin.New()
	api := r.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/register", authController.Register)
	auth.POST("/login", authController.Login)
	auth.POST("/logout", authController.Logout)
	auth.GET("/me", middleware.AuthMiddleware(tokens), authController.Me)

	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(tokens))

	users := protected.Group("/users")
	users.GET("/favorites", userController.ListFavorites)
	users.POST("/favorites", userController.AddFavorite)
	users.DELETE("/favorites/:movieID", userController.RemoveFavorite)
	users.GET("/watchlist", userController.ListWatchlist)
	users.POST("/watchlist", userController.AddToWatchlist)
	users.DELETE("/watchlist/:movieID", userController.RemoveFromWatchlist)
	users.GET("/ratings", userController.ListRatings)
	users.POST("/ratings", userController.RateMovie)
	users.DELETE("/ratings/:movieID", userController.RemoveRating)
	users.GET("/following", userController.ListFollowing)
	users.GET("/followers", userController.ListFollowers)
	users.POST("/:id/follow", userController.Follow)
	users.DELETE("/:id/follow", userController.Unfollow)
	users.GET("/:id", userController.GetProfile)
	users.DELETE("/me", userController.DeleteAccount)

	return r, tokens
}
