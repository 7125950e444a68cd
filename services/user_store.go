package services

import (
	"context"

	"movie-discovery-backend/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserStore is the persistence surface the services depend on. Implemented by
// data_access.UserRepository; tests substitute fakes.
type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	DeleteUser(ctx context.Context, id primitive.ObjectID) error

	AddFavorite(ctx context.Context, userID primitive.ObjectID, movieID int64) error
	RemoveFavorite(ctx context.Context, userID primitive.ObjectID, movieID int64) error
	AddWatchlistEntry(ctx context.Context, userID primitive.ObjectID, entry models.WatchlistEntry) error
	RemoveWatchlistEntry(ctx context.Context, userID primitive.ObjectID, movieID int64) error
	UpsertRating(ctx context.Context, userID primitive.ObjectID, entry models.RatingEntry) error
	RemoveRating(ctx context.Context, userID primitive.ObjectID, movieID int64) error
	Follow(ctx context.Context, followerID, followeeID primitive.ObjectID) error
	Unfollow(ctx context.Context, followerID, followeeID primitive.ObjectID) error
	FindProfiles(ctx context.Context, ids []primitive.ObjectID) ([]models.PublicProfile, error)
}
