package services

import (
	"context"
	"time"

	"movie-discovery-backend/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// UserService implements per-user favorites, watchlist, ratings and the
// follow graph. Every mutation acts on the authenticated user only; ids of
// other users appear solely as read-only lookups or follow targets.
type UserService struct {
	userStore UserStore
}

func NewUserService(userStore UserStore) *UserService {
	return &UserService{userStore: userStore}
}

func (s *UserService) GetProfile(ctx context.Context, userID string) (*models.PublicProfile, error) {
	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	profile := user.Public()
	return &profile, nil
}

func (s *UserService) DeleteAccount(ctx context.Context, userID string) error {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return ErrNotFound
	}
	if err := s.userStore.DeleteUser(ctx, oid); err != nil {
		if err == mongo.ErrNoDocuments {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *UserService) ListFavorites(ctx context.Context, userID string) ([]int64, error) {
	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Favorites == nil {
		return []int64{}, nil
	}
	return user.Favorites, nil
}

func (s *UserService) AddFavorite(ctx context.Context, userID string, movieID int64) error {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return ErrNotFound
	}
	return s.translate(s.userStore.AddFavorite(ctx, oid, movieID))
}

func (s *UserService) RemoveFavorite(ctx context.Context, userID string, movieID int64) error {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return ErrNotFound
	}
	return s.translate(s.userStore.RemoveFavorite(ctx, oid, movieID))
}

func (s *UserService) ListWatchlist(ctx context.Context, userID string) ([]models.WatchlistEntry, error) {
	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Watchlist == nil {
		return []models.WatchlistEntry{}, nil
	}
	return user.Watchlist, nil
}

func (s *UserService) AddToWatchlist(ctx context.Context, userID string, movieID int64) error {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return ErrNotFound
	}
	entry := models.WatchlistEntry{
		MovieID: movieID,
		AddedAt: time.Now(),
	}
	return s.translate(s.userStore.AddWatchlistEntry(ctx, oid, entry))
}

func (s *UserService) RemoveFromWatchlist(ctx context.Context, userID string, movieID int64) error {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return ErrNotFound
	}
	return s.translate(s.userStore.RemoveWatchlistEntry(ctx, oid, movieID))
}

func (s *UserService) ListRatings(ctx context.Context, userID string) ([]models.RatingEntry, error) {
	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Ratings == nil {
		return []models.RatingEntry{}, nil
	}
	return user.Ratings, nil
}

// RateMovie stores a score in [1,5], replacing any previous rating for the
// same movie.
func (s *UserService) RateMovie(ctx context.Context, userID string, movieID int64, score int) error {
	if score < 1 || score > 5 {
		return ErrInvalidRating
	}
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return ErrNotFound
	}
	entry := models.RatingEntry{
		MovieID: movieID,
		Score:   score,
		RatedAt: time.Now(),
	}
	return s.translate(s.userStore.UpsertRating(ctx, oid, entry))
}

func (s *UserService) RemoveRating(ctx context.Context, userID string, movieID int64) error {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return ErrNotFound
	}
	return s.translate(s.userStore.RemoveRating(ctx, oid, movieID))
}

func (s *UserService) Follow(ctx context.Context, userID, targetID string) error {
	follower, followee, err := s.followPair(userID, targetID)
	if err != nil {
		return err
	}

	// The target must exist before either edge is written
	target, err := s.userStore.FindByID(ctx, followee)
	if err != nil {
		return err
	}
	if target == nil {
		return ErrNotFound
	}

	return s.translate(s.userStore.Follow(ctx, follower, followee))
}

func (s *UserService) Unfollow(ctx context.Context, userID, targetID string) error {
	follower, followee, err := s.followPair(userID, targetID)
	if err != nil {
		return err
	}
	return s.translate(s.userStore.Unfollow(ctx, follower, followee))
}

func (s *UserService) ListFollowing(ctx context.Context, userID string) ([]models.PublicProfile, error) {
	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.userStore.FindProfiles(ctx, user.Following)
}

func (s *UserService) ListFollowers(ctx context.Context, userID string) ([]models.PublicProfile, error) {
	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.userStore.FindProfiles(ctx, user.Followers)
}

func (s *UserService) findUser(ctx context.Context, userID string) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrNotFound
	}
	user, err := s.userStore.FindByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return user, nil
}

func (s *UserService) followPair(userID, targetID string) (primitive.ObjectID, primitive.ObjectID, error) {
	follower, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return primitive.NilObjectID, primitive.NilObjectID, ErrNotFound
	}
	followee, err := primitive.ObjectIDFromHex(targetID)
	if err != nil {
		return primitive.NilObjectID, primitive.NilObjectID, ErrNotFound
	}
	if follower == followee {
		return primitive.NilObjectID, primitive.NilObjectID, ErrSelfFollow
	}
	return follower, followee, nil
}

func (s *UserService) translate(err error) error {
	if err == mongo.ErrNoDocuments {
		return ErrNotFound
	}
	return err
}
