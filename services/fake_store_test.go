package services

import (
	"context"
	"sync"

	"movie-discovery-backend/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// fakeUserStore is an in-memory UserStore used across the service tests.
type fakeUserStore struct {
	mu    sync.Mutex
	users map[primitive.ObjectID]*models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[primitive.ObjectID]*models.User)}
}

func (f *fakeUserStore) CreateUser(_ context.Context, user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	copied := *user
	f.users[user.ID] = &copied
	return nil
}

func (f *fakeUserStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStore) FindByUsername(_ context.Context, username string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Username == username {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	copied := *u
	return &copied, nil
}

func (f *fakeUserStore) DeleteUser(_ context.Context, id primitive.ObjectID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[id]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(f.users, id)
	return nil
}

func (f *fakeUserStore) AddFavorite(_ context.Context, userID primitive.ObjectID, movieID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[userID]
	if !ok {
		return mongo.ErrNoDocuments
	}
	for _, id := range u.Favorites {
		if id == movieID {
			return nil
		}
	}
	u.Favorites = append(u.Favorites, movieID)
	return nil
}

func (f *fakeUserStore) RemoveFavorite(_ context.Context, userID primitive.ObjectID, movieID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[userID]
	if !ok {
		return mongo.ErrNoDocuments
	}
	out := u.Favorites[:0]
	for _, id := range u.Favorites {
		if id != movieID {
			out = append(out, id)
		}
	}
	u.Favorites = out
	return nil
}

func (f *fakeUserStore) AddWatchlistEntry(_ context.Context, userID primitive.ObjectID, entry models.WatchlistEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[userID]
	if !ok {
		return mongo.ErrNoDocuments
	}
	for _, e := range u.Watchlist {
		if e.MovieID == entry.MovieID {
			return nil
		}
	}
	u.Watchlist = append(u.Watchlist, entry)
	return nil
}

func (f *fakeUserStore) RemoveWatchlistEntry(_ context.Context, userID primitive.ObjectID, movieID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[userID]
	if !ok {
		return mongo.ErrNoDocuments
	}
	out := u.Watchlist[:0]
	for _, e := range u.Watchlist {
		if e.MovieID != movieID {
			out = append(out, e)
		}
	}
	u.Watchlist = out
	return nil
}

func (f *fakeUserStore) UpsertRating(_ context.Context, userID primitive.ObjectID, entry models.RatingEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[userID]
	if !ok {
		return mongo.ErrNoDocuments
	}
	for i, e := range u.Ratings {
		if e.MovieID == entry.MovieID {
			u.Ratings[i] = entry
			return nil
		}
	}
	u.Ratings = append(u.Ratings, entry)
	return nil
}

func (f *fakeUserStore) RemoveRating(_ context.Context, userID primitive.ObjectID, movieID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[userID]
	if !ok {
		return mongo.ErrNoDocuments
	}
	out := u.Ratings[:0]
	for _, e := range u.Ratings {
		if e.MovieID != movieID {
			out = append(out, e)
		}
	}
	u.Ratings = out
	return nil
}

func (f *fakeUserStore) Follow(_ context.Context, followerID, followeeID primitive.ObjectID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	follower, ok := f.users[followerID]
	if !ok {
		return mongo.ErrNoDocuments
	}
	followee, ok := f.users[followeeID]
	if !ok {
		return mongo.ErrNoDocuments
	}
	follower.Following = appendIDOnce(follower.Following, followeeID)
	followee.Followers = appendIDOnce(followee.Followers, followerID)
	return nil
}

func (f *fakeUserStore) Unfollow(_ context.Context, followerID, followeeID primitive.ObjectID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	follower, ok := f.users[followerID]
	if !ok {
		return mongo.ErrNoDocuments
	}
	follower.Following = removeID(follower.Following, followeeID)
	if followee, ok := f.users[followeeID]; ok {
		followee.Followers = removeID(followee.Followers, followerID)
	}
	return nil
}

func (f *fakeUserStore) FindProfiles(_ context.Context, ids []primitive.ObjectID) ([]models.PublicProfile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	profiles := make([]models.PublicProfile, 0, len(ids))
	for _, id := range ids {
		if u, ok := f.users[id]; ok {
			profiles = append(profiles, u.Public())
		}
	}
	return profiles, nil
}

func appendIDOnce(ids []primitive.ObjectID, id primitive.ObjectID) []primitive.ObjectID {
	for _, existing := range ids {
		if existing == id {
			return ids
		}
	}
	return append(ids, id)
}

func removeID(ids []primitive.ObjectID, id primitive.ObjectID) []primitive.ObjectID {
	out := ids[:0]
	for _, existing := range ids {
		if existing != id {
			out = append(out, existing)
		}
	}
	return out
}
