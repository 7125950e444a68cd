package data_access

import (
	"context"
	"time"

	"movie-discovery-backend/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type UserRepository struct {
	db         *MongoDB
	collection *mongo.Collection
}

func NewUserRepository(db *MongoDB) *UserRepository {
	return &UserRepository{
		db:         db,
		collection: db.Collection("users"),
	}
}

func (r *UserRepository) CreateUser(ctx context.Context, user *models.User) error {
	result, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		return err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid
	}
	return nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := r.collection.FindOne(ctx, bson.M{"username": username}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var user models.User
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) DeleteUser(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// AddFavorite appends the movie id unless it is already present.
func (r *UserRepository) AddFavorite(ctx context.Context, userID primitive.ObjectID, movieID int64) error {
	update := bson.M{
		"$addToSet": bson.M{"favorites": movieID},
		"$set":      bson.M{"updated_at": time.Now()},
	}
	return r.updateUser(ctx, userID, update)
}

func (r *UserRepository) RemoveFavorite(ctx context.Context, userID primitive.ObjectID, movieID int64) error {
	update := bson.M{
		"$pull": bson.M{"favorites": movieID},
		"$set":  bson.M{"updated_at": time.Now()},
	}
	return r.updateUser(ctx, userID, update)
}

// AddWatchlistEntry inserts the entry; a second add of the same movie id is a
// no-op so the timestamp of the original add is preserved.
func (r *UserRepository) AddWatchlistEntry(ctx context.Context, userID primitive.ObjectID, entry models.WatchlistEntry) error {
	filter := bson.M{
		"_id":                userID,
		"watchlist.movie_id": bson.M{"$ne": entry.MovieID},
	}
	update := bson.M{
		"$push": bson.M{"watchlist": entry},
		"$set":  bson.M{"updated_at": time.Now()},
	}
	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		// Either the user does not exist or the entry is already present;
		// distinguish the two so unknown users still surface as not found.
		var user models.User
		err := r.collection.FindOne(ctx, bson.M{"_id": userID}).Decode(&user)
		if err == mongo.ErrNoDocuments {
			return mongo.ErrNoDocuments
		}
		return err
	}
	return nil
}

func (r *UserRepository) RemoveWatchlistEntry(ctx context.Context, userID primitive.ObjectID, movieID int64) error {
	update := bson.M{
		"$pull": bson.M{"watchlist": bson.M{"movie_id": movieID}},
		"$set":  bson.M{"updated_at": time.Now()},
	}
	return r.updateUser(ctx, userID, update)
}

// UpsertRating replaces an existing rating for the movie or appends a new
// one. The existing-entry case is matched in the filter so the decision rides
// on MatchedCount; the document-level updated_at write must not influence it.
func (r *UserRepository) UpsertRating(ctx context.Context, userID primitive.ObjectID, entry models.RatingEntry) error {
	filter := bson.M{
		"_id":              userID,
		"ratings.movie_id": entry.MovieID,
	}
	update := bson.M{
		"$set": bson.M{
			"ratings.$.score":    entry.Score,
			"ratings.$.rated_at": entry.RatedAt,
			"updated_at":         time.Now(),
		},
	}
	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount > 0 {
		return nil
	}

	// No document held a rating for this movie; append a fresh entry. An
	// unknown user surfaces here as ErrNoDocuments.
	push := bson.M{
		"$push": bson.M{"ratings": entry},
		"$set":  bson.M{"updated_at": time.Now()},
	}
	return r.updateUser(ctx, userID, push)
}

func (r *UserRepository) RemoveRating(ctx context.Context, userID primitive.ObjectID, movieID int64) error {
	update := bson.M{
		"$pull": bson.M{"ratings": bson.M{"movie_id": movieID}},
		"$set":  bson.M{"updated_at": time.Now()},
	}
	return r.updateUser(ctx, userID, update)
}

// Follow records the edge on both user documents. Per-request atomicity is per
// document; the reverse edge is written second and not rolled back on failure.
func (r *UserRepository) Follow(ctx context.Context, followerID, followeeID primitive.ObjectID) error {
	update := bson.M{
		"$addToSet": bson.M{"following": followeeID},
		"$set":      bson.M{"updated_at": time.Now()},
	}
	if err := r.updateUser(ctx, followerID, update); err != nil {
		return err
	}
	reverse := bson.M{
		"$addToSet": bson.M{"followers": followerID},
		"$set":      bson.M{"updated_at": time.Now()},
	}
	return r.updateUser(ctx, followeeID, reverse)
}

func (r *UserRepository) Unfollow(ctx context.Context, followerID, followeeID primitive.ObjectID) error {
	update := bson.M{
		"$pull": bson.M{"following": followeeID},
		"$set":  bson.M{"updated_at": time.Now()},
	}
	if err := r.updateUser(ctx, followerID, update); err != nil {
		return err
	}
	reverse := bson.M{
		"$pull": bson.M{"followers": followerID},
		"$set":  bson.M{"updated_at": time.Now()},
	}
	return r.updateUser(ctx, followeeID, reverse)
}

// FindProfiles resolves a list of user ids to public profiles.
func (r *UserRepository) FindProfiles(ctx context.Context, ids []primitive.ObjectID) ([]models.PublicProfile, error) {
	if len(ids) == 0 {
		return []models.PublicProfile{}, nil
	}

	cursor, err := r.collection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err = cursor.All(ctx, &users); err != nil {
		return nil, err
	}

	profiles := make([]models.PublicProfile, 0, len(users))
	for i := range users {
		profiles = append(profiles, users[i].Public())
	}
	return profiles, nil
}

func (r *UserRepository) updateUser(ctx context.Context, userID primitive.ObjectID, update bson.M) error {
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": userID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
