package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	// User information
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Username  string             `bson:"username" json:"username"`
	Email     string             `bson:"email" json:"email"`
	Password  string             `bson:"password" json:"-"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`

	// Movie references - the local store keeps only TMDB ids, never movie records
	Favorites []int64          `bson:"favorites" json:"favorites"`
	Watchlist []WatchlistEntry `bson:"watchlist" json:"watchlist"`
	Ratings   []RatingEntry    `bson:"ratings" json:"ratings"`

	// Follow graph
	Following []primitive.ObjectID `bson:"following" json:"following"`
	Followers []primitive.ObjectID `bson:"followers" json:"followers"`
}

type WatchlistEntry struct {
	MovieID int64     `bson:"movie_id" json:"movie_id"`
	AddedAt time.Time `bson:"added_at" json:"added_at"`
}

type RatingEntry struct {
	MovieID int64     `bson:"movie_id" json:"movie_id"`
	Score   int       `bson:"score" json:"score"`
	RatedAt time.Time `bson:"rated_at" json:"rated_at"`
}

// PublicProfile is the view of a user safe to return to other users.
type PublicProfile struct {
	ID        primitive.ObjectID `json:"id"`
	Username  string             `json:"username"`
	Email     string             `json:"email"`
	CreatedAt time.Time          `json:"created_at"`
}

func (u *User) Public() PublicProfile {
	return PublicProfile{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}
