package services

import (
	"context"
	"time"

	"movie-discovery-backend/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	userStore UserStore
	tokens    *TokenManager
}

func NewAuthService(userStore UserStore, tokens *TokenManager) *AuthService {
	return &AuthService{
		userStore: userStore,
		tokens:    tokens,
	}
}

// Register creates a user with a bcrypt-hashed password and returns a signed
// token with the public user fields. The same ErrUserExists covers both a
// taken email and a taken username so neither field can be enumerated apart.
func (s *AuthService) Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
	if existing, err := s.userStore.FindByEmail(ctx, req.Email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, ErrUserExists
	}
	if existing, err := s.userStore.FindByUsername(ctx, req.Username); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, ErrUserExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &models.User{
		Username:  req.Username,
		Email:     req.Email,
		Password:  string(hashedPassword),
		CreatedAt: now,
		UpdatedAt: now,
		Favorites: []int64{},
		Watchlist: []models.WatchlistEntry{},
		Ratings:   []models.RatingEntry{},
		Following: []primitive.ObjectID{},
		Followers: []primitive.ObjectID{},
	}

	if err := s.userStore.CreateUser(ctx, user); err != nil {
		// A concurrent register can slip past the lookups; the unique index
		// still rejects it.
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrUserExists
		}
		return nil, err
	}

	token, err := s.tokens.GenerateToken(user.ID.Hex(), user.Username)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{Token: token, User: user.Public()}, nil
}

// Login verifies credentials and issues a fresh token. Unknown email and
// wrong password return the identical ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	user, err := s.userStore.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateToken(user.ID.Hex(), user.Username)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{Token: token, User: user.Public()}, nil
}

// CurrentUser resolves the authenticated user id from token claims to the
// stored profile. Used by the session bootstrap check on the client.
func (s *AuthService) CurrentUser(ctx context.Context, userID string) (*models.User, error) {
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
