package models

type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	Token string        `json:"token"`
	User  PublicProfile `json:"user"`
}

type AddMovieRequest struct {
	MovieID int64 `json:"movie_id" binding:"required,gt=0"`
}

type RateMovieRequest struct {
	MovieID int64 `json:"movie_id" binding:"required,gt=0"`
	Score   int   `json:"score" binding:"required,min=1,max=5"`
}
