package models

// TMDBMovie represents a movie as returned by the TMDB API. Responses are
// passed through to clients largely unmodified.
type TMDBMovie struct {
	ID           int64  `json:"id"`
	Title        string `json:"title"`
	Overview     string `json:"overview"`
	ReleaseDate  string `json:"release_date"`
	PosterPath   string `json:"poster_path"`
	BackdropPath string `json:"backdrop_path"`
	Genres       []struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	} `json:"genres,omitempty"`
	Runtime     int     `json:"runtime,omitempty"`
	VoteAverage float64 `json:"vote_average"`
	VoteCount   int64   `json:"vote_count"`
	Popularity  float64 `json:"popularity"`
}

// TMDBPage is the paged list shape TMDB uses for search and recommendations.
type TMDBPage struct {
	Page         int         `json:"page"`
	Results      []TMDBMovie `json:"results"`
	TotalPages   int         `json:"total_pages"`
	TotalResults int         `json:"total_results"`
}

// TMDBVideo is one entry from the videos endpoint (trailers, teasers, clips).
type TMDBVideo struct {
	ID       string `json:"id"`
	Key      string `json:"key"`
	Name     string `json:"name"`
	Site     string `json:"site"`
	Type     string `json:"type"`
	Official bool   `json:"official"`
}

type TMDBVideoList struct {
	ID      int64       `json:"id"`
	Results []TMDBVideo `json:"results"`
}

// TMDBError is the error body TMDB returns on non-2xx responses.
type TMDBError struct {
	StatusCode    int    `json:"status_code"`
	StatusMessage string `json:"status_message"`
}
