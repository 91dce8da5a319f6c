package request

type OTTPlatformPayload struct {
	Name string `json:"name" validate:"required"`
	URL  string `json:"url" validate:"required"`
	Logo string `json:"logo"`
}

// CreateMovieRequest carries a whole movie document. imdb_id uniqueness
// is not checked at write time; duplicates are the caller's problem.
type CreateMovieRequest struct {
	ImdbID       string               `json:"imdb_id" validate:"required"`
	Title        string               `json:"title" validate:"required,max=400"`
	ReleaseDate  string               `json:"release_date"`
	TrailerLink  string               `json:"trailer_link"`
	Genres       []string             `json:"genres"`
	Poster       string               `json:"poster"`
	Backdrops    []string             `json:"backdrops"`
	OTTPlatforms []OTTPlatformPayload `json:"ott_platforms" validate:"omitempty,dive"`
}

// UpdateMovieRequest replaces the stored document wholesale, review id
// list included.
type UpdateMovieRequest struct {
	ID           string               `json:"id" validate:"required,uuid4"`
	ImdbID       string               `json:"imdb_id" validate:"required"`
	Title        string               `json:"title" validate:"required,max=400"`
	ReleaseDate  string               `json:"release_date"`
	TrailerLink  string               `json:"trailer_link"`
	Genres       []string             `json:"genres"`
	Poster       string               `json:"poster"`
	Backdrops    []string             `json:"backdrops"`
	ReviewIDs    []string             `json:"review_ids"`
	OTTPlatforms []OTTPlatformPayload `json:"ott_platforms" validate:"omitempty,dive"`
}
