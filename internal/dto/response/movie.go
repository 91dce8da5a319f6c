package response

import (
	"movie-review/internal/data/entity"
)

type MovieResponse struct {
	ID           string               `json:"id"`
	ImdbID       string               `json:"imdb_id"`
	Title        string               `json:"title"`
	ReleaseDate  string               `json:"release_date"`
	TrailerLink  string               `json:"trailer_link"`
	Genres       []string             `json:"genres"`
	Poster       string               `json:"poster"`
	Backdrops    []string             `json:"backdrops"`
	ReviewIDs    []string             `json:"review_ids"`
	OTTPlatforms []entity.OTTPlatform `json:"ott_platforms"`
}

// Helper converter
func MovieToResponse(movie *entity.Movie) MovieResponse {
	return MovieResponse{
		ID:           movie.ID.String(),
		ImdbID:       movie.ImdbID,
		Title:        movie.Title,
		ReleaseDate:  movie.ReleaseDate,
		TrailerLink:  movie.TrailerLink,
		Genres:       movie.Genres,
		Poster:       movie.Poster,
		Backdrops:    movie.Backdrops,
		ReviewIDs:    movie.ReviewIDs,
		OTTPlatforms: movie.OTTPlatforms,
	}
}
