package wire

import (
	"movie-review/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// Movie routes carry no auth, matching the upstream API contract.
// GET /api/v1/movies/{id} addresses by imdbId; DELETE addresses by the
// storage id.
func wireMovie(r chi.Router, movieHandler *adaptor.MovieHandler) {
	r.Get("/api/v1/movies", movieHandler.GetAllMovies)
	r.Get("/api/v1/movies/{id}", movieHandler.GetMovieByImdbID)
	r.Post("/api/v1/movies", movieHandler.CreateMovie)
	r.Put("/api/v1/movies", movieHandler.UpdateMovie)
	r.Delete("/api/v1/movies/{id}", movieHandler.DeleteMovie)
}
