package adaptor

import (
	"encoding/json"
	"net/http"

	"movie-review/internal/data/entity"
	"movie-review/internal/dto/request"
	"movie-review/internal/dto/response"
	"movie-review/internal/usecase"
	"movie-review/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type MovieHandler struct {
	service usecase.MovieService
	log     *zap.Logger
}

func NewMovieHandler(service usecase.MovieService, log *zap.Logger) *MovieHandler {
	return &MovieHandler{
		service: service,
		log:     log.With(zap.String("handler", "movie")),
	}
}

// GetAllMovies handles GET /api/v1/movies (public)
func (h *MovieHandler) GetAllMovies(w http.ResponseWriter, r *http.Request) {
	movies, err := h.service.GetAll(r.Context())
	if err != nil {
		respondError(w, h.log, err, "get all movies")
		return
	}

	responses := make([]response.MovieResponse, len(movies))
	for i, movie := range movies {
		responses[i] = response.MovieToResponse(movie)
	}

	utils.ResponseSuccess(w, "success", responses)
}

// GetMovieByImdbID handles GET /api/v1/movies/{id} (public)
func (h *MovieHandler) GetMovieByImdbID(w http.ResponseWriter, r *http.Request) {
	imdbID := chi.URLParam(r, "id")
	if imdbID == "" {
		utils.ResponseBadRequest(w, "imdb ID is required", nil)
		return
	}

	movie, err := h.service.GetByImdbID(r.Context(), imdbID)
	if err != nil {
		respondError(w, h.log, err, "get movie")
		return
	}

	utils.ResponseSuccess(w, "success", response.MovieToResponse(movie))
}

// CreateMovie handles POST /api/v1/movies (public, no auth in this API)
func (h *MovieHandler) CreateMovie(w http.ResponseWriter, r *http.Request) {
	var req request.CreateMovieRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	movie := &entity.Movie{
		ImdbID:       req.ImdbID,
		Title:        req.Title,
		ReleaseDate:  req.ReleaseDate,
		TrailerLink:  req.TrailerLink,
		Genres:       req.Genres,
		Poster:       req.Poster,
		Backdrops:    req.Backdrops,
		OTTPlatforms: toOTTPlatforms(req.OTTPlatforms),
	}

	created, err := h.service.Create(r.Context(), movie)
	if err != nil {
		respondError(w, h.log, err, "create movie")
		return
	}

	utils.ResponseCreated(w, "success", response.MovieToResponse(created))
}

// UpdateMovie handles PUT /api/v1/movies (public, full document replace)
func (h *MovieHandler) UpdateMovie(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateMovieRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	movieID, err := uuid.Parse(req.ID)
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid movie ID", nil)
		return
	}

	movie := &entity.Movie{
		ID:           movieID,
		ImdbID:       req.ImdbID,
		Title:        req.Title,
		ReleaseDate:  req.ReleaseDate,
		TrailerLink:  req.TrailerLink,
		Genres:       req.Genres,
		Poster:       req.Poster,
		Backdrops:    req.Backdrops,
		ReviewIDs:    req.ReviewIDs,
		OTTPlatforms: toOTTPlatforms(req.OTTPlatforms),
	}

	updated, err := h.service.Update(r.Context(), movie)
	if err != nil {
		respondError(w, h.log, err, "update movie")
		return
	}

	utils.ResponseSuccess(w, "success", response.MovieToResponse(updated))
}

// DeleteMovie handles DELETE /api/v1/movies/{id} (public)
func (h *MovieHandler) DeleteMovie(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		utils.ResponseBadRequest(w, "Movie ID is required", nil)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		respondError(w, h.log, err, "delete movie")
		return
	}

	utils.ResponseNoContent(w)
}

func toOTTPlatforms(payloads []request.OTTPlatformPayload) []entity.OTTPlatform {
	if payloads == nil {
		return nil
	}
	platforms := make([]entity.OTTPlatform, len(payloads))
	for i, p := range payloads {
		platforms[i] = entity.OTTPlatform{Name: p.Name, URL: p.URL, Logo: p.Logo}
	}
	return platforms
}
