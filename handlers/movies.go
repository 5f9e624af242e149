package handlers

import (
	"context"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"naijastream/models"
	"naijastream/services/catalog"
)

// catalogService is the aggregation surface the movie endpoints need.
type catalogService interface {
	IsConfigured() bool
	Trending(context.Context) ([]models.Movie, error)
	NewLocal(context.Context) ([]models.Movie, error)
	CheapestPicks(context.Context) ([]models.Movie, error)
	LowDataPicks(context.Context) ([]models.Movie, error)
	Search(context.Context, string) ([]models.Movie, error)
	MovieByID(context.Context, int64) (*models.Movie, error)
}

var _ catalogService = (*catalog.Service)(nil)

type MovieHandler struct {
	Service catalogService
}

func NewMovieHandler(s catalogService) *MovieHandler {
	return &MovieHandler{Service: s}
}

func (h *MovieHandler) Trending(w http.ResponseWriter, r *http.Request) {
	h.feed(w, r, h.Service.Trending, "Failed to load trending movies.")
}

func (h *MovieHandler) New(w http.ResponseWriter, r *http.Request) {
	h.feed(w, r, h.Service.NewLocal, "Failed to load new Afro films.")
}

func (h *MovieHandler) Cheapest(w http.ResponseWriter, r *http.Request) {
	h.feed(w, r, h.Service.CheapestPicks, "Failed to load cheapest picks.")
}

func (h *MovieHandler) LowData(w http.ResponseWriter, r *http.Request) {
	h.feed(w, r, h.Service.LowDataPicks, "Failed to load low-data picks.")
}

func (h *MovieHandler) Search(w http.ResponseWriter, r *http.Request) {
	if !h.requireCredential(w) {
		return
	}
	movies, err := h.Service.Search(r.Context(), r.URL.Query().Get("query"))
	if err != nil {
		log.Printf("[movies] search failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to search movies.")
		return
	}
	writeJSON(w, http.StatusOK, movies)
}

func (h *MovieHandler) ByID(w http.ResponseWriter, r *http.Request) {
	if !h.requireCredential(w) {
		return
	}
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "Invalid movie id.")
		return
	}
	movie, err := h.Service.MovieByID(r.Context(), id)
	if err != nil {
		log.Printf("[movies] detail failed id=%d: %v", id, err)
		writeError(w, http.StatusInternalServerError, "Failed to load movie details.")
		return
	}
	writeJSON(w, http.StatusOK, movie)
}

// feed serves one named movie list. The backend refuses to serve without an
// upstream credential; it is the client library's job to degrade to sample
// data, never the server's.
func (h *MovieHandler) feed(w http.ResponseWriter, r *http.Request, fetch func(context.Context) ([]models.Movie, error), failMsg string) {
	if !h.requireCredential(w) {
		return
	}
	movies, err := fetch(r.Context())
	if err != nil {
		log.Printf("[movies] feed failed: %v", err)
		writeError(w, http.StatusInternalServerError, failMsg)
		return
	}
	writeJSON(w, http.StatusOK, movies)
}

func (h *MovieHandler) requireCredential(w http.ResponseWriter) bool {
	if h.Service.IsConfigured() {
		return true
	}
	writeError(w, http.StatusBadRequest, "TMDB_API_KEY is not configured.")
	return false
}
