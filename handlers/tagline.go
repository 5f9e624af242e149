package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"naijastream/services/tagline"
)

type taglineGenerator interface {
	IsConfigured() bool
	Generate(ctx context.Context, title, description string) (string, error)
}

var _ taglineGenerator = (*tagline.Service)(nil)

type TaglineHandler struct {
	Service taglineGenerator
}

func NewTaglineHandler(s taglineGenerator) *TaglineHandler {
	return &TaglineHandler{Service: s}
}

// Generate always answers with some tagline text: the model's output when
// available, a canned line otherwise. It never surfaces an error body.
func (h *TaglineHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil ||
		strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Description) == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"tagline": tagline.FallbackTagline})
		return
	}
	if !h.Service.IsConfigured() {
		writeJSON(w, http.StatusOK, map[string]string{"tagline": tagline.FallbackTagline})
		return
	}

	text, err := h.Service.Generate(r.Context(), req.Title, req.Description)
	if err != nil {
		log.Printf("[tagline] generation failed: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"tagline": tagline.ErrorTagline})
		return
	}
	if text == "" {
		text = tagline.FallbackTagline
	}
	writeJSON(w, http.StatusOK, map[string]string{"tagline": text})
}
