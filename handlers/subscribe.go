package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"naijastream/services/subscribe"
)

type subscriberStore interface {
	Add(email string) (subscribe.Subscriber, error)
}

var _ subscriberStore = (*subscribe.Store)(nil)

type SubscribeHandler struct {
	Store subscriberStore
}

func NewSubscribeHandler(store subscriberStore) *SubscribeHandler {
	return &SubscribeHandler{Store: store}
}

func (h *SubscribeHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"status": "invalid"})
		return
	}
	if _, err := h.Store.Add(req.Email); err != nil {
		if errors.Is(err, subscribe.ErrInvalidEmail) {
			writeJSON(w, http.StatusBadRequest, map[string]string{"status": "invalid"})
			return
		}
		log.Printf("[subscribe] store failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to record subscription.")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
