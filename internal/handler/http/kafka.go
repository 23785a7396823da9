package http

import (
	"encoding/json"
	"net/http"

	"github.com/etorres/go-api-scaffold/internal/logger"
	"github.com/etorres/go-api-scaffold/models"
)

func (h *Handler) publishMessage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var message models.KafkaMessage
	if err := json.NewDecoder(r.Body).Decode(&message); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.EventService.PublishMessage(ctx, message); err != nil {
		log.Err(err).Msg("error occurred during publishing message")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusAccepted)
}
