package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	app_errors "portfolio/backend/internal/errors"
	"portfolio/backend/internal/interfaces"
	"portfolio/backend/internal/model"
)

// ChatHandler handles HTTP requests for the chat assistant.
type ChatHandler struct {
	service   interfaces.ChatService
	validator *ChatValidator
	enabled   bool
}

func NewChatHandler(svc interfaces.ChatService, validator *ChatValidator, enabled bool) *ChatHandler {
	return &ChatHandler{service: svc, validator: validator, enabled: enabled}
}

// HandleChat godoc
// @Summary      Ask the portfolio assistant
// @Description  Sends a visitor message (plus optional conversation history) to the AI assistant.
// @Tags         Chat
// @Accept       json
// @Produce      json
// @Param        chatRequest  body      model.ChatRequest  true  "Message and history"
// @Success      200          {object}  model.ChatResponse
// @Failure      400          {object}  ErrorResponse
// @Failure      429          {object}  ErrorResponse
// @Failure      503          {object}  ErrorResponse
// @Router       /api/chat [post]
func (h *ChatHandler) HandleChat(w http.ResponseWriter, r *http.Request) {
	if !h.enabled {
		respondWithError(w, app_errors.ErrChatDisabled)
		return
	}

	var req model.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, fmt.Errorf("%w: invalid request body", app_errors.ErrValidation))
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		respondWithError(w, err)
		return
	}

	resp, err := h.service.ProcessMessage(r.Context(), &req, ClientIdentifier(r))
	if err != nil {
		respondWithError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, resp)
}
