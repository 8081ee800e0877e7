package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	app_errors "portfolio/backend/internal/errors"
	"portfolio/backend/internal/interfaces"
	"portfolio/backend/internal/model"
)

// ContactRequest is the DTO for contact form submissions. It includes
// validation tags to enforce business rules at the API boundary.
type ContactRequest struct {
	Name    string `json:"name" validate:"required,max=120"`
	Email   string `json:"email" validate:"required,email,max=254"`
	Subject string `json:"subject" validate:"max=200"`
	Message string `json:"message" validate:"required,max=5000"`
}

// ContactHandler handles HTTP requests for the contact form.
type ContactHandler struct {
	service interfaces.ContactService
}

func NewContactHandler(svc interfaces.ContactService) *ContactHandler {
	return &ContactHandler{service: svc}
}

// HandleSubmit godoc
// @Summary      Submit the contact form
// @Description  Stores a message left through the site's contact form.
// @Tags         Contact
// @Accept       json
// @Produce      json
// @Param        contactRequest  body      ContactRequest  true  "Contact details"
// @Success      201             {object}  StatusResponse
// @Failure      400             {object}  ErrorResponse
// @Router       /api/contact [post]
func (h *ContactHandler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	var req ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, fmt.Errorf("%w: invalid request body", app_errors.ErrValidation))
		return
	}

	if err := validateRequest(req); err != nil {
		respondWithError(w, err)
		return
	}

	submission := &model.ContactSubmission{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}
	if err := h.service.Submit(r.Context(), submission); err != nil {
		respondWithError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, StatusResponse{Success: true})
}
