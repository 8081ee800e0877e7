package api

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	app_errors "portfolio/backend/internal/errors"
	"portfolio/backend/internal/model"

	"github.com/go-playground/validator/v10"
)

// This file provides a centralized, singleton-based validation helper for API
// request bodies. Using a singleton for the validator is a performance best
// practice, as it avoids the costly process of recreating the validator
// instance on every request.

var (
	// validate holds the single instance of the validator.
	validate *validator.Validate
	// once ensures that the validator is initialized only one time.
	once sync.Once
)

// getInstance uses sync.Once to safely initialize and return the validator singleton.
func getInstance() *validator.Validate {
	once.Do(func() {
		validate = validator.New()
	})
	return validate
}

// validateRequest checks a given payload struct against the validation rules
// defined in its field tags (e.g., `validate:"required,email"`).
// If validation fails, it returns a wrapped `app_errors.ErrValidation` with a
// user-friendly, detailed message.
func validateRequest(payload interface{}) error {
	v := getInstance()
	err := v.Struct(payload)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("%w: an unexpected error occurred during validation: %s", app_errors.ErrValidation, err.Error())
	}

	var errorMessages []string
	for _, fieldErr := range validationErrors {
		errMsg := fmt.Sprintf("Field '%s' failed on the '%s' tag", fieldErr.Field(), fieldErr.Tag())
		errorMessages = append(errorMessages, errMsg)
	}

	return fmt.Errorf("%w: %s", app_errors.ErrValidation, strings.Join(errorMessages, "; "))
}

// ChatValidator normalizes and validates inbound chat requests against the
// configured size and shape limits.
type ChatValidator struct {
	maxInputLength int
	maxTurns       int
	maxEntryLength int
}

func NewChatValidator(maxInputLength, maxTurns, maxEntryLength int) *ChatValidator {
	return &ChatValidator{
		maxInputLength: maxInputLength,
		maxTurns:       maxTurns,
		maxEntryLength: maxEntryLength,
	}
}

// Validate normalizes the request in place (trims the message, drops any
// client-supplied system entries) and then applies the shape rules.
//
// History validation is all-or-nothing: an oversized or malformed entry fails
// the whole request. Truncation to the turn budget happens later, in the
// orchestrator, against history that has already passed here.
func (cv *ChatValidator) Validate(req *model.ChatRequest) error {
	req.Message = strings.TrimSpace(req.Message)

	if req.Message == "" || len(req.Message) > cv.maxInputLength {
		return fmt.Errorf("%w: message must be between 1 and %d characters", app_errors.ErrValidation, cv.maxInputLength)
	}

	// System entries are never accepted from the client; the system prompt is
	// built server-side from the knowledge base.
	history := req.ConversationHistory[:0]
	for _, entry := range req.ConversationHistory {
		if entry.Role == "system" {
			continue
		}
		history = append(history, entry)
	}
	req.ConversationHistory = history

	if len(req.ConversationHistory) > 2*cv.maxTurns {
		return fmt.Errorf("%w: conversation history exceeds %d entries", app_errors.ErrValidation, 2*cv.maxTurns)
	}

	v := getInstance()
	for i, entry := range req.ConversationHistory {
		if err := v.Var(entry.Role, "oneof=user assistant"); err != nil {
			return fmt.Errorf("%w: history entry %d has invalid role %q", app_errors.ErrValidation, i, entry.Role)
		}
		if entry.Content == "" || len(entry.Content) > cv.maxEntryLength {
			return fmt.Errorf("%w: history entry %d content must be between 1 and %d characters", app_errors.ErrValidation, i, cv.maxEntryLength)
		}
	}

	return nil
}
