package contact

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/acmenews/newschat/pkg/utils"
)

const (
	thankYouMessage = "<b>Thank you!</b> We've received your message, and we will be responding shortly."
	failureMessage  = "<b>Message Send Failure!</b> Please try again later."
)

// Notifier delivers a contact-form submission to whoever answers them.
type Notifier interface {
	Notify(ctx context.Context, email, question string) error
}

// LogNotifier records submissions in the server log. It stands in when no
// delivery channel is configured.
type LogNotifier struct {
	Recipient string
}

// Notify logs the submission.
func (n LogNotifier) Notify(_ context.Context, email, question string) error {
	log.Printf("[contact] submission for %s, from: %s, message: %s", n.Recipient, email, question)
	return nil
}

// Handler serves the website contact form endpoint.
type Handler struct {
	notifier Notifier
}

// New creates the contact handler.
func New(notifier Notifier) *Handler {
	return &Handler{notifier: notifier}
}

// RegisterRoutes registers the contact routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/contact", h.handleSubmit)
}

// handleSubmit accepts {email, question} and reports delivery with a
// user-facing message. Delivery failures still answer 200 so the form can
// show the failure text instead of a transport error page.
func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Email    string `json:"email"`
		Question string `json:"question"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	email := strings.TrimSpace(payload.Email)
	question := strings.TrimSpace(payload.Question)
	if email == "" || question == "" {
		utils.RespondError(w, http.StatusBadRequest, "email and question are required")
		return
	}

	if err := h.notifier.Notify(r.Context(), email, question); err != nil {
		log.Printf("[contact] notify failed: %v", err)
		utils.RespondJSON(w, http.StatusOK, map[string]string{"message": failureMessage})
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]string{"message": thankYouMessage})
}
