package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/binaamart/storefront/internal/models"
)

// CreateContactMessageHandler accepts a contact-form submission. The message
// is stored; SMTP forwarding is best-effort and never fails the request.
func CreateContactMessageHandler(w http.ResponseWriter, r *http.Request) {
	var req ContactRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateContact(req)
	if len(validationErrors) > 0 {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(validationErrors)
		return
	}

	msg := models.ContactMessage{
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Subject:    req.Subject,
		Body:       req.Body,
		ReceivedAt: time.Now().Format(time.RFC3339),
	}
	stored, err := contactRepo.Create(msg)
	if err != nil {
		http.Error(w, "could not store message", http.StatusInternalServerError)
		return
	}

	if mailer.Enabled() {
		if err := mailer.Send(stored); err != nil {
			logger.Warn("contact mail not forwarded", zap.Int("message", stored.ID), zap.Error(err))
		}
	}

	writeJSON(w, http.StatusAccepted, ContactResult{Message: "message received"})
}
