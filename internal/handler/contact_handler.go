package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/portfolio/backend/internal/model"
	"github.com/portfolio/backend/internal/service"
)

const maxBodyBytes = 1 << 20

const (
	msgNoData         = "No data received"
	msgFieldsRequired = "Name and Email required"
)

// ContactHandler handles contact form submission and listing.
type ContactHandler struct {
	contactService service.ContactService
}

// NewContactHandler creates a ContactHandler with the given service.
func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

type messageResponse struct {
	Message string `json:"message"`
}

type submitResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Submit handles POST /contact.
// name and email are required and must be non-empty strings; message is optional.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	fields, ok := decodeObject(w, r)
	if !ok || len(fields) == 0 {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(messageResponse{Message: msgNoData})
		return
	}

	name := stringField(fields, "name")
	email := stringField(fields, "email")
	if name == "" || email == "" {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(messageResponse{Message: msgFieldsRequired})
		return
	}

	msg := &model.ContactMessage{
		Name:    name,
		Email:   email,
		Message: optionalField(fields, "message"),
	}

	if err := h.contactService.Submit(r.Context(), msg); err != nil {
		slog.ErrorContext(r.Context(), "contact submit failed", "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(submitResponse{
		Status:  "success",
		Message: fmt.Sprintf("Thanks %s! Message received", name),
	})
}

// List handles GET /messages.
// Each row is written as an [id, name, email, message] tuple in insertion order.
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	messages, err := h.contactService.List(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "contact list failed", "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	// Return [] not null for empty lists
	rows := make([][]any, 0, len(messages))
	for _, m := range messages {
		rows = append(rows, m.Tuple())
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(rows)
}

// decodeObject reads the request body as a JSON object.
// ok is false when the body is missing, unreadable or not an object.
func decodeObject(w http.ResponseWriter, r *http.Request) (map[string]json.RawMessage, bool) {
	if r.Body == nil {
		return nil, false
	}
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil || len(bytes.TrimSpace(body)) == 0 {
		return nil, false
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, false
	}
	// a literal null decodes into a nil map
	if fields == nil {
		return nil, false
	}
	return fields, true
}

// stringField returns fields[key] when it is a JSON string, otherwise "".
func stringField(fields map[string]json.RawMessage, key string) string {
	raw, ok := fields[key]
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

// optionalField returns nil for an absent or null value. Non-string values
// are kept as their compact JSON text.
func optionalField(fields map[string]json.RawMessage, key string) *string {
	raw, ok := fields[key]
	if !ok || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return &s
	}
	var compact bytes.Buffer
	if err := json.Compact(&compact, raw); err != nil {
		text := string(raw)
		return &text
	}
	text := compact.String()
	return &text
}
