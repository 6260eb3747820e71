package model

// ContactMessage represents a message submitted via the contact form.
type ContactMessage struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	// Message is nil when the visitor did not send one.
	Message *string `json:"message"`
}

// Tuple returns the message as [id, name, email, message], the shape served by
// GET /messages.
func (m *ContactMessage) Tuple() []any {
	var message any
	if m.Message != nil {
		message = *m.Message
	}
	return []any{m.ID, m.Name, m.Email, message}
}
