package handler

import "net/http"

// NewRouter wires every route behind CORS and request logging.
func NewRouter(h *Handler, contact *ContactHandler) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", h.Root)
	mux.HandleFunc("GET /healthz", h.Health)
	mux.HandleFunc("POST /contact", contact.Submit)
	mux.HandleFunc("GET /messages", contact.List)
	return RequestLogger(h.CORS(mux))
}
