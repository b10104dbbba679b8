package httpx

import (
	"encoding/json"
	"net/http"
)

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError wraps v in the {"error": ...} envelope. v is usually a message
// string, or a validate.Report for 400s.
func WriteError(w http.ResponseWriter, status int, v any) {
	WriteJSON(w, status, map[string]any{"error": v})
}
