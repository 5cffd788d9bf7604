package middleware

import (
	"net/http"

	json "github.com/goccy/go-json"
)

// writeError emits the API's error envelope from middleware that runs before
// any handler.
func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]string{"code": code, "message": message},
	})
}
