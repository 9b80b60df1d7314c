package middleware

import (
	"encoding/json"
	"net/http"
)

// writeError writes the API's JSON error body from inside the middleware
// chain, before any handler runs.
func writeError(w http.ResponseWriter, status int, msg, kind string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error": msg,
		"kind":  kind,
	})
}
