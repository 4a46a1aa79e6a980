package middleware

import (
	"encoding/json"
	"net/http"
)

// writeError writes the same {"error": msg} envelope as the REST handlers,
// so clients see one error shape whichever layer rejected the request.
func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg}) //nolint:errcheck
}
