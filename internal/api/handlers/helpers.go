package handlers

import (
	"encoding/json"
	"log"
	"net/http"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode failed: method=%s path=%s err=%v", r.Method, r.URL.Path, err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]any{"ok": false, "error": msg})
}

// writeErrorDetails attaches raw diagnostic material (typically the
// provider's response body) alongside the error message. Valid JSON is
// embedded as-is so operators see the provider payload unescaped.
func writeErrorDetails(w http.ResponseWriter, r *http.Request, status int, msg string, details string) {
	body := map[string]any{"ok": false, "error": msg}
	if details != "" {
		if json.Valid([]byte(details)) {
			body["details"] = json.RawMessage(details)
		} else {
			body["details"] = details
		}
	}
	writeJSON(w, r, status, body)
}
