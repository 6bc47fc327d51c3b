package response

import (
	"encoding/json"
	"net/http"
)

// JSON writes data as a JSON response. The body is marshaled before
// the status line goes out, so a marshal failure still yields a clean
// 500 rather than a truncated 2xx body.
func JSON(w http.ResponseWriter, status int, data any) {
	body, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

// NoContent writes a 204 No Content response
func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}
