package controllers

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"scribbles/app/repositories"
	"scribbles/app/services"

	"golang.org/x/crypto/sha3"
)

// maxBodyBytes caps request bodies; post content is the largest field.
const maxBodyBytes = 1 << 20

func sendJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func sendError(w http.ResponseWriter, message string, status int) {
	sendJSON(w, status, map[string]string{"error": message})
}

// sendList writes a collection with a SHA3-256 ETag and answers a matching
// If-None-Match with 304.
func sendList(w http.ResponseWriter, r *http.Request, data interface{}) {
	body, err := json.Marshal(data)
	if err != nil {
		sendError(w, "Failed to encode response: "+err.Error(), http.StatusInternalServerError)
		return
	}

	sum := sha3.Sum256(body)
	etag := `"` + hex.EncodeToString(sum[:]) + `"`
	w.Header().Set("ETag", etag)
	if r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(body)
	w.Write([]byte("\n"))
}

// sendFailure maps a service error onto a status code.
func sendFailure(w http.ResponseWriter, logger *slog.Logger, action string, err error) {
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		sendError(w, "Not found", http.StatusNotFound)
	case services.IsValidation(err):
		sendError(w, err.Error(), http.StatusBadRequest)
	default:
		logger.Error("request failed", "action", action, "error", err)
		sendError(w, "Failed to "+action+": "+err.Error(), http.StatusInternalServerError)
	}
}

// decodeJSON reads the request body into v, reporting 400 on failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			sendError(w, "Invalid JSON: empty body", http.StatusBadRequest)
			return false
		}
		sendError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

func loggerOrDefault(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.Default()
	}
	return logger
}
