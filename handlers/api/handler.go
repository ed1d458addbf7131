package api

import (
	"encoding/json"
	"net/http"

	"github.com/abdulazeezumaruba/az-media-transcripts/errors"
	"github.com/abdulazeezumaruba/az-media-transcripts/middleware"
	"github.com/sirupsen/logrus"
)

func respondJSON(w http.ResponseWriter, r *http.Request, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logrus.WithError(err).Error("Failed to encode response")
	}
}

func respondError(w http.ResponseWriter, r *http.Request, err error) {
	appErr := errors.From("respondError", err)

	logrus.WithFields(logrus.Fields{
		"error":      err,
		"status":     appErr.Code,
		"request_id": middleware.RequestIDFromContext(r.Context()),
		"path":       r.URL.Path,
		"method":     r.Method,
	}).Error("Request error")

	respondJSON(w, r, appErr.Code, map[string]string{"error": appErr.Message})
}

func readJSON(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errors.InvalidInput("readJSON", err, "Invalid JSON format")
	}
	return nil
}
