package api

import (
	"net/http"

	"github.com/abdulazeezumaruba/az-media-transcripts/errors"
	"github.com/abdulazeezumaruba/az-media-transcripts/models"
	"github.com/abdulazeezumaruba/az-media-transcripts/services/transcripts"
	"github.com/abdulazeezumaruba/az-media-transcripts/validation"
	"github.com/sirupsen/logrus"
)

type TranscriptHandler struct {
	service   transcripts.Service
	validator *validation.Validator
	logger    *logrus.Logger
}

func NewTranscriptHandler(service transcripts.Service, validator *validation.Validator, logger *logrus.Logger) *TranscriptHandler {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &TranscriptHandler{
		service:   service,
		validator: validator,
		logger:    logger,
	}
}

// HandleGetTranscripts handles POST /transcripts. The response is a JSON
// array with one result per input URL, in input order; per-item failures are
// reported in the records, never as an HTTP error.
func (h *TranscriptHandler) HandleGetTranscripts(w http.ResponseWriter, r *http.Request) {
	const op = "TranscriptHandler.HandleGetTranscripts"
	logger := h.logger.WithContext(r.Context())

	if err := h.validator.ValidateRequest(r, validation.RequestValidationOpts{
		MaxContentLength: 1024 * 1024, // 1MB
		AllowedMethods:   []string{http.MethodPost},
		RequireJSON:      true,
	}); err != nil {
		respondError(w, r, err)
		return
	}

	var req models.TranscriptRequest
	if err := readJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	if req.VideoURLs == nil {
		respondError(w, r, errors.InvalidInput(op, nil, "video_urls is required"))
		return
	}

	logger.WithField("count", len(req.VideoURLs)).Info("Received transcript request")

	results := h.service.FetchAll(r.Context(), req.VideoURLs)

	respondJSON(w, r, http.StatusOK, results)
}
