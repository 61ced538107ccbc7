package uploader

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"stlrelay-go/internal/validation"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service: service,
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

// sendJSON handles JSON response formatting consistently
func sendJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error().Err(err).Msg("error encoding response")
	}
}

func sendError(w http.ResponseWriter, status int, message string) {
	sendJSON(w, status, errorResponse{Error: message})
}

// validationMessage picks the first formatted violation for the response body.
func validationMessage(err error) string {
	if formatted := validation.FormatError(err); len(formatted) > 0 {
		return formatted[0].Error
	}
	return "invalid request"
}

// HandleUpload handles POST /upload
func (h *Handler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	var req UploadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := validation.Validate(req); err != nil {
		sendError(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	response, err := h.service.UploadSingle(r.Context(), &req)
	if err != nil {
		log.Error().
			Err(err).
			Str("file", req.FileName).
			Msg("upload failed")
		sendError(w, http.StatusInternalServerError, err.Error())
		return
	}

	sendJSON(w, http.StatusOK, response)
}

// HandleBatchUpload handles POST /upload-batch
func (h *Handler) HandleBatchUpload(w http.ResponseWriter, r *http.Request) {
	var req BatchUploadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := validation.Validate(req); err != nil {
		sendError(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	response := h.service.UploadBatch(r.Context(), &req)

	log.Info().
		Int("files", len(response.Files)).
		Bool("success", response.Success).
		Msg("batch processed")

	sendJSON(w, http.StatusOK, response)
}
