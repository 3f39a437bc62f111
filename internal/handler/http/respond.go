package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/go-feed/internal/logger"
	"github.com/MKhiriev/go-feed/internal/utils"
	"github.com/MKhiriev/go-feed/models"
)

const maxBodyBytes = 1 << 20

// decodeJSON reads the request body into dst. An empty body decodes to the
// zero value so that missing fields are reported by validation.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %w", errInvalidJSON, err)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, r *http.Request, data any, status int) {
	if _, err := utils.WriteJSON(w, data, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}

func writeMessage(w http.ResponseWriter, r *http.Request, msg string, status int) {
	writeJSON(w, r, models.MessageResponse{Msg: msg}, status)
}

// writeError logs err and answers with its mapped status and message. The
// error detail never reaches the client.
func writeError(w http.ResponseWriter, r *http.Request, err error, fallbackMsg string) {
	status, msg := responseFromError(err, fallbackMsg)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg(msg)
	} else {
		log.Debug().Err(err).Int("status", status).Msg(msg)
	}

	writeMessage(w, r, msg, status)
}
