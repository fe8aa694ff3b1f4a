package handler

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/yumyai/taxaboard/logger"
	"github.com/yumyai/taxaboard/pkg/db"
	"github.com/yumyai/taxaboard/pkg/model"
	"github.com/yumyai/taxaboard/pkg/render"
)

// ErrMalformedInput flags request input the server cannot work with:
// unparseable metadata JSON, missing upload fields, empty job_ids.
var ErrMalformedInput = errors.New("malformed input")

// statusForError maps the error kinds onto HTTP statuses deterministically.
// Anything unrecognized is a 500.
func statusForError(err error) int {
	switch {
	case errors.Is(err, db.ErrJobNotFound):
		return http.StatusNotFound
	case errors.Is(err, db.ErrStoreUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, model.ErrDegenerate):
		return http.StatusBadRequest
	case errors.Is(err, ErrMalformedInput):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusForError(err)
	if status == http.StatusInternalServerError {
		logger.Error("Request failed",
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
	} else {
		logger.Debug("Request rejected",
			zap.String("path", r.URL.Path),
			zap.Int("status", status),
			zap.Error(err),
		)
	}
	render.Error(w, status, err.Error())
}
