package handler

import (
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/yumyai/taxaboard/logger"
	"github.com/yumyai/taxaboard/pkg/render"
)

const defaultJobLimit = 50

func parsePositiveIntFallback(v string, fallback int) int {
	num, err := strconv.Atoi(v)
	if err != nil || num <= 0 {
		return fallback
	}
	return num
}

// ListJobsHandler returns stored job summaries, newest first.
func (api *APIContext) ListJobsHandler(w http.ResponseWriter, r *http.Request) {

	limit := parsePositiveIntFallback(r.URL.Query().Get("limit"), defaultJobLimit)

	logger.Debug("Listing jobs", zap.Int("limit", limit))

	summaries, err := api.Store.List(r.Context(), limit)
	if err != nil {
		writeError(w, r, err)
		return
	}

	render.JSON(w, http.StatusOK, summaries)
}

// GetJobHandler returns the full stored record for one job.
func (api *APIContext) GetJobHandler(w http.ResponseWriter, r *http.Request) {

	job_id := r.PathValue("job_id")

	job, err := api.Store.Get(r.Context(), job_id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	render.JSON(w, http.StatusOK, job)
}
