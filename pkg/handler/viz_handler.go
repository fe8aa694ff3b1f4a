package handler

import (
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/yumyai/taxaboard/logger"
	"github.com/yumyai/taxaboard/pkg/handler/request"
	"github.com/yumyai/taxaboard/pkg/model"
	"github.com/yumyai/taxaboard/pkg/render"
)

const (
	defaultCompositionRank = request.RankPhylum
	defaultHeatmapRank     = request.RankClass
)

// Composition for pie/bar charts at a chosen rank.
func (api *APIContext) CompositionHandler(w http.ResponseWriter, r *http.Request) {

	job_id := r.PathValue("job_id")
	rank := request.ParseRank(r.URL.Query().Get("rank"), defaultCompositionRank)

	logger.Debug("Building composition",
		zap.String("job_id", job_id),
		zap.String("rank", rank.String()),
	)

	job, err := api.Store.Get(r.Context(), job_id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	composition := model.Composition(job.Sequences(), rank.Index())
	render.JSON(w, http.StatusOK, composition)
}

// Hierarchy tree for Krona/sunburst plots.
func (api *APIContext) HierarchyHandler(w http.ResponseWriter, r *http.Request) {

	job_id := r.PathValue("job_id")

	job, err := api.Store.Get(r.Context(), job_id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	hierarchy := model.BuildHierarchy(job.Sequences())
	render.JSON(w, http.StatusOK, hierarchy)
}

// Sankey flow diagram over the fixed Start-to-Order window.
func (api *APIContext) SankeyHandler(w http.ResponseWriter, r *http.Request) {

	job_id := r.PathValue("job_id")

	job, err := api.Store.Get(r.Context(), job_id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	sankey := model.BuildSankey(job.Sequences())
	render.JSON(w, http.StatusOK, sankey)
}

// Heatmap across multiple samples at a chosen rank.
func (api *APIContext) HeatmapHandler(w http.ResponseWriter, r *http.Request) {

	ids := request.ParseJobIDs(r.URL.Query().Get("job_ids"))
	if len(ids) == 0 {
		writeError(w, r, fmt.Errorf("%w: job_ids query parameter is required", ErrMalformedInput))
		return
	}
	rank := request.ParseRank(r.URL.Query().Get("rank"), defaultHeatmapRank)

	logger.Debug("Building heatmap",
		zap.Strings("job_ids", ids),
		zap.String("rank", rank.String()),
	)

	jobs, err := api.Store.GetMany(r.Context(), ids)
	if err != nil {
		writeError(w, r, err)
		return
	}

	heatmap := model.BuildHeatmap(jobsToSamples(jobs), rank.Index())
	render.JSON(w, http.StatusOK, heatmap)
}

// Beta diversity between samples: Bray-Curtis matrices plus the ordination.
func (api *APIContext) DiversityHandler(w http.ResponseWriter, r *http.Request) {

	ids := request.ParseJobIDs(r.URL.Query().Get("job_ids"))
	if len(ids) == 0 {
		writeError(w, r, fmt.Errorf("%w: job_ids query parameter is required", ErrMalformedInput))
		return
	}

	jobs, err := api.Store.GetMany(r.Context(), ids)
	if err != nil {
		writeError(w, r, err)
		return
	}

	diversity, err := model.CalculateBetaDiversity(jobsToSamples(jobs))
	if err != nil {
		writeError(w, r, err)
		return
	}

	render.JSON(w, http.StatusOK, diversity)
}

func jobsToSamples(jobs []*model.JobRecord) []model.Sample {
	samples := make([]model.Sample, 0, len(jobs))
	for _, job := range jobs {
		samples = append(samples, model.Sample{
			Name:      job.Filename,
			Sequences: job.Sequences(),
		})
	}
	return samples
}
