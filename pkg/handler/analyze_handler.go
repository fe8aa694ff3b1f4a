package handler

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/yumyai/taxaboard/internal/util"
	"github.com/yumyai/taxaboard/logger"
	"github.com/yumyai/taxaboard/pkg/model"
	"github.com/yumyai/taxaboard/pkg/render"
)

const maxUploadBytes = 32 << 20

var allowedUploadExts = map[string]bool{
	".fasta": true,
	".fa":    true,
	".fastq": true,
	".fq":    true,
	".txt":   true,
}

type AnalyzeResponse struct {
	Status string                `json:"status"`
	Data   *model.AnalysisResult `json:"data"`
	JobID  string                `json:"job_id,omitempty"`
}

// AnalyzeHandler accepts a sequence file upload plus an optional JSON
// metadata form field, runs the external classifier over it, persists the
// result, and returns it. Storage failure does not fail the analysis; the
// response simply carries no job_id then.
func (api *APIContext) AnalyzeHandler(w http.ResponseWriter, r *http.Request) {

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, r, fmt.Errorf("%w: %v", ErrMalformedInput, err))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, r, fmt.Errorf("%w: file field is required", ErrMalformedInput))
		return
	}
	defer file.Close()

	if header.Filename == "" {
		writeError(w, r, fmt.Errorf("%w: no filename provided", ErrMalformedInput))
		return
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedUploadExts[ext] {
		writeError(w, r, fmt.Errorf("%w: unsupported file type %q", ErrMalformedInput, ext))
		return
	}

	var metadata map[string]any
	if raw := r.FormValue("metadata"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &metadata); err != nil {
			writeError(w, r, fmt.Errorf("%w: metadata is not valid JSON: %v", ErrMalformedInput, err))
			return
		}
	}

	tempPath, err := api.saveUpload(file, ext)
	if err != nil {
		writeError(w, r, err)
		return
	}
	defer func() {
		if err := os.Remove(tempPath); err != nil {
			logger.Warn("Could not delete temp file", zap.String("path", tempPath), zap.Error(err))
		}
	}()

	logger.Info("Processing upload",
		zap.String("filename", header.Filename),
		zap.Int64("size", header.Size),
	)

	start := time.Now()
	result, err := api.Classifier.Process(r.Context(), tempPath, header.Filename)
	if err != nil {
		writeError(w, r, fmt.Errorf("analysis failed: %w", err))
		return
	}
	elapsed := time.Since(start)

	if result.Metadata == nil {
		result.Metadata = map[string]any{}
	}
	result.Metadata["processingTime"] = fmt.Sprintf("%.2fs", elapsed.Seconds())
	if metadata != nil {
		result.Metadata["userMetadata"] = metadata
	}

	response := AnalyzeResponse{Status: "success", Data: result}

	job_id, storeErr := api.Store.Store(r.Context(), header.Filename, metadata, result)
	if storeErr != nil {
		logger.Warn("Could not persist analysis", zap.Error(storeErr))
	} else {
		response.JobID = job_id
		logger.Info("Saved analysis",
			zap.String("job_id", job_id),
			zap.Duration("processing_time", elapsed),
		)
	}

	render.JSON(w, http.StatusOK, response)
}

func (api *APIContext) saveUpload(file io.Reader, ext string) (string, error) {

	if err := util.EnsureDir(api.UploadDir); err != nil {
		return "", fmt.Errorf("prepare upload dir: %w", err)
	}

	tmp, err := os.CreateTemp(api.UploadDir, "upload-*"+ext)
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	defer tmp.Close()

	if _, err := io.Copy(tmp, file); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("save upload: %w", err)
	}

	return tmp.Name(), nil
}
