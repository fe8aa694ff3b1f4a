package main

import (
	"database/sql"
	"net/http"
	"os"
	"path"

	"github.com/joho/godotenv"

	"github.com/yumyai/taxaboard/internal/util"
	"github.com/yumyai/taxaboard/logger"
	mydb "github.com/yumyai/taxaboard/pkg/db"
	"github.com/yumyai/taxaboard/pkg/handler"
	"github.com/yumyai/taxaboard/pkg/middle"
	"github.com/yumyai/taxaboard/pkg/pipeline"
	"go.uber.org/zap"

	_ "modernc.org/sqlite"
)

func main() {

	VERSION := "0.1.0"

	// Try load env before anything reads it
	dotenvErr := godotenv.Load()

	LOG_LEVEL := logger.ParseLevel(os.Getenv("LOG_LEVEL"))

	if err := logger.InitLogger(LOG_LEVEL); err != nil {
		panic(err)
	}

	if dotenvErr != nil {
		logger.Warn("No .env found, using local environment")
	}

	defer logger.Sync() // Make sure that the buffered is flushed.

	taxaboard_data := os.Getenv("TAXABOARD_DATA")

	var store mydb.JobStore
	storeBackend := "memory"
	uploadDir := path.Join(os.TempDir(), "taxaboard_uploads")

	if taxaboard_data == "" {
		logger.Warn("No local environment (TAXABOARD_DATA), keeping results in memory only")
		store = mydb.NewMemJobStore()
	} else {
		if err := util.EnsureDir(path.Join(taxaboard_data, "db")); err != nil {
			logger.Fatal("Could not prepare data directory", zap.Error(err))
		}
		taxaboard_sqlite := path.Join(taxaboard_data, "db", "analysis_jobs.db")

		// Connect to db
		db, err := sql.Open("sqlite", taxaboard_sqlite)
		if err != nil {
			logger.Fatal("Could not open database", zap.Error(err))
		}

		jobstore, err := mydb.NewSQLiteJobStore(db)
		if err != nil {
			logger.Fatal("Could not prepare job store", zap.Error(err))
		}

		store = jobstore
		storeBackend = "sqlite"
		uploadDir = path.Join(taxaboard_data, "temp_uploads")
		logger.Info("Open database on", zap.String("DB_LOC", taxaboard_sqlite))
	}

	pipelineCmd := os.Getenv("TAXABOARD_PIPELINE")
	if pipelineCmd == "" {
		pipelineCmd = "taxaformer"
	}

	apictx := &handler.APIContext{
		Store:        store,
		Classifier:   pipeline.NewExecClassifier(pipelineCmd, "classify"),
		UploadDir:    uploadDir,
		StoreBackend: storeBackend,
		Version:      VERSION,
	}

	logger.Info("Start:", zap.String("Version", VERSION))
	logger.Info("Job store backend", zap.String("backend", storeBackend))

	mux := NewRouter(apictx)

	// Apply middleware
	middlewareLogger := middle.CreateMiddlewareLogger(LOG_LEVEL)
	var root http.Handler = mux
	root = middle.LoggingMiddleware(middlewareLogger)(root)
	root = middle.RequestIDMiddleware(middlewareLogger)(root)
	root = middle.CORSMiddleware(root)

	addr := os.Getenv("TAXABOARD_ADDR")
	if addr == "" {
		addr = "0.0.0.0:8000"
	}

	logger.Info("Server starting", zap.String("addr", addr))
	httpErr := http.ListenAndServe(addr, root)
	if httpErr != nil {
		logger.Error("Error starting server:", zap.String("error message", httpErr.Error()))
	}
}

func NewRouter(apictx *handler.APIContext) *http.ServeMux {
	mux := http.NewServeMux()

	// Error route
	mux.HandleFunc("GET /favicon.ico", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Not Found", http.StatusNotFound)
	})

	// Health
	mux.HandleFunc("GET /{$}", apictx.HealthCheck)
	mux.HandleFunc("GET /api/v1/health", apictx.HealthCheck)

	// Ingestion
	mux.HandleFunc("POST /analyze", apictx.AnalyzeHandler)

	// Job management
	mux.HandleFunc("GET /jobs", apictx.ListJobsHandler)
	mux.HandleFunc("GET /jobs/{job_id}", apictx.GetJobHandler)

	// Visualizations
	mux.HandleFunc("GET /visualizations/composition/{job_id}", apictx.CompositionHandler)
	mux.HandleFunc("GET /visualizations/hierarchy/{job_id}", apictx.HierarchyHandler)
	mux.HandleFunc("GET /visualizations/sankey/{job_id}", apictx.SankeyHandler)
	mux.HandleFunc("GET /visualizations/heatmap", apictx.HeatmapHandler)
	mux.HandleFunc("GET /visualizations/diversity", apictx.DiversityHandler)

	return mux
}
