package handler

// DI for all handlers alike.

import (
	"github.com/yumyai/taxaboard/pkg/db"
	"github.com/yumyai/taxaboard/pkg/pipeline"
)

type APIContext struct {
	Store        db.JobStore
	Classifier   pipeline.Classifier
	UploadDir    string
	StoreBackend string // "sqlite" or "memory", reported by the health check
	Version      string
}
