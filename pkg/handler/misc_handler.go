// Handler for miscellaneous endpoints such as health check

package handler

import (
	"net/http"
	"time"

	"github.com/yumyai/taxaboard/pkg/render"
)

type HealthResponse struct {
	Status    string    `json:"status"`
	Service   string    `json:"service"`
	Version   string    `json:"version"`
	Database  string    `json:"database"`
	Timestamp time.Time `json:"timestamp"`
}

func (api *APIContext) HealthCheck(w http.ResponseWriter, r *http.Request) {

	response := HealthResponse{
		Status:    "online",
		Service:   "Taxaboard API",
		Version:   api.Version,
		Database:  api.StoreBackend,
		Timestamp: time.Now().UTC(),
	}

	render.JSON(w, http.StatusOK, response)
}
