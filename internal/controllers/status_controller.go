package controllers

import (
	"net/http"
	"sdn/internal/providers"
	"sdn/internal/watcher"

	json "github.com/goccy/go-json"
)

const statusCacheKey = "status"

// StatusController exposes the last observed snapshot as JSON. Responses
// are cached for a poll interval: the view can only change when the
// supervisor polls again.
type StatusController struct {
	logger     providers.Logger
	supervisor watcher.SupervisorInterface
	cache      providers.CacheProviderInterface
}

func NewStatusController(logger providers.Logger, supervisor watcher.SupervisorInterface, cache providers.CacheProviderInterface) *StatusController {
	return &StatusController{
		logger:     logger,
		supervisor: supervisor,
		cache:      cache,
	}
}

func (sc *StatusController) GetStatus(w http.ResponseWriter, r *http.Request) {
	if data, ok := sc.cache.Get(statusCacheKey); ok {
		writeJSON(w, data)
		return
	}

	gson, err := json.Marshal(sc.supervisor.Status())
	if err != nil {
		sc.logger.Errorf(providers.TypeHTTP, "Status marshal failed: %s", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	sc.cache.Set(statusCacheKey, gson)
	writeJSON(w, gson)
}

func writeJSON(w http.ResponseWriter, data []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
