package controllers

import (
	"fmt"
	"net/http"
	"sdn/internal/watcher"
	"time"

	json "github.com/goccy/go-json"
)

type HealthController struct {
	supervisor watcher.SupervisorInterface
	startTime  time.Time
}

type healthResponse struct {
	Status        string  `json:"status"`
	Uptime        string  `json:"uptime"`
	UptimeSeconds float64 `json:"uptime_seconds"`
	LastPollUnix  int64   `json:"last_poll_unix"`
	Watching      string  `json:"watching"`
}

func (hc *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	uptime := time.Since(hc.startTime)
	status := hc.supervisor.Status()

	resp := healthResponse{
		Status:        "ok",
		Uptime:        formatDuration(uptime),
		UptimeSeconds: uptime.Seconds(),
		LastPollUnix:  status.LastPollUnix,
		Watching:      status.Watching,
	}

	gson, err := json.Marshal(resp)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(gson)
}

func formatDuration(d time.Duration) string {
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%dh%dm%ds", hours, minutes, seconds)
}

func NewHealthController(supervisor watcher.SupervisorInterface) *HealthController {
	return &HealthController{
		supervisor: supervisor,
		startTime:  time.Now(),
	}
}
