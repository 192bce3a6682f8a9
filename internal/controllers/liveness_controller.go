package controllers

import "net/http"

// livenessBody is what external pingers poll for; free-tier hosts park the
// process unless something keeps fetching it.
const livenessBody = "OK - Steam->Discord notifier is alive."

type LivenessController struct{}

func NewLivenessController() *LivenessController {
	return &LivenessController{}
}

// Alive answers every GET, whatever the path, with a plaintext 200.
func (lc *LivenessController) Alive(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(livenessBody))
}
