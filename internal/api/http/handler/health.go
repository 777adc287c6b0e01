package handler

import "net/http"

type healthResponse struct {
	OK bool `json:"ok"`
}

// Health reports service liveness.
func Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{OK: true})
}
