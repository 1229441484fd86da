package main

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/exploro/maprando/pkg/logging"
)

func (s *service) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func (s *service) handleRandomize(w http.ResponseWriter, r *http.Request) {
	var req randomizeRequest
	if r.Body != nil {
		defer r.Body.Close()
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err.Error() != "EOF" {
			http.Error(w, "malformed request body: "+err.Error(), http.StatusBadRequest)
			return
		}
	}

	state, seed, err := s.runAttempts(r.Context(), req)
	if err != nil {
		logging.Warn("randomize request failed", "error", err.Error())
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	log, err := s.buildSpoiler(state)
	if err != nil {
		logging.Error("spoiler build failed", "error", err.Error())
		http.Error(w, "failed to build spoiler log", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Seed", strconv.FormatUint(seed, 10))
	if err := json.NewEncoder(w).Encode(log); err != nil {
		logging.Error("failed to encode response", "error", err.Error())
	}
}
