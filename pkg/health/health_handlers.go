package health

import (
	"encoding/json"
	"net/http"
)

// HTTPHandler serves Check. Degraded still answers 200.
func (hc *Checker) HTTPHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response := hc.Check()
		code := http.StatusOK
		if response.Status == StatusUnhealthy {
			code = http.StatusServiceUnavailable
		}
		writeJSON(w, code, response)
	}
}

// ReadinessHandler serves CheckReadiness; anything short of healthy is 503.
func (hc *Checker) ReadinessHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeBinary(w, hc.CheckReadiness())
	}
}

// LivenessHandler serves CheckLiveness; anything short of healthy is 503.
func (hc *Checker) LivenessHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeBinary(w, hc.CheckLiveness())
	}
}

// Mux is satisfied by *http.ServeMux and chi.Router.
type Mux interface {
	Handle(pattern string, handler http.Handler)
}

// Register mounts the three handlers on mux.
func (hc *Checker) Register(mux Mux) {
	mux.Handle("/healthz", hc.HTTPHandler())
	mux.Handle("/readyz", hc.ReadinessHandler())
	mux.Handle("/livez", hc.LivenessHandler())
}

func writeBinary(w http.ResponseWriter, response Response) {
	code := http.StatusOK
	if response.Status != StatusHealthy {
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, response)
}

func writeJSON(w http.ResponseWriter, code int, response Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(response)
}
