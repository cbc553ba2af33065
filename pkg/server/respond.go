package server

import (
	"encoding/json"
	"net/http"

	klog "k8s.io/klog/v2"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, r *http.Request, code int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		klog.FromContext(r.Context()).Error(err, "failed to write response")
	}
}

func writeError(w http.ResponseWriter, r *http.Request, code int, message string) {
	writeJSON(w, r, code, errorResponse{Error: message})
}

// writeInternalError logs err and responds with a generic message.
func writeInternalError(w http.ResponseWriter, r *http.Request, err error) {
	klog.FromContext(r.Context()).Error(err, "request failed")
	writeError(w, r, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
}
