package server

import (
	"net/http"

	"github.com/SAP/stewardci-console/pkg/apis/appstudio/v1alpha1"
	"github.com/SAP/stewardci-console/pkg/k8s"
	"github.com/SAP/stewardci-console/pkg/release"
	"github.com/go-chi/chi/v5"
)

func (s *Server) handleReleaseOverview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	namespace, name := chi.URLParam(r, "namespace"), chi.URLParam(r, "name")

	var result *v1alpha1.Release
	err := k8s.RetryOnTransientError(s.backoff, func() (err error) {
		result, err = s.releases.ByName(ctx, namespace, name)
		return
	})
	if err != nil {
		writeInternalError(w, r, err)
		return
	}
	if result == nil {
		writeError(w, r, http.StatusNotFound, "Release not found")
		return
	}
	writeJSON(w, r, http.StatusOK, release.Overview(result, s.clock.Now()))
}
