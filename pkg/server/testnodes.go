package server

import (
	"net/http"
	"time"

	"github.com/SAP/stewardci-console/pkg/k8s"
	"github.com/SAP/stewardci-console/pkg/runstatus"
	"github.com/SAP/stewardci-console/pkg/testnodectl"
	"github.com/SAP/stewardci-console/pkg/testnodes"
	"github.com/go-chi/chi/v5"
)

type testNodesResponse struct {
	testnodes.Graph
	Updated time.Time `json:"updated"`
	// Paths maps scenario names to the console path of their latest run.
	Paths map[string]string `json:"paths,omitempty"`
}

func (s *Server) handleRunStatuses(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, runstatus.DisplayTable())
}

// graphEntry looks up the graph addressed by the request and writes an
// error response if there is none.
func (s *Server) graphEntry(w http.ResponseWriter, r *http.Request) (testnodectl.Entry, bool) {
	if !s.graphs.HasSynced() {
		writeError(w, r, http.StatusServiceUnavailable, "test nodes are not loaded yet")
		return testnodectl.Entry{}, false
	}
	namespace, application := chi.URLParam(r, "namespace"), chi.URLParam(r, "application")
	entry, ok := s.graphs.Get(namespace, application)
	if !ok {
		writeError(w, r, http.StatusNotFound, "application has no test nodes")
		return testnodectl.Entry{}, false
	}
	return entry, true
}

func (s *Server) handleTestNodes(w http.ResponseWriter, r *http.Request) {
	entry, ok := s.graphEntry(w, r)
	if !ok {
		return
	}
	response := testNodesResponse{Graph: entry.Graph, Updated: entry.Updated}
	namespace := chi.URLParam(r, "namespace")
	for _, node := range entry.Graph.Nodes {
		if node.Data.LatestRun == "" {
			continue
		}
		if response.Paths == nil {
			response.Paths = map[string]string{}
		}
		response.Paths[node.ID] = k8s.ResourcePath(k8s.PipelineRunModel, node.Data.LatestRun, namespace)
	}
	writeJSON(w, r, http.StatusOK, response)
}

func (s *Server) handleTestNodesChart(w http.ResponseWriter, r *http.Request) {
	entry, ok := s.graphEntry(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	title := chi.URLParam(r, "application")
	if err := statusPieChart(title, testnodes.Summary(entry.Graph.Nodes)).Render(w); err != nil {
		writeInternalError(w, r, err)
	}
}
