package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/SAP/stewardci-console/pkg/featureflag"
	"github.com/SAP/stewardci-console/pkg/k8s"
	"github.com/SAP/stewardci-console/pkg/metrics"
	"github.com/SAP/stewardci-console/pkg/testnodectl"
	"github.com/benbjohnson/clock"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"k8s.io/apimachinery/pkg/util/wait"
	klog "k8s.io/klog/v2"
)

// Server serves the console read API.
type Server struct {
	graphs     testnodectl.GraphReader
	cachedRuns k8s.PipelineRunFetcher
	clientRuns k8s.PipelineRunFetcher
	taskRuns   k8s.TaskRunFetcher
	pods       k8s.PodFetcher
	releases   k8s.ReleaseFetcher
	logger     *zap.Logger
	clock      clock.Clock
	backoff    wait.Backoff
}

// Opts are the dependencies of a Server.
type Opts struct {
	// Graphs provides the published test node graphs.
	Graphs testnodectl.GraphReader

	// CachedRuns reads PipelineRuns from informer caches. Optional.
	CachedRuns k8s.PipelineRunFetcher

	// ClientRuns reads PipelineRuns from the API server.
	ClientRuns k8s.PipelineRunFetcher

	TaskRuns k8s.TaskRunFetcher

	// Pods reads the pods of TaskRuns for their log sources. Optional.
	Pods k8s.PodFetcher

	Releases k8s.ReleaseFetcher

	// Logger is the access logger. If nil, access logging is disabled.
	Logger *zap.Logger
}

// New creates a new Server.
func New(opts Opts) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		graphs:     opts.Graphs,
		cachedRuns: opts.CachedRuns,
		clientRuns: opts.ClientRuns,
		taskRuns:   opts.TaskRuns,
		pods:       opts.Pods,
		releases:   opts.Releases,
		logger:     logger,
		clock:      clock.New(),
		backoff:    k8s.DefaultBackoff,
	}
}

// NewFromClientFactory creates a Server reading test node graphs from
// graphs and PipelineRuns from the informer cache of factory.
func NewFromClientFactory(factory k8s.ClientFactory, graphs testnodectl.GraphReader, logger *zap.Logger) *Server {
	return New(Opts{
		Graphs:     graphs,
		CachedRuns: k8s.NewListerBasedPipelineRunFetcher(factory.TektonInformerFactory().Tekton().V1().PipelineRuns().Lister()),
		ClientRuns: k8s.NewClientBasedPipelineRunFetcher(factory.TektonV1()),
		TaskRuns:   k8s.NewClientBasedTaskRunFetcher(factory.TektonV1()),
		Pods:       k8s.NewClientBasedPodFetcher(factory.CoreV1()),
		Releases:   k8s.NewClientBasedReleaseFetcher(factory.Dynamic()),
		Logger:     logger,
	})
}

// Router returns the HTTP handler of all endpoints.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(accessLog(s.logger))

	r.Get("/healthz", s.handleHealthz)
	r.Handle("/metrics", metrics.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/runstatuses", s.handleRunStatuses)
		r.Get("/featureflags", s.handleFeatureFlags)
		r.Route("/namespaces/{namespace}", func(r chi.Router) {
			r.Get("/applications/{application}/testnodes", s.handleTestNodes)
			r.Get("/applications/{application}/testnodes/chart", s.handleTestNodesChart)
			r.Get("/pipelineruns/{name}/status", s.handlePipelineRunStatus)
			r.Get("/releases/{name}/overview", s.handleReleaseOverview)
		})
	})
	return r
}

// ListenAndServe serves the API on the given port until ctx is done.
func (s *Server) ListenAndServe(ctx context.Context, port uint16) error {
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			klog.ErrorS(err, "API server shutdown failed")
		}
	}()

	klog.InfoS("serving API", "port", port)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) pipelineRunFetcher() k8s.PipelineRunFetcher {
	if s.cachedRuns == nil || featureflag.ClientBasedFetch.Enabled() {
		return s.clientRuns
	}
	return s.cachedRuns
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func (s *Server) handleFeatureFlags(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, featureflag.Snapshot())
}
