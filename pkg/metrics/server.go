package metrics

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	klog "k8s.io/klog/v2"
)

// Handler returns the HTTP handler exposing all registered metrics in the
// Prometheus text format.
func Handler() http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{
		ErrorHandling: promhttp.ContinueOnError,
	})
}

// StartServer starts an HTTP server providing the metrics for scraping on
// the given port. The server stops when ctx is done.
func StartServer(ctx context.Context, port uint16) {
	serveMux := http.NewServeMux()
	serveMux.Handle("/metrics", Handler())
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           serveMux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			klog.ErrorS(err, "metrics server shutdown failed")
		}
	}()

	go func() {
		for {
			err := server.ListenAndServe()
			if err == http.ErrServerClosed {
				break
			}
			if err != nil {
				klog.ErrorS(err, "metrics server terminated unexpectedly and will be restarted")
				time.Sleep(time.Second)
			}
		}
	}()
}
