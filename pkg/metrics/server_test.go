package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"gotest.tools/v3/assert"
)

func Test_Handler_ExposesRegisteredMetrics(t *testing.T) {
	// no parallel: patching global state

	// SETUP
	reg := Testing{}.NewRegistry(t)
	counter := prometheus.NewCounter(prometheus.CounterOpts{
		Subsystem: Subsystem,
		Name:      "test_total",
		Help:      "Test counter.",
	})
	Registerer().MustRegister(counter)
	counter.Add(3)
	families, err := reg.Gather()
	assert.NilError(t, err)
	assert.Equal(t, 1, len(families))

	server := httptest.NewServer(Handler())
	defer server.Close()

	// EXERCISE
	resp, err := http.Get(server.URL)

	// VERIFY
	assert.NilError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	assert.NilError(t, err)
	assert.Assert(t, strings.Contains(string(body), "steward_console_test_total 3"), string(body))
}
