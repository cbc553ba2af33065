/*
Package metrics provides the Prometheus metrics support shared by all packages
of the console backend:

-   the metrics registry
-   the HTTP handler exporting the registry
-   generic metrics like retry loop observations

Metrics specific to a component live in the component's own package and
register themselves via Registerer().

Global State

The registry is global state so that metrics can register themselves at
package initialization without passing references around. Tests that need an
isolated registry patch it via the Testing type and must not run in parallel
with other tests patching it.
*/
package metrics
