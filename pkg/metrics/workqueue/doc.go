/*
Package workqueue exports the metrics of k8s.io/client-go/util/workqueue via
the registry of package metrics.

Packages creating named workqueues, e.g. testnodectl, register their queue
names with RegisterQueue, so that queue metrics appear under the package's
prefix. Creating a queue with an unregistered name panics.
*/
package workqueue
