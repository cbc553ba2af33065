/*
Package server implements the read API of the console backend.

All endpoints are read only. Test node graphs are served from the snapshots
published by the test node controller, single resources are fetched on
demand.
*/
package server
