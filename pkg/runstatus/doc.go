/*
Package runstatus derives the human readable run status of Tekton
PipelineRuns and TaskRuns from their `Succeeded` condition and provides the
presentation data (message, color) the console shows for each status.

All functions are pure. They never panic on incomplete objects: missing
conditions or missing condition status yield StatusUndefined.
*/
package runstatus
