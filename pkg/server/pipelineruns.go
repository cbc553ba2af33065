package server

import (
	"net/http"

	"github.com/SAP/stewardci-console/pkg/featureflag"
	"github.com/SAP/stewardci-console/pkg/k8s"
	"github.com/SAP/stewardci-console/pkg/runstatus"
	"github.com/SAP/stewardci-console/pkg/utils"
	"github.com/go-chi/chi/v5"
	tekton "github.com/tektoncd/pipeline/pkg/apis/pipeline/v1"
	corev1 "k8s.io/api/core/v1"
	knativeapis "knative.dev/pkg/apis"
)

const maxMessageLength = 500

type runStatusResponse struct {
	Name      string              `json:"name"`
	Namespace string              `json:"namespace,omitempty"`
	Status    runstatus.RunStatus `json:"status"`
	Display   runstatus.Display   `json:"display"`
	Message   string              `json:"message,omitempty"`
	Duration  string              `json:"duration,omitempty"`
	Path      string              `json:"path,omitempty"`
	TaskRuns  []runStatusResponse `json:"taskRuns,omitempty"`

	// TaskRuns only
	Pod        string              `json:"pod,omitempty"`
	LogSources []logSourceResponse `json:"logSources,omitempty"`
}

type logSourceResponse struct {
	Container string                    `json:"container"`
	Status    runstatus.LogSourceStatus `json:"status"`
}

func (s *Server) handlePipelineRunStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	namespace, name := chi.URLParam(r, "namespace"), chi.URLParam(r, "name")

	var run *tekton.PipelineRun
	err := k8s.RetryOnTransientError(s.backoff, func() (err error) {
		run, err = s.pipelineRunFetcher().ByName(ctx, namespace, name)
		return
	})
	if err != nil {
		writeInternalError(w, r, err)
		return
	}
	if run == nil {
		writeError(w, r, http.StatusNotFound, "PipelineRun not found")
		return
	}

	status := runstatus.OfPipelineRun(run)
	response := runStatusResponse{
		Name:      run.GetName(),
		Namespace: run.GetNamespace(),
		Status:    status,
		Display:   runstatus.DisplayFor(status),
		Message:   conditionMessage(run.Status.GetCondition(knativeapis.ConditionSucceeded)),
		Duration:  utils.HumanDuration(run.Status.StartTime, run.Status.CompletionTime, s.clock.Now()),
		Path:      k8s.ResourcePath(k8s.PipelineRunModel, run.GetName(), run.GetNamespace()),
	}

	if featureflag.ExposeTaskRunStatus.Enabled() {
		var taskRuns []tekton.TaskRun
		err := k8s.RetryOnTransientError(s.backoff, func() (err error) {
			taskRuns, err = s.taskRuns.ForPipelineRun(ctx, namespace, name)
			return
		})
		if err != nil {
			writeInternalError(w, r, err)
			return
		}
		for i := range taskRuns {
			taskRun := &taskRuns[i]
			taskStatus := runstatus.OfTaskRun(taskRun)
			taskResponse := runStatusResponse{
				Name:     taskRun.GetName(),
				Status:   taskStatus,
				Display:  runstatus.DisplayFor(taskStatus),
				Message:  conditionMessage(taskRun.Status.GetCondition(knativeapis.ConditionSucceeded)),
				Duration: utils.HumanDuration(taskRun.Status.StartTime, taskRun.Status.CompletionTime, s.clock.Now()),
			}
			if podName := taskRun.Status.PodName; podName != "" && s.pods != nil {
				var pod *corev1.Pod
				err := k8s.RetryOnTransientError(s.backoff, func() (err error) {
					pod, err = s.pods.ByName(ctx, namespace, podName)
					return
				})
				if err != nil {
					writeInternalError(w, r, err)
					return
				}
				if pod != nil {
					taskResponse.Pod = k8s.ResourcePath(k8s.PodModel, podName, namespace)
					taskResponse.LogSources = logSources(pod)
				}
			}
			response.TaskRuns = append(response.TaskRuns, taskResponse)
		}
	}
	writeJSON(w, r, http.StatusOK, response)
}

// logSources returns the log source status of each container of pod in
// spec order. Containers without status are waiting.
func logSources(pod *corev1.Pod) []logSourceResponse {
	statuses := make(map[string]*corev1.ContainerStatus, len(pod.Status.ContainerStatuses))
	for i := range pod.Status.ContainerStatuses {
		status := &pod.Status.ContainerStatuses[i]
		statuses[status.Name] = status
	}
	result := make([]logSourceResponse, 0, len(pod.Spec.Containers))
	for _, container := range pod.Spec.Containers {
		result = append(result, logSourceResponse{
			Container: container.Name,
			Status:    runstatus.LogSourceStatusOf(statuses[container.Name]),
		})
	}
	return result
}

func conditionMessage(condition *knativeapis.Condition) string {
	if condition == nil {
		return ""
	}
	return utils.ShortenMessage(condition.Message, maxMessageLength)
}
