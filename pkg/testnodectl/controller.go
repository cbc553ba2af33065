/*
based on sample-controller from https://github.com/kubernetes/sample-controller/blob/7047ee6ceceef2118a2017bbfff4a86c1f56f1ca/controller.go
*/

package testnodectl

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	appstudio "github.com/SAP/stewardci-console/pkg/apis/appstudio/v1beta1"
	serrors "github.com/SAP/stewardci-console/pkg/errors"
	"github.com/SAP/stewardci-console/pkg/featureflag"
	"github.com/SAP/stewardci-console/pkg/k8s"
	"github.com/SAP/stewardci-console/pkg/testnodectl/cfg"
	"github.com/SAP/stewardci-console/pkg/testnodectl/log"
	"github.com/SAP/stewardci-console/pkg/testnodectl/metrics"
	"github.com/SAP/stewardci-console/pkg/testnodes"
	"github.com/benbjohnson/clock"
	tekton "github.com/tektoncd/pipeline/pkg/apis/pipeline/v1"
	metav1unstructured "k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/apimachinery/pkg/labels"
	"k8s.io/apimachinery/pkg/selection"
	utilruntime "k8s.io/apimachinery/pkg/util/runtime"
	"k8s.io/apimachinery/pkg/util/wait"
	"k8s.io/client-go/tools/cache"
	"k8s.io/client-go/util/workqueue"
	klog "k8s.io/klog/v2"
)

const (
	// heartbeatStimulusKey is a special key inserted into the controller
	// work queue as heartbeat stimulus.
	// It is an invalid application key to avoid conflicts with real
	// applications.
	heartbeatStimulusKey = "Heartbeat Stimulus"
)

// Controller projects the integration test scenarios of applications and
// their PipelineRuns to test node graphs and publishes them to a Store.
// Work items are `<namespace>/<application>` keys.
type Controller struct {
	factory         k8s.ClientFactory
	scenarioFetcher k8s.ScenarioFetcher
	runFetcher      k8s.PipelineRunFetcher
	scenariosSynced cache.InformerSynced
	runsSynced      cache.InformerSynced
	workqueue       workqueue.RateLimitingInterface
	store           *Store
	clock           clock.Clock
	syncCount       atomic.Int64

	// used instead of the lister based fetchers if ClientBasedFetch is enabled
	clientScenarioFetcher k8s.ScenarioFetcher
	clientRunFetcher      k8s.PipelineRunFetcher

	heartbeatInterval time.Duration
	heartbeatLogLevel *klog.Level
}

// ControllerOpts stores options for the construction of a Controller
// instance.
type ControllerOpts struct {
	// HeartbeatInterval is the interval for heartbeats.
	// If zero or negative, heartbeats are disabled.
	HeartbeatInterval time.Duration

	// HeartbeatLogLevel is a pointer to a klog log level to be used for
	// logging heartbeats.
	// If nil, heartbeat logging is disabled and heartbeats are only
	// exposed via metric.
	HeartbeatLogLevel *klog.Level
}

// NewController creates a new Controller publishing to store.
func NewController(factory k8s.ClientFactory, store *Store, opts ControllerOpts) *Controller {
	runInformer := factory.TektonInformerFactory().Tekton().V1().PipelineRuns()
	scenarioInformer := factory.DynamicInformerFactory().ForResource(appstudio.IntegrationTestScenarioResource)

	controller := &Controller{
		factory:               factory,
		scenarioFetcher:       k8s.NewListerBasedScenarioFetcher(scenarioInformer.Lister()),
		runFetcher:            k8s.NewListerBasedPipelineRunFetcher(runInformer.Lister()),
		clientScenarioFetcher: k8s.NewClientBasedScenarioFetcher(factory.Dynamic()),
		clientRunFetcher:      k8s.NewClientBasedPipelineRunFetcher(factory.TektonV1()),
		scenariosSynced:       scenarioInformer.Informer().HasSynced,
		runsSynced:            runInformer.Informer().HasSynced,
		workqueue:             workqueue.NewNamedRateLimitingQueue(workqueue.DefaultControllerRateLimiter(), metrics.WorkqueueName),
		store:                 store,
		clock:                 clock.New(),
	}

	controller.heartbeatInterval = opts.HeartbeatInterval
	if opts.HeartbeatLogLevel != nil {
		copyOfValue := *opts.HeartbeatLogLevel
		controller.heartbeatLogLevel = &copyOfValue
	}

	runInformer.Informer().AddEventHandler(cache.ResourceEventHandlerFuncs{
		AddFunc:    controller.onRunAdd,
		UpdateFunc: controller.onRunUpdate,
		DeleteFunc: controller.onRunDelete,
	})
	scenarioInformer.Informer().AddEventHandler(cache.ResourceEventHandlerFuncs{
		AddFunc:    controller.onScenarioAdd,
		UpdateFunc: controller.onScenarioUpdate,
		DeleteFunc: controller.onScenarioDelete,
	})
	return controller
}

func (c *Controller) getSyncCount() int64 {
	return c.syncCount.Load()
}

func (c *Controller) fetchers() (k8s.ScenarioFetcher, k8s.PipelineRunFetcher) {
	if featureflag.ClientBasedFetch.Enabled() {
		return c.clientScenarioFetcher, c.clientRunFetcher
	}
	return c.scenarioFetcher, c.runFetcher
}

// Run runs the controller until stopCh is closed.
func (c *Controller) Run(threadiness int, stopCh <-chan struct{}) error {
	defer utilruntime.HandleCrash()
	defer c.workqueue.ShutDown()

	klog.V(2).Infof("Sync cache")
	if ok := cache.WaitForCacheSync(stopCh, c.scenariosSynced, c.runsSynced); !ok {
		return fmt.Errorf("failed to wait for caches to sync")
	}
	c.store.setSynced()

	if c.heartbeatInterval > 0 {
		klog.V(2).Infof("Starting controller heartbeat stimulator with interval %s", c.heartbeatInterval)
		go wait.Until(c.heartbeatStimulus, c.heartbeatInterval, stopCh)
	} else {
		klog.V(2).Info("Controller heartbeat is disabled")
	}

	klog.V(2).Infof("Start workers")
	for i := 0; i < threadiness; i++ {
		go wait.Until(c.runWorker, time.Second, stopCh)
	}
	klog.V(2).Infof("Workers running [%v]", threadiness)

	<-stopCh
	klog.V(2).Infof("Workers stopped")
	return nil
}

func (c *Controller) runWorker() {
	for c.processNextWorkItem() {
	}
}

// processNextWorkItem reads a single work item off the workqueue and
// processes it by calling the syncHandler.
func (c *Controller) processNextWorkItem() bool {
	obj, shutdown := c.workqueue.Get()
	if shutdown {
		return false
	}
	defer c.workqueue.Done(obj)

	key, ok := obj.(string)
	if !ok {
		c.workqueue.Forget(obj)
		utilruntime.HandleError(fmt.Errorf("expected string in workqueue but got %#v", obj))
		return true
	}

	if numRequeues := c.workqueue.NumRequeues(obj); numRequeues > 0 {
		klog.V(4).Infof("Requeued %v times '%s'", numRequeues, key)
	}

	if err := c.syncHandler(key); err != nil {
		if serrors.IsRecoverable(err) {
			c.workqueue.AddRateLimited(obj)
			utilruntime.HandleError(fmt.Errorf("error syncing '%s': %s, requeuing", key, err.Error()))
			return true
		}
		c.workqueue.Forget(obj)
		utilruntime.HandleError(fmt.Errorf("error syncing '%s': %s, giving up", key, err.Error()))
		return true
	}

	c.workqueue.Forget(obj)
	klog.V(5).Infof("Finished syncing '%s'", key)
	return true
}

func (c *Controller) heartbeatStimulus() {
	c.workqueue.Add(heartbeatStimulusKey)
}

func (c *Controller) heartbeat() {
	if c.heartbeatLogLevel != nil {
		klog.V(*c.heartbeatLogLevel).InfoS("heartbeat")
	}
	metrics.ControllerHeartbeats.Inc()
}

// syncHandler projects the scenarios and PipelineRuns of the application
// identified by key and publishes the resulting graph.
// If the application has neither scenarios nor runs, its graph is removed.
func (c *Controller) syncHandler(key string) error {
	if key == heartbeatStimulusKey {
		c.heartbeat()
		return nil
	}

	namespace, application, err := cache.SplitMetaNamespaceKey(key)
	if err != nil {
		return serrors.NonRecoverable(err)
	}

	ctx := k8s.WithClientFactory(context.Background(), c.factory)
	ctx = cfg.NewContext(ctx)
	ctx, logger := log.ExtendContextLoggerWithApplication(ctx, namespace, application)

	config, err := cfg.FromContext(ctx)
	if err != nil {
		logger.Error(err, "failed to load configuration")
		return err
	}

	selector, err := runSelector(config.RunLabelSelector, application)
	if err != nil {
		return serrors.NonRecoverable(err)
	}

	logger.V(4).Info("started projection")

	scenarioFetcher, runFetcher := c.fetchers()
	in := testnodes.Input{}
	scenarios, scenariosErr := scenarioFetcher.ForApplication(ctx, namespace, application)
	if scenariosErr == nil {
		in.Scenarios, in.ScenariosLoaded = scenarios, true
	}
	runs, runsErr := runFetcher.List(ctx, namespace, selector)
	if runsErr == nil {
		in.Runs, in.RunsLoaded = runs, true
	}

	if scenariosErr != nil || runsErr != nil {
		fetchErr := scenariosErr
		if fetchErr == nil {
			fetchErr = runsErr
		}
		logger.Error(fetchErr, "failed to fetch test node input")
		// publish a partial graph only if there is nothing better yet
		if _, exists := c.store.getByKey(key); !exists {
			c.store.put(key, Entry{Graph: testnodes.Build(in), Updated: c.clock.Now()})
			c.updateMetrics()
		}
		return serrors.Recoverable(fetchErr)
	}

	if len(in.Scenarios) == 0 && len(in.Runs) == 0 {
		logger.V(3).Info("application has no test scenarios, removing test nodes")
		c.store.delete(key)
		c.updateMetrics()
		c.syncCount.Add(1)
		return nil
	}

	now := c.clock.Now()
	graph := testnodes.Build(in)
	c.store.put(key, Entry{Graph: graph, Updated: now})

	for _, node := range graph.Nodes {
		metrics.Classifications.Observe(node.Data.Status)
	}
	for _, run := range graph.LatestRuns {
		metrics.LatestRunAge.Observe(run.CreationTimestamp.Time, now)
		if logger.V(5).Enabled() {
			_, runLogger := log.ExtendContextLoggerWithPipelineRun(ctx, run)
			runLogger.V(5).Info("latest run of scenario")
		}
	}

	c.updateMetrics()
	c.syncCount.Add(1)
	logger.V(4).Info("finished projection", "nodes", len(graph.Nodes), "runs", len(in.Runs))
	return nil
}

// runSelector restricts base to the PipelineRuns of application.
func runSelector(base labels.Selector, application string) (labels.Selector, error) {
	requirement, err := labels.NewRequirement(appstudio.LabelApplication, selection.Equals, []string{application})
	if err != nil {
		return nil, err
	}
	if base == nil {
		base = labels.Everything()
	}
	return base.Add(*requirement), nil
}

func (c *Controller) updateMetrics() {
	summary, applications := c.store.Summary()
	metrics.NodesByStatus.Set(summary)
	metrics.Applications.Set(float64(applications))
}

func (c *Controller) onRunAdd(obj interface{}) {
	c.addToQueue(runApplicationKey(obj), "add PipelineRun")
}

func (c *Controller) onRunUpdate(old, new interface{}) {
	oldKey, newKey := runApplicationKey(old), runApplicationKey(new)
	if oldKey != newKey {
		c.addToQueue(oldKey, "update PipelineRun (application changed)")
	}
	c.addToQueue(newKey, "update PipelineRun")
}

func (c *Controller) onRunDelete(obj interface{}) {
	c.addToQueue(runApplicationKey(obj), "delete PipelineRun")
}

func (c *Controller) onScenarioAdd(obj interface{}) {
	c.addToQueue(scenarioApplicationKey(obj), "add IntegrationTestScenario")
}

func (c *Controller) onScenarioUpdate(old, new interface{}) {
	oldKey, newKey := scenarioApplicationKey(old), scenarioApplicationKey(new)
	if oldKey != newKey {
		c.addToQueue(oldKey, "update IntegrationTestScenario (application changed)")
	}
	c.addToQueue(newKey, "update IntegrationTestScenario")
}

func (c *Controller) onScenarioDelete(obj interface{}) {
	c.addToQueue(scenarioApplicationKey(obj), "delete IntegrationTestScenario")
}

func (c *Controller) addToQueue(key string, eventType string) {
	if key == "" {
		return
	}
	klog.V(4).InfoS("enqueue application", "key", key, "event", eventType)
	c.workqueue.Add(key)
}

// runApplicationKey returns the application key of a PipelineRun event
// object or an empty string if the run does not belong to an application.
func runApplicationKey(obj interface{}) string {
	if tombstone, ok := obj.(cache.DeletedFinalStateUnknown); ok {
		obj = tombstone.Obj
	}
	run, ok := obj.(*tekton.PipelineRun)
	if !ok || run == nil {
		return ""
	}
	application := run.GetLabels()[appstudio.LabelApplication]
	if application == "" {
		return ""
	}
	return applicationKey(run.GetNamespace(), application)
}

// scenarioApplicationKey returns the application key of an
// IntegrationTestScenario event object or an empty string if the scenario
// has no application.
func scenarioApplicationKey(obj interface{}) string {
	if tombstone, ok := obj.(cache.DeletedFinalStateUnknown); ok {
		obj = tombstone.Obj
	}
	u, ok := obj.(*metav1unstructured.Unstructured)
	if !ok || u == nil {
		return ""
	}
	application, found, err := metav1unstructured.NestedString(u.Object, "spec", "application")
	if err != nil || !found || application == "" {
		return ""
	}
	return applicationKey(u.GetNamespace(), application)
}
