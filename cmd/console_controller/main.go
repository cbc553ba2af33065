package main

import (
	"context"
	"flag"
	"fmt"
	"math"
	"time"

	"github.com/SAP/stewardci-console/pkg/featureflag"
	"github.com/SAP/stewardci-console/pkg/k8s"
	"github.com/SAP/stewardci-console/pkg/metrics"
	_ "github.com/SAP/stewardci-console/pkg/metrics/k8srestclient"
	_ "github.com/SAP/stewardci-console/pkg/metrics/workqueue"
	"github.com/SAP/stewardci-console/pkg/server"
	"github.com/SAP/stewardci-console/pkg/signals"
	"github.com/SAP/stewardci-console/pkg/testnodectl"
	"github.com/SAP/stewardci-console/pkg/testnodectl/cfg"
	"go.uber.org/zap"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"
	klog "k8s.io/klog/v2"
	"knative.dev/pkg/system"
)

const (
	// resyncPeriod is the period between full resyncs performed
	// by the controller.
	resyncPeriod = 1 * time.Minute

	// metricsPort is the TCP port number to be used by the metrics
	// HTTP server.
	metricsPort = 9090
)

var (
	kubeconfig              string
	burst, qps, threadiness int
	apiPort                 uint

	heartbeatInterval time.Duration
	heartbeatLogging  bool
	heartbeatLogLevel int

	k8sAPIRequestTimeout time.Duration
)

func init() {
	klog.InitFlags(nil)

	flag.StringVar(
		&kubeconfig,
		"kubeconfig",
		"",
		"The path to a kubeconfig file configuring access to the Kubernetes cluster."+
			" If not specified or empty, assume running in-cluster.",
	)
	flag.IntVar(
		&qps,
		"qps",
		5,
		"The queries per seconds (QPS) for Kubernetes API client-side rate limiting.",
	)
	flag.IntVar(
		&burst,
		"burst",
		10,
		"The size of the burst bucket for Kubernetes API client-side rate limiting.",
	)
	flag.IntVar(
		&threadiness,
		"threadiness",
		2,
		"The maximum number of test node projections performed by the controller in parallel.",
	)
	flag.UintVar(
		&apiPort,
		"api-port",
		8080,
		"The TCP port of the console API.",
	)
	flag.DurationVar(
		&heartbeatInterval,
		"heartbeat-interval",
		1*time.Minute,
		"The interval of controller heartbeats. Overridden by the test nodes configuration if set there.",
	)
	flag.BoolVar(
		&heartbeatLogging,
		"heartbeat-logging",
		true,
		"Whether controller heartbeats should be logged.",
	)
	flag.IntVar(
		&heartbeatLogLevel,
		"heartbeat-log-level",
		3,
		"The log level to be used for controller heartbeats.",
	)
	flag.DurationVar(
		&k8sAPIRequestTimeout,
		"k8s-api-request-timeout",
		15*time.Minute,
		"The maximum length of time to wait before giving up on a server request. A value of zero means no timeout.",
	)
}

func main() {
	flag.Parse()
	defer klog.Flush()

	system.Namespace() // ensure that namespace is set in environment

	port, err := validatePort(apiPort)
	if err != nil {
		klog.Exitf("invalid value for flag '-api-port': %s", err.Error())
	}

	var config *rest.Config

	if kubeconfig == "" {
		klog.Infof("In cluster")
		config, err = rest.InClusterConfig()
		if err != nil {
			klog.Exitf("failed to load kubeconfig: %s; Hint: You can use parameter '-kubeconfig' for local testing", err.Error())
		}
	} else {
		klog.Infof("Outside cluster")
		config, err = clientcmd.BuildConfigFromFlags("", kubeconfig)
		if err != nil {
			klog.Exitln(err.Error())
		}
	}

	featureflag.Log(klog.Background())

	klog.V(3).Infof("Create Factory (resync period: %s, QPS: %d, burst: %d, k8s-api-request-timeout: %s)", resyncPeriod.String(), qps, burst, k8sAPIRequestTimeout.String())
	config.QPS = float32(qps)
	config.Burst = burst
	config.Timeout = k8sAPIRequestTimeout
	factory := k8s.NewClientFactory(config, resyncPeriod)
	if factory == nil {
		klog.Exitln("failed to create Kubernetes client factory")
	}

	klog.V(3).Infof("Create Signal Handlers")
	ctx := signals.SetupShutdownSignalHandler()
	signals.SetupThreadDumpSignalHandler()

	testNodesConfig, err := cfg.LoadConfig(ctx, factory)
	if err != nil {
		klog.Exitf("failed to load test nodes configuration: %s", err.Error())
	}
	if testNodesConfig.HeartbeatInterval != nil {
		heartbeatInterval = testNodesConfig.HeartbeatInterval.Duration
	}

	klog.V(2).Infof("Provide metrics on http://0.0.0.0:%d/metrics", metricsPort)
	metrics.StartServer(ctx, metricsPort)

	klog.V(3).Infof("Create Controller")
	controllerOpts := testnodectl.ControllerOpts{
		HeartbeatInterval: heartbeatInterval,
	}
	if heartbeatLogging {
		tmp := klog.Level(heartbeatLogLevel)
		controllerOpts.HeartbeatLogLevel = &tmp
	}
	store := testnodectl.NewStore()
	controller := testnodectl.NewController(factory, store, controllerOpts)

	accessLogger, err := zap.NewProduction()
	if err != nil {
		klog.Exitf("failed to create access logger: %s", err.Error())
	}
	defer accessLogger.Sync()
	apiServer := server.NewFromClientFactory(factory, store, accessLogger)

	klog.V(2).Infof("Start Informer")
	stopCh := ctx.Done()
	factory.TektonInformerFactory().Start(stopCh)
	factory.DynamicInformerFactory().Start(stopCh)

	go serveAPI(ctx, apiServer, port)

	klog.V(2).Infof("Run controller (threadiness=%d)", threadiness)
	if err = controller.Run(threadiness, stopCh); err != nil {
		klog.Fatalf("Error running controller: %s", err.Error())
	}
}

func serveAPI(ctx context.Context, apiServer *server.Server, port uint16) {
	klog.V(2).Infof("Provide API on http://0.0.0.0:%d/api/v1", port)
	if err := apiServer.ListenAndServe(ctx, port); err != nil {
		klog.Fatalf("Error serving API: %s", err.Error())
	}
}

// validatePort returns port as TCP port number.
func validatePort(port uint) (uint16, error) {
	if port == 0 || port > math.MaxUint16 {
		return 0, fmt.Errorf("port must be in range 1-%d, got %d", math.MaxUint16, port)
	}
	return uint16(port), nil
}
