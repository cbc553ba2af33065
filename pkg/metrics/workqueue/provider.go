package workqueue

import (
	"strings"
	"sync"

	"github.com/SAP/stewardci-console/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"k8s.io/client-go/util/workqueue"
)

func init() {
	workqueue.SetProvider(&prometheusMetricsProvider{})
}

// prometheusMetricsProvider creates each metric once. Queues with the same
// name share their metrics.
type prometheusMetricsProvider struct {
	lock    sync.Mutex
	created map[string]prometheus.Collector
}

var _ workqueue.MetricsProvider = (*prometheusMetricsProvider)(nil)

// durationBuckets are 1ms to 5000s in steps of 1 and 5 per decade.
func durationBuckets() []float64 {
	list := make([]float64, 0, 14)
	for i := 1e-3; i <= 1e+3; i *= 10.0 {
		list = append(list, i, i*5.0)
	}
	return list
}

func (p *prometheusMetricsProvider) NewDepthMetric(queueName string) workqueue.GaugeMetric {
	return p.gauge(queueName, "depth", "The current depth of the workqueue.")
}

func (p *prometheusMetricsProvider) NewAddsMetric(queueName string) workqueue.CounterMetric {
	return p.counter(queueName, "adds_total", "The number of entries added to the workqueue over time.")
}

func (p *prometheusMetricsProvider) NewLatencyMetric(queueName string) workqueue.HistogramMetric {
	return p.histogram(queueName, "latency_seconds",
		"A histogram of queuing latency."+
			" The latency is the time an item was waiting in the queue until processing the item started.")
}

func (p *prometheusMetricsProvider) NewWorkDurationMetric(queueName string) workqueue.HistogramMetric {
	return p.histogram(queueName, "workduration_seconds",
		"A histogram of per-item processing times, excluding the time waiting in the queue.")
}

func (p *prometheusMetricsProvider) NewUnfinishedWorkSecondsMetric(queueName string) workqueue.SettableGaugeMetric {
	return p.gauge(queueName, "unfinished_workduration_seconds",
		"The sum of processing time spent on items still in the queue.")
}

func (p *prometheusMetricsProvider) NewLongestRunningProcessorSecondsMetric(queueName string) workqueue.SettableGaugeMetric {
	return p.gauge(queueName, "longest_running_processor_seconds",
		"The longest processing time spent on a single item that is still in the queue.")
}

func (p *prometheusMetricsProvider) NewRetriesMetric(queueName string) workqueue.CounterMetric {
	return p.counter(queueName, "retry_count_total", "The total number of retries needed to process queue items.")
}

func (p *prometheusMetricsProvider) gauge(queueName, simpleName, help string) prometheus.Gauge {
	metricName := p.metricName(queueName, simpleName)
	return p.getOrRegister(metricName, func() prometheus.Collector {
		return prometheus.NewGauge(prometheus.GaugeOpts{Name: metricName, Help: help})
	}).(prometheus.Gauge)
}

func (p *prometheusMetricsProvider) counter(queueName, simpleName, help string) prometheus.Counter {
	metricName := p.metricName(queueName, simpleName)
	return p.getOrRegister(metricName, func() prometheus.Collector {
		return prometheus.NewCounter(prometheus.CounterOpts{Name: metricName, Help: help})
	}).(prometheus.Counter)
}

func (p *prometheusMetricsProvider) histogram(queueName, simpleName, help string) prometheus.Histogram {
	metricName := p.metricName(queueName, simpleName)
	return p.getOrRegister(metricName, func() prometheus.Collector {
		return prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    metricName,
			Help:    help,
			Buckets: durationBuckets(),
		})
	}).(prometheus.Histogram)
}

func (p *prometheusMetricsProvider) getOrRegister(metricName string, create func() prometheus.Collector) prometheus.Collector {
	p.lock.Lock()
	defer p.lock.Unlock()
	if p.created == nil {
		p.created = map[string]prometheus.Collector{}
	}
	if metric, ok := p.created[metricName]; ok {
		return metric
	}
	metric := create()
	metrics.Registerer().MustRegister(metric)
	p.created[metricName] = metric
	return metric
}

func (p *prometheusMetricsProvider) metricName(queueName, simpleName string) string {
	return strings.Join([]string{queues.mustGetSubsystem(queueName), simpleName}, "_")
}
