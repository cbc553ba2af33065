package workqueue

import (
	"fmt"
	"sync"
)

var queues = &queueRegistry{}

// RegisterQueue maps a workqueue name to the subsystem (metric name prefix)
// its metrics are exported with. Queues must be registered before they are
// created. Registering a queue name twice panics.
func RegisterQueue(queueName, subsystem string) {
	queues.register(queueName, subsystem)
}

type queueRegistry struct {
	lock       sync.RWMutex
	subsystems map[string]string
}

func (r *queueRegistry) register(queueName, subsystem string) {
	r.lock.Lock()
	defer r.lock.Unlock()
	if r.subsystems == nil {
		r.subsystems = map[string]string{}
	}
	if existing, ok := r.subsystems[queueName]; ok {
		panic(fmt.Sprintf("workqueue '%s' is already registered with subsystem '%s'", queueName, existing))
	}
	r.subsystems[queueName] = subsystem
}

func (r *queueRegistry) mustGetSubsystem(queueName string) string {
	r.lock.RLock()
	defer r.lock.RUnlock()
	subsystem, ok := r.subsystems[queueName]
	if !ok {
		panic(fmt.Sprintf("workqueue '%s' has not been registered for metrics", queueName))
	}
	return subsystem
}
