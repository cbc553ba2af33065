package testnodectl

import (
	"sync"
	"time"

	"github.com/SAP/stewardci-console/pkg/runstatus"
	"github.com/SAP/stewardci-console/pkg/testnodes"
)

// Entry is the published test node graph of an application.
type Entry struct {
	Graph testnodes.Graph
	// Updated is the time the graph has been projected.
	Updated time.Time
}

// GraphReader provides read access to published test node graphs.
type GraphReader interface {
	// Get returns the entry of the given application. ok is false if no
	// graph has been published for it.
	Get(namespace, application string) (entry Entry, ok bool)

	// HasSynced returns true once the controller has synced its caches.
	HasSynced() bool
}

// Store holds the test node graphs published by the controller.
// Entries are replaced as a whole and never modified afterwards, so readers
// may use them without further locking.
type Store struct {
	lock    sync.RWMutex
	entries map[string]Entry
	synced  bool
}

var _ GraphReader = (*Store)(nil)

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{entries: map[string]Entry{}}
}

// Get implements interface GraphReader.
func (s *Store) Get(namespace, application string) (Entry, bool) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	entry, ok := s.entries[applicationKey(namespace, application)]
	return entry, ok
}

// HasSynced implements interface GraphReader.
func (s *Store) HasSynced() bool {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.synced
}

// Summary returns the number of nodes per status over all applications and
// the number of applications.
func (s *Store) Summary() (map[runstatus.RunStatus]int, int) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	result := map[runstatus.RunStatus]int{}
	for _, entry := range s.entries {
		for status, count := range testnodes.Summary(entry.Graph.Nodes) {
			result[status] += count
		}
	}
	return result, len(s.entries)
}

func (s *Store) put(key string, entry Entry) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.entries[key] = entry
}

func (s *Store) delete(key string) {
	s.lock.Lock()
	defer s.lock.Unlock()
	delete(s.entries, key)
}

func (s *Store) getByKey(key string) (Entry, bool) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	entry, ok := s.entries[key]
	return entry, ok
}

func (s *Store) setSynced() {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.synced = true
}

func applicationKey(namespace, application string) string {
	return namespace + "/" + application
}
