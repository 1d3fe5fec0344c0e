package collectors

import (
	"fmt"
	"sort"
	"sync"
)

// CollectorRegistry tracks the collectors available to the CLI.
type CollectorRegistry struct {
	mu         sync.RWMutex
	collectors map[string]Collector
}

func NewRegistry() *CollectorRegistry {
	return &CollectorRegistry{
		collectors: make(map[string]Collector),
	}
}

func (r *CollectorRegistry) Register(collector Collector) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.collectors[collector.Name()] = collector
}

func (r *CollectorRegistry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.collectors))
	for name := range r.collectors {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

func (r *CollectorRegistry) Get(name string) (Collector, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	collector, exists := r.collectors[name]
	if !exists {
		return nil, fmt.Errorf("unknown collector: %s", name)
	}
	return collector, nil
}
