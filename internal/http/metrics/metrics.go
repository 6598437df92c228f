// Package metrics counts gateway traffic for the /metrics endpoint.
package metrics

import (
	"net/http"
	"sync"
)

type Snapshot struct {
	Requests      int64            `json:"requests"`
	Errors        int64            `json:"errors"`
	ByRoute       map[string]int64 `json:"by_route"`
	ErrorsByRoute map[string]int64 `json:"errors_by_route"`
}

type Collector struct {
	mu            sync.Mutex
	requests      int64
	errors        int64
	byRoute       map[string]int64
	errorsByRoute map[string]int64
}

func NewCollector() *Collector {
	return &Collector{
		byRoute:       make(map[string]int64),
		errorsByRoute: make(map[string]int64),
	}
}

func (c *Collector) Observe(route string, status int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.requests++
	c.byRoute[route]++
	if status >= http.StatusInternalServerError {
		c.errors++
		c.errorsByRoute[route]++
	}
}

func (c *Collector) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	snapshot := Snapshot{
		Requests:      c.requests,
		Errors:        c.errors,
		ByRoute:       make(map[string]int64, len(c.byRoute)),
		ErrorsByRoute: make(map[string]int64, len(c.errorsByRoute)),
	}
	for route, count := range c.byRoute {
		snapshot.ByRoute[route] = count
	}
	for route, count := range c.errorsByRoute {
		snapshot.ErrorsByRoute[route] = count
	}
	return snapshot
}
