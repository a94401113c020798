// Package status publishes simulation counters for display outside the simulation goroutine
package status

import (
	"strconv"
	"sync/atomic"
)

// Registry groups named metrics by value type
// Writers cache the pointer returned by Get and store into it every tick
type Registry struct {
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
	Labels *MetricMap[atomic.Pointer[string]]
}

func NewRegistry() *Registry {
	return &Registry{
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
		Labels: NewMetricMap[atomic.Pointer[string]](),
	}
}

// SetLabel stores a short text value under key
func (r *Registry) SetLabel(key, val string) {
	r.Labels.Get(key).Store(&val)
}

// Line is one formatted metric
type Line struct {
	Key   string
	Value string
}

// Lines formats every metric, labels first then ints then floats, each group in key order
func (r *Registry) Lines() []Line {
	lines := make([]Line, 0, r.Count())
	r.Labels.Range(func(key string, p *atomic.Pointer[string]) {
		v := ""
		if s := p.Load(); s != nil {
			v = *s
		}
		lines = append(lines, Line{key, v})
	})
	r.Ints.Range(func(key string, p *atomic.Int64) {
		lines = append(lines, Line{key, strconv.FormatInt(p.Load(), 10)})
	})
	r.Floats.Range(func(key string, p *AtomicFloat) {
		lines = append(lines, Line{key, strconv.FormatFloat(p.Get(), 'f', 1, 64)})
	})
	return lines
}

func (r *Registry) Count() int {
	return r.Ints.Count() + r.Floats.Count() + r.Labels.Count()
}
