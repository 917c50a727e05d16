// Package collector defines the Collector interface, the collectors for each
// snapshot section and the Registry that assembles their results.
package collector

import (
	"context"

	"github.com/Guliveer/sysinfo/internal/models"
)

// Collector is the interface that all section collectors must implement.
// Each collector gathers one category of host metrics.
type Collector interface {
	// Section returns the snapshot section this collector fills.
	Section() models.Section

	// Collect gathers the metric data and returns the section record.
	// An error means the whole section could not be collected; partial
	// degradation is reported inside the record instead.
	Collect(ctx context.Context) (any, error)

	// IsAvailable checks if this collector can run on the current platform.
	// Collectors that return false will not be registered.
	IsAvailable() bool
}

// Defaults registers the standard collector for every section.
func Defaults(r *Registry, opts Options) {
	r.Register(NewOSCollector(r.logger))
	r.Register(NewCPUCollector(opts.CPUInterval, r.logger))
	r.Register(NewMemoryCollector())
	r.Register(NewDiskCollector(opts.AllPartitions, r.logger))
	r.Register(NewNetworkCollector(r.logger))
}
