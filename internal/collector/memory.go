// RAM and swap collector.
// Uses gopsutil for cross-platform memory metrics.
package collector

import (
	"context"
	"fmt"

	"github.com/shirou/gopsutil/v3/mem"

	"github.com/Guliveer/sysinfo/internal/models"
	"github.com/Guliveer/sysinfo/internal/units"
)

// MemoryCollector collects physical memory and swap usage.
type MemoryCollector struct {
	virtual func(ctx context.Context) (*mem.VirtualMemoryStat, error)
	swap    func(ctx context.Context) (*mem.SwapMemoryStat, error)
}

// NewMemoryCollector creates a new memory collector.
func NewMemoryCollector() *MemoryCollector {
	return &MemoryCollector{
		virtual: mem.VirtualMemoryWithContext,
		swap:    mem.SwapMemoryWithContext,
	}
}

// Section returns the collector identifier.
func (c *MemoryCollector) Section() models.Section { return models.SectionMemory }

// Collect gathers memory and swap usage with normalized sizes.
func (c *MemoryCollector) Collect(ctx context.Context) (any, error) {
	v, err := c.virtual(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading virtual memory: %w", err)
	}
	s, err := c.swap(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading swap memory: %w", err)
	}

	return models.MemoryInfo{
		Total:      units.Bytes(v.Total),
		Available:  units.Bytes(v.Available),
		Used:       units.Bytes(v.Used),
		Percentage: units.Percent(v.UsedPercent),
		Swap: models.SwapInfo{
			Total:      units.Bytes(s.Total),
			Free:       units.Bytes(s.Free),
			Used:       units.Bytes(s.Used),
			Percentage: units.Percent(s.UsedPercent),
		},
		TotalBytes: v.Total,
		UsedBytes:  v.Used,
	}, nil
}

// IsAvailable returns true: memory metrics are available on all platforms.
func (c *MemoryCollector) IsAvailable() bool { return true }
