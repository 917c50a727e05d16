// CPU collector: core counts, clock frequency and utilization.
// Uses gopsutil for cross-platform CPU metrics.
package collector

import (
	"context"
	"fmt"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"go.uber.org/zap"

	"github.com/Guliveer/sysinfo/internal/models"
	"github.com/Guliveer/sysinfo/internal/units"
)

// DefaultCPUInterval is the window over which per-core utilization is sampled.
const DefaultCPUInterval = time.Second

// CPUCollector collects CPU core, frequency and usage metrics.
type CPUCollector struct {
	interval time.Duration
	logger   *zap.Logger

	counts      func(ctx context.Context, logical bool) (int, error)
	info        func(ctx context.Context) ([]cpu.InfoStat, error)
	percent     func(ctx context.Context, interval time.Duration, percpu bool) ([]float64, error)
	currentFreq func() (float64, bool)
}

// NewCPUCollector creates a CPU collector that samples per-core usage over
// interval. A non-positive interval falls back to DefaultCPUInterval.
func NewCPUCollector(interval time.Duration, logger *zap.Logger) *CPUCollector {
	if interval <= 0 {
		interval = DefaultCPUInterval
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CPUCollector{
		interval:    interval,
		logger:      logger,
		counts:      cpu.CountsWithContext,
		info:        cpu.InfoWithContext,
		percent:     cpu.PercentWithContext,
		currentFreq: readCurrentFrequency,
	}
}

// Section returns the collector identifier.
func (c *CPUCollector) Section() models.Section { return models.SectionCPU }

// Collect gathers core counts, frequencies and utilization.
// The per-core measurement blocks for the sampling interval; the total is
// a second, non-blocking sample taken right after it.
func (c *CPUCollector) Collect(ctx context.Context) (any, error) {
	result := models.CPUInfo{
		MaxFrequency:     models.NotAvailable,
		CurrentFrequency: models.NotAvailable,
	}

	physical, err := c.counts(ctx, false)
	if err != nil || physical <= 0 {
		c.logger.Debug("Physical core count unavailable", zap.Error(err))
	} else {
		result.PhysicalCores = &physical
	}

	logical, err := c.counts(ctx, true)
	if err != nil {
		c.logger.Debug("Logical core count unavailable", zap.Error(err))
	}

	var maxMHz float64
	if infos, err := c.info(ctx); err != nil {
		c.logger.Debug("CPU info unavailable", zap.Error(err))
	} else {
		for _, i := range infos {
			if i.Mhz > maxMHz {
				maxMHz = i.Mhz
			}
		}
	}
	curMHz, ok := c.currentFreq()
	if !ok {
		curMHz = maxMHz
	}
	if maxMHz > 0 {
		result.MaxFrequency = formatMHz(maxMHz)
	}
	if curMHz > 0 {
		result.CurrentFrequency = formatMHz(curMHz)
	}

	perCore, err := c.percent(ctx, c.interval, true)
	if err != nil {
		return nil, fmt.Errorf("sampling per-core usage: %w", err)
	}
	total, err := c.percent(ctx, 0, false)
	if err != nil {
		return nil, fmt.Errorf("sampling total usage: %w", err)
	}

	// The sample is authoritative for the logical count: CPUs can go
	// offline between the two queries.
	if logical != len(perCore) {
		c.logger.Debug("Logical core count differs from usage sample",
			zap.Int("counted", logical),
			zap.Int("sampled", len(perCore)))
		logical = len(perCore)
	}
	result.TotalCores = logical

	result.PerCoreUsage = make([]string, len(perCore))
	for i, p := range perCore {
		result.PerCoreUsage[i] = fmt.Sprintf("%.2f", p)
	}
	if len(total) > 0 {
		result.TotalUsage = units.Percent(total[0])
	} else {
		result.TotalUsage = models.NotAvailable
	}

	return result, nil
}

// IsAvailable returns true: CPU metrics are available on all platforms.
func (c *CPUCollector) IsAvailable() bool { return true }

func formatMHz(mhz float64) string {
	return fmt.Sprintf("%.2f MHz", mhz)
}
