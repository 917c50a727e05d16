package collector

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/Guliveer/sysinfo/internal/models"
)

type fakeCPU struct {
	physical, logical int
	countErr          error
	mhz               float64
	current           float64
	perCore           []float64
	total             []float64
	percentErr        error
	intervals         []time.Duration
}

func (f *fakeCPU) collector(t *testing.T, interval time.Duration) *CPUCollector {
	c := NewCPUCollector(interval, zaptest.NewLogger(t))
	c.counts = func(ctx context.Context, logical bool) (int, error) {
		if logical {
			return f.logical, f.countErr
		}
		return f.physical, f.countErr
	}
	c.info = func(ctx context.Context) ([]cpu.InfoStat, error) {
		return []cpu.InfoStat{{Mhz: f.mhz, ModelName: "Test CPU"}}, nil
	}
	c.percent = func(ctx context.Context, interval time.Duration, percpu bool) ([]float64, error) {
		f.intervals = append(f.intervals, interval)
		if f.percentErr != nil {
			return nil, f.percentErr
		}
		if percpu {
			return f.perCore, nil
		}
		return f.total, nil
	}
	c.currentFreq = func() (float64, bool) {
		return f.current, f.current > 0
	}
	return c
}

func collectCPU(t *testing.T, c *CPUCollector) models.CPUInfo {
	t.Helper()
	data, err := c.Collect(context.Background())
	require.NoError(t, err)
	info, ok := data.(models.CPUInfo)
	require.True(t, ok, "expected CPUInfo, got %T", data)
	return info
}

func TestCPUCollector_Collect(t *testing.T) {
	f := &fakeCPU{
		physical: 2, logical: 4,
		mhz: 3600, current: 2400.5,
		perCore: []float64{10, 20.457, 30, 40},
		total:   []float64{25.34},
	}

	info := collectCPU(t, f.collector(t, 250*time.Millisecond))

	require.NotNil(t, info.PhysicalCores)
	assert.Equal(t, 2, *info.PhysicalCores)
	assert.Equal(t, 4, info.TotalCores)
	assert.Equal(t, "3600.00 MHz", info.MaxFrequency)
	assert.Equal(t, "2400.50 MHz", info.CurrentFrequency)
	assert.Equal(t, []string{"10.00", "20.46", "30.00", "40.00"}, info.PerCoreUsage)
	assert.Equal(t, "25.3%", info.TotalUsage)

	// per-core sample blocks for the interval, the total does not
	assert.Equal(t, []time.Duration{250 * time.Millisecond, 0}, f.intervals)
}

func TestCPUCollector_PerCoreLengthMatchesLogicalCount(t *testing.T) {
	f := &fakeCPU{
		physical: 4, logical: 8,
		perCore: []float64{1, 2, 3, 4, 5, 6},
		total:   []float64{3.5},
	}

	info := collectCPU(t, f.collector(t, time.Millisecond))
	assert.Equal(t, info.TotalCores, len(info.PerCoreUsage))
	assert.Equal(t, 6, info.TotalCores)
}

func TestCPUCollector_UnavailableFields(t *testing.T) {
	f := &fakeCPU{
		countErr: errors.New("not implemented yet"),
		perCore:  []float64{50},
		total:    nil,
	}

	info := collectCPU(t, f.collector(t, time.Millisecond))
	assert.Nil(t, info.PhysicalCores)
	assert.Equal(t, 1, info.TotalCores)
	assert.Equal(t, models.NotAvailable, info.MaxFrequency)
	assert.Equal(t, models.NotAvailable, info.CurrentFrequency)
	assert.Equal(t, models.NotAvailable, info.TotalUsage)
}

func TestCPUCollector_CurrentFrequencyFallsBackToMax(t *testing.T) {
	f := &fakeCPU{physical: 1, logical: 1, mhz: 2000, perCore: []float64{5}, total: []float64{5}}

	info := collectCPU(t, f.collector(t, time.Millisecond))
	assert.Equal(t, "2000.00 MHz", info.MaxFrequency)
	assert.Equal(t, "2000.00 MHz", info.CurrentFrequency)
}

func TestCPUCollector_SampleFailure(t *testing.T) {
	f := &fakeCPU{physical: 1, logical: 1, percentErr: errors.New("open /proc/stat: no such file")}

	_, err := f.collector(t, time.Millisecond).Collect(context.Background())
	assert.ErrorContains(t, err, "sampling per-core usage")
}

func TestNewCPUCollector_DefaultInterval(t *testing.T) {
	c := NewCPUCollector(0, nil)
	assert.Equal(t, DefaultCPUInterval, c.interval)
	assert.Equal(t, models.SectionCPU, c.Section())
}

func TestCPUCollector_Host(t *testing.T) {
	if testing.Short() {
		t.Skip("samples host CPU usage")
	}
	info := collectCPU(t, NewCPUCollector(100*time.Millisecond, zaptest.NewLogger(t)))
	assert.GreaterOrEqual(t, info.TotalCores, 1)
	assert.Len(t, info.PerCoreUsage, info.TotalCores)
}
