package collector

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Guliveer/sysinfo/internal/models"
)

var testBoot = time.Date(2024, 3, 1, 8, 30, 15, 0, time.Local)

func fakeOSCollector(t *testing.T) *OSCollector {
	c := NewOSCollector(zaptest.NewLogger(t))
	c.hostInfo = func(ctx context.Context) (*host.InfoStat, error) {
		return &host.InfoStat{
			Hostname:        "build-01",
			BootTime:        uint64(testBoot.Unix()),
			OS:              "linux",
			Platform:        "ubuntu",
			PlatformVersion: "22.04",
			KernelVersion:   "6.5.0-14-generic",
			KernelArch:      "x86_64",
		}, nil
	}
	c.cpuInfo = func(ctx context.Context) ([]cpu.InfoStat, error) {
		return []cpu.InfoStat{{ModelName: "  AMD Ryzen 7 5800X 8-Core Processor "}}, nil
	}
	c.uname = func() (unameInfo, error) {
		return unameInfo{
			System:  "Linux",
			Release: "6.5.0-14-generic",
			Version: "#14~22.04.1-Ubuntu SMP PREEMPT_DYNAMIC",
			Machine: "x86_64",
		}, nil
	}
	c.username = func() (string, error) { return "alice", nil }
	return c
}

func collectOS(t *testing.T, c *OSCollector) models.OSInfo {
	t.Helper()
	data, err := c.Collect(context.Background())
	require.NoError(t, err)
	info, ok := data.(models.OSInfo)
	require.True(t, ok, "expected OSInfo, got %T", data)
	return info
}

func TestOSCollector_Collect(t *testing.T) {
	info := collectOS(t, fakeOSCollector(t))

	assert.Equal(t, models.OSInfo{
		System:          "Linux",
		Release:         "6.5.0-14-generic",
		Version:         "#14~22.04.1-Ubuntu SMP PREEMPT_DYNAMIC",
		Platform:        "ubuntu",
		PlatformVersion: "22.04",
		Architecture:    strconv.Itoa(strconv.IntSize) + "bit",
		Machine:         "x86_64",
		Processor:       "AMD Ryzen 7 5800X 8-Core Processor",
		Hostname:        "build-01",
		Username:        "alice",
		BootTime:        "2024-03-01 08:30:15",
	}, info)
}

func TestOSCollector_UsernameUnavailable(t *testing.T) {
	c := fakeOSCollector(t)
	c.username = func() (string, error) { return "", errors.New("user: unknown userid 1001") }

	assert.Equal(t, models.UnknownUser, collectOS(t, c).Username)
}

func TestOSCollector_UnameFallsBackToHostInfo(t *testing.T) {
	c := fakeOSCollector(t)
	c.uname = func() (unameInfo, error) { return unameInfo{}, errors.New("uname not supported") }
	c.cpuInfo = func(ctx context.Context) ([]cpu.InfoStat, error) { return nil, errors.New("no cpuinfo") }

	info := collectOS(t, c)
	assert.Equal(t, "Linux", info.System)
	assert.Equal(t, "6.5.0-14-generic", info.Release)
	assert.Equal(t, "22.04", info.Version)
	assert.Equal(t, "x86_64", info.Machine)
	assert.Equal(t, "x86_64", info.Processor)
}

func TestOSCollector_HostInfoFailure(t *testing.T) {
	c := fakeOSCollector(t)
	c.hostInfo = func(ctx context.Context) (*host.InfoStat, error) {
		return nil, errors.New("sysctl kern.boottime failed")
	}

	_, err := c.Collect(context.Background())
	assert.ErrorContains(t, err, "reading host info")
}

func TestOSCollector_HostIsIdempotent(t *testing.T) {
	c := NewOSCollector(zaptest.NewLogger(t))
	first := collectOS(t, c)
	second := collectOS(t, c)

	assert.NotEmpty(t, first.System)
	assert.Equal(t, first.System, second.System)
	assert.Equal(t, first.Release, second.Release)
	assert.Equal(t, first.Architecture, second.Architecture)
	assert.Equal(t, first.Hostname, second.Hostname)

	_, err := time.ParseInLocation(BootTimeLayout, first.BootTime, time.Local)
	assert.NoError(t, err)
}

func TestOSCollector_HostnameFallback(t *testing.T) {
	c := fakeOSCollector(t)
	orig := c.hostInfo
	c.hostInfo = func(ctx context.Context) (*host.InfoStat, error) {
		info, err := orig(ctx)
		info.Hostname = ""
		return info, err
	}

	t.Run("resolved", func(t *testing.T) {
		c.hostname = func() (string, error) { return "fallback-01", nil }
		assert.Equal(t, "fallback-01", collectOS(t, c).Hostname)
	})

	t.Run("failure is logged", func(t *testing.T) {
		core, logs := observer.New(zap.DebugLevel)
		c.logger = zap.New(core)
		c.hostname = func() (string, error) { return "", errors.New("uts namespace unavailable") }

		assert.Empty(t, collectOS(t, c).Hostname)
		entries := logs.FilterMessage("Hostname unavailable").All()
		require.Len(t, entries, 1)
		assert.Equal(t, "uts namespace unavailable", entries[0].ContextMap()["error"])
	})
}
