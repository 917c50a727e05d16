// OS identity collector: kernel and platform identity, hostname, current
// user and boot time.
//
// Host data comes from gopsutil; the uname fields are read through
// golang.org/x/sys so they match what `uname -srvm` prints (RtlGetVersion
// on Windows).
package collector

import (
	"context"
	"fmt"
	"os"
	"os/user"
	"strconv"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"go.uber.org/zap"

	"github.com/Guliveer/sysinfo/internal/models"
)

// BootTimeLayout is the format of OSInfo.BootTime.
const BootTimeLayout = "2006-01-02 15:04:05"

// unameInfo holds the kernel identity fields of uname(2).
type unameInfo struct {
	System  string
	Release string
	Version string
	Machine string
}

// OSCollector collects operating system identity.
type OSCollector struct {
	logger *zap.Logger

	hostInfo func(ctx context.Context) (*host.InfoStat, error)
	cpuInfo  func(ctx context.Context) ([]cpu.InfoStat, error)
	uname    func() (unameInfo, error)
	username func() (string, error)
	hostname func() (string, error)
}

// NewOSCollector creates a new OS identity collector.
func NewOSCollector(logger *zap.Logger) *OSCollector {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OSCollector{
		logger:   logger,
		hostInfo: host.InfoWithContext,
		cpuInfo:  cpu.InfoWithContext,
		uname:    readUname,
		username: currentUsername,
		hostname: os.Hostname,
	}
}

// Section returns the collector identifier.
func (c *OSCollector) Section() models.Section { return models.SectionOS }

// Collect gathers the OS identity. Only a host info failure fails the
// collector; uname, processor and user lookups fall back field by field.
func (c *OSCollector) Collect(ctx context.Context) (any, error) {
	info, err := c.hostInfo(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading host info: %w", err)
	}

	result := models.OSInfo{
		System:          titleCase(info.OS),
		Release:         info.KernelVersion,
		Version:         info.PlatformVersion,
		Platform:        info.Platform,
		PlatformVersion: info.PlatformVersion,
		Architecture:    strconv.Itoa(strconv.IntSize) + "bit",
		Machine:         info.KernelArch,
		Hostname:        info.Hostname,
		BootTime:        time.Unix(int64(info.BootTime), 0).Format(BootTimeLayout),
	}

	if u, err := c.uname(); err != nil {
		c.logger.Debug("uname unavailable, using host info", zap.Error(err))
	} else {
		result.System = firstNonEmpty(u.System, result.System)
		result.Release = firstNonEmpty(u.Release, result.Release)
		result.Version = firstNonEmpty(u.Version, result.Version)
		result.Machine = firstNonEmpty(u.Machine, result.Machine)
	}

	if result.Hostname == "" {
		name, err := c.hostname()
		if err != nil {
			c.logger.Debug("Hostname unavailable", zap.Error(err))
		}
		result.Hostname = name
	}

	result.Processor = result.Machine
	if infos, err := c.cpuInfo(ctx); err != nil {
		c.logger.Debug("CPU model unavailable", zap.Error(err))
	} else if len(infos) > 0 && strings.TrimSpace(infos[0].ModelName) != "" {
		result.Processor = strings.TrimSpace(infos[0].ModelName)
	}

	result.Username = models.UnknownUser
	if name, err := c.username(); err != nil {
		c.logger.Debug("Login name unavailable", zap.Error(err))
	} else if name != "" {
		result.Username = name
	}

	return result, nil
}

// IsAvailable returns true: OS info is available on all platforms.
func (c *OSCollector) IsAvailable() bool { return true }

// currentUsername resolves the user running the process. Headless contexts
// without a passwd entry fall back to the usual environment variables.
func currentUsername() (string, error) {
	u, err := user.Current()
	if err == nil && u.Username != "" {
		return u.Username, nil
	}
	for _, key := range []string{"USER", "USERNAME", "LOGNAME"} {
		if v := os.Getenv(key); v != "" {
			return v, nil
		}
	}
	if err == nil {
		err = fmt.Errorf("no username for uid %s", u.Uid)
	}
	return "", err
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
