// Disk collector: mounted partitions, per-partition usage and aggregate I/O.
// Uses gopsutil for cross-platform disk metrics.
package collector

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/shirou/gopsutil/v3/disk"
	"go.uber.org/zap"

	"github.com/Guliveer/sysinfo/internal/models"
	"github.com/Guliveer/sysinfo/internal/units"
)

// pseudoFSTypes lists virtual and remote filesystems left out of the partition
// table unless every mount is requested.
var pseudoFSTypes = map[string]bool{
	// Virtual / system filesystems
	"devfs":         true,
	"autofs":        true,
	"nullfs":        true,
	"tmpfs":         true,
	"sysfs":         true,
	"proc":          true,
	"procfs":        true,
	"devtmpfs":      true,
	"cgroup":        true,
	"cgroup2":       true,
	"overlay":       true,
	"squashfs":      true,
	"fuse.snapfuse": true,
	"nsfs":          true,
	"pstore":        true,
	"debugfs":       true,
	"tracefs":       true,
	"securityfs":    true,
	"configfs":      true,
	"fusectl":       true,
	"mqueue":        true,
	"hugetlbfs":     true,
	"binfmt_misc":   true,
	"efivarfs":      true,
	"bpf":           true,
	"ramfs":         true,

	// Network / remote filesystems
	"nfs":           true,
	"nfs4":          true,
	"cifs":          true,
	"smbfs":         true,
	"fuse.sshfs":    true,
	"fuse.rclone":   true,
	"9p":            true,
	"afs":           true,
	"ncpfs":         true,
	"glusterfs":     true,
	"lustre":        true,
	"ceph":          true,
	"fuse.ceph":     true,
	"gpfs":          true,
	"pvfs2":         true,
	"fuse.s3fs":     true,
	"fuse.gcsfuse":  true,
	"fuse.blobfuse": true,
	"davfs2":        true,
}

// isSystemMount reports macOS system volumes and other OS-internal mounts.
func isSystemMount(mount string) bool {
	systemPrefixes := []string{
		"/System/Volumes/",
		"/private/var/vm",
	}
	for _, prefix := range systemPrefixes {
		if strings.HasPrefix(mount, prefix) {
			return true
		}
	}
	return false
}

// DiskCollector collects partition usage and disk I/O counters.
type DiskCollector struct {
	all    bool
	logger *zap.Logger

	partitions func(ctx context.Context, all bool) ([]disk.PartitionStat, error)
	usage      func(ctx context.Context, path string) (*disk.UsageStat, error)
	ioCounters func(ctx context.Context, names ...string) (map[string]disk.IOCountersStat, error)
	wholeDisk  func(name string) bool
}

// NewDiskCollector creates a new disk collector. When all is true every
// mount is reported, including pseudo and network filesystems.
func NewDiskCollector(all bool, logger *zap.Logger) *DiskCollector {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DiskCollector{
		all:        all,
		logger:     logger,
		partitions: disk.PartitionsWithContext,
		usage:      disk.UsageWithContext,
		ioCounters: disk.IOCountersWithContext,
		wholeDisk:  isWholeDisk,
	}
}

// Section returns the collector identifier.
func (c *DiskCollector) Section() models.Section { return models.SectionDisk }

// Collect gathers usage for every mounted partition, then the aggregate I/O
// counters. It never returns an error: a partition that cannot be read for
// lack of permission is reported as denied, and a failure to list partitions
// at all is reported as a CollectorError record.
func (c *DiskCollector) Collect(ctx context.Context) (any, error) {
	partitions, err := c.partitions(ctx, c.all)
	if err != nil {
		c.logger.Warn("Cannot enumerate disk partitions", zap.Error(err))
		return models.CollectorError{Error: err.Error()}, nil
	}

	result := models.DiskInfo{Partitions: make([]models.DiskPartition, 0, len(partitions))}
	for _, p := range partitions {
		if !c.all && (pseudoFSTypes[p.Fstype] || isSystemMount(p.Mountpoint)) {
			c.logger.Debug("Skipping pseudo/system filesystem",
				zap.String("mount", p.Mountpoint),
				zap.String("fstype", p.Fstype))
			continue
		}

		usage, err := c.usage(ctx, p.Mountpoint)
		switch {
		case err == nil:
			result.Partitions = append(result.Partitions, models.NewUsagePartition(
				p.Device, p.Mountpoint, p.Fstype, models.DiskUsage{
					Total:      units.Bytes(usage.Total),
					Used:       units.Bytes(usage.Used),
					Free:       units.Bytes(usage.Free),
					Percentage: units.Percent(usage.UsedPercent),
				}))
		case isPermission(err):
			result.Partitions = append(result.Partitions,
				models.NewDeniedPartition(p.Device, p.Mountpoint, p.Fstype))
		default:
			// Stale or unready mounts (e.g. an empty optical drive).
			c.logger.Debug("Skipping unreadable partition",
				zap.String("mount", p.Mountpoint),
				zap.Error(err))
		}
	}

	result.IO = c.collectIO(ctx)
	return result, nil
}

// collectIO sums the I/O counters of all whole devices. It returns nil when
// the platform exposes no counters.
func (c *DiskCollector) collectIO(ctx context.Context) *models.DiskIO {
	counters, err := c.ioCounters(ctx)
	if err != nil {
		c.logger.Debug("Disk I/O counters unavailable", zap.Error(err))
		return nil
	}
	if len(counters) == 0 {
		return nil
	}

	var readBytes, writeBytes, readCount, writeCount uint64
	for name, io := range counters {
		if !c.wholeDisk(name) {
			continue
		}
		readBytes += io.ReadBytes
		writeBytes += io.WriteBytes
		readCount += io.ReadCount
		writeCount += io.WriteCount
	}
	return &models.DiskIO{
		ReadBytes:  units.Bytes(readBytes),
		WriteBytes: units.Bytes(writeBytes),
		ReadCount:  readCount,
		WriteCount: writeCount,
	}
}

// IsAvailable returns true: disk metrics are available on all platforms.
func (c *DiskCollector) IsAvailable() bool { return true }

func isPermission(err error) bool {
	return errors.Is(err, fs.ErrPermission) || os.IsPermission(err)
}
