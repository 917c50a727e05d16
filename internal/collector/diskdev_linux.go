//go:build linux

package collector

import (
	"os"
	"path/filepath"
	"strings"
)

// sysBlockDir lists whole block devices only; partitions live below their
// parent disk.
var sysBlockDir = "/sys/block"

// isWholeDisk reports whether a /proc/diskstats entry is a whole device
// rather than a partition, so partition counters are not summed twice.
func isWholeDisk(name string) bool {
	_, err := os.Stat(filepath.Join(sysBlockDir, strings.ReplaceAll(name, "/", "!")))
	return err == nil
}
