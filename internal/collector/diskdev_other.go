//go:build !linux

package collector

// isWholeDisk reports true: outside Linux the I/O counters are per device.
func isWholeDisk(name string) bool {
	return true
}
