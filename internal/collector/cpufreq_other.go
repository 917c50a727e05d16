//go:build !linux

package collector

// readCurrentFrequency is not available outside Linux; the collector falls
// back to the frequency reported by cpu.Info.
func readCurrentFrequency() (float64, bool) {
	return 0, false
}
