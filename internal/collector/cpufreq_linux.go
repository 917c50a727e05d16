//go:build linux

package collector

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// cpufreqGlob matches the per-CPU current frequency files, reported in kHz.
var cpufreqGlob = "/sys/devices/system/cpu/cpu[0-9]*/cpufreq/scaling_cur_freq"

// readCurrentFrequency averages scaling_cur_freq over all CPUs and returns
// it in MHz. It reports false when cpufreq is not exposed, as is common in
// virtual machines and containers.
func readCurrentFrequency() (float64, bool) {
	paths, err := filepath.Glob(cpufreqGlob)
	if err != nil || len(paths) == 0 {
		return 0, false
	}

	var sum float64
	var n int
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		khz, err := strconv.ParseFloat(strings.TrimSpace(string(data)), 64)
		if err != nil || khz <= 0 {
			continue
		}
		sum += khz / 1000
		n++
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}
