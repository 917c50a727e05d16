// Package units converts raw byte counts into the human-readable size strings
// reported by every collector.
package units

import "fmt"

// ladder holds the unit prefixes stepped through by NormalizeSize. Values that
// outgrow the last rung are reported with the overflow prefix.
var ladder = []string{"", "K", "M", "G", "T", "P"}

const overflowUnit = "Y"

// NormalizeSize divides bytes by 1024 until it drops below 1024 and returns
// the value with two decimals followed by the unit prefix and suffix, e.g.
// NormalizeSize(1536, "B") == "1.50KB". Negative input is treated as zero.
func NormalizeSize(bytes float64, suffix string) string {
	if bytes < 0 {
		bytes = 0
	}
	for _, unit := range ladder {
		if bytes < 1024 {
			return fmt.Sprintf("%.2f%s%s", bytes, unit, suffix)
		}
		bytes /= 1024
	}
	return fmt.Sprintf("%.2f%s%s", bytes, overflowUnit, suffix)
}

// Bytes is NormalizeSize for a raw byte counter with the "B" suffix.
func Bytes(n uint64) string {
	return NormalizeSize(float64(n), "B")
}

// Percent formats a usage ratio already expressed in percent, e.g. "42.5%".
func Percent(p float64) string {
	return fmt.Sprintf("%.1f%%", p)
}
