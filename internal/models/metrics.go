// Package models defines the records produced by the collectors.
// Every record is built fresh on each run and serialized as-is by the
// output package; raw byte counts are kept alongside the normalized strings
// but never serialized.
package models

// NotAvailable marks a field the platform could not report.
const NotAvailable = "N/A"

// Unset is the placeholder for an address field that is not configured.
const Unset = "-"

// UnknownUser is reported when no login name can be resolved.
const UnknownUser = "unavailable"

// AccessDenied is the marker carried by partitions that could not be statted.
const AccessDenied = "permission denied"

// OSInfo describes the operating system identity of the host.
type OSInfo struct {
	System          string `json:"system"`
	Release         string `json:"release"`
	Version         string `json:"version"`
	Platform        string `json:"platform"`
	PlatformVersion string `json:"platform_version"`
	Architecture    string `json:"architecture"`
	Machine         string `json:"machine"`
	Processor       string `json:"processor"`
	Hostname        string `json:"hostname"`
	Username        string `json:"username"`
	BootTime        string `json:"boot_time"`
}

// CPUInfo holds core counts, clock frequencies and utilization.
type CPUInfo struct {
	// PhysicalCores is nil when the platform cannot tell.
	PhysicalCores    *int     `json:"physical_cores"`
	TotalCores       int      `json:"total_cores"`
	MaxFrequency     string   `json:"max_frequency"`
	CurrentFrequency string   `json:"current_frequency"`
	PerCoreUsage     []string `json:"cpu_usage_per_core"`
	TotalUsage       string   `json:"total_cpu_usage"`
}

// MemoryInfo holds physical memory and swap usage.
type MemoryInfo struct {
	Total      string   `json:"total"`
	Available  string   `json:"available"`
	Used       string   `json:"used"`
	Percentage string   `json:"percentage"`
	Swap       SwapInfo `json:"swap"`

	TotalBytes uint64 `json:"-"`
	UsedBytes  uint64 `json:"-"`
}

// SwapInfo holds swap usage.
type SwapInfo struct {
	Total      string `json:"total"`
	Free       string `json:"free"`
	Used       string `json:"used"`
	Percentage string `json:"percentage"`
}

// DiskInfo lists mounted partitions and the aggregate disk I/O counters.
type DiskInfo struct {
	Partitions []DiskPartition `json:"partitions"`
	// IO is nil when the platform exposes no disk counters.
	IO *DiskIO `json:"io_status,omitempty"`
}

// DiskPartition is one mounted filesystem. It carries either usage figures
// or the access-denied marker, never both; build it with NewUsagePartition
// or NewDeniedPartition.
type DiskPartition struct {
	Device     string `json:"device"`
	Mountpoint string `json:"mountpoint"`
	FSType     string `json:"fstype"`

	*DiskUsage

	Access string `json:"access,omitempty"`
}

// DiskUsage is the usage variant of a partition.
type DiskUsage struct {
	Total      string `json:"total"`
	Used       string `json:"used"`
	Free       string `json:"free"`
	Percentage string `json:"percentage"`
}

// NewUsagePartition returns a partition record carrying usage figures.
func NewUsagePartition(device, mountpoint, fstype string, usage DiskUsage) DiskPartition {
	return DiskPartition{
		Device:     device,
		Mountpoint: mountpoint,
		FSType:     fstype,
		DiskUsage:  &usage,
	}
}

// NewDeniedPartition returns a partition record for a mount that could not
// be statted.
func NewDeniedPartition(device, mountpoint, fstype string) DiskPartition {
	return DiskPartition{
		Device:     device,
		Mountpoint: mountpoint,
		FSType:     fstype,
		Access:     AccessDenied,
	}
}

// Denied reports whether the partition is the access-denied variant.
func (p DiskPartition) Denied() bool {
	return p.DiskUsage == nil
}

// DiskIO holds cumulative disk I/O since boot, summed over all devices.
type DiskIO struct {
	ReadBytes  string `json:"read_bytes"`
	WriteBytes string `json:"write_bytes"`
	ReadCount  uint64 `json:"read_count"`
	WriteCount uint64 `json:"write_count"`
}

// NetworkInfo maps interface names to their bound addresses and carries the
// aggregate network I/O counters.
type NetworkInfo struct {
	Interfaces map[string][]InterfaceAddress `json:"interfaces"`
	// IO is nil when the platform exposes no network counters.
	IO *NetworkIO `json:"io_status,omitempty"`
}

// Address families reported in InterfaceAddress.Family.
const (
	FamilyIPv4 = "IPv4"
	FamilyIPv6 = "IPv6"
)

// InterfaceAddress is one address bound to an interface. Broadcast is only
// set for IPv4; unset netmask and broadcast values hold Unset.
type InterfaceAddress struct {
	Family    string `json:"family"`
	Address   string `json:"address"`
	Netmask   string `json:"netmask"`
	Broadcast string `json:"broadcast,omitempty"`
}

// NetworkIO holds cumulative network I/O since boot over all interfaces.
type NetworkIO struct {
	BytesSent   string `json:"bytes_sent"`
	BytesRecv   string `json:"bytes_recv"`
	PacketsSent uint64 `json:"packets_sent"`
	PacketsRecv uint64 `json:"packets_recv"`
}

// CollectorError replaces a section whose collector failed outright.
type CollectorError struct {
	Error string `json:"error"`
}
