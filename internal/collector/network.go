// Network collector: interfaces with their bound addresses and aggregate I/O.
// Uses gopsutil for cross-platform network metrics.
package collector

import (
	"context"
	stdnet "net"
	"strings"

	"github.com/shirou/gopsutil/v3/net"
	"go.uber.org/zap"

	"github.com/Guliveer/sysinfo/internal/models"
	"github.com/Guliveer/sysinfo/internal/units"
)

// NetworkCollector collects interface addresses and network I/O counters.
type NetworkCollector struct {
	logger *zap.Logger

	interfaces func(ctx context.Context) (net.InterfaceStatList, error)
	ioCounters func(ctx context.Context, pernic bool) ([]net.IOCountersStat, error)
}

// NewNetworkCollector creates a new network collector.
func NewNetworkCollector(logger *zap.Logger) *NetworkCollector {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NetworkCollector{
		logger:     logger,
		interfaces: net.InterfacesWithContext,
		ioCounters: net.IOCountersWithContext,
	}
}

// Section returns the collector identifier.
func (c *NetworkCollector) Section() models.Section { return models.SectionNetwork }

// Collect gathers the IPv4/IPv6 addresses of every interface and the
// aggregate I/O counters. It never returns an error: failing to list
// interfaces is reported as a CollectorError record.
func (c *NetworkCollector) Collect(ctx context.Context) (any, error) {
	ifaces, err := c.interfaces(ctx)
	if err != nil {
		c.logger.Warn("Cannot enumerate network interfaces", zap.Error(err))
		return models.CollectorError{Error: err.Error()}, nil
	}

	result := models.NetworkInfo{
		Interfaces: make(map[string][]models.InterfaceAddress, len(ifaces)),
	}
	for _, iface := range ifaces {
		broadcast := hasFlag(iface.Flags, "broadcast")
		addrs := make([]models.InterfaceAddress, 0, len(iface.Addrs))
		for _, a := range iface.Addrs {
			addr, ok := parseInterfaceAddress(a.Addr, broadcast)
			if !ok {
				c.logger.Debug("Skipping unparseable address",
					zap.String("interface", iface.Name),
					zap.String("addr", a.Addr))
				continue
			}
			addrs = append(addrs, addr)
		}
		result.Interfaces[iface.Name] = addrs
	}

	result.IO = c.collectIO(ctx)
	return result, nil
}

// collectIO reads the counters summed over all interfaces. It returns nil
// when the platform exposes no counters.
func (c *NetworkCollector) collectIO(ctx context.Context) *models.NetworkIO {
	counters, err := c.ioCounters(ctx, false)
	if err != nil {
		c.logger.Debug("Network I/O counters unavailable", zap.Error(err))
		return nil
	}
	if len(counters) == 0 {
		return nil
	}

	total := counters[0]
	return &models.NetworkIO{
		BytesSent:   units.Bytes(total.BytesSent),
		BytesRecv:   units.Bytes(total.BytesRecv),
		PacketsSent: total.PacketsSent,
		PacketsRecv: total.PacketsRecv,
	}
}

// IsAvailable returns true: network metrics are available on all platforms.
func (c *NetworkCollector) IsAvailable() bool { return true }

// parseInterfaceAddress classifies an address such as "192.168.1.10/24" or
// "fe80::1/64". Broadcast is derived for IPv4 only, when the interface
// supports it and the prefix leaves room for one.
func parseInterfaceAddress(raw string, broadcast bool) (models.InterfaceAddress, bool) {
	var ip stdnet.IP
	var mask stdnet.IPMask
	if strings.Contains(raw, "/") {
		addr, ipnet, err := stdnet.ParseCIDR(raw)
		if err != nil {
			return models.InterfaceAddress{}, false
		}
		ip, mask = addr, ipnet.Mask
	} else {
		ip = stdnet.ParseIP(raw)
		if ip == nil {
			return models.InterfaceAddress{}, false
		}
	}

	if v4 := ip.To4(); v4 != nil {
		out := models.InterfaceAddress{
			Family:    models.FamilyIPv4,
			Address:   v4.String(),
			Netmask:   models.Unset,
			Broadcast: models.Unset,
		}
		if len(mask) == stdnet.IPv4len {
			out.Netmask = stdnet.IP(mask).String()
			if ones, _ := mask.Size(); broadcast && ones < 31 {
				bcast := make(stdnet.IP, stdnet.IPv4len)
				for i := range v4 {
					bcast[i] = v4[i] | ^mask[i]
				}
				out.Broadcast = bcast.String()
			}
		}
		return out, true
	}

	out := models.InterfaceAddress{
		Family:  models.FamilyIPv6,
		Address: ip.String(),
		Netmask: models.Unset,
	}
	if len(mask) == stdnet.IPv6len {
		out.Netmask = stdnet.IP(mask).String()
	}
	return out, true
}

func hasFlag(flags []string, want string) bool {
	for _, f := range flags {
		if strings.EqualFold(f, want) {
			return true
		}
	}
	return false
}
